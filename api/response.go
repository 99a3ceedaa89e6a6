package api

import (
	"net/http"

	"expenses/models"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

// Response 通用响应结构
type Response struct {
	Code    int         `json:"code"`
	Message string      `json:"message"`
	Data    interface{} `json:"data,omitempty"`
}

// Success 成功响应
func Success(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, Response{
		Code:    200,
		Message: "success",
		Data:    data,
	})
}

// SuccessWithMessage 带消息的成功响应
func SuccessWithMessage(c *gin.Context, message string, data interface{}) {
	c.JSON(http.StatusOK, Response{
		Code:    200,
		Message: message,
		Data:    data,
	})
}

// ExpenseListResponse 记录列表与合计，每次变更后返回刷新后的结果
type ExpenseListResponse struct {
	List  []models.Expense `json:"list"`
	Total decimal.Decimal  `json:"total"`
}

// Refreshed 返回刷新后的列表与合计，list 为 nil 时输出空数组
func Refreshed(c *gin.Context, message string, list []models.Expense, total decimal.Decimal) {
	if list == nil {
		list = []models.Expense{}
	}
	SuccessWithMessage(c, message, ExpenseListResponse{List: list, Total: total})
}

// Error 错误响应
func Error(c *gin.Context, code int, message string) {
	c.JSON(code, Response{
		Code:    code,
		Message: message,
	})
}

// BadRequest 400 错误响应
func BadRequest(c *gin.Context, message string) {
	Error(c, http.StatusBadRequest, message)
}

// InternalError 500 错误响应
func InternalError(c *gin.Context, message string) {
	Error(c, http.StatusInternalServerError, message)
}

// NotFound 404 错误响应
func NotFound(c *gin.Context, message string) {
	Error(c, http.StatusNotFound, message)
}
