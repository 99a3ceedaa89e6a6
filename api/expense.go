package api

import (
	"context"
	"errors"
	"strconv"

	"expenses/config"
	"expenses/database"
	"expenses/models"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// RecordStore 消费记录存储接口
type RecordStore interface {
	Create(ctx context.Context, in models.ExpenseInput) (models.Expense, error)
	List(ctx context.Context) ([]models.Expense, error)
	Update(ctx context.Context, expense models.Expense) error
	Delete(ctx context.Context, id uint) error
	TotalAmount(ctx context.Context) (decimal.Decimal, error)
}

// ExpenseHandler 消费记录处理器
type ExpenseHandler struct {
	store      RecordStore
	categories []string
	server     config.ServerConfig
	log        *zap.Logger
}

// NewExpenseHandler 创建消费记录处理器
func NewExpenseHandler(store RecordStore, cfg *config.Config, log *zap.Logger) *ExpenseHandler {
	categories := cfg.App.Categories
	if len(categories) == 0 {
		categories = models.GetCategories()
	}
	return &ExpenseHandler{
		store:      store,
		categories: categories,
		server:     cfg.Server,
		log:        log.Named("api"),
	}
}

// TotalResponse 合计金额
type TotalResponse struct {
	Total decimal.Decimal `json:"total"`
}

// TableResponse 按列定义渲染的表格
type TableResponse struct {
	Columns []string   `json:"columns"`
	Rows    [][]string `json:"rows"`
	Total   string     `json:"total"`
}

// List 获取消费记录列表
// @Summary 获取消费记录列表
// @Description 按 ID 升序返回全部消费记录及合计金额
// @Tags 消费记录
// @Produce json
// @Success 200 {object} Response{data=ExpenseListResponse} "获取成功"
// @Failure 500 {object} Response "查询失败"
// @Router /api/v1/expenses [get]
func (h *ExpenseHandler) List(c *gin.Context) {
	h.respondList(c, "success")
}

// Create 创建消费记录
// @Summary 创建消费记录
// @Tags 消费记录
// @Accept json
// @Produce json
// @Param request body ExpenseForm true "消费记录信息"
// @Success 200 {object} Response{data=ExpenseListResponse} "创建成功"
// @Failure 400 {object} Response "请求参数错误"
// @Failure 500 {object} Response "创建失败"
// @Router /api/v1/expenses [post]
func (h *ExpenseHandler) Create(c *gin.Context) {
	var form ExpenseForm
	if err := c.ShouldBind(&form); err != nil {
		BadRequest(c, h.server.SafeErrorMessage(err, "请填写所有字段"))
		return
	}
	in, err := form.Parse(h.categories)
	if err != nil {
		h.writeError(c, err, "参数错误")
		return
	}

	created, err := h.store.Create(c.Request.Context(), in)
	if err != nil {
		h.writeError(c, err, "创建消费记录失败")
		return
	}

	h.log.Info("消费记录已创建", zap.Uint("id", created.ID))
	h.respondList(c, "创建成功")
}

// Update 更新消费记录
// @Summary 更新消费记录
// @Description 整体替换描述、金额、日期和类别
// @Tags 消费记录
// @Accept json
// @Produce json
// @Param id path int true "消费记录ID"
// @Param request body ExpenseForm true "消费记录信息"
// @Success 200 {object} Response{data=ExpenseListResponse} "更新成功"
// @Failure 400 {object} Response "请求参数错误"
// @Failure 404 {object} Response "记录不存在"
// @Router /api/v1/expenses/{id} [put]
func (h *ExpenseHandler) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var form ExpenseForm
	if err := c.ShouldBind(&form); err != nil {
		BadRequest(c, h.server.SafeErrorMessage(err, "请填写所有字段"))
		return
	}
	in, err := form.Parse(h.categories)
	if err != nil {
		h.writeError(c, err, "参数错误")
		return
	}

	expense := models.NewExpense(in)
	expense.ID = id
	if err := h.store.Update(c.Request.Context(), expense); err != nil {
		h.writeError(c, err, "更新失败")
		return
	}

	h.log.Info("消费记录已更新", zap.Uint("id", id))
	h.respondList(c, "更新成功")
}

// Delete 删除消费记录
// @Summary 删除消费记录
// @Description 记录不存在时不做任何操作
// @Tags 消费记录
// @Produce json
// @Param id path int true "消费记录ID"
// @Success 200 {object} Response{data=ExpenseListResponse} "删除成功"
// @Failure 400 {object} Response "无效的ID"
// @Router /api/v1/expenses/{id} [delete]
func (h *ExpenseHandler) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	if err := h.store.Delete(c.Request.Context(), id); err != nil {
		h.writeError(c, err, "删除失败")
		return
	}

	h.log.Info("消费记录已删除", zap.Uint("id", id))
	h.respondList(c, "删除成功")
}

// Total 获取合计金额
// @Summary 获取合计金额
// @Tags 消费记录
// @Produce json
// @Success 200 {object} Response{data=TotalResponse} "获取成功"
// @Router /api/v1/expenses/total [get]
func (h *ExpenseHandler) Total(c *gin.Context) {
	total, err := h.store.TotalAmount(c.Request.Context())
	if err != nil {
		h.writeError(c, err, "查询失败")
		return
	}
	Success(c, TotalResponse{Total: total})
}

// Table 获取表格形式的消费记录
// @Summary 获取消费记录表格
// @Tags 消费记录
// @Produce json
// @Success 200 {object} Response{data=TableResponse} "获取成功"
// @Router /api/v1/expenses/table [get]
func (h *ExpenseHandler) Table(c *gin.Context) {
	list, total, ok := h.load(c, "查询失败")
	if !ok {
		return
	}
	Success(c, TableResponse{
		Columns: Headers(ExpenseColumns),
		Rows:    Rows(ExpenseColumns, list),
		Total:   total.StringFixed(2),
	})
}

// GetCategories 获取消费类别列表
// @Summary 获取消费类别列表
// @Tags 消费记录
// @Produce json
// @Success 200 {object} Response{data=[]string} "获取成功"
// @Router /api/v1/categories [get]
func (h *ExpenseHandler) GetCategories(c *gin.Context) {
	Success(c, h.categories)
}

func (h *ExpenseHandler) respondList(c *gin.Context, message string) {
	list, total, ok := h.load(c, "查询失败")
	if !ok {
		return
	}
	Refreshed(c, message, list, total)
}

// load 读取列表和合计，失败时已写入错误响应
func (h *ExpenseHandler) load(c *gin.Context, fallback string) ([]models.Expense, decimal.Decimal, bool) {
	ctx := c.Request.Context()
	list, err := h.store.List(ctx)
	if err != nil {
		h.writeError(c, err, fallback)
		return nil, decimal.Zero, false
	}
	total, err := h.store.TotalAmount(ctx)
	if err != nil {
		h.writeError(c, err, fallback)
		return nil, decimal.Zero, false
	}
	return list, total, true
}

// writeError 按错误类型映射 HTTP 状态码
func (h *ExpenseHandler) writeError(c *gin.Context, err error, fallback string) {
	var ve *ValidationError
	switch {
	case errors.As(err, &ve):
		BadRequest(c, ve.Message)
	case errors.Is(err, database.ErrNotFound):
		NotFound(c, "记录不存在")
	default:
		InternalError(c, h.server.SafeErrorMessage(err, fallback))
	}
}

func parseID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil || id == 0 {
		BadRequest(c, "无效的ID")
		return 0, false
	}
	return uint(id), true
}
