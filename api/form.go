package api

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"expenses/models"

	"github.com/shopspring/decimal"
)

// 表单接受的日期格式，依次尝试
var dateLayouts = []string{models.DateLayout, "02/01/2006"}

// ValidationError 表单字段缺失或无法解析
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// AmountText 金额原文，JSON 中可以是数字也可以是字符串
type AmountText string

func (a *AmountText) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*a = ""
		return nil
	}
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*a = AmountText(s)
		return nil
	}
	*a = AmountText(data)
	return nil
}

// ExpenseForm 消费记录表单，字段保持用户输入的原文
type ExpenseForm struct {
	Description string     `json:"description" form:"description" binding:"required" example:"午餐"`
	Amount      AmountText `json:"amount" form:"amount" binding:"required" example:"25,50"`
	Date        string     `json:"date" form:"date" binding:"required" example:"2024-03-01"`
	Category    string     `json:"category" form:"category" binding:"required" example:"餐饮"`
}

// Parse 校验并转换表单，categories 为允许的类别，为空时不校验类别
func (f ExpenseForm) Parse(categories []string) (models.ExpenseInput, error) {
	description := strings.TrimSpace(f.Description)
	if description == "" {
		return models.ExpenseInput{}, &ValidationError{Field: "description", Message: "描述不能为空"}
	}

	amount, err := ParseAmount(string(f.Amount))
	if err != nil {
		return models.ExpenseInput{}, err
	}

	date, err := ParseDate(f.Date)
	if err != nil {
		return models.ExpenseInput{}, err
	}

	category := strings.TrimSpace(f.Category)
	if category == "" {
		return models.ExpenseInput{}, &ValidationError{Field: "category", Message: "类别不能为空"}
	}
	if len(categories) > 0 && !containsCategory(categories, category) {
		return models.ExpenseInput{}, &ValidationError{Field: "category", Message: "无效的消费类别"}
	}

	return models.ExpenseInput{
		Description: description,
		Amount:      amount,
		Date:        date,
		Category:    category,
	}, nil
}

// ParseAmount 解析金额，逗号视为小数点，如 "150,50"
func ParseAmount(s string) (decimal.Decimal, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return decimal.Zero, &ValidationError{Field: "amount", Message: "金额不能为空"}
	}
	amount, err := decimal.NewFromString(strings.ReplaceAll(s, ",", "."))
	if err != nil {
		return decimal.Zero, &ValidationError{Field: "amount", Message: "金额必须为数字，如 150.50"}
	}
	return amount, nil
}

// ParseDate 解析日期，支持 2006-01-02 和 02/01/2006
func ParseDate(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, &ValidationError{Field: "date", Message: "日期不能为空"}
	}
	for _, layout := range dateLayouts {
		if t, err := time.ParseInLocation(layout, s, time.UTC); err == nil {
			return t, nil
		}
	}
	return time.Time{}, &ValidationError{Field: "date", Message: "日期格式错误，应为: 2006-01-02 或 02/01/2006"}
}

func containsCategory(categories []string, category string) bool {
	for _, c := range categories {
		if c == category {
			return true
		}
	}
	return false
}
