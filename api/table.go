package api

import (
	"strconv"

	"expenses/models"
)

// DisplayDateLayout 表格与导出中的日期格式
const DisplayDateLayout = "02/01/2006"

// Column 表格列：表头与取值函数
type Column struct {
	Header string
	Value  func(models.Expense) string
}

// ExpenseColumns 消费记录表格的列定义，表格接口与导出共用
var ExpenseColumns = []Column{
	{Header: "ID", Value: func(e models.Expense) string { return strconv.FormatUint(uint64(e.ID), 10) }},
	{Header: "描述", Value: func(e models.Expense) string { return e.Description }},
	{Header: "类别", Value: func(e models.Expense) string { return e.Category }},
	{Header: "日期", Value: func(e models.Expense) string { return e.Date.Format(DisplayDateLayout) }},
	{Header: "金额", Value: func(e models.Expense) string { return e.Amount.StringFixed(2) }},
}

// Headers 返回所有列的表头
func Headers(columns []Column) []string {
	headers := make([]string, len(columns))
	for i, col := range columns {
		headers[i] = col.Header
	}
	return headers
}

// Rows 按列定义把记录渲染成字符串表格
func Rows(columns []Column, expenses []models.Expense) [][]string {
	rows := make([][]string, 0, len(expenses))
	for _, e := range expenses {
		row := make([]string, len(columns))
		for i, col := range columns {
			row[i] = col.Value(e)
		}
		rows = append(rows, row)
	}
	return rows
}
