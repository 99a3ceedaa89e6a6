package api

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"
)

const (
	exportSheetName = "消费记录"
	xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
)

// ExportHandler 导出处理器
type ExportHandler struct {
	expenses *ExpenseHandler
}

// NewExportHandler 创建导出处理器
func NewExportHandler(expenses *ExpenseHandler) *ExportHandler {
	return &ExportHandler{expenses: expenses}
}

// ExportCSV 导出消费记录为 CSV
// @Summary 导出消费记录
// @Tags 导出
// @Produce text/csv
// @Success 200 {file} file "CSV 文件"
// @Failure 500 {object} Response "导出失败"
// @Router /api/v1/export/csv [get]
func (h *ExportHandler) ExportCSV(c *gin.Context) {
	list, total, ok := h.expenses.load(c, "查询数据失败")
	if !ok {
		return
	}

	buf := new(bytes.Buffer)
	// 添加 BOM 以支持 Excel 中文显示
	buf.WriteString("\xEF\xBB\xBF")

	writer := csv.NewWriter(buf)
	if err := writer.Write(Headers(ExpenseColumns)); err != nil {
		InternalError(c, "生成 CSV 失败")
		return
	}
	if err := writer.WriteAll(Rows(ExpenseColumns, list)); err != nil {
		InternalError(c, "生成 CSV 失败")
		return
	}
	summary := make([]string, len(ExpenseColumns))
	summary[0] = "合计"
	summary[len(summary)-1] = total.StringFixed(2)
	if err := writer.Write(summary); err != nil {
		InternalError(c, "生成 CSV 失败")
		return
	}
	writer.Flush()
	if err := writer.Error(); err != nil {
		InternalError(c, "生成 CSV 失败")
		return
	}

	c.Header("Content-Disposition", "attachment; filename=expenses.csv")
	c.Data(http.StatusOK, "text/csv; charset=utf-8", buf.Bytes())
}

// ExportExcel 导出消费记录为 Excel
// @Summary 导出消费记录为 Excel
// @Tags 导出
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Success 200 {file} file "Excel 文件"
// @Failure 500 {object} Response "导出失败"
// @Router /api/v1/export/excel [get]
func (h *ExportHandler) ExportExcel(c *gin.Context) {
	list, total, ok := h.expenses.load(c, "查询数据失败")
	if !ok {
		return
	}

	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", exportSheetName); err != nil {
		InternalError(c, "生成 Excel 失败")
		return
	}

	if err := writeExpenseSheet(f, Rows(ExpenseColumns, list), total.StringFixed(2)); err != nil {
		h.expenses.log.Error("生成 Excel 失败", zap.Error(err))
		InternalError(c, "生成 Excel 失败")
		return
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		InternalError(c, "生成 Excel 失败")
		return
	}

	c.Header("Content-Disposition", "attachment; filename=expenses.xlsx")
	c.Data(http.StatusOK, xlsxContentType, buf.Bytes())
}

// writeExpenseSheet 写入表头、数据行和合计行，并设置样式
func writeExpenseSheet(f *excelize.File, rows [][]string, total string) error {
	border := []excelize.Border{
		{Type: "left", Color: "000000", Style: 1},
		{Type: "top", Color: "000000", Style: 1},
		{Type: "bottom", Color: "000000", Style: 1},
		{Type: "right", Color: "000000", Style: 1},
	}
	headerStyle, err := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Size: 12, Color: "FFFFFF"},
		Fill:      excelize.Fill{Type: "pattern", Color: []string{"4F81BD"}, Pattern: 1},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
		Border:    border,
	})
	if err != nil {
		return fmt.Errorf("创建表头样式: %w", err)
	}
	summaryStyle, err := f.NewStyle(&excelize.Style{
		Font:   &excelize.Font{Bold: true, Size: 11},
		Fill:   excelize.Fill{Type: "pattern", Color: []string{"FFC000"}, Pattern: 1},
		Border: border,
	})
	if err != nil {
		return fmt.Errorf("创建合计样式: %w", err)
	}

	lastCol, err := excelize.ColumnNumberToName(len(ExpenseColumns))
	if err != nil {
		return err
	}
	if err := f.SetColWidth(exportSheetName, "A", lastCol, 18); err != nil {
		return err
	}

	if err := f.SetSheetRow(exportSheetName, "A1", ptrRow(Headers(ExpenseColumns))); err != nil {
		return err
	}
	if err := f.SetCellStyle(exportSheetName, "A1", lastCol+"1", headerStyle); err != nil {
		return err
	}

	for i, row := range rows {
		if err := f.SetSheetRow(exportSheetName, fmt.Sprintf("A%d", i+2), ptrRow(row)); err != nil {
			return err
		}
	}

	first := fmt.Sprintf("A%d", len(rows)+2)
	last := fmt.Sprintf("%s%d", lastCol, len(rows)+2)
	if err := f.SetCellValue(exportSheetName, first, "合计"); err != nil {
		return err
	}
	if err := f.SetCellValue(exportSheetName, last, total); err != nil {
		return err
	}
	return f.SetCellStyle(exportSheetName, first, last, summaryStyle)
}

// ptrRow SetSheetRow 需要指向切片的指针
func ptrRow(row []string) *[]string {
	return &row
}
