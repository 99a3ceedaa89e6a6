package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// DateLayout 日期的存储与传输格式
const DateLayout = "2006-01-02"

// Expense 消费记录模型
// ID 为 0 表示尚未持久化
type Expense struct {
	ID          uint            `json:"id" gorm:"primaryKey;autoIncrement"`
	Description string          `json:"description" gorm:"size:255;not null"`
	Amount      decimal.Decimal `json:"amount" gorm:"type:decimal(12,2);not null"`
	Date        time.Time       `json:"date" gorm:"column:date;type:date;not null"`
	Category    string          `json:"category" gorm:"size:50;not null"`
}

// TableName 设置表名
func (Expense) TableName() string {
	return "expenses"
}

// ExpenseInput 新建消费记录的值对象，不含 ID
type ExpenseInput struct {
	Description string
	Amount      decimal.Decimal
	Date        time.Time
	Category    string
}

// NewExpense 由输入构造未持久化的消费记录
func NewExpense(in ExpenseInput) Expense {
	return Expense{
		Description: in.Description,
		Amount:      in.Amount,
		Date:        TruncateDate(in.Date),
		Category:    in.Category,
	}
}

// Input 取出记录中的四个业务字段
func (e Expense) Input() ExpenseInput {
	return ExpenseInput{
		Description: e.Description,
		Amount:      e.Amount,
		Date:        e.Date,
		Category:    e.Category,
	}
}

// IsPersisted 是否已分配 ID
func (e Expense) IsPersisted() bool {
	return e.ID != 0
}

// TruncateDate 去掉时分秒，只保留日历日期
func TruncateDate(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// Category 消费类别常量
const (
	CategoryFood          = "餐饮"
	CategoryTransport     = "交通"
	CategoryShopping      = "购物"
	CategoryEntertainment = "娱乐"
	CategoryMedical       = "医疗"
	CategoryEducation     = "教育"
	CategoryHousing       = "住房"
	CategoryOther         = "其他"
)

// GetCategories 获取默认消费类别
func GetCategories() []string {
	return []string{
		CategoryFood,
		CategoryTransport,
		CategoryShopping,
		CategoryEntertainment,
		CategoryMedical,
		CategoryEducation,
		CategoryHousing,
		CategoryOther,
	}
}
