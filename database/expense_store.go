package database

import (
	"context"
	"errors"
	"fmt"

	"expenses/config"
	"expenses/models"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// ExpenseStore 消费记录存储
// 每次调用使用独立的会话，写操作在事务中执行，出错即回滚
type ExpenseStore struct {
	db  *gorm.DB
	log *zap.Logger
}

// NewExpenseStore 基于已打开的连接创建存储
func NewExpenseStore(db *gorm.DB, log *zap.Logger) *ExpenseStore {
	return &ExpenseStore{db: db, log: log.Named("store")}
}

// OpenExpenseStore 按配置打开数据库并创建存储，调用方负责 Close
func OpenExpenseStore(cfg config.DatabaseConfig, log *zap.Logger) (*ExpenseStore, error) {
	db, err := Open(cfg, log)
	if err != nil {
		return nil, err
	}
	return NewExpenseStore(db, log), nil
}

// Close 释放连接池
func (s *ExpenseStore) Close() error {
	return Close(s.db)
}

// Create 新增消费记录，返回带 ID 的记录
func (s *ExpenseStore) Create(ctx context.Context, in models.ExpenseInput) (models.Expense, error) {
	expense := models.NewExpense(in)
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return tx.Create(&expense).Error
	})
	if err != nil {
		return models.Expense{}, s.fail("create", err)
	}
	return expense, nil
}

// List 按 ID 升序返回全部记录，无记录时返回空切片
func (s *ExpenseStore) List(ctx context.Context) ([]models.Expense, error) {
	expenses := make([]models.Expense, 0)
	if err := s.db.WithContext(ctx).Order("id ASC").Find(&expenses).Error; err != nil {
		return nil, s.fail("list", err)
	}
	return expenses, nil
}

// Update 整体替换四个业务字段，ID 不存在时返回 ErrNotFound
func (s *ExpenseStore) Update(ctx context.Context, expense models.Expense) error {
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var existing models.Expense
		if err := tx.First(&existing, expense.ID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fmt.Errorf("更新消费记录 %d: %w", expense.ID, ErrNotFound)
			}
			return err
		}

		return tx.Model(&existing).Updates(map[string]interface{}{
			"description": expense.Description,
			"amount":      expense.Amount,
			"date":        models.TruncateDate(expense.Date),
			"category":    expense.Category,
		}).Error
	})
	if errors.Is(err, ErrNotFound) {
		return err
	}
	if err != nil {
		return s.fail("update", err)
	}
	return nil
}

// Delete 删除记录，记录不存在时不做任何操作
func (s *ExpenseStore) Delete(ctx context.Context, id uint) error {
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var existing models.Expense
		if err := tx.First(&existing, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil
			}
			return err
		}
		return tx.Delete(&existing).Error
	})
	if err != nil {
		return s.fail("delete", err)
	}
	return nil
}

// TotalAmount 统计全部金额，无记录时为 0
func (s *ExpenseStore) TotalAmount(ctx context.Context) (decimal.Decimal, error) {
	var total decimal.Decimal
	row := s.db.WithContext(ctx).
		Model(&models.Expense{}).
		Select("COALESCE(SUM(amount), 0)").
		Row()
	if err := row.Scan(&total); err != nil {
		return decimal.Zero, s.fail("total", err)
	}
	return total, nil
}

func (s *ExpenseStore) fail(op string, err error) error {
	s.log.Error("数据库操作失败", zap.String("op", op), zap.Error(err))
	return &StorageError{Op: op, Err: err}
}
