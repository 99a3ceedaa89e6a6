package models

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestNewExpense(t *testing.T) {
	in := ExpenseInput{
		Description: "Lunch",
		Amount:      decimal.RequireFromString("25.50"),
		Date:        time.Date(2024, 3, 1, 13, 45, 0, 0, time.Local),
		Category:    "Food",
	}

	e := NewExpense(in)
	assert.False(t, e.IsPersisted())
	assert.Equal(t, "Lunch", e.Description)
	assert.True(t, e.Amount.Equal(decimal.RequireFromString("25.5")))
	assert.Equal(t, "2024-03-01", e.Date.Format(DateLayout))
	assert.Zero(t, e.Date.Hour())
	assert.Equal(t, "Food", e.Category)

	e.ID = 7
	assert.True(t, e.IsPersisted())
	assert.Equal(t, in.Description, e.Input().Description)
}

func TestGetCategories(t *testing.T) {
	cats := GetCategories()
	assert.Len(t, cats, 8)
	assert.Equal(t, CategoryFood, cats[0])
	assert.Equal(t, CategoryOther, cats[len(cats)-1])
}
