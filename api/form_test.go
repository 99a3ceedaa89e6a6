package api

import (
	"encoding/json"
	"errors"
	"testing"

	"expenses/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testCategories = []string{"Food", "Transport"}

func TestExpenseForm_Parse(t *testing.T) {
	form := ExpenseForm{
		Description: "  Lunch ",
		Amount:      "25,50",
		Date:        "2024-03-01",
		Category:    "Food",
	}

	in, err := form.Parse(testCategories)
	require.NoError(t, err)
	assert.Equal(t, "Lunch", in.Description)
	assert.Equal(t, "25.5", in.Amount.String())
	assert.Equal(t, "2024-03-01", in.Date.Format(models.DateLayout))
	assert.Equal(t, "Food", in.Category)

	// 日/月/年格式
	form.Date = "01/03/2024"
	in, err = form.Parse(testCategories)
	require.NoError(t, err)
	assert.Equal(t, "2024-03-01", in.Date.Format(models.DateLayout))
}

func TestExpenseForm_ParseErrors(t *testing.T) {
	valid := ExpenseForm{Description: "Lunch", Amount: "10", Date: "2024-03-01", Category: "Food"}

	cases := []struct {
		name  string
		edit  func(f *ExpenseForm)
		field string
	}{
		{"空描述", func(f *ExpenseForm) { f.Description = "   " }, "description"},
		{"空金额", func(f *ExpenseForm) { f.Amount = "" }, "amount"},
		{"非数字金额", func(f *ExpenseForm) { f.Amount = "abc" }, "amount"},
		{"千分位加逗号", func(f *ExpenseForm) { f.Amount = "1.234,56" }, "amount"},
		{"空日期", func(f *ExpenseForm) { f.Date = "" }, "date"},
		{"日期格式错误", func(f *ExpenseForm) { f.Date = "2024/03/01" }, "date"},
		{"空类别", func(f *ExpenseForm) { f.Category = "" }, "category"},
		{"未知类别", func(f *ExpenseForm) { f.Category = "Travel" }, "category"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			form := valid
			tc.edit(&form)
			_, err := form.Parse(testCategories)

			var ve *ValidationError
			require.True(t, errors.As(err, &ve))
			assert.Equal(t, tc.field, ve.Field)
		})
	}
}

func TestExpenseForm_ParseWithoutCategorySet(t *testing.T) {
	form := ExpenseForm{Description: "Lunch", Amount: "10", Date: "2024-03-01", Category: "Anything"}
	in, err := form.Parse(nil)
	require.NoError(t, err)
	assert.Equal(t, "Anything", in.Category)
}

func TestAmountText_UnmarshalJSON(t *testing.T) {
	var form ExpenseForm
	require.NoError(t, json.Unmarshal([]byte(`{"amount": 99.99}`), &form))
	assert.Equal(t, AmountText("99.99"), form.Amount)

	require.NoError(t, json.Unmarshal([]byte(`{"amount": "150,50"}`), &form))
	assert.Equal(t, AmountText("150,50"), form.Amount)

	require.NoError(t, json.Unmarshal([]byte(`{"amount": null}`), &form))
	assert.Equal(t, AmountText(""), form.Amount)
}
