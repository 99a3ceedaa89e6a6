package api

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"expenses/models"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestRefreshed(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name     string
		list     []models.Expense
		total    decimal.Decimal
		contains []string
	}{
		{
			name:     "nil list renders empty array",
			list:     nil,
			total:    decimal.Zero,
			contains: []string{`"list":[]`, `"total":"0"`},
		},
		{
			name: "list with total",
			list: []models.Expense{{
				ID:          1,
				Description: "Lunch",
				Amount:      decimal.RequireFromString("25.50"),
				Date:        time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC),
				Category:    "Food",
			}},
			total:    decimal.RequireFromString("25.5"),
			contains: []string{`"id":1`, `"description":"Lunch"`, `"total":"25.5"`},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(w)

			Refreshed(c, "创建成功", tt.list, tt.total)

			assert.Equal(t, http.StatusOK, w.Code)
			assert.Contains(t, w.Body.String(), `"message":"创建成功"`)
			for _, want := range tt.contains {
				assert.Contains(t, w.Body.String(), want)
			}
		})
	}
}
