package router

import (
	"context"
	"net/http/httptest"
	"strings"
	"testing"

	"expenses/config"
	"expenses/models"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

// memStore 内存实现，仅用于路由测试
type memStore struct {
	list []models.Expense
}

func (m *memStore) Create(_ context.Context, in models.ExpenseInput) (models.Expense, error) {
	e := models.NewExpense(in)
	e.ID = uint(len(m.list) + 1)
	m.list = append(m.list, e)
	return e, nil
}

func (m *memStore) List(context.Context) ([]models.Expense, error) {
	return append([]models.Expense{}, m.list...), nil
}

func (m *memStore) Update(context.Context, models.Expense) error { return nil }

func (m *memStore) Delete(context.Context, uint) error { return nil }

func (m *memStore) TotalAmount(context.Context) (decimal.Decimal, error) {
	total := decimal.Zero
	for _, e := range m.list {
		total = total.Add(e.Amount)
	}
	return total, nil
}

func TestSetupRouter(t *testing.T) {
	cfg := &config.Config{
		Server: config.ServerConfig{Mode: gin.TestMode},
		App:    config.AppConfig{Categories: []string{"Food"}},
	}
	r := SetupRouter(cfg, &memStore{}, zap.NewNop())

	routes := map[string]bool{}
	for _, info := range r.Routes() {
		routes[info.Method+" "+info.Path] = true
	}
	for _, want := range []string{
		"GET /api/v1/categories",
		"GET /api/v1/expenses",
		"POST /api/v1/expenses",
		"GET /api/v1/expenses/total",
		"GET /api/v1/expenses/table",
		"PUT /api/v1/expenses/:id",
		"DELETE /api/v1/expenses/:id",
		"GET /api/v1/export/csv",
		"GET /api/v1/export/excel",
		"GET /health",
	} {
		assert.True(t, routes[want], want)
	}

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest("GET", "/health", nil))
	assert.Equal(t, 200, w.Code)
}

func TestSetupRouter_CreateRefreshesTotal(t *testing.T) {
	cfg := &config.Config{
		Server: config.ServerConfig{Mode: gin.TestMode},
		App:    config.AppConfig{Categories: []string{"Food"}},
	}
	store := &memStore{}
	r := SetupRouter(cfg, store, zap.NewNop())

	for _, body := range []string{
		"description=Lunch&amount=10.0&date=2024-03-01&category=Food",
		"description=Snack&amount=5,5&date=2024-03-01&category=Food",
	} {
		req := httptest.NewRequest("POST", "/api/v1/expenses", strings.NewReader(body))
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		assert.Equal(t, 200, w.Code)
	}

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest("GET", "/api/v1/expenses/total", nil))
	assert.Equal(t, 200, w.Code)
	assert.Contains(t, w.Body.String(), `"total":"15.5"`)
	assert.Len(t, store.list, 2)
}
