package router

import (
	"expenses/api"
	"expenses/config"
	"expenses/middleware"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// SetupRouter 设置路由
func SetupRouter(cfg *config.Config, store api.RecordStore, log *zap.Logger) *gin.Engine {
	if cfg.Server.Mode != "" {
		gin.SetMode(cfg.Server.Mode)
	}

	r := gin.New()
	r.Use(middleware.Recovery(log))
	r.Use(middleware.RequestLogger(log.Named("http")))
	r.Use(middleware.CORS())

	expenseHandler := api.NewExpenseHandler(store, cfg, log)
	exportHandler := api.NewExportHandler(expenseHandler)

	v1 := r.Group("/api/v1")
	{
		v1.GET("/categories", expenseHandler.GetCategories)

		expenses := v1.Group("/expenses")
		{
			expenses.GET("", expenseHandler.List)
			expenses.POST("", expenseHandler.Create)
			expenses.GET("/total", expenseHandler.Total)
			expenses.GET("/table", expenseHandler.Table)
			expenses.PUT("/:id", expenseHandler.Update)
			expenses.DELETE("/:id", expenseHandler.Delete)
		}

		export := v1.Group("/export")
		{
			export.GET("/csv", exportHandler.ExportCSV)
			export.GET("/excel", exportHandler.ExportExcel)
		}
	}

	// 健康检查
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status": "ok",
		})
	})

	return r
}
