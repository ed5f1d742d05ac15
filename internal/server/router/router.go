package router

import (
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/babetech/borastock/internal/server/handlers"
)

// Handlers groups the HTTP adapters wired into the engine.
type Handlers struct {
	Stock     *handlers.StockHandler
	Entries   *handlers.EntriesHandler
	Exits     *handlers.ExitsHandler
	Suppliers *handlers.SuppliersHandler
	Settings  *handlers.SettingsHandler
	Reports   *handlers.ReportsHandler
}

// New wires the Gin engine with required routes and middlewares.
func New(h Handlers, logger *zap.Logger) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(zapLoggerMiddleware(logger))

	api := r.Group("/api/v1")

	stock := api.Group("/stock")
	stock.GET("/items", h.Stock.List)
	stock.POST("/items", h.Stock.Create)
	stock.GET("/items/:id", h.Stock.Get)
	stock.PUT("/items/:id", h.Stock.Update)
	stock.DELETE("/items/:id", h.Stock.Delete)
	stock.GET("/stats", h.Stock.Stats)
	stock.PUT("/query", h.Stock.SetQuery)

	entries := api.Group("/entries")
	entries.GET("", h.Entries.List)
	entries.POST("", h.Entries.Create)
	entries.GET("/:id", h.Entries.Get)
	entries.PUT("/:id", h.Entries.Update)
	entries.DELETE("/:id", h.Entries.Delete)
	entries.GET("/stats", h.Entries.Stats)
	entries.PUT("/query", h.Entries.SetQuery)

	exits := api.Group("/exits")
	exits.GET("", h.Exits.List)
	exits.POST("", h.Exits.Create)
	exits.GET("/:id", h.Exits.Get)
	exits.PUT("/:id", h.Exits.Update)
	exits.DELETE("/:id", h.Exits.Delete)
	exits.GET("/stats", h.Exits.Stats)
	exits.PUT("/query", h.Exits.SetQuery)

	suppliers := api.Group("/suppliers")
	suppliers.GET("", h.Suppliers.List)
	suppliers.POST("", h.Suppliers.Create)
	suppliers.GET("/:id", h.Suppliers.Get)
	suppliers.PUT("/:id", h.Suppliers.Update)
	suppliers.DELETE("/:id", h.Suppliers.Delete)
	suppliers.GET("/stats", h.Suppliers.Stats)
	suppliers.PUT("/query", h.Suppliers.SetQuery)

	settings := api.Group("/settings")
	settings.GET("/company", h.Settings.GetCompanyInfo)
	settings.PUT("/company", h.Settings.PutCompanyInfo)
	settings.GET("/preferences", h.Settings.GetPreferences)
	settings.PUT("/preferences", h.Settings.PutPreferences)

	reports := api.Group("/reports")
	reports.POST("/daily/run", h.Reports.Run)
	reports.GET("/daily", h.Reports.History)

	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	if logger != nil {
		logger.Info("router initialized")
	}

	return r
}

func zapLoggerMiddleware(logger *zap.Logger) gin.HandlerFunc {
	if logger == nil {
		logger = zap.NewNop()
	}

	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		logger.Info("request completed",
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
			zap.Int("status", c.Writer.Status()),
			zap.Duration("duration", time.Since(start)),
			zap.String("client_ip", c.ClientIP()))
	}
}
