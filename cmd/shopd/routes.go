package main

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/wrenchworks/shop/internal/shop/handler"
	"gorm.io/gorm"
)

func registerRoutes(r *gin.Engine, h *handler.Handlers, db *gorm.DB) {
	r.GET("/health/live", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	r.GET("/health/ready", func(c *gin.Context) {
		sqlDB, err := db.DB()
		if err == nil {
			err = sqlDB.PingContext(c.Request.Context())
		}
		if err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unavailable"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	r.GET("/version", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"version":    Version,
			"build_time": BuildTime,
		})
	})

	api := r.Group("/api")
	{
		customers := api.Group("/customers")
		{
			customers.GET("", h.Customer.List)
			customers.GET("/:id", h.Customer.Get)
			customers.POST("", h.Customer.Create)
			customers.DELETE("/:id", h.Customer.Delete)
			customers.GET("/:id/orders", h.Customer.Orders)
		}

		vehicles := api.Group("/vehicles")
		{
			vehicles.GET("", h.Vehicle.List)
			vehicles.GET("/:id", h.Vehicle.Get)
			vehicles.POST("", h.Vehicle.Create)
			vehicles.DELETE("/:id", h.Vehicle.Delete)
			vehicles.GET("/:id/history", h.Vehicle.History)
		}

		orders := api.Group("/repairorders")
		{
			orders.GET("", h.Order.List)
			orders.GET("/search", h.Order.Search)
			orders.GET("/status/:status", h.Order.ByStatus)
			orders.GET("/:id", h.Order.Get)
			orders.POST("", h.Order.Create)
			orders.PATCH("/:id/status", h.Order.UpdateStatus)
			orders.DELETE("/:id", h.Order.Delete)
		}

		api.GET("/dashboard/statistics", h.Dashboard.Statistics)
	}
}
