package main

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"bookcatalog-backend/internal/shared/middleware"
	"bookcatalog-backend/pkg/container"
)

// SetupRouter maps the HTTP surface onto handlers. Trailing-slash variants
// of every path are served through gin's default redirect.
func SetupRouter(c *container.Container) *gin.Engine {
	router := gin.New()
	router.Use(
		middleware.Recovery(),
		middleware.RequestID(),
		middleware.Logger(),
	)

	v1 := router.Group("/api/v1")
	{
		v1.GET("/health", healthCheckHandler(c))

		setupCategoryRoutes(v1, c)
		setupBookRoutes(v1, c)
	}

	return router
}

func setupCategoryRoutes(v1 *gin.RouterGroup, c *container.Container) {
	categories := v1.Group("/categories")
	{
		categories.GET("", c.CategoryHandler.List)
		categories.POST("", c.CategoryHandler.Create)
		categories.GET("/:id", c.CategoryHandler.GetByID)
		categories.PUT("/:id", c.CategoryHandler.Replace)
		categories.DELETE("/:id", c.CategoryHandler.Delete)

		// Category-scoped book collection: the path category owns every
		// book created here.
		categories.GET("/:id/books", c.BookHandler.ListByCategory)
		categories.POST("/:id/books", c.BookHandler.CreateInCategory)
	}
}

func setupBookRoutes(v1 *gin.RouterGroup, c *container.Container) {
	books := v1.Group("/books")
	{
		books.GET("", c.BookHandler.List)
		books.POST("", c.BookHandler.Create)
		books.GET("/:id", c.BookHandler.GetByID)
		books.PATCH("/:id", c.BookHandler.Patch)
		books.DELETE("/:id", c.BookHandler.Delete)
	}
}

func healthCheckHandler(c *container.Container) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		status := http.StatusOK
		dbStatus := "up"
		if err := c.DB.HealthCheck(ctx.Request.Context()); err != nil {
			status = http.StatusServiceUnavailable
			dbStatus = "down"
		}

		cacheStatus := "up"
		if err := c.Cache.Ping(ctx.Request.Context()); err != nil {
			// Cache is best-effort; report but stay healthy.
			cacheStatus = "down"
		}

		ctx.JSON(status, gin.H{
			"status":    dbStatus,
			"cache":     cacheStatus,
			"version":   c.Config.App.Version,
			"timestamp": time.Now().UTC(),
		})
	}
}
