package main

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"bookcms-backend/internal/shared/middleware"
	"bookcms-backend/pkg/container"
)

func SetupRouter(c *container.Container) *gin.Engine {
	router := gin.New()

	router.Use(
		middleware.Recovery(),
		middleware.RequestID(),
		middleware.Logger(),
		middleware.CORS(),
	)

	v1 := router.Group("/api/v1")
	{
		v1.GET("/health", healthCheckHandler(c))

		v1.GET("/home", c.HomeHandler.Get)

		setupCatalogRoutes(v1, c)
		setupCategoryRoutes(v1, c)
		setupAuthorRoutes(v1, c)
		setupNewsRoutes(v1, c)
		setupContactRoutes(v1, c)
	}

	return router
}

func setupCatalogRoutes(v1 *gin.RouterGroup, c *container.Container) {
	catalog := v1.Group("/catalog")
	{
		catalog.GET("", c.BookHandler.List)
		catalog.POST("", c.BookHandler.Create)
		catalog.GET("/:slug", c.BookHandler.GetBySlug)
	}
}

func setupCategoryRoutes(v1 *gin.RouterGroup, c *container.Container) {
	categories := v1.Group("/categories")
	{
		categories.GET("", c.CategoryHandler.GetAll)
		categories.POST("", c.CategoryHandler.Create)
	}
}

func setupAuthorRoutes(v1 *gin.RouterGroup, c *container.Container) {
	authors := v1.Group("/authors")
	{
		authors.GET("", c.AuthorHandler.List)
		authors.POST("", c.AuthorHandler.Create)
		authors.GET("/:slug", c.AuthorHandler.GetBySlug)
	}

	v1.GET("/author-categories", c.AuthorHandler.GetCategories)
}

func setupNewsRoutes(v1 *gin.RouterGroup, c *container.Container) {
	news := v1.Group("/news")
	{
		news.GET("", c.NewsHandler.List)
		news.POST("", c.NewsHandler.Create)
		news.GET("/:slug", c.NewsHandler.GetBySlug)
	}
}

func setupContactRoutes(v1 *gin.RouterGroup, c *container.Container) {
	contacts := v1.Group("/contacts")
	{
		contacts.GET("/subjects", c.ContactHandler.GetSubjects)
		contacts.POST("", c.ContactHandler.Submit)
	}

	// TODO: add auth middleware once the admin panel gets accounts
	admin := v1.Group("/admin/contacts")
	{
		admin.GET("", c.ContactHandler.List)
		admin.PATCH("/:id/processed", c.ContactHandler.MarkProcessed)
	}
}

func healthCheckHandler(appCtx *container.Container) gin.HandlerFunc {
	return func(c *gin.Context) {
		health := gin.H{
			"status":    "ok",
			"timestamp": time.Now().Format(time.RFC3339),
			"version":   appCtx.Config.App.Version,
		}

		dbStatus := "ok"
		if appCtx.DB == nil || appCtx.DB.Pool == nil {
			dbStatus = "disconnected"
		} else {
			ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
			defer cancel()

			if err := appCtx.DB.HealthCheck(ctx); err != nil {
				dbStatus = fmt.Sprintf("error: %v", err)
			}
		}

		redisStatus := "ok"
		if appCtx.Cache == nil {
			redisStatus = "disconnected"
		} else {
			ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
			defer cancel()

			if err := appCtx.Cache.Ping(ctx); err != nil {
				redisStatus = fmt.Sprintf("error: %v", err)
			}
		}

		health["services"] = gin.H{
			"database": dbStatus,
			"redis":    redisStatus,
		}

		statusCode := http.StatusOK
		if dbStatus != "ok" {
			health["status"] = "degraded"
			statusCode = http.StatusServiceUnavailable
		}

		c.JSON(statusCode, health)
	}
}
