package main

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"dictionary-backend/internal/shared/middleware"
	"dictionary-backend/pkg/container"
)

func SetupRouter(c *container.Container) *gin.Engine {
	router := gin.New()

	router.Use(
		middleware.Recovery(),
		middleware.RequestID(),
		middleware.Logger(),
		middleware.CORS(),
	)

	router.GET("/api/health", healthCheckHandler(c))

	v1 := router.Group("/v1")
	{
		names := v1.Group("/names")
		{
			names.POST("", c.NameHandler.AddName)
			names.GET("", c.NameHandler.GetAllNames)
			names.POST("/upload", c.NameHandler.Upload)
			names.POST("/batch", c.NameHandler.AddBatch)
			names.DELETE("", c.NameHandler.DeleteAllNames)
			names.GET("/:name", c.NameHandler.GetName)
			names.PUT("/:name", c.NameHandler.UpdateName)
			names.DELETE("/:name", c.NameHandler.DeleteName)
		}

		v1.GET("/geolocations", c.GeoHandler.GetAll)
	}

	return router
}

func healthCheckHandler(appCtx *container.Container) gin.HandlerFunc {
	return func(c *gin.Context) {
		health := gin.H{
			"status":    "ok",
			"timestamp": time.Now().Format(time.RFC3339),
			"version":   appCtx.Config.App.Version,
		}

		dbStatus := "ok"
		ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
		defer cancel()
		if err := appCtx.DB.HealthCheck(ctx); err != nil {
			dbStatus = "error: " + err.Error()
			health["status"] = "degraded"
		}

		redisStatus := "ok"
		if err := appCtx.Cache.Ping(ctx); err != nil {
			redisStatus = "error: " + err.Error()
		}

		health["services"] = gin.H{
			"database": dbStatus,
			"redis":    redisStatus,
		}

		statusCode := http.StatusOK
		if dbStatus != "ok" {
			statusCode = http.StatusServiceUnavailable
		}

		c.JSON(statusCode, health)
	}
}
