// Package server exposes the engine over HTTP for the web frontend.
package server

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// NewRouter builds the gin engine with all routes registered.
func NewRouter(h *Handler) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:3000", "http://localhost:5173"},
		AllowMethods:     []string{"GET", "POST", "PATCH", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	r.GET("/healthcheck", h.HealthCheck)

	api := r.Group("/api")
	{
		api.GET("/stats", h.GetStats)

		api.GET("/session/next", h.GetNextSession)
		api.POST("/session/answer", h.PostAnswer)
		api.POST("/session/close", h.PostClose)

		api.GET("/categories", h.GetCategories)
		api.PATCH("/categories/:id", h.PatchCategory)

		api.GET("/questions", h.GetQuestions)
		api.POST("/questions/import", h.PostImport)
	}

	return r
}
