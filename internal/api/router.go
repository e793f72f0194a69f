package api

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"

	"rezeptplaner/internal/config"
)

// SetupRouter wires the middleware stack and routes around a Handler.
func SetupRouter(cfg *config.Config, handler *Handler) *gin.Engine {
	r := gin.New()

	r.Use(requestid.New())
	r.Use(RequestLogger())
	r.Use(Recovery())
	r.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.CORS.AllowOrigins,
		AllowMethods:     []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	r.GET("/healthz", handler.Health)
	r.POST("/api/recipes", handler.CreateRecipe)

	return r
}
