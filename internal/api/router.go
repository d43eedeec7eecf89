// Package api serves the scorer over HTTP with gin.
package api

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"mahjong-go/internal/config"
)

// SetupRouter wires middleware and routes. health may be nil.
func SetupRouter(cfg config.HTTPConfig, logger *slog.Logger, handler *ScoreHandler, health http.Handler) *gin.Engine {
	if cfg.Mode != "" {
		gin.SetMode(cfg.Mode)
	}

	r := gin.New()

	r.Use(gin.Recovery())
	r.Use(RequestLogger(logger))
	r.Use(CORS(cfg.CORSOrigins))

	if health != nil {
		r.GET("/health", gin.WrapH(health))
	}

	v1 := r.Group("/api/v1")
	{
		v1.POST("/score", handler.Score)
		v1.POST("/score/all", handler.ScoreAll)
		v1.POST("/waits", handler.Waits)
		v1.GET("/yaku", handler.Yaku)
	}

	return r
}
