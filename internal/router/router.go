package router

import (
	"github.com/gin-gonic/gin"

	"taxdoc/internal/config"
	"taxdoc/internal/handler"
	"taxdoc/internal/middleware"
)

// Setup configures the Gin engine with all routes and middleware.
func Setup(
	cfg *config.Config,
	docH *handler.DocumentHandler,
	healthH *handler.HealthHandler,
) *gin.Engine {
	if cfg.Server.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()

	// Global middleware
	r.Use(middleware.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger())
	r.Use(middleware.CORS(cfg.CORS.AllowedOrigins))

	// Health checks
	r.GET("/healthz", healthH.Liveness)
	r.GET("/readyz", healthH.Readiness)

	v1 := r.Group("/api/v1")
	v1.Use(middleware.Auth(cfg.Auth.JWTSecret, cfg.Auth.Issuer))

	docs := v1.Group("/documents")
	docs.POST("/process", docH.Process)
	docs.POST("/classify", docH.Classify)
	docs.POST("/batch", docH.Batch)
	docs.POST("/estimate", docH.Estimate)
	docs.GET("/history", docH.History)
	docs.GET("/history/:id", docH.HistoryByID)

	return r
}
