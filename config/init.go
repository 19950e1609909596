package config

import (
	"backoffice/metrics"
	"backoffice/middleware"
	"backoffice/services/logger"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// InitApp builds the gin engine with CORS and the request middleware chain.
// Routes are registered by the caller.
func InitApp(cfg *Config, log logger.Logger, m *metrics.Metrics) *gin.Engine {
	if cfg.IsProd() {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()

	router.Use(
		middleware.RequestID(),
		middleware.AccessLog(log),
		middleware.Metrics(m),
		middleware.Recovery(log),
		cors.New(corsConfig(cfg.CORSOrigins)),
	)
	router.SetTrustedProxies(nil)
	return router
}

// corsConfig allows the listed origins, or any origin when the list is empty.
func corsConfig(origins []string) cors.Config {
	configCors := cors.DefaultConfig()
	configCors.AddAllowHeaders("Authorization", middleware.RequestIDHeader)
	configCors.AddExposeHeaders(middleware.RequestIDHeader)
	configCors.AllowCredentials = true
	configCors.AllowAllOrigins = false

	allowed := make(map[string]bool, len(origins))
	for _, o := range origins {
		allowed[o] = true
	}
	configCors.AllowOriginFunc = func(origin string) bool {
		return len(allowed) == 0 || allowed[origin]
	}
	return configCors
}
