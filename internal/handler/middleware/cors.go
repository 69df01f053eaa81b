package middleware

import (
	"log/slog"

	"marketlink/internal/pkg/config"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// NewCORSMiddleware opens the API to the storefront origins listed in
// CORS_ALLOW_ORIGINS. Credentials stay enabled so the bearer token can be
// attached from the browser.
func NewCORSMiddleware(cfg config.CORSConfig) gin.HandlerFunc {
	corsCfg := cors.Config{
		AllowOrigins:     cfg.AllowOrigins,
		AllowMethods:     cfg.AllowMethods,
		AllowHeaders:     cfg.AllowHeaders,
		ExposeHeaders:    cfg.ExposeHeaders,
		AllowCredentials: cfg.AllowCredentials,
		MaxAge:           cfg.MaxAge,
	}
	slog.Info("CORS middleware initialized", "AllowOrigins", cfg.AllowOrigins)
	return cors.New(corsCfg)
}
