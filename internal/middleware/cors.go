package middleware

import (
	"log/slog"
	"net/http"

	"github.com/rs/cors"
)

// CORSConfig lists the origins allowed to call the API from a browser
type CORSConfig struct {
	AllowedOrigins []string
	Debug          bool
}

// CORSMiddleware lets the browser authoring tool call the API cross-origin
type CORSMiddleware struct {
	*cors.Cors
}

// NewCORS builds the CORS handler
func NewCORS(cfg CORSConfig) *CORSMiddleware {
	logger := slog.With("component", "cors", "operation", "setup")

	c := cors.New(cors.Options{
		AllowedOrigins: cfg.AllowedOrigins,
		AllowedMethods: CORSAllowedMethods,
		AllowedHeaders: CORSAllowedHeaders,
		Debug:          cfg.Debug,
	})

	logger.Info(LogMsgCORSConfigured,
		"allowed_origins", cfg.AllowedOrigins,
		"allowed_methods", CORSAllowedMethods,
		"debug_mode", cfg.Debug)

	return &CORSMiddleware{c}
}

// Middleware wraps h with CORS handling
func (c *CORSMiddleware) Middleware(h http.Handler) http.Handler {
	return c.Cors.Handler(h)
}
