package middleware

import "time"

// HTTP header names
const (
	HeaderForwardedFor = "X-Forwarded-For"
	HeaderRetryAfter   = "Retry-After"
)

// Response messages
const (
	ErrMsgRateLimited = "Rate limit exceeded"
)

// Log messages
const (
	LogMsgRateLimited      = "Rate limit exceeded"
	LogMsgCORSConfigured   = "CORS middleware configured"
	LogMsgCORSWildcardProd = "CORS allows any origin"
)

// Rate limiter housekeeping
const (
	ClientCleanupInterval = time.Minute
	RetryAfterSeconds     = "1"
)

// CORS defaults for the browser authoring tool
var (
	CORSAllowedMethods = []string{"GET", "POST", "PUT", "OPTIONS"}
	CORSAllowedHeaders = []string{"Content-Type", "X-Request-ID"}
)
