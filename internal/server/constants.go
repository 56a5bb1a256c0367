package server

import "time"

// HTTP error messages for middleware responses
const (
	ErrMsgUnauthorized    = "Unauthorized"
	ErrMsgTooManyRequests = "Too Many Requests"
)

// Security alert message templates
const (
	SecurityAlertFailedAuth = "⚠️ SECURITY ALERT: Multiple failed authentication attempts"
	SecurityAlertHighRate   = "⚠️ SECURITY ALERT: Blocking high request rate"
)

// Log messages for server lifecycle and request handling
const (
	LogMsgServerStarting   = "Server starting"
	LogMsgRequestStarted   = "Request started"
	LogMsgRequestCompleted = "Request completed"
	LogMsgRequestHeaders   = "Request headers"
	LogMsgAuthFailed       = "Authentication failed"
	LogMsgAuthDisabled     = "API_KEY not set, farm API is open"
)

// HTTP header names
const (
	HeaderAPIKey         = "X-API-Key"
	HeaderAuthorization  = "Authorization"
	HeaderForwardedFor   = "X-Forwarded-For"
	HeaderContentType    = "X-Content-Type-Options"
	HeaderFrameOptions   = "X-Frame-Options"
	HeaderXSSProtection  = "X-XSS-Protection"
	HeaderReferrerPolicy = "Referrer-Policy"
)

// Security header values
const (
	HeaderValueNoSniff              = "nosniff"
	HeaderValueSameOrigin           = "SAMEORIGIN"
	HeaderValueXSSBlock             = "1; mode=block"
	HeaderValueReferrerStrictOrigin = "strict-origin-when-cross-origin"
)

// Rate and size limits
const (
	MaxRequestBytes      = 1 << 20
	FailedAuthAlertCount = 5
	RequestRateLimit     = 1000
	RateLogEvery         = 100
	RateWindow           = 5 * time.Minute
	MaxTrackedIPs        = 10000
	ReadHeaderTimeout    = 5 * time.Second
)

// Routes
const (
	APIPrefix   = "/api/v1"
	PathHealthz = "/healthz"
	PathReadyz  = "/readyz"
	PathVersion = "/version"
	PathMetrics = "/metrics"
	PathSwagger = "/swagger/*"
	PathEvents  = "/events"
)

// PublicPaths bypass authentication
var PublicPaths = []string{
	"/swagger/",
	PathHealthz,
	PathReadyz,
	PathMetrics,
	PathVersion,
}

// Paths skipped by the request logger
var quietPaths = []string{
	PathHealthz,
	PathReadyz,
	PathMetrics,
}

// Header redaction marker
const (
	RedactedValue = "[REDACTED]"
)
