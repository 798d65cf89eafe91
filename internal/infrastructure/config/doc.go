// Package config provides 12-factor configuration for the blueprint backend.
//
// Configuration is loaded from environment variables with sensible defaults
// and validated with go-playground/validator. CLI flags in cmd/server can
// override individual values.
//
// Configuration Sections:
//   - Server: listen address, http.Server timeouts, gzip
//   - Gemini: API key, base URL, model, timeout, circuit breaker
//   - Logging: Log level and output format
//   - CORS: allowed browser origins
//
// Example Usage:
//
//	cfg, err := config.Load()
//	if err != nil {
//		log.Fatalf("config: %v", err)
//	}
//
// Environment Variables:
//   - PORT, HOST, READ_TIMEOUT, WRITE_TIMEOUT, IDLE_TIMEOUT, GZIP_ENABLED
//   - GEMINI_API_KEY, GEMINI_BASE_URL, GEMINI_MODEL, GEMINI_TIMEOUT, GEMINI_BREAKER_ENABLED
//   - LOG_LEVEL, LOG_DEV
//   - CORS_ALLOW_ORIGINS
package config
