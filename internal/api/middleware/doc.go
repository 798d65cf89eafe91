// Package middleware provides HTTP middleware for the blueprint API.
//
// CORS Configuration:
//   - AllowOrigins: from CORS_ALLOW_ORIGINS, "*" by default
//   - AllowMethods: GET, POST, OPTIONS
//   - AllowCredentials: only with an explicit origin list
//   - MaxAge: Preflight cache duration
//
// OPTIONS requests reach the route handlers (and the blueprint route's 405)
// unless CORS_ALLOW_PREFLIGHT is set, in which case preflights are answered
// here with 204.
//
// Example Usage:
//
//	router.Use(middleware.CORS(middleware.CORSConfigFrom(cfg.CORS)))
package middleware
