// Package http provides the HTTP handlers for the blueprint API.
//
// Endpoints:
//   - Status: / and /health
//   - Blueprints: /api/generate-blueprint (POST only; other methods get 405)
//   - Metrics: /metrics
//
// The blueprint handler checks, in order, the method, the server's Gemini
// configuration and the request payload, then makes exactly one upstream
// call. Every failure is answered with {"error": "..."}.
//
// Example Usage:
//
//	handlers := http.NewHandlers(cfg.Gemini, geminiClient, metrics, logger)
//	router.Any("/api/generate-blueprint", handlers.GenerateBlueprint)
package http
