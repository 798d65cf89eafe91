// Package main is the entry point for the App Blueprint server.
//
// The server turns a one-line app idea into a structured product blueprint
// (title, tagline, features, tech stack, monetization) by asking Gemini for
// a JSON answer.
//
// Architecture:
//
//	Browser → Go Backend → Gemini generateContent API
//
// Configuration:
//   - Environment variables (12-factor), optionally from a .env file
//   - CLI flags (override env vars)
//   - Defaults for development
//
// Usage:
//
//	# Production mode
//	GEMINI_API_KEY=... ./server -port 8000
//
//	# Development mode (colored logs, debug level)
//	./server -dev
//
// Signals:
//   - SIGINT, SIGTERM: Graceful shutdown
package main
