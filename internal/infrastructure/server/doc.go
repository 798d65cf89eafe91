// Package server wires the blueprint service together.
//
// Server Lifecycle:
//  1. Validate configuration
//  2. Initialize logger, metrics and tracer
//  3. Build the Gemini client (with the optional circuit breaker)
//  4. Setup HTTP routes and middleware
//  5. Start HTTP server
//  6. Graceful shutdown on signal
//
// Handler exposes the same stack without a listener, for serverless
// runtimes that bring their own.
//
// Example Usage:
//
//	cfg, err := config.Load()
//	if err != nil {
//		log.Fatal(err)
//	}
//	srv, err := server.NewServer(cfg)
//	if err != nil {
//		log.Fatal(err)
//	}
//	defer srv.Close()
//	if err := srv.Run(); err != nil {
//		log.Fatal(err)
//	}
package server
