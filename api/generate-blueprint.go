// Package handler is the serverless entrypoint for /api/generate-blueprint.
package handler

import (
	"log"
	"net/http"
	"sync"

	"github.com/GriffinCanCode/AppBlueprint/internal/infrastructure/config"
	"github.com/GriffinCanCode/AppBlueprint/internal/infrastructure/server"
)

var (
	once    sync.Once
	stack   http.Handler
	initErr error
)

// Handler is the entry point for Vercel serverless functions. The server
// stack is built once per instance from the environment.
func Handler(w http.ResponseWriter, r *http.Request) {
	once.Do(func() {
		var cfg *config.Config
		cfg, initErr = config.Load()
		if initErr != nil {
			return
		}
		var srv *server.Server
		srv, initErr = server.NewServer(cfg)
		if initErr != nil {
			return
		}
		stack = srv.Handler()
	})

	if initErr != nil {
		log.Printf("blueprint handler init failed: %v", initErr)
		w.Header().Set("Content-Type", "application/json; charset=utf-8")
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(`{"error":"Server misconfigured"}`))
		return
	}

	stack.ServeHTTP(w, r)
}
