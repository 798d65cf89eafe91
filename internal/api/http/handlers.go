package http

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/GriffinCanCode/AppBlueprint/internal/infrastructure/config"
	"github.com/GriffinCanCode/AppBlueprint/internal/infrastructure/logging"
	"github.com/GriffinCanCode/AppBlueprint/internal/infrastructure/monitoring"
)

// Version is reported by the status endpoint.
const Version = "1.0.0"

// Generator produces a JSON document from a system and a user prompt.
// *gemini.Client satisfies it.
type Generator interface {
	GenerateJSON(ctx context.Context, apiKey, system, user string) (interface{}, error)
	Model() string
	BreakerState() string
}

// Handlers contains all HTTP handlers
type Handlers struct {
	gemini    config.GeminiConfig
	generator Generator
	metrics   *monitoring.Metrics
	logger    *logging.Logger
}

// NewHandlers creates a new handler set. The Gemini settings are captured
// here; handlers never read the environment.
func NewHandlers(gemini config.GeminiConfig, generator Generator, metrics *monitoring.Metrics, logger *logging.Logger) *Handlers {
	if logger == nil {
		logger = logging.NewNop()
	}
	return &Handlers{
		gemini:    gemini,
		generator: generator,
		metrics:   metrics,
		logger:    logger,
	}
}

// Root handles the status check
func (h *Handlers) Root(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "online",
		"service": "App Blueprint Service (Go)",
		"version": Version,
	})
}

// Health handles the detailed health check
func (h *Handlers) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status": "healthy",
		"gemini": gin.H{
			"configured": h.gemini.Configured(),
			"model":      h.generator.Model(),
			"breaker":    h.generator.BreakerState(),
		},
	})
}

// Metrics serves the Prometheus registry
func (h *Handlers) Metrics(c *gin.Context) {
	h.metrics.Handler().ServeHTTP(c.Writer, c.Request)
}

func (h *Handlers) recordRejection(reason string) {
	if h.metrics != nil {
		h.metrics.RecordRejection(reason)
	}
}

func errorBody(msg string) gin.H {
	return gin.H{"error": msg}
}
