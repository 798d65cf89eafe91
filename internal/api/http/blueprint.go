package http

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/GriffinCanCode/AppBlueprint/internal/domain/blueprint"
	"github.com/GriffinCanCode/AppBlueprint/internal/gemini"
	"github.com/GriffinCanCode/AppBlueprint/internal/infrastructure/tracing"
	"github.com/GriffinCanCode/AppBlueprint/internal/shared/id"
)

// Rejection reasons recorded before any upstream call
const (
	rejectMethod = "method"
	rejectConfig = "config"
	rejectIdea   = "idea"
)

// GenerateRequest is the inbound payload. Idea is a pointer so a missing
// field and an empty string are both caught.
type GenerateRequest struct {
	Idea *string `json:"idea"`
}

// GenerateBlueprint turns an app idea into a blueprint via one Gemini call.
// It is registered for every method so the method check runs first.
func (h *Handlers) GenerateBlueprint(c *gin.Context) {
	log := h.logger.With(
		zap.String("request_id", id.NewRequestID().String()),
		zap.String("trace_id", tracing.GetTraceID(c.Request.Context()).String()),
		zap.String("method", c.Request.Method),
	)

	if c.Request.Method != http.MethodPost {
		h.recordRejection(rejectMethod)
		c.JSON(http.StatusMethodNotAllowed, errorBody("Method not allowed"))
		return
	}

	log.Info("Received blueprint request", zap.Bool("api_key_configured", h.gemini.Configured()))

	if !h.gemini.Configured() {
		log.Error("GEMINI_API_KEY is not set")
		h.recordRejection(rejectConfig)
		c.JSON(http.StatusInternalServerError, errorBody("API key not configured on server"))
		return
	}

	var req GenerateRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.Idea == nil || strings.TrimSpace(*req.Idea) == "" {
		log.Warn("Empty idea received", zap.NamedError("bind_error", err))
		h.recordRejection(rejectIdea)
		c.JSON(http.StatusBadRequest, errorBody("Idea is required"))
		return
	}

	log.Info("Calling Gemini API", zap.String("model", h.generator.Model()))

	result, err := h.generator.GenerateJSON(
		c.Request.Context(),
		h.gemini.APIKey,
		blueprint.SystemPrompt,
		blueprint.UserPrompt(*req.Idea),
	)
	if err != nil {
		var statusErr *gemini.StatusError
		if errors.As(err, &statusErr) {
			log.Error("Gemini API error",
				zap.Int("status", statusErr.StatusCode),
				zap.String("body", statusErr.Body),
			)
			c.JSON(statusErr.StatusCode, errorBody(fmt.Sprintf("Gemini API error: %d", statusErr.StatusCode)))
			return
		}

		log.Error("Blueprint generation failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, errorBody("Failed to generate blueprint: "+err.Error()))
		return
	}

	log.Info("Blueprint generated")
	log.Debug("Parsed blueprint", zap.Any("blueprint", result))

	c.JSON(http.StatusOK, result)
}
