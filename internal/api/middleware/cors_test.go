package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"github.com/GriffinCanCode/AppBlueprint/internal/infrastructure/config"
)

func setupTestRouter(cfg CORSConfig) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(CORS(cfg))
	router.Any("/api/generate-blueprint", func(c *gin.Context) {
		if c.Request.Method != http.MethodPost {
			c.JSON(http.StatusMethodNotAllowed, gin.H{"error": "Method not allowed"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "success"})
	})
	return router
}

func TestCORS(t *testing.T) {
	router := setupTestRouter(DefaultCORSConfig())

	tests := []struct {
		name           string
		method         string
		origin         string
		preflight      bool
		wantStatus     int
		wantCORSHeader bool
	}{
		{
			name:           "simple POST request with origin",
			method:         "POST",
			origin:         "http://localhost:3000",
			wantStatus:     http.StatusOK,
			wantCORSHeader: true,
		},
		{
			name:           "preflight OPTIONS reaches the handler by default",
			method:         "OPTIONS",
			origin:         "http://localhost:3000",
			preflight:      true,
			wantStatus:     http.StatusMethodNotAllowed,
			wantCORSHeader: false,
		},
		{
			name:           "OPTIONS with origin only reaches the handler",
			method:         "OPTIONS",
			origin:         "http://localhost:3000",
			wantStatus:     http.StatusMethodNotAllowed,
			wantCORSHeader: false,
		},
		{
			name:           "no origin header",
			method:         "POST",
			origin:         "",
			wantStatus:     http.StatusOK,
			wantCORSHeader: false,
		},
		{
			name:           "GET with origin still reaches method check",
			method:         "GET",
			origin:         "http://localhost:3000",
			wantStatus:     http.StatusMethodNotAllowed,
			wantCORSHeader: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(tt.method, "/api/generate-blueprint", nil)
			if tt.origin != "" {
				req.Header.Set("Origin", tt.origin)
			}
			if tt.preflight {
				req.Header.Set("Access-Control-Request-Method", "POST")
			}

			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			assert.Equal(t, tt.wantStatus, w.Code)
			if tt.wantCORSHeader {
				assert.NotEmpty(t, w.Header().Get("Access-Control-Allow-Origin"), "CORS header should be set")
			} else {
				assert.Empty(t, w.Header().Get("Access-Control-Allow-Origin"))
			}
		})
	}
}

func TestCORSPreflightOptIn(t *testing.T) {
	cfg := DefaultCORSConfig()
	cfg.AllowPreflight = true
	router := setupTestRouter(cfg)

	req := httptest.NewRequest("OPTIONS", "/api/generate-blueprint", nil)
	req.Header.Set("Origin", "http://localhost:3000")
	req.Header.Set("Access-Control-Request-Method", "POST")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"))
	assert.Contains(t, w.Header().Get("Access-Control-Allow-Methods"), "POST")

	// Without an Origin there is nothing to answer
	req = httptest.NewRequest("OPTIONS", "/api/generate-blueprint", nil)
	w = httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusMethodNotAllowed, w.Code)
}

func TestCORSConfigFrom(t *testing.T) {
	tests := []struct {
		name            string
		origins         []string
		wantOrigins     []string
		wantCredentials bool
		preflight       bool
	}{
		{name: "wildcard", origins: []string{"*"}, wantOrigins: []string{"*"}},
		{name: "empty falls back to wildcard", origins: nil, wantOrigins: []string{"*"}},
		{
			name:            "explicit origins allow credentials",
			origins:         []string{"https://app.example.com"},
			wantOrigins:     []string{"https://app.example.com"},
			wantCredentials: true,
		},
		{name: "preflight carried over", origins: []string{"*"}, wantOrigins: []string{"*"}, preflight: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := CORSConfigFrom(config.CORSConfig{AllowOrigins: tt.origins, AllowPreflight: tt.preflight})

			assert.Equal(t, tt.wantOrigins, cfg.AllowOrigins)
			assert.Equal(t, tt.wantCredentials, cfg.AllowCredentials)
			assert.Contains(t, cfg.AllowMethods, "POST")
			assert.Equal(t, tt.preflight, cfg.AllowPreflight)
		})
	}
}

func TestCORSRestrictedOrigin(t *testing.T) {
	router := setupTestRouter(CORSConfigFrom(config.CORSConfig{
		AllowOrigins: []string{"https://app.example.com"},
	}))

	req := httptest.NewRequest("POST", "/api/generate-blueprint", nil)
	req.Header.Set("Origin", "https://app.example.com")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "https://app.example.com", w.Header().Get("Access-Control-Allow-Origin"))
	assert.Equal(t, "true", w.Header().Get("Access-Control-Allow-Credentials"))

	req = httptest.NewRequest("POST", "/api/generate-blueprint", nil)
	req.Header.Set("Origin", "https://evil.example.com")
	w = httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusForbidden, w.Code)
}
