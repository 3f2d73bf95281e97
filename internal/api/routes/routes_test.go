package routes

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"bowls-club-backend/internal/config"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testRouter(t *testing.T) *gin.Engine {
	gin.SetMode(gin.TestMode)
	cfg := &config.Config{
		JWTSecret:     "routes-test-secret",
		AdminUsername: "secretary",
		ClubShortName: "Crosshands",
	}
	router, err := SetupRoutes(nil, cfg, nil)
	require.NoError(t, err)
	return router
}

func serve(router *gin.Engine, method, path string) *httptest.ResponseRecorder {
	recorder := httptest.NewRecorder()
	req, _ := http.NewRequest(method, path, nil)
	router.ServeHTTP(recorder, req)
	return recorder
}

func TestSetupRoutes(t *testing.T) {
	router := testRouter(t)

	t.Run("live", func(t *testing.T) {
		recorder := serve(router, http.MethodGet, "/health/live")
		assert.Equal(t, http.StatusOK, recorder.Code)
	})

	t.Run("admin api requires a token", func(t *testing.T) {
		for _, path := range []string{"/api/v1/competitions", "/api/v1/club", "/api/v1/rinks"} {
			recorder := serve(router, http.MethodGet, path)
			assert.Equal(t, http.StatusUnauthorized, recorder.Code, path)
		}
	})

	t.Run("login disabled without password hash", func(t *testing.T) {
		recorder := httptest.NewRecorder()
		req, _ := http.NewRequest(http.MethodPost, "/api/auth/login", strings.NewReader(`{"username":"secretary","password":"x"}`))
		req.Header.Set("Content-Type", "application/json")
		router.ServeHTTP(recorder, req)
		assert.Equal(t, http.StatusServiceUnavailable, recorder.Code)
	})

	t.Run("request id echoed", func(t *testing.T) {
		recorder := serve(router, http.MethodGet, "/health/live")
		assert.NotEmpty(t, recorder.Header().Get("X-Request-ID"))
	})

	t.Run("unknown api path", func(t *testing.T) {
		recorder := serve(router, http.MethodGet, "/api/nothing-here")
		assert.Equal(t, http.StatusNotFound, recorder.Code)
		assert.JSONEq(t, `{"error":"Not found"}`, recorder.Body.String())
	})
}
