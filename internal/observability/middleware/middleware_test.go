package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KasumiMercury/primind-car-care/internal/observability/logging"
	"github.com/KasumiMercury/primind-car-care/internal/observability/middleware"
)

type seen struct {
	requestID string
	module    logging.Module
}

func setupRouter(t *testing.T, captured *seen) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	router := gin.New()
	router.Use(middleware.PanicRecoveryGin())
	router.Use(middleware.Gin(middleware.GinConfig{
		SkipPaths:      []string{"/ping"},
		ModuleResolver: middleware.ModuleFromPath,
		TracerName:     "test",
	}))

	capture := func(c *gin.Context) {
		captured.requestID = logging.RequestIDFromContext(c.Request.Context())
		captured.module = logging.ModuleFromContext(c.Request.Context())
		c.Status(http.StatusOK)
	}

	router.GET("/ping", capture)
	router.GET("/api/v1/cars/:id", capture)
	router.GET("/api/v1/reminders", capture)
	router.GET("/boom", func(*gin.Context) { panic("boom") })

	return router
}

func TestGinRequestID(t *testing.T) {
	incoming := uuid.Must(uuid.NewV7()).String()

	tests := []struct {
		name     string
		header   string
		expected string
	}{
		{name: "keeps valid incoming id", header: incoming, expected: incoming},
		{name: "replaces garbage", header: "<script>", expected: ""},
		{name: "generates when missing", header: "", expected: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var captured seen
			router := setupRouter(t, &captured)

			req := httptest.NewRequest(http.MethodGet, "/api/v1/reminders", nil)
			if tt.header != "" {
				req.Header.Set(middleware.RequestIDHeader, tt.header)
			}

			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, req)

			require.Equal(t, http.StatusOK, rec.Code)

			echoed := rec.Header().Get(middleware.RequestIDHeader)
			assert.Equal(t, echoed, captured.requestID)

			_, err := uuid.Parse(echoed)
			require.NoError(t, err)

			if tt.expected != "" {
				assert.Equal(t, tt.expected, echoed)
			}
		})
	}
}

func TestGinModuleResolution(t *testing.T) {
	tests := []struct {
		path     string
		expected logging.Module
	}{
		{path: "/api/v1/cars/123", expected: logging.ModuleCar},
		{path: "/api/v1/reminders", expected: logging.ModuleReminder},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			var captured seen
			router := setupRouter(t, &captured)

			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, tt.path, nil))

			assert.Equal(t, tt.expected, captured.module)
		})
	}
}

func TestGinSkipPath(t *testing.T) {
	var captured seen
	router := setupRouter(t, &captured)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/ping", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Empty(t, rec.Header().Get(middleware.RequestIDHeader))
	assert.Empty(t, captured.requestID)
}

func TestPanicRecoveryGin(t *testing.T) {
	var captured seen
	router := setupRouter(t, &captured)

	rec := httptest.NewRecorder()

	assert.NotPanics(t, func() {
		router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/boom", nil))
	})

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.JSONEq(t, `{"error":"internal_error","message":"an internal error occurred"}`, rec.Body.String())
}
