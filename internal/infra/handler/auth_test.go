package handler_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/KasumiMercury/primind-car-care/internal/infra/handler"
)

func TestRequireUserError(t *testing.T) {
	tests := []struct {
		name   string
		header string
	}{
		{name: "missing header", header: ""},
		{name: "whitespace only", header: "   "},
		{name: "contains spaces", header: "user one"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router, _ := setupTestRouter(t)

			req := httptest.NewRequest(http.MethodGet, "/api/v1/cars", nil)
			if tt.header != "" {
				req.Header.Set(handler.UserIDHeader, tt.header)
			}

			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, req)

			assert.Equal(t, http.StatusUnauthorized, rec.Code)

			body := decode[handler.ErrorResponse](t, rec)
			assert.Equal(t, "unauthorized", body.Error)
		})
	}
}
