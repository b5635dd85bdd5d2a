package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/karnaval/go-costume-catalog/internal/config"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
)

func TestAppMiddleware_InternalAuth(t *testing.T) {
	tests := []struct {
		name       string
		secret     string
		header     string
		wantStatus int
		wantBody   string
	}{
		{
			name:       "no secret configured",
			wantStatus: http.StatusOK,
		},
		{
			name:       "missing header",
			secret:     "s3cr3t",
			wantStatus: http.StatusUnauthorized,
			wantBody:   "required secret key",
		},
		{
			name:       "wrong key",
			secret:     "s3cr3t",
			header:     "guess",
			wantStatus: http.StatusUnauthorized,
			wantBody:   "invalid secret key",
		},
		{
			name:       "valid key",
			secret:     "s3cr3t",
			header:     "s3cr3t",
			wantStatus: http.StatusOK,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := newTestMiddleware(config.Config{SecretKey: tt.secret}, nil)

			req := httptest.NewRequest(http.MethodDelete, "/api/costumes/1", nil)
			if tt.header != "" {
				req.Header.Set(headerSecretKey, tt.header)
			}
			rec := httptest.NewRecorder()
			c := echo.New().NewContext(req, rec)

			called := false
			err := m.InternalAuth(func(c echo.Context) error {
				called = true
				return c.NoContent(http.StatusOK)
			})(c)

			assert.NoError(t, err)
			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Equal(t, tt.wantStatus == http.StatusOK, called)
			if tt.wantBody != "" {
				assert.Contains(t, rec.Body.String(), tt.wantBody)
				assert.Contains(t, rec.Body.String(), `"status":"error"`)
			}
		})
	}
}
