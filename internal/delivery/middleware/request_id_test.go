package middleware

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	deliverycontext "shopkeep/internal/delivery/context"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRequestIDMiddleware_Process(t *testing.T) {
	tests := []struct {
		name     string
		header   string
		expectID func(t *testing.T, id string)
	}{
		{
			name:   "keeps client id",
			header: "abc-123",
			expectID: func(t *testing.T, id string) {
				assert.Equal(t, "abc-123", id)
			},
		},
		{
			name: "generates missing id",
			expectID: func(t *testing.T, id string) {
				assert.Len(t, id, 36)
			},
		},
		{
			name:   "replaces oversized id",
			header: strings.Repeat("x", maxRequestIDLength+1),
			expectID: func(t *testing.T, id string) {
				assert.Len(t, id, 36)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := NewRequestIDMiddleware(slog.New(slog.NewTextHandler(io.Discard, nil)))

			e := echo.New()
			req := httptest.NewRequest(http.MethodGet, "/api/game", nil)
			if tt.header != "" {
				req.Header.Set(deliverycontext.HeaderXRequestID, tt.header)
			}
			rec := httptest.NewRecorder()
			c := e.NewContext(req, rec)

			var seenID string
			var seenLogger *slog.Logger
			err := m.Process(func(c echo.Context) error {
				seenID = deliverycontext.GetRequestIDFromContext(c.Request().Context())
				seenLogger = deliverycontext.GetLogger(c.Request().Context())

				return nil
			})(c)

			require.NoError(t, err)
			tt.expectID(t, seenID)
			assert.Equal(t, seenID, rec.Header().Get(deliverycontext.HeaderXRequestID))
			assert.Equal(t, seenID, deliverycontext.GetRequestID(c))
			assert.NotNil(t, seenLogger)
		})
	}
}
