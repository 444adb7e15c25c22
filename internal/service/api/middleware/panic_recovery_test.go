package middleware

import (
	"errors"
	"net/http"
	"testing"

	apperrors "github.com/darkkaiser/lensyz-store/internal/pkg/errors"
	applog "github.com/darkkaiser/lensyz-store/pkg/log"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPanicRecovery(t *testing.T) {
	tests := []struct {
		name         string
		panicPayload any
		requestID    string
		wantMessage  string
	}{
		{
			name:         "문자열 panic",
			panicPayload: "치명적인 오류 발생",
			wantMessage:  "치명적인 오류 발생",
		},
		{
			name:         "error panic",
			panicPayload: errors.New("nil map write"),
			requestID:    "req-123",
			wantMessage:  "nil map write",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			hook := captureLogs(t)

			e := echo.New()
			c, rec := newContext(e, http.MethodGet, "/api/v1/cart", "")
			if tt.requestID != "" {
				rec.Header().Set(echo.HeaderXRequestID, tt.requestID)
			}

			h := PanicRecovery()(func(echo.Context) error {
				panic(tt.panicPayload)
			})

			var err error
			require.NotPanics(t, func() { err = h(c) })
			require.Error(t, err)
			assert.True(t, apperrors.Is(err, apperrors.Internal))
			assert.Contains(t, err.Error(), tt.wantMessage)

			entry := hook.LastEntry()
			require.NotNil(t, entry)
			assert.Equal(t, applog.ErrorLevel, entry.Level)
			assert.Equal(t, "PANIC RECOVERED", entry.Message)
			assert.Equal(t, "/api/v1/cart", entry.Data["path"])
			assert.Contains(t, entry.Data["stack"], "goroutine")
			if tt.requestID != "" {
				assert.Equal(t, tt.requestID, entry.Data["request_id"])
			} else {
				assert.NotContains(t, entry.Data, "request_id")
			}
		})
	}
}

func TestPanicRecovery_NoPanic(t *testing.T) {
	t.Parallel()

	e := echo.New()
	c, rec := newContext(e, http.MethodGet, "/", "")

	err := PanicRecovery()(okHandler)(c)

	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
}
