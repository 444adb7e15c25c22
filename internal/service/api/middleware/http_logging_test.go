package middleware

import (
	"net/http"
	"testing"

	"github.com/darkkaiser/lensyz-store/internal/service/api/httputil"
	applog "github.com/darkkaiser/lensyz-store/pkg/log"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMaskSensitiveQueryParams(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		uri  string
		want string
	}{
		{"민감 정보 없음", "/api/v1/products?q=blue&page=2", "/api/v1/products?q=blue&page=2"},
		{"쿼리 없음", "/health", "/health"},
		{"token 마스킹", "/api/v1/products?token=secret123&q=blue", "/api/v1/products?q=blue&token=se%2A%2A%2A%2A"},
		{"짧은 값", "/x?password=abc", "/x?password=%2A%2A%2A%2A"},
		{"파싱 실패 시 원본", "/x?%zz", "/x?%zz"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, maskSensitiveQueryParams(tt.uri))
		})
	}
}

func TestHTTPLogger(t *testing.T) {
	t.Run("정상 요청", func(t *testing.T) {
		hook := captureLogs(t)

		e := echo.New()
		c, rec := newContext(e, http.MethodGet, "/api/v1/products?q=blue&api_key=abcdef", "192.0.2.9:5555")
		rec.Header().Set(echo.HeaderXRequestID, "req-1")

		require.NoError(t, HTTPLogger()(okHandler)(c))

		entry := hook.LastEntry()
		require.NotNil(t, entry)
		assert.Equal(t, applog.InfoLevel, entry.Level)
		assert.Equal(t, "HTTP 요청", entry.Message)
		assert.Equal(t, http.MethodGet, entry.Data["method"])
		assert.Equal(t, "/api/v1/products", entry.Data["path"])
		assert.Equal(t, "/api/v1/products?api_key=ab%2A%2A%2A%2A&q=blue", entry.Data["uri"])
		assert.Equal(t, http.StatusOK, entry.Data["status"])
		assert.Equal(t, "192.0.2.9", entry.Data["remote_ip"])
		assert.Equal(t, "req-1", entry.Data["request_id"])
		assert.Equal(t, "0", entry.Data["bytes_in"])
	})

	t.Run("핸들러 에러는 응답 코드로 기록", func(t *testing.T) {
		hook := captureLogs(t)

		e := echo.New()
		e.HTTPErrorHandler = httputil.ErrorHandler
		c, rec := newContext(e, http.MethodGet, "/api/v1/products/999", "")

		err := HTTPLogger()(func(echo.Context) error {
			return httputil.NewNotFoundError("상품을 찾을 수 없습니다")
		})(c)

		require.NoError(t, err, "에러는 미들웨어 안에서 처리됩니다")
		assert.Equal(t, http.StatusNotFound, rec.Code)

		entry := hook.LastEntry()
		require.NotNil(t, entry)
		assert.Equal(t, "HTTP 요청", entry.Message)
		assert.Equal(t, http.StatusNotFound, entry.Data["status"])
	})
}
