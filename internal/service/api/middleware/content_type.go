package middleware

import (
	"net/http"
	"strings"

	"github.com/darkkaiser/lensyz-store/internal/service/api/constants"
	applog "github.com/darkkaiser/lensyz-store/pkg/log"
	"github.com/labstack/echo/v4"
)

// ValidateContentType 요청의 Content-Type을 검증하는 미들웨어를 반환합니다.
//
// 본문이 없는 요청(Content-Length가 0)은 검증하지 않습니다.
// Content-Type이 expectedContentType을 포함하지 않으면 415 Unsupported Media Type을 응답합니다.
func ValidateContentType(expectedContentType string) echo.MiddlewareFunc {
	expected := strings.ToLower(expectedContentType)

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			req := c.Request()
			if req.Body == nil || req.ContentLength == 0 {
				return next(c)
			}

			// MIME 타입 파라미터(charset 등)가 붙을 수 있으므로 포함 여부로 검사합니다.
			contentType := req.Header.Get(echo.HeaderContentType)
			if contentType == "" || !strings.Contains(strings.ToLower(contentType), expected) {
				applog.WithComponentAndFields(constants.ComponentMiddleware, applog.Fields{
					"request_id": c.Response().Header().Get(echo.HeaderXRequestID),
					"method":     req.Method,
					"path":       req.URL.Path,
					"expected":   expectedContentType,
					"actual":     contentType,
					"remote_ip":  c.RealIP(),
				}).Warn(constants.LogMsgUnsupportedContentType)

				return echo.NewHTTPError(http.StatusUnsupportedMediaType, constants.ErrMsgUnsupportedMediaType)
			}

			return next(c)
		}
	}
}
