package middleware

import (
	"net/http/httptest"
	"testing"

	applog "github.com/darkkaiser/lensyz-store/pkg/log"
	"github.com/labstack/echo/v4"
	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
)

// captureLogs 테스트 동안 전역 로거에 기록되는 항목을 수집합니다.
//
// 전역 로거를 변경하므로 이 헬퍼를 사용하는 테스트는 t.Parallel()을 호출하면 안 됩니다.
func captureLogs(t *testing.T) *test.Hook {
	t.Helper()

	logger := applog.StandardLogger()
	originalLevel := logger.Level
	logger.SetLevel(applog.DebugLevel)

	hook := test.NewGlobal()

	t.Cleanup(func() {
		logger.ReplaceHooks(make(logrus.LevelHooks))
		logger.SetLevel(originalLevel)
	})

	return hook
}

// newContext 요청과 응답 레코더가 연결된 echo.Context를 생성합니다.
func newContext(e *echo.Echo, method, target, remoteAddr string) (echo.Context, *httptest.ResponseRecorder) {
	req := httptest.NewRequest(method, target, nil)
	if remoteAddr != "" {
		req.RemoteAddr = remoteAddr
	}
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}
