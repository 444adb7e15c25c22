package api

import (
	"github.com/darkkaiser/lensyz-store/internal/service/api/handler/system"
	"github.com/labstack/echo/v4"
	echoSwagger "github.com/swaggo/echo-swagger"
)

// RegisterRoutes 버전과 무관한 시스템 라우트를 등록합니다.
//
//	GET /health     서버 및 의존성 상태
//	GET /version    빌드 정보
//	GET /swagger/*  Swagger UI 및 API 문서(doc.json)
func RegisterRoutes(e *echo.Echo, h *system.Handler) {
	e.GET("/health", h.HealthCheckHandler)
	e.GET("/version", h.VersionHandler)

	e.GET("/swagger/*", echoSwagger.EchoWrapHandler(
		echoSwagger.URL("/swagger/doc.json"),
		echoSwagger.DeepLinking(true),
		echoSwagger.DocExpansion("list"),
	))
}
