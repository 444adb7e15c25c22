// Package system 시스템 엔드포인트 핸들러를 제공합니다.
//
// 헬스체크와 버전 정보처럼 상점 기능과 무관한 시스템 수준의 API를 처리합니다.
package system

import (
	"context"
	"net/http"
	"time"

	"github.com/darkkaiser/lensyz-store/internal/pkg/version"
	"github.com/darkkaiser/lensyz-store/internal/service/api/constants"
	"github.com/darkkaiser/lensyz-store/internal/service/api/model/system"
	applog "github.com/darkkaiser/lensyz-store/pkg/log"
	"github.com/labstack/echo/v4"
)

// pingTimeout 상태 저장소 Ping에 허용하는 최대 시간
const pingTimeout = 2 * time.Second

// CatalogChecker 카탈로그 사용 가능 여부를 알려줍니다. *shop.Shop이 이 인터페이스를 만족합니다.
type CatalogChecker interface {
	CatalogStatus() error
}

// Pinger 연결 상태를 확인할 수 있는 상태 저장소입니다. (예: state.RedisStore)
type Pinger interface {
	Ping(ctx context.Context) error
}

// Handler 시스템 엔드포인트 핸들러 (헬스체크, 버전 정보)
type Handler struct {
	catalog CatalogChecker

	// store Ping을 지원하지 않는 저장소는 항상 정상으로 보고됩니다.
	store any

	buildInfo version.Info

	serverStartTime time.Time
}

// New Handler 인스턴스를 생성합니다.
func New(catalog CatalogChecker, store any, buildInfo version.Info) *Handler {
	if catalog == nil {
		panic(constants.PanicMsgCatalogRequired)
	}

	return &Handler{
		catalog: catalog,

		store: store,

		buildInfo: buildInfo,

		serverStartTime: time.Now(),
	}
}

// HealthCheckHandler godoc
// @Summary 서버 헬스체크
// @Description 서버와 내부 의존성(카탈로그, 상태 저장소)의 상태를 확인합니다.
// @Description 의존성 중 하나라도 unhealthy이면 전체 상태도 unhealthy입니다.
// @Tags System
// @Produce json
// @Success 200 {object} system.HealthResponse "헬스체크 결과"
// @Router /health [get]
func (h *Handler) HealthCheckHandler(c echo.Context) error {
	applog.WithComponentAndFields(constants.ComponentHandler, applog.Fields{
		"endpoint":  "/health",
		"method":    c.Request().Method,
		"remote_ip": c.RealIP(),
	}).Debug(constants.LogMsgHealthCheck)

	deps := map[string]system.DependencyStatus{
		constants.DependencyCatalog:    dependencyStatus(h.catalog.CatalogStatus(), 0),
		constants.DependencyStateStore: h.checkStore(c.Request().Context()),
	}

	// 하나라도 unhealthy면 전체 상태를 unhealthy로 설정
	serverStatus := constants.HealthStatusHealthy
	for _, dep := range deps {
		if dep.Status != constants.HealthStatusHealthy {
			serverStatus = constants.HealthStatusUnhealthy
			break
		}
	}

	return c.JSON(http.StatusOK, system.HealthResponse{
		Status:       serverStatus,
		Uptime:       int64(time.Since(h.serverStartTime).Seconds()),
		Dependencies: deps,
	})
}

func (h *Handler) checkStore(ctx context.Context) system.DependencyStatus {
	pinger, ok := h.store.(Pinger)
	if !ok {
		return dependencyStatus(nil, 0)
	}

	ctx, cancel := context.WithTimeout(ctx, pingTimeout)
	defer cancel()

	start := time.Now()
	err := pinger.Ping(ctx)

	return dependencyStatus(err, time.Since(start))
}

func dependencyStatus(err error, latency time.Duration) system.DependencyStatus {
	if err != nil {
		return system.DependencyStatus{
			Status:    constants.HealthStatusUnhealthy,
			LatencyMs: latency.Milliseconds(),
			Message:   err.Error(),
		}
	}
	return system.DependencyStatus{
		Status:    constants.HealthStatusHealthy,
		LatencyMs: latency.Milliseconds(),
		Message:   constants.MsgDepStatusHealthy,
	}
}

// VersionHandler godoc
// @Summary 서버 버전 정보
// @Description 서버의 버전, Git 커밋, 빌드 날짜, Go 버전, 플랫폼을 반환합니다.
// @Tags System
// @Produce json
// @Success 200 {object} system.VersionResponse "버전 정보"
// @Router /version [get]
func (h *Handler) VersionHandler(c echo.Context) error {
	applog.WithComponentAndFields(constants.ComponentHandler, applog.Fields{
		"endpoint":  "/version",
		"method":    c.Request().Method,
		"remote_ip": c.RealIP(),
	}).Debug(constants.LogMsgVersionInfo)

	return c.JSON(http.StatusOK, system.VersionResponse{
		Version:   h.buildInfo.Version,
		Commit:    h.buildInfo.ShortCommit(),
		BuildDate: h.buildInfo.BuildDate,
		Dirty:     h.buildInfo.Dirty,
		GoVersion: h.buildInfo.GoVersion,
		Platform:  h.buildInfo.Platform,
	})
}
