package api

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"sync"

	_ "github.com/darkkaiser/lensyz-store/docs"
	"github.com/darkkaiser/lensyz-store/internal/config"
	"github.com/darkkaiser/lensyz-store/internal/pkg/version"
	"github.com/darkkaiser/lensyz-store/internal/service/api/constants"
	"github.com/darkkaiser/lensyz-store/internal/service/api/handler/system"
	v1 "github.com/darkkaiser/lensyz-store/internal/service/api/v1"
	v1handler "github.com/darkkaiser/lensyz-store/internal/service/api/v1/handler"
	"github.com/darkkaiser/lensyz-store/internal/shop"
	applog "github.com/darkkaiser/lensyz-store/pkg/log"
	"github.com/labstack/echo/v4"
)

// Service 상점 API 서버의 생명주기를 관리하는 서비스입니다.
//
// Start로 시작하면 별도의 고루틴에서 HTTP(S) 서버를 실행하고, 전달받은 context가 취소되면
// Graceful Shutdown을 수행한 뒤 WaitGroup에 종료를 알립니다.
type Service struct {
	appConfig *config.AppConfig

	shop *shop.Shop

	// store 헬스체크에 사용되는 상태 저장소
	store any

	buildInfo version.Info

	running   bool
	runningMu sync.Mutex
}

// NewService Service 인스턴스를 생성합니다.
func NewService(appConfig *config.AppConfig, s *shop.Shop, store any, buildInfo version.Info) *Service {
	if appConfig == nil {
		panic(constants.PanicMsgAppConfigRequired)
	}
	if s == nil {
		panic(constants.PanicMsgShopRequired)
	}

	return &Service{
		appConfig: appConfig,

		shop:  s,
		store: store,

		buildInfo: buildInfo,
	}
}

// Start API 서비스를 시작합니다.
//
// 이 함수는 즉시 반환되며, 실제 서버는 고루틴에서 실행됩니다.
// 이미 실행 중이면 경고 로그만 남기고 serviceStopWG.Done()을 호출합니다.
func (s *Service) Start(serviceStopCtx context.Context, serviceStopWG *sync.WaitGroup) error {
	s.runningMu.Lock()
	defer s.runningMu.Unlock()

	applog.WithComponent(constants.ComponentService).Info(constants.LogMsgServiceStarting)

	if s.running {
		defer serviceStopWG.Done()
		applog.WithComponent(constants.ComponentService).Warn(constants.LogMsgServiceAlreadyStarted)
		return nil
	}

	s.running = true

	go s.runServiceLoop(serviceStopCtx, serviceStopWG)

	applog.WithComponent(constants.ComponentService).Info(constants.LogMsgServiceStarted)

	return nil
}

// runServiceLoop 서버 설정, HTTP 서버 시작, Shutdown 대기를 순서대로 수행합니다.
func (s *Service) runServiceLoop(serviceStopCtx context.Context, serviceStopWG *sync.WaitGroup) {
	defer serviceStopWG.Done()

	e := s.setupServer()

	httpServerDone := make(chan struct{})
	go s.startHTTPServer(e, httpServerDone)

	s.waitForShutdown(serviceStopCtx, e, httpServerDone)
}

// setupServer 핸들러를 생성하고 미들웨어 체인과 라우트가 설정된 Echo 인스턴스를 반환합니다.
func (s *Service) setupServer() *echo.Echo {
	httpConfig := s.appConfig.HTTP

	systemHandler := system.New(s.shop, s.store, s.buildInfo)
	v1Handler := v1handler.New(s.shop)

	e := NewHTTPServer(HTTPServerConfig{
		Debug:          s.appConfig.Debug,
		AllowOrigins:   httpConfig.CORS.AllowOrigins,
		RequestTimeout: httpConfig.RequestTimeout,
		BodyLimit:      httpConfig.BodyLimit,
		RateLimitRPS:   httpConfig.RateLimit.RPS,
		RateLimitBurst: httpConfig.RateLimit.Burst,
		EnableHSTS:     httpConfig.TLSServer,
	})

	RegisterRoutes(e, systemHandler)
	v1.RegisterRoutes(e, v1Handler)

	return e
}

// startHTTPServer 설정에 따라 HTTP 또는 HTTPS 서버를 시작합니다. 서버가 종료되면 done 채널을 닫습니다.
func (s *Service) startHTTPServer(e *echo.Echo, done chan struct{}) {
	defer close(done)

	httpConfig := s.appConfig.HTTP
	address := fmt.Sprintf(":%d", httpConfig.ListenPort)

	applog.WithComponentAndFields(constants.ComponentService, applog.Fields{
		"port": httpConfig.ListenPort,
		"tls":  httpConfig.TLSServer,
	}).Info(constants.LogMsgServiceHTTPServerStarting)

	var err error
	if httpConfig.TLSServer {
		err = e.StartTLS(address, httpConfig.TLSCertFile, httpConfig.TLSKeyFile)
	} else {
		err = e.Start(address)
	}

	s.handleServerError(err)
}

// handleServerError 서버 종료 원인을 기록합니다. Graceful Shutdown으로 인한 종료는 Info로 기록합니다.
func (s *Service) handleServerError(err error) {
	if err == nil {
		return
	}

	if errors.Is(err, http.ErrServerClosed) {
		applog.WithComponent(constants.ComponentService).Info(constants.LogMsgServiceHTTPServerStopped)
		return
	}

	applog.WithComponentAndFields(constants.ComponentService, applog.Fields{
		"port":  s.appConfig.HTTP.ListenPort,
		"error": err,
	}).Error(constants.LogMsgServiceHTTPServerFatalError)
}

// waitForShutdown 종료 신호를 기다린 뒤 Graceful Shutdown을 수행합니다.
//
// HTTP 서버가 먼저 종료된 경우(포트 바인딩 실패 등)에는 Shutdown 없이 상태만 정리합니다.
func (s *Service) waitForShutdown(serviceStopCtx context.Context, e *echo.Echo, httpServerDone chan struct{}) {
	select {
	case <-serviceStopCtx.Done():
		applog.WithComponent(constants.ComponentService).Info(constants.LogMsgServiceStopping)
	case <-httpServerDone:
		applog.WithComponent(constants.ComponentService).Error(constants.LogMsgServiceUnexpectedExit)

		s.cleanup()

		return
	}

	timeout := s.appConfig.HTTP.ShutdownTimeout
	if timeout <= 0 {
		timeout = constants.DefaultShutdownTimeout
	}

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	if err := e.Shutdown(ctx); err != nil {
		applog.WithComponentAndFields(constants.ComponentService, applog.Fields{
			"error": err,
		}).Error(constants.LogMsgServiceHTTPServerShutdownError)
	}

	<-httpServerDone

	s.cleanup()
}

// cleanup 서비스 종료 후 상태를 정리합니다.
func (s *Service) cleanup() {
	s.runningMu.Lock()
	s.running = false
	s.runningMu.Unlock()

	applog.WithComponent(constants.ComponentService).Info(constants.LogMsgServiceStopped)
}

// Running 서비스가 실행 중인지 여부를 반환합니다.
func (s *Service) Running() bool {
	s.runningMu.Lock()
	defer s.runningMu.Unlock()
	return s.running
}
