package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/darkkaiser/lensyz-store/internal/catalog"
	"github.com/darkkaiser/lensyz-store/internal/config"
	"github.com/darkkaiser/lensyz-store/internal/pkg/version"
	"github.com/darkkaiser/lensyz-store/internal/service"
	"github.com/darkkaiser/lensyz-store/internal/service/api"
	"github.com/darkkaiser/lensyz-store/internal/shop"
	applog "github.com/darkkaiser/lensyz-store/pkg/log"
)

// @title Lensyz Store API
// @version 1.0.0
// @description 안경, 선글라스, 콘택트렌즈 상점의 상품 탐색, 검색, 장바구니, 위시리스트 REST API입니다.
// @description
// @description ## 주요 기능
// @description - 카테고리, 브랜드, 색상, 가격대 필터와 정렬을 지원하는 상품 목록
// @description - 실시간 검색(디바운스)과 최근 검색어
// @description - 색상/사이즈 옵션별 장바구니와 주문 합계 계산
// @description - 위시리스트와 위시리스트 기반 추천 상품

// @contact.name DarkKaiser
// @contact.url https://github.com/DarkKaiser

// @license.name MIT

// @BasePath /

const component = "main"

// initialCatalogTimeout 서버 시작 시 최초 카탈로그 로드에 허용하는 시간
const initialCatalogTimeout = 30 * time.Second

const (
	banner = `
  _                               ____  _
 | |    ___ _ __  ___ _   _ ____ / ___|| |_ ___  _ __ ___
 | |   / _ \ '_ \/ __| | | |_  / \___ \| __/ _ \| '__/ _ \
 | |__|  __/ | | \__ \ |_| |/ /   ___) | || (_) | | |  __/
 |_____\___|_| |_|___/\__, /___| |____/ \__\___/|_|  \___|
                      |___/                        %s
                                                        developed by DarkKaiser
--------------------------------------------------------------------------------
`
)

func main() {
	// 1. 환경설정 로드 (로그 설정에 필요하므로 가장 먼저 수행한다)
	appConfig, err := config.Load()
	if err != nil {
		// 로거 초기화 전이므로 표준 에러에 출력
		fmt.Fprintf(os.Stderr, "[FATAL] 환경설정 로드 실패: %v\n", err)
		os.Exit(1)
	}

	// 2. 로그 시스템 초기화
	appLogCloser, err := applog.Setup(newLogOptions(appConfig))
	if err != nil {
		fmt.Fprintf(os.Stderr, "[FATAL] 로그 시스템 초기화 실패. 서버 구동을 중단합니다. (Cause: %v)\n", err)
		os.Exit(1)
	}
	defer appLogCloser.Close()

	if appConfig.LogLevel == "" {
		applog.SetDebugMode(appConfig.Debug)
	}

	buildInfo := version.Get()
	fmt.Printf(banner, buildInfo.Version)

	applog.WithComponentAndFields(component, applog.Fields{
		"version": buildInfo.String(),
		"env":     map[bool]string{true: "development", false: "production"}[appConfig.Debug],
	}).Info("서버 초기화 시작")

	for _, warning := range appConfig.VerifyRecommendations() {
		applog.WithComponent(component).Warn(warning)
	}

	if code := run(appConfig, buildInfo); code != 0 {
		appLogCloser.Close()
		os.Exit(code)
	}
}

// run 서비스를 구성하고 시작한 뒤, 종료 시그널을 받을 때까지 대기합니다. 프로세스 종료 코드를 반환합니다.
func run(appConfig *config.AppConfig, buildInfo version.Info) int {
	serviceStopCtx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// 카탈로그: 최초 로드에 실패하더라도 서버는 기동하고, 카탈로그가 필요한 API만 503을 반환한다.
	refresher := catalog.NewRefresher(newCatalogSource(appConfig.Catalog), appConfig.Catalog.RefreshSchedule)
	loadCtx, loadCancel := context.WithTimeout(serviceStopCtx, initialCatalogTimeout)
	if err := refresher.Reload(loadCtx); err != nil {
		applog.WithComponentAndFields(component, applog.Fields{
			"source": appConfig.Catalog.Source,
			"error":  err,
		}).Error("최초 카탈로그 로드 실패. 카탈로그 없이 서버를 시작합니다")
	}
	loadCancel()

	store, closeStore, err := newStateStore(serviceStopCtx, appConfig.Storage)
	if err != nil {
		applog.WithComponentAndFields(component, applog.Fields{
			"backend": appConfig.Storage.Backend,
			"error":   err,
		}).Error("상태 저장소 초기화 실패")
		return 1
	}
	defer func() {
		if err := closeStore(); err != nil {
			applog.WithComponentAndFields(component, applog.Fields{
				"error": err,
			}).Warn("상태 저장소 종료 중 오류가 발생했습니다")
		}
	}()

	s, err := shop.New(refresher, store, appConfig.ShopSettings())
	if err != nil {
		applog.WithComponentAndFields(component, applog.Fields{
			"error": err,
		}).Error("상점 엔진 초기화 실패")
		return 1
	}
	defer s.Close()

	apiService := api.NewService(appConfig, s, store, buildInfo)

	serviceStopWG := &sync.WaitGroup{}

	// 서비스를 시작한다.
	services := []service.Service{refresher, apiService}
	for _, svc := range services {
		serviceStopWG.Add(1)
		if err := svc.Start(serviceStopCtx, serviceStopWG); err != nil {
			applog.WithComponentAndFields(component, applog.Fields{
				"error": err,
			}).Error("서비스 초기화 실패")

			cancel() // 다른 서비스들도 종료
			serviceStopWG.Wait()

			return 1
		}
	}

	termC := make(chan os.Signal, 1)
	signal.Notify(termC, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(termC)

	applog.WithComponentAndFields(component, applog.Fields{
		"port": appConfig.HTTP.ListenPort,
	}).Info("서버 가동 완료")

	sig := <-termC

	applog.WithComponentAndFields(component, applog.Fields{
		"signal": sig.String(),
	}).Info("종료 시그널 수신")

	cancel()
	serviceStopWG.Wait()

	applog.WithComponent(component).Info("서버 종료 완료")

	return 0
}
