package catalog

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"github.com/darkkaiser/lensyz-store/pkg/cronx"
	applog "github.com/darkkaiser/lensyz-store/pkg/log"
	"github.com/robfig/cron/v3"
)

// reloadTimeout 예약된 재로딩 한 번에 허용되는 최대 시간
const reloadTimeout = 30 * time.Second

// Refresher 현재 카탈로그를 보관하고, 설정된 Cron 스케줄에 따라 다시 불러옵니다.
//
// 재로딩에 실패하면 마지막으로 성공한 카탈로그를 계속 사용합니다.
// 최초 로딩부터 실패한 경우 Current는 빈 카탈로그를 반환하고 LastError는 ErrNotLoaded를 감싼 에러를 반환합니다.
type Refresher struct {
	source   Source
	schedule string

	current atomic.Pointer[Catalog]
	loaded  atomic.Bool

	errMu   sync.RWMutex
	lastErr error

	cron *cron.Cron

	running   bool
	runningMu sync.Mutex
}

// NewRefresher 새로운 Refresher를 생성합니다. schedule이 비어 있으면 재로딩하지 않습니다.
func NewRefresher(source Source, schedule string) *Refresher {
	if source == nil {
		panic("카탈로그 Source는 필수입니다")
	}

	r := &Refresher{
		source:   source,
		schedule: schedule,
	}
	r.current.Store(Empty())

	return r
}

// Current 현재 사용 중인 카탈로그를 반환합니다. nil을 반환하지 않습니다.
func (r *Refresher) Current() *Catalog {
	return r.current.Load()
}

// LastError 마지막 로딩 시도의 에러를 반환합니다. 성공했으면 nil입니다.
func (r *Refresher) LastError() error {
	r.errMu.RLock()
	defer r.errMu.RUnlock()
	return r.lastErr
}

// Available 한 번이라도 카탈로그를 불러오는 데 성공했는지 여부를 반환합니다.
func (r *Refresher) Available() bool {
	return r.loaded.Load()
}

// Reload 카탈로그를 즉시 다시 불러옵니다.
func (r *Refresher) Reload(ctx context.Context) error {
	c, err := r.source.Load(ctx)

	r.errMu.Lock()
	defer r.errMu.Unlock()

	if err != nil {
		if !r.loaded.Load() {
			err = wrapNotLoaded(err)
		}
		r.lastErr = err

		applog.WithComponentAndFields(component, applog.Fields{
			"loaded_before": r.loaded.Load(),
			"error":         err,
		}).Error("카탈로그 로드 실패: 이전 카탈로그를 계속 사용합니다")

		return err
	}

	r.current.Store(c)
	r.loaded.Store(true)
	r.lastErr = nil

	applog.WithComponentAndFields(component, applog.Fields{
		"products": c.Len(),
	}).Info("카탈로그 로드 완료")

	return nil
}

// Start 스케줄이 설정된 경우 Cron 엔진을 시작하고, ctx가 취소되면 중지합니다.
// 종료가 끝나면 wg.Done을 호출합니다.
func (r *Refresher) Start(ctx context.Context, wg *sync.WaitGroup) error {
	r.runningMu.Lock()
	defer r.runningMu.Unlock()

	if r.running {
		wg.Done()
		applog.WithComponent(component).Warn("카탈로그 재로딩 스케줄러가 이미 실행 중입니다 (중복 호출)")
		return nil
	}

	if r.schedule == "" {
		wg.Done()
		applog.WithComponent(component).Info("카탈로그 재로딩 스케줄이 설정되지 않아 스케줄러를 시작하지 않습니다")
		return nil
	}

	logger := cron.VerbosePrintfLogger(applog.StandardLogger())
	r.cron = cron.New(
		cron.WithParser(cronx.StandardParser()),
		cron.WithChain(cron.Recover(logger), cron.SkipIfStillRunning(logger)),
	)

	if _, err := r.cron.AddFunc(r.schedule, func() {
		reloadCtx, cancel := context.WithTimeout(context.Background(), reloadTimeout)
		defer cancel()

		_ = r.Reload(reloadCtx)
	}); err != nil {
		r.cron = nil
		wg.Done()
		return err
	}

	r.cron.Start()
	r.running = true

	applog.WithComponentAndFields(component, applog.Fields{
		"schedule": r.schedule,
	}).Info("카탈로그 재로딩 스케줄러 시작")

	go func() {
		defer wg.Done()

		<-ctx.Done()

		r.stop()
	}()

	return nil
}

func (r *Refresher) stop() {
	r.runningMu.Lock()
	defer r.runningMu.Unlock()

	if !r.running {
		return
	}

	<-r.cron.Stop().Done()

	r.cron = nil
	r.running = false

	applog.WithComponent(component).Info("카탈로그 재로딩 스케줄러 종료")
}
