// Package search 실시간 검색 입력을 다룹니다.
//
// 입력 중인 검색어(pending)는 일정 시간 입력이 멈춘 뒤에야 확정된 검색어(committed)가 됩니다.
// 한 번에 하나의 타이머만 존재하며, 새 입력은 이전 타이머를 취소하고 다시 시작합니다.
package search

import (
	"sync"
	"time"

	applog "github.com/darkkaiser/lensyz-store/pkg/log"
)

// component 검색 입력 로깅용 컴포넌트 이름
const component = "search.debouncer"

// DefaultDelay 입력이 멈춘 뒤 검색어를 확정하기까지 기다리는 기본 시간
const DefaultDelay = 350 * time.Millisecond

// CommitFunc 검색어가 확정될 때 호출되는 함수입니다.
type CommitFunc func(query string)

// Debouncer 입력 중인 검색어와 확정된 검색어를 관리합니다.
type Debouncer struct {
	mu sync.Mutex

	delay    time.Duration
	onCommit CommitFunc

	timer *time.Timer

	// generation 타이머가 재시작될 때마다 증가합니다. 이미 취소된 타이머의 콜백은 자신의 세대가 다르므로 무시됩니다.
	generation uint64

	pending    string
	hasPending bool
	committed  string

	stopped bool

	// inflight 실행 중인 onCommit 호출. Stop은 이 호출들이 끝날 때까지 기다립니다.
	inflight sync.WaitGroup
}

// NewDebouncer delay 동안 입력이 없으면 검색어를 확정하는 Debouncer를 생성합니다.
// delay가 0 이하이면 DefaultDelay를 사용하며, onCommit은 nil일 수 있습니다.
func NewDebouncer(delay time.Duration, onCommit CommitFunc) *Debouncer {
	if delay <= 0 {
		delay = DefaultDelay
	}
	return &Debouncer{
		delay:    delay,
		onCommit: onCommit,
	}
}

// Delay 검색어 확정까지의 대기 시간을 반환합니다.
func (d *Debouncer) Delay() time.Duration {
	return d.delay
}

// Input 입력 중인 검색어를 갱신하고 타이머를 다시 시작합니다. Stop 이후의 입력은 무시됩니다.
func (d *Debouncer) Input(query string) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.stopped {
		return
	}

	d.pending = query
	d.hasPending = true
	d.restartTimerLocked()
}

// Pending 입력 중인 검색어를 반환합니다. 확정을 기다리는 검색어가 없으면 ok는 false입니다.
func (d *Debouncer) Pending() (query string, ok bool) {
	d.mu.Lock()
	defer d.mu.Unlock()

	return d.pending, d.hasPending
}

// Committed 마지막으로 확정된 검색어를 반환합니다.
func (d *Debouncer) Committed() string {
	d.mu.Lock()
	defer d.mu.Unlock()

	return d.committed
}

// Flush 타이머를 기다리지 않고 입력 중인 검색어를 즉시 확정합니다. (엔터 키 입력)
// 확정할 검색어가 없으면 ok는 false입니다.
func (d *Debouncer) Flush() (query string, ok bool) {
	d.mu.Lock()
	if !d.hasPending || d.stopped {
		d.mu.Unlock()
		return "", false
	}
	d.stopTimerLocked()
	query = d.commitLocked()
	d.inflight.Add(1)
	d.mu.Unlock()

	d.notify(query)
	return query, true
}

// Cancel 입력 중인 검색어를 버리고 타이머를 취소합니다. 확정된 검색어는 유지됩니다.
func (d *Debouncer) Cancel() {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.stopTimerLocked()
	d.pending = ""
	d.hasPending = false
}

// Stop 타이머를 취소하고 이후의 입력을 받지 않습니다.
//
// 이미 실행 중인 onCommit 호출이 있으면 끝날 때까지 기다린 뒤 반환합니다.
// 따라서 onCommit 안에서 Stop을 호출하면 안 됩니다.
func (d *Debouncer) Stop() {
	d.mu.Lock()
	d.stopTimerLocked()
	d.pending = ""
	d.hasPending = false
	d.stopped = true
	d.mu.Unlock()

	d.inflight.Wait()
}

func (d *Debouncer) restartTimerLocked() {
	d.stopTimerLocked()

	gen := d.generation
	d.timer = time.AfterFunc(d.delay, func() {
		d.fire(gen)
	})
}

// stopTimerLocked 현재 타이머를 취소하고 세대를 올려서 이미 실행 대기 중인 콜백도 무효화합니다.
func (d *Debouncer) stopTimerLocked() {
	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
	d.generation++
}

func (d *Debouncer) fire(gen uint64) {
	d.mu.Lock()
	if gen != d.generation || !d.hasPending || d.stopped {
		d.mu.Unlock()
		return
	}
	d.timer = nil
	query := d.commitLocked()
	d.inflight.Add(1)
	d.mu.Unlock()

	d.notify(query)
}

func (d *Debouncer) commitLocked() string {
	d.committed = NormalizeQuery(d.pending)
	d.pending = ""
	d.hasPending = false
	return d.committed
}

// notify onCommit을 호출합니다. 호출 전에 inflight.Add(1)이 되어 있어야 합니다.
func (d *Debouncer) notify(query string) {
	defer d.inflight.Done()

	if d.onCommit == nil {
		return
	}

	defer func() {
		if r := recover(); r != nil {
			applog.WithComponentAndFields(component, applog.Fields{
				"query": query,
				"panic": r,
			}).Error("검색어 확정 처리 중 패닉 발생")
		}
	}()

	d.onCommit(query)
}
