package concurrency

import (
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKeyedMutex_SameKeySerializes(t *testing.T) {
	t.Parallel()

	km := NewKeyedMutex[string]()

	var active, maxActive int32
	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_ = km.WithLock("cart", func() error {
				n := atomic.AddInt32(&active, 1)
				for {
					cur := atomic.LoadInt32(&maxActive)
					if n <= cur || atomic.CompareAndSwapInt32(&maxActive, cur, n) {
						break
					}
				}
				time.Sleep(time.Millisecond)
				atomic.AddInt32(&active, -1)
				return nil
			})
		}()
	}
	wg.Wait()

	assert.Equal(t, int32(1), maxActive)
	assert.Equal(t, 0, km.Len(), "사용이 끝난 키는 정리되어야 합니다")
}

func TestKeyedMutex_DifferentKeysDoNotBlock(t *testing.T) {
	t.Parallel()

	km := NewKeyedMutex[string]()
	km.Lock("cart")
	defer km.Unlock("cart")

	done := make(chan struct{})
	go func() {
		km.Lock("wishlist")
		km.Unlock("wishlist")
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("다른 키의 락이 블로킹되었습니다")
	}
}

func TestKeyedMutex_TryLock(t *testing.T) {
	t.Parallel()

	km := NewKeyedMutex[int]()

	require.True(t, km.TryLock(1))
	assert.False(t, km.TryLock(1))
	assert.Equal(t, 1, km.Len())

	km.Unlock(1)
	assert.Equal(t, 0, km.Len())
	assert.True(t, km.TryLock(1))
	km.Unlock(1)
}

func TestKeyedMutex_WithLockReturnsError(t *testing.T) {
	t.Parallel()

	km := NewKeyedMutex[string]()
	errBoom := errors.New("boom")

	assert.ErrorIs(t, km.WithLock("k", func() error { return errBoom }), errBoom)
	assert.Equal(t, 0, km.Len())
}

func TestKeyedMutex_UnlockWithoutLockPanics(t *testing.T) {
	t.Parallel()

	km := NewKeyedMutex[string]()
	assert.Panics(t, func() { km.Unlock("none") })
}
