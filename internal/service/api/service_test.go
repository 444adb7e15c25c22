package api

import (
	"context"
	"crypto/tls"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"sync"
	"testing"
	"time"

	"github.com/darkkaiser/lensyz-store/internal/catalog"
	"github.com/darkkaiser/lensyz-store/internal/config"
	"github.com/darkkaiser/lensyz-store/internal/pkg/version"
	"github.com/darkkaiser/lensyz-store/internal/service/api/constants"
	"github.com/darkkaiser/lensyz-store/internal/service/api/model/system"
	"github.com/darkkaiser/lensyz-store/internal/shop"
	"github.com/darkkaiser/lensyz-store/internal/state"
	"github.com/darkkaiser/lensyz-store/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

// =============================================================================
// Test Helpers
// =============================================================================

func newTestAppConfig(t *testing.T) *config.AppConfig {
	t.Helper()

	port, err := testutil.GetFreePort()
	require.NoError(t, err)

	appConfig := &config.AppConfig{}
	appConfig.HTTP.ListenPort = port
	appConfig.HTTP.CORS.AllowOrigins = []string{"*"}
	appConfig.HTTP.BodyLimit = "16K"
	appConfig.HTTP.RequestTimeout = 5 * time.Second
	appConfig.HTTP.ShutdownTimeout = 2 * time.Second

	return appConfig
}

func newTestShop(t *testing.T) (*shop.Shop, *state.MemoryStore) {
	t.Helper()

	store := state.NewMemoryStore()
	s, err := shop.New(shop.StaticCatalog(catalog.Sample()), store, shop.Config{})
	require.NoError(t, err)
	t.Cleanup(s.Close)

	return s, store
}

func startService(t *testing.T, svc *Service) (context.CancelFunc, *sync.WaitGroup) {
	t.Helper()

	ctx, cancel := context.WithCancel(context.Background())
	wg := &sync.WaitGroup{}

	wg.Add(1)
	require.NoError(t, svc.Start(ctx, wg))

	return cancel, wg
}

func waitGroupDone(wg *sync.WaitGroup, timeout time.Duration) bool {
	done := make(chan struct{})
	go func() {
		wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		return true
	case <-time.After(timeout):
		return false
	}
}

// =============================================================================
// Constructor Tests
// =============================================================================

func TestNewService(t *testing.T) {
	s, store := newTestShop(t)

	assert.PanicsWithValue(t, constants.PanicMsgAppConfigRequired, func() {
		NewService(nil, s, store, version.Info{})
	})
	assert.PanicsWithValue(t, constants.PanicMsgShopRequired, func() {
		NewService(&config.AppConfig{}, nil, store, version.Info{})
	})

	svc := NewService(&config.AppConfig{}, s, store, version.Info{Version: "1.0.0"})
	require.NotNil(t, svc)
	assert.False(t, svc.Running())
}

// =============================================================================
// Lifecycle Tests
// =============================================================================

func TestService_StartAndShutdown(t *testing.T) {
	appConfig := newTestAppConfig(t)
	s, store := newTestShop(t)

	svc := NewService(appConfig, s, store, version.Info{Version: "1.2.3", Commit: "0123456789abcdef"})
	cancel, wg := startService(t, svc)
	defer cancel()

	port := appConfig.HTTP.ListenPort
	require.NoError(t, testutil.WaitForServer(port, 5*time.Second))
	assert.True(t, svc.Running())

	t.Run("헬스체크", func(t *testing.T) {
		resp, err := testutil.Get(fmt.Sprintf("http://127.0.0.1:%d/health", port))
		require.NoError(t, err)
		defer resp.Body.Close()

		assert.Equal(t, http.StatusOK, resp.StatusCode)

		var health system.HealthResponse
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&health))
		assert.Equal(t, constants.HealthStatusHealthy, health.Status)
	})

	t.Run("v1 라우트 등록", func(t *testing.T) {
		resp, err := testutil.Get(fmt.Sprintf("http://127.0.0.1:%d/api/v1/products?page_size=3", port))
		require.NoError(t, err)
		defer resp.Body.Close()

		assert.Equal(t, http.StatusOK, resp.StatusCode)

		body, err := io.ReadAll(resp.Body)
		require.NoError(t, err)
		assert.Contains(t, string(body), `"total_items":15`)
	})

	cancel()

	require.True(t, waitGroupDone(wg, 5*time.Second), "서비스가 제한 시간 안에 종료되지 않았습니다")
	require.NoError(t, testutil.WaitForServerDown(port, 2*time.Second))
	assert.False(t, svc.Running())
}

func TestService_StartTwice(t *testing.T) {
	appConfig := newTestAppConfig(t)
	s, store := newTestShop(t)

	svc := NewService(appConfig, s, store, version.Info{})
	cancel, wg := startService(t, svc)
	defer cancel()

	require.NoError(t, testutil.WaitForServer(appConfig.HTTP.ListenPort, 5*time.Second))

	// 두 번째 Start는 즉시 Done을 호출해야 합니다.
	wg.Add(1)
	require.NoError(t, svc.Start(context.Background(), wg))
	assert.True(t, svc.Running())

	cancel()
	require.True(t, waitGroupDone(wg, 5*time.Second))
	assert.False(t, svc.Running())
}

func TestService_PortInUse(t *testing.T) {
	first := newTestAppConfig(t)
	s, store := newTestShop(t)

	svc1 := NewService(first, s, store, version.Info{})
	cancel1, wg1 := startService(t, svc1)
	defer cancel1()
	require.NoError(t, testutil.WaitForServer(first.HTTP.ListenPort, 5*time.Second))

	second := newTestAppConfig(t)
	second.HTTP.ListenPort = first.HTTP.ListenPort

	svc2 := NewService(second, s, store, version.Info{})
	cancel2, wg2 := startService(t, svc2)
	defer cancel2()

	// 바인딩에 실패한 서비스는 종료 신호 없이도 스스로 정리됩니다.
	require.True(t, waitGroupDone(wg2, 5*time.Second))
	assert.False(t, svc2.Running())
	assert.True(t, svc1.Running())

	cancel1()
	require.True(t, waitGroupDone(wg1, 5*time.Second))
}

func TestService_TLS(t *testing.T) {
	certFile, keyFile := testutil.GenerateSelfSignedCert(t)

	appConfig := newTestAppConfig(t)
	appConfig.HTTP.TLSServer = true
	appConfig.HTTP.TLSCertFile = certFile
	appConfig.HTTP.TLSKeyFile = keyFile

	s, store := newTestShop(t)
	svc := NewService(appConfig, s, store, version.Info{})
	cancel, wg := startService(t, svc)
	defer cancel()

	port := appConfig.HTTP.ListenPort
	require.NoError(t, testutil.WaitForServer(port, 5*time.Second))

	client := &http.Client{
		Timeout: 2 * time.Second,
		Transport: &http.Transport{
			DisableKeepAlives: true,
			TLSClientConfig:   &tls.Config{InsecureSkipVerify: true}, //nolint:gosec // 자체 서명 인증서
		},
	}
	resp, err := client.Get(fmt.Sprintf("https://127.0.0.1:%d/version", port))
	require.NoError(t, err)
	_, _ = io.Copy(io.Discard, resp.Body)
	resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, resp.Header.Get("Strict-Transport-Security"), "max-age=31536000")

	cancel()
	require.True(t, waitGroupDone(wg, 5*time.Second))
}
