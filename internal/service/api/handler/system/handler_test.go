package system

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/darkkaiser/lensyz-store/internal/pkg/version"
	"github.com/darkkaiser/lensyz-store/internal/service/api/constants"
	"github.com/darkkaiser/lensyz-store/internal/service/api/model/system"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// =============================================================================
// Test Helpers
// =============================================================================

type mockCatalog struct {
	mock.Mock
}

func (m *mockCatalog) CatalogStatus() error {
	return m.Called().Error(0)
}

type mockPinger struct {
	mock.Mock
}

func (m *mockPinger) Ping(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}

func serve(t *testing.T, handler echo.HandlerFunc, target string) *httptest.ResponseRecorder {
	t.Helper()

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, target, nil)
	rec := httptest.NewRecorder()

	require.NoError(t, handler(e.NewContext(req, rec)))

	return rec
}

// =============================================================================
// Constructor Tests
// =============================================================================

func TestNew(t *testing.T) {
	t.Parallel()

	t.Run("성공", func(t *testing.T) {
		t.Parallel()

		catalog := new(mockCatalog)
		buildInfo := version.Info{Version: "v1.0.0"}

		h := New(catalog, nil, buildInfo)

		require.NotNil(t, h)
		assert.Equal(t, buildInfo, h.buildInfo)
		assert.WithinDuration(t, time.Now(), h.serverStartTime, time.Second)
	})

	t.Run("CatalogChecker가 nil이면 panic", func(t *testing.T) {
		t.Parallel()

		assert.PanicsWithValue(t, constants.PanicMsgCatalogRequired, func() {
			New(nil, nil, version.Info{})
		})
	})
}

// =============================================================================
// Health Check Tests
// =============================================================================

func TestHandler_HealthCheckHandler(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		catalogErr error
		store      func() any
		wantStatus string
		wantDeps   map[string]string
	}{
		{
			name:       "모두 정상 (Ping 미지원 저장소)",
			store:      func() any { return struct{}{} },
			wantStatus: constants.HealthStatusHealthy,
			wantDeps: map[string]string{
				constants.DependencyCatalog:    constants.MsgDepStatusHealthy,
				constants.DependencyStateStore: constants.MsgDepStatusHealthy,
			},
		},
		{
			name: "모두 정상 (Ping 성공)",
			store: func() any {
				p := new(mockPinger)
				p.On("Ping", mock.Anything).Return(nil).Once()
				return p
			},
			wantStatus: constants.HealthStatusHealthy,
			wantDeps: map[string]string{
				constants.DependencyCatalog:    constants.MsgDepStatusHealthy,
				constants.DependencyStateStore: constants.MsgDepStatusHealthy,
			},
		},
		{
			name:       "카탈로그 장애",
			catalogErr: errors.New("catalog not loaded"),
			store:      func() any { return nil },
			wantStatus: constants.HealthStatusUnhealthy,
			wantDeps: map[string]string{
				constants.DependencyCatalog:    "catalog not loaded",
				constants.DependencyStateStore: constants.MsgDepStatusHealthy,
			},
		},
		{
			name: "저장소 장애",
			store: func() any {
				p := new(mockPinger)
				p.On("Ping", mock.Anything).Return(errors.New("connection refused")).Once()
				return p
			},
			wantStatus: constants.HealthStatusUnhealthy,
			wantDeps: map[string]string{
				constants.DependencyCatalog:    constants.MsgDepStatusHealthy,
				constants.DependencyStateStore: "connection refused",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			catalog := new(mockCatalog)
			catalog.On("CatalogStatus").Return(tt.catalogErr).Once()
			store := tt.store()

			h := New(catalog, store, version.Info{})
			rec := serve(t, h.HealthCheckHandler, "/health")

			assert.Equal(t, http.StatusOK, rec.Code)
			assert.Contains(t, rec.Header().Get(echo.HeaderContentType), echo.MIMEApplicationJSON)

			var resp system.HealthResponse
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))

			assert.Equal(t, tt.wantStatus, resp.Status)
			assert.GreaterOrEqual(t, resp.Uptime, int64(0))
			require.Len(t, resp.Dependencies, len(tt.wantDeps))
			for name, message := range tt.wantDeps {
				assert.Equal(t, message, resp.Dependencies[name].Message, name)
			}

			catalog.AssertExpectations(t)
			if p, ok := store.(*mockPinger); ok {
				p.AssertExpectations(t)
			}
		})
	}
}

// =============================================================================
// Version Info Tests
// =============================================================================

func TestHandler_VersionHandler(t *testing.T) {
	t.Parallel()

	buildInfo := version.Info{
		Version:   "v1.2.0",
		Commit:    "f25b8bf8c0a1d2e3",
		BuildDate: "2026-10-01T09:00:00Z",
		Dirty:     true,
		GoVersion: "go1.24.0",
		Platform:  "linux/amd64",
	}

	h := New(new(mockCatalog), nil, buildInfo)
	rec := serve(t, h.VersionHandler, "/version")

	assert.Equal(t, http.StatusOK, rec.Code)

	var resp system.VersionResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))

	assert.Equal(t, system.VersionResponse{
		Version:   "v1.2.0",
		Commit:    "f25b8bf",
		BuildDate: "2026-10-01T09:00:00Z",
		Dirty:     true,
		GoVersion: "go1.24.0",
		Platform:  "linux/amd64",
	}, resp)
}
