package handler

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/darkkaiser/lensyz-store/internal/catalog"
	"github.com/darkkaiser/lensyz-store/internal/service/api/constants"
	"github.com/darkkaiser/lensyz-store/internal/shop"
	"github.com/darkkaiser/lensyz-store/internal/state"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type brokenCatalog struct{}

func (brokenCatalog) Current() *catalog.Catalog { return nil }
func (brokenCatalog) Available() bool           { return false }
func (brokenCatalog) LastError() error          { return errors.New("parse error") }

func newTestHandler(t *testing.T, catalogs shop.CatalogProvider) *Handler {
	t.Helper()

	s, err := shop.New(catalogs, state.NewMemoryStore(), shop.Config{})
	require.NoError(t, err)
	t.Cleanup(s.Close)

	return New(s)
}

func TestNew(t *testing.T) {
	t.Parallel()

	assert.PanicsWithValue(t, constants.PanicMsgShopRequired, func() {
		New(nil)
	})

	h := newTestHandler(t, shop.StaticCatalog(catalog.Sample()))
	assert.NotNil(t, h.shop)
}

func TestHandler_RequireCatalog(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		catalogs   shop.CatalogProvider
		wantStatus int
	}{
		{"카탈로그 정상", shop.StaticCatalog(catalog.Sample()), http.StatusOK},
		{"카탈로그 장애", brokenCatalog{}, http.StatusServiceUnavailable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			h := newTestHandler(t, tt.catalogs)
			e := echo.New()
			c := e.NewContext(httptest.NewRequest(http.MethodGet, "/api/v1/products", nil), httptest.NewRecorder())

			err := h.RequireCatalog()(func(c echo.Context) error {
				return c.NoContent(http.StatusOK)
			})(c)

			if tt.wantStatus == http.StatusOK {
				assert.NoError(t, err)
				return
			}

			var he *echo.HTTPError
			require.ErrorAs(t, err, &he)
			assert.Equal(t, tt.wantStatus, he.Code)
		})
	}
}

func TestCartIndex(t *testing.T) {
	t.Parallel()

	tests := []struct {
		raw     string
		want    int
		wantErr bool
	}{
		{"0", 0, false},
		{"12", 12, false},
		{"-1", 0, true},
		{"first", 0, true},
		{"", 0, true},
	}

	for _, tt := range tests {
		e := echo.New()
		c := e.NewContext(httptest.NewRequest(http.MethodDelete, "/", nil), httptest.NewRecorder())
		c.SetParamNames("index")
		c.SetParamValues(tt.raw)

		got, err := cartIndex(c)
		if tt.wantErr {
			assert.Error(t, err, tt.raw)
			continue
		}
		require.NoError(t, err, tt.raw)
		assert.Equal(t, tt.want, got)
	}
}
