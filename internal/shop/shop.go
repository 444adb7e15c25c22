// Package shop 카탈로그, 필터 엔진, 장바구니, 위시리스트, 검색 기록을 하나의 상점 객체로 묶습니다.
//
// Shop은 사용자 상태를 메모리에 따로 들고 있지 않습니다. 모든 변경 작업은 저장소에서 컬렉션을 읽고,
// 순수 함수로 변환한 뒤, 반환하기 전에 전체 컬렉션을 다시 저장합니다.
package shop

import (
	"context"
	"sync"
	"time"

	"github.com/darkkaiser/lensyz-store/internal/browse"
	"github.com/darkkaiser/lensyz-store/internal/cart"
	"github.com/darkkaiser/lensyz-store/internal/catalog"
	"github.com/darkkaiser/lensyz-store/internal/history"
	apperrors "github.com/darkkaiser/lensyz-store/internal/pkg/errors"
	"github.com/darkkaiser/lensyz-store/internal/search"
	"github.com/darkkaiser/lensyz-store/internal/state"
	"github.com/darkkaiser/lensyz-store/internal/wishlist"
	applog "github.com/darkkaiser/lensyz-store/pkg/log"
)

// component Shop 로깅용 컴포넌트 이름
const component = "shop"

// DefaultMaxPageSize 한 페이지에 요청할 수 있는 최대 상품 수
const DefaultMaxPageSize = 60

// DefaultRelatedLimit 위시리스트 추천 상품 기본 개수
const DefaultRelatedLimit = 4

// commitTimeout 실시간 검색어가 확정되었을 때 검색 기록 저장에 허용하는 시간
const commitTimeout = 5 * time.Second

// CatalogProvider 현재 카탈로그를 제공합니다. catalog.Refresher가 이 인터페이스를 만족합니다.
type CatalogProvider interface {
	Current() *catalog.Catalog
	Available() bool
	LastError() error
}

// staticCatalog 고정된 카탈로그를 제공하는 CatalogProvider입니다.
type staticCatalog struct {
	c *catalog.Catalog
}

func (s staticCatalog) Current() *catalog.Catalog { return s.c }
func (s staticCatalog) Available() bool           { return true }
func (s staticCatalog) LastError() error          { return nil }

// StaticCatalog 항상 c를 반환하는 CatalogProvider를 생성합니다. c가 nil이면 빈 카탈로그입니다.
func StaticCatalog(c *catalog.Catalog) CatalogProvider {
	if c == nil {
		c = catalog.Empty()
	}
	return staticCatalog{c: c}
}

// Config Shop 동작 설정입니다. 0인 값은 기본값으로 대체됩니다.
type Config struct {
	Pricing cart.Pricing

	PageSize        int
	MaxPageSize     int
	DefaultSort     browse.SortKey
	SuggestionLimit int

	HistoryLimit  int
	DebounceDelay time.Duration
}

// DefaultConfig 기본 설정을 반환합니다.
func DefaultConfig() Config {
	return Config{
		Pricing:         cart.DefaultPricing(),
		PageSize:        browse.DefaultPageSize,
		MaxPageSize:     DefaultMaxPageSize,
		DefaultSort:     browse.SortPopular,
		SuggestionLimit: browse.DefaultSuggestionLimit,
		HistoryLimit:    history.DefaultLimit,
		DebounceDelay:   search.DefaultDelay,
	}
}

func (c Config) withDefaults() Config {
	def := DefaultConfig()
	if c.PageSize < 1 {
		c.PageSize = def.PageSize
	}
	if c.MaxPageSize < c.PageSize {
		c.MaxPageSize = max(def.MaxPageSize, c.PageSize)
	}
	if c.DefaultSort == "" {
		c.DefaultSort = def.DefaultSort
	}
	if c.SuggestionLimit < 1 {
		c.SuggestionLimit = def.SuggestionLimit
	}
	if c.HistoryLimit < 1 {
		c.HistoryLimit = def.HistoryLimit
	}
	if c.DebounceDelay <= 0 {
		c.DebounceDelay = def.DebounceDelay
	}
	return c
}

// Option Shop 생성 옵션입니다.
type Option func(*Shop)

// WithClock 현재 시각을 반환하는 함수를 지정합니다. (테스트용)
func WithClock(now func() time.Time) Option {
	return func(s *Shop) {
		s.now = now
	}
}

// Shop 상점 상태와 동작을 담는 객체입니다.
type Shop struct {
	// mu 저장소 읽기-변경-쓰기 구간을 직렬화합니다.
	mu sync.Mutex

	catalogs CatalogProvider
	store    state.Store
	config   Config

	now func() time.Time

	debouncer *search.Debouncer
}

// New Shop을 생성합니다.
func New(catalogs CatalogProvider, store state.Store, config Config, opts ...Option) (*Shop, error) {
	if catalogs == nil {
		return nil, apperrors.New(apperrors.Internal, "CatalogProvider는 필수입니다")
	}
	if store == nil {
		return nil, apperrors.New(apperrors.Internal, "상태 저장소는 필수입니다")
	}

	config = config.withDefaults()
	if err := config.Pricing.Validate(); err != nil {
		return nil, err
	}
	if _, err := browse.ParseSortKey(string(config.DefaultSort)); err != nil {
		return nil, err
	}

	s := &Shop{
		catalogs: catalogs,
		store:    store,
		config:   config,
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}

	s.debouncer = search.NewDebouncer(config.DebounceDelay, s.commitLiveQuery)

	return s, nil
}

// Close 대기 중인 실시간 검색어를 버리고 타이머를 정리합니다.
func (s *Shop) Close() {
	s.debouncer.Stop()
}

// Config 적용된 설정을 반환합니다.
func (s *Shop) Config() Config {
	return s.config
}

// Catalog 현재 카탈로그를 반환합니다. 카탈로그를 불러오지 못했으면 빈 카탈로그입니다.
func (s *Shop) Catalog() *catalog.Catalog {
	if c := s.catalogs.Current(); c != nil {
		return c
	}
	return catalog.Empty()
}

// CatalogStatus 카탈로그를 사용할 수 있으면 nil을, 아니면 Unavailable 에러를 반환합니다.
func (s *Shop) CatalogStatus() error {
	if s.catalogs.Available() {
		return nil
	}
	if err := s.catalogs.LastError(); err != nil {
		return err
	}
	return catalog.ErrNotLoaded
}

// Product id에 해당하는 상품을 반환합니다.
func (s *Shop) Product(id string) (catalog.Product, error) {
	if p, ok := s.Catalog().Lookup(id); ok {
		return p, nil
	}
	return catalog.Product{}, newErrProductNotFound(id)
}

func (s *Shop) loadCart(ctx context.Context) ([]cart.Entry, error) {
	var entries []cart.Entry
	if err := state.LoadOrEmpty(ctx, s.store, state.KeyCart, &entries); err != nil {
		return nil, err
	}
	return cart.Normalize(entries), nil
}

func (s *Shop) loadWishlist(ctx context.Context) ([]string, error) {
	var ids []string
	if err := state.LoadOrEmpty(ctx, s.store, state.KeyWishlist, &ids); err != nil {
		return nil, err
	}
	return wishlist.Normalize(ids), nil
}

func (s *Shop) loadHistory(ctx context.Context) ([]history.Entry, error) {
	var entries []history.Entry
	if err := state.LoadOrEmpty(ctx, s.store, state.KeySearchHistory, &entries); err != nil {
		return nil, err
	}
	return history.Normalize(entries, s.config.HistoryLimit), nil
}

func (s *Shop) save(ctx context.Context, key string, v any) error {
	if err := s.store.Save(ctx, key, v); err != nil {
		applog.WithComponentAndFields(component, applog.Fields{
			"key":   key,
			"error": err,
		}).Error("상태 저장 실패")

		return err
	}
	return nil
}
