package shop

import (
	"context"
	"math"
	"net/url"
	"testing"
	"time"

	"github.com/darkkaiser/lensyz-store/internal/browse"
	"github.com/darkkaiser/lensyz-store/internal/cart"
	"github.com/darkkaiser/lensyz-store/internal/catalog"
	"github.com/darkkaiser/lensyz-store/internal/history"
	apperrors "github.com/darkkaiser/lensyz-store/internal/pkg/errors"
	"github.com/darkkaiser/lensyz-store/internal/state"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

var fixedNow = time.Date(2026, 10, 18, 10, 0, 0, 0, time.UTC)

func newTestShop(t *testing.T, store state.Store, config Config) *Shop {
	t.Helper()

	if store == nil {
		store = state.NewMemoryStore()
	}
	s, err := New(StaticCatalog(catalog.Sample()), store, config, WithClock(func() time.Time { return fixedNow }))
	require.NoError(t, err)
	t.Cleanup(s.Close)

	return s
}

func productIDs(products []catalog.Product) []string {
	ids := make([]string, 0, len(products))
	for _, p := range products {
		ids = append(ids, p.ID)
	}
	return ids
}

// failingStore 저장에 항상 실패하는 저장소
type failingStore struct {
	*state.MemoryStore
}

func (failingStore) Save(context.Context, string, any) error {
	return apperrors.New(apperrors.System, "disk full")
}

func TestNew(t *testing.T) {
	t.Parallel()

	_, err := New(nil, state.NewMemoryStore(), Config{})
	assert.Error(t, err)

	_, err = New(StaticCatalog(nil), nil, Config{})
	assert.Error(t, err)

	_, err = New(StaticCatalog(nil), state.NewMemoryStore(), Config{Pricing: cart.Pricing{TaxRate: 2}})
	assert.True(t, apperrors.Is(err, apperrors.InvalidInput))

	_, err = New(StaticCatalog(nil), state.NewMemoryStore(), Config{DefaultSort: "cheapest"})
	assert.True(t, apperrors.Is(err, apperrors.InvalidInput))

	s, err := New(StaticCatalog(nil), state.NewMemoryStore(), Config{})
	require.NoError(t, err)
	defer s.Close()

	cfg := s.Config()
	assert.Equal(t, browse.DefaultPageSize, cfg.PageSize)
	assert.Equal(t, history.DefaultLimit, cfg.HistoryLimit)
	assert.Equal(t, browse.SortPopular, cfg.DefaultSort)
	assert.Equal(t, 0, s.Catalog().Len())
	assert.NoError(t, s.CatalogStatus())
}

func TestShop_CartFlow(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	store := state.NewMemoryStore()
	s := newTestShop(t, store, Config{})

	view, err := s.Cart(ctx)
	require.NoError(t, err)
	assert.True(t, view.Empty)

	_, err = s.AddToCart(ctx, "1", cart.Variant{}, 1)
	require.NoError(t, err)
	_, err = s.AddToCart(ctx, "2", cart.Variant{Color: "green"}, 1)
	require.NoError(t, err)
	view, err = s.AddToCart(ctx, "2", cart.Variant{Color: "green"}, 1)
	require.NoError(t, err)

	require.Len(t, view.Lines, 2)
	assert.Equal(t, 2, view.Lines[1].Entry.Quantity)
	assert.InDelta(t, 169.97, view.Totals.Subtotal, 0.001)
	assert.InDelta(t, 10.0, view.Totals.Shipping, 0.001)
	assert.InDelta(t, 179.97, view.Totals.Total, 0.001)
	assert.Equal(t, fixedNow, view.Lines[0].Entry.AddedAt)

	// 변경 즉시 저장되므로 같은 저장소를 쓰는 새 Shop에서도 보입니다.
	reopened := newTestShop(t, store, Config{})
	count, err := reopened.CartCount(ctx)
	require.NoError(t, err)
	assert.Equal(t, 3, count)

	view, err = s.UpdateCartQuantity(ctx, 0, 0)
	require.NoError(t, err)
	assert.Equal(t, 1, view.Lines[0].Entry.Quantity)

	_, err = s.UpdateCartQuantity(ctx, 5, 2)
	assert.True(t, apperrors.Is(err, apperrors.NotFound))

	view, err = s.RemoveCartEntry(ctx, 0)
	require.NoError(t, err)
	require.Len(t, view.Lines, 1)
	assert.Equal(t, "2", view.Lines[0].Product.ID)

	view, err = s.RemoveCartEntry(ctx, 0)
	require.NoError(t, err)
	assert.True(t, view.Empty)
	assert.Equal(t, cart.Totals{}, view.Totals)
}

func TestShop_AddToCart_UnknownProduct(t *testing.T) {
	t.Parallel()

	s := newTestShop(t, nil, Config{})

	_, err := s.AddToCart(context.Background(), "404", cart.Variant{}, 1)
	assert.True(t, apperrors.Is(err, apperrors.NotFound))
}

func TestShop_ClearCart(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	s := newTestShop(t, nil, Config{Pricing: cart.Pricing{ShippingFlatRate: 5, TaxRate: 0.1}})

	view, err := s.AddToCart(ctx, "14", cart.Variant{}, 2)
	require.NoError(t, err)
	assert.InDelta(t, 39.98, view.Totals.Subtotal, 0.001)
	assert.InDelta(t, 4.0, view.Totals.Tax, 0.001)
	assert.InDelta(t, 48.98, view.Totals.Total, 0.001)

	view, err = s.ClearCart(ctx)
	require.NoError(t, err)
	assert.True(t, view.Empty)
	assert.Zero(t, view.Totals.Total)
}

func TestShop_CartSkipsDanglingEntries(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	store := state.NewMemoryStore()
	require.NoError(t, store.Save(ctx, state.KeyCart, []cart.Entry{
		{ProductID: "999", Name: "Discontinued", Price: 10, Quantity: 1},
		{ProductID: "1", Name: "Crystal Blue Contact Lenses", Price: 49.99, Quantity: 1},
	}))
	s := newTestShop(t, store, Config{})

	view, err := s.Cart(ctx)
	require.NoError(t, err)
	require.Len(t, view.Lines, 1)
	assert.Equal(t, 1, view.Lines[0].Index, "저장된 장바구니에서의 위치를 유지합니다")
	assert.InDelta(t, 49.99, view.Totals.Subtotal, 0.001)

	// 사라진 상품 항목도 위치로 삭제할 수 있습니다.
	view, err = s.RemoveCartEntry(ctx, 0)
	require.NoError(t, err)
	assert.Equal(t, 0, view.Lines[0].Index)
}

func TestShop_CorruptStateFallsBackToEmpty(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	store := state.NewMemoryStore()
	store.SaveRaw(state.KeyCart, []byte("[{oops"))
	store.SaveRaw(state.KeyWishlist, []byte(`{"not":"a list"}`))
	store.SaveRaw(state.KeySearchHistory, []byte("null"))
	s := newTestShop(t, store, Config{})

	view, err := s.Cart(ctx)
	require.NoError(t, err)
	assert.True(t, view.Empty)

	products, err := s.Wishlist(ctx)
	require.NoError(t, err)
	assert.Empty(t, products)

	entries, err := s.SearchHistory(ctx)
	require.NoError(t, err)
	assert.Empty(t, entries)

	// 손상된 값은 다음 변경 시 올바른 값으로 덮어씁니다.
	_, err = s.AddToCart(ctx, "3", cart.Variant{}, 1)
	require.NoError(t, err)

	var saved []cart.Entry
	require.NoError(t, store.Load(ctx, state.KeyCart, &saved))
	assert.Len(t, saved, 1)
}

func TestShop_SaveFailureIsReported(t *testing.T) {
	t.Parallel()

	s := newTestShop(t, failingStore{state.NewMemoryStore()}, Config{})

	_, err := s.AddToCart(context.Background(), "1", cart.Variant{}, 1)
	require.Error(t, err)
	assert.True(t, apperrors.Is(err, apperrors.System))
}

func TestShop_Wishlist(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	store := state.NewMemoryStore()
	s := newTestShop(t, store, Config{})

	removed, err := s.ToggleWishlist(ctx, "8")
	require.NoError(t, err)
	assert.False(t, removed)

	removed, err = s.ToggleWishlist(ctx, "2")
	require.NoError(t, err)
	assert.False(t, removed)

	ok, err := s.IsWishlisted(ctx, "8")
	require.NoError(t, err)
	assert.True(t, ok)

	products, err := s.Wishlist(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"8", "2"}, productIDs(products))

	removed, err = s.ToggleWishlist(ctx, "8")
	require.NoError(t, err)
	assert.True(t, removed)

	ids, err := s.WishlistIDs(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"2"}, ids)

	_, err = s.ToggleWishlist(ctx, "404")
	assert.True(t, apperrors.Is(err, apperrors.NotFound))

	require.NoError(t, s.RemoveFromWishlist(ctx, "2"))
	ids, err = s.WishlistIDs(ctx)
	require.NoError(t, err)
	assert.Empty(t, ids)
}

func TestShop_Wishlist_DanglingIDs(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	store := state.NewMemoryStore()
	require.NoError(t, store.Save(ctx, state.KeyWishlist, []string{"999", "1", "1"}))
	s := newTestShop(t, store, Config{})

	products, err := s.Wishlist(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"1"}, productIDs(products))

	// 카탈로그에서 사라진 상품도 위시리스트에서 제거할 수 있습니다.
	removed, err := s.ToggleWishlist(ctx, "999")
	require.NoError(t, err)
	assert.True(t, removed)

	ids, err := s.WishlistIDs(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"1"}, ids)
}

func TestShop_RelatedToWishlist(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	s := newTestShop(t, nil, Config{})

	_, err := s.ToggleWishlist(ctx, "2")
	require.NoError(t, err)

	related, err := s.RelatedToWishlist(ctx, 0)
	require.NoError(t, err)
	assert.Equal(t, []string{"1", "3", "15", "4"}, productIDs(related))

	related, err = s.RelatedToWishlist(ctx, 20)
	require.NoError(t, err)
	assert.Equal(t, []string{"1", "3", "15", "4", "8", "9", "12", "5", "10"}, productIDs(related))
}

func TestShop_Search(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	s := newTestShop(t, nil, Config{})

	result, err := s.Search(ctx, "  Blue ", "")
	require.NoError(t, err)
	assert.Equal(t, "Blue", result.Query)
	assert.Equal(t, browse.SortDefault, result.Sort)
	assert.Equal(t, []string{"1", "8"}, productIDs(result.Products))
	assert.True(t, result.Recorded)

	result, err = s.Search(ctx, "sunglasses", browse.SortPriceLow)
	require.NoError(t, err)
	assert.Empty(t, result.Products)
	assert.False(t, result.Recorded, "결과가 없는 검색어는 기록하지 않습니다")

	result, err = s.Search(ctx, "", "")
	require.NoError(t, err)
	assert.Len(t, result.Products, 15)
	assert.Equal(t, "1", result.Products[0].ID)
	assert.False(t, result.Recorded)

	entries, err := s.SearchHistory(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"blue"}, history.Queries(entries))
}

func TestShop_SearchHistory(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	s := newTestShop(t, nil, Config{HistoryLimit: 3})

	for _, q := range []string{"a", "b", "c", "d"} {
		_, err := s.RecordSearch(ctx, q)
		require.NoError(t, err)
	}

	entries, err := s.SearchHistory(ctx)
	require.NoError(t, err)
	require.Equal(t, []string{"d", "c", "b"}, history.Queries(entries))

	entries, err = s.RemoveSearch(ctx, entries[1].Timestamp)
	require.NoError(t, err)
	assert.Equal(t, []string{"d", "b"}, history.Queries(entries))

	require.NoError(t, s.ClearSearchHistory(ctx))
	entries, err = s.SearchHistory(ctx)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestShop_SearchLive(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	s := newTestShop(t, nil, Config{DebounceDelay: 20 * time.Millisecond})

	live := s.SearchLive("oc")
	assert.True(t, live.HasPending)
	s.SearchLive("ocean")
	live = s.SearchLive("Ocean Blue")
	assert.Equal(t, "Ocean Blue", live.Pending)
	assert.Equal(t, []string{"1", "8"}, productIDs(live.Suggestions))

	require.Eventually(t, func() bool {
		entries, err := s.SearchHistory(ctx)
		return err == nil && len(entries) == 1
	}, time.Second, 5*time.Millisecond)

	entries, err := s.SearchHistory(ctx)
	require.NoError(t, err)
	assert.Equal(t, "ocean blue", entries[0].Query, "입력 도중의 검색어는 기록되지 않습니다")
	assert.Equal(t, "Ocean Blue", s.LiveState("").Committed)
}

func TestShop_FlushLive(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	s := newTestShop(t, nil, Config{DebounceDelay: time.Hour})

	s.SearchLive("violet")
	live := s.FlushLive()
	assert.False(t, live.HasPending)
	assert.Equal(t, "violet", live.Committed)

	entries, err := s.SearchHistory(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"violet"}, history.Queries(entries))
}

func TestShop_ProductsFromValues(t *testing.T) {
	t.Parallel()

	s := newTestShop(t, nil, Config{})

	t.Run("정렬이 없으면 설정된 기본 정렬", func(t *testing.T) {
		t.Parallel()

		page, err := s.ProductsFromValues(url.Values{"category": {"colour-lenses"}})
		require.NoError(t, err)
		assert.Equal(t, browse.SortPopular, page.Criteria.Sort)
		assert.Equal(t, []string{"1", "3", "15", "2", "4", "8", "9", "12"}, productIDs(page.Items))
		assert.Equal(t, 8, page.TotalItems)
		assert.Equal(t, 1, page.TotalPages)
	})

	t.Run("sort=default는 카탈로그 순서", func(t *testing.T) {
		t.Parallel()

		page, err := s.ProductsFromValues(url.Values{"category": {"colour-lenses"}, "sort": {"default"}})
		require.NoError(t, err)
		assert.Equal(t, []string{"1", "2", "3", "4", "8", "9", "12", "15"}, productIDs(page.Items))
	})

	t.Run("페이지 나누기와 보정", func(t *testing.T) {
		t.Parallel()

		page, err := s.ProductsFromValues(url.Values{
			"category":  {"colour-lenses"},
			"sort":      {"default"},
			"page_size": {"5"},
			"page":      {"9"},
		})
		require.NoError(t, err)
		assert.Equal(t, 2, page.Number)
		assert.Equal(t, 2, page.TotalPages)
		assert.Equal(t, []string{"9", "12", "15"}, productIDs(page.Items))
		assert.Equal(t, []int{1, 2}, page.Window)
		assert.Equal(t, []browse.ActiveFilter{{Field: "category", Value: "colour-lenses"}}, page.ActiveFilters)
	})

	t.Run("최대 페이지 크기", func(t *testing.T) {
		t.Parallel()

		page, err := s.ProductsFromValues(url.Values{"page_size": {"1000"}})
		require.NoError(t, err)
		assert.Equal(t, DefaultMaxPageSize, page.Size)
		assert.Len(t, page.Items, 15)
		assert.NotNil(t, page.ActiveFilters)
	})

	t.Run("잘못된 필터 값", func(t *testing.T) {
		t.Parallel()

		_, err := s.ProductsFromValues(url.Values{"min_price": {"cheap"}})
		assert.True(t, apperrors.Is(err, apperrors.InvalidInput))
	})

	t.Run("결과가 없어도 에러가 아님", func(t *testing.T) {
		t.Parallel()

		page, err := s.ProductsFromValues(url.Values{"color": {"red"}})
		require.NoError(t, err)
		assert.Empty(t, page.Items)
		assert.Equal(t, 1, page.TotalPages)
		assert.True(t, page.Filtered)
	})

	t.Run("필터가 없으면 Filtered는 false", func(t *testing.T) {
		t.Parallel()

		page, err := s.ProductsFromValues(url.Values{"sort": {"rating"}})
		require.NoError(t, err)
		assert.False(t, page.Filtered)
	})
}

func TestShop_ProductsFromValues_Previous(t *testing.T) {
	t.Parallel()

	s := newTestShop(t, nil, Config{})

	base := url.Values{
		"category":  {"colour-lenses"},
		"sort":      {"default"},
		"page_size": {"5"},
		"page":      {"2"},
	}
	with := func(prev string, extra url.Values) url.Values {
		v := url.Values{}
		for k, vs := range base {
			v[k] = vs
		}
		for k, vs := range extra {
			v[k] = vs
		}
		v.Set("prev", prev)
		return v
	}

	tests := []struct {
		name     string
		values   url.Values
		wantPage int
	}{
		{"조건이 같으면 요청한 페이지 유지", with("category=colour-lenses&sort=default", nil), 2},
		{"정규화 후 같으면 유지", with("category=Colour+Lenses&sort=default", nil), 2},
		{"필터가 바뀌면 1페이지", with("sort=default", nil), 1},
		{"정렬이 바뀌면 1페이지", with("category=colour-lenses&sort=price-low", nil), 1},
		{"prev의 정렬 생략은 기본 정렬", with("category=colour-lenses", nil), 1},
		{"해석할 수 없는 prev는 1페이지", with("min_price=cheap", nil), 1},
		{"잘못 인코딩된 prev는 1페이지", with("%zz", nil), 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			page, err := s.ProductsFromValues(tt.values)
			require.NoError(t, err)
			assert.Equal(t, tt.wantPage, page.Number)
			assert.Equal(t, 2, page.TotalPages)
		})
	}

	t.Run("prev가 없으면 요청한 페이지", func(t *testing.T) {
		t.Parallel()

		page, err := s.ProductsFromValues(base)
		require.NoError(t, err)
		assert.Equal(t, 2, page.Number)
	})
}

func TestShop_CartIncrementDecrement(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	s := newTestShop(t, nil, Config{})

	_, err := s.AddToCart(ctx, "1", cart.Variant{}, 1)
	require.NoError(t, err)

	view, err := s.IncrementCartEntry(ctx, 0)
	require.NoError(t, err)
	assert.Equal(t, 2, view.Lines[0].Entry.Quantity)
	assert.InDelta(t, 99.98, view.Totals.Subtotal, 0.001)

	view, err = s.DecrementCartEntry(ctx, 0)
	require.NoError(t, err)
	view, err = s.DecrementCartEntry(ctx, 0)
	require.NoError(t, err)
	assert.Equal(t, 1, view.Lines[0].Entry.Quantity, "수량은 1 아래로 내려가지 않습니다")

	_, err = s.IncrementCartEntry(ctx, 3)
	assert.True(t, apperrors.Is(err, apperrors.NotFound))
	_, err = s.DecrementCartEntry(ctx, 3)
	assert.True(t, apperrors.Is(err, apperrors.NotFound))
}

func TestShop_AddToCart_QuantityCap(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	s := newTestShop(t, nil, Config{})

	_, err := s.AddToCart(ctx, "1", cart.Variant{}, math.MaxInt)
	require.NoError(t, err)
	view, err := s.AddToCart(ctx, "1", cart.Variant{}, 1)
	require.NoError(t, err)

	require.Len(t, view.Lines, 1)
	assert.Equal(t, cart.MaxQuantity, view.Lines[0].Entry.Quantity)
	assert.Equal(t, cart.MaxQuantity, view.Totals.ItemCount)
	assert.Positive(t, view.Totals.Subtotal)
}

func TestShop_EmptyCatalog(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	s, err := New(StaticCatalog(catalog.Empty()), state.NewMemoryStore(), Config{})
	require.NoError(t, err)
	defer s.Close()

	page := s.Products(browse.Criteria{Query: "blue"}, 3, 0)
	assert.Empty(t, page.Items)
	assert.Equal(t, 1, page.Number)

	result, err := s.Search(ctx, "blue", "")
	require.NoError(t, err)
	assert.Empty(t, result.Products)
	assert.Empty(t, result.Suggestions)

	assert.Empty(t, s.FilterOptions().Categories)
}
