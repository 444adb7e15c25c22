package shop

import (
	"context"

	"github.com/darkkaiser/lensyz-store/internal/cart"
	"github.com/darkkaiser/lensyz-store/internal/catalog"
	"github.com/darkkaiser/lensyz-store/internal/state"
	applog "github.com/darkkaiser/lensyz-store/pkg/log"
)

// CartLine 화면에 표시되는 장바구니 한 줄입니다.
type CartLine struct {
	// Index 저장된 장바구니에서의 위치. 수량 변경과 삭제에 사용합니다.
	Index     int             `json:"index"`
	Entry     cart.Entry      `json:"entry"`
	Product   catalog.Product `json:"product"`
	LineTotal float64         `json:"line_total"`
}

// CartView 장바구니 화면에 필요한 값입니다.
//
// 카탈로그에서 사라진 상품을 가리키는 항목은 Lines와 Totals에서 제외되며 저장된 장바구니에는 그대로 남습니다.
type CartView struct {
	Lines  []CartLine  `json:"lines"`
	Totals cart.Totals `json:"totals"`
	Empty  bool        `json:"empty"`
}

// Cart 현재 장바구니를 반환합니다.
func (s *Shop) Cart(ctx context.Context) (CartView, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	entries, err := s.loadCart(ctx)
	if err != nil {
		return CartView{}, err
	}
	return s.cartView(entries), nil
}

// CartCount 장바구니에 담긴 전체 수량을 반환합니다.
func (s *Shop) CartCount(ctx context.Context) (int, error) {
	view, err := s.Cart(ctx)
	if err != nil {
		return 0, err
	}
	return view.Totals.ItemCount, nil
}

// AddToCart productID 상품을 qty개 담습니다. 같은 상품과 옵션이 이미 있으면 수량이 늘어납니다.
func (s *Shop) AddToCart(ctx context.Context, productID string, v cart.Variant, qty int) (CartView, error) {
	p, err := s.Product(productID)
	if err != nil {
		return CartView{}, err
	}

	return s.mutateCart(ctx, func(entries []cart.Entry) ([]cart.Entry, error) {
		return cart.Add(entries, p, v, qty, s.now()), nil
	})
}

// UpdateCartQuantity index번째 항목의 수량을 변경합니다. 수량은 [1, cart.MaxQuantity] 범위로 보정됩니다.
func (s *Shop) UpdateCartQuantity(ctx context.Context, index, qty int) (CartView, error) {
	return s.mutateCart(ctx, func(entries []cart.Entry) ([]cart.Entry, error) {
		return cart.UpdateQuantity(entries, index, qty)
	})
}

// IncrementCartEntry index번째 항목의 수량을 1 늘립니다. (+ 버튼)
func (s *Shop) IncrementCartEntry(ctx context.Context, index int) (CartView, error) {
	return s.mutateCart(ctx, func(entries []cart.Entry) ([]cart.Entry, error) {
		return cart.Increment(entries, index)
	})
}

// DecrementCartEntry index번째 항목의 수량을 1 줄입니다. 수량이 1이면 그대로 둡니다. (- 버튼)
func (s *Shop) DecrementCartEntry(ctx context.Context, index int) (CartView, error) {
	return s.mutateCart(ctx, func(entries []cart.Entry) ([]cart.Entry, error) {
		return cart.Decrement(entries, index)
	})
}

// RemoveCartEntry index번째 항목을 삭제합니다.
func (s *Shop) RemoveCartEntry(ctx context.Context, index int) (CartView, error) {
	return s.mutateCart(ctx, func(entries []cart.Entry) ([]cart.Entry, error) {
		return cart.Remove(entries, index)
	})
}

// ClearCart 장바구니를 비웁니다.
func (s *Shop) ClearCart(ctx context.Context) (CartView, error) {
	return s.mutateCart(ctx, func([]cart.Entry) ([]cart.Entry, error) {
		return cart.Clear(), nil
	})
}

func (s *Shop) mutateCart(ctx context.Context, fn func([]cart.Entry) ([]cart.Entry, error)) (CartView, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	entries, err := s.loadCart(ctx)
	if err != nil {
		return CartView{}, err
	}

	entries, err = fn(entries)
	if err != nil {
		return CartView{}, err
	}

	if err := s.save(ctx, state.KeyCart, entries); err != nil {
		return CartView{}, err
	}
	return s.cartView(entries), nil
}

func (s *Shop) cartView(entries []cart.Entry) CartView {
	c := s.Catalog()

	lines := make([]CartLine, 0, len(entries))
	visible := make([]cart.Entry, 0, len(entries))
	for i, e := range entries {
		p, ok := c.Lookup(e.ProductID)
		if !ok {
			applog.WithComponentAndFields(component, applog.Fields{
				"product_id": e.ProductID,
				"index":      i,
			}).Debug("장바구니 항목 표시 생략: 카탈로그에 없는 상품")

			continue
		}

		lines = append(lines, CartLine{
			Index:     i,
			Entry:     e,
			Product:   p,
			LineTotal: e.LineTotal(),
		})
		visible = append(visible, e)
	}

	return CartView{
		Lines:  lines,
		Totals: cart.ComputeTotals(visible, s.config.Pricing),
		Empty:  len(lines) == 0,
	}
}
