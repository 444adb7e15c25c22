package shop

import (
	"context"
	"slices"

	"github.com/darkkaiser/lensyz-store/internal/catalog"
	"github.com/darkkaiser/lensyz-store/internal/state"
	"github.com/darkkaiser/lensyz-store/internal/wishlist"
	applog "github.com/darkkaiser/lensyz-store/pkg/log"
)

// WishlistIDs 위시리스트에 저장된 상품 ID 목록을 반환합니다. 카탈로그에 없는 ID도 포함됩니다.
func (s *Shop) WishlistIDs(ctx context.Context) ([]string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.loadWishlist(ctx)
}

// Wishlist 위시리스트의 상품 목록을 담은 순서대로 반환합니다. 카탈로그에서 사라진 상품은 제외됩니다.
func (s *Shop) Wishlist(ctx context.Context) ([]catalog.Product, error) {
	ids, err := s.WishlistIDs(ctx)
	if err != nil {
		return nil, err
	}

	c := s.Catalog()
	products := make([]catalog.Product, 0, len(ids))
	for _, id := range ids {
		p, ok := c.Lookup(id)
		if !ok {
			applog.WithComponentAndFields(component, applog.Fields{
				"product_id": id,
			}).Debug("위시리스트 항목 표시 생략: 카탈로그에 없는 상품")

			continue
		}
		products = append(products, p)
	}
	return products, nil
}

// IsWishlisted productID가 위시리스트에 있는지 반환합니다.
func (s *Shop) IsWishlisted(ctx context.Context, productID string) (bool, error) {
	ids, err := s.WishlistIDs(ctx)
	if err != nil {
		return false, err
	}
	return wishlist.Contains(ids, productID), nil
}

// ToggleWishlist productID가 위시리스트에 있으면 제거하고(removed=true), 없으면 추가합니다.
//
// 카탈로그에 없는 상품은 추가할 수 없지만, 이미 저장되어 있다면 제거는 가능합니다.
func (s *Shop) ToggleWishlist(ctx context.Context, productID string) (removed bool, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	ids, err := s.loadWishlist(ctx)
	if err != nil {
		return false, err
	}

	if !wishlist.Contains(ids, productID) {
		if _, ok := s.Catalog().Lookup(productID); !ok {
			return false, newErrProductNotFound(productID)
		}
	}

	ids, removed = wishlist.Toggle(ids, productID)
	if err := s.save(ctx, state.KeyWishlist, ids); err != nil {
		return false, err
	}
	return removed, nil
}

// RemoveFromWishlist productID를 위시리스트에서 제거합니다. 없는 ID여도 에러가 아닙니다.
func (s *Shop) RemoveFromWishlist(ctx context.Context, productID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	ids, err := s.loadWishlist(ctx)
	if err != nil {
		return err
	}
	return s.save(ctx, state.KeyWishlist, wishlist.Remove(ids, productID))
}

// RelatedToWishlist 위시리스트 화면의 추천 상품을 반환합니다.
//
// 위시리스트에 없는 상품 중 위시리스트 상품과 카테고리가 같은 상품을 먼저, 그다음 추천 상품을 카탈로그 순서로 고릅니다.
// limit이 1보다 작으면 DefaultRelatedLimit을 사용합니다.
func (s *Shop) RelatedToWishlist(ctx context.Context, limit int) ([]catalog.Product, error) {
	if limit < 1 {
		limit = DefaultRelatedLimit
	}

	ids, err := s.WishlistIDs(ctx)
	if err != nil {
		return nil, err
	}

	c := s.Catalog()
	categories := make(map[string]bool)
	for _, id := range ids {
		if p, ok := c.Lookup(id); ok {
			categories[p.Category] = true
		}
	}

	score := func(p catalog.Product) int {
		n := 0
		if categories[p.Category] {
			n += 2
		}
		if p.IsFeatured {
			n++
		}
		return n
	}

	candidates := slices.DeleteFunc(c.Products(), func(p catalog.Product) bool {
		return wishlist.Contains(ids, p.ID) || score(p) == 0
	})
	slices.SortStableFunc(candidates, func(a, b catalog.Product) int {
		return score(b) - score(a)
	})

	if len(candidates) > limit {
		candidates = candidates[:limit]
	}
	return candidates, nil
}
