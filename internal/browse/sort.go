package browse

import (
	"slices"
	"strings"

	"github.com/darkkaiser/lensyz-store/internal/catalog"
	apperrors "github.com/darkkaiser/lensyz-store/internal/pkg/errors"
)

// SortKey 상품 목록의 정렬 기준입니다.
type SortKey string

const (
	// SortDefault 카탈로그 순서를 그대로 유지합니다. 정렬 기준이 지정되지 않았을 때의 기본값입니다.
	SortDefault SortKey = "default"

	// SortPopular 추천(isFeatured) 상품 우선
	SortPopular SortKey = "popular"

	// SortPriceLow 가격 오름차순
	SortPriceLow SortKey = "price-low"

	// SortPriceHigh 가격 내림차순
	SortPriceHigh SortKey = "price-high"

	// SortRating 평점 내림차순
	SortRating SortKey = "rating"

	// SortRatingLow 평점 오름차순
	SortRatingLow SortKey = "rating-low"

	// SortNewest 신상품(isNew) 우선
	SortNewest SortKey = "newest"
)

var sortAliases = map[string]SortKey{
	"":           SortDefault,
	"default":    SortDefault,
	"relevance":  SortDefault,
	"popular":    SortPopular,
	"featured":   SortPopular,
	"price-low":  SortPriceLow,
	"price-asc":  SortPriceLow,
	"price_asc":  SortPriceLow,
	"price":      SortPriceLow,
	"price-high": SortPriceHigh,
	"price-desc": SortPriceHigh,
	"price_desc": SortPriceHigh,
	"rating":     SortRating,
	"top-rated":  SortRating,
	"rating-low": SortRatingLow,
	"rating-asc": SortRatingLow,
	"newest":     SortNewest,
	"new":        SortNewest,
}

// ParseSortKey 문자열을 SortKey로 변환합니다. 빈 문자열은 SortDefault입니다.
func ParseSortKey(s string) (SortKey, error) {
	key, ok := sortAliases[strings.ToLower(strings.TrimSpace(s))]
	if !ok {
		return "", apperrors.Newf(apperrors.InvalidInput, "지원하지 않는 정렬 기준입니다 (sort=%q)", s)
	}
	return key, nil
}

// SortKeys 지원하는 모든 정렬 기준을 반환합니다.
func SortKeys() []SortKey {
	return []SortKey{SortDefault, SortPopular, SortPriceLow, SortPriceHigh, SortRating, SortRatingLow, SortNewest}
}

// Sort 상품 목록을 key 기준으로 안정 정렬합니다. 기준값이 같은 상품은 기존 순서를 유지합니다.
func Sort(products []catalog.Product, key SortKey) {
	if key == SortDefault || key == "" {
		return
	}
	slices.SortStableFunc(products, comparator(key))
}

func comparator(key SortKey) func(a, b catalog.Product) int {
	switch key {
	case SortPriceLow:
		return func(a, b catalog.Product) int { return compareFloat(a.Price, b.Price) }
	case SortPriceHigh:
		return func(a, b catalog.Product) int { return compareFloat(b.Price, a.Price) }
	case SortRating:
		return func(a, b catalog.Product) int { return compareFloat(b.Rating, a.Rating) }
	case SortRatingLow:
		return func(a, b catalog.Product) int { return compareFloat(a.Rating, b.Rating) }
	case SortNewest:
		return func(a, b catalog.Product) int { return compareFlag(a.IsNew, b.IsNew) }
	default:
		return func(a, b catalog.Product) int { return compareFlag(a.IsFeatured, b.IsFeatured) }
	}
}

func compareFloat(a, b float64) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

// compareFlag true인 쪽이 앞에 옵니다.
func compareFlag(a, b bool) int {
	switch {
	case a == b:
		return 0
	case a:
		return -1
	default:
		return 1
	}
}
