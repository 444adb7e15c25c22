package browse

import (
	"fmt"
	"slices"

	apperrors "github.com/darkkaiser/lensyz-store/internal/pkg/errors"
	"github.com/darkkaiser/lensyz-store/pkg/strutil"
)

// PriceRange 양 끝을 포함하는 가격 범위입니다.
type PriceRange struct {
	Min float64 `json:"min"`
	Max float64 `json:"max"`
}

// Contains price가 범위 안에 있는지 검사합니다. (Min <= price <= Max)
func (r PriceRange) Contains(price float64) bool {
	return price >= r.Min && price <= r.Max
}

// Criteria 상품 목록에 적용할 필터와 정렬 조건입니다.
//
// 같은 필드의 값들은 OR, 서로 다른 필드는 AND로 결합됩니다.
// 비어 있는 필드는 조건을 두지 않습니다.
type Criteria struct {
	Categories []string    `json:"categories,omitempty"`
	Brands     []string    `json:"brands,omitempty"`
	Colors     []string    `json:"colors,omitempty"`
	Price      *PriceRange `json:"price,omitempty"`
	Query      string      `json:"q,omitempty"`
	Sort       SortKey     `json:"sort"`
}

// Normalize 필터 값을 카탈로그와 같은 규칙으로 정규화합니다.
// 값은 slug로 변환되고 중복과 빈 값은 제거되며, 검색어는 공백이 정리됩니다.
func (c Criteria) Normalize() Criteria {
	c.Categories = normalizeValues(c.Categories)
	c.Brands = normalizeValues(c.Brands)
	c.Colors = normalizeValues(c.Colors)
	c.Query = strutil.NormalizeSpaces(c.Query)
	if key, err := ParseSortKey(string(c.Sort)); err == nil {
		c.Sort = key
	}
	if c.Price != nil {
		p := *c.Price
		c.Price = &p
	}
	return c
}

// Validate 가격 범위와 정렬 기준을 검증합니다.
func (c Criteria) Validate() error {
	if c.Price != nil {
		if c.Price.Min < 0 || c.Price.Max < 0 {
			return apperrors.Newf(apperrors.InvalidInput, "가격 범위는 0 이상이어야 합니다 (min=%.2f, max=%.2f)", c.Price.Min, c.Price.Max)
		}
		if c.Price.Min > c.Price.Max {
			return apperrors.Newf(apperrors.InvalidInput, "최소 가격이 최대 가격보다 클 수 없습니다 (min=%.2f, max=%.2f)", c.Price.Min, c.Price.Max)
		}
	}
	if c.Sort != "" {
		if _, err := ParseSortKey(string(c.Sort)); err != nil {
			return err
		}
	}
	return nil
}

// Equal 두 조건이 같은 결과를 만드는지 비교합니다. 비교 전에 양쪽 모두 정규화합니다.
func (c Criteria) Equal(o Criteria) bool {
	a, b := c.Normalize(), o.Normalize()

	if !slices.Equal(a.Categories, b.Categories) ||
		!slices.Equal(a.Brands, b.Brands) ||
		!slices.Equal(a.Colors, b.Colors) ||
		a.Query != b.Query || a.Sort != b.Sort {
		return false
	}

	switch {
	case a.Price == nil && b.Price == nil:
		return true
	case a.Price == nil || b.Price == nil:
		return false
	default:
		return *a.Price == *b.Price
	}
}

// IsZero 아무 필터도 걸려 있지 않은지 여부를 반환합니다. 정렬 기준은 고려하지 않습니다.
func (c Criteria) IsZero() bool {
	n := c.Normalize()
	return len(n.Categories) == 0 && len(n.Brands) == 0 && len(n.Colors) == 0 && n.Price == nil && n.Query == ""
}

// ActiveFilter 현재 적용 중인 필터 하나를 나타냅니다. (필터 배지 표시용)
type ActiveFilter struct {
	Field string `json:"field"`
	Value string `json:"value"`
}

// ActiveFilters 적용 중인 필터 목록을 카테고리, 브랜드, 색상, 가격, 검색어 순서로 반환합니다.
func (c Criteria) ActiveFilters() []ActiveFilter {
	n := c.Normalize()

	var filters []ActiveFilter
	for _, v := range n.Categories {
		filters = append(filters, ActiveFilter{Field: "category", Value: v})
	}
	for _, v := range n.Brands {
		filters = append(filters, ActiveFilter{Field: "brand", Value: v})
	}
	for _, v := range n.Colors {
		filters = append(filters, ActiveFilter{Field: "color", Value: v})
	}
	if n.Price != nil {
		filters = append(filters, ActiveFilter{Field: "price", Value: fmt.Sprintf("%.2f-%.2f", n.Price.Min, n.Price.Max)})
	}
	if n.Query != "" {
		filters = append(filters, ActiveFilter{Field: "q", Value: n.Query})
	}
	return filters
}

func normalizeValues(values []string) []string {
	if len(values) == 0 {
		return nil
	}

	out := make([]string, 0, len(values))
	for _, v := range values {
		v = strutil.Slugify(v)
		if v == "" || slices.Contains(out, v) {
			continue
		}
		out = append(out, v)
	}

	if len(out) == 0 {
		return nil
	}
	return out
}
