// Package browse 카탈로그 상품의 필터링, 정렬, 페이지 분할, 검색 제안을 담당합니다.
//
// 모든 함수는 입력을 변경하지 않는 순수 함수이며, 같은 입력에 대해 항상 같은 결과를 반환합니다.
package browse

import (
	"slices"

	"github.com/darkkaiser/lensyz-store/internal/catalog"
	"github.com/darkkaiser/lensyz-store/pkg/strutil"
)

// Apply 조건에 맞는 상품을 골라 정렬한 새 목록을 반환합니다.
//
// 결과가 없으면 빈 슬라이스(nil 아님)를 반환합니다. products는 변경되지 않습니다.
func Apply(products []catalog.Product, c Criteria) []catalog.Product {
	m := newMatcher(c.Normalize())

	result := make([]catalog.Product, 0, len(products))
	for _, p := range products {
		if m.match(p) {
			result = append(result, p)
		}
	}

	Sort(result, m.sort)

	return result
}

// ApplyCatalog 카탈로그 전체에 조건을 적용합니다. 카탈로그가 nil이면 빈 목록을 반환합니다.
func ApplyCatalog(c *catalog.Catalog, criteria Criteria) []catalog.Product {
	if c == nil {
		return []catalog.Product{}
	}
	return Apply(c.Products(), criteria)
}

type matcher struct {
	categories []string
	brands     []string
	colors     []string
	price      *PriceRange
	query      string
	sort       SortKey
}

func newMatcher(c Criteria) *matcher {
	return &matcher{
		categories: c.Categories,
		brands:     c.Brands,
		colors:     c.Colors,
		price:      c.Price,
		query:      strutil.Fold(c.Query),
		sort:       c.Sort,
	}
}

func (m *matcher) match(p catalog.Product) bool {
	if !memberOf(m.categories, p.Category) {
		return false
	}
	if !memberOf(m.brands, p.BrandSlug) {
		return false
	}
	if !memberOf(m.colors, p.Color) {
		return false
	}
	if m.price != nil && !m.price.Contains(p.Price) {
		return false
	}
	if m.query != "" && !strutil.ContainsFold(p.SearchText(), m.query) {
		return false
	}
	return true
}

// memberOf 허용 목록이 비어 있으면 조건이 없는 것으로 봅니다.
func memberOf(allowed []string, value string) bool {
	return len(allowed) == 0 || slices.Contains(allowed, value)
}
