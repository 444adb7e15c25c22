package browse

import (
	"strings"

	"github.com/darkkaiser/lensyz-store/internal/catalog"
	"github.com/darkkaiser/lensyz-store/pkg/strutil"
)

// DefaultSuggestionLimit 검색창 즉시 제안의 기본 개수
const DefaultSuggestionLimit = 3

// Suggest 검색어의 단어 중 하나라도 상품명 또는 카테고리에 포함된 상품을 카탈로그 순서대로 최대 limit개 반환합니다.
func Suggest(products []catalog.Product, query string, limit int) []catalog.Product {
	terms := strings.Fields(strutil.Fold(query))
	if len(terms) == 0 {
		return []catalog.Product{}
	}
	if limit < 1 {
		limit = DefaultSuggestionLimit
	}

	m := strutil.NewAnyMatcher(terms)

	suggestions := make([]catalog.Product, 0, limit)
	for _, p := range products {
		if m.Match(strutil.Fold(p.Name + " " + p.Category)) {
			suggestions = append(suggestions, p)
			if len(suggestions) == limit {
				break
			}
		}
	}
	return suggestions
}
