// Package response v1 API 응답 모델을 정의합니다.
package response

import (
	"github.com/darkkaiser/lensyz-store/internal/catalog"
	"github.com/darkkaiser/lensyz-store/internal/history"
	"github.com/darkkaiser/lensyz-store/internal/shop"
)

// ProductListResponse 상품 목록 응답
type ProductListResponse struct {
	shop.ProductPage

	// 현재 조건과 페이지를 나타내는 정규화된 쿼리 문자열. 다음 요청에 그대로 사용할 수 있습니다.
	CanonicalQuery string `json:"canonical_query" example:"category=colour-lenses&page=2&sort=price-low"`
}

// SearchResponse 검색 결과 응답
type SearchResponse struct {
	shop.SearchResult

	// 검색어가 반영된 현재 화면 URL (q 파라미터)
	URL string `json:"url" example:"/api/v1/search?q=blue"`
}

// ProductListItems 상품 목록만 담는 응답 (위시리스트, 추천 상품)
type ProductListItems struct {
	Items []catalog.Product `json:"items"`
	Count int               `json:"count" example:"3"`
}

// NewProductListItems 상품 목록 응답을 생성합니다. nil 목록은 빈 배열로 직렬화됩니다.
func NewProductListItems(products []catalog.Product) ProductListItems {
	if products == nil {
		products = []catalog.Product{}
	}
	return ProductListItems{Items: products, Count: len(products)}
}

// CartCountResponse 장바구니 배지에 표시할 총 수량
type CartCountResponse struct {
	Count int `json:"count" example:"3"`
}

// WishlistStatusResponse 상품의 위시리스트 포함 여부
type WishlistStatusResponse struct {
	ProductID  string `json:"product_id" example:"1"`
	Wishlisted bool   `json:"wishlisted" example:"true"`
}

// HistoryResponse 최근 검색어 목록 (최신순)
type HistoryResponse struct {
	Entries []history.Entry `json:"entries"`

	// 검색어만 모은 목록 (검색창 드롭다운)
	Queries []string `json:"queries" example:"blue,green"`
}

// NewHistoryResponse 검색 기록 응답을 생성합니다. nil 목록은 빈 배열로 직렬화됩니다.
func NewHistoryResponse(entries []history.Entry) HistoryResponse {
	if entries == nil {
		entries = []history.Entry{}
	}
	return HistoryResponse{Entries: entries, Queries: history.Queries(entries)}
}
