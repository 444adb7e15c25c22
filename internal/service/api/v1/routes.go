// Package v1 상점 API의 v1 버전 라우트를 정의합니다.
//
// 모든 엔드포인트는 /api/v1 경로 하위에 등록됩니다.
//
//	GET    /api/v1/products                    상품 목록 (필터, 정렬, 페이지)
//	GET    /api/v1/products/filters            필터 선택지
//	GET    /api/v1/products/:id                상품 상세
//	GET    /api/v1/search                      상품 검색
//	GET    /api/v1/search/live                 실시간 검색 상태
//	POST   /api/v1/search/live                 실시간 검색어 입력
//	POST   /api/v1/search/live/flush           실시간 검색어 즉시 확정
//	GET    /api/v1/search/history              최근 검색어
//	POST   /api/v1/search/history              최근 검색어 추가
//	DELETE /api/v1/search/history              최근 검색어 전체 삭제
//	DELETE /api/v1/search/history/:timestamp   최근 검색어 하나 삭제
//	GET    /api/v1/cart                        장바구니
//	GET    /api/v1/cart/count                  장바구니 수량
//	POST   /api/v1/cart                        장바구니 담기
//	DELETE /api/v1/cart                        장바구니 비우기
//	PUT    /api/v1/cart/:index                 수량 변경
//	POST   /api/v1/cart/:index/increment       수량 1 증가
//	POST   /api/v1/cart/:index/decrement       수량 1 감소
//	DELETE /api/v1/cart/:index                 항목 삭제
//	GET    /api/v1/wishlist                    위시리스트
//	GET    /api/v1/wishlist/related            위시리스트 추천 상품
//	GET    /api/v1/wishlist/:id                위시리스트 포함 여부
//	POST   /api/v1/wishlist/:id/toggle         위시리스트 토글
//	DELETE /api/v1/wishlist/:id                위시리스트에서 제거
package v1

import (
	"github.com/darkkaiser/lensyz-store/internal/service/api/middleware"
	"github.com/darkkaiser/lensyz-store/internal/service/api/v1/handler"
	"github.com/labstack/echo/v4"
)

// RegisterRoutes Echo 인스턴스에 v1 API 라우트를 등록합니다.
//
// 카탈로그가 필요한 엔드포인트에는 RequireCatalog를, JSON 본문을 받는 엔드포인트에는 ValidateContentType을 적용합니다.
func RegisterRoutes(e *echo.Echo, h *handler.Handler) {
	v1Group := e.Group("/api/v1")

	requireCatalog := h.RequireCatalog()
	requireJSON := middleware.ValidateContentType(echo.MIMEApplicationJSON)

	products := v1Group.Group("/products", requireCatalog)
	products.GET("", h.ListProductsHandler)
	products.GET("/filters", h.FilterOptionsHandler)
	products.GET("/:id", h.GetProductHandler)

	searchGroup := v1Group.Group("/search")
	searchGroup.GET("", h.SearchHandler, requireCatalog)
	searchGroup.GET("/live", h.LiveStateHandler, requireCatalog)
	searchGroup.POST("/live", h.LiveSearchHandler, requireCatalog, requireJSON)
	searchGroup.POST("/live/flush", h.FlushLiveSearchHandler, requireCatalog)
	searchGroup.GET("/history", h.SearchHistoryHandler)
	searchGroup.POST("/history", h.RecordSearchHandler, requireJSON)
	searchGroup.DELETE("/history", h.ClearSearchHistoryHandler)
	searchGroup.DELETE("/history/:timestamp", h.RemoveSearchHandler)

	cartGroup := v1Group.Group("/cart")
	cartGroup.GET("", h.GetCartHandler)
	cartGroup.GET("/count", h.CartCountHandler)
	cartGroup.POST("", h.AddToCartHandler, requireCatalog, requireJSON)
	cartGroup.DELETE("", h.ClearCartHandler)
	cartGroup.PUT("/:index", h.UpdateCartQuantityHandler, requireJSON)
	cartGroup.POST("/:index/increment", h.IncrementCartEntryHandler)
	cartGroup.POST("/:index/decrement", h.DecrementCartEntryHandler)
	cartGroup.DELETE("/:index", h.RemoveCartEntryHandler)

	wishlistGroup := v1Group.Group("/wishlist")
	wishlistGroup.GET("", h.GetWishlistHandler)
	wishlistGroup.GET("/related", h.RelatedProductsHandler, requireCatalog)
	wishlistGroup.GET("/:id", h.WishlistStatusHandler)
	wishlistGroup.POST("/:id/toggle", h.ToggleWishlistHandler, requireCatalog)
	wishlistGroup.DELETE("/:id", h.RemoveFromWishlistHandler)
}
