package handler

import (
	"net/http"
	"strconv"

	"github.com/darkkaiser/lensyz-store/internal/browse"
	"github.com/darkkaiser/lensyz-store/internal/service/api/v1/model/response"
	"github.com/darkkaiser/lensyz-store/internal/shop"
	"github.com/labstack/echo/v4"
)

// ListProductsHandler godoc
// @Summary 상품 목록 조회
// @Description 필터, 검색어, 정렬을 적용한 상품 목록의 한 페이지를 반환합니다.
// @Description 같은 필터의 값들은 OR, 서로 다른 필터는 AND로 결합됩니다.
// @Description 범위를 벗어난 페이지 번호는 가장 가까운 유효한 페이지로 보정됩니다.
// @Tags Products
// @Produce json
// @Param q query string false "검색어"
// @Param category query []string false "카테고리 (반복 또는 쉼표 구분)"
// @Param brand query []string false "브랜드"
// @Param color query []string false "색상"
// @Param min_price query number false "최소 가격"
// @Param max_price query number false "최대 가격"
// @Param sort query string false "정렬 (default, popular, price-low, price-high, rating, rating-low, newest)"
// @Param page query int false "페이지 번호 (1부터)"
// @Param page_size query int false "페이지 크기"
// @Success 200 {object} response.ProductListResponse
// @Failure 400 {object} response.ErrorResponse "잘못된 필터 값"
// @Failure 503 {object} response.ErrorResponse "카탈로그를 사용할 수 없음"
// @Router /api/v1/products [get]
func (h *Handler) ListProductsHandler(c echo.Context) error {
	page, err := h.shop.ProductsFromValues(c.QueryParams())
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, response.ProductListResponse{
		ProductPage:    page,
		CanonicalQuery: h.canonicalQuery(page),
	})
}

// canonicalQuery 조회 결과를 다시 만들 수 있는 정규화된 쿼리 문자열을 반환합니다.
// 기본값과 같은 페이지 번호와 페이지 크기는 생략합니다.
//
// sort 파라미터가 없으면 설정된 기본 정렬이 적용되므로, 카탈로그 순서(default)는 명시적으로 남깁니다.
func (h *Handler) canonicalQuery(page shop.ProductPage) string {
	v := page.Criteria.Values()
	if page.Criteria.Sort == browse.SortDefault && h.shop.Config().DefaultSort != browse.SortDefault {
		v.Set(browse.ParamSort, string(browse.SortDefault))
	}
	if page.Number > 1 {
		v.Set(browse.ParamPage, strconv.Itoa(page.Number))
	}
	if page.Size != h.shop.Config().PageSize {
		v.Set(browse.ParamPageSize, strconv.Itoa(page.Size))
	}
	return v.Encode()
}

// FilterOptionsHandler godoc
// @Summary 필터 선택지 조회
// @Description 카탈로그의 카테고리, 브랜드, 색상별 상품 수와 가격 범위를 반환합니다.
// @Tags Products
// @Produce json
// @Success 200 {object} catalog.FilterOptions
// @Router /api/v1/products/filters [get]
func (h *Handler) FilterOptionsHandler(c echo.Context) error {
	return c.JSON(http.StatusOK, h.shop.FilterOptions())
}

// GetProductHandler godoc
// @Summary 상품 상세 조회
// @Tags Products
// @Produce json
// @Param id path string true "상품 ID"
// @Success 200 {object} catalog.Product
// @Failure 404 {object} response.ErrorResponse "상품 없음"
// @Router /api/v1/products/{id} [get]
func (h *Handler) GetProductHandler(c echo.Context) error {
	p, err := h.shop.Product(c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, p)
}
