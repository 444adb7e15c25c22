package handler

import (
	"net/http"
	"strconv"

	"github.com/darkkaiser/lensyz-store/internal/service/api/httputil"
	"github.com/darkkaiser/lensyz-store/internal/service/api/v1/model/response"
	"github.com/labstack/echo/v4"
)

// GetWishlistHandler godoc
// @Summary 위시리스트 조회
// @Description 위시리스트 상품을 담은 순서대로 반환합니다. 카탈로그에서 사라진 상품은 제외됩니다.
// @Tags Wishlist
// @Produce json
// @Success 200 {object} response.ProductListItems
// @Router /api/v1/wishlist [get]
func (h *Handler) GetWishlistHandler(c echo.Context) error {
	products, err := h.shop.Wishlist(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, response.NewProductListItems(products))
}

// RelatedProductsHandler godoc
// @Summary 위시리스트 추천 상품
// @Tags Wishlist
// @Produce json
// @Param limit query int false "최대 개수 (기본 4)"
// @Success 200 {object} response.ProductListItems
// @Router /api/v1/wishlist/related [get]
func (h *Handler) RelatedProductsHandler(c echo.Context) error {
	// 숫자가 아니면 기본 개수를 사용합니다.
	limit, _ := strconv.Atoi(c.QueryParam("limit"))

	products, err := h.shop.RelatedToWishlist(c.Request().Context(), limit)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, response.NewProductListItems(products))
}

// WishlistStatusHandler godoc
// @Summary 위시리스트 포함 여부 조회
// @Tags Wishlist
// @Produce json
// @Param id path string true "상품 ID"
// @Success 200 {object} response.WishlistStatusResponse
// @Router /api/v1/wishlist/{id} [get]
func (h *Handler) WishlistStatusHandler(c echo.Context) error {
	id := c.Param("id")

	ok, err := h.shop.IsWishlisted(c.Request().Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, response.WishlistStatusResponse{ProductID: id, Wishlisted: ok})
}

// ToggleWishlistHandler godoc
// @Summary 위시리스트 토글
// @Description 상품이 위시리스트에 있으면 제거하고, 없으면 추가합니다.
// @Tags Wishlist
// @Produce json
// @Param id path string true "상품 ID"
// @Success 200 {object} response.WishlistStatusResponse
// @Failure 404 {object} response.ErrorResponse "상품 없음"
// @Router /api/v1/wishlist/{id}/toggle [post]
func (h *Handler) ToggleWishlistHandler(c echo.Context) error {
	id := c.Param("id")

	removed, err := h.shop.ToggleWishlist(c.Request().Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, response.WishlistStatusResponse{ProductID: id, Wishlisted: !removed})
}

// RemoveFromWishlistHandler godoc
// @Summary 위시리스트에서 제거
// @Tags Wishlist
// @Produce json
// @Param id path string true "상품 ID"
// @Success 200 {object} response.SuccessResponse
// @Router /api/v1/wishlist/{id} [delete]
func (h *Handler) RemoveFromWishlistHandler(c echo.Context) error {
	if err := h.shop.RemoveFromWishlist(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}
	return httputil.Success(c)
}
