package handler

import (
	"net/http"
	"strconv"

	"github.com/darkkaiser/lensyz-store/internal/cart"
	"github.com/darkkaiser/lensyz-store/internal/service/api/v1/model/request"
	"github.com/darkkaiser/lensyz-store/internal/service/api/v1/model/response"
	"github.com/labstack/echo/v4"
)

// GetCartHandler godoc
// @Summary 장바구니 조회
// @Description 장바구니 항목과 합계(소계, 배송비, 세금, 총액)를 반환합니다.
// @Tags Cart
// @Produce json
// @Success 200 {object} shop.CartView
// @Router /api/v1/cart [get]
func (h *Handler) GetCartHandler(c echo.Context) error {
	view, err := h.shop.Cart(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, view)
}

// CartCountHandler godoc
// @Summary 장바구니 수량 조회
// @Tags Cart
// @Produce json
// @Success 200 {object} response.CartCountResponse
// @Router /api/v1/cart/count [get]
func (h *Handler) CartCountHandler(c echo.Context) error {
	count, err := h.shop.CartCount(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, response.CartCountResponse{Count: count})
}

// AddToCartHandler godoc
// @Summary 장바구니 담기
// @Description 같은 상품과 같은 옵션(색상, 사이즈)이 이미 있으면 수량만 늘어납니다.
// @Tags Cart
// @Accept json
// @Produce json
// @Param body body request.AddCartRequest true "담을 상품"
// @Success 200 {object} shop.CartView
// @Failure 400 {object} response.ErrorResponse "잘못된 요청"
// @Failure 404 {object} response.ErrorResponse "상품 없음"
// @Router /api/v1/cart [post]
func (h *Handler) AddToCartHandler(c echo.Context) error {
	req := new(request.AddCartRequest)
	if err := bindAndValidate(c, req); err != nil {
		return err
	}

	view, err := h.shop.AddToCart(c.Request().Context(), req.ProductID, cart.Variant{Color: req.Color, Size: req.Size}, req.Quantity.Int())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, view)
}

// UpdateCartQuantityHandler godoc
// @Summary 장바구니 수량 변경
// @Tags Cart
// @Accept json
// @Produce json
// @Param index path int true "항목 번호 (0부터)"
// @Param body body request.UpdateCartRequest true "변경할 수량"
// @Success 200 {object} shop.CartView
// @Failure 404 {object} response.ErrorResponse "항목 없음"
// @Router /api/v1/cart/{index} [put]
func (h *Handler) UpdateCartQuantityHandler(c echo.Context) error {
	index, err := cartIndex(c)
	if err != nil {
		return err
	}

	req := new(request.UpdateCartRequest)
	if err := bindAndValidate(c, req); err != nil {
		return err
	}

	view, err := h.shop.UpdateCartQuantity(c.Request().Context(), index, req.Quantity.Int())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, view)
}

// IncrementCartEntryHandler godoc
// @Summary 장바구니 수량 1 증가
// @Description 수량은 최대 999까지 늘어납니다.
// @Tags Cart
// @Produce json
// @Param index path int true "항목 번호 (0부터)"
// @Success 200 {object} shop.CartView
// @Failure 404 {object} response.ErrorResponse "항목 없음"
// @Router /api/v1/cart/{index}/increment [post]
func (h *Handler) IncrementCartEntryHandler(c echo.Context) error {
	index, err := cartIndex(c)
	if err != nil {
		return err
	}

	view, err := h.shop.IncrementCartEntry(c.Request().Context(), index)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, view)
}

// DecrementCartEntryHandler godoc
// @Summary 장바구니 수량 1 감소
// @Description 수량이 1이면 그대로 둡니다. 항목을 지우려면 DELETE를 사용합니다.
// @Tags Cart
// @Produce json
// @Param index path int true "항목 번호 (0부터)"
// @Success 200 {object} shop.CartView
// @Failure 404 {object} response.ErrorResponse "항목 없음"
// @Router /api/v1/cart/{index}/decrement [post]
func (h *Handler) DecrementCartEntryHandler(c echo.Context) error {
	index, err := cartIndex(c)
	if err != nil {
		return err
	}

	view, err := h.shop.DecrementCartEntry(c.Request().Context(), index)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, view)
}

// RemoveCartEntryHandler godoc
// @Summary 장바구니 항목 삭제
// @Tags Cart
// @Produce json
// @Param index path int true "항목 번호 (0부터)"
// @Success 200 {object} shop.CartView
// @Failure 404 {object} response.ErrorResponse "항목 없음"
// @Router /api/v1/cart/{index} [delete]
func (h *Handler) RemoveCartEntryHandler(c echo.Context) error {
	index, err := cartIndex(c)
	if err != nil {
		return err
	}

	view, err := h.shop.RemoveCartEntry(c.Request().Context(), index)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, view)
}

// ClearCartHandler godoc
// @Summary 장바구니 비우기
// @Tags Cart
// @Produce json
// @Success 200 {object} shop.CartView
// @Router /api/v1/cart [delete]
func (h *Handler) ClearCartHandler(c echo.Context) error {
	view, err := h.shop.ClearCart(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, view)
}

func cartIndex(c echo.Context) (int, error) {
	index, err := strconv.Atoi(c.Param("index"))
	if err != nil || index < 0 {
		return 0, NewErrInvalidCartIndex()
	}
	return index, nil
}
