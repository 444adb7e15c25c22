// Package request v1 API 요청 본문 모델을 정의합니다.
package request

import (
	"github.com/darkkaiser/lensyz-store/internal/cart"
	"github.com/tidwall/gjson"
)

// AddCartRequest 장바구니 담기 요청
type AddCartRequest struct {
	// 담을 상품 ID
	ProductID string `json:"product_id" validate:"required,max=64" korean:"상품 ID" example:"1"`
	// 수량 (숫자 또는 문자열, [1, 999] 범위로 보정)
	Quantity Quantity `json:"quantity" korean:"수량" swaggertype:"integer" example:"2"`
	// 색상 옵션 (색상과 사이즈를 모두 생략하면 기본 옵션)
	Color string `json:"color" validate:"max=64" korean:"색상" example:"blue"`
	// 사이즈 옵션
	Size string `json:"size" validate:"max=64" korean:"사이즈" example:"One Size"`
}

// UpdateCartRequest 장바구니 수량 변경 요청
type UpdateCartRequest struct {
	// 변경할 수량 (숫자 또는 문자열, [1, 999] 범위로 보정)
	Quantity Quantity `json:"quantity" korean:"수량" swaggertype:"integer" example:"3"`
}

// SearchRequest 검색어 입력 요청 (실시간 검색, 검색 기록 추가)
type SearchRequest struct {
	Query string `json:"q" validate:"max=200" korean:"검색어" example:"blue lenses"`
}

// Quantity 수량 입력 필드입니다.
//
// 수량 입력창의 값이 그대로 전달되는 경우가 많아 숫자와 문자열("2")을 모두 받습니다.
// 숫자로 해석할 수 없는 값은 요청을 거부하지 않고 1로, 범위를 벗어난 값은 가장 가까운 유효한 수량으로 보정합니다.
// 필드를 생략하거나 null이면 0으로 남으며, 장바구니에 반영될 때 1로 보정됩니다.
type Quantity int

// UnmarshalJSON JSON 숫자, 문자열 등 모든 값을 수량으로 해석합니다. 에러를 반환하지 않습니다.
func (q *Quantity) UnmarshalJSON(data []byte) error {
	res := gjson.ParseBytes(data)

	switch res.Type {
	case gjson.Null:
		*q = 0
	case gjson.String:
		*q = Quantity(cart.ParseQuantity(res.Str))
	case gjson.Number:
		*q = Quantity(clampNumber(res.Num))
	default:
		*q = 1
	}
	return nil
}

// Int 수량을 int로 반환합니다.
func (q Quantity) Int() int {
	return int(q)
}

// clampNumber 소수점 이하를 버리고 [1, cart.MaxQuantity] 범위로 보정합니다.
// int로 변환하기 전에 범위를 확인해야 큰 값이 음수로 바뀌지 않는다.
func clampNumber(f float64) int {
	switch {
	case f >= cart.MaxQuantity:
		return cart.MaxQuantity
	case f < 1:
		return 1
	default:
		return int(f)
	}
}
