package cart

import (
	"math"
)

// DefaultShippingFlatRate 소계가 0보다 클 때 부과되는 기본 배송비
const DefaultShippingFlatRate = 10.0

// Pricing 합계 계산에 사용하는 가격 정책입니다.
type Pricing struct {
	// ShippingFlatRate 소계가 0보다 클 때 부과하는 고정 배송비
	ShippingFlatRate float64 `json:"shipping_flat_rate"`

	// TaxRate 소계에 곱해지는 세율. 0이면 세금을 부과하지 않습니다. 예: 0.08
	TaxRate float64 `json:"tax_rate"`
}

// DefaultPricing 배송비 10, 세금 없음
func DefaultPricing() Pricing {
	return Pricing{ShippingFlatRate: DefaultShippingFlatRate}
}

// Validate 가격 정책 값을 검증합니다.
func (p Pricing) Validate() error {
	if p.ShippingFlatRate < 0 || math.IsNaN(p.ShippingFlatRate) || math.IsInf(p.ShippingFlatRate, 0) {
		return newErrInvalidPricing("shipping_flat_rate", p.ShippingFlatRate)
	}
	if p.TaxRate < 0 || p.TaxRate > 1 || math.IsNaN(p.TaxRate) {
		return newErrInvalidPricing("tax_rate", p.TaxRate)
	}
	return nil
}

// Totals 장바구니 합계입니다. 모든 금액은 센트 단위로 반올림됩니다.
type Totals struct {
	Subtotal  float64 `json:"subtotal"`
	Shipping  float64 `json:"shipping"`
	Tax       float64 `json:"tax"`
	Total     float64 `json:"total"`
	ItemCount int     `json:"item_count"`
}

// ComputeTotals 장바구니 합계를 계산합니다.
//
//	subtotal = Σ price x quantity
//	shipping = subtotal > 0 ? ShippingFlatRate : 0
//	tax      = subtotal x TaxRate
//	total    = subtotal + shipping + tax
func ComputeTotals(entries []Entry, p Pricing) Totals {
	var subtotal float64
	for _, e := range entries {
		subtotal += e.Price * float64(e.Quantity)
	}
	subtotal = roundCents(subtotal)

	var shipping float64
	if subtotal > 0 {
		shipping = roundCents(p.ShippingFlatRate)
	}
	tax := roundCents(subtotal * p.TaxRate)

	return Totals{
		Subtotal:  subtotal,
		Shipping:  shipping,
		Tax:       tax,
		Total:     roundCents(subtotal + shipping + tax),
		ItemCount: Count(entries),
	}
}

func roundCents(v float64) float64 {
	return math.Round(v*100) / 100
}
