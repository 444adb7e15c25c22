// Package cart 장바구니 항목을 다루는 순수 함수들을 제공합니다.
//
// 모든 함수는 입력 슬라이스를 변경하지 않고 새 슬라이스를 반환합니다.
// 저장은 호출자(shop 패키지)의 책임입니다.
package cart

import (
	"slices"
	"strings"
	"time"

	"github.com/darkkaiser/lensyz-store/internal/catalog"
)

// MaxQuantity 한 항목에 담을 수 있는 최대 수량
const MaxQuantity = 999

// 옵션을 고르지 않고 담은 상품에 기록되는 기본 옵션
const (
	DefaultColor = "Default"
	DefaultSize  = "One Size"
)

// Variant 같은 상품을 구분하는 옵션(색상, 사이즈)입니다.
type Variant struct {
	Color string `json:"color,omitempty"`
	Size  string `json:"size,omitempty"`
}

// normalize 앞뒤 공백을 제거하고, 옵션이 하나도 없으면 기본 옵션을 채웁니다.
func (v Variant) normalize() Variant {
	v.Color = strings.TrimSpace(v.Color)
	v.Size = strings.TrimSpace(v.Size)
	if v.Color == "" && v.Size == "" {
		return Variant{Color: DefaultColor, Size: DefaultSize}
	}
	return v
}

// Entry 장바구니의 한 줄입니다.
//
// 상품명, 가격, 이미지는 담은 시점의 값이 복사되어 저장됩니다.
// ProductID는 카탈로그 상품에 대한 약한 참조로, 카탈로그에서 사라진 상품을 가리킬 수 있습니다.
type Entry struct {
	ProductID string    `json:"id"`
	Name      string    `json:"name"`
	Price     float64   `json:"price"`
	Image     string    `json:"image,omitempty"`
	Quantity  int       `json:"quantity"`
	Color     string    `json:"color,omitempty"`
	Size      string    `json:"size,omitempty"`
	AddedAt   time.Time `json:"addedAt,omitzero"`
}

// Variant 항목의 옵션을 반환합니다.
func (e Entry) Variant() Variant {
	return Variant{Color: e.Color, Size: e.Size}
}

// LineTotal 항목의 금액(가격 x 수량)을 센트 단위로 반올림하여 반환합니다.
func (e Entry) LineTotal() float64 {
	return roundCents(e.Price * float64(e.Quantity))
}

func (e Entry) matches(productID string, v Variant) bool {
	return e.ProductID == productID && e.Color == v.Color && e.Size == v.Size
}

// Add 상품을 장바구니에 담습니다.
//
// 같은 (상품, 색상, 사이즈) 항목이 이미 있으면 수량만 qty만큼 늘리고, 없으면 맨 뒤에 새 항목을 추가합니다.
// qty는 [1, MaxQuantity] 범위로 보정되며, 늘어난 수량도 MaxQuantity를 넘지 않습니다.
func Add(entries []Entry, p catalog.Product, v Variant, qty int, now time.Time) []Entry {
	qty = ClampQuantity(qty)
	v = v.normalize()

	out := slices.Clone(entries)
	if i := slices.IndexFunc(out, func(e Entry) bool { return e.matches(p.ID, v) }); i >= 0 {
		out[i].Quantity = ClampQuantity(out[i].Quantity + qty)
		return out
	}

	return append(out, Entry{
		ProductID: p.ID,
		Name:      p.Name,
		Price:     p.Price,
		Image:     p.ImageURL,
		Quantity:  qty,
		Color:     v.Color,
		Size:      v.Size,
		AddedAt:   now,
	})
}

// UpdateQuantity index번째 항목의 수량을 qty로 변경합니다. qty는 [1, MaxQuantity] 범위로 보정됩니다.
func UpdateQuantity(entries []Entry, index, qty int) ([]Entry, error) {
	if err := checkIndex(entries, index); err != nil {
		return entries, err
	}

	out := slices.Clone(entries)
	out[index].Quantity = ClampQuantity(qty)
	return out, nil
}

// Increment index번째 항목의 수량을 1 늘립니다. 수량은 MaxQuantity를 넘지 않습니다.
func Increment(entries []Entry, index int) ([]Entry, error) {
	if err := checkIndex(entries, index); err != nil {
		return entries, err
	}
	return UpdateQuantity(entries, index, entries[index].Quantity+1)
}

// Decrement index번째 항목의 수량을 1 줄입니다. 수량은 1 아래로 내려가지 않습니다.
func Decrement(entries []Entry, index int) ([]Entry, error) {
	if err := checkIndex(entries, index); err != nil {
		return entries, err
	}
	return UpdateQuantity(entries, index, entries[index].Quantity-1)
}

// Remove index번째 항목을 삭제합니다.
func Remove(entries []Entry, index int) ([]Entry, error) {
	if err := checkIndex(entries, index); err != nil {
		return entries, err
	}
	return slices.Delete(slices.Clone(entries), index, index+1), nil
}

// Clear 비어 있는 장바구니를 반환합니다.
func Clear() []Entry {
	return []Entry{}
}

// Count 장바구니에 담긴 전체 수량을 반환합니다. (헤더의 장바구니 배지)
func Count(entries []Entry) int {
	n := 0
	for _, e := range entries {
		n += e.Quantity
	}
	return n
}

// Normalize 저장소에서 읽은 항목을 정리합니다.
//
// 상품 ID가 없는 항목은 버리고, 수량은 [1, MaxQuantity] 범위로 보정하며,
// 같은 (상품, 색상, 사이즈) 항목이 여러 개면 첫 항목에 수량을 합칩니다.
func Normalize(entries []Entry) []Entry {
	out := make([]Entry, 0, len(entries))
	for _, e := range entries {
		e.ProductID = strings.TrimSpace(e.ProductID)
		if e.ProductID == "" {
			continue
		}
		e.Quantity = ClampQuantity(e.Quantity)

		if i := slices.IndexFunc(out, func(o Entry) bool { return o.matches(e.ProductID, e.Variant()) }); i >= 0 {
			out[i].Quantity = ClampQuantity(out[i].Quantity + e.Quantity)
			continue
		}
		out = append(out, e)
	}
	return out
}

// ClampQuantity 수량을 [1, MaxQuantity] 범위로 보정합니다.
func ClampQuantity(qty int) int {
	return min(max(qty, 1), MaxQuantity)
}

// ParseQuantity 수량 입력값을 해석합니다.
//
// 앞부분의 숫자만 읽으므로 "2.5"는 2, "3개"는 3이 됩니다.
// 숫자로 시작하지 않거나 음수이면 1을, MaxQuantity보다 크면 MaxQuantity를 반환합니다.
func ParseQuantity(s string) int {
	s = strings.TrimSpace(s)

	negative := false
	if s != "" && (s[0] == '+' || s[0] == '-') {
		negative = s[0] == '-'
		s = s[1:]
	}

	n, digits := 0, 0
	for ; digits < len(s) && s[digits] >= '0' && s[digits] <= '9'; digits++ {
		// MaxQuantity를 넘은 뒤로는 더 누적하지 않는다.
		if n <= MaxQuantity {
			n = n*10 + int(s[digits]-'0')
		}
	}
	if digits == 0 || negative {
		return 1
	}
	return ClampQuantity(n)
}

func checkIndex(entries []Entry, index int) error {
	if index < 0 || index >= len(entries) {
		return newErrEntryNotFound(index, len(entries))
	}
	return nil
}
