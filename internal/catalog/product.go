package catalog

import (
	"encoding/json"
	"strings"

	"github.com/darkkaiser/lensyz-store/pkg/strutil"
)

// Product 카탈로그에 등록된 상품 정보입니다. 로드 이후에는 변경되지 않습니다.
type Product struct {
	ID            string   `json:"id" yaml:"id" validate:"required"`
	Name          string   `json:"name" yaml:"name" validate:"required"`
	Price         float64  `json:"price" yaml:"price" validate:"gte=0"`
	OriginalPrice float64  `json:"originalPrice,omitempty" yaml:"originalPrice" validate:"gte=0"`
	Discount      int      `json:"discount,omitempty" yaml:"discount" validate:"gte=0,lte=100"`
	ImageURL      string   `json:"imageUrl" yaml:"imageUrl"`
	Rating        float64  `json:"rating" yaml:"rating" validate:"gte=0,lte=5"`
	Category      string   `json:"category" yaml:"category" validate:"required"`
	Brand         string   `json:"brand" yaml:"brand"`
	BrandSlug     string   `json:"brandSlug" yaml:"-"`
	Color         string   `json:"color,omitempty" yaml:"color"`
	IsNew         bool     `json:"isNew" yaml:"isNew"`
	IsFeatured    bool     `json:"isFeatured" yaml:"isFeatured"`
	Description   string   `json:"description,omitempty" yaml:"description"`
	Sizes         []string `json:"sizes,omitempty" yaml:"sizes"`

	searchText string
}

// SearchText 검색에 사용되는 정규화된 문자열(상품명, 카테고리, 설명, 브랜드)을 반환합니다.
func (p Product) SearchText() string {
	return p.searchText
}

// HasDiscount 할인 표시가 필요한 상품인지 여부를 반환합니다.
func (p Product) HasDiscount() bool {
	return p.Discount > 0 && p.OriginalPrice > p.Price
}

// MarshalJSON 상품 필드에 할인 표시 여부(hasDiscount)를 더해 직렬화합니다.
func (p Product) MarshalJSON() ([]byte, error) {
	type product Product
	return json.Marshal(struct {
		product
		HasDiscount bool `json:"hasDiscount"`
	}{product(p), p.HasDiscount()})
}

// normalize 상품 필드를 비교 가능한 형태로 한 번만 정규화합니다.
func (p Product) normalize() Product {
	p.ID = strings.TrimSpace(p.ID)
	p.Name = strutil.NormalizeSpaces(p.Name)
	p.Category = strutil.Slugify(p.Category)
	p.Brand = strutil.NormalizeSpaces(p.Brand)
	p.BrandSlug = strutil.Slugify(p.Brand)
	p.Color = strutil.Slugify(p.Color)
	p.Description = strutil.StripHTML(p.Description)

	if len(p.Sizes) > 0 {
		sizes := make([]string, 0, len(p.Sizes))
		for _, s := range p.Sizes {
			if s = strings.TrimSpace(s); s != "" {
				sizes = append(sizes, s)
			}
		}
		p.Sizes = sizes
	}

	p.searchText = strutil.Fold(strings.Join([]string{p.Name, p.Category, p.Description, p.Brand}, " "))

	return p
}

// Option 필터 UI에 표시되는 선택지입니다.
type Option struct {
	Value string `json:"value"`
	Label string `json:"label"`
	Count int    `json:"count"`
}

// FilterOptions 카탈로그에서 선택할 수 있는 필터 값과 가격 범위입니다.
type FilterOptions struct {
	Categories []Option `json:"categories"`
	Brands     []Option `json:"brands"`
	Colors     []Option `json:"colors"`
	PriceMin   float64  `json:"price_min"`
	PriceMax   float64  `json:"price_max"`
}
