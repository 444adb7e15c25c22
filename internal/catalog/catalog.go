// Package catalog 스토어의 상품 카탈로그를 불러오고 조회하는 기능을 제공합니다.
//
// 카탈로그는 로드 시점에 한 번 검증 및 정규화되며, 이후에는 읽기 전용으로만 사용됩니다.
package catalog

import (
	"math"
	"sync"

	"github.com/go-playground/validator/v10"
)

var (
	validate     *validator.Validate
	validateOnce sync.Once
)

func productValidator() *validator.Validate {
	validateOnce.Do(func() {
		validate = validator.New(validator.WithRequiredStructEnabled())
		validate.RegisterTagNameFunc(jsonTagName)
	})
	return validate
}

// Document 파싱된 카탈로그 문서입니다.
// 선택지 목록(Categories, Brands, Colors)은 표시 순서와 라벨을 지정하며 생략할 수 있습니다.
type Document struct {
	Products   []Product
	Categories []Option
	Brands     []Option
	Colors     []Option
}

// Catalog 정규화된 상품 목록과 조회용 인덱스를 보관하는 불변 객체입니다.
type Catalog struct {
	products []Product
	index    map[string]int
	options  FilterOptions
}

// Empty 상품이 하나도 없는 카탈로그를 반환합니다.
func Empty() *Catalog {
	return &Catalog{index: map[string]int{}}
}

// New 문서를 검증하고 정규화하여 Catalog를 생성합니다.
func New(doc Document) (*Catalog, error) {
	c := &Catalog{
		products: make([]Product, 0, len(doc.Products)),
		index:    make(map[string]int, len(doc.Products)),
	}

	for i, p := range doc.Products {
		p = p.normalize()
		if err := productValidator().Struct(p); err != nil {
			return nil, newErrInvalidProduct(i, p.ID, err)
		}
		if _, exists := c.index[p.ID]; exists {
			return nil, newErrDuplicateProductID(p.ID)
		}

		c.index[p.ID] = len(c.products)
		c.products = append(c.products, p)
	}

	c.options = buildOptions(c.products, doc)

	return c, nil
}

// Products 원래 순서를 유지한 상품 목록의 복사본을 반환합니다.
func (c *Catalog) Products() []Product {
	out := make([]Product, len(c.products))
	copy(out, c.products)
	return out
}

// Len 상품 개수를 반환합니다.
func (c *Catalog) Len() int {
	return len(c.products)
}

// Lookup ID로 상품을 조회합니다.
func (c *Catalog) Lookup(id string) (Product, bool) {
	i, ok := c.index[id]
	if !ok {
		return Product{}, false
	}
	return c.products[i], true
}

// Options 필터 선택지와 상품 수, 가격 범위를 반환합니다.
func (c *Catalog) Options() FilterOptions {
	o := c.options
	o.Categories = append([]Option(nil), o.Categories...)
	o.Brands = append([]Option(nil), o.Brands...)
	o.Colors = append([]Option(nil), o.Colors...)
	return o
}

func buildOptions(products []Product, doc Document) FilterOptions {
	opts := FilterOptions{
		Categories: facet(products, doc.Categories, func(p Product) (string, string) { return p.Category, p.Category }),
		Brands:     facet(products, doc.Brands, func(p Product) (string, string) { return p.BrandSlug, p.Brand }),
		Colors:     facet(products, doc.Colors, func(p Product) (string, string) { return p.Color, p.Color }),
	}

	if len(products) > 0 {
		opts.PriceMin, opts.PriceMax = math.Inf(1), math.Inf(-1)
		for _, p := range products {
			opts.PriceMin = math.Min(opts.PriceMin, p.Price)
			opts.PriceMax = math.Max(opts.PriceMax, p.Price)
		}
	}

	return opts
}

// facet 선언된 선택지를 먼저 나열하고, 상품에만 존재하는 값은 처음 등장한 순서대로 뒤에 붙입니다.
func facet(products []Product, declared []Option, field func(Product) (value, label string)) []Option {
	options := make([]Option, 0, len(declared))
	pos := make(map[string]int, len(declared))

	add := func(value, label string) {
		if value == "" {
			return
		}
		if _, ok := pos[value]; ok {
			return
		}
		if label == "" {
			label = value
		}
		pos[value] = len(options)
		options = append(options, Option{Value: value, Label: label})
	}

	for _, o := range declared {
		add(normalizeOptionValue(o.Value), o.Label)
	}
	for _, p := range products {
		add(field(p))
	}
	for _, p := range products {
		if value, _ := field(p); value != "" {
			options[pos[value]].Count++
		}
	}

	return options
}
