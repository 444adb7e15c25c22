package catalog

import (
	"bytes"
	"reflect"
	"strings"

	apperrors "github.com/darkkaiser/lensyz-store/internal/pkg/errors"
	"github.com/darkkaiser/lensyz-store/pkg/strutil"
	"github.com/tidwall/gjson"
	"gopkg.in/yaml.v3"
)

// ParseJSON JSON 카탈로그 문서를 파싱합니다.
//
// 다음 두 가지 형태를 모두 지원합니다.
//   - {"products": [...], "categories": [...], "brands": [...], "colors": [...]}
//   - [...] (상품 배열만 있는 형태)
//
// 숫자 ID, 문자열로 기록된 가격/평점("49.99") 등 느슨한 값도 허용합니다.
func ParseJSON(data []byte) (Document, error) {
	if len(bytes.TrimSpace(data)) == 0 || !gjson.ValidBytes(data) {
		return Document{}, ErrInvalidDocument
	}

	root := gjson.ParseBytes(data)

	products := root
	if !root.IsArray() {
		if !root.IsObject() {
			return Document{}, ErrInvalidDocument
		}
		products = root.Get("products")
		if !products.IsArray() {
			return Document{}, apperrors.Wrap(ErrInvalidDocument, apperrors.ParsingFailed, "'products' 배열이 존재하지 않습니다")
		}
	}

	var doc Document
	products.ForEach(func(_, v gjson.Result) bool {
		doc.Products = append(doc.Products, productFromJSON(v))
		return true
	})

	if root.IsObject() {
		doc.Categories = optionsFromJSON(root.Get("categories"))
		doc.Brands = optionsFromJSON(root.Get("brands"))
		doc.Colors = optionsFromJSON(root.Get("colors"))
	}

	return doc, nil
}

func productFromJSON(v gjson.Result) Product {
	p := Product{
		ID:            v.Get("id").String(),
		Name:          v.Get("name").String(),
		Price:         v.Get("price").Float(),
		OriginalPrice: v.Get("originalPrice").Float(),
		Discount:      int(v.Get("discount").Int()),
		ImageURL:      firstNonEmpty(v.Get("imageUrl").String(), v.Get("image").String()),
		Rating:        v.Get("rating").Float(),
		Category:      v.Get("category").String(),
		Brand:         v.Get("brand").String(),
		Color:         v.Get("color").String(),
		IsNew:         v.Get("isNew").Bool(),
		IsFeatured:    v.Get("isFeatured").Bool(),
		Description:   v.Get("description").String(),
	}

	for _, s := range v.Get("sizes").Array() {
		p.Sizes = append(p.Sizes, s.String())
	}

	return p
}

// optionsFromJSON ["blue", ...] 또는 [{"id": "blue", "label": "Blue"}, ...] 형태를 모두 지원합니다.
func optionsFromJSON(v gjson.Result) []Option {
	if !v.IsArray() {
		return nil
	}

	var options []Option
	v.ForEach(func(_, item gjson.Result) bool {
		if item.IsObject() {
			options = append(options, Option{
				Value: firstNonEmpty(item.Get("id").String(), item.Get("value").String()),
				Label: item.Get("label").String(),
			})
		} else {
			options = append(options, Option{Value: item.String(), Label: item.String()})
		}
		return true
	})
	return options
}

// yamlDocument YAML 카탈로그 문서의 구조입니다.
type yamlDocument struct {
	Products   []Product `yaml:"products"`
	Categories []Option  `yaml:"categories"`
	Brands     []Option  `yaml:"brands"`
	Colors     []Option  `yaml:"colors"`
}

// ParseYAML YAML 카탈로그 문서를 파싱합니다. 상품 목록만 있는 시퀀스 형태도 지원합니다.
func ParseYAML(data []byte) (Document, error) {
	var node yaml.Node
	if err := yaml.Unmarshal(data, &node); err != nil {
		return Document{}, apperrors.Wrap(err, apperrors.ParsingFailed, "YAML 카탈로그 문서를 해석할 수 없습니다")
	}
	if node.Kind != yaml.DocumentNode || len(node.Content) == 0 {
		return Document{}, ErrInvalidDocument
	}

	root := node.Content[0]
	switch root.Kind {
	case yaml.SequenceNode:
		var products []Product
		if err := root.Decode(&products); err != nil {
			return Document{}, apperrors.Wrap(err, apperrors.ParsingFailed, "YAML 상품 목록을 해석할 수 없습니다")
		}
		return Document{Products: products}, nil

	case yaml.MappingNode:
		var doc yamlDocument
		if err := root.Decode(&doc); err != nil {
			return Document{}, apperrors.Wrap(err, apperrors.ParsingFailed, "YAML 카탈로그 문서를 해석할 수 없습니다")
		}
		return Document(doc), nil

	default:
		return Document{}, ErrInvalidDocument
	}
}

// UnmarshalYAML "- blue" 같은 스칼라 선택지와 {id, label} 매핑을 모두 지원합니다.
func (o *Option) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind == yaml.ScalarNode {
		o.Value, o.Label = value.Value, value.Value
		return nil
	}

	var raw struct {
		ID    string `yaml:"id"`
		Value string `yaml:"value"`
		Label string `yaml:"label"`
	}
	if err := value.Decode(&raw); err != nil {
		return err
	}
	o.Value, o.Label = firstNonEmpty(raw.ID, raw.Value), raw.Label
	return nil
}

func normalizeOptionValue(v string) string {
	return strutil.Slugify(v)
}

func jsonTagName(fld reflect.StructField) string {
	name, _, _ := strings.Cut(fld.Tag.Get("json"), ",")
	if name == "-" {
		return ""
	}
	return name
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
