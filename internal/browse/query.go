package browse

import (
	"math"
	"net/url"
	"strconv"
	"strings"

	apperrors "github.com/darkkaiser/lensyz-store/internal/pkg/errors"
	"github.com/darkkaiser/lensyz-store/pkg/strutil"
)

// URL 쿼리 파라미터 이름
const (
	ParamQuery    = "q"
	ParamCategory = "category"
	ParamBrand    = "brand"
	ParamColor    = "color"
	ParamMinPrice = "min_price"
	ParamMaxPrice = "max_price"
	ParamSort     = "sort"
	ParamPage     = "page"
	ParamPageSize = "page_size"

	// ParamPrevious 직전 화면의 정규화된 쿼리 문자열입니다. 조건이 바뀌었는지 판단하는 데 사용됩니다.
	ParamPrevious = "prev"
)

// ParseValues URL 쿼리 파라미터로부터 Criteria를 만듭니다.
//
// 다중 값 필드는 반복 파라미터(?color=blue&color=green)와 쉼표 구분(?color=blue,green)을 모두 지원합니다.
// 가격은 한쪽만 지정할 수 있으며 지정하지 않은 쪽은 제한이 없습니다.
func ParseValues(v url.Values) (Criteria, error) {
	c := Criteria{
		Categories: multiValue(v, ParamCategory),
		Brands:     multiValue(v, ParamBrand),
		Colors:     multiValue(v, ParamColor),
		Query:      v.Get(ParamQuery),
	}

	sort, err := ParseSortKey(v.Get(ParamSort))
	if err != nil {
		return Criteria{}, err
	}
	c.Sort = sort

	minPrice, hasMin, err := floatValue(v, ParamMinPrice)
	if err != nil {
		return Criteria{}, err
	}
	maxPrice, hasMax, err := floatValue(v, ParamMaxPrice)
	if err != nil {
		return Criteria{}, err
	}
	if hasMin || hasMax {
		if !hasMax {
			maxPrice = math.MaxFloat64
		}
		c.Price = &PriceRange{Min: minPrice, Max: maxPrice}
	}

	c = c.Normalize()
	if err := c.Validate(); err != nil {
		return Criteria{}, err
	}
	return c, nil
}

// Values Criteria를 URL 쿼리 파라미터로 변환합니다. ParseValues와 왕복 변환됩니다.
func (c Criteria) Values() url.Values {
	n := c.Normalize()
	v := url.Values{}

	if n.Query != "" {
		v.Set(ParamQuery, n.Query)
	}
	for _, s := range n.Categories {
		v.Add(ParamCategory, s)
	}
	for _, s := range n.Brands {
		v.Add(ParamBrand, s)
	}
	for _, s := range n.Colors {
		v.Add(ParamColor, s)
	}
	if n.Price != nil {
		if n.Price.Min > 0 {
			v.Set(ParamMinPrice, strconv.FormatFloat(n.Price.Min, 'f', -1, 64))
		}
		if n.Price.Max != math.MaxFloat64 {
			v.Set(ParamMaxPrice, strconv.FormatFloat(n.Price.Max, 'f', -1, 64))
		}
	}
	if n.Sort != SortDefault {
		v.Set(ParamSort, string(n.Sort))
	}
	return v
}

// ParsePage 페이지 번호 문자열을 해석합니다. 숫자가 아니거나 1보다 작으면 1을 반환합니다.
func ParsePage(s string) int {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || n < 1 {
		return 1
	}
	return n
}

// View 목록 화면의 현재 조건과 페이지 번호입니다.
type View struct {
	Criteria Criteria
	Page     int
}

// WithCriteria 조건을 변경합니다. 조건이 실제로 바뀌면 페이지는 1로 돌아갑니다.
func (v View) WithCriteria(c Criteria) View {
	if !v.Criteria.Equal(c) {
		v.Page = 1
	}
	v.Criteria = c.Normalize()
	if v.Page < 1 {
		v.Page = 1
	}
	return v
}

// WithPage 페이지 번호만 변경합니다.
func (v View) WithPage(page int) View {
	v.Page = max(page, 1)
	return v
}

func multiValue(v url.Values, key string) []string {
	var out []string
	for _, raw := range v[key] {
		out = append(out, strutil.SplitAndTrim(raw, ",")...)
	}
	return out
}

func floatValue(v url.Values, key string) (float64, bool, error) {
	raw := strings.TrimSpace(v.Get(key))
	if raw == "" {
		return 0, false, nil
	}
	f, err := strconv.ParseFloat(raw, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, false, apperrors.Newf(apperrors.InvalidInput, "가격은 숫자여야 합니다 (%s=%q)", key, raw)
	}
	return f, true, nil
}
