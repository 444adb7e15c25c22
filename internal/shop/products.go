package shop

import (
	"net/url"
	"strconv"

	"github.com/darkkaiser/lensyz-store/internal/browse"
	"github.com/darkkaiser/lensyz-store/internal/catalog"
)

// ProductPage 상품 목록 화면의 한 페이지입니다.
type ProductPage struct {
	browse.Page[catalog.Product]

	// Window 페이지 이동 UI에 표시할 페이지 번호
	Window []int `json:"window"`

	Criteria      browse.Criteria       `json:"criteria"`
	ActiveFilters []browse.ActiveFilter `json:"active_filters"`

	// Filtered 필터나 검색어가 하나라도 적용되었는지 여부 ("필터 초기화" 버튼 표시)
	Filtered bool `json:"filtered"`
}

// Products 조건에 맞는 상품 목록의 한 페이지를 반환합니다.
//
// pageSize가 1보다 작으면 설정된 페이지 크기를, 최대값보다 크면 최대값을 사용합니다.
func (s *Shop) Products(c browse.Criteria, page, pageSize int) ProductPage {
	c = c.Normalize()

	switch {
	case pageSize < 1:
		pageSize = s.config.PageSize
	case pageSize > s.config.MaxPageSize:
		pageSize = s.config.MaxPageSize
	}

	p := browse.Paginate(browse.ApplyCatalog(s.Catalog(), c), pageSize, page)

	filters := c.ActiveFilters()
	if filters == nil {
		filters = []browse.ActiveFilter{}
	}

	return ProductPage{
		Page:          p,
		Window:        browse.PageWindow(p.Number, p.TotalPages, browse.DefaultWindowRadius),
		Criteria:      c,
		ActiveFilters: filters,
		Filtered:      !c.IsZero(),
	}
}

// FilterOptions 필터 화면에 표시할 선택지와 상품 수를 반환합니다.
func (s *Shop) FilterOptions() catalog.FilterOptions {
	return s.Catalog().Options()
}

// ProductsFromValues URL 쿼리 파라미터로 상품 목록을 조회합니다.
//
// sort 파라미터가 없으면 설정된 기본 정렬을, page가 없거나 잘못되었으면 1페이지를 사용합니다.
// prev 파라미터로 직전 화면의 쿼리 문자열이 전달되고 그 사이 조건(필터, 검색어, 정렬)이 바뀌었으면
// page 값과 관계없이 1페이지로 돌아갑니다.
// 필터 값이 잘못된 경우에만 InvalidInput 에러를 반환합니다.
func (s *Shop) ProductsFromValues(v url.Values) (ProductPage, error) {
	c, err := s.criteriaFromValues(v)
	if err != nil {
		return ProductPage{}, err
	}

	view := browse.View{Criteria: c}.WithPage(browse.ParsePage(v.Get(browse.ParamPage)))
	if v.Has(browse.ParamPrevious) {
		view = s.previousView(v.Get(browse.ParamPrevious), view.Page).WithCriteria(c)
	}

	pageSize, err := strconv.Atoi(v.Get(browse.ParamPageSize))
	if err != nil {
		pageSize = 0
	}

	return s.Products(view.Criteria, view.Page, pageSize), nil
}

func (s *Shop) criteriaFromValues(v url.Values) (browse.Criteria, error) {
	c, err := browse.ParseValues(v)
	if err != nil {
		return browse.Criteria{}, err
	}
	if !v.Has(browse.ParamSort) {
		c.Sort = s.config.DefaultSort
	}
	return c, nil
}

// previousView 직전 화면의 쿼리 문자열을 해석합니다. 해석할 수 없으면 1페이지의 빈 화면을 반환하며,
// 이 경우 현재 조건과 다르다고 보고 1페이지로 돌아갑니다.
func (s *Shop) previousView(raw string, page int) browse.View {
	prev, err := url.ParseQuery(raw)
	if err != nil {
		return browse.View{Page: 1}
	}
	c, err := s.criteriaFromValues(prev)
	if err != nil {
		return browse.View{Page: 1}
	}
	return browse.View{Criteria: c}.WithPage(page)
}
