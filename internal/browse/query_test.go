package browse

import (
	"math"
	"net/url"
	"testing"

	apperrors "github.com/darkkaiser/lensyz-store/internal/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseValues(t *testing.T) {
	t.Parallel()

	v, err := url.ParseQuery("q=%20Blue%20%20Lens&category=colour-lenses&brand=Lensyz%20Premium,lensyz-classic&color=blue&color=green&min_price=40&sort=price-high")
	require.NoError(t, err)

	c, err := ParseValues(v)
	require.NoError(t, err)

	assert.Equal(t, "Blue Lens", c.Query)
	assert.Equal(t, []string{"colour-lenses"}, c.Categories)
	assert.Equal(t, []string{"lensyz-premium", "lensyz-classic"}, c.Brands)
	assert.Equal(t, []string{"blue", "green"}, c.Colors)
	require.NotNil(t, c.Price)
	assert.Equal(t, 40.0, c.Price.Min)
	assert.Equal(t, math.MaxFloat64, c.Price.Max)
	assert.Equal(t, SortPriceHigh, c.Sort)
}

func TestParseValues_Errors(t *testing.T) {
	t.Parallel()

	tests := []string{
		"sort=cheapest",
		"min_price=abc",
		"max_price=NaN",
		"min_price=50&max_price=10",
		"min_price=-1",
	}

	for _, raw := range tests {
		t.Run(raw, func(t *testing.T) {
			t.Parallel()

			v, err := url.ParseQuery(raw)
			require.NoError(t, err)

			_, err = ParseValues(v)
			require.Error(t, err)
			assert.True(t, apperrors.Is(err, apperrors.InvalidInput))
		})
	}
}

func TestCriteria_ValuesRoundTrip(t *testing.T) {
	t.Parallel()

	original := Criteria{
		Query:      "ocean blue",
		Categories: []string{"colour-lenses"},
		Brands:     []string{"Lensyz Premium"},
		Price:      &PriceRange{Min: 10, Max: 65.5},
		Sort:       SortRating,
	}

	parsed, err := ParseValues(original.Values())
	require.NoError(t, err)
	assert.True(t, original.Equal(parsed), "parsed=%+v", parsed)
	assert.Equal(t, "ocean blue", original.Values().Get(ParamQuery))

	assert.Empty(t, Criteria{}.Values(), "기본 조건은 빈 쿼리 문자열이어야 합니다")
}

func TestParsePage(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 3, ParsePage("3"))
	assert.Equal(t, 1, ParsePage(""))
	assert.Equal(t, 1, ParsePage("abc"))
	assert.Equal(t, 1, ParsePage("-2"))
}

func TestView_FilterChangeResetsPage(t *testing.T) {
	t.Parallel()

	v := View{Criteria: Criteria{Categories: []string{"colour-lenses"}}}.WithPage(3)
	assert.Equal(t, 3, v.Page)

	same := v.WithCriteria(Criteria{Categories: []string{"Colour Lenses"}})
	assert.Equal(t, 3, same.Page, "정규화 후 같은 조건이면 페이지를 유지합니다")

	changed := v.WithCriteria(Criteria{Categories: []string{"colour-lenses"}, Colors: []string{"blue"}})
	assert.Equal(t, 1, changed.Page)

	sorted := v.WithCriteria(Criteria{Categories: []string{"colour-lenses"}, Sort: SortPriceLow})
	assert.Equal(t, 1, sorted.Page)
}

func TestCriteria_ActiveFilters(t *testing.T) {
	t.Parallel()

	c := Criteria{
		Categories: []string{"colour-lenses"},
		Brands:     []string{"Lensyz Premium", "lensyz-premium"},
		Price:      &PriceRange{Min: 0, Max: 50},
		Query:      " blue ",
	}

	assert.Equal(t, []ActiveFilter{
		{Field: "category", Value: "colour-lenses"},
		{Field: "brand", Value: "lensyz-premium"},
		{Field: "price", Value: "0.00-50.00"},
		{Field: "q", Value: "blue"},
	}, c.ActiveFilters())

	assert.True(t, Criteria{Sort: SortRating}.IsZero())
	assert.False(t, c.IsZero())
}
