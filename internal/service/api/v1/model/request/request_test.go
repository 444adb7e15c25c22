package request

import (
	"strings"
	"testing"

	"github.com/darkkaiser/lensyz-store/internal/pkg/validator"
	"github.com/stretchr/testify/assert"
)

func TestAddCartRequest_Validation(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		req     AddCartRequest
		wantErr string
	}{
		{"정상", AddCartRequest{ProductID: "1", Quantity: 2}, ""},
		{"수량과 옵션 생략", AddCartRequest{ProductID: "1"}, ""},
		{"상품 ID 누락", AddCartRequest{Quantity: 1}, "상품 ID는 필수입니다"},
		{"색상이 너무 김", AddCartRequest{ProductID: "1", Color: strings.Repeat("a", 65)}, "색상는 최대 64자까지 입력 가능합니다"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			err := validator.Struct(tt.req)
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			assert.Error(t, err)
			assert.Equal(t, tt.wantErr, validator.FormatValidationError(err))
		})
	}
}

func TestSearchRequest_Validation(t *testing.T) {
	t.Parallel()

	assert.NoError(t, validator.Struct(SearchRequest{Query: ""}))
	assert.NoError(t, validator.Struct(SearchRequest{Query: "blue"}))

	err := validator.Struct(SearchRequest{Query: strings.Repeat("q", 201)})
	assert.Equal(t, "검색어는 최대 200자까지 입력 가능합니다", validator.FormatValidationError(err))
}
