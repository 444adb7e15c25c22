package validator_test

import (
	"errors"
	"sync"
	"testing"

	"github.com/darkkaiser/lensyz-store/internal/pkg/validator"
	govalidator "github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
)

func TestGet_Concurrency(t *testing.T) {
	t.Parallel()

	const routines = 50
	validators := make([]*govalidator.Validate, routines)

	var wg sync.WaitGroup
	wg.Add(routines)
	for i := 0; i < routines; i++ {
		go func(index int) {
			defer wg.Done()
			validators[index] = validator.Get()
		}(i)
	}
	wg.Wait()

	for i := 1; i < routines; i++ {
		assert.Same(t, validators[0], validators[i])
	}
}

type cartForm struct {
	ProductID string `validate:"required" korean:"상품 ID"`
	Quantity  int    `validate:"min=1,max=99" korean:"수량"`
	Color     string `validate:"max=5" korean:"색상"`
	Size      string `validate:"omitempty,oneof=S M L" korean:"사이즈"`
	Note      string `validate:"alpha"`
}

func TestFormatValidationError(t *testing.T) {
	t.Parallel()

	valid := cartForm{ProductID: "1", Quantity: 1, Note: "ok"}

	tests := []struct {
		name   string
		modify func(f *cartForm)
		want   string
	}{
		{"필수", func(f *cartForm) { f.ProductID = "" }, "상품 ID는 필수입니다"},
		{"최소 숫자", func(f *cartForm) { f.Quantity = 0 }, "수량는 최소 1 이상이어야 합니다"},
		{"최대 숫자", func(f *cartForm) { f.Quantity = 100 }, "수량는 최대 99까지 입력 가능합니다"},
		{"최대 문자", func(f *cartForm) { f.Color = "Ocean Blue" }, "색상는 최대 5자까지 입력 가능합니다"},
		{"oneof", func(f *cartForm) { f.Size = "XL" }, "사이즈는 [S M L] 중 하나여야 합니다"},
		{"korean 태그 없음", func(f *cartForm) { f.Note = "123" }, "Note 검증 실패: alpha"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			f := valid
			tt.modify(&f)

			err := validator.Struct(f)
			assert.Error(t, err)
			assert.Equal(t, tt.want, validator.FormatValidationError(err))
		})
	}

	assert.NoError(t, validator.Struct(valid))
}

func TestFormatValidationError_NonValidationError(t *testing.T) {
	t.Parallel()

	assert.Empty(t, validator.FormatValidationError(nil))
	assert.Equal(t, "boom", validator.FormatValidationError(errors.New("boom")))
}
