package cart

import (
	apperrors "github.com/darkkaiser/lensyz-store/internal/pkg/errors"
)

func newErrEntryNotFound(index, size int) error {
	return apperrors.Newf(apperrors.NotFound, "장바구니 항목을 찾을 수 없습니다 (index=%d, size=%d)", index, size)
}

func newErrInvalidPricing(field string, value float64) error {
	return apperrors.Newf(apperrors.InvalidInput, "가격 정책 값이 올바르지 않습니다 (%s=%v)", field, value)
}
