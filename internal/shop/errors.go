package shop

import (
	apperrors "github.com/darkkaiser/lensyz-store/internal/pkg/errors"
)

func newErrProductNotFound(id string) error {
	return apperrors.Newf(apperrors.NotFound, "상품을 찾을 수 없습니다 (id=%s)", id)
}
