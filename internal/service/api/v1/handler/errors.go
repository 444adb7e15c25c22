package handler

import (
	"github.com/darkkaiser/lensyz-store/internal/service/api/constants"
	"github.com/darkkaiser/lensyz-store/internal/service/api/httputil"
)

// NewErrInvalidBody 요청 본문이 올바른 JSON이 아니거나 파싱에 실패했을 때의 에러를 생성합니다.
func NewErrInvalidBody() error {
	return httputil.NewBadRequestError(constants.ErrMsgBadRequestInvalidBody)
}

// NewErrValidationFailed 필수 값 누락, 길이 초과 등 요청 데이터 검증에 실패했을 때의 에러를 생성합니다.
func NewErrValidationFailed(msg string) error {
	return httputil.NewBadRequestError(msg)
}

// NewErrInvalidCartIndex 장바구니 항목 번호가 정수가 아닐 때의 에러를 생성합니다.
func NewErrInvalidCartIndex() error {
	return httputil.NewBadRequestError(constants.ErrMsgBadRequestCartIndex)
}

// NewErrInvalidTimestamp 검색 기록 timestamp가 정수가 아닐 때의 에러를 생성합니다.
func NewErrInvalidTimestamp() error {
	return httputil.NewBadRequestError(constants.ErrMsgBadRequestTimestamp)
}

// NewErrCatalogUnavailable 카탈로그를 불러오지 못해 상품 관련 요청을 처리할 수 없을 때의 에러를 생성합니다.
func NewErrCatalogUnavailable() error {
	return httputil.NewServiceUnavailableError(constants.ErrMsgCatalogUnavailable)
}
