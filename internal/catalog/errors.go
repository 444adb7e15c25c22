package catalog

import (
	"net/http"
	"net/url"
	"strconv"

	apperrors "github.com/darkkaiser/lensyz-store/internal/pkg/errors"
)

var (
	// ErrInvalidDocument 카탈로그 문서의 형식이 올바르지 않을 때 반환됩니다.
	ErrInvalidDocument = apperrors.New(apperrors.ParsingFailed, "카탈로그 문서 형식이 올바르지 않습니다")

	// ErrUnsupportedFormat 지원하지 않는 카탈로그 파일 확장자일 때 반환됩니다.
	ErrUnsupportedFormat = apperrors.New(apperrors.InvalidInput, "지원하지 않는 카탈로그 파일 형식입니다 (json, yaml, yml만 지원)")

	// ErrNotLoaded 카탈로그를 한 번도 불러오지 못한 상태에서 반환됩니다.
	ErrNotLoaded = apperrors.New(apperrors.Unavailable, "상품 카탈로그를 불러오지 못했습니다")
)

func newErrInvalidProduct(index int, id string, err error) error {
	return apperrors.Wrapf(err, apperrors.InvalidInput, "상품 정보가 유효하지 않습니다 (index=%d, id=%q)", index, id)
}

func newErrDuplicateProductID(id string) error {
	return apperrors.Newf(apperrors.Conflict, "상품 ID가 중복되었습니다 (id=%q)", id)
}

func wrapNotLoaded(err error) error {
	return apperrors.Wrap(err, apperrors.Unavailable, "상품 카탈로그를 불러오지 못했습니다")
}

// statusError 원격 카탈로그 서버가 2xx가 아닌 상태 코드를 반환했을 때의 원인 에러입니다.
type statusError struct {
	code int
}

func (e *statusError) Error() string {
	return "unexpected status: " + strconv.Itoa(e.code)
}

func newErrUnexpectedStatus(code int, u *url.URL) error {
	errType := apperrors.Unavailable
	switch {
	case code == http.StatusNotFound:
		errType = apperrors.NotFound
	case code >= 400 && code < 500 && code != http.StatusRequestTimeout && code != http.StatusTooManyRequests:
		errType = apperrors.InvalidInput
	}
	return apperrors.Wrapf(&statusError{code: code}, errType, "원격 카탈로그 서버가 오류 상태를 반환했습니다 (status=%d, url=%q)", code, redactURL(u))
}

func newErrBodyTooLarge(limit int64) error {
	return apperrors.Newf(apperrors.InvalidInput, "원격 카탈로그 응답이 허용 크기(%d bytes)를 초과했습니다", limit)
}
