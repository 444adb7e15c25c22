package httputil

import (
	"errors"
	"net/http"

	apperrors "github.com/darkkaiser/lensyz-store/internal/pkg/errors"
	"github.com/darkkaiser/lensyz-store/internal/service/api/constants"
	"github.com/darkkaiser/lensyz-store/internal/service/api/model/response"
	"github.com/labstack/echo/v4"
)

func newHTTPError(code int, message string) *echo.HTTPError {
	return echo.NewHTTPError(code, response.ErrorResponse{
		ResultCode: code,
		Message:    message,
	})
}

// NewBadRequestError 400 Bad Request 에러를 생성합니다
func NewBadRequestError(message string) error {
	return newHTTPError(http.StatusBadRequest, message)
}

// NewNotFoundError 404 Not Found 에러를 생성합니다
func NewNotFoundError(message string) error {
	return newHTTPError(http.StatusNotFound, message)
}

// NewTooManyRequestsError 429 Too Many Requests 에러를 생성합니다
func NewTooManyRequestsError(message string) error {
	return newHTTPError(http.StatusTooManyRequests, message)
}

// NewInternalServerError 500 Internal Server Error 에러를 생성합니다
func NewInternalServerError(message string) error {
	return newHTTPError(http.StatusInternalServerError, message)
}

// NewServiceUnavailableError 503 Service Unavailable 에러를 생성합니다
func NewServiceUnavailableError(message string) error {
	return newHTTPError(http.StatusServiceUnavailable, message)
}

// FromError 도메인 에러(AppError)를 HTTP 에러로 변환합니다.
//
// 상태 코드는 체인의 가장 안쪽 AppError 유형으로 결정합니다. 4xx는 해당 AppError의 메시지를 그대로 노출하고,
// 5xx는 내부 정보를 숨긴 고정 메시지를 사용합니다. 원본 에러는 HTTPError.Internal에 보존되어 로그에 남습니다.
func FromError(err error) error {
	if err == nil {
		return nil
	}

	var he *echo.HTTPError
	if errors.As(err, &he) {
		return err
	}

	var httpErr *echo.HTTPError
	switch errType := apperrors.UnderlyingType(err); errType {
	case apperrors.InvalidInput, apperrors.ParsingFailed:
		httpErr = newHTTPError(http.StatusBadRequest, innermostMessage(err, errType))
	case apperrors.NotFound:
		httpErr = newHTTPError(http.StatusNotFound, innermostMessage(err, errType))
	case apperrors.Conflict:
		httpErr = newHTTPError(http.StatusConflict, innermostMessage(err, errType))
	case apperrors.Timeout, apperrors.Unavailable:
		httpErr = newHTTPError(http.StatusServiceUnavailable, constants.ErrMsgServiceUnavailable)
	default:
		httpErr = newHTTPError(http.StatusInternalServerError, constants.ErrMsgInternalServer)
	}

	return httpErr.SetInternal(err)
}

// innermostMessage 체인에서 errType을 가진 가장 안쪽 AppError의 메시지를 반환합니다.
func innermostMessage(err error, errType apperrors.ErrorType) string {
	message := constants.ErrMsgBadRequest
	for err != nil {
		if appErr, ok := err.(*apperrors.AppError); ok && appErr.Type() == errType {
			message = appErr.Message()
		}
		err = errors.Unwrap(err)
	}
	return message
}

// Success 표준 성공 응답(200 OK)을 JSON 형식으로 반환합니다.
func Success(c echo.Context) error {
	return c.JSON(http.StatusOK, response.SuccessResponse{
		ResultCode: 0,
		Message:    "성공",
	})
}
