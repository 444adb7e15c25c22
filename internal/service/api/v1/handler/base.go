// Package handler v1 API의 HTTP 요청 핸들러를 제공합니다.
//
// 핸들러는 요청을 바인딩하고 검증한 뒤 shop.Shop의 동작을 호출하고, 결과를 JSON으로 응답합니다.
// 도메인 에러는 그대로 반환하며 상태 코드 변환은 전역 에러 핸들러가 담당합니다.
package handler

import (
	"github.com/darkkaiser/lensyz-store/internal/pkg/validator"
	"github.com/darkkaiser/lensyz-store/internal/service/api/constants"
	"github.com/darkkaiser/lensyz-store/internal/shop"
	applog "github.com/darkkaiser/lensyz-store/pkg/log"
	"github.com/labstack/echo/v4"
)

// Handler v1 API 요청을 처리하는 핸들러입니다.
type Handler struct {
	shop *shop.Shop
}

// New Handler 인스턴스를 생성합니다.
func New(s *shop.Shop) *Handler {
	if s == nil {
		panic(constants.PanicMsgShopRequired)
	}

	return &Handler{
		shop: s,
	}
}

// RequireCatalog 카탈로그를 사용할 수 없으면 503 Service Unavailable을 응답하는 미들웨어를 반환합니다.
//
// 카탈로그 없이도 의미가 있는 요청(장바구니 조회, 검색 기록 등)에는 적용하지 않습니다.
func (h *Handler) RequireCatalog() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if err := h.shop.CatalogStatus(); err != nil {
				applog.WithComponentAndFields(constants.ComponentHandler, applog.Fields{
					"path":       c.Request().URL.Path,
					"method":     c.Request().Method,
					"request_id": c.Response().Header().Get(echo.HeaderXRequestID),
					"error":      err,
				}).Warn(constants.LogMsgCatalogError)

				return NewErrCatalogUnavailable()
			}
			return next(c)
		}
	}
}

// bindAndValidate 요청 본문을 req에 바인딩하고 validate 태그로 검증합니다.
func bindAndValidate(c echo.Context, req any) error {
	if err := c.Bind(req); err != nil {
		return NewErrInvalidBody()
	}
	if err := validator.Struct(req); err != nil {
		return NewErrValidationFailed(validator.FormatValidationError(err))
	}
	return nil
}
