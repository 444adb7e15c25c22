package handler

import (
	"net/http"
	"strconv"

	"github.com/darkkaiser/lensyz-store/internal/browse"
	"github.com/darkkaiser/lensyz-store/internal/search"
	"github.com/darkkaiser/lensyz-store/internal/service/api/httputil"
	"github.com/darkkaiser/lensyz-store/internal/service/api/v1/model/request"
	"github.com/darkkaiser/lensyz-store/internal/service/api/v1/model/response"
	"github.com/labstack/echo/v4"
)

// SearchHandler godoc
// @Summary 상품 검색
// @Description 검색어로 상품을 찾고 추천 상품을 함께 반환합니다. 검색어가 비어 있으면 전체 상품입니다.
// @Description 결과가 하나 이상인 검색어는 최근 검색어에 기록됩니다.
// @Description 응답의 q와 url은 요청 URL의 q 파라미터와 왕복 변환됩니다.
// @Tags Search
// @Produce json
// @Param q query string false "검색어"
// @Param sort query string false "정렬"
// @Success 200 {object} response.SearchResponse
// @Failure 400 {object} response.ErrorResponse "잘못된 정렬 기준"
// @Router /api/v1/search [get]
func (h *Handler) SearchHandler(c echo.Context) error {
	sort, err := browse.ParseSortKey(c.QueryParam(browse.ParamSort))
	if err != nil {
		return err
	}

	q := search.QueryFromValues(c.QueryParams())

	result, err := h.shop.Search(c.Request().Context(), q, sort)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, response.SearchResponse{
		SearchResult: result,
		URL:          search.URLWithQuery(c.Request().URL, result.Query).RequestURI(),
	})
}

// LiveSearchHandler godoc
// @Summary 실시간 검색어 입력
// @Description 입력 중인 검색어를 전달합니다. 입력이 멈춘 뒤 일정 시간(기본 350ms)이 지나면 검색어가 확정됩니다.
// @Description 추천 상품은 입력 즉시 반환됩니다.
// @Tags Search
// @Accept json
// @Produce json
// @Param body body request.SearchRequest true "입력 중인 검색어"
// @Success 200 {object} shop.LiveState
// @Router /api/v1/search/live [post]
func (h *Handler) LiveSearchHandler(c echo.Context) error {
	req := new(request.SearchRequest)
	if err := bindAndValidate(c, req); err != nil {
		return err
	}

	return c.JSON(http.StatusOK, h.shop.SearchLive(req.Query))
}

// LiveStateHandler godoc
// @Summary 실시간 검색 상태 조회
// @Tags Search
// @Produce json
// @Param q query string false "추천 상품 계산에 사용할 검색어"
// @Success 200 {object} shop.LiveState
// @Router /api/v1/search/live [get]
func (h *Handler) LiveStateHandler(c echo.Context) error {
	return c.JSON(http.StatusOK, h.shop.LiveState(search.QueryFromValues(c.QueryParams())))
}

// FlushLiveSearchHandler godoc
// @Summary 실시간 검색어 즉시 확정
// @Description 대기 중인 검색어를 기다리지 않고 바로 확정합니다. (Enter 입력)
// @Tags Search
// @Produce json
// @Success 200 {object} shop.LiveState
// @Router /api/v1/search/live/flush [post]
func (h *Handler) FlushLiveSearchHandler(c echo.Context) error {
	return c.JSON(http.StatusOK, h.shop.FlushLive())
}

// SearchHistoryHandler godoc
// @Summary 최근 검색어 조회
// @Tags Search
// @Produce json
// @Success 200 {object} response.HistoryResponse
// @Router /api/v1/search/history [get]
func (h *Handler) SearchHistoryHandler(c echo.Context) error {
	entries, err := h.shop.SearchHistory(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, response.NewHistoryResponse(entries))
}

// RecordSearchHandler godoc
// @Summary 최근 검색어 추가
// @Description 검색어는 공백 제거 후 소문자로 저장되며, 같은 검색어는 맨 앞으로 이동합니다.
// @Tags Search
// @Accept json
// @Produce json
// @Param body body request.SearchRequest true "검색어"
// @Success 200 {object} response.HistoryResponse
// @Router /api/v1/search/history [post]
func (h *Handler) RecordSearchHandler(c echo.Context) error {
	req := new(request.SearchRequest)
	if err := bindAndValidate(c, req); err != nil {
		return err
	}

	entries, err := h.shop.RecordSearch(c.Request().Context(), req.Query)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, response.NewHistoryResponse(entries))
}

// RemoveSearchHandler godoc
// @Summary 최근 검색어 하나 삭제
// @Tags Search
// @Produce json
// @Param timestamp path int true "검색 기록 timestamp (Unix 밀리초)"
// @Success 200 {object} response.HistoryResponse
// @Failure 400 {object} response.ErrorResponse "잘못된 timestamp"
// @Router /api/v1/search/history/{timestamp} [delete]
func (h *Handler) RemoveSearchHandler(c echo.Context) error {
	ts, err := strconv.ParseInt(c.Param("timestamp"), 10, 64)
	if err != nil {
		return NewErrInvalidTimestamp()
	}

	entries, err := h.shop.RemoveSearch(c.Request().Context(), ts)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, response.NewHistoryResponse(entries))
}

// ClearSearchHistoryHandler godoc
// @Summary 최근 검색어 전체 삭제
// @Tags Search
// @Produce json
// @Success 200 {object} response.SuccessResponse
// @Router /api/v1/search/history [delete]
func (h *Handler) ClearSearchHistoryHandler(c echo.Context) error {
	if err := h.shop.ClearSearchHistory(c.Request().Context()); err != nil {
		return err
	}
	return httputil.Success(c)
}
