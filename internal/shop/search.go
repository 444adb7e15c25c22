package shop

import (
	"context"

	"github.com/darkkaiser/lensyz-store/internal/browse"
	"github.com/darkkaiser/lensyz-store/internal/catalog"
	"github.com/darkkaiser/lensyz-store/internal/history"
	"github.com/darkkaiser/lensyz-store/internal/search"
	"github.com/darkkaiser/lensyz-store/internal/state"
	applog "github.com/darkkaiser/lensyz-store/pkg/log"
)

// SearchResult 검색 화면에 필요한 값입니다.
type SearchResult struct {
	Query       string            `json:"q"`
	Sort        browse.SortKey    `json:"sort"`
	Products    []catalog.Product `json:"products"`
	Suggestions []catalog.Product `json:"suggestions"`

	// Recorded 이번 검색이 검색 기록에 저장되었는지 여부
	Recorded bool `json:"recorded"`
}

// LiveState 실시간 검색 입력 상태입니다.
type LiveState struct {
	Pending     string            `json:"pending"`
	HasPending  bool              `json:"has_pending"`
	Committed   string            `json:"committed"`
	Suggestions []catalog.Product `json:"suggestions"`
}

// Search query로 카탈로그를 검색합니다.
//
// 빈 검색어는 전체 카탈로그를 반환합니다. 결과가 하나 이상인 검색어만 검색 기록에 저장됩니다.
func (s *Shop) Search(ctx context.Context, query string, sort browse.SortKey) (SearchResult, error) {
	q := search.NormalizeQuery(query)
	c := s.Catalog()

	result := SearchResult{
		Query:       q,
		Sort:        sort,
		Products:    browse.ApplyCatalog(c, browse.Criteria{Query: q, Sort: sort}),
		Suggestions: browse.Suggest(c.Products(), q, s.config.SuggestionLimit),
	}
	if result.Sort == "" {
		result.Sort = browse.SortDefault
	}

	if q != "" && len(result.Products) > 0 {
		if _, err := s.RecordSearch(ctx, q); err != nil {
			return SearchResult{}, err
		}
		result.Recorded = true
	}

	return result, nil
}

// SearchLive 입력 중인 검색어를 갱신합니다.
//
// 검색어는 입력이 멈춘 뒤 확정되며, 확정된 검색어는 Search와 같은 규칙으로 검색 기록에 저장됩니다.
// 입력 중에도 추천 상품은 바로 반환됩니다.
func (s *Shop) SearchLive(query string) LiveState {
	s.debouncer.Input(query)
	return s.LiveState(query)
}

// FlushLive 입력 중인 검색어를 즉시 확정합니다.
func (s *Shop) FlushLive() LiveState {
	q, _ := s.debouncer.Flush()
	return s.LiveState(q)
}

// LiveState 현재 실시간 검색 상태를 반환합니다. query는 추천 상품 계산에 사용됩니다.
func (s *Shop) LiveState(query string) LiveState {
	pending, ok := s.debouncer.Pending()
	return LiveState{
		Pending:     pending,
		HasPending:  ok,
		Committed:   s.debouncer.Committed(),
		Suggestions: browse.Suggest(s.Catalog().Products(), query, s.config.SuggestionLimit),
	}
}

func (s *Shop) commitLiveQuery(query string) {
	if query == "" {
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), commitTimeout)
	defer cancel()

	if _, err := s.Search(ctx, query, browse.SortDefault); err != nil {
		applog.WithComponentAndFields(component, applog.Fields{
			"query": query,
			"error": err,
		}).Warn("실시간 검색어 기록 실패")
	}
}

// SearchHistory 검색 기록을 최신순으로 반환합니다.
func (s *Shop) SearchHistory(ctx context.Context) ([]history.Entry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.loadHistory(ctx)
}

// RecordSearch query를 검색 기록 맨 앞에 추가합니다. 빈 검색어는 무시됩니다.
func (s *Shop) RecordSearch(ctx context.Context, query string) ([]history.Entry, error) {
	return s.mutateHistory(ctx, func(entries []history.Entry) []history.Entry {
		return history.Add(entries, query, s.now(), s.config.HistoryLimit)
	})
}

// RemoveSearch timestamp가 일치하는 검색 기록을 삭제합니다.
func (s *Shop) RemoveSearch(ctx context.Context, timestamp int64) ([]history.Entry, error) {
	return s.mutateHistory(ctx, func(entries []history.Entry) []history.Entry {
		return history.Remove(entries, timestamp)
	})
}

// ClearSearchHistory 검색 기록을 모두 삭제합니다.
func (s *Shop) ClearSearchHistory(ctx context.Context) error {
	_, err := s.mutateHistory(ctx, func([]history.Entry) []history.Entry {
		return history.Clear()
	})
	return err
}

func (s *Shop) mutateHistory(ctx context.Context, fn func([]history.Entry) []history.Entry) ([]history.Entry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	entries, err := s.loadHistory(ctx)
	if err != nil {
		return nil, err
	}

	entries = fn(entries)
	if err := s.save(ctx, state.KeySearchHistory, entries); err != nil {
		return nil, err
	}
	return entries, nil
}
