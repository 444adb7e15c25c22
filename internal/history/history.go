// Package history 최근 검색어 기록을 다루는 순수 함수들을 제공합니다.
//
// 기록은 최신 항목이 앞에 오도록 정렬되며, 같은 검색어는 하나만 남고, 최대 DefaultLimit개까지 유지됩니다.
package history

import (
	"slices"
	"strings"
	"time"
)

// DefaultLimit 유지하는 검색 기록의 최대 개수
const DefaultLimit = 10

// Entry 검색 기록 하나입니다. Timestamp는 Unix 밀리초이며 기록을 개별 삭제할 때 식별자로 쓰입니다.
type Entry struct {
	Query     string `json:"query"`
	Timestamp int64  `json:"timestamp"`
}

// Time Timestamp를 time.Time으로 변환합니다.
func (e Entry) Time() time.Time {
	return time.UnixMilli(e.Timestamp)
}

// NormalizeQuery 검색어의 앞뒤 공백을 제거하고 소문자로 변환합니다.
func NormalizeQuery(q string) string {
	return strings.ToLower(strings.TrimSpace(q))
}

// Add query를 기록의 맨 앞에 추가한 새 목록을 반환합니다.
//
// 정규화한 검색어가 비어 있으면 기록을 바꾸지 않습니다.
// 같은 검색어의 이전 기록은 제거되고, limit개를 넘는 오래된 기록은 버려집니다.
// limit이 1보다 작으면 DefaultLimit을 사용합니다.
func Add(entries []Entry, query string, now time.Time, limit int) []Entry {
	query = NormalizeQuery(query)
	if query == "" {
		return slices.Clone(entries)
	}
	if limit < 1 {
		limit = DefaultLimit
	}

	// 타임스탬프가 삭제 식별자이므로 같은 밀리초에 추가되어도 겹치지 않게 합니다.
	ts := now.UnixMilli()
	for _, e := range entries {
		if e.Timestamp >= ts {
			ts = e.Timestamp + 1
		}
	}

	out := make([]Entry, 0, min(len(entries)+1, limit))
	out = append(out, Entry{Query: query, Timestamp: ts})
	for _, e := range entries {
		if len(out) == limit {
			break
		}
		if e.Query != query {
			out = append(out, e)
		}
	}
	return out
}

// Remove timestamp가 일치하는 기록을 제거한 새 목록을 반환합니다.
func Remove(entries []Entry, timestamp int64) []Entry {
	out := make([]Entry, 0, len(entries))
	for _, e := range entries {
		if e.Timestamp != timestamp {
			out = append(out, e)
		}
	}
	return out
}

// Clear 비어 있는 기록을 반환합니다.
func Clear() []Entry {
	return []Entry{}
}

// Normalize 저장소에서 읽은 기록을 정리합니다.
//
// 검색어를 정규화하고 빈 검색어를 제거하며, 최신순으로 정렬한 뒤 같은 검색어는 가장 최근 것만 남기고 limit개로 자릅니다.
func Normalize(entries []Entry, limit int) []Entry {
	if limit < 1 {
		limit = DefaultLimit
	}

	sorted := slices.Clone(entries)
	slices.SortStableFunc(sorted, func(a, b Entry) int {
		switch {
		case a.Timestamp > b.Timestamp:
			return -1
		case a.Timestamp < b.Timestamp:
			return 1
		default:
			return 0
		}
	})

	out := make([]Entry, 0, min(len(sorted), limit))
	for _, e := range sorted {
		if len(out) == limit {
			break
		}
		e.Query = NormalizeQuery(e.Query)
		if e.Query == "" || slices.ContainsFunc(out, func(o Entry) bool { return o.Query == e.Query }) {
			continue
		}
		out = append(out, e)
	}
	return out
}

// Queries 기록의 검색어 목록을 최신순으로 반환합니다.
func Queries(entries []Entry) []string {
	out := make([]string, 0, len(entries))
	for _, e := range entries {
		out = append(out, e.Query)
	}
	return out
}
