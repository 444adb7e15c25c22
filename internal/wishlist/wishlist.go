// Package wishlist 위시리스트(상품 ID 집합)를 다루는 순수 함수들을 제공합니다.
package wishlist

import (
	"slices"
	"strings"
)

// Toggle id가 위시리스트에 있으면 제거하고(removed=true), 없으면 맨 뒤에 추가합니다(removed=false).
// 추가 전에 포함 여부를 검사하므로 중복 ID는 생기지 않습니다.
func Toggle(ids []string, id string) (out []string, removed bool) {
	id = strings.TrimSpace(id)
	if Contains(ids, id) {
		return Remove(ids, id), true
	}
	return append(slices.Clone(ids), id), false
}

// Contains id가 위시리스트에 있는지 검사합니다.
func Contains(ids []string, id string) bool {
	return slices.Contains(ids, strings.TrimSpace(id))
}

// Remove id를 위시리스트에서 제거한 새 목록을 반환합니다.
func Remove(ids []string, id string) []string {
	id = strings.TrimSpace(id)

	out := make([]string, 0, len(ids))
	for _, v := range ids {
		if v != id {
			out = append(out, v)
		}
	}
	return out
}

// Normalize 저장소에서 읽은 목록의 공백을 정리하고, 빈 ID와 중복 ID를 제거합니다. 순서는 유지됩니다.
func Normalize(ids []string) []string {
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		id = strings.TrimSpace(id)
		if id == "" || slices.Contains(out, id) {
			continue
		}
		out = append(out, id)
	}
	return out
}
