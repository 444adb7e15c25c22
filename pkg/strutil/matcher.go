package strutil

import (
	"strings"
)

// KeywordMatcher 포함/제외 키워드 조건으로 문자열을 검사합니다.
//
// 포함 키워드는 그룹 간 AND, 그룹 내부는 파이프(|)로 구분된 OR 조건입니다.
// 예: ["blue|green", "lens"] -> (blue 또는 green)과 lens를 모두 포함해야 함
// 키워드는 생성 시점에 한 번만 정규화(Fold)됩니다.
type KeywordMatcher struct {
	includedGroups [][]string
	excluded       []string
}

// NewKeywordMatcher 포함/제외 키워드로 KeywordMatcher를 생성합니다.
func NewKeywordMatcher(included, excluded []string) *KeywordMatcher {
	m := &KeywordMatcher{
		includedGroups: make([][]string, 0, len(included)),
		excluded:       make([]string, 0, len(excluded)),
	}

	for _, k := range excluded {
		if k = strings.TrimSpace(k); k != "" {
			m.excluded = append(m.excluded, Fold(k))
		}
	}

	for _, k := range included {
		group := SplitAndTrim(k, "|")
		if len(group) == 0 {
			continue
		}
		for i, v := range group {
			group[i] = Fold(v)
		}
		m.includedGroups = append(m.includedGroups, group)
	}

	return m
}

// NewAnyMatcher 주어진 단어 중 하나라도 포함하면 매칭되는 KeywordMatcher를 생성합니다.
func NewAnyMatcher(terms []string) *KeywordMatcher {
	return NewKeywordMatcher([]string{strings.Join(terms, "|")}, nil)
}

// Empty 검사할 조건이 하나도 없는지 여부를 반환합니다.
func (m *KeywordMatcher) Empty() bool {
	return len(m.includedGroups) == 0 && len(m.excluded) == 0
}

// Match s가 제외 키워드를 포함하지 않고 모든 포함 그룹을 만족하면 true를 반환합니다.
// s는 Fold로 정규화된 문자열이어야 합니다.
func (m *KeywordMatcher) Match(s string) bool {
	for _, k := range m.excluded {
		if ContainsFold(s, k) {
			return false
		}
	}

	for _, group := range m.includedGroups {
		matched := false
		for _, k := range group {
			if ContainsFold(s, k) {
				matched = true
				break
			}
		}
		if !matched {
			return false
		}
	}

	return true
}

// ContainsFold s가 substr을 대소문자 구분 없이 포함하는지 검사합니다.
//
// strings.ToLower 복사본을 만들지 않고 룬 경계마다 strings.EqualFold로 비교합니다.
// 대소문자 변환 시 바이트 길이가 달라지는 문자(터키어 İ 등)에서는 정확하지 않을 수 있습니다.
func ContainsFold(s, substr string) bool {
	if substr == "" {
		return true
	}
	if len(s) < len(substr) {
		return false
	}

	for i := range s {
		if i+len(substr) > len(s) {
			break
		}
		if strings.EqualFold(s[i:i+len(substr)], substr) {
			return true
		}
	}
	return false
}
