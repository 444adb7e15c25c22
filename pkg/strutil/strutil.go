// Package strutil 문자열 처리를 위한 유틸리티 함수들을 제공합니다.
package strutil

import (
	"strings"
	"unicode"

	"github.com/PuerkitoBio/goquery"
	"github.com/iancoleman/strcase"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// NormalizeSpaces 앞뒤 공백을 제거하고 연속된 공백을 하나로 축약합니다.
// 예: "  blue   lens  " -> "blue lens"
func NormalizeSpaces(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

// SplitAndTrim 구분자로 분리한 뒤 각 항목의 공백을 제거하고 빈 항목을 제외합니다.
// 결과가 없으면 nil을 반환합니다.
// 예: "blue, ,green" -> ["blue", "green"]
func SplitAndTrim(s, sep string) []string {
	tokens := strings.Split(s, sep)

	result := make([]string, 0, len(tokens))
	for _, token := range tokens {
		token = strings.TrimSpace(token)
		if token != "" {
			result = append(result, token)
		}
	}

	if len(result) == 0 {
		return nil
	}
	return result
}

// Slugify 필터 비교용 식별자(kebab-case)를 생성합니다.
//
// 영숫자가 아닌 문자의 연속은 하나의 하이픈으로 바뀌므로
// "Lensyz  Premium", "lensyz_premium", "LensyzPremium"은 모두 "lensyz-premium"이 됩니다.
func Slugify(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range removeDiacritics(s) {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			b.WriteRune(r)
		} else {
			b.WriteByte(' ')
		}
	}

	kebab := strcase.ToKebab(NormalizeSpaces(b.String()))
	for strings.Contains(kebab, "--") {
		kebab = strings.ReplaceAll(kebab, "--", "-")
	}
	return strings.Trim(kebab, "-")
}

var diacriticsRemover = runes.Remove(runes.In(unicode.Mn))

// Fold 검색 비교용으로 문자열을 정규화합니다.
// 발음 구별 기호를 제거하고 소문자로 변환합니다. 예: "Crème Brûlée" -> "creme brulee"
func Fold(s string) string {
	return strings.ToLower(removeDiacritics(s))
}

func removeDiacritics(s string) string {
	t := transform.Chain(norm.NFD, diacriticsRemover, norm.NFC)
	result, _, err := transform.String(t, s)
	if err != nil {
		return s
	}
	return result
}

// StripHTML HTML 마크업을 제거한 순수 텍스트를 반환합니다.
// 태그가 없는 문자열은 공백만 정규화해서 반환합니다.
func StripHTML(s string) string {
	if !strings.ContainsAny(s, "<&") {
		return NormalizeSpaces(s)
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(s))
	if err != nil {
		return NormalizeSpaces(s)
	}
	return NormalizeSpaces(doc.Text())
}

// MaskSensitiveData 비밀번호 등 민감한 값을 로그에 남길 수 있도록 가립니다.
// 4자 이하는 전부, 그 외에는 앞 2자만 남기고 가립니다.
func MaskSensitiveData(data string) string {
	if data == "" {
		return ""
	}
	if len(data) <= 4 {
		return "****"
	}
	return data[:2] + strings.Repeat("*", 4)
}
