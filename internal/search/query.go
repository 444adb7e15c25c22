package search

import (
	"net/url"

	"github.com/darkkaiser/lensyz-store/pkg/strutil"
)

// QueryParam 검색 화면 URL에서 검색어를 담는 쿼리 파라미터 이름
const QueryParam = "q"

// NormalizeQuery 검색어의 앞뒤 공백을 제거하고 연속된 공백을 하나로 줄입니다. 대소문자는 유지합니다.
func NormalizeQuery(q string) string {
	return strutil.NormalizeSpaces(q)
}

// QueryFromValues URL 쿼리 파라미터에서 검색어를 읽습니다.
func QueryFromValues(v url.Values) string {
	return NormalizeQuery(v.Get(QueryParam))
}

// URLWithQuery base URL의 q 파라미터를 query로 바꾼 URL을 반환합니다.
// 검색어가 비어 있으면 q 파라미터를 제거합니다. 다른 파라미터는 유지됩니다.
func URLWithQuery(base *url.URL, query string) *url.URL {
	u := *base
	values := u.Query()

	if q := NormalizeQuery(query); q != "" {
		values.Set(QueryParam, q)
	} else {
		values.Del(QueryParam)
	}

	u.RawQuery = values.Encode()
	return &u
}
