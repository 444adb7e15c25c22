package state

import (
	"fmt"
	"hash/fnv"
	"strings"
	"unicode/utf8"

	"github.com/iancoleman/strcase"
)

// filenameReplacer 경로 구분자, 상위 디렉토리 표기, Windows 예약 문자를 하이픈으로 치환합니다.
var filenameReplacer = strings.NewReplacer(
	"..", "--",
	"/", "-",
	"\\", "-",
	"|", "-",
	"<", "-",
	">", "-",
	":", "-",
	"\"", "-",
	"?", "-",
	"*", "-",
)

// maxNameBytes 파일명에 들어가는 키 부분의 최대 바이트 수
const maxNameBytes = 80

// generateFilename 저장 키로부터 파일명을 생성합니다.
//
// 사람이 읽을 수 있는 kebab-case 이름 뒤에 원본 키의 64비트 해시를 붙입니다.
// 정제 후 같은 이름이 되는 서로 다른 키나 대소문자만 다른 키도 서로 다른 파일에 저장됩니다.
//
// 예: "searchHistory" -> "state-search-history-{16자리해시}.json"
func generateFilename(key string) string {
	name := truncateByBytes(sanitizeName(key), maxNameBytes)

	hasher := fnv.New64a()
	_, _ = hasher.Write([]byte(key))

	return fmt.Sprintf("state-%s-%016x.json", name, hasher.Sum64())
}

// sanitizeName 파일명으로 안전하게 사용할 수 있도록 문자열을 정제합니다.
func sanitizeName(s string) string {
	kebab := strcase.ToKebab(s)

	// 제어 문자(0x00-0x1F)와 DEL(0x7F)
	kebab = strings.Map(func(r rune) rune {
		if r < 0x20 || r == 0x7F {
			return '-'
		}
		return r
	}, kebab)

	return filenameReplacer.Replace(kebab)
}

// truncateByBytes 문자열을 UTF-8 문자 경계를 지키면서 limit 바이트 이하로 자릅니다.
func truncateByBytes(s string, limit int) string {
	if len(s) <= limit {
		return s
	}

	n := 0
	for n < len(s) {
		_, size := utf8.DecodeRuneInString(s[n:])
		if n+size > limit {
			break
		}
		n += size
	}
	return s[:n]
}
