package errors

import "strconv"

// ErrorType 에러의 성격을 분류하는 타입입니다.
//
// HTTP 계층은 UnderlyingType으로 얻은 값을 상태 코드로 변환하므로,
// 새 값을 추가할 때는 httputil의 매핑도 함께 확인해야 합니다.
type ErrorType int

const (
	// Unknown 분류할 수 없는 에러 (기본값)
	Unknown ErrorType = iota

	// Internal 내부 로직 오류 (버그 등)
	Internal

	// System 파일, 네트워크, Redis 등 인프라 오류
	System

	// InvalidInput 잘못된 입력값 (수량, 정렬 키, 가격 범위 등)
	InvalidInput

	// Conflict 상태 충돌 (카탈로그 상품 ID 중복 등)
	Conflict

	// NotFound 상품, 장바구니 항목, 저장 키를 찾을 수 없음
	NotFound

	// ParsingFailed 카탈로그 문서나 저장된 상태의 파싱 실패
	ParsingFailed

	// Timeout 작업 시간 초과
	Timeout

	// Unavailable 카탈로그를 불러오지 못해 일시적으로 사용 불가
	Unavailable
)

var errorTypeNames = [...]string{
	Unknown:       "Unknown",
	Internal:      "Internal",
	System:        "System",
	InvalidInput:  "InvalidInput",
	Conflict:      "Conflict",
	NotFound:      "NotFound",
	ParsingFailed: "ParsingFailed",
	Timeout:       "Timeout",
	Unavailable:   "Unavailable",
}

// String 에러 타입의 이름을 반환합니다.
func (t ErrorType) String() string {
	if t < 0 || int(t) >= len(errorTypeNames) {
		return "ErrorType(" + strconv.Itoa(int(t)) + ")"
	}
	return errorTypeNames[t]
}
