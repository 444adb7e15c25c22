// Package constants API 서비스 전반에서 공유하는 컴포넌트 이름, 메시지, 기본값을 정의합니다.
package constants

import "time"

// 로그 발생 위치(컴포넌트) 식별을 위한 상수입니다.
const (
	ComponentService      = "api.service"
	ComponentHandler      = "api.handler"
	ComponentMiddleware   = "api.middleware"
	ComponentErrorHandler = "api.error_handler"
)

// HTTP 서버 기본값입니다.
const (
	DefaultReadTimeout       = 15 * time.Second
	DefaultReadHeaderTimeout = 5 * time.Second
	DefaultWriteTimeout      = 30 * time.Second
	DefaultIdleTimeout       = 60 * time.Second

	// DefaultRequestTimeout 요청 하나의 최대 처리 시간
	DefaultRequestTimeout = 10 * time.Second

	// DefaultShutdownTimeout Graceful Shutdown 시 최대 대기 시간
	DefaultShutdownTimeout = 5 * time.Second

	// DefaultBodyLimit 요청 본문 최대 크기 (echo BodyLimit 형식)
	DefaultBodyLimit = "64K"

	// DefaultRateLimitPerSecond 클라이언트 IP별 초당 허용 요청 수
	DefaultRateLimitPerSecond = 20.0

	// DefaultRateLimitBurst 클라이언트 IP별 버스트 허용량
	DefaultRateLimitBurst = 40
)

// 헬스체크 상태입니다.
const (
	HealthStatusHealthy   = "healthy"
	HealthStatusUnhealthy = "unhealthy"

	DependencyCatalog    = "catalog"
	DependencyStateStore = "state_store"

	MsgDepStatusHealthy = "정상 작동 중"
)

// 클라이언트에게 반환되는 에러 메시지입니다.
const (
	ErrMsgBadRequest            = "잘못된 요청입니다"
	ErrMsgBadRequestInvalidBody = "요청 본문을 파싱할 수 없습니다. JSON 형식을 확인해주세요"
	ErrMsgBadRequestCartIndex   = "장바구니 항목 번호는 0 이상의 정수여야 합니다"
	ErrMsgBadRequestTimestamp   = "검색 기록 timestamp는 정수여야 합니다"

	ErrMsgNotFound = "요청한 리소스를 찾을 수 없습니다"

	ErrMsgRequestEntityTooLarge = "요청 본문이 너무 큽니다"
	ErrMsgUnsupportedMediaType  = "지원하지 않는 Content-Type입니다. application/json으로 요청해주세요"
	ErrMsgTooManyRequests       = "요청이 너무 많습니다. 잠시 후 다시 시도해주세요"

	ErrMsgInternalServer = "내부 서버 오류가 발생했습니다"

	ErrMsgCatalogUnavailable = "상품 정보를 불러올 수 없습니다. 잠시 후 다시 시도해주세요"
	ErrMsgServiceUnavailable = "서비스를 일시적으로 사용할 수 없습니다. 잠시 후 다시 시도해주세요"
)

// 내부 로깅 메시지입니다.
const (
	LogMsgServiceStarting       = "API 서비스 시작중..."
	LogMsgServiceStarted        = "API 서비스 시작됨"
	LogMsgServiceAlreadyStarted = "API 서비스가 이미 시작됨!!!"
	LogMsgServiceStopping       = "API 서비스 중지중..."
	LogMsgServiceStopped        = "API 서비스 중지됨"
	LogMsgServiceUnexpectedExit = "API 서비스가 예기치 않게 종료되었습니다"

	LogMsgServiceHTTPServerStarting      = "API 서비스 > http 서버 시작"
	LogMsgServiceHTTPServerStopped       = "API 서비스 > http 서버 중지됨"
	LogMsgServiceHTTPServerShutdownError = "API 서비스 > http 서버 종료 중 오류 발생"
	LogMsgServiceHTTPServerFatalError    = "API 서비스 > http 서버를 구성하는 중에 치명적인 오류가 발생하였습니다"

	LogMsgUnsupportedContentType = "지원하지 않는 Content-Type 요청"

	LogMsgHealthCheck  = "헬스체크 요청"
	LogMsgVersionInfo  = "버전 정보 요청"
	LogMsgCatalogError = "카탈로그를 사용할 수 없어 요청을 거부합니다"

	LogMsgHTTP4xxClientError = "HTTP 4xx: 클라이언트 요청 오류"
	LogMsgHTTP5xxServerError = "HTTP 5xx: 서버 내부 오류"
)

// 패닉 메시지입니다.
const (
	PanicMsgAppConfigRequired = "AppConfig는 필수입니다"
	PanicMsgShopRequired      = "Shop은 필수입니다"
	PanicMsgCatalogRequired   = "CatalogStatus는 필수입니다"
)
