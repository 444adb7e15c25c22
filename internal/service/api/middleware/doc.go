// Package middleware API 서버에서 사용하는 Echo 미들웨어를 제공합니다.
//
// 적용 순서는 api.NewHTTPServer에서 결정합니다.
//   - PanicRecovery: 핸들러 panic 복구
//   - RequestID: UUID 기반 요청 ID
//   - HTTPLogger: 구조화된 요청/응답 로그
//   - RateLimiting: 클라이언트 IP별 요청 속도 제한
//
// ValidateContentType은 JSON 본문을 받는 라우트에만 개별적으로 적용하며,
// Logger는 Echo 내부 로그를 애플리케이션 로거로 보내는 어댑터입니다.
package middleware
