package system

// DependencyStatus 내부 의존성 헬스체크 결과
type DependencyStatus struct {
	// 헬스체크 상태: healthy, unhealthy
	Status string `json:"status" example:"healthy"`
	// 응답 지연시간(ms)
	LatencyMs int64 `json:"latency_ms,omitempty" example:"2"`
	// 상태 상세 정보 또는 에러 메시지
	Message string `json:"message,omitempty" example:"정상 작동 중"`
}

// HealthResponse 서버 헬스체크 응답
type HealthResponse struct {
	// 전체 헬스체크 상태: healthy, unhealthy
	Status string `json:"status" example:"healthy"`
	// 서버 가동 시간(초)
	Uptime int64 `json:"uptime" example:"3600"`
	// 의존성별 헬스체크 결과 (키: catalog, state_store)
	Dependencies map[string]DependencyStatus `json:"dependencies,omitempty"`
}

// VersionResponse 서버 버전 정보 응답
type VersionResponse struct {
	Version   string `json:"version" example:"v1.0.0"`
	Commit    string `json:"commit" example:"abc1234"`
	BuildDate string `json:"build_date" example:"2026-10-01T09:00:00Z"`
	Dirty     bool   `json:"dirty" example:"false"`
	GoVersion string `json:"go_version" example:"go1.24.0"`
	Platform  string `json:"platform" example:"linux/amd64"`
}
