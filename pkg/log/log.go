// Package log logrus 기반의 애플리케이션 로깅을 제공합니다.
//
// 모든 로그는 component 필드로 발생 위치를 구분합니다.
//
//	applog.WithComponentAndFields("state.file", applog.Fields{"key": key}).Warn("저장된 상태를 읽을 수 없습니다")
package log

import (
	"github.com/sirupsen/logrus"
)

// ComponentKey 로그 엔트리에서 컴포넌트 이름을 담는 필드 키
const ComponentKey = "component"

// StandardLogger 전역 logrus 로거를 반환합니다.
func StandardLogger() *Logger {
	return logrus.StandardLogger()
}

// WithComponent 컴포넌트 필드가 설정된 엔트리를 반환합니다.
func WithComponent(component string) *Entry {
	return logrus.WithField(ComponentKey, component)
}

// WithComponentAndFields 컴포넌트 필드와 추가 필드가 설정된 엔트리를 반환합니다.
func WithComponentAndFields(component string, fields Fields) *Entry {
	merged := make(Fields, len(fields)+1)
	for k, v := range fields {
		merged[k] = v
	}
	merged[ComponentKey] = component
	return logrus.WithFields(merged)
}

// WithFields 추가 필드가 설정된 엔트리를 반환합니다.
func WithFields(fields Fields) *Entry {
	return logrus.WithFields(fields)
}

// SetDebugMode 디버그 모드이면 Trace, 아니면 Info 레벨로 전환합니다.
func SetDebugMode(debug bool) {
	if debug {
		logrus.SetLevel(TraceLevel)
	} else {
		logrus.SetLevel(InfoLevel)
	}
}

// IsDebugEnabled 현재 레벨에서 Debug 로그가 출력되는지 여부를 반환합니다.
func IsDebugEnabled() bool {
	return logrus.IsLevelEnabled(DebugLevel)
}
