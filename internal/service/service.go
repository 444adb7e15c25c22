// Package service 애플리케이션을 구성하는 장기 실행 서비스의 공통 계약을 정의합니다.
package service

import (
	"context"
	"sync"
)

// Service 종료 context와 WaitGroup으로 생명주기를 관리하는 서비스입니다.
//
// Start는 즉시 반환해야 하며, serviceStopCtx가 취소되어 정리가 끝나면 serviceStopWG.Done()을 정확히 한 번 호출합니다.
type Service interface {
	Start(serviceStopCtx context.Context, serviceStopWG *sync.WaitGroup) error
}
