package state

import (
	"fmt"

	apperrors "github.com/darkkaiser/lensyz-store/internal/pkg/errors"
)

var (
	// ErrNotFound 요청한 키에 저장된 값이 없을 때 반환하는 에러입니다.
	ErrNotFound = apperrors.New(apperrors.NotFound, "저장된 상태가 없습니다")

	// ErrEmptyKey 저장 키가 비어 있을 때 반환하는 에러입니다.
	ErrEmptyKey = apperrors.New(apperrors.InvalidInput, "저장 키가 비어 있습니다")

	// ErrPathTraversalDetected 파일 경로 생성 시 경로 이탈 시도가 감지되었을 때 반환하는 에러입니다.
	ErrPathTraversalDetected = apperrors.New(apperrors.Internal, "보안 정책 위반: 허용되지 않은 경로 접근 시도로 인해 요청이 차단되었습니다")

	// ErrLoadRequiresPointer Load 대상 객체가 올바른 포인터 타입이 아닐 때 반환하는 에러입니다.
	ErrLoadRequiresPointer = apperrors.New(apperrors.Internal, "내부 시스템 오류: 데이터 로드 대상 객체가 올바른 포인터 타입이 아닙니다")
)

func newErrPathResolutionFailed(err error) error {
	return apperrors.Wrap(err, apperrors.Internal, "보안 검증 실패: 파일 경로를 해석할 수 없습니다")
}

func newErrDirectoryAccessFailed(err error, dir string) error {
	return apperrors.Wrap(err, apperrors.System, fmt.Sprintf("저장소 초기화 실패: 디렉토리 접근 불가 (%s)", dir))
}

func newErrMarshalFailed(err error, key string) error {
	return apperrors.Wrapf(err, apperrors.Internal, "상태 저장 실패: 값을 JSON으로 직렬화할 수 없습니다 (key=%s)", key)
}

func newErrUnmarshalFailed(err error, key string) error {
	return apperrors.Wrapf(err, apperrors.ParsingFailed, "상태 복원 실패: 저장된 값이 올바른 JSON이 아닙니다 (key=%s)", key)
}

func newErrReadFailed(err error, key string) error {
	return apperrors.Wrapf(err, apperrors.System, "상태 조회 실패: 저장된 값을 읽는 중 오류가 발생했습니다 (key=%s)", key)
}

func newErrWriteFailed(err error, key string) error {
	return apperrors.Wrapf(err, apperrors.System, "상태 저장 실패: 값을 기록하는 중 오류가 발생했습니다 (key=%s)", key)
}

func newErrDeleteFailed(err error, key string) error {
	return apperrors.Wrapf(err, apperrors.System, "상태 삭제 실패: 저장된 값을 제거하는 중 오류가 발생했습니다 (key=%s)", key)
}

func newErrTimeout(err error, key string) error {
	return apperrors.Wrapf(err, apperrors.Timeout, "상태 저장소 응답 시간 초과 (key=%s)", key)
}
