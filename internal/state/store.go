// Package state 장바구니, 위시리스트, 검색 기록처럼 세션을 넘어 유지되어야 하는 사용자 상태를 저장합니다.
//
// 값은 키 단위로 JSON 직렬화되어 저장되며, 저장소 백엔드(파일, 메모리, Redis)는 Store 인터페이스 뒤에 숨겨집니다.
package state

import (
	"context"
	"reflect"

	apperrors "github.com/darkkaiser/lensyz-store/internal/pkg/errors"
	applog "github.com/darkkaiser/lensyz-store/pkg/log"
)

// 저장 키
const (
	KeyCart          = "cart"
	KeyWishlist      = "wishlist"
	KeySearchHistory = "searchHistory"
)

// Store 키 단위로 상태를 불러오고 저장하는 저장소입니다.
//
// Load는 키가 없으면 ErrNotFound를, 저장된 값을 해석할 수 없으면 ParsingFailed 에러를 반환합니다.
// v는 nil이 아닌 포인터여야 합니다.
type Store interface {
	Load(ctx context.Context, key string, v any) error
	Save(ctx context.Context, key string, v any) error
	Delete(ctx context.Context, key string) error
}

// LoadOrEmpty 키에 저장된 값을 v로 불러옵니다.
//
// 값이 없거나 손상된 경우 v를 비어 있는 값으로 되돌리고 nil을 반환합니다.
// 저장소 자체에 접근할 수 없는 경우에만 에러를 반환합니다.
func LoadOrEmpty(ctx context.Context, s Store, key string, v any) error {
	err := s.Load(ctx, key, v)
	if err == nil {
		return nil
	}

	switch {
	case apperrors.Is(err, apperrors.NotFound):
		resetValue(v)
		return nil

	case apperrors.Is(err, apperrors.ParsingFailed):
		applog.WithComponentAndFields(component, applog.Fields{
			"key":   key,
			"error": err,
		}).Warn("저장된 상태 복원 실패: 손상된 값을 무시하고 빈 상태로 시작합니다")

		resetValue(v)
		return nil

	default:
		return err
	}
}

// component 상태 저장소 로깅용 컴포넌트 이름
const component = "state"

func resetValue(v any) {
	rv := reflect.ValueOf(v)
	if rv.Kind() == reflect.Pointer && !rv.IsNil() {
		rv.Elem().SetZero()
	}
}

func checkTarget(v any) error {
	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Pointer || rv.IsNil() {
		return ErrLoadRequiresPointer
	}
	return nil
}

func checkKey(key string) error {
	if key == "" {
		return ErrEmptyKey
	}
	return nil
}
