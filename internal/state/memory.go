package state

import (
	"context"
	"encoding/json"
	"sync"
)

// MemoryStore 프로세스 메모리에만 상태를 보관하는 저장소입니다.
// 값은 FileStore와 같은 규칙으로 JSON 직렬화되어 보관되므로 저장 후 원본을 수정해도 저장된 값은 바뀌지 않습니다.
type MemoryStore struct {
	mu   sync.RWMutex
	data map[string][]byte
}

var _ Store = (*MemoryStore)(nil)

// NewMemoryStore 비어 있는 MemoryStore를 생성합니다.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{data: make(map[string][]byte)}
}

func (s *MemoryStore) Load(ctx context.Context, key string, v any) error {
	if err := checkTarget(v); err != nil {
		return err
	}
	if err := checkKey(key); err != nil {
		return err
	}
	if err := ctx.Err(); err != nil {
		return newErrTimeout(err, key)
	}

	s.mu.RLock()
	data, ok := s.data[key]
	s.mu.RUnlock()

	if !ok {
		return ErrNotFound
	}
	if err := json.Unmarshal(data, v); err != nil {
		return newErrUnmarshalFailed(err, key)
	}
	return nil
}

func (s *MemoryStore) Save(ctx context.Context, key string, v any) error {
	if err := checkKey(key); err != nil {
		return err
	}
	if err := ctx.Err(); err != nil {
		return newErrTimeout(err, key)
	}

	data, err := json.Marshal(v)
	if err != nil {
		return newErrMarshalFailed(err, key)
	}

	s.mu.Lock()
	s.data[key] = data
	s.mu.Unlock()

	return nil
}

func (s *MemoryStore) Delete(ctx context.Context, key string) error {
	if err := checkKey(key); err != nil {
		return err
	}
	if err := ctx.Err(); err != nil {
		return newErrTimeout(err, key)
	}

	s.mu.Lock()
	delete(s.data, key)
	s.mu.Unlock()

	return nil
}

// SaveRaw 직렬화 없이 원시 바이트를 그대로 저장합니다. 손상된 상태를 재현할 때 사용합니다.
func (s *MemoryStore) SaveRaw(key string, data []byte) {
	s.mu.Lock()
	s.data[key] = append([]byte(nil), data...)
	s.mu.Unlock()
}
