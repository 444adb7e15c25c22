package state

import (
	"context"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/darkkaiser/lensyz-store/pkg/concurrency"
	applog "github.com/darkkaiser/lensyz-store/pkg/log"
)

// componentFile 파일 저장소 로깅용 컴포넌트 이름
const componentFile = "state.file"

// DefaultDataDirectory 상태 파일을 저장할 기본 디렉토리
const DefaultDataDirectory = "data"

// tempFilePattern 저장 중 생성되는 임시 파일의 이름 패턴
const tempFilePattern = "state-*.tmp"

// staleTempFileAge 이보다 오래된 임시 파일은 이전 실행에서 남은 것으로 보고 삭제합니다.
const staleTempFileAge = time.Hour

// FileStore 키마다 하나의 JSON 파일을 두는 파일 시스템 기반 저장소입니다.
//
// [파일 구조]
//   - state-{key}-{hash}.json: 키에 저장된 값
//   - state-*.tmp: 저장 중 생성되는 임시 파일
type FileStore struct {
	baseDir string

	// locks 같은 파일에 대한 동시 읽기/쓰기를 막는 파일별 뮤텍스
	locks *concurrency.KeyedMutex[string]
}

var _ Store = (*FileStore)(nil)

// NewFileStore dir 디렉토리에 상태를 저장하는 FileStore를 생성합니다.
//
// dir이 비어 있으면 DefaultDataDirectory를 사용하며, 상대 경로는 절대 경로로 변환됩니다.
// 디렉토리가 없으면 생성하고, 이전 실행에서 남은 임시 파일은 백그라운드에서 정리합니다.
func NewFileStore(dir string) (*FileStore, error) {
	if dir == "" {
		dir = DefaultDataDirectory
	}

	absDir, err := filepath.Abs(dir)
	if err != nil {
		return nil, newErrPathResolutionFailed(err)
	}
	if err := os.MkdirAll(absDir, 0755); err != nil {
		return nil, newErrDirectoryAccessFailed(err, absDir)
	}

	s := &FileStore{
		baseDir: absDir,
		locks:   concurrency.NewKeyedMutex[string](),
	}

	go func() {
		defer func() {
			if r := recover(); r != nil {
				applog.WithComponentAndFields(componentFile, applog.Fields{
					"base_dir": s.baseDir,
					"panic":    r,
				}).Error("임시 파일 정리 중단: 백그라운드 작업 패닉 발생")
			}
		}()

		s.cleanupStaleTempFiles(time.Now().Add(-staleTempFileAge))
	}()

	return s, nil
}

// Dir 상태 파일이 저장되는 절대 경로를 반환합니다.
func (s *FileStore) Dir() string {
	return s.baseDir
}

// Load key에 저장된 값을 읽어 v에 역직렬화합니다.
//
// 읽기에도 파일별 Lock을 걸어 쓰기 중인 파일을 읽지 않도록 합니다.
// 역직렬화는 Lock을 해제한 뒤에 수행합니다.
func (s *FileStore) Load(ctx context.Context, key string, v any) error {
	if err := checkTarget(v); err != nil {
		return err
	}
	if err := ctx.Err(); err != nil {
		return newErrTimeout(err, key)
	}

	filename, err := s.resolveSafePath(key)
	if err != nil {
		return err
	}

	var data []byte
	err = s.locks.WithLock(strings.ToLower(filename), func() error {
		var readErr error
		data, readErr = os.ReadFile(filename)
		if readErr != nil {
			if errors.Is(readErr, os.ErrNotExist) {
				return ErrNotFound
			}
			return newErrReadFailed(readErr, key)
		}
		return nil
	})
	if err != nil {
		return err
	}

	if err := json.Unmarshal(data, v); err != nil {
		return newErrUnmarshalFailed(err, key)
	}
	return nil
}

// Save v를 JSON으로 직렬화하여 key에 원자적으로 저장합니다.
func (s *FileStore) Save(ctx context.Context, key string, v any) error {
	if err := ctx.Err(); err != nil {
		return newErrTimeout(err, key)
	}

	filename, err := s.resolveSafePath(key)
	if err != nil {
		return err
	}

	data, err := json.MarshalIndent(v, "", "\t")
	if err != nil {
		return newErrMarshalFailed(err, key)
	}

	return s.locks.WithLock(strings.ToLower(filename), func() error {
		if err := s.writeAtomic(filename, data); err != nil {
			return newErrWriteFailed(err, key)
		}
		return nil
	})
}

// Delete key에 저장된 값을 삭제합니다. 저장된 값이 없어도 에러가 아닙니다.
func (s *FileStore) Delete(ctx context.Context, key string) error {
	if err := ctx.Err(); err != nil {
		return newErrTimeout(err, key)
	}

	filename, err := s.resolveSafePath(key)
	if err != nil {
		return err
	}

	return s.locks.WithLock(strings.ToLower(filename), func() error {
		if err := os.Remove(filename); err != nil && !errors.Is(err, os.ErrNotExist) {
			return newErrDeleteFailed(err, key)
		}
		return nil
	})
}

// resolveSafePath key로부터 파일 경로를 만들고, 그 경로가 저장 디렉토리를 벗어나지 않는지 검증합니다.
func (s *FileStore) resolveSafePath(key string) (string, error) {
	if err := checkKey(key); err != nil {
		return "", err
	}

	filename := generateFilename(key)
	cleanPath := filepath.Clean(filepath.Join(s.baseDir, filename))

	// 단순 접두사 비교는 형제 디렉토리("data" vs "data2")를 구분하지 못하므로 상대 경로로 검사합니다.
	rel, err := filepath.Rel(s.baseDir, cleanPath)
	if err != nil {
		return "", newErrPathResolutionFailed(err)
	}
	if rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) || filepath.Dir(rel) != "." {
		applog.WithComponentAndFields(componentFile, applog.Fields{
			"key":      key,
			"filename": filename,
			"base_dir": s.baseDir,
			"rel_path": rel,
		}).Error("파일 경로 생성 차단: 경로 이탈 시도 감지")

		return "", ErrPathTraversalDetected
	}

	return cleanPath, nil
}

// writeAtomic 임시 파일에 쓰고 fsync 한 뒤 rename 하여 data를 원자적으로 저장합니다.
// 저장 도중 프로세스가 종료되어도 이전 값 또는 새 값 중 하나만 남습니다.
func (s *FileStore) writeAtomic(filename string, data []byte) error {
	dir := filepath.Dir(filename)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	tmpFile, err := os.CreateTemp(dir, tempFilePattern)
	if err != nil {
		return err
	}
	tmpPath := tmpFile.Name()

	// Windows에서는 열린 파일을 삭제할 수 없으므로 Close가 Remove보다 먼저 실행되어야 합니다.
	defer os.Remove(tmpPath)
	defer tmpFile.Close()

	if _, err := tmpFile.Write(data); err != nil {
		return err
	}
	if err := tmpFile.Sync(); err != nil {
		return err
	}
	if err := tmpFile.Close(); err != nil {
		return err
	}

	if err := renameWithRetry(tmpPath, filename); err != nil {
		return err
	}

	// 디렉토리 엔트리 동기화. 실패해도 데이터는 이미 기록되었습니다.
	if dirFile, err := os.Open(dir); err == nil {
		_ = dirFile.Sync()
		dirFile.Close()
	}

	return nil
}

// renameWithRetry 백신이나 인덱서가 파일을 잠시 점유하는 환경을 위해 rename을 몇 차례 재시도합니다.
func renameWithRetry(oldPath, newPath string) error {
	const maxRetries = 5
	const retryDelay = 10 * time.Millisecond

	var lastErr error
	for range maxRetries {
		err := os.Rename(oldPath, newPath)
		if err == nil {
			return nil
		}

		lastErr = err
		time.Sleep(retryDelay)
	}
	return lastErr
}

// cleanupStaleTempFiles threshold보다 오래된 임시 파일을 삭제합니다.
// 최근에 수정된 임시 파일은 다른 프로세스가 사용 중일 수 있으므로 남겨 둡니다.
func (s *FileStore) cleanupStaleTempFiles(threshold time.Time) {
	entries, err := os.ReadDir(s.baseDir)
	if err != nil {
		applog.WithComponentAndFields(componentFile, applog.Fields{
			"dir":   s.baseDir,
			"error": err,
		}).Warn("임시 파일 정리 중단: 디렉토리 조회 실패")

		return
	}

	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}

		name := entry.Name()
		if matched, _ := filepath.Match(tempFilePattern, name); !matched {
			continue
		}

		info, err := entry.Info()
		if err != nil || info.ModTime().After(threshold) {
			continue
		}

		fullPath := filepath.Join(s.baseDir, name)
		if err := os.Remove(fullPath); err != nil {
			applog.WithComponentAndFields(componentFile, applog.Fields{
				"file":  fullPath,
				"error": err,
			}).Warn("임시 파일 삭제 실패: 파일 제거 오류")
		} else {
			applog.WithComponentAndFields(componentFile, applog.Fields{
				"file": fullPath,
			}).Info("임시 파일 삭제 완료: 이전 실행 잔존 파일 정리")
		}
	}
}
