package state

import (
	"context"
	"os"
	"path/filepath"
	"strconv"
	"sync"
	"testing"
	"time"

	apperrors "github.com/darkkaiser/lensyz-store/internal/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupFileStore(t *testing.T) (*FileStore, string) {
	t.Helper()

	dir := t.TempDir()
	s, err := NewFileStore(dir)
	require.NoError(t, err)
	return s, dir
}

func TestNewFileStore(t *testing.T) {
	t.Parallel()

	t.Run("지정한 디렉토리 생성", func(t *testing.T) {
		t.Parallel()

		dir := filepath.Join(t.TempDir(), "nested", "state")
		s, err := NewFileStore(dir)
		require.NoError(t, err)
		assert.Equal(t, dir, s.Dir())
		assert.DirExists(t, dir)
	})

	t.Run("파일을 디렉토리로 지정하면 실패", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "file_as_dir")
		require.NoError(t, os.WriteFile(path, []byte("x"), 0644))

		s, err := NewFileStore(path)
		require.Error(t, err)
		assert.Nil(t, s)
		assert.Contains(t, err.Error(), "저장소 초기화 실패")
	})
}

func TestFileStore_SaveLoad(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	s, dir := setupFileStore(t)

	want := []cartLine{{ProductID: "1", Quantity: 2}, {ProductID: "8", Quantity: 1}}
	require.NoError(t, s.Save(ctx, KeyCart, want))

	var got []cartLine
	require.NoError(t, s.Load(ctx, KeyCart, &got))
	assert.Equal(t, want, got)

	// 덮어쓰기
	require.NoError(t, s.Save(ctx, KeyCart, want[:1]))
	require.NoError(t, s.Load(ctx, KeyCart, &got))
	assert.Equal(t, want[:1], got)

	// 키마다 하나의 JSON 파일만 남고 임시 파일은 없어야 합니다.
	files, err := filepath.Glob(filepath.Join(dir, "*"))
	require.NoError(t, err)
	require.Len(t, files, 1)
	assert.Equal(t, generateFilename(KeyCart), filepath.Base(files[0]))
}

func TestFileStore_LoadErrors(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	s, dir := setupFileStore(t)

	t.Run("없는 키", func(t *testing.T) {
		var v []string
		err := s.Load(ctx, KeyWishlist, &v)
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("손상된 파일", func(t *testing.T) {
		path := filepath.Join(dir, generateFilename(KeySearchHistory))
		require.NoError(t, os.WriteFile(path, []byte("{not json"), 0644))

		var v []cartLine
		err := s.Load(ctx, KeySearchHistory, &v)
		require.Error(t, err)
		assert.True(t, apperrors.Is(err, apperrors.ParsingFailed))

		require.NoError(t, LoadOrEmpty(ctx, s, KeySearchHistory, &v))
		assert.Empty(t, v)
	})

	t.Run("포인터가 아닌 대상", func(t *testing.T) {
		var v []string
		assert.ErrorIs(t, s.Load(ctx, KeyWishlist, v), ErrLoadRequiresPointer)
		assert.ErrorIs(t, s.Load(ctx, KeyWishlist, nil), ErrLoadRequiresPointer)
	})

	t.Run("빈 키", func(t *testing.T) {
		var v []string
		assert.ErrorIs(t, s.Load(ctx, "", &v), ErrEmptyKey)
		assert.ErrorIs(t, s.Save(ctx, "", v), ErrEmptyKey)
	})

	t.Run("취소된 컨텍스트", func(t *testing.T) {
		cancelled, cancel := context.WithCancel(ctx)
		cancel()

		var v []string
		assert.True(t, apperrors.Is(s.Load(cancelled, KeyWishlist, &v), apperrors.Timeout))
	})

	t.Run("직렬화할 수 없는 값", func(t *testing.T) {
		err := s.Save(ctx, "bad", map[string]any{"ch": make(chan int)})
		require.Error(t, err)
		assert.True(t, apperrors.Is(err, apperrors.Internal))
	})
}

func TestFileStore_Delete(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	s, _ := setupFileStore(t)

	require.NoError(t, s.Save(ctx, KeyWishlist, []string{"1"}))
	require.NoError(t, s.Delete(ctx, KeyWishlist))

	var v []string
	assert.ErrorIs(t, s.Load(ctx, KeyWishlist, &v), ErrNotFound)

	// 없는 키 삭제는 에러가 아닙니다.
	assert.NoError(t, s.Delete(ctx, KeyWishlist))
}

func TestFileStore_KeysStayInsideDirectory(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	s, dir := setupFileStore(t)

	for _, key := range []string{"../../etc/passwd", `..\..\windows`, "/abs/path", "a/b/c"} {
		require.NoError(t, s.Save(ctx, key, []string{key}))

		path, err := s.resolveSafePath(key)
		require.NoError(t, err)
		assert.Equal(t, dir, filepath.Dir(path), key)

		var got []string
		require.NoError(t, s.Load(ctx, key, &got))
		assert.Equal(t, []string{key}, got)
	}
}

func TestFileStore_CleanupStaleTempFiles(t *testing.T) {
	t.Parallel()

	s, dir := setupFileStore(t)

	stale := filepath.Join(dir, "state-111.tmp")
	fresh := filepath.Join(dir, "state-222.tmp")
	other := filepath.Join(dir, "keep.txt")
	for _, p := range []string{stale, fresh, other} {
		require.NoError(t, os.WriteFile(p, []byte("x"), 0644))
	}

	old := time.Now().Add(-2 * time.Hour)
	require.NoError(t, os.Chtimes(stale, old, old))
	require.NoError(t, os.Chtimes(other, old, old))

	s.cleanupStaleTempFiles(time.Now().Add(-staleTempFileAge))

	assert.NoFileExists(t, stale)
	assert.FileExists(t, fresh)
	assert.FileExists(t, other)
}

func TestFileStore_Concurrency(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	s, _ := setupFileStore(t)

	const workers = 20

	var wg sync.WaitGroup
	for i := range workers {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()

			ids := []string{strconv.Itoa(i)}
			assert.NoError(t, s.Save(ctx, KeyWishlist, ids))

			var got []string
			assert.NoError(t, s.Load(ctx, KeyWishlist, &got))
			assert.Len(t, got, 1)
		}(i)
	}
	wg.Wait()

	var got []string
	require.NoError(t, s.Load(ctx, KeyWishlist, &got))
	require.Len(t, got, 1)
}
