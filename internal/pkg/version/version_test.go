package version

import (
	"runtime"
	"runtime/debug"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDetect(t *testing.T) {
	orig := readBuildInfo
	t.Cleanup(func() { readBuildInfo = orig })

	t.Run("VCS 메타데이터로 빈 항목 보강", func(t *testing.T) {
		readBuildInfo = func() (*debug.BuildInfo, bool) {
			return &debug.BuildInfo{
				Main: debug.Module{Version: "v0.3.1"},
				Settings: []debug.BuildSetting{
					{Key: "vcs.revision", Value: "0123456789abcdef"},
					{Key: "vcs.time", Value: "2026-10-01T09:00:00Z"},
					{Key: "vcs.modified", Value: "true"},
				},
			}, true
		}

		bi := detect(Info{})
		assert.Equal(t, "v0.3.1", bi.Version)
		assert.Equal(t, "0123456789abcdef", bi.Commit)
		assert.Equal(t, "2026-10-01T09:00:00Z", bi.BuildDate)
		assert.True(t, bi.Dirty)
		assert.Equal(t, runtime.Version(), bi.GoVersion)
		assert.Equal(t, runtime.GOOS+"/"+runtime.GOARCH, bi.Platform)
	})

	t.Run("주입된 값 우선", func(t *testing.T) {
		readBuildInfo = func() (*debug.BuildInfo, bool) {
			return &debug.BuildInfo{
				Main:     debug.Module{Version: "(devel)"},
				Settings: []debug.BuildSetting{{Key: "vcs.revision", Value: "ffff"}},
			}, true
		}

		bi := detect(Info{Version: "v1.0.0", Commit: "abc1234"})
		assert.Equal(t, "v1.0.0", bi.Version)
		assert.Equal(t, "abc1234", bi.Commit)
		assert.False(t, bi.Dirty)
	})

	t.Run("정보 없음", func(t *testing.T) {
		readBuildInfo = func() (*debug.BuildInfo, bool) { return nil, false }

		bi := detect(Info{})
		assert.Equal(t, unknown, bi.Version)
		assert.Equal(t, unknown, bi.Commit)
	})
}

func TestInfo_String(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		info Info
		want string
	}{
		{"버전만", Info{Version: "v1.0.0", Commit: unknown}, "v1.0.0"},
		{"전체", Info{Version: "v1.0.0", Commit: "f25b8bf0123", Dirty: true, GoVersion: "go1.24.0", Platform: "linux/amd64"}, "v1.0.0+dirty (commit: f25b8bf, go1.24.0, linux/amd64)"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, tt.info.String())
		})
	}
}

func TestInfo_Fields(t *testing.T) {
	t.Parallel()

	f := Info{Version: "v1", Commit: "0123456789"}.Fields()
	assert.Equal(t, "v1", f["version"])
	assert.Equal(t, "0123456", f["commit"])
}

func TestGet_Stable(t *testing.T) {
	t.Parallel()

	assert.Equal(t, Get(), Get())
	assert.NotEmpty(t, Get().Version)
}
