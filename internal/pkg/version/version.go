// Package version 빌드 시점에 주입된 버전 정보와 실행 환경 정보를 제공합니다.
//
// 값은 링커 플래그로 주입합니다.
//
//	go build -ldflags "-X github.com/darkkaiser/lensyz-store/internal/pkg/version.appVersion=v1.2.0"
//
// 주입되지 않은 항목은 실행 파일의 VCS 메타데이터(debug.ReadBuildInfo)로 보강합니다.
package version

import (
	"fmt"
	"runtime"
	"runtime/debug"
	"strings"
	"sync"
)

const unknown = "unknown"

// 링커 플래그(-X)로 주입되는 값입니다. 직접 읽지 말고 Get을 사용합니다.
var (
	appVersion    = ""
	gitCommitHash = ""
	gitTreeState  = ""
	buildDate     = ""
)

// readBuildInfo 테스트에서 교체할 수 있도록 변수로 둡니다.
var readBuildInfo = debug.ReadBuildInfo

var (
	current Info
	once    sync.Once
)

// Info 애플리케이션 빌드 정보입니다. /version 응답과 시작 로그에 사용됩니다.
type Info struct {
	Version   string `json:"version"`
	Commit    string `json:"commit"`
	BuildDate string `json:"build_date"`
	Dirty     bool   `json:"dirty"`
	GoVersion string `json:"go_version"`
	Platform  string `json:"platform"`
}

// Get 빌드 정보를 반환합니다. 최초 호출 시 한 번만 계산됩니다.
func Get() Info {
	once.Do(func() {
		current = detect(Info{
			Version:   strings.TrimSpace(appVersion),
			Commit:    strings.TrimSpace(gitCommitHash),
			BuildDate: strings.TrimSpace(buildDate),
			Dirty:     strings.EqualFold(strings.TrimSpace(gitTreeState), "dirty"),
		})
	})
	return current
}

// detect 비어 있는 항목을 런타임 정보와 VCS 메타데이터로 채웁니다.
func detect(bi Info) Info {
	bi.GoVersion = runtime.Version()
	bi.Platform = runtime.GOOS + "/" + runtime.GOARCH

	if info, ok := readBuildInfo(); ok {
		for _, s := range info.Settings {
			switch s.Key {
			case "vcs.revision":
				if bi.Commit == "" {
					bi.Commit = s.Value
				}
			case "vcs.time":
				if bi.BuildDate == "" {
					bi.BuildDate = s.Value
				}
			case "vcs.modified":
				bi.Dirty = bi.Dirty || s.Value == "true"
			}
		}
		if bi.Version == "" && info.Main.Version != "" && info.Main.Version != "(devel)" {
			bi.Version = info.Main.Version
		}
	}

	if bi.Version == "" {
		bi.Version = unknown
	}
	if bi.Commit == "" {
		bi.Commit = unknown
	}
	return bi
}

// ShortCommit 커밋 해시의 앞 7자리
func (i Info) ShortCommit() string {
	if len(i.Commit) > 7 {
		return i.Commit[:7]
	}
	return i.Commit
}

// Fields 구조적 로깅용 필드 맵
func (i Info) Fields() map[string]any {
	return map[string]any{
		"version":    i.Version,
		"commit":     i.ShortCommit(),
		"build_date": i.BuildDate,
		"dirty":      i.Dirty,
		"go_version": i.GoVersion,
		"platform":   i.Platform,
	}
}

// String 예: "v1.2.0+dirty (commit: f25b8bf, go1.24.0, linux/amd64)"
func (i Info) String() string {
	v := i.Version
	if i.Dirty {
		v += "+dirty"
	}

	details := make([]string, 0, 3)
	if i.Commit != "" && i.Commit != unknown {
		details = append(details, "commit: "+i.ShortCommit())
	}
	if i.GoVersion != "" {
		details = append(details, i.GoVersion)
	}
	if i.Platform != "" {
		details = append(details, i.Platform)
	}

	if len(details) == 0 {
		return v
	}
	return fmt.Sprintf("%s (%s)", v, strings.Join(details, ", "))
}
