package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"

	apperrors "github.com/darkkaiser/lensyz-store/internal/pkg/errors"
	"github.com/go-viper/mapstructure/v2"
	"github.com/joho/godotenv"
	"github.com/knadh/koanf/parsers/json"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

const (
	// AppName 애플리케이션의 전역 고유 식별자입니다.
	AppName string = "lensyz-store"

	// DefaultFilename 실행 인자로 경로가 주어지지 않았을 때 탐색하는 기본 설정 파일명입니다.
	DefaultFilename = AppName + ".json"

	// DefaultEnvFilename 환경 변수를 미리 채워 넣는 dotenv 파일명입니다. 없으면 무시됩니다.
	DefaultEnvFilename = ".env"

	// EnvPrefix 설정을 덮어쓰는 환경 변수의 접두사입니다.
	// 이중 언더스코어(__)는 계층 구분자로 변환됩니다. 예: LENSYZ_SHOP__TAX_RATE -> shop.tax_rate
	EnvPrefix = "LENSYZ_"
)

// defaults 설정 파일과 환경 변수보다 우선순위가 낮은 기본값 목록
func defaults() map[string]any {
	return map[string]any{
		"catalog.source": CatalogSourceEmbedded,

		"storage.backend":          StorageBackendFile,
		"storage.dir":              DefaultStorageDir,
		"storage.redis.addr":       DefaultRedisAddr,
		"storage.redis.key_prefix": DefaultRedisKeyPrefix,
		"storage.redis.timeout":    DefaultRedisTimeout,
		"shop.shipping_flat_rate":  DefaultShippingFlatRate,
		"shop.tax_rate":            0.0,
		"shop.currency":            DefaultCurrency,
		"browse.page_size":         DefaultPageSize,
		"browse.max_page_size":     DefaultMaxPageSize,
		"browse.default_sort":      DefaultSort,
		"browse.suggestion_limit":  DefaultSuggestionLimit,
		"search.debounce":          DefaultDebounce,
		"search.history_limit":     DefaultHistoryLimit,
		"http.listen_port":         DefaultListenPort,
		"http.cors.allow_origins":  []string{"*"},
		"http.rate_limit.rps":      DefaultRateLimitRPS,
		"http.rate_limit.burst":    DefaultRateLimitBurst,
		"http.body_limit":          DefaultBodyLimit,
		"http.request_timeout":     DefaultRequestTimeout,
		"http.shutdown_timeout":    DefaultShutdownTimeout,
	}
}

// Load 기본 설정 파일을 읽어 애플리케이션 설정을 로드합니다.
func Load() (*AppConfig, error) {
	return LoadWithFile(DefaultFilename)
}

// LoadWithFile 지정된 경로의 설정 파일을 읽어 AppConfig 객체를 생성합니다.
//
// 우선순위(낮음 -> 높음): 기본값, JSON 설정 파일, .env 파일, 환경 변수
// 설정 파일이 존재하지 않으면 기본값과 환경 변수만으로 구성합니다.
func LoadWithFile(filename string) (*AppConfig, error) {
	k := koanf.New(".")

	// 1. 기본값 로드
	if err := k.Load(confmap.Provider(defaults(), "."), nil); err != nil {
		return nil, apperrors.Wrap(err, apperrors.System, "애플리케이션 기본 설정 로드에 실패했습니다")
	}

	// 2. JSON 설정 파일 로드
	if filename != "" {
		if err := k.Load(file.Provider(filename), json.Parser()); err != nil {
			if !errors.Is(err, fs.ErrNotExist) {
				return nil, apperrors.Wrap(err, apperrors.InvalidInput, fmt.Sprintf("설정 파일 로드 중 오류가 발생했습니다: '%s'", filename))
			}
		}
	}

	// 3. .env 파일의 값을 프로세스 환경 변수로 채운다 (이미 설정된 환경 변수는 덮어쓰지 않음)
	if err := godotenv.Load(DefaultEnvFilename); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, apperrors.Wrap(err, apperrors.InvalidInput, fmt.Sprintf("환경 변수 파일을 읽을 수 없습니다: '%s'", DefaultEnvFilename))
	}

	// 4. 환경 변수 로드
	if err := k.Load(env.Provider(EnvPrefix, ".", normalizeEnvKey), nil); err != nil {
		return nil, apperrors.Wrap(err, apperrors.System, "환경 변수 로드에 실패했습니다")
	}

	// 5. 구조체 언마샬링
	unmarshalConf := koanf.UnmarshalConf{
		Tag: "json",
		DecoderConfig: &mapstructure.DecoderConfig{
			DecodeHook: mapstructure.ComposeDecodeHookFunc(
				mapstructure.StringToTimeDurationHookFunc(),
				mapstructure.StringToSliceHookFunc(","),
			),
			ErrorUnused:      true,
			WeaklyTypedInput: true,
		},
	}
	var appConfig AppConfig
	unmarshalConf.DecoderConfig.Result = &appConfig
	if err := k.UnmarshalWithConf("", &appConfig, unmarshalConf); err != nil {
		return nil, apperrors.Wrap(err, apperrors.InvalidInput, "설정 데이터를 애플리케이션 구조체로 변환하는데 실패했습니다")
	}

	// 6. 유효성 검사
	if err := appConfig.validate(newValidator()); err != nil {
		return nil, apperrors.Wrap(err, apperrors.InvalidInput, fmt.Sprintf("설정 파일('%s')의 유효성 검증에 실패했습니다", filename))
	}

	return &appConfig, nil
}

// normalizeEnvKey LENSYZ_HTTP__RATE_LIMIT__RPS -> http.rate_limit.rps
func normalizeEnvKey(s string) string {
	s = strings.TrimPrefix(s, EnvPrefix)
	s = strings.ToLower(s)
	return strings.ReplaceAll(s, "__", ".")
}
