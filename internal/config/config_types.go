package config

import (
	"fmt"
	"time"

	"github.com/darkkaiser/lensyz-store/internal/browse"
	"github.com/darkkaiser/lensyz-store/internal/cart"
	"github.com/darkkaiser/lensyz-store/internal/history"
	apperrors "github.com/darkkaiser/lensyz-store/internal/pkg/errors"
	"github.com/darkkaiser/lensyz-store/internal/shop"
	"github.com/go-playground/validator/v10"
)

const (
	// CatalogSourceEmbedded 바이너리에 내장된 샘플 카탈로그
	CatalogSourceEmbedded = "embedded"
	// CatalogSourceFile 외부 JSON/YAML 카탈로그 파일
	CatalogSourceFile = "file"
	// CatalogSourceURL HTTP(S)로 내려받는 JSON/YAML 카탈로그
	CatalogSourceURL = "url"

	StorageBackendFile   = "file"
	StorageBackendMemory = "memory"
	StorageBackendRedis  = "redis"

	DefaultStorageDir     = "data"
	DefaultRedisAddr      = "localhost:6379"
	DefaultRedisKeyPrefix = "lensyz:state"
	DefaultRedisTimeout   = "3s"

	DefaultShippingFlatRate = cart.DefaultShippingFlatRate
	DefaultCurrency         = "USD"

	DefaultPageSize        = browse.DefaultPageSize
	DefaultMaxPageSize     = shop.DefaultMaxPageSize
	DefaultSort            = string(browse.SortPopular)
	DefaultSuggestionLimit = browse.DefaultSuggestionLimit

	DefaultDebounce     = "350ms"
	DefaultHistoryLimit = history.DefaultLimit

	DefaultListenPort      = 8080
	DefaultRateLimitRPS    = 20.0
	DefaultRateLimitBurst  = 40
	DefaultBodyLimit       = "64K"
	DefaultRequestTimeout  = "10s"
	DefaultShutdownTimeout = "5s"
)

// AppConfig 애플리케이션의 모든 설정을 관장하는 최상위 루트 구조체
type AppConfig struct {
	Debug bool `json:"debug"`

	// LogLevel 로그 레벨 (trace, debug, info, warn, error). 비어 있으면 debug 설정에 따른 기본 레벨을 사용합니다.
	LogLevel string `json:"log_level" validate:"omitempty,log_level"`

	Catalog CatalogConfig `json:"catalog"`
	Storage StorageConfig `json:"storage"`
	Shop    ShopConfig    `json:"shop"`
	Browse  BrowseConfig  `json:"browse"`
	Search  SearchConfig  `json:"search"`
	HTTP    HTTPConfig    `json:"http"`
}

// validate 설정 파일 로드 직후, 각 설정 항목의 정합성과 필수 값의 유효성을 검증합니다.
func (c *AppConfig) validate(v *validator.Validate) error {
	if err := checkStruct(v, c, "애플리케이션", "LogLevel"); err != nil {
		return err
	}
	if err := c.Catalog.validate(v); err != nil {
		return err
	}
	if err := c.Storage.validate(v); err != nil {
		return err
	}
	if err := c.Shop.validate(v); err != nil {
		return err
	}
	if err := c.Browse.validate(v); err != nil {
		return err
	}
	if err := checkStruct(v, c.Search, "검색(search)"); err != nil {
		return err
	}
	return c.HTTP.validate(v)
}

// VerifyRecommendations 서비스 운영의 안정성과 보안을 위해 권장되는 설정 준수 여부를 진단합니다.
// 강제적인 에러를 발생시키지는 않으나, 잠재적 위험 요소에 대한 경고 메시지를 반환합니다.
func (c *AppConfig) VerifyRecommendations() []string {
	var warnings []string

	warnings = append(warnings, c.Storage.VerifyRecommendations()...)
	warnings = append(warnings, c.HTTP.VerifyRecommendations()...)

	return warnings
}

// ShopSettings 상점 엔진이 사용하는 설정 값으로 변환합니다. 검증을 통과한 설정에서만 호출해야 합니다.
func (c *AppConfig) ShopSettings() shop.Config {
	sortKey, _ := browse.ParseSortKey(c.Browse.DefaultSort)

	return shop.Config{
		Pricing: cart.Pricing{
			ShippingFlatRate: c.Shop.ShippingFlatRate,
			TaxRate:          c.Shop.TaxRate,
		},
		PageSize:        c.Browse.PageSize,
		MaxPageSize:     c.Browse.MaxPageSize,
		DefaultSort:     sortKey,
		SuggestionLimit: c.Browse.SuggestionLimit,
		HistoryLimit:    c.Search.HistoryLimit,
		DebounceDelay:   c.Search.Debounce,
	}
}

// CatalogConfig 상품 카탈로그를 어디서 불러올지, 언제 다시 불러올지 정의하는 구조체
type CatalogConfig struct {
	Source          string `json:"source" validate:"oneof=embedded file url"`
	Path            string `json:"path" validate:"required_if=Source file,omitempty,file"`
	URL             string `json:"url" validate:"required_if=Source url,omitempty,http_url"`
	RefreshSchedule string `json:"refresh_schedule" validate:"omitempty,cron_spec"`
}

func (c *CatalogConfig) validate(v *validator.Validate) error {
	return checkStruct(v, c, "카탈로그(catalog)")
}

// StorageConfig 장바구니, 위시리스트, 검색 기록을 보관하는 상태 저장소 설정 구조체
type StorageConfig struct {
	Backend string      `json:"backend" validate:"oneof=file memory redis"`
	Dir     string      `json:"dir" validate:"required_if=Backend file"`
	Redis   RedisConfig `json:"redis"`
}

func (c *StorageConfig) validate(v *validator.Validate) error {
	if err := checkStruct(v, c, "상태 저장소(storage)", "Backend", "Dir"); err != nil {
		return err
	}

	if c.Backend == StorageBackendRedis {
		return checkStruct(v, c.Redis, "Redis 저장소(storage.redis)")
	}
	return nil
}

func (c *StorageConfig) VerifyRecommendations() []string {
	if c.Backend == StorageBackendMemory {
		return []string{"메모리 상태 저장소(storage.backend=memory)는 프로세스가 종료되면 장바구니, 위시리스트, 검색 기록이 모두 사라집니다"}
	}
	return nil
}

// RedisConfig Redis 상태 저장소 접속 정보
type RedisConfig struct {
	Addr      string        `json:"addr" validate:"required,hostname_port"`
	Password  string        `json:"password"`
	DB        int           `json:"db" validate:"min=0"`
	KeyPrefix string        `json:"key_prefix"`
	Timeout   time.Duration `json:"timeout" validate:"gt=0"`
	TTL       time.Duration `json:"ttl" validate:"min=0"`
}

// ShopConfig 주문 합계 계산에 사용되는 배송비, 세율, 통화 설정
type ShopConfig struct {
	ShippingFlatRate float64 `json:"shipping_flat_rate" validate:"min=0"`
	TaxRate          float64 `json:"tax_rate" validate:"min=0,max=1"`
	Currency         string  `json:"currency" validate:"required,iso4217"`
}

func (c *ShopConfig) validate(v *validator.Validate) error {
	return checkStruct(v, c, "상점(shop)")
}

// BrowseConfig 상품 목록 페이지네이션과 기본 정렬 설정
type BrowseConfig struct {
	PageSize        int    `json:"page_size" validate:"min=1"`
	MaxPageSize     int    `json:"max_page_size" validate:"gtefield=PageSize"`
	DefaultSort     string `json:"default_sort" validate:"sort_key"`
	SuggestionLimit int    `json:"suggestion_limit" validate:"min=1"`
}

func (c *BrowseConfig) validate(v *validator.Validate) error {
	return checkStruct(v, c, "상품 목록(browse)")
}

// SearchConfig 실시간 검색 디바운스와 검색 기록 보관 개수 설정
type SearchConfig struct {
	Debounce     time.Duration `json:"debounce" validate:"gt=0"`
	HistoryLimit int           `json:"history_limit" validate:"min=1"`
}

// HTTPConfig REST API 서버의 포트, TLS, 요청 제한 설정 구조체
type HTTPConfig struct {
	ListenPort      int             `json:"listen_port" validate:"min=1,max=65535"`
	TLSServer       bool            `json:"tls_server"`
	TLSCertFile     string          `json:"tls_cert_file" validate:"required_if=TLSServer true,omitempty,file"`
	TLSKeyFile      string          `json:"tls_key_file" validate:"required_if=TLSServer true,omitempty,file"`
	CORS            CORSConfig      `json:"cors"`
	RateLimit       RateLimitConfig `json:"rate_limit"`
	BodyLimit       string          `json:"body_limit" validate:"required"`
	RequestTimeout  time.Duration   `json:"request_timeout" validate:"gt=0"`
	ShutdownTimeout time.Duration   `json:"shutdown_timeout" validate:"gt=0"`
}

func (c *HTTPConfig) validate(v *validator.Validate) error {
	if err := checkStruct(v, c, "웹 서버(http)", "ListenPort", "TLSServer", "TLSCertFile", "TLSKeyFile", "BodyLimit", "RequestTimeout", "ShutdownTimeout"); err != nil {
		return err
	}
	if err := c.CORS.validate(v); err != nil {
		return err
	}
	return checkStruct(v, c.RateLimit, "요청 속도 제한(http.rate_limit)")
}

func (c *HTTPConfig) VerifyRecommendations() []string {
	var warnings []string

	// 시스템 예약 포트(1024 미만) 사용 경고
	if c.ListenPort < 1024 {
		warnings = append(warnings, fmt.Sprintf("시스템 예약 포트(1-1023)를 사용하도록 설정되었습니다(port: %d). 이 경우 서버 구동 시 관리자 권한이 필요할 수 있습니다", c.ListenPort))
	}

	if len(c.CORS.AllowOrigins) == 1 && c.CORS.AllowOrigins[0] == "*" {
		warnings = append(warnings, "CORS 허용 도메인이 와일드카드(*)로 설정되어 있습니다. 운영 환경에서는 상점 프론트엔드 도메인만 허용하는 것을 권장합니다")
	}

	return warnings
}

// CORSConfig 웹 브라우저의 교차 출처 리소스 공유(CORS) 정책을 설정하는 구조체
type CORSConfig struct {
	AllowOrigins []string `json:"allow_origins" validate:"dive,cors_origin"`
}

func (c *CORSConfig) validate(v *validator.Validate) error {
	if len(c.AllowOrigins) == 0 {
		return apperrors.New(apperrors.InvalidInput, "CORS 허용 도메인(allow_origins) 목록이 비어있습니다")
	}

	for _, origin := range c.AllowOrigins {
		if origin == "*" {
			if len(c.AllowOrigins) > 1 {
				return apperrors.New(apperrors.InvalidInput, "와일드카드(*)는 다른 도메인과 함께 사용할 수 없습니다. 모든 도메인을 허용하려면 와일드카드만 설정하세요")
			}
			return nil
		}
	}

	return checkStruct(v, c, "CORS(http.cors)")
}

// RateLimitConfig 클라이언트 IP별 초당 요청 수 제한. RPS가 0이면 제한하지 않습니다.
type RateLimitConfig struct {
	RPS   float64 `json:"rps" validate:"min=0"`
	Burst int     `json:"burst" validate:"min=0"`
}
