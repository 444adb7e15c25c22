package config

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/darkkaiser/lensyz-store/internal/browse"
	apperrors "github.com/darkkaiser/lensyz-store/internal/pkg/errors"
	applog "github.com/darkkaiser/lensyz-store/pkg/log"
	"github.com/darkkaiser/lensyz-store/pkg/validation"
	"github.com/go-playground/validator/v10"
)

// newValidator 새로운 Validator 인스턴스를 생성하고 커스텀 유효성 검사 함수를 등록합니다.
func newValidator() *validator.Validate {
	v := validator.New()

	// 검증 에러 메시지에 Go 구조체 필드명 대신 JSON 이름(예: allow_origins)을 보여주도록 설정합니다.
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	mustRegister(v, "cors_origin", validateCORSOrigin)
	mustRegister(v, "cron_spec", validateCronSpec)
	mustRegister(v, "sort_key", validateSortKey)
	mustRegister(v, "log_level", validateLogLevel)

	return v
}

func mustRegister(v *validator.Validate, tag string, fn validator.Func) {
	if err := v.RegisterValidation(tag, fn); err != nil {
		panic(fmt.Sprintf("초기화 치명적 오류: '%s' 커스텀 유효성 검사 함수 등록에 실패했습니다: %v", tag, err))
	}
}

// validateCORSOrigin 실제 검증은 validation.ValidateCORSOrigin 함수로 위임합니다.
func validateCORSOrigin(fl validator.FieldLevel) bool {
	return validation.ValidateCORSOrigin(fl.Field().String()) == nil
}

// validateCronSpec 초 단위를 포함하는 6필드 Cron 표현식인지 검증합니다.
func validateCronSpec(fl validator.FieldLevel) bool {
	return validation.ValidateCronExpression(fl.Field().String()) == nil
}

// validateSortKey 상품 목록 정렬 키(별칭 포함)로 해석할 수 있는지 검증합니다.
func validateSortKey(fl validator.FieldLevel) bool {
	_, err := browse.ParseSortKey(fl.Field().String())
	return err == nil
}

// validateLogLevel error 이하(trace~error)의 로그 레벨 이름인지 검증합니다. panic, fatal은 허용하지 않습니다.
func validateLogLevel(fl validator.FieldLevel) bool {
	level, err := applog.ParseLevel(fl.Field().String())
	return err == nil && level >= applog.ErrorLevel
}

// checkStruct 구조체 인스턴스의 유효성을 태그 규칙에 따라 검증하고, 발생한 오류를 사용자 친화적인 도메인 에러로 변환합니다.
//
// 선택적 인자인 fields를 제공하면 해당 필드 범위 내에서만 부분 검증(Partial Validation)을 수행합니다.
func checkStruct(v *validator.Validate, s any, contextName string, fields ...string) error {
	var err error
	if len(fields) > 0 {
		err = v.StructPartial(s, fields...)
	} else {
		err = v.Struct(s)
	}
	if err == nil {
		return nil
	}

	validationErrors, ok := err.(validator.ValidationErrors)
	if !ok || len(validationErrors) == 0 {
		return apperrors.Wrap(err, apperrors.InvalidInput, fmt.Sprintf("%s 유효성 검증에 실패했습니다", contextName))
	}

	// 첫 번째 에러만 상세히 보고
	firstErr := validationErrors[0]

	// 필드별(Field) 커스텀 에러 처리
	switch firstErr.StructField() {
	case "ListenPort":
		return apperrors.New(apperrors.InvalidInput, "웹 서버 포트(listen_port)는 1에서 65535 사이의 값이어야 합니다")
	case "TLSCertFile", "TLSKeyFile":
		switch firstErr.Tag() {
		case "required_if":
			return apperrors.New(apperrors.InvalidInput, fmt.Sprintf("TLS 서버 활성화 시 %s 경로는 필수입니다", firstErr.Field()))
		case "file":
			return apperrors.New(apperrors.InvalidInput, fmt.Sprintf("지정된 TLS 파일(%s)을 찾을 수 없습니다: '%v'", firstErr.Field(), firstErr.Value()))
		}
	case "Path":
		switch firstErr.Tag() {
		case "required_if":
			return apperrors.New(apperrors.InvalidInput, "카탈로그 source가 file이면 카탈로그 파일 경로(path)는 필수입니다")
		case "file":
			return apperrors.New(apperrors.InvalidInput, fmt.Sprintf("지정된 카탈로그 파일(path)을 찾을 수 없습니다: '%v'", firstErr.Value()))
		}
	case "URL":
		if firstErr.Tag() == "required_if" {
			return apperrors.New(apperrors.InvalidInput, "카탈로그 source가 url이면 카탈로그 주소(url)는 필수입니다")
		}
		return apperrors.New(apperrors.InvalidInput, fmt.Sprintf("카탈로그 주소(url)는 http 또는 https URL이어야 합니다: '%v'", firstErr.Value()))
	case "TaxRate":
		return apperrors.New(apperrors.InvalidInput, fmt.Sprintf("세율(tax_rate)은 0에서 1 사이의 값이어야 합니다: '%v'", firstErr.Value()))
	case "MaxPageSize":
		return apperrors.New(apperrors.InvalidInput, fmt.Sprintf("최대 페이지 크기(max_page_size)는 기본 페이지 크기(page_size) 이상이어야 합니다: '%v'", firstErr.Value()))
	}

	// 태그별(Tag) 커스텀 에러 처리 (범용)
	switch firstErr.Tag() {
	case "oneof":
		return apperrors.New(apperrors.InvalidInput, fmt.Sprintf("%s의 %s 값은 [%s] 중 하나여야 합니다: '%v'", contextName, firstErr.Field(), firstErr.Param(), firstErr.Value()))
	case "cors_origin":
		return apperrors.New(apperrors.InvalidInput, fmt.Sprintf("CORS Origin 형식이 올바르지 않습니다: '%v' (형식: Scheme://Host[:Port], 예: https://example.com)", firstErr.Value()))
	case "cron_spec":
		return apperrors.New(apperrors.InvalidInput, fmt.Sprintf("%s의 %s Cron 표현식이 올바르지 않습니다: '%v' (형식: 초 분 시 일 월 요일)", contextName, firstErr.Field(), firstErr.Value()))
	case "sort_key":
		return apperrors.New(apperrors.InvalidInput, fmt.Sprintf("지원하지 않는 정렬 기준입니다: '%v' (사용 가능: %s)", firstErr.Value(), joinSortKeys()))
	case "log_level":
		return apperrors.New(apperrors.InvalidInput, fmt.Sprintf("지원하지 않는 로그 레벨(log_level)입니다: '%v' (사용 가능: trace, debug, info, warn, error)", firstErr.Value()))
	}

	return apperrors.New(apperrors.InvalidInput, fmt.Sprintf("%s의 설정이 올바르지 않습니다: %s (조건: %s)", contextName, firstErr.Field(), firstErr.Tag()))
}

func joinSortKeys() string {
	keys := browse.SortKeys()

	names := make([]string, 0, len(keys))
	for _, k := range keys {
		if k != browse.SortDefault {
			names = append(names, string(k))
		}
	}
	return strings.Join(names, ", ")
}
