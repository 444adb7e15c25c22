package catalog

import (
	"context"
	"errors"
	"io"
	"math/rand/v2"
	"mime"
	"net/http"
	"net/url"
	"path"
	"strconv"
	"strings"
	"time"

	apperrors "github.com/darkkaiser/lensyz-store/internal/pkg/errors"
	applog "github.com/darkkaiser/lensyz-store/pkg/log"
)

const (
	// DefaultMaxBytes 원격 카탈로그 응답 본문의 기본 크기 제한 (10MB)
	DefaultMaxBytes = 10 * 1024 * 1024

	DefaultMaxRetries    = 3
	DefaultMinRetryDelay = time.Second
	DefaultMaxRetryDelay = 30 * time.Second

	maxAllowedRetries = 10

	defaultRequestTimeout = 30 * time.Second
)

// URLSource HTTP(S) 주소에서 JSON 또는 YAML 카탈로그를 내려받습니다.
//
// 네트워크 오류, 408, 429, 5xx(501/505/511 제외) 응답은 지수 백오프와 Full Jitter로 재시도합니다.
// 서버가 Retry-After를 보내면 그 값을 따르되, MaxRetryDelay보다 길면 재시도를 포기합니다.
type URLSource struct {
	URL string

	// Client nil이면 30초 타임아웃의 기본 클라이언트를 사용합니다.
	Client *http.Client

	MaxRetries    int
	MinRetryDelay time.Duration
	MaxRetryDelay time.Duration

	// MaxBytes 0이면 DefaultMaxBytes를 사용합니다.
	MaxBytes int64
}

func (s URLSource) Load(ctx context.Context) (*Catalog, error) {
	u, err := url.Parse(s.URL)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return nil, apperrors.Newf(apperrors.InvalidInput, "카탈로그 URL이 올바르지 않습니다 (url=%q)", s.URL)
	}

	resp, err := s.fetch(ctx, u)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	data, err := s.readBody(resp)
	if err != nil {
		return nil, err
	}

	parse, err := parserFor(resp.Header.Get("Content-Type"), u.Path)
	if err != nil {
		return nil, err
	}

	doc, err := parse(data)
	if err != nil {
		return nil, apperrors.Wrapf(err, apperrors.ParsingFailed, "원격 카탈로그를 해석할 수 없습니다 (url=%q)", redactURL(u))
	}

	c, err := New(doc)
	if err != nil {
		return nil, err
	}

	applog.WithComponentAndFields(component, applog.Fields{
		"url":      redactURL(u),
		"products": c.Len(),
	}).Debug("원격 카탈로그 로드 완료")

	return c, nil
}

// fetch 성공(2xx) 응답을 얻을 때까지 재시도합니다. 반환된 응답의 Body는 호출자가 닫아야 합니다.
func (s URLSource) fetch(ctx context.Context, u *url.URL) (*http.Response, error) {
	client := s.Client
	if client == nil {
		client = &http.Client{Timeout: defaultRequestTimeout}
	}

	maxRetries := min(max(s.MaxRetries, 0), maxAllowedRetries)
	minDelay, maxDelay := s.retryDelays()

	var lastErr error
	var retryAfter string

	for i := 0; i <= maxRetries; i++ {
		if i > 0 {
			delay, ok := backoff(i, minDelay, maxDelay, retryAfter)
			if !ok {
				return nil, apperrors.Wrapf(lastErr, apperrors.Unavailable, "서버가 요구한 재시도 대기 시간(%s)이 최대 허용 시간(%s)을 초과합니다", retryAfter, maxDelay)
			}

			applog.WithComponentAndFields(component, applog.Fields{
				"url":         redactURL(u),
				"retry":       i,
				"max_retries": maxRetries,
				"delay":       delay.String(),
				"error":       lastErr,
			}).Warn("원격 카탈로그 요청 재시도 대기 중")

			timer := time.NewTimer(delay)
			select {
			case <-ctx.Done():
				timer.Stop()
				return nil, apperrors.Wrap(ctx.Err(), apperrors.Timeout, "원격 카탈로그 요청이 취소되었습니다")
			case <-timer.C:
			}
		}

		req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
		if err != nil {
			return nil, apperrors.Wrap(err, apperrors.InvalidInput, "원격 카탈로그 요청을 생성할 수 없습니다")
		}
		req.Header.Set("Accept", "application/json, application/yaml;q=0.9, */*;q=0.5")

		resp, err := client.Do(req)
		if err != nil {
			if ctx.Err() != nil {
				return nil, apperrors.Wrap(ctx.Err(), apperrors.Timeout, "원격 카탈로그 요청이 취소되었습니다")
			}
			lastErr = apperrors.Wrapf(err, apperrors.Unavailable, "원격 카탈로그 서버에 연결할 수 없습니다 (url=%q)", redactURL(u))
			retryAfter = ""
			continue
		}

		if resp.StatusCode >= 200 && resp.StatusCode < 300 {
			return resp, nil
		}

		retryAfter = resp.Header.Get("Retry-After")
		drainAndClose(resp.Body)

		statusErr := newErrUnexpectedStatus(resp.StatusCode, u)
		if !isRetryableStatus(resp.StatusCode) {
			return nil, statusErr
		}
		lastErr = statusErr
	}

	return nil, lastErr
}

func (s URLSource) retryDelays() (minDelay, maxDelay time.Duration) {
	minDelay, maxDelay = s.MinRetryDelay, s.MaxRetryDelay
	if minDelay <= 0 {
		minDelay = DefaultMinRetryDelay
	}
	if maxDelay <= 0 {
		maxDelay = DefaultMaxRetryDelay
	}
	if maxDelay < minDelay {
		maxDelay = minDelay
	}
	return minDelay, maxDelay
}

func (s URLSource) readBody(resp *http.Response) ([]byte, error) {
	limit := s.MaxBytes
	if limit <= 0 {
		limit = DefaultMaxBytes
	}

	if resp.ContentLength > limit {
		return nil, newErrBodyTooLarge(limit)
	}

	data, err := io.ReadAll(io.LimitReader(resp.Body, limit+1))
	if err != nil {
		return nil, apperrors.Wrap(err, apperrors.Unavailable, "원격 카탈로그 응답을 읽을 수 없습니다")
	}
	if int64(len(data)) > limit {
		return nil, newErrBodyTooLarge(limit)
	}
	return data, nil
}

// backoff i번째 재시도 전 대기 시간을 계산합니다. Retry-After가 maxDelay를 넘으면 false를 반환합니다.
func backoff(i int, minDelay, maxDelay time.Duration, retryAfter string) (time.Duration, bool) {
	if d, ok := parseRetryAfter(retryAfter); ok {
		return d, d <= maxDelay
	}

	delay := minDelay << (i - 1)
	if delay > maxDelay || delay <= 0 {
		delay = maxDelay
	}

	delay = time.Duration(rand.Int64N(int64(delay) + 1))
	if delay < time.Millisecond {
		delay = minDelay
	}
	return delay, true
}

// parseRetryAfter 초 단위 정수 또는 HTTP-date 형식의 Retry-After 값을 해석합니다.
func parseRetryAfter(v string) (time.Duration, bool) {
	v = strings.TrimSpace(v)
	if v == "" {
		return 0, false
	}

	if secs, err := strconv.Atoi(v); err == nil {
		if secs < 0 {
			return 0, false
		}
		return time.Duration(secs) * time.Second, true
	}

	if t, err := http.ParseTime(v); err == nil {
		return max(time.Until(t), 0), true
	}
	return 0, false
}

func isRetryableStatus(code int) bool {
	switch code {
	case http.StatusRequestTimeout, http.StatusTooManyRequests:
		return true
	case http.StatusNotImplemented, http.StatusHTTPVersionNotSupported, http.StatusNetworkAuthenticationRequired:
		return false
	}
	return code >= 500 && code <= 599
}

// parserFor Content-Type을 우선으로, 없거나 모호하면 URL 경로의 확장자로 문서 형식을 결정합니다.
func parserFor(contentType, urlPath string) (func([]byte) (Document, error), error) {
	if mediaType, _, err := mime.ParseMediaType(contentType); err == nil {
		switch {
		case mediaType == "application/json" || strings.HasSuffix(mediaType, "+json"):
			return ParseJSON, nil
		case strings.Contains(mediaType, "yaml"):
			return ParseYAML, nil
		}
	}

	switch strings.ToLower(path.Ext(urlPath)) {
	case ".json", "":
		return ParseJSON, nil
	case ".yaml", ".yml":
		return ParseYAML, nil
	}
	return nil, ErrUnsupportedFormat
}

// redactURL 로그에 남기기 전에 사용자 정보와 쿼리 문자열을 제거합니다.
func redactURL(u *url.URL) string {
	c := *u
	c.User = nil
	if c.RawQuery != "" {
		c.RawQuery = "redacted"
	}
	return c.String()
}

func drainAndClose(body io.ReadCloser) {
	_, _ = io.Copy(io.Discard, io.LimitReader(body, 64*1024))
	_ = body.Close()
}

// IsStatusError err가 원격 카탈로그 서버의 비정상 응답 상태 코드로 인한 에러인지 확인하고 그 코드를 반환합니다.
func IsStatusError(err error) (int, bool) {
	var se *statusError
	if errors.As(err, &se) {
		return se.code, true
	}
	return 0, false
}
