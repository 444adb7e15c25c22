package state

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	applog "github.com/darkkaiser/lensyz-store/pkg/log"
	"github.com/go-redis/redis/v8"
)

// componentRedis Redis 저장소 로깅용 컴포넌트 이름
const componentRedis = "state.redis"

// DefaultRedisKeyPrefix Redis 키 접두사 기본값
const DefaultRedisKeyPrefix = "lensyz:state"

// DefaultRedisTimeout Redis 요청 하나에 허용하는 기본 시간
const DefaultRedisTimeout = 3 * time.Second

// RedisStoreConfig RedisStore 설정입니다.
type RedisStoreConfig struct {
	// KeyPrefix 모든 키 앞에 붙는 접두사. 예: "lensyz:state" -> "lensyz:state:cart"
	KeyPrefix string

	// Timeout 요청 하나에 허용하는 시간. 호출자의 ctx에 더 짧은 기한이 있으면 그것을 따릅니다.
	Timeout time.Duration

	// TTL 0이면 만료되지 않습니다.
	TTL time.Duration
}

// RedisStore 키마다 JSON 문자열 하나를 저장하는 Redis 기반 저장소입니다.
type RedisStore struct {
	client redis.UniversalClient
	config RedisStoreConfig
}

var _ Store = (*RedisStore)(nil)

// NewRedisStore 연결된 Redis 클라이언트로 RedisStore를 생성합니다.
func NewRedisStore(client redis.UniversalClient, config RedisStoreConfig) *RedisStore {
	if config.KeyPrefix == "" {
		config.KeyPrefix = DefaultRedisKeyPrefix
	}
	if config.Timeout <= 0 {
		config.Timeout = DefaultRedisTimeout
	}
	if config.TTL < 0 {
		config.TTL = 0
	}

	return &RedisStore{
		client: client,
		config: config,
	}
}

// Ping Redis 서버 연결을 확인합니다.
func (s *RedisStore) Ping(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, s.config.Timeout)
	defer cancel()

	if err := s.client.Ping(ctx).Err(); err != nil {
		return classifyRedisError(err, "ping", newErrReadFailed)
	}
	return nil
}

func (s *RedisStore) redisKey(key string) string {
	return s.config.KeyPrefix + ":" + key
}

func (s *RedisStore) Load(ctx context.Context, key string, v any) error {
	if err := checkTarget(v); err != nil {
		return err
	}
	if err := checkKey(key); err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(ctx, s.config.Timeout)
	defer cancel()

	data, err := s.client.Get(ctx, s.redisKey(key)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return ErrNotFound
		}
		return classifyRedisError(err, key, newErrReadFailed)
	}

	if err := json.Unmarshal(data, v); err != nil {
		return newErrUnmarshalFailed(err, key)
	}
	return nil
}

func (s *RedisStore) Save(ctx context.Context, key string, v any) error {
	if err := checkKey(key); err != nil {
		return err
	}

	data, err := json.Marshal(v)
	if err != nil {
		return newErrMarshalFailed(err, key)
	}

	ctx, cancel := context.WithTimeout(ctx, s.config.Timeout)
	defer cancel()

	if err := s.client.Set(ctx, s.redisKey(key), data, s.config.TTL).Err(); err != nil {
		return classifyRedisError(err, key, newErrWriteFailed)
	}
	return nil
}

func (s *RedisStore) Delete(ctx context.Context, key string) error {
	if err := checkKey(key); err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(ctx, s.config.Timeout)
	defer cancel()

	if err := s.client.Del(ctx, s.redisKey(key)).Err(); err != nil {
		return classifyRedisError(err, key, newErrDeleteFailed)
	}
	return nil
}

// Close Redis 클라이언트 연결을 닫습니다.
func (s *RedisStore) Close() error {
	return s.client.Close()
}

// classifyRedisError 시간 초과는 Timeout 에러로, 나머지는 wrap으로 감싸서 반환합니다.
func classifyRedisError(err error, key string, wrap func(error, string) error) error {
	applog.WithComponentAndFields(componentRedis, applog.Fields{
		"key":   key,
		"error": err,
	}).Warn("Redis 요청 실패")

	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
		return newErrTimeout(err, key)
	}
	return wrap(err, key)
}
