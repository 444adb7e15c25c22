package main

import (
	"context"
	"fmt"

	"github.com/darkkaiser/lensyz-store/internal/catalog"
	"github.com/darkkaiser/lensyz-store/internal/config"
	apperrors "github.com/darkkaiser/lensyz-store/internal/pkg/errors"
	"github.com/darkkaiser/lensyz-store/internal/state"
	applog "github.com/darkkaiser/lensyz-store/pkg/log"
	"github.com/go-redis/redis/v8"
)

// newLogOptions debug 설정에 맞는 로그 프로필을 고르고, log_level이 지정되어 있으면 레벨을 덮어씁니다.
func newLogOptions(c *config.AppConfig) applog.Options {
	var opts applog.Options
	if c.Debug {
		opts = applog.NewDevelopmentOptions(config.AppName)
	} else {
		opts = applog.NewProductionOptions(config.AppName)
	}

	if c.LogLevel != "" {
		// 설정 검증을 통과한 값이므로 실패하지 않는다.
		if level, err := applog.ParseLevel(c.LogLevel); err == nil {
			opts.Level = level
		}
	}
	return opts
}

// newCatalogSource 설정에 맞는 카탈로그 공급원을 생성합니다.
func newCatalogSource(c config.CatalogConfig) catalog.Source {
	switch c.Source {
	case config.CatalogSourceFile:
		return catalog.FileSource{Path: c.Path}
	case config.CatalogSourceURL:
		return catalog.URLSource{
			URL:        c.URL,
			MaxRetries: catalog.DefaultMaxRetries,
		}
	default:
		return catalog.EmbeddedSource{}
	}
}

// newStateStore 설정된 백엔드로 상태 저장소를 생성합니다.
//
// 반환되는 closeFn은 저장소가 보유한 외부 연결을 정리하며 항상 nil이 아닙니다.
func newStateStore(ctx context.Context, c config.StorageConfig) (store state.Store, closeFn func() error, err error) {
	noop := func() error { return nil }

	switch c.Backend {
	case config.StorageBackendMemory:
		return state.NewMemoryStore(), noop, nil

	case config.StorageBackendRedis:
		client := redis.NewUniversalClient(&redis.UniversalOptions{
			Addrs:    []string{c.Redis.Addr},
			Password: c.Redis.Password,
			DB:       c.Redis.DB,
		})

		s := state.NewRedisStore(client, state.RedisStoreConfig{
			KeyPrefix: c.Redis.KeyPrefix,
			Timeout:   c.Redis.Timeout,
			TTL:       c.Redis.TTL,
		})

		if err := s.Ping(ctx); err != nil {
			_ = s.Close()
			return nil, noop, apperrors.Wrap(err, apperrors.Unavailable, fmt.Sprintf("Redis 상태 저장소(%s)에 연결할 수 없습니다", c.Redis.Addr))
		}

		applog.WithComponentAndFields(component, applog.Fields{
			"addr": c.Redis.Addr,
			"db":   c.Redis.DB,
		}).Info("Redis 상태 저장소 연결 완료")

		return s, s.Close, nil

	default:
		s, err := state.NewFileStore(c.Dir)
		if err != nil {
			return nil, noop, err
		}

		applog.WithComponentAndFields(component, applog.Fields{
			"dir": s.Dir(),
		}).Info("파일 상태 저장소 준비 완료")

		return s, noop, nil
	}
}
