package config

import (
	"os"
	"strconv"
	"time"
)

const (
	redisAddrEnv     = "REDIS_ADDR"
	redisPasswordEnv = "REDIS_PASSWORD"
	redisDBEnv       = "REDIS_DB"
	busyCacheTTLEnv  = "BUSY_CACHE_TTL_SECONDS"

	defaultRedisAddr           = "localhost:6379"
	defaultRedisDB             = 0
	defaultBusyCacheTTLSeconds = 60
)

type RedisConfig struct {
	Addr     string
	Password string
	DB       int

	// BusyCacheTTL bounds how long provider busy data may be served from
	// cache. Zero disables caching entirely.
	BusyCacheTTL time.Duration
}

func LoadRedisConfig() (*RedisConfig, error) {
	addr := os.Getenv(redisAddrEnv)
	if addr == "" {
		addr = defaultRedisAddr
	}

	password := os.Getenv(redisPasswordEnv)

	db := defaultRedisDB
	if raw := os.Getenv(redisDBEnv); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			return nil, ErrInvalidRedisDB
		}
		db = parsed
	}

	ttlSeconds := defaultBusyCacheTTLSeconds
	if raw := os.Getenv(busyCacheTTLEnv); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 0 {
			return nil, ErrInvalidCacheTTL
		}
		ttlSeconds = parsed
	}

	return &RedisConfig{
		Addr:         addr,
		Password:     password,
		DB:           db,
		BusyCacheTTL: time.Duration(ttlSeconds) * time.Second,
	}, nil
}

func (c *RedisConfig) Validate() error {
	if c == nil || c.Addr == "" {
		return ErrRedisAddrMissing
	}
	return nil
}
