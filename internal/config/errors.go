package config

import "errors"

var (
	ErrRedisAddrMissing      = errors.New("REDIS_ADDR is required")
	ErrInvalidRedisDB        = errors.New("REDIS_DB must be a valid integer")
	ErrInvalidCacheTTL       = errors.New("BUSY_CACHE_TTL_SECONDS must be a non-negative integer")
	ErrDatabaseURLMissing    = errors.New("DATABASE_URL is required")
	ErrFreeBusyURLMissing    = errors.New("FREE_BUSY_URL environment variable is required")
	ErrInvalidBusinessWindow = errors.New("BUSINESS_START_HOUR must be earlier than BUSINESS_END_HOUR")
	ErrInvalidSlotStep       = errors.New("SLOT_STEP_MINUTES must be a positive divisor of 60")
)
