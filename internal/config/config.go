package config

import (
	"log/slog"
	"os"
	"strings"
)

type Config struct {
	Port        string
	ServiceName string
	LogLevel    slog.Level
	FreeBusyURL string
	Database    *DatabaseConfig
	Redis       *RedisConfig
	Scheduling  *SchedulingConfig
}

func Load() (*Config, error) {
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	serviceName := os.Getenv("SERVICE_NAME")
	if serviceName == "" {
		serviceName = "interview-availability"
	}

	redisConfig, err := LoadRedisConfig()
	if err != nil {
		return nil, err
	}

	schedulingConfig, err := LoadSchedulingConfig()
	if err != nil {
		return nil, err
	}

	return &Config{
		Port:        port,
		ServiceName: serviceName,
		LogLevel:    parseLogLevel(os.Getenv("LOG_LEVEL")),
		FreeBusyURL: os.Getenv("FREE_BUSY_URL"),
		Database:    LoadDatabaseConfig(),
		Redis:       redisConfig,
		Scheduling:  schedulingConfig,
	}, nil
}

func parseLogLevel(level string) slog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
