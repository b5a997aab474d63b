package config

import "os"

const databaseURLEnv = "DATABASE_URL"

type DatabaseConfig struct {
	URL string
}

func LoadDatabaseConfig() *DatabaseConfig {
	return &DatabaseConfig{
		URL: os.Getenv(databaseURLEnv),
	}
}

func (c *DatabaseConfig) Validate() error {
	if c == nil || c.URL == "" {
		return ErrDatabaseURLMissing
	}
	return nil
}
