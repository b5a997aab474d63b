package config

func ValidateForRun(cfg *Config) error {
	if cfg.FreeBusyURL == "" {
		return ErrFreeBusyURLMissing
	}
	if err := cfg.Database.Validate(); err != nil {
		return err
	}
	if err := cfg.Redis.Validate(); err != nil {
		return err
	}
	return cfg.Scheduling.Validate()
}
