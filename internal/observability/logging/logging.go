package logging

import (
	"log/slog"
	"os"
)

type Environment string

const (
	EnvDev  Environment = "dev"
	EnvProd Environment = "prod"
)

// Module tags log records with the subsystem that emitted them.
type Module string

type ServiceInfo struct {
	Name     string
	Version  string
	Revision string
}

// NewLogger builds the process-wide slog logger. Production output is JSON;
// dev output is human-readable text.
func NewLogger(level slog.Level, env Environment, info ServiceInfo) *slog.Logger {
	opts := &slog.HandlerOptions{Level: level}

	var handler slog.Handler
	if env == EnvProd {
		handler = slog.NewJSONHandler(os.Stdout, opts)
	} else {
		handler = slog.NewTextHandler(os.Stdout, opts)
	}

	attrs := []slog.Attr{
		slog.String("service", info.Name),
	}
	if info.Version != "" {
		attrs = append(attrs, slog.String("version", info.Version))
	}
	if info.Revision != "" {
		attrs = append(attrs, slog.String("revision", info.Revision))
	}

	return slog.New(handler.WithAttrs(attrs))
}
