package environment

import (
	"log/slog"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type EnvConfig struct {
	// NatsUrl is the invocation request transport.
	NatsUrl string
	// Subject the serve loop subscribes to.
	Subject string

	// WorkspaceDir is the default cwd for invocations; empty means
	// pick the first existing of the fixed workspace candidates.
	WorkspaceDir string

	// DefaultTimeout bounds invocations whose request carries none.
	DefaultTimeout time.Duration

	// MaxInFlight bounds concurrent invocations in the serve loop.
	// The gateway itself imposes no limit.
	MaxInFlight int64

	// TranscriptDir is where invocation transcripts are archived.
	TranscriptDir string
}

func ReadEnvConfig() *EnvConfig {
	// .env is optional outside local development.
	if err := godotenv.Load(); err != nil {
		slog.Debug("no .env file loaded", "err", err)
	}

	result := &EnvConfig{
		NatsUrl:        getenv("TITOD_NATS_URL", "nats://localhost:4222"),
		Subject:        getenv("TITOD_SUBJECT", "titod.invoke"),
		WorkspaceDir:   os.Getenv("TITOD_WORKSPACE"),
		DefaultTimeout: 60 * time.Second,
		MaxInFlight:    4,
		TranscriptDir:  os.Getenv("TITOD_TRANSCRIPT_DIR"),
	}

	if v := os.Getenv("TITOD_TIMEOUT_MS"); v != "" {
		ms, err := strconv.ParseInt(v, 10, 64)
		if err != nil || ms <= 0 {
			slog.Warn("ignoring invalid TITOD_TIMEOUT_MS", "value", v)
		} else {
			result.DefaultTimeout = time.Duration(ms) * time.Millisecond
		}
	}

	if v := os.Getenv("TITOD_MAX_IN_FLIGHT"); v != "" {
		n, err := strconv.ParseInt(v, 10, 64)
		if err != nil || n <= 0 {
			slog.Warn("ignoring invalid TITOD_MAX_IN_FLIGHT", "value", v)
		} else {
			result.MaxInFlight = n
		}
	}

	return result
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
