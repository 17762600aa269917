// Package logging builds the zap loggers used by the commands.
package logging

import (
	"os"
	"strings"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

const (
	EnvLogLevel = "HUMANIZE_LOG_LEVEL"
	EnvLogJSON  = "HUMANIZE_LOG_JSON"
	EnvFile     = ".env"
)

// LoadEnv loads variables from an env file if it exists. Variables already
// set in the environment win.
func LoadEnv(path string) error {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil
	}
	return godotenv.Load(path)
}

// New returns a console logger at info level, or debug level when verbose is
// set. HUMANIZE_LOG_LEVEL and HUMANIZE_LOG_JSON override the defaults.
func New(verbose bool) (*zap.Logger, error) {
	cfg := zap.NewDevelopmentConfig()
	cfg.DisableStacktrace = true
	cfg.Level = zap.NewAtomicLevelAt(zapcore.InfoLevel)
	if verbose {
		cfg.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	}

	applyEnvOverrides(&cfg)
	return cfg.Build()
}

func applyEnvOverrides(cfg *zap.Config) {
	if lvl, ok := parseLevel(os.Getenv(EnvLogLevel)); ok {
		cfg.Level = zap.NewAtomicLevelAt(lvl)
	}
	if parseBool(os.Getenv(EnvLogJSON)) {
		cfg.Encoding = "json"
		cfg.EncoderConfig = zap.NewProductionEncoderConfig()
	}
}

func parseLevel(raw string) (zapcore.Level, bool) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return zapcore.InfoLevel, false
	}

	var lvl zapcore.Level
	if err := lvl.UnmarshalText([]byte(strings.ToLower(raw))); err != nil {
		return zapcore.InfoLevel, false
	}
	return lvl, true
}

func parseBool(raw string) bool {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "1", "true", "yes", "on":
		return true
	}
	return false
}
