// Package logging provides structured logging configuration.
package logging

import (
	"os"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Config holds logging configuration options.
type Config struct {
	Level  string // debug|info|warn|error
	Format string // json|console
}

// New creates a new configured zap logger. Output goes to stderr so stdout
// stays free for command output.
func New(cfg Config) (*zap.Logger, error) {
	level := zapcore.InfoLevel
	if cfg.Level != "" {
		if err := level.Set(strings.ToLower(cfg.Level)); err != nil {
			return nil, err
		}
	}

	format := strings.ToLower(cfg.Format)
	if format == "" {
		format = "json"
	}

	var zcfg zap.Config
	if format == "console" {
		zcfg = zap.NewDevelopmentConfig()
	} else {
		zcfg = zap.NewProductionConfig()
	}

	zcfg.Level = zap.NewAtomicLevelAt(level)
	zcfg.OutputPaths = []string{"stderr"}
	zcfg.EncoderConfig.TimeKey = "ts"
	zcfg.EncoderConfig.LevelKey = "level"
	zcfg.EncoderConfig.MessageKey = "msg"
	zcfg.EncoderConfig.CallerKey = "caller"
	zcfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

	logger, err := zcfg.Build(zap.AddCaller())
	if err != nil {
		return nil, err
	}

	logger = logger.With(zap.String("service", "wgprov"))

	return logger, nil
}

// Sync flushes any buffered log entries.
func Sync(logger *zap.Logger) {
	_ = logger.Sync()
}

// FromEnv creates a Config from environment variables.
func FromEnv() Config {
	return Config{
		Level:  getenv("WGPROV_LOG_LEVEL", "info"),
		Format: getenv("WGPROV_LOG_FORMAT", "json"),
	}
}

func getenv(key, defaultVal string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return defaultVal
}

// Username returns a zap field for the provisioned user.
func Username(name string) zap.Field { return zap.String("username", name) }

// Path returns a zap field for a file path.
func Path(path string) zap.Field { return zap.String("path", path) }

// Script returns a zap field for the provisioning script path.
func Script(script string) zap.Field { return zap.String("script", script) }

// Shell returns a zap field for the interpreter running the script.
func Shell(shell string) zap.Field { return zap.String("shell", shell) }

// ExitCode returns a zap field for a process exit code.
func ExitCode(code int) zap.Field { return zap.Int("exit_code", code) }

// PoolSize returns a zap field for the number of pool characters.
func PoolSize(n int) zap.Field { return zap.Int("pool_size", n) }

// Policy returns a zap field for the password index policy.
func Policy(policy string) zap.Field { return zap.String("index_policy", policy) }

// IssuanceID returns a zap field for a ledger entry ID.
func IssuanceID(id string) zap.Field { return zap.String("issuance_id", id) }
