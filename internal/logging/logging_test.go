package logging

import (
	"testing"

	"go.uber.org/zap/zapcore"
)

func TestNew(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		level   zapcore.Level
		wantErr bool
	}{
		{"defaults", Config{}, zapcore.InfoLevel, false},
		{"debug console", Config{Level: "debug", Format: "console"}, zapcore.DebugLevel, false},
		{"upper case", Config{Level: "WARN", Format: "JSON"}, zapcore.WarnLevel, false},
		{"bad level", Config{Level: "loud"}, 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			logger, err := New(tt.cfg)
			if (err != nil) != tt.wantErr {
				t.Fatalf("New(%+v) error = %v, wantErr %v", tt.cfg, err, tt.wantErr)
			}
			if tt.wantErr {
				return
			}
			if !logger.Core().Enabled(tt.level) {
				t.Errorf("level %v not enabled", tt.level)
			}
			if tt.level > zapcore.DebugLevel && logger.Core().Enabled(tt.level-1) {
				t.Errorf("level %v enabled below %v", tt.level-1, tt.level)
			}
		})
	}
}

func TestFromEnv(t *testing.T) {
	t.Setenv("WGPROV_LOG_LEVEL", "")
	t.Setenv("WGPROV_LOG_FORMAT", "")
	cfg := FromEnv()
	if cfg.Level != "info" || cfg.Format != "json" {
		t.Errorf("FromEnv() = %+v, want info/json", cfg)
	}

	t.Setenv("WGPROV_LOG_LEVEL", "debug")
	t.Setenv("WGPROV_LOG_FORMAT", "console")
	cfg = FromEnv()
	if cfg.Level != "debug" || cfg.Format != "console" {
		t.Errorf("FromEnv() = %+v, want debug/console", cfg)
	}
}
