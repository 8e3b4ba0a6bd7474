// Package config holds the paths and options a provisioning run needs.
package config

import (
	"os"

	"github.com/rsclarke/wgprov/internal/pool"
)

const (
	DefaultScript      = "../wireguard/add-client.sh"
	DefaultShell       = "sh"
	DefaultIndexPolicy = "uniform"
)

type Config struct {
	PoolPath    string
	Script      string
	Shell       string
	DBPath      string
	IndexPolicy string
}

// Default returns the built-in configuration. The issuance ledger is off.
func Default() *Config {
	return &Config{
		PoolPath:    pool.DefaultPath,
		Script:      DefaultScript,
		Shell:       DefaultShell,
		IndexPolicy: DefaultIndexPolicy,
	}
}

// FromEnv returns Default overlaid with any WGPROV_* variables that are set.
func FromEnv() *Config {
	cfg := Default()
	cfg.PoolPath = getEnv("WGPROV_POOL", cfg.PoolPath)
	cfg.Script = getEnv("WGPROV_SCRIPT", cfg.Script)
	cfg.Shell = getEnv("WGPROV_SHELL", cfg.Shell)
	cfg.DBPath = getEnv("WGPROV_DB", cfg.DBPath)
	cfg.IndexPolicy = getEnv("WGPROV_INDEX_POLICY", cfg.IndexPolicy)
	return cfg
}

func getEnv(key, defaultVal string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return defaultVal
}
