package config

import (
	"testing"
)

func TestDefault(t *testing.T) {
	cfg := Default()
	if cfg.PoolPath != "../share/passchars" {
		t.Errorf("PoolPath = %q", cfg.PoolPath)
	}
	if cfg.Script != "../wireguard/add-client.sh" {
		t.Errorf("Script = %q", cfg.Script)
	}
	if cfg.Shell != "sh" {
		t.Errorf("Shell = %q", cfg.Shell)
	}
	if cfg.DBPath != "" {
		t.Errorf("DBPath = %q, want ledger disabled", cfg.DBPath)
	}
	if cfg.IndexPolicy != "uniform" {
		t.Errorf("IndexPolicy = %q", cfg.IndexPolicy)
	}
}

func TestFromEnv(t *testing.T) {
	t.Setenv("WGPROV_POOL", "/etc/wgprov/passchars")
	t.Setenv("WGPROV_SCRIPT", "/opt/wg/add-client.sh")
	t.Setenv("WGPROV_SHELL", "bash")
	t.Setenv("WGPROV_DB", "/var/lib/wgprov/ledger.db")
	t.Setenv("WGPROV_INDEX_POLICY", "legacy")

	cfg := FromEnv()
	want := Config{
		PoolPath:    "/etc/wgprov/passchars",
		Script:      "/opt/wg/add-client.sh",
		Shell:       "bash",
		DBPath:      "/var/lib/wgprov/ledger.db",
		IndexPolicy: "legacy",
	}
	if *cfg != want {
		t.Errorf("FromEnv() = %+v, want %+v", *cfg, want)
	}
}

func TestFromEnvUnsetKeepsDefaults(t *testing.T) {
	for _, k := range []string{"WGPROV_POOL", "WGPROV_SCRIPT", "WGPROV_SHELL", "WGPROV_DB", "WGPROV_INDEX_POLICY"} {
		t.Setenv(k, "")
	}
	if got, want := *FromEnv(), *Default(); got != want {
		t.Errorf("FromEnv() = %+v, want %+v", got, want)
	}
}
