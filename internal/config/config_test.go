package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	assert.Equal(t, 5, cfg.Workers)
	assert.Equal(t, 30*time.Minute, cfg.StatusTimeout)
	assert.Equal(t, 10*time.Second, cfg.PollInterval)
}

func TestLoadWithoutFile(t *testing.T) {
	t.Setenv("MAAS_PROFILE", "")
	t.Setenv("MAAS_WORKERS", "")
	t.Setenv("MAAS_TIMEOUT_STATUS", "")
	t.Setenv("MAAS_POLL_INTERVAL", "")

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "maasbatch.yaml")
	content := "profile: admin\ncloud_init: ci.yaml\nworkers: 3\nstatus_timeout: 15m\npoll_interval: 5s\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "admin", cfg.Profile)
	assert.Equal(t, "ci.yaml", cfg.CloudInitPath)
	assert.Equal(t, 3, cfg.Workers)
	assert.Equal(t, 15*time.Minute, cfg.StatusTimeout)
	assert.Equal(t, 5*time.Second, cfg.PollInterval)
}

func TestLoadFilePartial(t *testing.T) {
	// Unset file fields keep their defaults.
	path := filepath.Join(t.TempDir(), "maasbatch.yaml")
	require.NoError(t, os.WriteFile(path, []byte("workers: 2\n"), 0o600))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 2, cfg.Workers)
	assert.Equal(t, DefaultStatusTimeout, cfg.StatusTimeout)
	assert.Equal(t, DefaultPollInterval, cfg.PollInterval)
}

func TestLoadFileErrors(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{name: "bad yaml", content: "workers: [unterminated\n"},
		{name: "bad duration", content: "status_timeout: fifteen minutes\n"},
		{name: "bad interval", content: "poll_interval: 10 potatoes\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "maasbatch.yaml")
			require.NoError(t, os.WriteFile(path, []byte(tt.content), 0o600))

			_, err := Load(path)
			assert.Error(t, err)
		})
	}
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestEnvOverrides(t *testing.T) {
	t.Setenv("MAAS_PROFILE", "env-admin")
	t.Setenv("MAAS_WORKERS", "7")
	t.Setenv("MAAS_TIMEOUT_STATUS", "20m")
	t.Setenv("MAAS_POLL_INTERVAL", "2s")

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, "env-admin", cfg.Profile)
	assert.Equal(t, 7, cfg.Workers)
	assert.Equal(t, 20*time.Minute, cfg.StatusTimeout)
	assert.Equal(t, 2*time.Second, cfg.PollInterval)
}

func TestEnvOverridesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "maasbatch.yaml")
	require.NoError(t, os.WriteFile(path, []byte("workers: 2\n"), 0o600))

	t.Setenv("MAAS_WORKERS", "9")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 9, cfg.Workers)
}

func TestEnvInvalidValuesIgnored(t *testing.T) {
	t.Setenv("MAAS_WORKERS", "many")
	t.Setenv("MAAS_TIMEOUT_STATUS", "soon")

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, DefaultWorkers, cfg.Workers)
	assert.Equal(t, DefaultStatusTimeout, cfg.StatusTimeout)
}

func TestValidate(t *testing.T) {
	valid := func() *Config {
		cfg := Default()
		cfg.Profile = "admin"
		cfg.CSVPath = "inventory.csv"
		return cfg
	}

	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{name: "valid", mutate: func(_ *Config) {}},
		{
			name:    "missing profile",
			mutate:  func(c *Config) { c.Profile = "" },
			wantErr: "profile is required",
		},
		{
			name:    "missing inventory",
			mutate:  func(c *Config) { c.CSVPath = "" },
			wantErr: "inventory path is required",
		},
		{
			name:    "zero workers",
			mutate:  func(c *Config) { c.Workers = 0 },
			wantErr: "workers must be at least 1",
		},
		{
			name:    "negative timeout",
			mutate:  func(c *Config) { c.StatusTimeout = -time.Second },
			wantErr: "status timeout must be positive",
		},
		{
			name:    "zero interval",
			mutate:  func(c *Config) { c.PollInterval = 0 },
			wantErr: "poll interval must be positive",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid()
			tt.mutate(cfg)

			err := cfg.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}
