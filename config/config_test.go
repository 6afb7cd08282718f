package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/rdpitts/minfraud/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv(EnvLicenseKey, "abcd1234")
	t.Setenv(EnvRequestedType, "premium")
	t.Setenv(EnvRegion, "us_west")
	t.Setenv(EnvTimeoutSeconds, "2.5")
	t.Setenv(EnvEnableMetrics, "true")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "abcd1234", cfg.LicenseKey)
	assert.Equal(t, types.TierPremium, cfg.RequestedType)
	assert.Equal(t, "us_west", cfg.Region)
	assert.Equal(t, 2500*time.Millisecond, cfg.DefaultTimeout)
	assert.True(t, cfg.EnableMetrics)
	assert.True(t, cfg.HasRequiredConfiguration())
}

func TestLoadRequiresLicenseKey(t *testing.T) {
	t.Setenv(EnvLicenseKey, "")

	_, err := Load()
	require.Error(t, err)
	assert.ErrorIs(t, err, types.ErrConfiguration)
	assert.Contains(t, err.Error(), "license_key")
}

func TestLoadRejectsBadValues(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
	}{
		{"timeout", map[string]string{EnvTimeoutSeconds: "soon"}},
		{"negative timeout", map[string]string{EnvTimeoutSeconds: "-1"}},
		{"metrics flag", map[string]string{EnvEnableMetrics: "maybe"}},
		{"tier", map[string]string{EnvRequestedType: "gold"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := map[string]string{EnvLicenseKey: "k"}
			for k, v := range tt.env {
				env[k] = v
			}
			_, err := build(func(key string) string { return env[key] })
			assert.ErrorIs(t, err, types.ErrConfiguration)
		})
	}
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "minfraud.env")
	require.NoError(t, os.WriteFile(path, []byte("MINFRAUD_LICENSE_KEY=from-file\nMINFRAUD_REQUESTED_TYPE=standard\n"), 0o600))

	cfg, err := LoadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "from-file", cfg.LicenseKey)
	assert.Equal(t, types.TierStandard, cfg.RequestedType)

	_, err = LoadFile(filepath.Join(t.TempDir(), "missing.env"))
	assert.ErrorIs(t, err, types.ErrConfiguration)
}
