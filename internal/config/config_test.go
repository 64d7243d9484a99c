package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewUsesHomeOverride(t *testing.T) {
	tempDir := t.TempDir()
	t.Setenv("NETCONNECT_HOME", tempDir)

	cfg, err := New()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(tempDir, ".netconnect"), cfg.GetAppDir())
	assert.Equal(t, filepath.Join(tempDir, ".netconnect", "profiles"), cfg.GetProfilesDir())
	assert.Equal(t, filepath.Join(tempDir, ".netconnect", "logs", "netconnect.log"), cfg.GetLogPath())
}

func TestLoadSettingsCreatesDefaults(t *testing.T) {
	cfg := &Config{}
	cfg.SetHomeDir(t.TempDir())

	s, err := LoadSettings(cfg)
	require.NoError(t, err)
	assert.Equal(t, DefaultDetectURL, s.Portal.DetectURL)
	assert.Equal(t, DefaultServiceName, s.Portal.ServiceName)
	assert.Equal(t, DefaultConnectTimeoutSec, s.ConnectTimeoutSec)

	// First load should have written the file.
	_, err = os.Stat(cfg.GetSettingsPath())
	assert.NoError(t, err)
}

func TestLoadSettingsRoundTrip(t *testing.T) {
	cfg := &Config{}
	cfg.SetHomeDir(t.TempDir())

	s := DefaultSettings()
	s.DefaultSSID = "G-VIT"
	s.ConnectTimeoutSec = 45
	require.NoError(t, SaveSettings(cfg, s))

	loaded, err := LoadSettings(cfg)
	require.NoError(t, err)
	assert.Equal(t, "G-VIT", loaded.DefaultSSID)
	assert.Equal(t, 45, loaded.ConnectTimeoutSec)
}

func TestLoadSettingsInvalidYAML(t *testing.T) {
	cfg := &Config{}
	cfg.SetHomeDir(t.TempDir())

	require.NoError(t, os.MkdirAll(cfg.GetAppDir(), 0755))
	require.NoError(t, os.WriteFile(cfg.GetSettingsPath(), []byte("portal: ["), 0644))

	_, err := LoadSettings(cfg)
	assert.Error(t, err)
}
