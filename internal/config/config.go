package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

const (
	// AppName is the name of the application
	AppName = "netconnect"
	// StartupLabel is the name used for OS startup entries (registry value,
	// desktop entry, LaunchAgent label suffix).
	StartupLabel = "NetConnect"

	// DefaultDetectURL is probed to decide whether a captive portal is in the way.
	DefaultDetectURL = "http://detectportal.firefox.com/success.txt"
	// DefaultLoginURL is the portal login endpoint credentials are posted to.
	DefaultLoginURL = "http://phc.prontonetworks.com/cgi-bin/authlogin?URI=http://detectportal.firefox.com/canonical.html"
	// DefaultServiceName is the service identifier the portal gateway expects.
	DefaultServiceName = "ProntoAuthentication"

	// DefaultConnectTimeoutSec bounds how long we poll for the SSID to come up.
	DefaultConnectTimeoutSec = 30
)

// Config holds the application's configuration.
type Config struct {
	homeDir string
}

// New creates a new Config instance.
var New = func() (*Config, error) {
	var home string
	var err error

	// Check for the override environment variable first.
	// This is useful for testing.
	homeOverride := os.Getenv("NETCONNECT_HOME")
	if homeOverride != "" {
		home = homeOverride
	} else {
		home, err = os.UserHomeDir()
		if err != nil {
			return nil, err
		}
	}

	return &Config{homeDir: home}, nil
}

// GetHomeDir returns the user's home directory (or its test override).
func (c *Config) GetHomeDir() string {
	return c.homeDir
}

// GetAppDir returns the path to the application's hidden directory.
func (c *Config) GetAppDir() string {
	return filepath.Join(c.homeDir, "."+AppName)
}

// GetProfilesDir returns the directory holding per-network credential files.
func (c *Config) GetProfilesDir() string {
	return filepath.Join(c.GetAppDir(), "profiles")
}

// GetLogsDir returns the directory holding application logs.
func (c *Config) GetLogsDir() string {
	return filepath.Join(c.GetAppDir(), "logs")
}

// GetLogPath returns the path of the application log file.
func (c *Config) GetLogPath() string {
	return filepath.Join(c.GetLogsDir(), AppName+".log")
}

// GetSettingsPath returns the path of the settings file.
func (c *Config) GetSettingsPath() string {
	return filepath.Join(c.GetAppDir(), "settings.yaml")
}

// SetHomeDir sets the application's home directory.
func (c *Config) SetHomeDir(dir string) {
	c.homeDir = dir
}

// Portal holds the captive portal endpoints and form contract.
type Portal struct {
	DetectURL   string `yaml:"detect_url"`
	LoginURL    string `yaml:"login_url"`
	ServiceName string `yaml:"service_name"`
}

// Settings holds the user-editable application settings.
type Settings struct {
	// DefaultSSID is preferred by `connect` when no SSID argument is given.
	DefaultSSID       string `yaml:"default_ssid,omitempty"`
	ConnectTimeoutSec int    `yaml:"connect_timeout_sec"`
	Portal            Portal `yaml:"portal"`
}

// DefaultSettings returns the settings used when no settings file exists yet.
func DefaultSettings() *Settings {
	return &Settings{
		ConnectTimeoutSec: DefaultConnectTimeoutSec,
		Portal: Portal{
			DetectURL:   DefaultDetectURL,
			LoginURL:    DefaultLoginURL,
			ServiceName: DefaultServiceName,
		},
	}
}

// LoadSettings reads the settings file, creating it with defaults on first run.
var LoadSettings = func(c *Config) (*Settings, error) {
	path := c.GetSettingsPath()
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			s := DefaultSettings()
			if err := SaveSettings(c, s); err != nil {
				return nil, err
			}
			return s, nil
		}
		return nil, err
	}

	s := DefaultSettings()
	if err := yaml.Unmarshal(data, s); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	if s.ConnectTimeoutSec <= 0 {
		s.ConnectTimeoutSec = DefaultConnectTimeoutSec
	}
	return s, nil
}

// SaveSettings writes the settings file, creating the app directory if needed.
var SaveSettings = func(c *Config, s *Settings) error {
	if err := os.MkdirAll(c.GetAppDir(), 0755); err != nil {
		return fmt.Errorf("failed to create app directory: %w", err)
	}
	data, err := yaml.Marshal(s)
	if err != nil {
		return fmt.Errorf("failed to marshal settings: %w", err)
	}
	return os.WriteFile(c.GetSettingsPath(), data, 0644)
}
