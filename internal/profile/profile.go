package profile

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"netconnect/internal/config"
)

// Profile holds the stored credentials for one WiFi network. The WiFi
// password is optional since the OS usually remembers the PSK for known
// networks; the portal credentials are only needed behind a captive portal.
type Profile struct {
	SSID      string `json:"ssid"`
	Password  string `json:"password,omitempty"`
	Username  string `json:"username,omitempty"`
	PortalPwd string `json:"portal_password,omitempty"`
	// Interface is the network service name used by networksetup on macOS.
	Interface string `json:"interface,omitempty"`
}

// fileName maps an SSID to a safe file name. SSIDs may contain path
// separators or other characters that are not valid in file names.
func fileName(ssid string) string {
	r := strings.NewReplacer("/", "_", "\\", "_", ":", "_", "\x00", "_")
	return r.Replace(ssid) + ".json"
}

func profilePath(cfg *config.Config, ssid string) string {
	return filepath.Join(cfg.GetProfilesDir(), fileName(ssid))
}

// Save writes a network profile to disk. Credential files are only readable
// by the owning user.
var Save = func(cfg *config.Config, p *Profile) error {
	if p.SSID == "" {
		return fmt.Errorf("profile has no SSID")
	}

	data, err := json.MarshalIndent(p, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal profile: %w", err)
	}

	if err := os.MkdirAll(cfg.GetProfilesDir(), 0700); err != nil {
		return fmt.Errorf("failed to create profiles directory: %w", err)
	}

	return os.WriteFile(profilePath(cfg, p.SSID), data, 0600)
}

// Load reads the profile for the given SSID.
var Load = func(cfg *config.Config, ssid string) (*Profile, error) {
	data, err := os.ReadFile(profilePath(cfg, ssid))
	if err != nil {
		return nil, err
	}

	var p Profile
	if err := json.Unmarshal(data, &p); err != nil {
		return nil, fmt.Errorf("failed to unmarshal profile for %s: %w", ssid, err)
	}
	return &p, nil
}

// Find reports the SSID if a profile for it exists, or "" if not.
var Find = func(cfg *config.Config, ssid string) (string, error) {
	if _, err := os.Stat(profilePath(cfg, ssid)); err == nil {
		return ssid, nil
	}
	return "", nil
}

// Delete removes the profile for the given SSID. Deleting a profile that
// does not exist is not an error.
var Delete = func(cfg *config.Config, ssid string) error {
	path := profilePath(cfg, ssid)
	if _, err := os.Stat(path); err == nil {
		return os.Remove(path)
	}
	return nil
}

// GetAll returns all saved profiles keyed by SSID. Malformed profile files
// are skipped.
var GetAll = func(cfg *config.Config) (map[string]*Profile, error) {
	all := make(map[string]*Profile)

	files, err := os.ReadDir(cfg.GetProfilesDir())
	if err != nil {
		if os.IsNotExist(err) {
			return all, nil // No directory means no saved networks
		}
		return nil, err
	}

	for _, file := range files {
		if filepath.Ext(file.Name()) != ".json" {
			continue
		}
		data, err := os.ReadFile(filepath.Join(cfg.GetProfilesDir(), file.Name()))
		if err != nil {
			continue
		}
		var p Profile
		if err := json.Unmarshal(data, &p); err != nil || p.SSID == "" {
			continue
		}
		all[p.SSID] = &p
	}

	return all, nil
}

// HasPortalCredentials reports whether the profile carries a full set of
// captive portal credentials.
func (p *Profile) HasPortalCredentials() bool {
	return p.Username != "" && p.PortalPwd != ""
}
