package cmd

import (
	"fmt"
	"strings"
	"testing"

	"netconnect/internal/config"
	"netconnect/internal/profile"
	"netconnect/internal/wifi"
)

func TestConnectWithSSID(t *testing.T) {
	conn, pc := setupMocks(t)
	pc.captive = true
	addProfile(t, &profile.Profile{SSID: "G-VIT", Username: "21BCE1234", PortalPwd: "hunter2"})

	output, err := executeCommand(rootCmd, "connect", "G-VIT")
	if err != nil {
		t.Fatalf("connect failed: %v\noutput: %s", err, output)
	}

	if conn.connectedTo != "G-VIT" {
		t.Errorf("connected to %q, want G-VIT", conn.connectedTo)
	}
	if pc.loginRuns != 1 {
		t.Errorf("portal login ran %d times, want 1", pc.loginRuns)
	}
	if pc.loginUser != "21BCE1234" || pc.loginPwd != "hunter2" {
		t.Errorf("portal login got creds %q/%q", pc.loginUser, pc.loginPwd)
	}
}

func TestConnectNoPortalNeeded(t *testing.T) {
	_, pc := setupMocks(t)
	pc.captive = false
	addProfile(t, &profile.Profile{SSID: "home"})

	output, err := executeCommand(rootCmd, "connect", "home")
	if err != nil {
		t.Fatalf("connect failed: %v", err)
	}
	if pc.loginRuns != 0 {
		t.Errorf("portal login should not run, ran %d times", pc.loginRuns)
	}
	if !strings.Contains(output, "No captive portal detected") {
		t.Errorf("output missing no-portal message: %s", output)
	}
}

func TestConnectNoPortalFlagSkipsDetection(t *testing.T) {
	_, pc := setupMocks(t)
	pc.captive = true
	addProfile(t, &profile.Profile{SSID: "home"})

	_, err := executeCommand(rootCmd, "connect", "home", "--no-portal")
	if err != nil {
		t.Fatalf("connect failed: %v", err)
	}
	if pc.loginRuns != 0 {
		t.Errorf("portal login should not run with --no-portal, ran %d times", pc.loginRuns)
	}
}

func TestConnectUnknownNetwork(t *testing.T) {
	setupMocks(t)

	_, err := executeCommand(rootCmd, "connect", "stranger")
	if err == nil {
		t.Fatal("expected an error for a network without a profile")
	}
	if !strings.Contains(err.Error(), "no profile") {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestConnectPicksStrongestKnownNetwork(t *testing.T) {
	conn, pc := setupMocks(t)
	pc.captive = false
	addProfile(t, &profile.Profile{SSID: "home"})
	addProfile(t, &profile.Profile{SSID: "campus"})
	// Scan results are sorted strongest first by the wifi package.
	conn.networks = []wifi.Network{
		{SSID: "stranger", Signal: 90},
		{SSID: "campus", Signal: 70},
		{SSID: "home", Signal: 40},
	}

	_, err := executeCommand(rootCmd, "connect")
	if err != nil {
		t.Fatalf("connect failed: %v", err)
	}
	if conn.connectedTo != "campus" {
		t.Errorf("connected to %q, want campus", conn.connectedTo)
	}
}

func TestConnectPrefersDefaultSSID(t *testing.T) {
	conn, pc := setupMocks(t)
	pc.captive = false
	addProfile(t, &profile.Profile{SSID: "home"})
	addProfile(t, &profile.Profile{SSID: "campus"})
	conn.networks = []wifi.Network{
		{SSID: "campus", Signal: 90},
		{SSID: "home", Signal: 40},
	}

	config.LoadSettings = func(c *config.Config) (*config.Settings, error) {
		s := config.DefaultSettings()
		s.DefaultSSID = "home"
		return s, nil
	}

	_, err := executeCommand(rootCmd, "connect")
	if err != nil {
		t.Fatalf("connect failed: %v", err)
	}
	if conn.connectedTo != "home" {
		t.Errorf("connected to %q, want home (default SSID)", conn.connectedTo)
	}
}

func TestConnectNoVisibleKnownNetwork(t *testing.T) {
	conn, _ := setupMocks(t)
	addProfile(t, &profile.Profile{SSID: "home"})
	conn.networks = []wifi.Network{{SSID: "stranger", Signal: 90}}

	_, err := executeCommand(rootCmd, "connect")
	if err == nil {
		t.Fatal("expected an error when no saved network is visible")
	}
}

func TestConnectFailurePropagates(t *testing.T) {
	conn, _ := setupMocks(t)
	conn.connectErr = fmt.Errorf("no wireless interface")
	addProfile(t, &profile.Profile{SSID: "home"})

	_, err := executeCommand(rootCmd, "connect", "home")
	if err == nil {
		t.Fatal("expected the connect error to propagate")
	}
	if !strings.Contains(err.Error(), "no wireless interface") {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestConnectPortalWithoutCredentials(t *testing.T) {
	_, pc := setupMocks(t)
	pc.captive = true
	addProfile(t, &profile.Profile{SSID: "home"})

	_, err := executeCommand(rootCmd, "connect", "home")
	if err == nil {
		t.Fatal("expected an error when a portal is detected without credentials")
	}
	if !strings.Contains(err.Error(), "no portal credentials") {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestConnectDetectErrorFallsBackToLogin(t *testing.T) {
	_, pc := setupMocks(t)
	pc.captive = false
	pc.detectErr = fmt.Errorf("dns hijacked")
	addProfile(t, &profile.Profile{SSID: "home", Username: "u", PortalPwd: "p"})

	_, err := executeCommand(rootCmd, "connect", "home")
	if err != nil {
		t.Fatalf("connect failed: %v", err)
	}
	if pc.loginRuns != 1 {
		t.Errorf("portal login should run when the probe fails, ran %d times", pc.loginRuns)
	}
}
