package logging

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"go.uber.org/zap"
)

func TestInitializeWritesToFile(t *testing.T) {
	logPath := filepath.Join(t.TempDir(), "logs", "netconnect.log")
	if err := Initialize(logPath); err != nil {
		t.Fatalf("Initialize() failed: %v", err)
	}

	Info("connect attempt", zap.String("ssid", "G-VIT"))
	Sync()

	data, err := os.ReadFile(logPath)
	if err != nil {
		t.Fatalf("reading log file failed: %v", err)
	}
	if !strings.Contains(string(data), "connect attempt") {
		t.Errorf("log file missing message, got: %s", data)
	}
	if !strings.Contains(string(data), `"ssid":"G-VIT"`) {
		t.Errorf("log file missing field, got: %s", data)
	}
}

func TestGetLoggerWithoutInitialize(t *testing.T) {
	logger = nil
	if GetLogger() == nil {
		t.Fatal("GetLogger() returned nil")
	}
	// Must not panic.
	Warn("no-op")
	Error("no-op")
}

func TestParseLevel(t *testing.T) {
	if _, ok := parseLevel(""); ok {
		t.Error("empty level should disable console logging")
	}
	if level, ok := parseLevel("debug"); !ok || level.String() != "debug" {
		t.Errorf("parseLevel(debug) got %v/%v", level, ok)
	}
	if _, ok := parseLevel("bogus"); ok {
		t.Error("unknown level should disable console logging")
	}
}
