package waiter

import (
	"fmt"
	"testing"
	"time"

	"netconnect/internal/wifi"
)

// fakeConnector reports a fixed sequence of SSIDs.
type fakeConnector struct {
	ssids []string
	calls int
}

func (f *fakeConnector) Connect(ssid, password string) error { return nil }
func (f *fakeConnector) Scan() ([]wifi.Network, error)       { return nil, nil }

func (f *fakeConnector) CurrentSSID() (string, error) {
	if f.calls >= len(f.ssids) {
		return f.ssids[len(f.ssids)-1], nil
	}
	ssid := f.ssids[f.calls]
	f.calls++
	if ssid == "ERR" {
		return "", fmt.Errorf("interface busy")
	}
	return ssid, nil
}

func TestForSSIDSucceedsAfterRetries(t *testing.T) {
	c := &fakeConnector{ssids: []string{"", "ERR", "G-VIT"}}
	if err := ForSSID(c, "G-VIT", 10*time.Second); err != nil {
		t.Fatalf("ForSSID() failed: %v", err)
	}
}

func TestForSSIDCaseInsensitive(t *testing.T) {
	c := &fakeConnector{ssids: []string{"g-vit"}}
	if err := ForSSID(c, "G-VIT", 5*time.Second); err != nil {
		t.Fatalf("ForSSID() failed: %v", err)
	}
}

func TestForSSIDTimeout(t *testing.T) {
	c := &fakeConnector{ssids: []string{"other"}}
	err := ForSSID(c, "G-VIT", 100*time.Millisecond)
	if err == nil {
		t.Fatal("ForSSID() expected a timeout error")
	}
}
