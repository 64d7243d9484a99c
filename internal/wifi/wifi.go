package wifi

import (
	"fmt"
	"os/exec"
	"runtime"
)

// execCommand is a variable to allow mocking of exec.Command in tests
var execCommand = exec.Command

// Network is one entry in a scan result.
type Network struct {
	SSID     string
	Signal   int // percent, 0-100
	Security string
}

// Open reports whether the network requires no authentication.
func (n Network) Open() bool {
	switch n.Security {
	case "", "--", "Open", "NONE":
		return true
	}
	return false
}

// Connector wraps the OS-native WiFi tooling.
type Connector interface {
	// Connect associates with the named network. The password may be empty
	// when the OS already has a profile for the network.
	Connect(ssid, password string) error
	// CurrentSSID returns the SSID of the currently associated network, or
	// "" when not associated.
	CurrentSSID() (string, error)
	// Scan lists the currently visible networks, strongest first.
	Scan() ([]Network, error)
}

// New returns the Connector for the current operating system.
// iface is only used on macOS, where networksetup addresses the WiFi
// hardware by its network service name (normally "Wi-Fi").
var New = func(iface string) (Connector, error) {
	switch runtime.GOOS {
	case "windows":
		return &netshConnector{}, nil
	case "linux":
		return &nmcliConnector{}, nil
	case "darwin":
		if iface == "" {
			iface = "Wi-Fi"
		}
		return &networksetupConnector{iface: iface}, nil
	default:
		return nil, fmt.Errorf("unsupported OS for WiFi control: %s", runtime.GOOS)
	}
}
