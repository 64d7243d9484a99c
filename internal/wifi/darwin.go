package wifi

import (
	"fmt"
	"regexp"
	"sort"
	"strconv"
	"strings"

	"netconnect/internal/runner"
)

// airportPath is the private framework scanner used for `Scan` on macOS;
// networksetup has no scan verb.
const airportPath = "/System/Library/PrivateFrameworks/Apple80211.framework/Versions/Current/Resources/airport"

// networksetupConnector drives the macOS WiFi service via networksetup.
type networksetupConnector struct {
	iface string
}

var (
	currentNetworkRE = regexp.MustCompile(`Current Wi-Fi Network:\s*(.+)`)
	airportRowRE     = regexp.MustCompile(`^\s*(.*?)\s+([0-9a-fA-F]{2}(?::[0-9a-fA-F]{2}){5})\s+(-?\d+)\s+\S+\s+\S+\s+\S+\s+(.+?)\s*$`)
)

func (c *networksetupConnector) Connect(ssid, password string) error {
	args := []string{"-setairportnetwork", c.iface, ssid}
	if password != "" {
		args = append(args, password)
	}
	out, err := runner.Output(execCommand("networksetup", args...))
	if err != nil {
		return err
	}
	// networksetup exits 0 on failure and prints the reason instead.
	if s := strings.TrimSpace(out); s != "" {
		return fmt.Errorf("networksetup: %s", s)
	}
	return nil
}

func (c *networksetupConnector) CurrentSSID() (string, error) {
	out, err := runner.Output(execCommand("networksetup", "-getairportnetwork", c.iface))
	if err != nil {
		return "", err
	}
	return parseAirportNetwork(out), nil
}

func (c *networksetupConnector) Scan() ([]Network, error) {
	out, err := runner.Output(execCommand(airportPath, "-s"))
	if err != nil {
		return nil, err
	}
	return parseAirportScan(out), nil
}

// parseAirportNetwork extracts the SSID from `networksetup
// -getairportnetwork` output, or "" when not associated.
func parseAirportNetwork(out string) string {
	if m := currentNetworkRE.FindStringSubmatch(out); m != nil {
		return strings.TrimSpace(m[1])
	}
	return ""
}

// parseAirportScan parses `airport -s` output. The RSSI column (dBm) is
// mapped onto the 0-100 range used by the other platforms.
func parseAirportScan(out string) []Network {
	lines := strings.Split(out, "\n")
	seen := make(map[string]int)
	var res []Network

	for i, line := range lines {
		if i == 0 {
			continue // header
		}
		m := airportRowRE.FindStringSubmatch(line)
		if m == nil || m[1] == "" {
			continue
		}
		rssi, err := strconv.Atoi(m[3])
		if err != nil {
			continue
		}
		n := Network{SSID: m[1], Signal: rssiToPercent(rssi), Security: m[4]}
		if j, ok := seen[n.SSID]; ok {
			if n.Signal > res[j].Signal {
				res[j] = n
			}
			continue
		}
		seen[n.SSID] = len(res)
		res = append(res, n)
	}

	sort.SliceStable(res, func(i, j int) bool { return res[i].Signal > res[j].Signal })
	return res
}

// rssiToPercent maps dBm readings onto 0-100, treating -100 dBm as no
// signal and -50 dBm or better as full strength.
func rssiToPercent(rssi int) int {
	switch {
	case rssi >= -50:
		return 100
	case rssi <= -100:
		return 0
	default:
		return 2 * (rssi + 100)
	}
}
