package wifi

import (
	"fmt"
	"regexp"
	"sort"
	"strconv"
	"strings"

	"netconnect/internal/runner"
)

// netshConnector drives the Windows WLAN AutoConfig service via netsh.
type netshConnector struct{}

var (
	netshSSIDRE    = regexp.MustCompile(`(?m)^\s*SSID\s*:\s*(.+)$`)
	netshStateRE   = regexp.MustCompile(`(?m)^\s*State\s*:\s*(.+)$`)
	netshScanRE    = regexp.MustCompile(`(?m)^SSID \d+\s*:\s*(.*)$`)
	netshAuthRE    = regexp.MustCompile(`(?m)^\s*Authentication\s*:\s*(.+)$`)
	netshSignalRE  = regexp.MustCompile(`(?m)^\s*Signal\s*:\s*(\d+)%`)
	netshSuccessRE = regexp.MustCompile(`(?i)completed successfully`)
)

func (c *netshConnector) Connect(ssid, password string) error {
	// netsh connects through a stored WLAN profile; the password argument is
	// only honored by the profile itself, so it is ignored here.
	out, err := runner.Output(execCommand("netsh", "wlan", "connect", "name="+ssid))
	if err != nil {
		return err
	}
	if !netshSuccessRE.MatchString(out) {
		return fmt.Errorf("netsh did not confirm the connection request:\n%s", strings.TrimSpace(out))
	}
	return nil
}

func (c *netshConnector) CurrentSSID() (string, error) {
	out, err := runner.Output(execCommand("netsh", "wlan", "show", "interfaces"))
	if err != nil {
		return "", err
	}
	return parseNetshInterfaces(out), nil
}

func (c *netshConnector) Scan() ([]Network, error) {
	out, err := runner.Output(execCommand("netsh", "wlan", "show", "networks", "mode=bssid"))
	if err != nil {
		return nil, err
	}
	return parseNetshNetworks(out), nil
}

// parseNetshInterfaces extracts the associated SSID from
// `netsh wlan show interfaces` output, or "" when disconnected.
func parseNetshInterfaces(out string) string {
	if m := netshStateRE.FindStringSubmatch(out); m != nil {
		if !strings.EqualFold(strings.TrimSpace(m[1]), "connected") {
			return ""
		}
	}
	// The first SSID line belongs to the interface; BSSID lines do not match
	// because of the leading B.
	if m := netshSSIDRE.FindStringSubmatch(out); m != nil {
		return strings.TrimSpace(m[1])
	}
	return ""
}

// parseNetshNetworks parses `netsh wlan show networks mode=bssid` output.
// Each network block starts with an `SSID N : name` line; authentication and
// the strongest BSSID signal are picked out of the block.
func parseNetshNetworks(out string) []Network {
	blocks := netshScanRE.FindAllStringSubmatchIndex(out, -1)
	if blocks == nil {
		return nil
	}

	var res []Network
	for i, loc := range blocks {
		end := len(out)
		if i != len(blocks)-1 {
			end = blocks[i+1][0]
		}
		block := out[loc[0]:end]

		ssid := strings.TrimSpace(out[loc[2]:loc[3]])
		if ssid == "" {
			continue // hidden network
		}

		n := Network{SSID: ssid}
		if m := netshAuthRE.FindStringSubmatch(block); m != nil {
			n.Security = strings.TrimSpace(m[1])
		}
		for _, m := range netshSignalRE.FindAllStringSubmatch(block, -1) {
			if v, err := strconv.Atoi(m[1]); err == nil && v > n.Signal {
				n.Signal = v
			}
		}
		res = append(res, n)
	}

	sort.SliceStable(res, func(i, j int) bool { return res[i].Signal > res[j].Signal })
	return res
}
