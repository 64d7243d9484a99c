package wifi

import (
	"sort"
	"strconv"
	"strings"

	"netconnect/internal/runner"
)

// nmcliConnector drives NetworkManager via nmcli.
type nmcliConnector struct{}

func (c *nmcliConnector) Connect(ssid, password string) error {
	args := []string{"dev", "wifi", "connect", ssid}
	if password != "" {
		args = append(args, "password", password)
	}
	return runner.Run(execCommand("nmcli", args...))
}

func (c *nmcliConnector) CurrentSSID() (string, error) {
	out, err := runner.Output(execCommand("nmcli", "-t", "-f", "active,ssid", "dev", "wifi"))
	if err != nil {
		return "", err
	}
	return parseNmcliActive(out), nil
}

func (c *nmcliConnector) Scan() ([]Network, error) {
	out, err := runner.Output(execCommand("nmcli", "-t", "-f", "ssid,signal,security", "dev", "wifi", "list"))
	if err != nil {
		return nil, err
	}
	return parseNmcliList(out), nil
}

// splitNmcli splits one line of `nmcli -t` output on unescaped colons.
// nmcli escapes literal colons and backslashes in field values.
func splitNmcli(line string) []string {
	var fields []string
	var b strings.Builder
	escaped := false
	for _, r := range line {
		switch {
		case escaped:
			b.WriteRune(r)
			escaped = false
		case r == '\\':
			escaped = true
		case r == ':':
			fields = append(fields, b.String())
			b.Reset()
		default:
			b.WriteRune(r)
		}
	}
	fields = append(fields, b.String())
	return fields
}

// parseNmcliActive extracts the active SSID from
// `nmcli -t -f active,ssid dev wifi` output.
func parseNmcliActive(out string) string {
	for _, line := range strings.Split(out, "\n") {
		fields := splitNmcli(strings.TrimSpace(line))
		if len(fields) == 2 && fields[0] == "yes" {
			return fields[1]
		}
	}
	return ""
}

// parseNmcliList parses `nmcli -t -f ssid,signal,security dev wifi list`
// output. Duplicate SSIDs (multiple BSSIDs) collapse to the strongest entry.
func parseNmcliList(out string) []Network {
	seen := make(map[string]int) // ssid -> index into res
	var res []Network

	for _, line := range strings.Split(out, "\n") {
		fields := splitNmcli(strings.TrimSpace(line))
		if len(fields) != 3 || fields[0] == "" {
			continue
		}
		signal, err := strconv.Atoi(fields[1])
		if err != nil {
			continue
		}
		n := Network{SSID: fields[0], Signal: signal, Security: fields[2]}
		if i, ok := seen[n.SSID]; ok {
			if n.Signal > res[i].Signal {
				res[i] = n
			}
			continue
		}
		seen[n.SSID] = len(res)
		res = append(res, n)
	}

	sort.SliceStable(res, func(i, j int) bool { return res[i].Signal > res[j].Signal })
	return res
}
