package waiter

import (
	"fmt"
	"strings"
	"time"

	"netconnect/internal/wifi"

	"github.com/briandowns/spinner"
	"github.com/fatih/color"
)

// ForSSID polls the connector until it reports association with the expected
// SSID or a timeout is reached.
var ForSSID = func(c wifi.Connector, ssid string, timeout time.Duration) error {
	s := spinner.New(spinner.CharSets[9], 100*time.Millisecond)
	s.Suffix = fmt.Sprintf(" Waiting for association with %s...", ssid)
	s.Start()
	defer s.Stop()

	timeoutChan := time.After(timeout)
	for {
		select {
		case <-timeoutChan:
			s.FinalMSG = color.RedString("✖ Timed out waiting for association with %s\n", ssid)
			return fmt.Errorf("timed out waiting for association with %s", ssid)
		default:
			current, err := c.CurrentSSID()
			// Transient errors are expected while the interface negotiates;
			// keep polling until the deadline.
			if err == nil && strings.EqualFold(current, ssid) {
				s.FinalMSG = color.GreenString("✔ Associated with %s.\n", ssid)
				return nil
			}
			time.Sleep(500 * time.Millisecond)
		}
	}
}
