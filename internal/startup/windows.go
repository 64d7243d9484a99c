package startup

import (
	"fmt"
	"strings"

	"netconnect/internal/config"
	"netconnect/internal/runner"
)

const runKey = `HKCU\Software\Microsoft\Windows\CurrentVersion\Run`

// runValue is the command line stored in the Run key.
func (g *Generator) runValue() string {
	args := g.startupArgs()
	return fmt.Sprintf(`"%s" %s`, args[0], strings.Join(args[1:], " "))
}

func (g *Generator) installWindows() error {
	cmd := execCommand("reg", "add", runKey,
		"/v", config.StartupLabel,
		"/t", "REG_SZ",
		"/d", g.runValue(),
		"/f")
	if err := runner.Run(cmd); err != nil {
		return fmt.Errorf("failed to create registry Run entry: %w", err)
	}
	return nil
}

func (g *Generator) removeWindows() error {
	installed, _, err := g.statusWindows()
	if err != nil || !installed {
		return err
	}
	cmd := execCommand("reg", "delete", runKey, "/v", config.StartupLabel, "/f")
	if err := runner.Run(cmd); err != nil {
		return fmt.Errorf("failed to delete registry Run entry: %w", err)
	}
	return nil
}

func (g *Generator) statusWindows() (bool, string, error) {
	detail := runKey + `\` + config.StartupLabel
	// reg query exits non-zero when the value does not exist.
	cmd := execCommand("reg", "query", runKey, "/v", config.StartupLabel)
	if err := runner.Run(cmd); err != nil {
		return false, detail, nil
	}
	return true, detail, nil
}
