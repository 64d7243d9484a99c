// Package startup registers the application with the OS so that it runs at
// login: a registry Run key on Windows, an XDG autostart entry on Linux and
// a LaunchAgent on macOS. The entry invokes the installed binary itself
// (`netconnect connect --quiet`), so no generated helper script is needed.
package startup

import (
	"fmt"
	"os"
	"os/exec"
	"runtime"

	"netconnect/internal/config"
	"netconnect/internal/util"
)

var (
	// seams for tests
	execCommand  = exec.Command
	osExecutable = os.Executable
)

// Generator installs and removes the OS startup entry.
type Generator struct {
	cfg     *config.Config
	osType  string
	exePath string
}

// New creates a Generator for the current OS and the running binary.
var New = func(cfg *config.Config) (*Generator, error) {
	exe, err := osExecutable()
	if err != nil {
		return nil, fmt.Errorf("could not resolve own executable path: %w", err)
	}
	return &Generator{cfg: cfg, osType: runtime.GOOS, exePath: exe}, nil
}

// Install creates the startup entry for the detected operating system.
func (g *Generator) Install() error {
	switch g.osType {
	case "windows":
		return g.installWindows()
	case "linux":
		return g.installLinux()
	case "darwin":
		return g.installDarwin()
	default:
		return fmt.Errorf("unsupported operating system: %s", g.osType)
	}
}

// Remove deletes the startup entry. Removing an entry that was never
// installed is not an error.
func (g *Generator) Remove() error {
	switch g.osType {
	case "windows":
		return g.removeWindows()
	case "linux":
		return g.removeLinux()
	case "darwin":
		return g.removeDarwin()
	default:
		return fmt.Errorf("unsupported operating system: %s", g.osType)
	}
}

// Status reports whether a startup entry is present and where it lives.
func (g *Generator) Status() (bool, string, error) {
	switch g.osType {
	case "windows":
		return g.statusWindows()
	case "linux":
		path := g.desktopPath()
		return util.FileExists(path), path, nil
	case "darwin":
		path := g.plistPath()
		return util.FileExists(path), path, nil
	default:
		return false, "", fmt.Errorf("unsupported operating system: %s", g.osType)
	}
}

// startupArgs is the command line the startup entry runs.
func (g *Generator) startupArgs() []string {
	return []string{g.exePath, "connect", "--quiet"}
}
