package startup

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"text/template"

	"netconnect/internal/runner"
	"netconnect/internal/util"
)

const launchAgentTemplate = `<?xml version="1.0" encoding="UTF-8"?>
<!DOCTYPE plist PUBLIC "-//Apple//DTD PLIST 1.0//EN" "http://www.apple.com/DTDs/PropertyList-1.0.dtd">
<plist version="1.0">
<dict>
	<key>Label</key>
	<string>{{.Label}}</string>
	<key>ProgramArguments</key>
	<array>
{{- range .Args}}
		<string>{{.}}</string>
{{- end}}
	</array>
	<key>RunAtLoad</key>
	<true/>
	<key>KeepAlive</key>
	<false/>
</dict>
</plist>
`

const launchAgentLabel = "com.netconnect.autoconnect"

func (g *Generator) plistPath() string {
	return filepath.Join(g.cfg.GetHomeDir(), "Library", "LaunchAgents", launchAgentLabel+".plist")
}

// renderLaunchAgent produces the LaunchAgent plist contents.
func renderLaunchAgent(args []string) (string, error) {
	tmpl := template.Must(template.New("plist").Parse(launchAgentTemplate))
	var buf bytes.Buffer
	data := struct {
		Label string
		Args  []string
	}{Label: launchAgentLabel, Args: args}
	if err := tmpl.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("failed to render LaunchAgent plist: %w", err)
	}
	return buf.String(), nil
}

func (g *Generator) installDarwin() error {
	path := g.plistPath()
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create LaunchAgents directory: %w", err)
	}

	content, err := renderLaunchAgent(g.startupArgs())
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		return fmt.Errorf("failed to write LaunchAgent plist: %w", err)
	}

	// Reload in case an older version of the agent is already registered.
	_ = runner.Run(execCommand("launchctl", "unload", path))
	if err := runner.Run(execCommand("launchctl", "load", path)); err != nil {
		// The agent still loads on next login even if launchctl refuses now.
		return fmt.Errorf("plist installed but not loaded (it will load on next login): %w", err)
	}
	return nil
}

func (g *Generator) removeDarwin() error {
	path := g.plistPath()
	if !util.FileExists(path) {
		return nil
	}
	_ = runner.Run(execCommand("launchctl", "unload", path))
	return os.Remove(path)
}
