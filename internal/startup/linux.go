package startup

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"text/template"

	"netconnect/internal/config"
	"netconnect/internal/util"
)

const desktopTemplate = `[Desktop Entry]
Name={{.Name}}
Exec={{.Exec}}
Type=Application
X-GNOME-Autostart-enabled=true
`

func (g *Generator) desktopPath() string {
	return filepath.Join(g.cfg.GetHomeDir(), ".config", "autostart", config.AppName+".desktop")
}

// renderDesktopEntry produces the XDG autostart entry contents.
func renderDesktopEntry(args []string) (string, error) {
	tmpl := template.Must(template.New("desktop").Parse(desktopTemplate))
	var buf bytes.Buffer
	data := struct {
		Name string
		Exec string
	}{Name: config.StartupLabel, Exec: strings.Join(args, " ")}
	if err := tmpl.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("failed to render desktop entry: %w", err)
	}
	return buf.String(), nil
}

func (g *Generator) installLinux() error {
	path := g.desktopPath()
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create autostart directory: %w", err)
	}

	content, err := renderDesktopEntry(g.startupArgs())
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, []byte(content), 0755); err != nil {
		return fmt.Errorf("failed to write autostart entry: %w", err)
	}
	return nil
}

func (g *Generator) removeLinux() error {
	path := g.desktopPath()
	if !util.FileExists(path) {
		return nil
	}
	return os.Remove(path)
}
