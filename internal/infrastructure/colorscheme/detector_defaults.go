//go:build !(js && wasm)

package colorscheme

import (
	"os/exec"
	"runtime"
	"strings"
)

const (
	detectorNameDefaults = "defaults"
	priorityDefaults     = 15
)

// DefaultsDetector reads the macOS AppleInterfaceStyle user default.
type DefaultsDetector struct {
	goos    string
	command func(name string, args ...string) ([]byte, error)
}

// NewDefaultsDetector creates a macOS defaults-based detector.
func NewDefaultsDetector() *DefaultsDetector {
	return &DefaultsDetector{goos: runtime.GOOS, command: runCommand}
}

// Name implements port.ColorSchemeDetector.
func (*DefaultsDetector) Name() string {
	return detectorNameDefaults
}

// Priority implements port.ColorSchemeDetector.
func (*DefaultsDetector) Priority() int {
	return priorityDefaults
}

// Available implements port.ColorSchemeDetector.
// Returns true on macOS when the defaults tool is on PATH.
func (d *DefaultsDetector) Available() bool {
	if d.goos != "darwin" {
		return false
	}
	_, err := exec.LookPath("defaults")
	return err == nil
}

// Detect implements port.ColorSchemeDetector.
// The key only exists while dark mode is on, so a read error means light.
func (d *DefaultsDetector) Detect() (prefersDark, ok bool) {
	output, err := d.command("defaults", "read", "-g", "AppleInterfaceStyle")
	if err != nil {
		return false, true
	}
	return strings.EqualFold(strings.TrimSpace(string(output)), "dark"), true
}

func runCommand(name string, args ...string) ([]byte, error) {
	return exec.Command(name, args...).Output()
}
