//go:build js && wasm

package browser

import (
	"syscall/js"

	"github.com/bnema/vitrine/internal/application/port"
)

const darkSchemeQuery = "(prefers-color-scheme: dark)"

// MediaQueryDetector reads the prefers-color-scheme media feature.
type MediaQueryDetector struct{}

// NewMediaQueryDetector creates the browser ambient detector.
func NewMediaQueryDetector() *MediaQueryDetector {
	return &MediaQueryDetector{}
}

func (d *MediaQueryDetector) Name() string { return "prefers-color-scheme" }

func (d *MediaQueryDetector) Priority() int { return 100 }

// Available reports whether window.matchMedia exists.
func (d *MediaQueryDetector) Available() bool {
	return global("matchMedia").Type() == js.TypeFunction
}

// Detect evaluates the dark scheme query. Exceptions propagate as panics and
// are treated as a failed detection by the resolver.
func (d *MediaQueryDetector) Detect() (prefersDark, ok bool) {
	mql := global("matchMedia").Invoke(darkSchemeQuery)
	if !defined(mql) {
		return false, false
	}
	return mql.Get("matches").Bool(), true
}

var _ port.ColorSchemeDetector = (*MediaQueryDetector)(nil)
