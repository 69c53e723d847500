//go:build js && wasm

// Package browser adapts the page's window, document and localStorage to the
// appearance engine ports.
package browser

import (
	"fmt"
	"syscall/js"
)

// global returns the named property of globalThis, or Undefined.
func global(name string) js.Value {
	return js.Global().Get(name)
}

func defined(v js.Value) bool {
	return !v.IsUndefined() && !v.IsNull()
}

// guard converts a panic raised by a JS exception into an error.
func guard(op string, err *error) {
	if r := recover(); r != nil {
		if jsErr, ok := r.(js.Error); ok {
			*err = fmt.Errorf("%s: %w", op, jsErr)
			return
		}
		*err = fmt.Errorf("%s: %v", op, r)
	}
}
