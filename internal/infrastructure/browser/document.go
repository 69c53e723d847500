//go:build js && wasm

package browser

import (
	"syscall/js"

	"github.com/bnema/vitrine/internal/application/port"
)

// DocumentRoot implements port.DocumentStyleSink over
// document.documentElement. Panics raised by JS exceptions are left to the
// caller, which recovers them.
type DocumentRoot struct{}

// NewDocumentRoot returns the document root adapter.
func NewDocumentRoot() *DocumentRoot {
	return &DocumentRoot{}
}

func (d *DocumentRoot) root() js.Value {
	doc := global("document")
	if !defined(doc) {
		return js.Undefined()
	}
	return doc.Get("documentElement")
}

// Available reports whether the page has a document root.
func (d *DocumentRoot) Available() bool {
	return defined(d.root())
}

// AddClass implements port.DocumentStyleSink.
func (d *DocumentRoot) AddClass(name string) {
	d.root().Get("classList").Call("add", name)
}

// RemoveClass implements port.DocumentStyleSink.
func (d *DocumentRoot) RemoveClass(name string) {
	d.root().Get("classList").Call("remove", name)
}

// HasClass implements port.DocumentStyleSink.
func (d *DocumentRoot) HasClass(name string) bool {
	return d.root().Get("classList").Call("contains", name).Bool()
}

// SetVisible toggles the root's inline visibility style.
func (d *DocumentRoot) SetVisible(visible bool) {
	style := d.root().Get("style")
	if visible {
		style.Call("removeProperty", "visibility")
		return
	}
	style.Call("setProperty", "visibility", "hidden")
}

// DispatchEvent fires a CustomEvent with detail on document.
func (d *DocumentRoot) DispatchEvent(name string, detail map[string]any) {
	doc := global("document")
	ctor := global("CustomEvent")
	if !defined(doc) || !defined(ctor) {
		return
	}
	init := map[string]any{"detail": detail}
	doc.Call("dispatchEvent", ctor.New(name, init))
}

var _ port.DocumentStyleSink = (*DocumentRoot)(nil)
