package port

// DocumentStyleSink is the rendered document's root element as seen by the
// appearance engine: a set of classification tags plus a visibility flag.
// The engine never interprets what the tags look like.
type DocumentStyleSink interface {
	// Available reports whether a host document exists (false during
	// server-side rendering or in headless contexts).
	Available() bool

	// AddClass attaches a tag to the root. Adding a present tag is a no-op.
	AddClass(name string)

	// RemoveClass detaches a tag from the root. Removing a missing tag is a no-op.
	RemoveClass(name string)

	// HasClass reports whether the root carries the tag.
	HasClass(name string) bool

	// SetVisible flags the document visible or hidden.
	SetVisible(visible bool)
}
