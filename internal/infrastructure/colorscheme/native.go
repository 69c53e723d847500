//go:build !(js && wasm)

package colorscheme

// NewNativeResolver creates a resolver with every desktop detector registered.
func NewNativeResolver(config ConfigProvider) *Resolver {
	r := NewResolver(config)
	r.RegisterDetector(NewTerminalDetector())
	r.RegisterDetector(NewEnvDetector())
	r.RegisterDetector(NewDefaultsDetector())
	r.RegisterDetector(NewGsettingsDetector())
	return r
}
