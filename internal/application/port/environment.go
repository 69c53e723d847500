package port

// EnvironmentSource exposes deployment configuration inputs by key.
// Keys are the unprefixed names (e.g. "env", "default_theme").
type EnvironmentSource interface {
	Lookup(key string) (value string, ok bool)
}
