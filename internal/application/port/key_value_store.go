package port

// KeyValueStore is the persistent string store the preference record lives in.
// In the browser it is window.localStorage; natively it is a SQLite table.
//
// Adapters return errors rather than panicking; callers still treat a
// panicking backend as a failed call.
type KeyValueStore interface {
	// GetItem returns the value stored under key and whether it exists.
	GetItem(key string) (value string, found bool, err error)

	// SetItem writes value under key, replacing any previous value.
	SetItem(key, value string) error

	// RemoveItem deletes key. Removing a missing key is not an error.
	RemoveItem(key string) error
}
