// Package storage provides port.KeyValueStore backends.
package storage

import "errors"

var (
	// ErrUnavailable is returned when the backing store cannot be used at all.
	ErrUnavailable = errors.New("storage unavailable")

	// ErrQuotaExceeded is returned when a write would exceed the store's capacity.
	ErrQuotaExceeded = errors.New("storage quota exceeded")
)
