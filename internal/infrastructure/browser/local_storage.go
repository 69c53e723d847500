//go:build js && wasm

package browser

import (
	"errors"
	"fmt"
	"syscall/js"

	"github.com/bnema/vitrine/internal/application/port"
	"github.com/bnema/vitrine/internal/infrastructure/storage"
)

// LocalStorage implements port.KeyValueStore over window.localStorage.
// Reading the property itself may throw (sandboxed iframes, disabled
// cookies), so it is resolved on every call.
type LocalStorage struct{}

// NewLocalStorage returns the window.localStorage adapter.
func NewLocalStorage() *LocalStorage {
	return &LocalStorage{}
}

func (s *LocalStorage) handle() (v js.Value, err error) {
	defer guard("localStorage", &err)
	v = global("localStorage")
	if !defined(v) {
		return js.Undefined(), storage.ErrUnavailable
	}
	return v, nil
}

// GetItem implements port.KeyValueStore.
func (s *LocalStorage) GetItem(key string) (value string, found bool, err error) {
	ls, err := s.handle()
	if err != nil {
		return "", false, err
	}
	defer guard("localStorage.getItem", &err)

	v := ls.Call("getItem", key)
	if v.IsNull() {
		return "", false, nil
	}
	return v.String(), true, nil
}

// SetItem implements port.KeyValueStore.
func (s *LocalStorage) SetItem(key, value string) (err error) {
	ls, err := s.handle()
	if err != nil {
		return err
	}
	defer markQuota(&err)
	defer guard("localStorage.setItem", &err)

	ls.Call("setItem", key, value)
	return nil
}

// RemoveItem implements port.KeyValueStore.
func (s *LocalStorage) RemoveItem(key string) (err error) {
	ls, err := s.handle()
	if err != nil {
		return err
	}
	defer guard("localStorage.removeItem", &err)

	ls.Call("removeItem", key)
	return nil
}

// markQuota tags a QuotaExceededError DOMException with storage.ErrQuotaExceeded.
func markQuota(err *error) {
	var jsErr js.Error
	if errors.As(*err, &jsErr) && jsErr.Get("name").String() == "QuotaExceededError" {
		*err = fmt.Errorf("%w: %w", storage.ErrQuotaExceeded, *err)
	}
}

var _ port.KeyValueStore = (*LocalStorage)(nil)
