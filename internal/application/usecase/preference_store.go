// Package usecase contains application use cases that orchestrate domain logic.
package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/bnema/vitrine/internal/application/port"
	"github.com/bnema/vitrine/internal/domain/entity"
	"github.com/bnema/vitrine/internal/logging"
)

// Default storage keys. Both live in the same namespace as the rest of the site.
const (
	DefaultPreferenceKey        = "vitrine.appearance"
	DefaultDeveloperOverrideKey = "vitrine.dev.theme-switching"
	probeKeySuffix              = ".probe"
)

var errNilStore = errors.New("key-value store is not configured")

// StoreKeys names the entries the preference store owns.
type StoreKeys struct {
	Preference        string
	DeveloperOverride string
}

// DefaultStoreKeys returns the stock key names.
func DefaultStoreKeys() StoreKeys {
	return StoreKeys{
		Preference:        DefaultPreferenceKey,
		DeveloperOverride: DefaultDeveloperOverrideKey,
	}
}

// PreferenceStore reads and writes the single serialized preference record.
// None of its methods fail loudly: errors are logged and reported as false.
type PreferenceStore struct {
	kv     port.KeyValueStore
	themes entity.ThemeSet
	keys   StoreKeys
}

// NewPreferenceStore creates a preference store on top of a key-value backend.
// kv may be nil, in which case every operation degrades to a no-op.
func NewPreferenceStore(kv port.KeyValueStore, themes entity.ThemeSet, keys StoreKeys) *PreferenceStore {
	if keys.Preference == "" {
		keys.Preference = DefaultPreferenceKey
	}
	if keys.DeveloperOverride == "" {
		keys.DeveloperOverride = DefaultDeveloperOverrideKey
	}
	return &PreferenceStore{kv: kv, themes: themes, keys: keys}
}

// Key returns the key the record is stored under.
func (s *PreferenceStore) Key() string {
	return s.keys.Preference
}

// Save serializes record and writes it under the preference key.
func (s *PreferenceStore) Save(ctx context.Context, record entity.PreferenceRecord) bool {
	log := logging.FromContext(ctx)

	raw, err := entity.MarshalPreference(record)
	if err != nil {
		log.Warn().Err(err).Str("record", record.String()).Msg("failed to encode appearance preference")
		return false
	}

	err = s.call(func(kv port.KeyValueStore) error {
		return kv.SetItem(s.keys.Preference, raw)
	})
	if err != nil {
		log.Warn().Err(err).Str("key", s.keys.Preference).Msg("failed to save appearance preference")
		return false
	}

	log.Debug().Str("record", record.String()).Msg("appearance preference saved")
	return true
}

// Load returns the stored record. A missing key yields false. A value that does
// not parse, or parses to an unknown theme or mode, is deleted and yields false.
func (s *PreferenceStore) Load(ctx context.Context) (entity.PreferenceRecord, bool) {
	log := logging.FromContext(ctx)

	var (
		raw   string
		found bool
	)
	err := s.call(func(kv port.KeyValueStore) error {
		var getErr error
		raw, found, getErr = kv.GetItem(s.keys.Preference)
		return getErr
	})
	if err != nil {
		log.Warn().Err(err).Str("key", s.keys.Preference).Msg("failed to load appearance preference")
		return entity.PreferenceRecord{}, false
	}
	if !found {
		return entity.PreferenceRecord{}, false
	}

	record, err := entity.UnmarshalPreference(raw, s.themes)
	if err != nil {
		log.Debug().Err(err).Msg("discarding corrupted appearance preference")
		s.remove(ctx, s.keys.Preference)
		return entity.PreferenceRecord{}, false
	}

	return record, true
}

// Clear deletes the stored record.
func (s *PreferenceStore) Clear(ctx context.Context) bool {
	return s.remove(ctx, s.keys.Preference)
}

// IsAvailable probes the backend with a real write followed by a remove.
// Some hosts expose a store that throws on use, so a capability check is not enough.
func (s *PreferenceStore) IsAvailable(ctx context.Context) bool {
	log := logging.FromContext(ctx)
	probeKey := s.keys.Preference + probeKeySuffix

	err := s.call(func(kv port.KeyValueStore) error {
		if err := kv.SetItem(probeKey, probeKey); err != nil {
			return err
		}
		return kv.RemoveItem(probeKey)
	})
	if err != nil {
		log.Debug().Err(err).Msg("preference storage unavailable")
		return false
	}
	return true
}

// LoadDeveloperOverride reports whether the local developer override flag is set.
func (s *PreferenceStore) LoadDeveloperOverride(ctx context.Context) bool {
	var (
		raw   string
		found bool
	)
	err := s.call(func(kv port.KeyValueStore) error {
		var getErr error
		raw, found, getErr = kv.GetItem(s.keys.DeveloperOverride)
		return getErr
	})
	if err != nil {
		logging.FromContext(ctx).Debug().Err(err).Msg("failed to read developer override")
		return false
	}
	return found && IsTruthy(raw)
}

// SetDeveloperOverride writes or removes the developer override flag.
func (s *PreferenceStore) SetDeveloperOverride(ctx context.Context, enabled bool) bool {
	if !enabled {
		return s.remove(ctx, s.keys.DeveloperOverride)
	}

	err := s.call(func(kv port.KeyValueStore) error {
		return kv.SetItem(s.keys.DeveloperOverride, "true")
	})
	if err != nil {
		logging.FromContext(ctx).Warn().Err(err).Msg("failed to save developer override")
		return false
	}
	return true
}

func (s *PreferenceStore) remove(ctx context.Context, key string) bool {
	err := s.call(func(kv port.KeyValueStore) error {
		return kv.RemoveItem(key)
	})
	if err != nil {
		logging.FromContext(ctx).Warn().Err(err).Str("key", key).Msg("failed to remove stored entry")
		return false
	}
	return true
}

// call runs fn against the backend, turning a nil backend or a panic into an error.
func (s *PreferenceStore) call(fn func(kv port.KeyValueStore) error) (err error) {
	if s.kv == nil {
		return errNilStore
	}
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("key-value store panicked: %v", r)
		}
	}()
	return fn(s.kv)
}

// IsTruthy interprets common boolean spellings used in flags and env vars.
func IsTruthy(v string) bool {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "1", "true", "yes", "on", "enabled":
		return true
	default:
		return false
	}
}
