// Package prefs is the durable key/value store behind the theme switch.
//
// Every operation is best-effort: a backend that cannot read, write or delete
// logs the failure and carries on, so callers only ever see "absent" values.
// Nothing here has an opinion about what the keys mean beyond the two key
// names and the boolean encoding.
package prefs

import (
	"fmt"
	"path/filepath"

	"github.com/nats-io/nats.go/jetstream"

	"github.com/mark3labs/themeswitch/internal/config"
)

// Keys used by the theme switch.
const (
	// KeySaveSelection holds "true" when the selected theme should be remembered.
	KeySaveSelection = "theme-switch.save-selection"
	// KeySelection holds the remembered theme name. It only exists while
	// KeySaveSelection is "true".
	KeySelection = "theme-preference"
)

// Store reads, writes and deletes string values by key.
type Store interface {
	// Read returns the stored value and whether it was present.
	Read(key string) (string, bool)
	Write(key, value string)
	Delete(key string)
}

// Lookup reads a boolean flag. present is false when the key is absent; any
// stored text other than "true" reads as false.
func Lookup(s Store, key string) (value, present bool) {
	raw, ok := s.Read(key)
	if !ok {
		return false, false
	}
	return raw == "true", true
}

// ReadBool reads a boolean flag, treating absence and malformed values as false.
func ReadBool(s Store, key string) bool {
	value, _ := Lookup(s, key)
	return value
}

// WriteBool stores a flag as "true" or "false".
func WriteBool(s Store, key string, value bool) {
	if value {
		s.Write(key, "true")
		return
	}
	s.Write(key, "false")
}

// Open builds the backend named by cfg.Store. kv is only consulted for the
// NATS backend. The returned store may implement io.Closer.
func Open(cfg *config.Config, kv jetstream.KeyValue) (Store, error) {
	switch cfg.Store {
	case config.StoreMemory:
		return NewMemoryStore(), nil
	case config.StoreFile:
		return NewFileStore(cfg.DataDir), nil
	case config.StoreSQLite:
		return OpenSQLStore(filepath.Join(cfg.DataDir, sqliteFile))
	case config.StoreNATS:
		if kv == nil {
			return nil, fmt.Errorf("nats store requires a key-value bucket")
		}
		return NewKVStore(kv), nil
	default:
		return nil, fmt.Errorf("unknown store backend: %s", cfg.Store)
	}
}
