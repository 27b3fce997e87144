package store

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/afero"
)

const (
	BackendFile   = "file"
	BackendSQLite = "sqlite"
)

var (
	ErrUnknownBackend = errors.New("unknown storage backend")
	ErrInvalidKey     = errors.New("invalid storage key")
)

// Store is a synchronous string key-value store.
type Store interface {
	Get(key string) (string, bool, error)
	Set(key, value string) error
	Keys() ([]string, error)
	Close() error
}

// Open returns the store for the named backend rooted at dir.
func Open(backend, dir string) (Store, error) {
	switch strings.ToLower(strings.TrimSpace(backend)) {
	case "", BackendFile:
		return NewFileStore(afero.NewOsFs(), dir)
	case BackendSQLite:
		return OpenSQLite(filepath.Join(dir, "notedays.db"))
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownBackend, backend)
	}
}

func validateKey(key string) error {
	if key == "" || strings.ContainsAny(key, `/\`) || key == "." || key == ".." {
		return fmt.Errorf("%w: %q", ErrInvalidKey, key)
	}
	return nil
}
