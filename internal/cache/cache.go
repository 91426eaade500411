// ABOUTME: Badger-backed local cache of remote entities.
// ABOUTME: Keeps the last-known value per user so reads survive remote failures.
package cache

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	badger "github.com/dgraph-io/badger/v3"
)

const (
	ProfilePrefix      = "profile:"
	SportProfilePrefix = "sportprofile:"
	SnapshotPrefix     = "snapshot:"
)

// ErrMiss marks a key that has never been cached.
var ErrMiss = errors.New("cache miss")

// Cache wraps a badger database holding JSON copies of remote entities.
// It is constructed explicitly and passed to state holders; there is no
// package-level instance.
type Cache struct {
	db *badger.DB
	mu sync.RWMutex
}

// Open opens or creates the cache at the given directory.
func Open(dir string) (*Cache, error) {
	if err := os.MkdirAll(dir, 0750); err != nil {
		return nil, fmt.Errorf("create cache directory: %w", err)
	}

	opts := badger.DefaultOptions(dir).WithLogger(nil)
	db, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("open cache: %w", err)
	}
	return &Cache{db: db}, nil
}

// DefaultDir returns the cache directory under the XDG data path.
func DefaultDir() string {
	dataHome := os.Getenv("XDG_DATA_HOME")
	if dataHome == "" {
		home, _ := os.UserHomeDir()
		dataHome = filepath.Join(home, ".local", "share")
	}
	return filepath.Join(dataHome, "pulse", "cache")
}

// Close closes the cache database.
func (c *Cache) Close() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.db != nil {
		return c.db.Close()
	}
	return nil
}

// Set stores a JSON-encoded value under prefix+key.
func (c *Cache) Set(prefix, key string, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("marshal cache value: %w", err)
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	err = c.db.Update(func(txn *badger.Txn) error {
		return txn.Set([]byte(prefix+key), data)
	})
	if err != nil {
		return fmt.Errorf("cache set: %w", err)
	}
	return nil
}

// Get loads the value under prefix+key into out. Returns ErrMiss if the
// key was never cached.
func (c *Cache) Get(prefix, key string, out any) error {
	c.mu.RLock()
	defer c.mu.RUnlock()

	err := c.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get([]byte(prefix + key))
		if err != nil {
			if errors.Is(err, badger.ErrKeyNotFound) {
				return ErrMiss
			}
			return err
		}
		return item.Value(func(val []byte) error {
			return json.Unmarshal(val, out)
		})
	})
	if err != nil {
		if errors.Is(err, ErrMiss) {
			return err
		}
		return fmt.Errorf("cache get: %w", err)
	}
	return nil
}

// Delete removes the value under prefix+key. Missing keys are not an error.
func (c *Cache) Delete(prefix, key string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	err := c.db.Update(func(txn *badger.Txn) error {
		return txn.Delete([]byte(prefix + key))
	})
	if err != nil {
		return fmt.Errorf("cache delete: %w", err)
	}
	return nil
}
