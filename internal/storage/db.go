// ABOUTME: Database connection and lifecycle for the hosted fitness store.
// ABOUTME: Speaks libsql to remote databases and modernc sqlite to local files.
package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	_ "github.com/tursodatabase/libsql-client-go/libsql"
	_ "modernc.org/sqlite"
)

// ErrNotFound marks the absence of a row. Callers treat it as a valid
// empty state, not a failure.
var ErrNotFound = errors.New("not found")

// DB wraps the store connection.
type DB struct {
	db *sql.DB
}

// Open connects to the store at the given URL. Remote URLs (libsql://,
// https://, wss://) go through the libsql driver; anything else is treated
// as a local sqlite file path.
func Open(databaseURL string) (*DB, error) {
	if databaseURL == "" {
		return nil, fmt.Errorf("database URL not configured")
	}

	var db *sql.DB
	var err error

	if isRemote(databaseURL) {
		db, err = sql.Open("libsql", databaseURL)
	} else {
		path := strings.TrimPrefix(databaseURL, "file:")
		if dir := filepath.Dir(path); dir != "." {
			if mkErr := os.MkdirAll(dir, 0750); mkErr != nil {
				return nil, fmt.Errorf("create data directory: %w", mkErr)
			}
		}
		db, err = sql.Open("sqlite", path)
	}
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	d := &DB{db: db}

	if !isRemote(databaseURL) {
		if err := d.configurePragmas(); err != nil {
			_ = db.Close()
			return nil, fmt.Errorf("configure pragmas: %w", err)
		}
	}

	if err := d.initSchema(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("initialize schema: %w", err)
	}

	return d, nil
}

func isRemote(url string) bool {
	for _, scheme := range []string{"libsql://", "https://", "http://", "wss://", "ws://"} {
		if strings.HasPrefix(url, scheme) {
			return true
		}
	}
	return false
}

// DataDir returns the default data directory following XDG spec.
func DataDir() string {
	dataHome := os.Getenv("XDG_DATA_HOME")
	if dataHome == "" {
		home, _ := os.UserHomeDir()
		dataHome = filepath.Join(home, ".local", "share")
	}
	return filepath.Join(dataHome, "pulse")
}

// DefaultDBPath returns the default local database path.
func DefaultDBPath() string {
	return filepath.Join(DataDir(), "pulse.db")
}

// Close closes the database connection.
func (d *DB) Close() error {
	if d.db != nil {
		return d.db.Close()
	}
	return nil
}

// configurePragmas sets up local sqlite for safe concurrent use.
func (d *DB) configurePragmas() error {
	pragmas := []string{
		"PRAGMA journal_mode = WAL",
		"PRAGMA foreign_keys = ON",
		"PRAGMA busy_timeout = 5000",
		"PRAGMA synchronous = NORMAL",
	}
	for _, pragma := range pragmas {
		if _, err := d.db.Exec(pragma); err != nil {
			return fmt.Errorf("execute %s: %w", pragma, err)
		}
	}
	return nil
}

// initSchema creates tables on first open.
func (d *DB) initSchema() error {
	if _, err := d.db.Exec(schema); err != nil {
		return fmt.Errorf("create schema: %w", err)
	}
	return nil
}
