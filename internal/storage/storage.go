// Package storage persists the editor state, the theme and custom presets in
// a bbolt database.
package storage

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	bolt "go.etcd.io/bbolt"

	"github.com/dshills/softglow/internal/effect"
	"github.com/dshills/softglow/internal/preset"
)

// Bucket names.
const (
	bucketState   = "state"
	bucketTheme   = "theme"
	bucketPresets = "presets"
)

// Keys within the buckets. Each bucket holds one document.
var (
	keyCurrent = []byte("current")
	keyCustom  = []byte("custom")
)

// ErrCorrupt is wrapped by load errors for documents that cannot be decoded.
var ErrCorrupt = errors.New("corrupt document")

// initDB holds the initialization steps run on every Open, keyed by a
// description used in error messages.
var initDB = map[string]func(*bolt.Tx) error{}

func init() {
	for _, name := range []string{bucketState, bucketTheme, bucketPresets} {
		name := name
		initDB["initialize "+name+" bucket"] = func(tx *bolt.Tx) error {
			_, err := tx.CreateBucketIfNotExists([]byte(name))
			return err
		}
	}
}

// DB is a softglow database. It is safe for concurrent use.
type DB struct {
	db *bolt.DB
}

// Open opens the database at path, creating it and its directory as needed.
func Open(path string) (*DB, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("create data directory: %w", err)
	}
	db, err := bolt.Open(path, 0o644, &bolt.Options{Timeout: time.Second})
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}

	err = db.Update(func(tx *bolt.Tx) error {
		for name, fn := range initDB {
			if err := fn(tx); err != nil {
				return fmt.Errorf("failed to %s: %w", name, err)
			}
		}
		return nil
	})
	if err != nil {
		db.Close()
		return nil, err
	}
	return &DB{db: db}, nil
}

// Path returns the database file path.
func (d *DB) Path() string {
	return d.db.Path()
}

// Close closes the database.
func (d *DB) Close() error {
	return d.db.Close()
}

// SaveState stores the present effect state.
func (d *DB) SaveState(s effect.State) error {
	return d.put(bucketState, keyCurrent, s)
}

// LoadState returns the stored effect state. A missing document yields the
// defaults; a corrupt one yields the defaults and an error wrapping ErrCorrupt.
func (d *DB) LoadState() (effect.State, error) {
	data, err := d.get(bucketState, keyCurrent)
	if err != nil || data == nil {
		return effect.Default(), err
	}
	s, err := effect.Import(data)
	if err != nil {
		return effect.Default(), fmt.Errorf("load state: %w: %w", ErrCorrupt, err)
	}
	return s, nil
}

// SaveTheme stores the theme.
func (d *DB) SaveTheme(t effect.Theme) error {
	return d.put(bucketTheme, keyCurrent, t)
}

// LoadTheme returns the stored theme. A corrupt document is removed and the
// defaults are returned with an error wrapping ErrCorrupt.
func (d *DB) LoadTheme() (effect.Theme, error) {
	data, err := d.get(bucketTheme, keyCurrent)
	if err != nil || data == nil {
		return effect.DefaultTheme(), err
	}
	t, err := effect.DecodeTheme(data)
	if err == nil {
		return t, nil
	}

	err = fmt.Errorf("load theme: %w: %w", ErrCorrupt, err)
	if delErr := d.delete(bucketTheme, keyCurrent); delErr != nil {
		return t, errors.Join(err, delErr)
	}
	return t, err
}

// SaveCustomPresets stores the custom preset list.
func (d *DB) SaveCustomPresets(presets []preset.Preset) error {
	if presets == nil {
		presets = []preset.Preset{}
	}
	return d.put(bucketPresets, keyCustom, presets)
}

// LoadCustomPresets returns the stored custom presets.
func (d *DB) LoadCustomPresets() ([]preset.Preset, error) {
	data, err := d.get(bucketPresets, keyCustom)
	if err != nil || data == nil {
		return nil, err
	}
	var presets []preset.Preset
	if err := json.Unmarshal(data, &presets); err != nil {
		return nil, fmt.Errorf("load custom presets: %w: %w", ErrCorrupt, err)
	}
	return presets, nil
}

func (d *DB) put(bucket string, key []byte, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("encode %s: %w", bucket, err)
	}
	return d.db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket([]byte(bucket)).Put(key, data)
	})
}

// get returns a copy of the value, or nil if the key is absent.
func (d *DB) get(bucket string, key []byte) ([]byte, error) {
	var data []byte
	err := d.db.View(func(tx *bolt.Tx) error {
		if v := tx.Bucket([]byte(bucket)).Get(key); v != nil {
			data = append([]byte(nil), v...)
		}
		return nil
	})
	return data, err
}

func (d *DB) delete(bucket string, key []byte) error {
	return d.db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket([]byte(bucket)).Delete(key)
	})
}
