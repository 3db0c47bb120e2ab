// Package aliasstore caches the sanitized-name aliases and translated
// binding suggestions an action manifest load produces, keyed by a
// content hash of the manifest plus the interaction profile path
// (SPEC_FULL.md §4.9). It is purely a performance/diagnostic aid: the
// manifest loader writes entries but never reads them back, so every
// load, post_session_restart replay (spec §4.5 step 6) included,
// recomputes everything whatever the cache holds. Get reports a missing
// entry as a miss and an entry that fails to decode as an error.
package aliasstore

import (
	"context"
	"encoding/json"
	"fmt"

	badger "github.com/dgraph-io/badger/v4"
	"golang.org/x/crypto/blake2b"

	"github.com/Supreeeme/xrizer/internal/logger"
)

// CachedBinding is one physical-input-to-action translation result
// recorded while walking a profile's binding file, grounded on
// internal/manifest/walk.go's walkProfile loop (the Action/Path/Mode
// triple it already computes before creating the live OpenXR objects).
type CachedBinding struct {
	Action string `json:"action"`
	Path   string `json:"path"`
	Mode   string `json:"mode"`
}

// Entry is everything cached for one (manifest, profile) pair.
type Entry struct {
	Aliases  map[string]string `json:"aliases"`
	Bindings []CachedBinding   `json:"bindings"`
}

// Store is an embedded key-value cache backed by badger.
type Store struct {
	db *badger.DB
}

// Open opens (creating if needed) a badger store rooted at dir.
func Open(dir string) (*Store, error) {
	opts := badger.DefaultOptions(dir).WithLogger(nil)
	db, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("aliasstore: open %q: %w", dir, err)
	}
	return &Store{db: db}, nil
}

// OpenInMemory opens a store with no backing file, for tests and for
// callers that never configured a cache directory.
func OpenInMemory() (*Store, error) {
	opts := badger.DefaultOptions("").WithInMemory(true).WithLogger(nil)
	db, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("aliasstore: open in-memory store: %w", err)
	}
	return &Store{db: db}, nil
}

// Close releases the underlying badger handles.
func (s *Store) Close() error {
	return s.db.Close()
}

// key derives blake2b-256(manifestBytes) || profilePath, per
// SPEC_FULL.md §4.9.
func key(manifestBytes []byte, profilePath string) []byte {
	sum := blake2b.Sum256(manifestBytes)
	return append(sum[:], []byte(profilePath)...)
}

// Put stores entry for (manifestBytes, profilePath). Per spec, a write
// failure never changes observable binding behavior: callers should
// log and continue rather than fail the load.
func (s *Store) Put(ctx context.Context, manifestBytes []byte, profilePath string, entry Entry) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	raw, err := json.Marshal(entry)
	if err != nil {
		return fmt.Errorf("aliasstore: encode entry: %w", err)
	}
	return s.db.Update(func(txn *badger.Txn) error {
		return txn.Set(key(manifestBytes, profilePath), raw)
	})
}

// Get retrieves a previously cached entry. A missing key is not an
// error: it reports (Entry{}, false, nil) so callers fall back to a
// full recompute.
func (s *Store) Get(ctx context.Context, manifestBytes []byte, profilePath string) (Entry, bool, error) {
	if err := ctx.Err(); err != nil {
		return Entry{}, false, err
	}

	var entry Entry
	var found bool
	err := s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get(key(manifestBytes, profilePath))
		if err == badger.ErrKeyNotFound {
			return nil
		}
		if err != nil {
			return err
		}
		return item.Value(func(val []byte) error {
			if jerr := json.Unmarshal(val, &entry); jerr != nil {
				return jerr
			}
			found = true
			return nil
		})
	})
	if err != nil {
		return Entry{}, false, fmt.Errorf("aliasstore: get: %w", err)
	}
	return entry, found, nil
}

// PutBestEffort calls Put and logs, rather than propagates, any
// failure, matching SPEC_FULL.md §4.9's "a corrupt/missing cache file
// degrades silently to always recompute".
func (s *Store) PutBestEffort(ctx context.Context, manifestBytes []byte, profilePath string, entry Entry) {
	if err := s.Put(ctx, manifestBytes, profilePath, entry); err != nil {
		logger.Warn("aliasstore: failed to cache manifest bindings", "profile", profilePath, "error", err)
	}
}
