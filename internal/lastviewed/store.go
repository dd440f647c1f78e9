// Package lastviewed persists the single most recently opened sport record.
//
// The store wraps one fixed slot in a local bbolt database. Load treats an
// absent or undecodable slot identically as "no value"; Save overwrites the
// slot unconditionally. There are no other keys and no migration.
package lastviewed

import (
	"encoding/json"
	"fmt"
	"time"

	"go.etcd.io/bbolt"

	"github.com/Paulo20Lima/esportes/internal/catalog"
)

const (
	bucketName = "lastviewed" // single bucket, single key
	slotKey    = "sport"      // key: slotKey -> Sport JSON

	openTimeout = 1 * time.Second
)

// Store holds the last-viewed slot in a bbolt database.
type Store struct {
	db *bbolt.DB
}

// Open opens (creating if needed) the database at path and ensures the
// slot bucket exists.
func Open(path string) (*Store, error) {
	db, err := bbolt.Open(path, 0600, &bbolt.Options{Timeout: openTimeout})
	if err != nil {
		return nil, fmt.Errorf("failed to open last-viewed store: %w", err)
	}

	if err := db.Update(func(tx *bbolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists([]byte(bucketName))
		return err
	}); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to init last-viewed store: %w", err)
	}

	return &Store{db: db}, nil
}

// Close closes the underlying database.
func (s *Store) Close() error {
	return s.db.Close()
}

// Load reads the slot. A nil record with a nil error means "no value": the
// slot has never been written, or its contents could not be decoded. Decode
// failures are deliberately folded into the absent case rather than surfaced;
// only real I/O errors are returned.
func (s *Store) Load() (*catalog.Sport, error) {
	var data []byte
	if err := s.db.View(func(tx *bbolt.Tx) error {
		if v := tx.Bucket([]byte(bucketName)).Get([]byte(slotKey)); v != nil {
			// Values are only valid inside the transaction.
			data = append([]byte(nil), v...)
		}
		return nil
	}); err != nil {
		return nil, fmt.Errorf("failed to read last-viewed slot: %w", err)
	}

	if data == nil {
		return nil, nil
	}

	var sport catalog.Sport
	if err := json.Unmarshal(data, &sport); err != nil {
		// Undecodable slot degrades to "no value".
		return nil, nil
	}
	return &sport, nil
}

// Save serializes sport and overwrites the slot. The previous value, if any,
// is replaced wholesale; nothing is merged.
func (s *Store) Save(sport catalog.Sport) error {
	data, err := json.Marshal(sport)
	if err != nil {
		return fmt.Errorf("failed to encode last-viewed sport: %w", err)
	}

	if err := s.db.Update(func(tx *bbolt.Tx) error {
		return tx.Bucket([]byte(bucketName)).Put([]byte(slotKey), data)
	}); err != nil {
		return fmt.Errorf("failed to write last-viewed slot: %w", err)
	}
	return nil
}

// Clear removes the slot contents, returning the store to the "no value"
// state. Exposed for tooling and tests.
func (s *Store) Clear() error {
	return s.db.Update(func(tx *bbolt.Tx) error {
		return tx.Bucket([]byte(bucketName)).Delete([]byte(slotKey))
	})
}
