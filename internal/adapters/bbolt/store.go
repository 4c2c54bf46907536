// Package bbolt implements ports.DictionaryStore using bbolt (embedded
// B+ tree). All dictionaries live in one bucket, keyed by name, each value
// the binary form of a compact automaton. Writes are transactional — a crash
// mid-write cannot corrupt previously committed dictionaries.
package bbolt

import (
	"fmt"
	"time"

	"github.com/corey/dawgset/dawg"
	bolt "go.etcd.io/bbolt"
)

var bucketDictionaries = []byte("dictionaries")

// Store implements ports.DictionaryStore backed by bbolt.
type Store struct {
	db *bolt.DB
}

// NewStore opens (or creates) a bbolt database at the given path.
func NewStore(path string) (*Store, error) {
	db, err := bolt.Open(path, 0600, &bolt.Options{Timeout: 1 * time.Second})
	if err != nil {
		return nil, fmt.Errorf("bbolt open: %w", err)
	}
	return &Store{db: db}, nil
}

// Close closes the underlying bbolt database.
func (s *Store) Close() error {
	return s.db.Close()
}

// Save persists a compact set under name, overwriting any prior version.
func (s *Store) Save(name string, set *dawg.CompactSet) error {
	if set == nil {
		return fmt.Errorf("nil dictionary")
	}
	raw, err := set.MarshalBinary()
	if err != nil {
		return fmt.Errorf("marshal dictionary %q: %w", name, err)
	}
	return s.db.Update(func(tx *bolt.Tx) error {
		b, err := tx.CreateBucketIfNotExists(bucketDictionaries)
		if err != nil {
			return err
		}
		return b.Put([]byte(name), raw)
	})
}

// Load retrieves a dictionary by name. Returns nil, nil when absent.
func (s *Store) Load(name string) (*dawg.CompactSet, error) {
	var raw []byte
	err := s.db.View(func(tx *bolt.Tx) error {
		b := tx.Bucket(bucketDictionaries)
		if b == nil {
			return nil
		}
		if v := b.Get([]byte(name)); v != nil {
			raw = make([]byte, len(v))
			copy(raw, v)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	if raw == nil {
		return nil, nil
	}
	set, err := dawg.LoadCompact(raw)
	if err != nil {
		return nil, fmt.Errorf("decode dictionary %q: %w", name, err)
	}
	return set, nil
}

// List returns the stored dictionary names in ascending order.
func (s *Store) List() ([]string, error) {
	var names []string
	err := s.db.View(func(tx *bolt.Tx) error {
		b := tx.Bucket(bucketDictionaries)
		if b == nil {
			return nil
		}
		return b.ForEach(func(k, _ []byte) error {
			names = append(names, string(k))
			return nil
		})
	})
	if err != nil {
		return nil, err
	}
	return names, nil
}

// Delete removes a dictionary. Idempotent.
func (s *Store) Delete(name string) error {
	return s.db.Update(func(tx *bolt.Tx) error {
		b := tx.Bucket(bucketDictionaries)
		if b == nil {
			return nil
		}
		return b.Delete([]byte(name))
	})
}
