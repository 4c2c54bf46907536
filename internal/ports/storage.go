// Package ports defines the interfaces (contracts) that adapters must
// implement. These are the boundaries of the hexagonal architecture: the
// command layer depends only on these interfaces, never on concrete
// implementations.
package ports

import "github.com/corey/dawgset/dawg"

// DictionaryStore persists compact automata under a name. The backing store
// (bbolt) serializes whole dictionaries; writes are transactional, so a crash
// mid-save cannot corrupt a previously committed dictionary.
type DictionaryStore interface {
	// Save persists a compact set under name, overwriting any prior version.
	Save(name string, set *dawg.CompactSet) error

	// Load retrieves a dictionary by name. Returns nil, nil when no
	// dictionary with that name exists.
	Load(name string) (*dawg.CompactSet, error)

	// List returns the stored dictionary names in ascending order.
	List() ([]string, error)

	// Delete removes a dictionary. Deleting a nonexistent name is not an
	// error.
	Delete(name string) error

	// Close releases the underlying database.
	Close() error
}
