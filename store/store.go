// Package store persists kernel results in a badger key-value database.
//
// Two record kinds are kept, each under a caller-chosen name:
//
//	p 0x00 <name> 0x00 <vertex> → partition number (big-endian uint64)
//	s 0x00 <name> 0x00 <pos>    → vertex ID at position pos (big-endian uint32)
//
// Writing a name replaces everything previously stored under it. Names may
// not be empty or contain a NUL byte.
package store

import (
	"encoding/binary"
	"errors"
	"fmt"
	"strings"

	badger "github.com/dgraph-io/badger/v3"

	"github.com/katalvlaran/lvforest/core"
)

// Sentinel errors.
var (
	// ErrNotFound indicates no record exists for the requested key.
	ErrNotFound = errors.New("store: not found")

	// ErrBadName indicates an empty record name or one containing NUL.
	ErrBadName = errors.New("store: bad name")
)

const (
	partitionTag = 'p'
	sequenceTag  = 's'

	maxAttempts = 32 // per replace, on write conflicts
)

// Store wraps an open badger database. It is safe for concurrent use.
type Store struct {
	db *badger.DB
}

// Open opens (or creates) a database in dir. An empty dir opens an
// in-memory database.
func Open(dir string) (*Store, error) {
	opts := badger.DefaultOptions(dir)
	if dir == "" {
		opts.InMemory = true
	}

	return open(opts)
}

func open(opts badger.Options) (*Store, error) {
	opts.Logger = nil
	opts.MetricsEnabled = false
	db, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("store: open %q: %w", opts.Dir, err)
	}

	return &Store{db: db}, nil
}

// OpenInMemory opens a database that lives only as long as the Store.
func OpenInMemory() (*Store, error) { return Open("") }

// Close flushes and releases the database.
func (s *Store) Close() error { return s.db.Close() }

// prefix builds tag NUL name NUL.
func prefix(tag byte, name string) []byte {
	b := make([]byte, 0, len(name)+3)
	b = append(b, tag, 0)
	b = append(b, name...)

	return append(b, 0)
}

func checkName(name string) error {
	if name == "" || strings.IndexByte(name, 0) >= 0 {
		return fmt.Errorf("%w: %q", ErrBadName, name)
	}

	return nil
}

func key(tag byte, name string, suffix []byte) []byte {
	return append(prefix(tag, name), suffix...)
}

// writer is the part of *badger.Txn and *badger.WriteBatch that replace
// hands to its callback.
type writer interface {
	Set(k, v []byte) error
	Delete(k []byte) error
}

// staleKeys lists every key under pfx.
func staleKeys(txn *badger.Txn, pfx []byte) [][]byte {
	var keys [][]byte
	it := txn.NewIterator(badger.IteratorOptions{Prefix: pfx})
	defer it.Close()
	for it.Seek(pfx); it.ValidForPrefix(pfx); it.Next() {
		keys = append(keys, it.Item().KeyCopy(nil))
	}

	return keys
}

// replace deletes every key under pfx and lets put add the new ones in a
// single transaction, so readers see either the old or the new record.
// A record too large for one transaction is rewritten through a write
// batch instead, which readers may observe half done. Concurrent writers
// of one name conflict and the loser retries.
func (s *Store) replace(pfx []byte, put func(w writer) error) error {
	var err error
	for attempt := 0; attempt < maxAttempts; attempt++ {
		err = s.db.Update(func(txn *badger.Txn) error {
			for _, k := range staleKeys(txn, pfx) {
				if err := txn.Delete(k); err != nil {
					return fmt.Errorf("store: delete: %w", err)
				}
			}

			return put(txn)
		})
		switch {
		case errors.Is(err, badger.ErrConflict):
			continue
		case errors.Is(err, badger.ErrTxnTooBig):
			return s.replaceBatched(pfx, put)
		default:
			return err
		}
	}

	return fmt.Errorf("store: gave up after %d attempts: %w", maxAttempts, err)
}

func (s *Store) replaceBatched(pfx []byte, put func(w writer) error) error {
	var stale [][]byte
	if err := s.db.View(func(txn *badger.Txn) error {
		stale = staleKeys(txn, pfx)
		return nil
	}); err != nil {
		return fmt.Errorf("store: scan: %w", err)
	}

	wb := s.db.NewWriteBatch()
	defer wb.Cancel()
	for _, k := range stale {
		if err := wb.Delete(k); err != nil {
			return fmt.Errorf("store: delete: %w", err)
		}
	}
	if err := put(wb); err != nil {
		return err
	}
	if err := wb.Flush(); err != nil {
		return fmt.Errorf("store: flush: %w", err)
	}

	return nil
}

// WritePartitions stores, for every member of sets[i], the partition number
// i under name. Members are dense indices of v and are stored by their
// original IDs.
func (s *Store) WritePartitions(name string, v core.View, sets [][]int) error {
	if err := checkName(name); err != nil {
		return err
	}

	return s.replace(prefix(partitionTag, name), func(w writer) error {
		for i, set := range sets {
			val := make([]byte, 8)
			binary.BigEndian.PutUint64(val, uint64(i))
			for _, node := range set {
				k := key(partitionTag, name, []byte(v.ToOriginalNodeID(node)))
				if err := w.Set(k, val); err != nil {
					return fmt.Errorf("store: set %q: %w", k, err)
				}
			}
		}

		return nil
	})
}

// ReadPartition returns the partition number stored for vertex id.
func (s *Store) ReadPartition(name, id string) (int, error) {
	var part int
	err := s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get(key(partitionTag, name, []byte(id)))
		if err != nil {
			return err
		}

		return item.Value(func(val []byte) error {
			part = int(binary.BigEndian.Uint64(val))
			return nil
		})
	})
	if errors.Is(err, badger.ErrKeyNotFound) {
		return 0, fmt.Errorf("%w: partition %q of %q", ErrNotFound, id, name)
	}

	return part, err
}

// ReadPartitions returns every vertex → partition pair stored under name.
func (s *Store) ReadPartitions(name string) (map[string]int, error) {
	out := make(map[string]int)
	pfx := prefix(partitionTag, name)
	err := s.db.View(func(txn *badger.Txn) error {
		it := txn.NewIterator(badger.IteratorOptions{
			PrefetchValues: true,
			PrefetchSize:   100,
			Prefix:         pfx,
		})
		defer it.Close()

		for it.Seek(pfx); it.ValidForPrefix(pfx); it.Next() {
			item := it.Item()
			id := string(item.Key()[len(pfx):])
			if err := item.Value(func(val []byte) error {
				out[id] = int(binary.BigEndian.Uint64(val))
				return nil
			}); err != nil {
				return err
			}
		}

		return nil
	})

	return out, err
}

// WriteSequence stores nodes in order under name.
func (s *Store) WriteSequence(name string, nodes []string) error {
	if err := checkName(name); err != nil {
		return err
	}

	return s.replace(prefix(sequenceTag, name), func(w writer) error {
		var pos [4]byte
		for i, id := range nodes {
			binary.BigEndian.PutUint32(pos[:], uint32(i))
			if err := w.Set(key(sequenceTag, name, pos[:]), []byte(id)); err != nil {
				return fmt.Errorf("store: set %s[%d]: %w", name, i, err)
			}
		}

		return nil
	})
}

// ReadSequence returns the nodes stored under name, in order. An unknown
// name yields ErrNotFound; a stored empty sequence cannot be told apart
// from an unknown one and yields ErrNotFound too.
func (s *Store) ReadSequence(name string) ([]string, error) {
	var out []string
	pfx := prefix(sequenceTag, name)
	err := s.db.View(func(txn *badger.Txn) error {
		it := txn.NewIterator(badger.IteratorOptions{
			PrefetchValues: true,
			PrefetchSize:   100,
			Prefix:         pfx,
		})
		defer it.Close()

		for it.Seek(pfx); it.ValidForPrefix(pfx); it.Next() {
			val, err := it.Item().ValueCopy(nil)
			if err != nil {
				return err
			}
			out = append(out, string(val))
		}

		return nil
	})
	if err != nil {
		return nil, err
	}
	if out == nil {
		return nil, fmt.Errorf("%w: sequence %q", ErrNotFound, name)
	}

	return out, nil
}
