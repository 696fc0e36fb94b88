package storage

import (
	stderrors "errors"
	"fmt"
	"log/slog"
	"smartshop/errors"

	"github.com/dgraph-io/badger/v4"
)

const keyPrefix = "kv:"

type BadgerStore struct {
	db  *badger.DB
	log *slog.Logger
}

func NewBadgerStore(db *badger.DB, log *slog.Logger) *BadgerStore {
	return &BadgerStore{db: db, log: log}
}

// OpenBadgerStore opens (or creates) the on-disk store at path.
func OpenBadgerStore(path string, log *slog.Logger) (*BadgerStore, error) {
	db, err := badger.Open(badger.DefaultOptions(path).
		WithLoggingLevel(badger.WARNING))
	if err != nil {
		return nil, fmt.Errorf("opening badger at %s: %w", path, err)
	}
	return NewBadgerStore(db, log), nil
}

// OpenReadOnly opens an existing store for inspection while a client may still hold it.
func OpenReadOnly(path string, log *slog.Logger) (*BadgerStore, error) {
	db, err := badger.Open(badger.DefaultOptions(path).
		WithReadOnly(true).
		WithBypassLockGuard(true).
		WithLogger(nil))
	if err != nil {
		return nil, fmt.Errorf("opening badger at %s read-only: %w", path, err)
	}
	return NewBadgerStore(db, log), nil
}

// OpenInMemory opens a store that lives only as long as the process.
func OpenInMemory(log *slog.Logger) (*BadgerStore, error) {
	db, err := badger.Open(badger.DefaultOptions("").
		WithInMemory(true).
		WithLogger(nil))
	if err != nil {
		return nil, fmt.Errorf("opening in-memory badger: %w", err)
	}
	return NewBadgerStore(db, log), nil
}

func (s *BadgerStore) Read(key string) ([]byte, error) {
	var value []byte
	err := s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get(namespaced(key))
		if err != nil {
			return err
		}
		value, err = item.ValueCopy(nil)
		return err
	})
	if stderrors.Is(err, badger.ErrKeyNotFound) {
		return nil, errors.ErrKeyNotFound
	}
	return value, err
}

func (s *BadgerStore) Write(key string, value []byte) error {
	return s.db.Update(func(txn *badger.Txn) error {
		return txn.Set(namespaced(key), value)
	})
}

func (s *BadgerStore) Delete(key string) error {
	return s.db.Update(func(txn *badger.Txn) error {
		return txn.Delete(namespaced(key))
	})
}

// Clear drops every key written through the store and nothing else.
func (s *BadgerStore) Clear() error {
	return s.db.DropPrefix([]byte(keyPrefix))
}

// Scan visits every stored key in lexical order.
func (s *BadgerStore) Scan(fn func(key string, value []byte) error) error {
	prefix := []byte(keyPrefix)
	return s.db.View(func(txn *badger.Txn) error {
		it := txn.NewIterator(badger.DefaultIteratorOptions)
		defer it.Close()
		for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
			item := it.Item()
			value, err := item.ValueCopy(nil)
			if err != nil {
				return err
			}
			if err = fn(string(item.Key()[len(prefix):]), value); err != nil {
				return err
			}
		}
		return nil
	})
}

func (s *BadgerStore) Close() error {
	s.log.Debug("Closing key/value store")
	return s.db.Close()
}

func namespaced(key string) []byte {
	return []byte(keyPrefix + key)
}
