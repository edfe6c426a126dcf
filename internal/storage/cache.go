// Package storage persists converted games between runs in a Badger
// database.
package storage

import (
	"encoding/json"
	stderrors "errors"
	"fmt"

	"github.com/dgraph-io/badger/v4"

	"github.com/lgbarn/pgn2web-go/internal/errors"
)

// keyPrefix namespaces converted games within the database.
const keyPrefix = "game/"

// Cache stores values as JSON under string keys.
type Cache struct {
	db *badger.DB
}

// Open opens or creates the cache database in dir.
func Open(dir string) (*Cache, error) {
	return open(badger.DefaultOptions(dir))
}

// OpenInMemory opens a cache that lives only as long as the process.
func OpenInMemory() (*Cache, error) {
	return open(badger.DefaultOptions("").WithInMemory(true))
}

func open(opts badger.Options) (*Cache, error) {
	opts.Logger = nil
	db, err := badger.Open(opts)
	if err != nil {
		return nil, errors.Wrap(err, "opening cache")
	}
	return &Cache{db: db}, nil
}

// Close closes the database
func (c *Cache) Close() error {
	if c.db != nil {
		return c.db.Close()
	}
	return nil
}

// Get decodes the value stored under key into v. It returns
// errors.ErrCacheMiss when the key is absent.
func (c *Cache) Get(key string, v interface{}) error {
	return c.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get([]byte(keyPrefix + key))
		if stderrors.Is(err, badger.ErrKeyNotFound) {
			return fmt.Errorf("%s: %w", key, errors.ErrCacheMiss)
		}
		if err != nil {
			return err
		}
		return item.Value(func(val []byte) error {
			return json.Unmarshal(val, v)
		})
	})
}

// Put stores v under key, replacing any earlier value.
func (c *Cache) Put(key string, v interface{}) error {
	data, err := json.Marshal(v)
	if err != nil {
		return err
	}
	return c.db.Update(func(txn *badger.Txn) error {
		return txn.Set([]byte(keyPrefix+key), data)
	})
}

// Delete removes key. Deleting a missing key is not an error.
func (c *Cache) Delete(key string) error {
	return c.db.Update(func(txn *badger.Txn) error {
		return txn.Delete([]byte(keyPrefix + key))
	})
}

// Len returns the number of stored games.
func (c *Cache) Len() (int, error) {
	n := 0
	err := c.db.View(func(txn *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.PrefetchValues = false
		opts.Prefix = []byte(keyPrefix)
		it := txn.NewIterator(opts)
		defer it.Close()
		for it.Rewind(); it.Valid(); it.Next() {
			n++
		}
		return nil
	})
	return n, err
}

// Clear removes every stored game.
func (c *Cache) Clear() error {
	return c.db.DropPrefix([]byte(keyPrefix))
}
