// Package memdbstore backs a memo cache with an in-memory go-memdb table.
//
// Entries are indexed by Key.Encode, and each record keeps the original key so
// that a lookup only ever matches its own input pair. A key whose encoding is
// already taken by a different pair, or a key holding a NaN, is never stored.
// Reads run on snapshots and writes are serialized by memdb, so the store is
// safe for concurrent use.
package memdbstore

import (
	"fmt"

	memdb "github.com/hashicorp/go-memdb"

	"github.com/on-the-ground/memocache/memo"
	"github.com/on-the-ground/memocache/shared/helper"
)

const (
	tableName = "memo"
	indexName = "id"
)

var _ memo.Store[memo.Key[int, int], int] = &Store[int, int, int]{}

type Store[I1, I2 comparable, O any] struct {
	db *memdb.MemDB
}

type record[I1, I2 comparable, O any] struct {
	ID    string
	Key   memo.Key[I1, I2]
	Value O
}

func schema() *memdb.DBSchema {
	return &memdb.DBSchema{
		Tables: map[string]*memdb.TableSchema{
			tableName: {
				Name: tableName,
				Indexes: map[string]*memdb.IndexSchema{
					indexName: {
						Name:    indexName,
						Unique:  true,
						Indexer: &memdb.StringFieldIndex{Field: "ID"},
					},
				},
			},
		},
	}
}

func New[I1, I2 comparable, O any]() (*Store[I1, I2, O], error) {
	db, err := memdb.NewMemDB(schema())
	if err != nil {
		return nil, fmt.Errorf("memdbstore: create db: %w", err)
	}
	return &Store[I1, I2, O]{db: db}, nil
}

func (s *Store[I1, I2, O]) Load(key memo.Key[I1, I2]) (O, bool) {
	txn := s.db.Txn(false)
	defer txn.Abort()

	rec, ok := first[I1, I2, O](txn, key)
	if !ok || rec.Key != key {
		var zero O
		return zero, false
	}
	return rec.Value, true
}

func (s *Store[I1, I2, O]) InsertIfAbsent(key memo.Key[I1, I2], value O) bool {
	txn := s.db.Txn(true)
	defer txn.Abort()

	if !key.Reflexive() {
		return false
	}
	// the slot may hold this key or another pair with the same encoding
	if _, ok := first[I1, I2, O](txn, key); ok {
		return false
	}
	rec := &record[I1, I2, O]{ID: key.Encode(), Key: key, Value: value}
	if err := txn.Insert(tableName, rec); err != nil {
		panic(fmt.Errorf("memdbstore: insert %v: %w", key, err))
	}
	txn.Commit()
	return true
}

func (s *Store[I1, I2, O]) Len() int {
	n := 0
	s.Range(func(memo.Key[I1, I2], O) bool {
		n++
		return true
	})
	return n
}

func (s *Store[I1, I2, O]) Range(fn func(memo.Key[I1, I2], O) bool) {
	txn := s.db.Txn(false)
	defer txn.Abort()

	it, err := txn.Get(tableName, indexName)
	if err != nil {
		panic(fmt.Errorf("memdbstore: scan: %w", err))
	}
	for raw := it.Next(); raw != nil; raw = it.Next() {
		rec := helper.MustTypedOf[*record[I1, I2, O]](raw)
		if !fn(rec.Key, rec.Value) {
			return
		}
	}
}

// first returns the record stored under key's encoding, which may belong to another pair.
// It panics on lookup errors, which only come from a broken schema or table.
func first[I1, I2 comparable, O any](txn *memdb.Txn, key memo.Key[I1, I2]) (*record[I1, I2, O], bool) {
	raw, err := txn.First(tableName, indexName, key.Encode())
	if err != nil {
		panic(fmt.Errorf("memdbstore: lookup %v: %w", key, err))
	}
	rec, ok, err := helper.TypedOf[*record[I1, I2, O]](raw)
	if err != nil {
		panic(fmt.Errorf("memdbstore: lookup %v: %w", key, err))
	}
	return rec, ok
}
