package store

import (
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
	"log/slog"

	"github.com/guyvdb/srplist/fault"
	"github.com/guyvdb/srplist/record"

	"go.etcd.io/bbolt"
)

// BoltStore implements the store.Store interface using BoltDB.
var _ Store = (*BoltStore)(nil)

const typeName = "Request"

var (
	recordBucket = []byte("Type." + typeName)
	idBucket     = []byte("Id." + typeName)
)

func indexBucketName(attr record.Attribute) []byte {
	return []byte("Index." + typeName + "." + attr.String())
}

type BoltStore struct {
	db      *bbolt.DB
	indexes []IndexDefinition
}

// NewBoltStore opens (or creates) the BoltDB file at path.
func NewBoltStore(path string) (*BoltStore, error) {

	slog.Debug("NewBoltStore - create bolt store", "path", path)

	db, err := bbolt.Open(path, 0600, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to open bolt db: %w", err)
	}

	// Buckets are created by the first PutAll.
	return &BoltStore{db: db, indexes: Indexes()}, nil
}

func seqKey(seq uint64) []byte {
	buf := make([]byte, 8)
	binary.BigEndian.PutUint64(buf, seq)
	return buf
}

func (bs *BoltStore) allBuckets() [][]byte {
	names := [][]byte{recordBucket, idBucket}
	for _, index := range bs.indexes {
		names = append(names, indexBucketName(index.Attr))
	}
	return names
}

func (bs *BoltStore) updateIndexes(tx *bbolt.Tx, r *record.Record, seq []byte) error {
	for _, index := range bs.indexes {
		name := indexBucketName(index.Attr)
		idxbucket := tx.Bucket(name)
		if idxbucket == nil {
			return fmt.Errorf("index bucket %s: %w", string(name), fault.ErrBucketNotFound)
		}
		if err := idxbucket.Put(index.indexKey(r), seq); err != nil {
			return fmt.Errorf("failed to put index entry for %s: %w", index.Attr, err)
		}
	}
	return nil
}

// PutAll replaces the stored snapshot with records in one transaction.
func (bs *BoltStore) PutAll(records []record.Record) error {
	return bs.db.Update(func(tx *bbolt.Tx) error {
		for _, name := range bs.allBuckets() {
			if tx.Bucket(name) != nil {
				if err := tx.DeleteBucket(name); err != nil {
					return fmt.Errorf("failed to drop bucket %s: %w", string(name), err)
				}
			}
			if _, err := tx.CreateBucket(name); err != nil {
				return fmt.Errorf("failed to create bucket %s: %w", string(name), fault.ErrBucketCreateFailed)
			}
		}

		bucket := tx.Bucket(recordBucket)
		ids := tx.Bucket(idBucket)
		for i := range records {
			r := &records[i]
			idKey := encodeInt64(r.Id)
			if ids.Get(idKey) != nil {
				return fmt.Errorf("%w: %d", fault.ErrDuplicateRecord, r.Id)
			}

			data, err := r.Marshal()
			if err != nil {
				return fault.ErrMarshalFailed
			}

			seq, err := bucket.NextSequence()
			if err != nil {
				return fault.ErrPutFailed
			}
			key := seqKey(seq)
			if err := bucket.Put(key, data); err != nil {
				return fault.ErrPutFailed
			}
			if err := ids.Put(idKey, key); err != nil {
				return fault.ErrPutFailed
			}
			if err := bs.updateIndexes(tx, r, key); err != nil {
				return fmt.Errorf("%w: %w", fault.ErrIndexUpdateFailed, err)
			}
		}
		slog.Debug("BoltStore.PutAll() - stored snapshot", "requests", len(records))
		return nil
	})
}

// GetAll returns every stored record in insertion order.
func (bs *BoltStore) GetAll() ([]record.Record, error) {
	results := make([]record.Record, 0)

	err := bs.db.View(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(recordBucket)
		if bucket == nil {
			// Nothing stored yet.
			return nil
		}

		cursor := bucket.Cursor()
		for k, v := cursor.First(); k != nil; k, v = cursor.Next() {
			var r record.Record
			if err := r.Unmarshal(v); err != nil {
				return fault.ErrUnmarshalFailed
			}
			results = append(results, r)
		}
		return nil
	})

	if err != nil {
		return nil, err
	}
	return results, nil
}

func (bs *BoltStore) get(tx *bbolt.Tx, id int64) (record.Record, []byte, error) {
	var r record.Record

	bucket := tx.Bucket(recordBucket)
	ids := tx.Bucket(idBucket)
	if bucket == nil || ids == nil {
		return r, nil, fault.ErrBucketNotFound
	}

	seq := ids.Get(encodeInt64(id))
	if seq == nil {
		return r, nil, fault.ErrKeyNotFound
	}
	val := bucket.Get(seq)
	if val == nil {
		return r, nil, fault.ErrKeyNotFound
	}
	if err := r.Unmarshal(val); err != nil {
		return r, nil, fault.ErrUnmarshalFailed
	}
	return r, bytes.Clone(seq), nil
}

// Get retrieves a record by its request id.
func (bs *BoltStore) Get(id int64) (record.Record, error) {
	var result record.Record

	slog.Debug("BoltStore.Get() - get item", "id", id)

	err := bs.db.View(func(tx *bbolt.Tx) error {
		r, _, err := bs.get(tx, id)
		result = r
		return err
	})
	return result, err
}

// Exists checks if a record with the given id is stored.
func (bs *BoltStore) Exists(id int64) (bool, error) {
	var exists bool

	err := bs.db.View(func(tx *bbolt.Tx) error {
		ids := tx.Bucket(idBucket)
		exists = ids != nil && ids.Get(encodeInt64(id)) != nil
		return nil
	})
	return exists, err
}

// Delete removes a record and its index entries.
func (bs *BoltStore) Delete(id int64) error {
	return bs.db.Update(func(tx *bbolt.Tx) error {
		r, seq, err := bs.get(tx, id)
		if err != nil {
			if errors.Is(err, fault.ErrKeyNotFound) || errors.Is(err, fault.ErrBucketNotFound) {
				slog.Debug("BoltStore.Delete: Item not found, considering delete successful", "id", id)
				return nil
			}
			return fmt.Errorf("failed to retrieve item %d for deletion: %w", id, err)
		}

		if err := tx.Bucket(recordBucket).Delete(seq); err != nil {
			return fmt.Errorf("failed to delete item %d: %w", id, err)
		}
		if err := tx.Bucket(idBucket).Delete(encodeInt64(id)); err != nil {
			return fmt.Errorf("failed to delete id entry for %d: %w", id, err)
		}

		for _, index := range bs.indexes {
			idxBucket := tx.Bucket(indexBucketName(index.Attr))
			if idxBucket == nil {
				continue
			}
			if err := idxBucket.Delete(index.indexKey(&r)); err != nil {
				return fmt.Errorf("failed to delete index entry for %s (item %d): %w", index.Attr, id, err)
			}
		}
		slog.Debug("BoltStore.Delete: Deleted item", "id", id)
		return nil
	})
}

// DistinctValues walks the index bucket of attr and returns each distinct
// value once, in index order.
func (bs *BoltStore) DistinctValues(attr record.Attribute) ([]string, error) {
	var index *IndexDefinition
	for i := range bs.indexes {
		if bs.indexes[i].Attr == attr {
			index = &bs.indexes[i]
		}
	}
	if index == nil {
		return nil, fmt.Errorf("%w: %s", fault.ErrNotIndexed, attr)
	}

	values := make([]string, 0)
	err := bs.db.View(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(indexBucketName(attr))
		if bucket == nil {
			return nil
		}

		var last []byte
		cursor := bucket.Cursor()
		for k, _ := cursor.First(); k != nil; k, _ = cursor.Next() {
			if len(k) < idSuffixLen {
				return fmt.Errorf("%w: short index key in %s", fault.ErrUnmarshalFailed, attr)
			}
			raw := k[:len(k)-idSuffixLen]
			if last != nil && bytes.Equal(raw, last) {
				continue
			}
			last = bytes.Clone(raw)

			v, err := index.decode(raw)
			if err != nil {
				return err
			}
			values = append(values, v.Key())
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return values, nil
}

// Close closes the BoltDB database.
func (bs *BoltStore) Close() error {
	slog.Debug("BoltStore.Close() - close db")
	if bs.db != nil {
		return bs.db.Close()
	}
	return nil
}
