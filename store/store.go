package store

import "github.com/guyvdb/srplist/record"

// Store persists the bulk request snapshot so a list can be rebuilt
// without refetching it.
type Store interface {
	// PutAll replaces the snapshot with records, keeping their order.
	PutAll(records []record.Record) error
	// GetAll returns the snapshot in the order it was written.
	GetAll() ([]record.Record, error)
	Get(id int64) (record.Record, error)
	Exists(id int64) (bool, error)
	Delete(id int64) error

	// DistinctValues returns the distinct keys of an indexed attribute in
	// index order.
	DistinctValues(attr record.Attribute) ([]string, error)

	Close() error
}
