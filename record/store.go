package record

import (
	"fmt"
	"slices"

	"github.com/guyvdb/srplist/fault"
)

// Store is the immutable set of records loaded at startup, kept in the
// order they were delivered.
type Store struct {
	records []Record
	byId    map[int64]int
}

// NewStore copies records into a new Store. Ids must be unique.
func NewStore(records []Record) (*Store, error) {
	s := &Store{
		records: make([]Record, len(records)),
		byId:    make(map[int64]int, len(records)),
	}
	copy(s.records, records)
	for i := range s.records {
		id := s.records[i].Id
		if _, exists := s.byId[id]; exists {
			return nil, fmt.Errorf("%w: %d", fault.ErrDuplicateRecord, id)
		}
		s.byId[id] = i
	}
	return s, nil
}

func (s *Store) Len() int { return len(s.records) }

// At returns the i-th record in insertion order. The record must not be
// modified.
func (s *Store) At(i int) *Record {
	return &s.records[i]
}

// Get returns a copy of the record with the given id.
func (s *Store) Get(id int64) (Record, bool) {
	i, ok := s.byId[id]
	if !ok {
		return Record{}, false
	}
	return s.records[i], true
}

// Records returns a copy of every record in insertion order.
func (s *Store) Records() []Record {
	return slices.Clone(s.records)
}

// DistinctValues returns the distinct keys of attr across the store in the
// attribute's natural order.
func (s *Store) DistinctValues(attr Attribute) ([]string, error) {
	if !attr.Valid() {
		return nil, fmt.Errorf("%w: %s", fault.ErrUnknownAttribute, attr)
	}

	seen := make(map[string]bool)
	values := make([]Value, 0)
	for i := range s.records {
		v := attr.Of(&s.records[i])
		if k := v.Key(); !seen[k] {
			seen[k] = true
			values = append(values, v)
		}
	}
	slices.SortFunc(values, Value.Compare)

	keys := make([]string, len(values))
	for i, v := range values {
		keys[i] = v.Key()
	}
	return keys, nil
}
