// Package shapes creates decorative bodies and paints them.
//
// A Factory asks a physics.Builder for a body with a collision proxy that
// roughly matches the silhouette of the shape and records how to draw
// the body in a Store. Renderers look up that record on every frame and paint
// the body at its current position and angle. A renderer that finds no record,
// or a record of a different kind, draws nothing.
package shapes

import (
	"github.com/oliverbestmann/tumble/physics"
)

// Record describes how to paint a single body.
type Record interface {
	Kind() Kind
}

// Store maps bodies to their records. The zero value is an empty store,
// and a nil store behaves like an empty one for lookups.
type Store struct {
	records map[*physics.Body]Record
}

func NewStore() *Store {
	return &Store{records: map[*physics.Body]Record{}}
}

// Set inserts or replaces the record of the given body.
func (s *Store) Set(body *physics.Body, record Record) {
	if s.records == nil {
		s.records = map[*physics.Body]Record{}
	}

	s.records[body] = record
}

func (s *Store) Get(body *physics.Body) (Record, bool) {
	if s == nil || body == nil {
		return nil, false
	}

	record, ok := s.records[body]
	return record, ok
}

func (s *Store) Len() int {
	if s == nil {
		return 0
	}

	return len(s.records)
}

// lookup returns the record of the body if it has the concrete type R.
func lookup[R Record](store *Store, body *physics.Body) (R, bool) {
	record, ok := store.Get(body)
	if !ok {
		var zero R
		return zero, false
	}

	typed, ok := record.(R)
	return typed, ok
}

// Clear drops all records.
func (s *Store) Clear() {
	if s == nil {
		return
	}

	clear(s.records)
}
