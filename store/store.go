package store

import (
	"iter"
	"slices"
)

// Store holds configuration entries in insertion order together with
// the section index needed to write them back out. Overwriting a key
// keeps its original position.
type Store struct {
	keys  []string
	vals  map[string]Value
	sects Sections
	dirty bool
}

func New() *Store {
	return &Store{
		vals: map[string]Value{},
	}
}

func (s *Store) Len() int {
	return len(s.keys)
}

func (s *Store) Get(key string) (Value, bool) {
	v, ok := s.vals[key]
	return v, ok
}

// Put inserts or overwrites key. It reports whether the store changed;
// writing a value equal to the present one is a no-op. Changes mark the
// store dirty.
func (s *Store) Put(key string, v Value) bool {
	old, ok := s.vals[key]
	if ok && old.Equal(v) {
		return false
	}
	if !ok {
		s.keys = append(s.keys, key)
	}
	s.vals[key] = v
	s.dirty = true
	return true
}

// Delete removes key, reporting whether it was present.
func (s *Store) Delete(key string) bool {
	if _, ok := s.vals[key]; !ok {
		return false
	}
	delete(s.vals, key)
	i := slices.Index(s.keys, key)
	s.keys = slices.Delete(s.keys, i, i+1)
	s.dirty = true
	return true
}

// Keys returns the keys in insertion order.
func (s *Store) Keys() []string {
	return slices.Clone(s.keys)
}

// Values returns the values in key insertion order.
func (s *Store) Values() []Value {
	res := make([]Value, len(s.keys))
	for i, k := range s.keys {
		res[i] = s.vals[k]
	}
	return res
}

// All iterates entries in insertion order.
func (s *Store) All() iter.Seq2[string, Value] {
	return func(yield func(string, Value) bool) {
		for _, k := range s.keys {
			if !yield(k, s.vals[k]) {
				return
			}
		}
	}
}

func (s *Store) Sections() *Sections {
	return &s.sects
}

// Dirty reports whether entries changed since construction or the last
// MarkClean. Section registration alone does not count.
func (s *Store) Dirty() bool {
	return s.dirty
}

func (s *Store) MarkClean() {
	s.dirty = false
}
