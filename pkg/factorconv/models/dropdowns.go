package models

import (
	"bytes"
	"encoding/json"
)

// DropdownSet is an insertion-ordered mapping from logical field name to its
// list of selectable options ([]string, or []int for the year range). Plain
// maps lose ordering on serialization, and the output contract requires the
// static categories first with dynamic entries appended, so the set keeps an
// explicit key order and marshals itself.
type DropdownSet struct {
	keys   []string
	values map[string]interface{}
}

// NewDropdownSet returns an empty ordered dropdown set.
func NewDropdownSet() *DropdownSet {
	return &DropdownSet{values: make(map[string]interface{})}
}

// Set adds or replaces an entry. A new key is appended after all existing
// keys; replacing an existing key keeps its original position.
func (s *DropdownSet) Set(key string, value interface{}) {
	if _, ok := s.values[key]; !ok {
		s.keys = append(s.keys, key)
	}
	s.values[key] = value
}

// Get returns the value stored under key.
func (s *DropdownSet) Get(key string) (interface{}, bool) {
	v, ok := s.values[key]
	return v, ok
}

// Has reports whether key is present.
func (s *DropdownSet) Has(key string) bool {
	_, ok := s.values[key]
	return ok
}

// Keys returns the keys in insertion order.
func (s *DropdownSet) Keys() []string {
	out := make([]string, len(s.keys))
	copy(out, s.keys)
	return out
}

// Len returns the number of entries.
func (s *DropdownSet) Len() int {
	return len(s.keys)
}

// MarshalJSON serializes the set as a JSON object preserving insertion order.
func (s *DropdownSet) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, key := range s.keys {
		if i > 0 {
			buf.WriteByte(',')
		}
		k, err := json.Marshal(key)
		if err != nil {
			return nil, err
		}
		buf.Write(k)
		buf.WriteByte(':')
		v, err := json.Marshal(s.values[key])
		if err != nil {
			return nil, err
		}
		buf.Write(v)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}
