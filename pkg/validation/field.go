package validation

import (
	"bytes"
	"encoding/json"
	"strings"
)

// Field is an optional JSON value that remembers how it arrived.
// Decoding never fails on a type mismatch so one bad field does not hide the others.
type Field[T any] struct {
	Value   T
	Present bool // key was in the payload
	Empty   bool // null, "" or whitespace only
	Invalid bool // wrong JSON type for T
}

var null = []byte("null")

func (f *Field[T]) UnmarshalJSON(b []byte) error {
	f.Present = true
	b = bytes.TrimSpace(b)
	if bytes.Equal(b, null) {
		f.Empty = true
		return nil
	}
	var v T
	if err := json.Unmarshal(b, &v); err != nil {
		// "" is "no value" for every type, not a type error
		if bytes.Equal(b, []byte(`""`)) {
			f.Empty = true
			return nil
		}
		f.Invalid = true
		return nil
	}
	if s, ok := any(v).(string); ok && strings.TrimSpace(s) == "" {
		f.Empty = true
		return nil
	}
	f.Value = v
	return nil
}

// Filled reports whether the field carries a usable value.
func (f Field[T]) Filled() bool {
	return f.Present && !f.Empty && !f.Invalid
}

// Ptr returns a pointer to the value when filled, nil otherwise.
func (f Field[T]) Ptr() *T {
	if !f.Filled() {
		return nil
	}
	v := f.Value
	return &v
}

// Set builds a filled field, mostly for tests and internal callers.
func Set[T any](v T) Field[T] {
	return Field[T]{Value: v, Present: true}
}
