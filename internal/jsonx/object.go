// Package jsonx decodes JSON objects whose key order carries meaning.
//
// The collection API returns listings as objects keyed by name
// ({"alpha": {...}, "beta": {...}}). Decoding them into a Go map would lose
// the order the backend chose, so Object keeps the members as a slice.
package jsonx

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// Field is one member of a JSON object.
type Field[T any] struct {
	Key   string
	Value T
}

// Object is a JSON object decoded in document order.
type Object[T any] []Field[T]

// UnmarshalJSON decodes an object (or null) member by member.
func (o *Object[T]) UnmarshalJSON(b []byte) error {
	dec := json.NewDecoder(bytes.NewReader(b))

	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if tok == nil {
		*o = nil
		return nil
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return fmt.Errorf("jsonx: expected object, got %v", tok)
	}

	fields := make(Object[T], 0)
	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return err
		}
		key, ok := keyTok.(string)
		if !ok {
			return fmt.Errorf("jsonx: expected string key, got %v", keyTok)
		}

		var value T
		if err := dec.Decode(&value); err != nil {
			return fmt.Errorf("jsonx: member %q: %w", key, err)
		}
		fields = append(fields, Field[T]{Key: key, Value: value})
	}

	if _, err := dec.Token(); err != nil {
		return err
	}

	*o = fields
	return nil
}

// Keys returns the member names in document order.
func (o Object[T]) Keys() []string {
	keys := make([]string, len(o))
	for i, f := range o {
		keys[i] = f.Key
	}
	return keys
}
