package entities

import (
	"bytes"
	"encoding/json"
)

// Optional is a patch field for a nullable column. Set records whether the
// field was present at all; a present null leaves Value nil.
type Optional[T any] struct {
	Set   bool
	Value *T
}

// OptionalOf returns a present, non-null value.
func OptionalOf[T any](v T) Optional[T] {
	return Optional[T]{Set: true, Value: &v}
}

// OptionalNull returns a present null, which clears the stored value.
func OptionalNull[T any]() Optional[T] {
	return Optional[T]{Set: true}
}

// UnmarshalJSON is only invoked for keys present in the document, null
// included.
func (o *Optional[T]) UnmarshalJSON(data []byte) error {
	o.Set = true
	o.Value = nil
	if bytes.Equal(bytes.TrimSpace(data), []byte("null")) {
		return nil
	}
	var v T
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	o.Value = &v
	return nil
}

func (o Optional[T]) MarshalJSON() ([]byte, error) {
	if !o.Set || o.Value == nil {
		return []byte("null"), nil
	}
	return json.Marshal(*o.Value)
}
