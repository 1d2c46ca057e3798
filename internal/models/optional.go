package models

import "encoding/json"

// Optional wraps a field of a partial-update request so that a key that is
// absent from the JSON body can be told apart from a key that is present.
// UnmarshalJSON only runs for keys that exist in the body, so Set is true
// exactly when the caller supplied the field. Null records that the
// supplied value was an explicit JSON null, for fields where null and the
// zero value must not mean the same thing.
type Optional[T any] struct {
	Value T
	Set   bool
	Null  bool
}

// NewOptional returns a set Optional holding v.
func NewOptional[T any](v T) Optional[T] {
	return Optional[T]{Value: v, Set: true}
}

// UnmarshalJSON implements json.Unmarshaler.
func (o *Optional[T]) UnmarshalJSON(data []byte) error {
	o.Set = true
	if string(data) == "null" {
		o.Null = true
		var zero T
		o.Value = zero
		return nil
	}
	return json.Unmarshal(data, &o.Value)
}

// MarshalJSON implements json.Marshaler. An unset Optional marshals to null;
// callers that need the key dropped entirely should skip unset fields.
func (o Optional[T]) MarshalJSON() ([]byte, error) {
	if !o.Set {
		return []byte("null"), nil
	}
	return json.Marshal(o.Value)
}
