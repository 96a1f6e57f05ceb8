package dt

import "encoding/json"

// MarshalJSON produces a JSON array of the values in the list. By
// supporting json.Marshaler and json.Unmarshaler, lists can behave as
// arrays in larger json objects.
func (l *List[T]) MarshalJSON() ([]byte, error) { return json.Marshal(l.Slice()) }

// UnmarshalJSON reads a JSON array and appends its values to the
// list. Existing elements are not removed, and iterators at End stay
// at End. If any value cannot be decoded, the list is not modified.
func (l *List[T]) UnmarshalJSON(in []byte) error {
	rv := []json.RawMessage{}
	if err := json.Unmarshal(in, &rv); err != nil {
		return err
	}

	vals := make([]T, len(rv))
	for idx := range rv {
		if err := json.Unmarshal(rv[idx], &vals[idx]); err != nil {
			return err
		}
	}

	l.Append(vals...)
	return nil
}
