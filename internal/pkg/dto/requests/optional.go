package requests

import (
	"bytes"
	"encoding/json"
)

// Optional tells apart a field that was left out of a JSON body (Set false), one
// sent as an explicit null (Set true, Null true) and one sent with a value.
type Optional[T any] struct {
	Set   bool
	Null  bool
	Value T
}

func (o *Optional[T]) UnmarshalJSON(data []byte) error {
	o.Set = true
	if bytes.Equal(bytes.TrimSpace(data), []byte("null")) {
		o.Null = true
		var zero T
		o.Value = zero
		return nil
	}
	o.Null = false
	return json.Unmarshal(data, &o.Value)
}

// Apply writes the patch value onto target when the field was sent. An explicit
// null clears target so the merged record fails its required checks.
func (o Optional[T]) Apply(target **T) {
	if !o.Set {
		return
	}
	if o.Null {
		*target = nil
		return
	}
	value := o.Value
	*target = &value
}
