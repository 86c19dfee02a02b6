package validation

import (
	"encoding/json"
)

// OptionalString distinguishes a field that was omitted from one sent as null or "".
type OptionalString struct {
	Set   bool
	Value *string
}

// UnmarshalJSON implements json.Unmarshaler. It only runs when the key is present.
func (o *OptionalString) UnmarshalJSON(b []byte) error {
	o.Set = true
	if string(b) == "null" {
		o.Value = nil
		return nil
	}
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return err
	}
	o.Value = &s
	return nil
}

// NonEmpty returns the value, or nil when it is absent, null or empty.
func (o OptionalString) NonEmpty() *string {
	if o.Value == nil || *o.Value == "" {
		return nil
	}
	return o.Value
}
