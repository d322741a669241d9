package domain

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// ID is the canonical identifier representation. The upstream API emits ids
// as JSON numbers in some catalogs and strings in others; everything is
// normalized to the string form at the decoding boundary so comparisons never
// have to coerce again.
type ID string

func (id ID) String() string { return string(id) }

func (id *ID) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if len(b) == 0 || string(b) == "null" {
		*id = ""
		return nil
	}
	if b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		*id = ID(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(b, &n); err != nil {
		return fmt.Errorf("id: %w", err)
	}
	*id = ID(n.String())
	return nil
}

// NormalizeID coerces any identifier value to its canonical string form.
// Applied wherever ids enter from outside JSON decoding (URL parameters,
// route segments).
func NormalizeID(v any) ID {
	switch x := v.(type) {
	case nil:
		return ""
	case ID:
		return x
	case string:
		return ID(x)
	case float64:
		return ID(fmt.Sprintf("%g", x))
	default:
		return ID(fmt.Sprint(x))
	}
}
