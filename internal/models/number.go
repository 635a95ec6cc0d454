package models

import (
	"encoding/json"
	"fmt"
	"strconv"
)

// Number holds an upstream value that should be numeric. Decoding never
// fails on it; the type is checked when the value is read, so a wrong type
// is reported against the field that carried it.
type Number struct {
	raw json.RawMessage
}

// NumberOf wraps v, mostly for building responses in code.
func NumberOf(v float64) *Number {
	return &Number{raw: json.RawMessage(strconv.FormatFloat(v, 'f', -1, 64))}
}

func (n *Number) UnmarshalJSON(data []byte) error {
	n.raw = append(n.raw[:0], data...)
	return nil
}

func (n Number) MarshalJSON() ([]byte, error) {
	if len(n.raw) == 0 {
		return []byte("null"), nil
	}
	return n.raw, nil
}

// Float64 returns the value of an integer or fractional JSON number.
func (n Number) Float64() (float64, error) {
	var v float64
	if err := json.Unmarshal(n.raw, &v); err != nil {
		return 0, fmt.Errorf("not a number: %s", string(n.raw))
	}
	return v, nil
}
