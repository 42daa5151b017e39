package server

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// Number is a JSON field that accepts either a number or a numeric string,
// since form-driven clients submit everything as strings. It distinguishes
// "absent", "present but blank" (empty string or null) and an actual value,
// which the partial trade update needs to tell apart.
type Number struct {
	set   bool
	blank bool
	value float64
}

// UnmarshalJSON implements json.Unmarshaler.
func (n *Number) UnmarshalJSON(data []byte) error {
	n.set = true

	s := strings.TrimSpace(string(data))
	if s == "null" {
		n.blank = true
		return nil
	}

	if strings.HasPrefix(s, `"`) {
		var str string
		if err := json.Unmarshal(data, &str); err != nil {
			return err
		}
		str = strings.TrimSpace(str)
		if str == "" {
			n.blank = true
			return nil
		}
		value, err := strconv.ParseFloat(str, 64)
		if err != nil {
			return fmt.Errorf("invalid numeric value %q", str)
		}
		n.value = value
		return nil
	}

	return json.Unmarshal(data, &n.value)
}

// Set reports whether the field appeared in the request body.
func (n Number) Set() bool { return n.set }

// Blank reports whether the field appeared but carried no value.
func (n Number) Blank() bool { return n.set && n.blank }

// HasValue reports whether the field carries an actual number.
func (n Number) HasValue() bool { return n.set && !n.blank }

// Value returns the parsed number, or zero when blank or absent.
func (n Number) Value() float64 {
	if !n.HasValue() {
		return 0
	}
	return n.value
}

// Or returns the parsed number, or fallback when blank or absent.
func (n Number) Or(fallback float64) float64 {
	if !n.HasValue() {
		return fallback
	}
	return n.value
}
