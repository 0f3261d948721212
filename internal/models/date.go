package models

import (
	"fmt"
	"strings"
	"time"

	"gorm.io/datatypes"
)

// DateFormat is the wire format for all date fields (path segments and bodies).
const DateFormat = "2006-01-02"

// Date is a wrapper around gorm.io/datatypes.Date that speaks YYYY-MM-DD in
// JSON instead of the full RFC3339 timestamp.
type Date struct {
	datatypes.Date
}

// NewDate builds a Date from a time.Time, truncated to the day.
func NewDate(t time.Time) Date {
	return Date{datatypes.Date(t)}
}

// ParseDate parses a YYYY-MM-DD string.
func ParseDate(s string) (Date, error) {
	t, err := time.Parse(DateFormat, s)
	if err != nil {
		return Date{}, fmt.Errorf("invalid date %q: %w", s, err)
	}
	return NewDate(t), nil
}

// Time returns the underlying time.Time.
func (d Date) Time() time.Time {
	return time.Time(d.Date)
}

// IsZero reports whether the date is unset.
func (d Date) IsZero() bool {
	return d.Time().IsZero()
}

// MarshalJSON implements the json.Marshaler interface.
func (d Date) MarshalJSON() ([]byte, error) {
	return []byte(`"` + d.Time().Format(DateFormat) + `"`), nil
}

// UnmarshalJSON implements the json.Unmarshaler interface.
func (d *Date) UnmarshalJSON(data []byte) error {
	s := strings.Trim(string(data), `"`)
	if s == "" || s == "null" {
		return nil
	}
	parsed, err := ParseDate(s)
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}
