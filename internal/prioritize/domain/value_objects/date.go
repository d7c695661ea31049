package value_objects

import (
	"encoding/json"
	"fmt"
	"time"
)

// DateLayout is the wire format for calendar dates.
const DateLayout = "2006-01-02"

// Date represents a calendar date without a time component.
type Date struct {
	year  int
	month time.Month
	day   int
}

// NewDate creates a date from its components.
func NewDate(year int, month time.Month, day int) Date {
	return Date{year: year, month: month, day: day}
}

// DateFromTime truncates a time value to its calendar date.
func DateFromTime(t time.Time) Date {
	return Date{year: t.Year(), month: t.Month(), day: t.Day()}
}

// ParseDate parses an ISO YYYY-MM-DD string.
func ParseDate(s string) (Date, error) {
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return Date{}, fmt.Errorf("invalid date %q (use YYYY-MM-DD): %w", s, err)
	}
	return DateFromTime(t), nil
}

// Time returns the date at midnight UTC.
func (d Date) Time() time.Time {
	return time.Date(d.year, d.month, d.day, 0, 0, 0, 0, time.UTC)
}

// DaysUntil returns the number of whole days from d to other.
// Negative when other is before d.
func (d Date) DaysUntil(other Date) int {
	return int(other.Time().Sub(d.Time()).Hours() / 24)
}

// IsZero reports whether the date is the zero value.
func (d Date) IsZero() bool {
	return d.year == 0 && d.month == 0 && d.day == 0
}

// Equals checks date equality.
func (d Date) Equals(other Date) bool {
	return d == other
}

// String returns the ISO representation.
func (d Date) String() string {
	return d.Time().Format(DateLayout)
}

// MarshalJSON encodes the date as a YYYY-MM-DD string.
func (d Date) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.String())
}

// UnmarshalJSON accepts either a YYYY-MM-DD string or a full RFC 3339
// timestamp, which is truncated to its date.
func (d *Date) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("due date must be a string: %w", err)
	}

	parsed, err := ParseDate(s)
	if err == nil {
		*d = parsed
		return nil
	}

	t, tsErr := time.Parse(time.RFC3339, s)
	if tsErr != nil {
		return err
	}
	*d = DateFromTime(t)
	return nil
}
