package models

import (
	"encoding/json"
	"strings"
	"time"
)

// DateLayout is the layout dates are stored with in the sheet
const DateLayout = "2006-01-02"

// Date is a calendar day. It marshals as plain YYYY-MM-DD and its zero value
// marks a blank or unparseable cell.
type Date struct {
	time.Time
}

// NewDate builds a Date from its parts
func NewDate(year int, month time.Month, day int) Date {
	return Date{time.Date(year, month, day, 0, 0, 0, 0, time.UTC)}
}

// DateOf truncates t to its calendar day
func DateOf(t time.Time) Date {
	return Date{time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)}
}

// ParseDate coerces a cell value to a Date, returning the zero value on
// failure so a single bad cell never fails a whole read
func ParseDate(s string) Date {
	t, err := time.Parse(DateLayout, strings.TrimSpace(s))
	if err != nil {
		return Date{}
	}
	return Date{t}
}

// AddDays returns the date n calendar days later
func (d Date) AddDays(n int) Date {
	return Date{d.AddDate(0, 0, n)}
}

// String renders the sheet layout, empty for the zero value
func (d Date) String() string {
	if d.IsZero() {
		return ""
	}
	return d.Format(DateLayout)
}

// MarshalJSON renders the date as a plain YYYY-MM-DD string
func (d Date) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.String())
}

// UnmarshalJSON accepts a plain YYYY-MM-DD string, coercing bad input to the
// zero value
func (d *Date) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return err
	}
	*d = ParseDate(s)
	return nil
}
