// Package types implements special types for the loan tracker.
package types

import (
	"database/sql"
	"database/sql/driver"
	"fmt"
	"regexp"
	"strings"
	"time"
)

const dateLayout = "2006-01-02"

var fullDate = regexp.MustCompile("^[0-9]{4}-[0-9]{2}-[0-9]{2}$")

// Date is a calendar day without time of day, always in UTC.
type Date time.Time

// NewDate returns a new Date.
func NewDate(year int, month time.Month, day int) Date {
	return Date(time.Date(year, month, day, 0, 0, 0, 0, time.UTC))
}

// DateOf returns the Date on which a time occurs in that time's location.
func DateOf(t time.Time) Date {
	year, month, day := t.Date()
	return NewDate(year, month, day)
}

// ParseDate parses a string in "YYYY-MM-DD" or RFC3339 format.
//
// For RFC3339 timestamps, everything but the date is ignored.
func ParseDate(s string) (Date, error) {
	layout := time.RFC3339
	if fullDate.MatchString(s) {
		layout = dateLayout
	}

	t, err := time.Parse(layout, s)
	if err != nil {
		return Date{}, err
	}

	return DateOf(t), nil
}

// String returns the date formatted as YYYY-MM-DD.
func (d Date) String() string {
	return time.Time(d).Format(dateLayout)
}

// MarshalJSON implements the json.Marshaler interface.
func (d Date) MarshalJSON() ([]byte, error) {
	return []byte(fmt.Sprintf("%q", d.String())), nil
}

// UnmarshalJSON implements the json.Unmarshaler interface.
// The date is expected to be a string in a format accepted by ParseDate.
func (d *Date) UnmarshalJSON(data []byte) error {
	value := strings.Trim(string(data), `"`)
	if value == "" || value == "null" {
		return nil
	}

	parsed, err := ParseDate(value)
	if err != nil {
		return err
	}

	*d = parsed
	return nil
}

// Scan writes the value from the database.
func (d *Date) Scan(value interface{}) error {
	// Some drivers hand back dates as text
	switch v := value.(type) {
	case string:
		return d.scanString(v)
	case []byte:
		return d.scanString(string(v))
	}

	nullTime := &sql.NullTime{}
	err := nullTime.Scan(value)
	if err != nil {
		return err
	}

	*d = DateOf(nullTime.Time)
	return nil
}

func (d *Date) scanString(s string) error {
	if len(s) >= len(dateLayout) {
		s = s[:len(dateLayout)]
	}

	t, err := time.Parse(dateLayout, s)
	if err != nil {
		return err
	}

	*d = DateOf(t)
	return nil
}

// Value returns the value for the SQL driver to write to the database.
func (d Date) Value() (driver.Value, error) {
	year, month, day := time.Time(d).Date()
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC), nil
}

// GormDataType defines the data type used by gorm the type.
func (Date) GormDataType() string {
	return "date"
}

// IsZero reports if the date is the zero value.
func (d Date) IsZero() bool {
	return time.Time(d).IsZero()
}

// Equal reports whether d and e represent the same day.
func (d Date) Equal(e Date) bool {
	return time.Time(d).Equal(time.Time(e))
}
