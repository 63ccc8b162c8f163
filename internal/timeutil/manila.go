package timeutil

import (
	"fmt"
	"time"
)

// Manila is the Philippine Standard Time location (UTC+8)
var Manila *time.Location

func init() {
	var err error
	Manila, err = time.LoadLocation("Asia/Manila")
	if err != nil {
		// Fallback: create fixed zone if Asia/Manila not available
		Manila = time.FixedZone("PST", 8*60*60) // UTC+8
	}
}

// Now returns the current time in Manila time
func Now() time.Time {
	return time.Now().In(Manila)
}

// ToManila converts any time to Manila time
func ToManila(t time.Time) time.Time {
	return t.In(Manila)
}

// StartOfDay returns the start of day (00:00:00) in Manila time for the given time
func StartOfDay(t time.Time) time.Time {
	m := t.In(Manila)
	return time.Date(m.Year(), m.Month(), m.Day(), 0, 0, 0, 0, Manila)
}

// EndOfDay returns the end of day (23:59:59) in Manila time for the given time
func EndOfDay(t time.Time) time.Time {
	m := t.In(Manila)
	return time.Date(m.Year(), m.Month(), m.Day(), 23, 59, 59, 999999999, Manila)
}

// Common layouts
const (
	DateLayout     = "2006-01-02"
	MonthKeyLayout = "2006-01"
	DateTimeLayout = "2006-01-02 15:04:05"
	DisplayLayout  = "02 Jan 2006, 03:04 PM"
)

// MonthKey returns the "YYYY-MM" billing period key for a time, in Manila time.
func MonthKey(t time.Time) string {
	return t.In(Manila).Format(MonthKeyLayout)
}

// ParseMonthKey parses a "YYYY-MM" key into the first instant of that month
// in Manila time.
func ParseMonthKey(key string) (time.Time, error) {
	t, err := time.ParseInLocation(MonthKeyLayout, key, Manila)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid month key %q: %w", key, err)
	}
	return t, nil
}

// PreviousMonthKey returns the "YYYY-MM" key of the month before the given key.
func PreviousMonthKey(key string) (string, error) {
	t, err := ParseMonthKey(key)
	if err != nil {
		return "", err
	}
	return t.AddDate(0, -1, 0).Format(MonthKeyLayout), nil
}
