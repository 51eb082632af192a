// Package dates does calendar arithmetic in the property's fixed timezone.
//
// Every date that flows through the aggregation views is a civil date
// (YYYY-MM-DD) with no time-of-day component. Shifting such a date must
// anchor it to midnight in the property timezone before adding days or
// months; anchoring to host-local midnight instead is off by one whenever
// host midnight and property midnight fall on different calendar days.
package dates

import (
	"fmt"
	"time"
)

// Layout is the civil date wire format used by the upstream provider.
const Layout = "2006-01-02"

// Today returns today's date in loc as a YYYY-MM-DD string.
func Today(loc *time.Location) string {
	return time.Now().In(loc).Format(Layout)
}

// AddDays shifts a civil date by n calendar days in loc.
func AddDays(loc *time.Location, date string, n int) (string, error) {
	t, err := parse(loc, date)
	if err != nil {
		return "", err
	}
	return t.AddDate(0, 0, n).In(loc).Format(Layout), nil
}

// AddMonths shifts a civil date by n calendar months in loc, with Go's
// AddDate normalization for month/year rollover.
func AddMonths(loc *time.Location, date string, n int) (string, error) {
	t, err := parse(loc, date)
	if err != nil {
		return "", err
	}
	return t.AddDate(0, n, 0).In(loc).Format(Layout), nil
}

// At returns the instant of a given clock time on a civil date in loc.
func At(loc *time.Location, date string, hour, min int) (time.Time, error) {
	t, err := parse(loc, date)
	if err != nil {
		return time.Time{}, err
	}
	return time.Date(t.Year(), t.Month(), t.Day(), hour, min, 0, 0, loc), nil
}

// Valid reports whether date is a well-formed civil date.
func Valid(date string) bool {
	_, err := time.Parse(Layout, date)
	return err == nil
}

func parse(loc *time.Location, date string) (time.Time, error) {
	// ParseInLocation pins the date to midnight in loc, never host-local midnight.
	t, err := time.ParseInLocation(Layout, date, loc)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid civil date %q: %w", date, err)
	}
	return t, nil
}
