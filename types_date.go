package constituents

import (
	"path/filepath"
	"regexp"
	"strings"
	"time"
)

// DateFormat is the canonical compact form for observation dates (YYYYMMDD).
// It names the date columns of the wide table and the snapshot files.
const DateFormat = "20060102"

// Date represents a date with day-level granularity.
type Date struct {
	y int        // year
	m time.Month // month
	d int        // day
}

// NewDate returns a normalized Date for the given year, month, and day.
func NewDate(year int, month time.Month, day int) Date {
	d := Date{year, month, day}
	d.y, d.m, d.d = d.time().Date()
	return d
}

// Year returns current year.
func (d Date) Year() int { return d.y }

// Month returns the month of the date.
func (d Date) Month() time.Month { return d.m }

// Day returns current day of the month.
func (d Date) Day() int { return d.d }

// String formats the date in the canonical compact form.
func (d Date) String() string { return d.time().Format(DateFormat) }

// IsZero returns true if the date is the zero value.
func (d Date) IsZero() bool {
	return d.y == 0 && d.m == 0 && d.d == 0
}

// time returns a time.Time that is a canonical representation of that day (at midnight UTC).
func (d Date) time() time.Time { return time.Date(d.y, d.m, d.d, 0, 0, 0, 0, time.UTC) }

// Format returns a textual representation of the date value formatted
// according to the layout defined by the argument.
//
//	See the documentation for the [time.Format].
func (d Date) Format(format string) string { return d.time().Format(format) }

// Before reports whether the day d is before x.
func (d Date) Before(x Date) bool { return d.time().Before(x.time()) }

// After reports whether the day d is after x.
func (d Date) After(x Date) bool { return d.time().After(x.time()) }

// Today returns the current date.
func Today() Date { return NewDate(time.Now().Date()) }

// Add returns a new Date with the given number of days added.
func (d Date) Add(i int) Date { return NewDate(d.y, d.m, d.d+i) }

// readDateFormats are the representations accepted for observation dates:
// the canonical compact form, ISO-8601, and the US form the fund vendors
// publish inside their CSV files. Month and day parse unpadded too.
var readDateFormats = []string{DateFormat, "2006-1-2", "1/2/2006"}

// ParseDate parses a Date from a string in any of the accepted forms.
// It returns a DateFormatError when none of them matches.
func ParseDate(str string) (Date, error) {
	str = strings.TrimSpace(str)
	for _, layout := range readDateFormats {
		if t, err := time.Parse(layout, str); err == nil {
			return NewDate(t.Date()), nil
		}
	}
	return Date{}, &DateFormatError{Input: str}
}

// MustParseDate is like ParseDate but panics on error.
func MustParseDate(str string) Date {
	d, err := ParseDate(str)
	if err != nil {
		panic(err.Error())
	}
	return d
}

var holdingsAsOfRE = regexp.MustCompile(`Holdings as of ([A-Za-z]+ \d{1,2}, \d{4})`)

// ParseHoldingsAsOf extracts the observation date that fund pages embed in
// free text as "Holdings as of <Month> <Day>, <Year>".
func ParseHoldingsAsOf(text string) (Date, error) {
	m := holdingsAsOfRE.FindStringSubmatch(text)
	if m == nil {
		return Date{}, &DateFormatError{Input: "page text", Reason: `no "Holdings as of" marker`}
	}
	t, err := time.Parse("January 2, 2006", m[1])
	if err != nil {
		return Date{}, &DateFormatError{Input: m[1], Reason: err.Error()}
	}
	return NewDate(t.Date()), nil
}

var snapshotFileRE = regexp.MustCompile(`^[A-Za-z0-9]+_holdings_(\d{8})\.csv$`)

// ParseSnapshotFilename extracts the observation date embedded in a canonical
// snapshot file name such as "arkk_holdings_20250102.csv".
//
// The date declared inside the snapshot is authoritative; file names can be
// renamed or lost, so this is a fallback only.
func ParseSnapshotFilename(path string) (Date, error) {
	base := filepath.Base(path)
	m := snapshotFileRE.FindStringSubmatch(base)
	if m == nil {
		return Date{}, &DateFormatError{Input: base, Reason: "file name does not match <fund>_holdings_<YYYYMMDD>.csv"}
	}
	t, err := time.Parse(DateFormat, m[1])
	if err != nil {
		return Date{}, &DateFormatError{Input: base, Reason: err.Error()}
	}
	return NewDate(t.Date()), nil
}
