package constituents

import (
	"errors"
	"testing"
	"time"
)

func TestParseDate(t *testing.T) {
	tests := []struct {
		input    string
		expected Date
		err      bool
	}{
		{"20250820", NewDate(2025, time.August, 20), false},
		{"2025-08-20", NewDate(2025, time.August, 20), false},
		{"2025-7-1", NewDate(2025, time.July, 1), false},
		{"8/20/2025", NewDate(2025, time.August, 20), false},
		{"1/2/2025", NewDate(2025, time.January, 2), false},
		{" 20250820 ", NewDate(2025, time.August, 20), false},
		{"invalid-date", Date{}, true},
		{"", Date{}, true},
		{"2025/08/20", Date{}, true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseDate(tt.input)
			if (err != nil) != tt.err {
				t.Errorf("ParseDate(%q) error = %v, wantErr %v", tt.input, err, tt.err)
				return
			}
			if !tt.err && got != tt.expected {
				t.Errorf("ParseDate(%q) = %v, want %v", tt.input, got, tt.expected)
			}
		})
	}
}

func TestParseDateError(t *testing.T) {
	_, err := ParseDate("nonsense")
	var dfe *DateFormatError
	if !errors.As(err, &dfe) {
		t.Fatalf("ParseDate error = %T, want *DateFormatError", err)
	}
	if dfe.Input != "nonsense" {
		t.Errorf("DateFormatError.Input = %q, want %q", dfe.Input, "nonsense")
	}
}

func TestDateString(t *testing.T) {
	d := NewDate(2025, time.January, 2)
	if got := d.String(); got != "20250102" {
		t.Errorf("Date.String() = %q, want %q", got, "20250102")
	}
	if got := d.Format("1/2/2006"); got != "1/2/2025" {
		t.Errorf("Date.Format() = %q, want %q", got, "1/2/2025")
	}
}

func TestParseHoldingsAsOf(t *testing.T) {
	text := `GRNY Granny Shots US Large Cap ETF
	Holdings as of August 20, 2025. Holdings are subject to change.`

	got, err := ParseHoldingsAsOf(text)
	if err != nil {
		t.Fatalf("ParseHoldingsAsOf() error = %v", err)
	}
	if want := NewDate(2025, time.August, 20); got != want {
		t.Errorf("ParseHoldingsAsOf() = %v, want %v", got, want)
	}

	if _, err := ParseHoldingsAsOf("no date in here"); err == nil {
		t.Errorf("ParseHoldingsAsOf() expected an error on text without marker")
	}
}

func TestParseSnapshotFilename(t *testing.T) {
	tests := []struct {
		input    string
		expected Date
		err      bool
	}{
		{"arkk_holdings_20250102.csv", NewDate(2025, time.January, 2), false},
		{"/data/snapshots/grny_holdings_20250820.csv", NewDate(2025, time.August, 20), false},
		{"arkk_holdings_2025.csv", Date{}, true},
		{"holdings_20250102.csv", Date{}, true},
		{"arkk_20250102.csv", Date{}, true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseSnapshotFilename(tt.input)
			if (err != nil) != tt.err {
				t.Errorf("ParseSnapshotFilename(%q) error = %v, wantErr %v", tt.input, err, tt.err)
				return
			}
			if !tt.err && got != tt.expected {
				t.Errorf("ParseSnapshotFilename(%q) = %v, want %v", tt.input, got, tt.expected)
			}
		})
	}
}
