package constituents

import (
	"bytes"
	"errors"
	"path/filepath"
	"slices"
	"strings"
	"testing"
	"time"
)

func TestEncodeTable(t *testing.T) {
	table := NewTable()
	d1 := NewDate(2025, time.January, 2)
	d2 := NewDate(2025, time.January, 3)
	table.Set("TSLA", d1, 10.5)
	table.Set("ROKU", d1, 5.2)
	table.Set("TSLA", d2, 10.4)
	table.Set("PLTR", d2, 2.1)

	var buf bytes.Buffer
	if err := EncodeTable(&buf, table); err != nil {
		t.Fatalf("EncodeTable() error = %v", err)
	}

	want := "ticker,20250102,20250103\n" +
		"TSLA,10.5,10.4\n" +
		"ROKU,5.2,0\n" +
		"PLTR,0,2.1\n"
	if got := buf.String(); got != want {
		t.Errorf("EncodeTable() =\n%s\nwant\n%s", got, want)
	}
}

func TestDecodeTable(t *testing.T) {
	in := "ticker,20250102,20250103\n" +
		"TSLA,10.5,10.4\n" +
		"ROKU,5.2,0\n"

	table, err := DecodeTable(strings.NewReader(in))
	if err != nil {
		t.Fatalf("DecodeTable() error = %v", err)
	}
	if got := table.Tickers(); !slices.Equal(got, []string{"TSLA", "ROKU"}) {
		t.Errorf("Tickers() = %v, want [TSLA ROKU]", got)
	}
	if w := table.Weight("TSLA", NewDate(2025, time.January, 3)); !w.Equal(10.4) {
		t.Errorf("Weight(TSLA) = %v, want 10.4", w)
	}

	// encode(decode(x)) == x
	var buf bytes.Buffer
	if err := EncodeTable(&buf, table); err != nil {
		t.Fatal(err)
	}
	if buf.String() != in {
		t.Errorf("round trip =\n%s\nwant\n%s", buf.String(), in)
	}
}

func TestDecodeTableTickerOnly(t *testing.T) {
	// The initial table is created by hand with rows but no date column yet.
	in := "ticker\nTSLA\nROKU\n"

	table, err := DecodeTable(strings.NewReader(in))
	if err != nil {
		t.Fatalf("DecodeTable() error = %v", err)
	}
	if got := table.Tickers(); !slices.Equal(got, []string{"TSLA", "ROKU"}) {
		t.Fatalf("Tickers() = %v, want [TSLA ROKU]", got)
	}

	var buf bytes.Buffer
	if err := EncodeTable(&buf, table); err != nil {
		t.Fatal(err)
	}
	if buf.String() != in {
		t.Errorf("round trip =\n%s\nwant\n%s", buf.String(), in)
	}

	// The first merge must keep the pre-existing rows, observed or not.
	on := NewDate(2025, time.January, 2)
	res := table.Merge(testSnapshot("arkk", on, map[string]Percent{"TSLA": 10.5}))
	if res.Status != Applied {
		t.Fatalf("Merge() status = %v, want Applied", res.Status)
	}
	if got := table.Tickers(); !slices.Equal(got, []string{"TSLA", "ROKU"}) {
		t.Errorf("Tickers() after merge = %v, want [TSLA ROKU]", got)
	}
	if w := table.Weight("ROKU", on); w != 0 {
		t.Errorf("Weight(ROKU) = %v, want 0", w)
	}

	buf.Reset()
	if err := EncodeTable(&buf, table); err != nil {
		t.Fatal(err)
	}
	want := "ticker,20250102\nTSLA,10.5\nROKU,0\n"
	if buf.String() != want {
		t.Errorf("EncodeTable() after merge =\n%s\nwant\n%s", buf.String(), want)
	}
}

func TestDecodeTableHealsEmptyCells(t *testing.T) {
	in := "ticker,20250102\nTSLA,\n"
	table, err := DecodeTable(strings.NewReader(in))
	if err != nil {
		t.Fatalf("DecodeTable() error = %v", err)
	}
	if w := table.Weight("TSLA", NewDate(2025, time.January, 2)); w != 0 {
		t.Errorf("Weight(TSLA) = %v, want 0", w)
	}
}

func TestDecodeTableBadHeader(t *testing.T) {
	_, err := DecodeTable(strings.NewReader("symbol,20250102\nTSLA,1\n"))
	var se *SchemaError
	if !errors.As(err, &se) {
		t.Errorf("DecodeTable() error = %T, want *SchemaError", err)
	}

	_, err = DecodeTable(strings.NewReader("ticker,jan-2\nTSLA,1\n"))
	if err == nil {
		t.Errorf("DecodeTable() expected an error on unparseable date column")
	}
}

func TestDecodeTableBadCell(t *testing.T) {
	_, err := DecodeTable(strings.NewReader("ticker,20250102\nTSLA,ten\n"))
	var pe *ParseError
	if !errors.As(err, &pe) {
		t.Fatalf("DecodeTable() error = %T, want *ParseError", err)
	}
	if pe.Ticker != "TSLA" {
		t.Errorf("ParseError.Ticker = %q, want TSLA", pe.Ticker)
	}
}

func TestLoadTableMissing(t *testing.T) {
	_, err := LoadTable(filepath.Join(t.TempDir(), "constituents.csv"))
	if !errors.Is(err, ErrMissingTable) {
		t.Errorf("LoadTable() error = %v, want ErrMissingTable", err)
	}
}

func TestSaveLoadTable(t *testing.T) {
	path := filepath.Join(t.TempDir(), "constituents.csv")
	table := NewTable()
	table.Set("TSLA", NewDate(2025, time.January, 2), 10.5)

	if err := SaveTable(path, table); err != nil {
		t.Fatalf("SaveTable() error = %v", err)
	}
	got, err := LoadTable(path)
	if err != nil {
		t.Fatalf("LoadTable() error = %v", err)
	}
	if got.Len() != 1 || !got.Weight("TSLA", NewDate(2025, time.January, 2)).Equal(10.5) {
		t.Errorf("LoadTable() did not round trip the table")
	}
}
