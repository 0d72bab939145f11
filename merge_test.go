package constituents

import (
	"errors"
	"os"
	"path/filepath"
	"slices"
	"testing"
	"time"
)

func testSnapshot(fund string, on Date, weights map[string]Percent) *Snapshot {
	s := NewSnapshot(fund, on)
	// stable order for reproducible row insertion
	tickers := make([]string, 0, len(weights))
	for ticker := range weights {
		tickers = append(tickers, ticker)
	}
	slices.Sort(tickers)
	for _, ticker := range tickers {
		s.Add(Holding{Ticker: ticker, Weight: weights[ticker]})
	}
	return s
}

func TestMergeFirstSnapshot(t *testing.T) {
	table := NewTable()
	d1 := NewDate(2025, time.January, 2)
	res := table.Merge(testSnapshot("arkk", d1, map[string]Percent{"TSLA": 10.5, "ROKU": 5.2}))

	if res.Status != Applied {
		t.Fatalf("Merge status = %v, want %v", res.Status, Applied)
	}
	if res.Matched != 0 || res.Total != 2 || len(res.Inserted) != 2 {
		t.Errorf("Merge result = %d/%d matched, %d inserted, want 0/2, 2", res.Matched, res.Total, len(res.Inserted))
	}
	if table.Len() != 2 || len(table.Dates()) != 1 {
		t.Errorf("table = %d tickers %d dates, want 2 and 1", table.Len(), len(table.Dates()))
	}
	if w := table.Weight("TSLA", d1); !w.Equal(10.5) {
		t.Errorf("Weight(TSLA) = %v, want 10.5", w)
	}
}

func TestMergeDuplicateDateIsNoOp(t *testing.T) {
	table := NewTable()
	d1 := NewDate(2025, time.January, 2)
	table.Merge(testSnapshot("arkk", d1, map[string]Percent{"TSLA": 10.5}))

	// Re-merging the same date must not change anything, even with
	// different weights.
	res := table.Merge(testSnapshot("arkk", d1, map[string]Percent{"TSLA": 99.9, "NEW": 1}))
	if res.Status != SkippedDuplicate {
		t.Fatalf("Merge status = %v, want %v", res.Status, SkippedDuplicate)
	}
	if w := table.Weight("TSLA", d1); !w.Equal(10.5) {
		t.Errorf("Weight(TSLA) = %v, want 10.5: duplicate merge must not overwrite", w)
	}
	if table.HasTicker("NEW") {
		t.Errorf("duplicate merge inserted a row")
	}
}

func TestMergeNewTickerBackfill(t *testing.T) {
	table := NewTable()
	d1 := NewDate(2025, time.January, 2)
	d2 := NewDate(2025, time.January, 3)
	table.Merge(testSnapshot("arkk", d1, map[string]Percent{"TSLA": 10.5}))
	res := table.Merge(testSnapshot("arkk", d2, map[string]Percent{"TSLA": 10.4, "PLTR": 2.1}))

	if res.Matched != 1 || res.Total != 2 {
		t.Errorf("Merge result = %d/%d matched, want 1/2", res.Matched, res.Total)
	}
	if !slices.Equal(res.Inserted, []string{"PLTR"}) {
		t.Errorf("Inserted = %v, want [PLTR]", res.Inserted)
	}
	if rate := res.MatchRate(); !rate.Equal(50) {
		t.Errorf("MatchRate() = %v, want 50%%", rate)
	}

	// The new ticker held no position on the earlier date.
	if w := table.Weight("PLTR", d1); w != 0 {
		t.Errorf("Weight(PLTR, d1) = %v, want 0", w)
	}
}

func TestMergeExitedTickerIsZero(t *testing.T) {
	table := NewTable()
	d1 := NewDate(2025, time.January, 2)
	d2 := NewDate(2025, time.January, 3)
	table.Merge(testSnapshot("arkk", d1, map[string]Percent{"TSLA": 10.5, "ROKU": 5.2}))
	table.Merge(testSnapshot("arkk", d2, map[string]Percent{"TSLA": 10.4}))

	if w := table.Weight("ROKU", d2); w != 0 {
		t.Errorf("Weight(ROKU, d2) = %v, want 0: exited position", w)
	}
	// and the earlier observation is untouched
	if w := table.Weight("ROKU", d1); !w.Equal(5.2) {
		t.Errorf("Weight(ROKU, d1) = %v, want 5.2", w)
	}
}

func TestMergePreservesOrder(t *testing.T) {
	table := NewTable()
	d1 := NewDate(2025, time.January, 2)
	d2 := NewDate(2025, time.January, 3)
	table.Merge(testSnapshot("arkk", d1, map[string]Percent{"TSLA": 10.5, "ROKU": 5.2}))
	table.Merge(testSnapshot("arkk", d2, map[string]Percent{"COIN": 3.3, "TSLA": 10.4}))

	// rows keep first-seen order, new rows append
	if got := table.Tickers(); !slices.Equal(got, []string{"ROKU", "TSLA", "COIN"}) {
		t.Errorf("Tickers() = %v, want [ROKU TSLA COIN]", got)
	}
	if got := table.Dates(); !slices.Equal(got, []Date{d1, d2}) {
		t.Errorf("Dates() = %v, want [%v %v]", got, d1, d2)
	}
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
}

func TestMergeDir(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "arkk_holdings_20250102.csv"),
		"date,ticker,sector,weight (%),price,market value\n"+
			"1/2/2025,TSLA,Consumer Discretionary,10.5,,\n"+
			"1/2/2025,ROKU,Communication Services,5.2,,\n")
	writeFile(t, filepath.Join(dir, "arkk_holdings_20250103.csv"),
		"date,ticker,sector,weight (%),price,market value\n"+
			"1/3/2025,TSLA,Consumer Discretionary,10.4,,\n"+
			"1/3/2025,PLTR,Information Technology,2.1,,\n")
	// a broken file must be skipped, not abort the batch
	writeFile(t, filepath.Join(dir, "arkk_holdings_20250104.csv"),
		"date,ticker,sector,weight (%),price,market value\n"+
			"1/4/2025,TSLA,Consumer Discretionary,not-a-number,,\n")

	table := NewTable()
	results, changed, err := MergeDir(table, dir, "")
	if err != nil {
		t.Fatalf("MergeDir() error = %v", err)
	}
	if !changed {
		t.Errorf("MergeDir() changed = false, want true")
	}
	if len(results) != 3 {
		t.Fatalf("MergeDir() returned %d results, want 3", len(results))
	}
	if results[0].Status != Applied || results[1].Status != Applied || results[2].Status != Failed {
		t.Errorf("statuses = %v %v %v, want applied applied failed",
			results[0].Status, results[1].Status, results[2].Status)
	}
	if err := Failures(results); err == nil {
		t.Errorf("Failures() = nil, want the broken file's error")
	}
	if table.Len() != 3 || len(table.Dates()) != 2 {
		t.Errorf("table = %d tickers %d dates, want 3 and 2", table.Len(), len(table.Dates()))
	}

	// Re-running the whole directory is a no-op.
	results, changed, err = MergeDir(table, dir, "")
	if err != nil {
		t.Fatalf("MergeDir() rerun error = %v", err)
	}
	if changed {
		t.Errorf("MergeDir() rerun changed = true, want false")
	}
	for _, r := range results[:2] {
		if r.Status != SkippedDuplicate {
			t.Errorf("%s status = %v, want %v", filepath.Base(r.File), r.Status, SkippedDuplicate)
		}
	}
}

func TestMergeDirEmpty(t *testing.T) {
	_, _, err := MergeDir(NewTable(), t.TempDir(), "")
	if !errors.Is(err, ErrNoSnapshots) {
		t.Errorf("MergeDir() error = %v, want ErrNoSnapshots", err)
	}
}
