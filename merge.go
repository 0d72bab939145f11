package constituents

import (
	"errors"
	"fmt"
	"log"
	"path/filepath"
	"sort"
)

// MergeStatus classifies the outcome of merging one snapshot.
type MergeStatus int

const (
	// Applied means the snapshot's date column was added to the table.
	Applied MergeStatus = iota
	// SkippedDuplicate means the table already had a column for the
	// snapshot's date; the merge was a no-op.
	SkippedDuplicate
	// Failed means the snapshot could not be read or merged.
	Failed
)

func (s MergeStatus) String() string {
	switch s {
	case Applied:
		return "applied"
	case SkippedDuplicate:
		return "duplicate"
	case Failed:
		return "failed"
	}
	return fmt.Sprintf("MergeStatus(%d)", int(s))
}

// MergeResult reports what merging one snapshot did to the table.
type MergeResult struct {
	File     string // snapshot file, when merged from disk
	Date     Date
	Status   MergeStatus
	Matched  int      // snapshot tickers that already had a table row
	Total    int      // tickers the snapshot reports
	Inserted []string // tickers added to the table by this merge
	Err      error
}

// MatchRate returns the share of snapshot tickers that were already known to
// the table, in percentage points.
func (r MergeResult) MatchRate() Percent {
	if r.Total == 0 {
		return 0
	}
	return Percent(100 * float64(r.Matched) / float64(r.Total))
}

// Merge incorporates one snapshot into the table as a new date column.
//
// If the table already has a column for the snapshot's date the merge is a
// no-op, whatever the snapshot contains: the first observation for a date
// wins and re-merging is always safe. Tickers the table has never seen get a
// new row; their weight on every pre-existing date is the 0 sentinel, not an
// error.
func (t *Table) Merge(s *Snapshot) MergeResult {
	res := MergeResult{Date: s.Date, Total: s.Len()}
	if t.HasDate(s.Date) {
		res.Status = SkippedDuplicate
		return res
	}
	for h := range s.Holdings() {
		if t.HasTicker(h.Ticker) {
			res.Matched++
		} else {
			res.Inserted = append(res.Inserted, h.Ticker)
		}
		t.Set(h.Ticker, s.Date, h.Weight)
	}
	// A snapshot with no holdings still claims its date column, so that
	// re-merging the same empty capture stays a no-op.
	t.addDate(s.Date)
	res.Status = Applied
	return res
}

// SnapshotPattern matches the canonical snapshot file names in a directory.
const SnapshotPattern = "*_holdings_*.csv"

// MergeDir merges every snapshot file in dir matching pattern into the
// table, in lexical file name order (chronological, given the canonical
// naming). An empty pattern means SnapshotPattern.
//
// A file that cannot be decoded is logged and skipped; it fails its own
// MergeResult, never the batch. changed reports whether any merge was
// applied, so callers can skip rewriting an unchanged table. The only batch
// errors are an unreadable directory and ErrNoSnapshots.
func MergeDir(t *Table, dir, pattern string) (results []MergeResult, changed bool, err error) {
	if pattern == "" {
		pattern = SnapshotPattern
	}
	files, err := filepath.Glob(filepath.Join(dir, pattern))
	if err != nil {
		return nil, false, fmt.Errorf("invalid snapshot pattern %q: %w", pattern, err)
	}
	if len(files) == 0 {
		return nil, false, fmt.Errorf("%w in %q matching %q", ErrNoSnapshots, dir, pattern)
	}
	sort.Strings(files)

	for _, file := range files {
		s, err := DecodeSnapshotFile(file)
		if err != nil {
			log.Printf("skipping %s: %v", filepath.Base(file), err)
			results = append(results, MergeResult{File: file, Status: Failed, Err: err})
			continue
		}
		res := t.Merge(s)
		res.File = file
		if res.Status == Applied {
			changed = true
		}
		results = append(results, res)
	}
	return results, changed, nil
}

// Failures returns the errors of the failed results, joined, or nil when
// every snapshot merged or was a duplicate.
func Failures(results []MergeResult) error {
	var errs []error
	for _, r := range results {
		if r.Status == Failed {
			errs = append(errs, fmt.Errorf("%s: %w", filepath.Base(r.File), r.Err))
		}
	}
	return errors.Join(errs...)
}
