// Package constituents tracks the published holdings of exchange-traded
// funds over time. It is designed to be local-first and auditable: every
// artifact is a human-readable flat file that can be inspected, diffed, and
// version-controlled.
//
// The core functionalities include:
//   - Snapshot Sources: fetching and normalizing one dated capture of a
//     fund's holdings, either from a vendor-hosted CSV endpoint (ARK) or
//     from an HTML table on a public webpage (Fundstrat GRNY).
//   - Merge Engine: folding dated snapshots into a single wide time-series
//     table, one row per ticker and one column per observation date, with
//     idempotent re-runs and per-file failure isolation.
//   - Reporting: summary statistics, top-N rankings, sector breakdowns, and
//     per-ticker weight histories over the accumulated table.
//   - Data Persistence: encoding and decoding snapshots and the wide table
//     to and from delimited flat files, plus JSON export.
//
// This package serves as the foundational logic for the `cst` command-line
// tool, ensuring that all operations are consistent and based on a single
// source of truth.
package constituents
