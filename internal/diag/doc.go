// Package diag carries diagnostics between compilation phases.
//
// A phase reports through the Reporter interface and never prints on
// its own. Bag collects reports up to a caller-chosen limit; rendering
// is left to diagfmt. Codes are stable uint16 values partitioned by
// phase so an ID like LEX1002 never changes meaning between releases.
package diag
