// Package loader reads training and test triples from CSV files.
//
// The format is deliberately simple: three required columns
// (subject, relation, object) plus an optional numeric timestamp, with no
// schema imposed on any of them. encoding/csv covers that without help;
// see DESIGN.md for the dependency rationale.
package loader
