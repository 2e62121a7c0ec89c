// =============================================================================
// Encore Royalty Core - Shared Types
// =============================================================================
//
// This package contains shared types used across multiple modules to avoid
// import cycles. Types defined here are used by:
//   - statement (produces Statement batches)
//   - mapper (consumes Statement, produces MapResult)
//   - pipeline (consumes MapResult, writes the canonical workbook)
//
// =============================================================================

package types

import "github.com/EncoreMusictech/encore-live-sub008/internal/lexicon"

// =============================================================================
// RAW STATEMENT TYPES
// =============================================================================

// RawRow is one statement row as parsed from a CSV or XLSX file.
// Keys are the source's original column headers.
type RawRow map[string]string

// Statement is a batch of raw rows from a single statement file.
type Statement struct {
	// Headers are the column headers in order of first appearance.
	Headers []string

	// Rows are the data rows, in file order.
	Rows []RawRow

	// SourceFile is the path the batch was parsed from, for diagnostics.
	SourceFile string
}

// =============================================================================
// CANONICAL RECORD TYPES
// =============================================================================

// CanonicalRecord is one mapped royalty row. Values holds the normalized
// value per canonical field; a field absent from the map was not mapped for
// this row, while an explicit nil records a value that failed permissive
// parsing (for example an unparseable BMI period).
type CanonicalRecord struct {
	Values map[lexicon.Field]any

	// StatementSource tags every mapped row with the detected source
	// string, exactly as supplied by the caller.
	StatementSource string

	// OriginalRowIndex is the 0-based index of the row in the source
	// batch, kept as a debug back-reference.
	OriginalRowIndex int
}

// Text returns the value of a canonical field rendered as a string, or ""
// when the field is unset or nil.
func (r CanonicalRecord) Text(f lexicon.Field) string {
	v, ok := r.Values[f]
	if !ok || v == nil {
		return ""
	}
	switch t := v.(type) {
	case string:
		return t
	case lexicon.MediaType:
		return string(t)
	default:
		return ""
	}
}

// Amount returns the value of a numeric canonical field, or 0 when the
// field is unset or not numeric.
func (r CanonicalRecord) Amount(f lexicon.Field) float64 {
	if v, ok := r.Values[f].(float64); ok {
		return v
	}
	return 0
}

// Has reports whether a canonical field was assigned for this row
// (including an explicit nil).
func (r CanonicalRecord) Has(f lexicon.Field) bool {
	_, ok := r.Values[f]
	return ok
}

// =============================================================================
// MAPPING RESULT
// =============================================================================

// MapResult is the outcome of mapping one statement batch.
type MapResult struct {
	// MappedData contains one canonical record per input row, in input
	// order. Rows with validation problems are included, not dropped.
	MappedData []CanonicalRecord

	// UnmappedFields lists raw column headers that no effective mapping
	// references, in order of first appearance, without duplicates.
	UnmappedFields []string

	// ValidationErrors are human-readable, row-indexed messages for rows
	// missing required canonical fields.
	ValidationErrors []string
}

// =============================================================================
// LOGGING
// =============================================================================

// Logger is the logging interface shared by the mapper and the pipeline.
type Logger interface {
	Debug(msg string, args ...interface{})
	Info(msg string, args ...interface{})
	Warn(msg string, args ...interface{})
	Error(msg string, args ...interface{})
}

// NopLogger discards all log output. It is the default for library
// callers that do not inject a logger.
type NopLogger struct{}

func (NopLogger) Debug(string, ...interface{}) {}
func (NopLogger) Info(string, ...interface{})  {}
func (NopLogger) Warn(string, ...interface{})  {}
func (NopLogger) Error(string, ...interface{}) {}
