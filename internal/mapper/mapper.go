// =============================================================================
// Encore Royalty Core - Field Mapper
// =============================================================================
//
// This module reconciles heterogeneous royalty-statement schemas onto the
// canonical field set. Given a batch of raw rows from a single identified
// revenue source, it produces canonical royalty records plus diagnostics.
//
// MAPPING RESOLUTION (three layers, later overrides earlier):
//   1. Built-in default mapping per known source (lexicon.DefaultMapping)
//   2. Persisted per-source custom mapping (loaded at construction)
//   3. Per-import user mapping (ad hoc, highest priority)
//
// Per canonical field the effective mapping is an ordered candidate column
// list; the first candidate present in a row with a non-empty value wins.
//
// FAILURE SEMANTICS:
//   The mapper never fails on malformed data. Unparseable values degrade
//   to safe defaults, rows missing required fields are flagged in
//   ValidationErrors but still emitted, and unknown sources resolve to the
//   empty mapping. Downstream correctness depends on the caller inspecting
//   the returned diagnostics, not on errors.
//
// CONCURRENCY:
//   SaveMapping mutates the instance's custom-mapping layer, so concurrent
//   imports must each use their own Mapper instance.
//
// =============================================================================

package mapper

import (
	"fmt"
	"sort"
	"strings"

	"github.com/EncoreMusictech/encore-live-sub008/internal/lexicon"
	"github.com/EncoreMusictech/encore-live-sub008/internal/types"
)

// =============================================================================
// MAPPER
// =============================================================================

// FieldMapping maps canonical fields to ordered candidate column names for
// one revenue source.
type FieldMapping map[lexicon.Field]lexicon.Columns

// Mapper resolves raw statement rows to canonical royalty records.
type Mapper struct {
	// custom is the persisted per-source customization layer, loaded once
	// at construction and mutated only via SaveMapping.
	custom map[lexicon.Source]FieldMapping

	logger types.Logger
}

// New creates a Mapper with the given persisted custom mappings. The input
// is deep-copied; the caller's map is never mutated.
func New(custom map[lexicon.Source]FieldMapping) *Mapper {
	m := &Mapper{
		custom: make(map[lexicon.Source]FieldMapping, len(custom)),
		logger: types.NopLogger{},
	}
	for src, mapping := range custom {
		m.custom[src] = copyMapping(mapping)
	}
	return m
}

// SetLogger replaces the mapper's logger. Soft parse failures (such as
// invalid BMI periods) are logged, never raised.
func (m *Mapper) SetLogger(logger types.Logger) {
	if logger != nil {
		m.logger = logger
	}
}

// =============================================================================
// MAPPING RESOLUTION
// =============================================================================

// EffectiveMapping returns the three-layer mapping resolution for a source:
// built-in defaults, overridden field-by-field by the saved custom mapping,
// overridden by the per-import user mapping. The result is a fresh map,
// safe to mutate, suitable for inspection and UI display.
func (m *Mapper) EffectiveMapping(detectedSource string, userMappings FieldMapping) FieldMapping {
	src := lexicon.ParseSource(detectedSource)

	effective := make(FieldMapping)
	for f, cols := range lexicon.DefaultMapping(src) {
		effective[f] = cols
	}
	for f, cols := range m.custom[src] {
		effective[f] = append(lexicon.Columns(nil), cols...)
	}
	for f, cols := range userMappings {
		effective[f] = append(lexicon.Columns(nil), cols...)
	}
	return effective
}

// SaveMapping merges the given per-field overrides into the in-memory
// custom layer for a source (last write wins per field) and returns the
// resulting merged map. Persisting the merged map beyond this instance's
// lifetime is the caller's responsibility.
func (m *Mapper) SaveMapping(detectedSource string, userMappings FieldMapping) FieldMapping {
	src := lexicon.ParseSource(detectedSource)

	merged := copyMapping(m.custom[src])
	if merged == nil {
		merged = make(FieldMapping)
	}
	for f, cols := range userMappings {
		merged[f] = append(lexicon.Columns(nil), cols...)
	}
	m.custom[src] = merged

	return copyMapping(merged)
}

// =============================================================================
// BATCH MAPPING
// =============================================================================

// MapData maps a statement batch from a single revenue source onto the
// canonical field set.
//
// PARAMETERS:
//   - stmt: the parsed batch. Headers preserve column order for
//     unmapped-field reporting; Rows are the raw records.
//   - detectedSource: the revenue source that produced the batch. Unknown
//     sources resolve to the empty default mapping; rows still pass
//     through with whatever user mappings were supplied.
//   - userMappings: optional highest-priority field -> column overrides.
//
// RETURNS:
//   - One canonical record per input row (rows are never dropped), the
//     unmapped raw columns, and row-indexed validation messages.
//
// The input rows are not mutated.
func (m *Mapper) MapData(stmt types.Statement, detectedSource string, userMappings FieldMapping) types.MapResult {
	src := lexicon.ParseSource(detectedSource)
	effective := m.EffectiveMapping(detectedSource, userMappings)

	result := types.MapResult{
		MappedData: make([]types.CanonicalRecord, 0, len(stmt.Rows)),
	}

	for i, row := range stmt.Rows {
		record := m.mapRow(row, src, detectedSource, effective, i)
		result.MappedData = append(result.MappedData, record)

		for _, f := range lexicon.RequiredFields {
			if !hasUsableValue(record, f) {
				result.ValidationErrors = append(result.ValidationErrors,
					fmt.Sprintf("Row %d: Missing required field '%s'", i+1, f))
			}
		}
	}

	result.UnmappedFields = unmappedColumns(stmt, effective)
	return result
}

// mapRow resolves and normalizes every canonical field for one raw row.
func (m *Mapper) mapRow(row types.RawRow, src lexicon.Source, detectedSource string, effective FieldMapping, index int) types.CanonicalRecord {
	record := types.CanonicalRecord{
		Values:           make(map[lexicon.Field]any),
		StatementSource:  detectedSource,
		OriginalRowIndex: index,
	}

	// BMI statements carry no media-type column at all; force PERF before
	// the mapped layers run so the field is always populated.
	if src == lexicon.SourceBMI {
		record.Values[lexicon.FieldMediaType] = lexicon.MediaPerf
	}

	for _, f := range lexicon.StandardFields {
		raw, found := firstCandidate(row, effective[f])
		if !found {
			continue
		}
		record.Values[f] = m.normalize(f, raw, src, index)
	}

	// Re-apply the BMI override after the user layer: even an explicit
	// user mapping for MEDIA TYPE cannot change it for BMI batches.
	if src == lexicon.SourceBMI {
		record.Values[lexicon.FieldMediaType] = lexicon.MediaPerf
	}

	return record
}

// normalize converts a raw cell value according to the field's kind.
func (m *Mapper) normalize(f lexicon.Field, raw string, src lexicon.Source, index int) any {
	switch lexicon.KindOf(f) {
	case lexicon.KindMoney:
		amount, _ := ParseMoney(raw)
		return amount

	case lexicon.KindPercent:
		pct, _ := ParsePercent(raw)
		return pct

	case lexicon.KindDate:
		if src == lexicon.SourceBMI {
			quarter, ok := BMIQuarterStart(raw)
			if !ok {
				m.logger.Warn("row %d: unparseable BMI period %q", index+1, raw)
				return nil
			}
			return quarter
		}
		if date, ok := ParseDate(raw); ok {
			return date
		}
		return raw

	case lexicon.KindIdentifier:
		return strings.TrimSpace(raw)

	case lexicon.KindMedia:
		return lexicon.StandardizeMediaType(CleanText(raw), src)

	default:
		return CleanText(raw)
	}
}

// firstCandidate returns the first candidate column present in the row
// with a non-empty value. Ordered fallback, not a merge.
func firstCandidate(row types.RawRow, candidates lexicon.Columns) (string, bool) {
	for _, col := range candidates {
		if value, ok := row[col]; ok && strings.TrimSpace(value) != "" {
			return value, true
		}
	}
	return "", false
}

// hasUsableValue reports whether a required field produced a usable value.
// Numeric fields only need to be present (a defaulted 0 still counts);
// text fields must be non-empty.
func hasUsableValue(record types.CanonicalRecord, f lexicon.Field) bool {
	if !record.Has(f) {
		return false
	}
	switch lexicon.KindOf(f) {
	case lexicon.KindMoney, lexicon.KindPercent:
		return true
	default:
		return record.Text(f) != ""
	}
}

// =============================================================================
// UNMAPPED COLUMN DETECTION
// =============================================================================

// unmappedColumns reports raw column headers that no candidate of the
// effective mapping references, in order of first appearance, duplicates
// suppressed.
func unmappedColumns(stmt types.Statement, effective FieldMapping) []string {
	referenced := make(map[string]struct{})
	for _, candidates := range effective {
		for _, col := range candidates {
			referenced[col] = struct{}{}
		}
	}

	headers := stmt.Headers
	if len(headers) == 0 && len(stmt.Rows) > 0 {
		// No header order was preserved; fall back to the first row's
		// keys in deterministic order.
		for col := range stmt.Rows[0] {
			headers = append(headers, col)
		}
		sort.Strings(headers)
	}

	var unmapped []string
	seen := make(map[string]struct{})
	for _, col := range headers {
		if col == "" {
			continue
		}
		if _, ok := referenced[col]; ok {
			continue
		}
		if _, dup := seen[col]; dup {
			continue
		}
		seen[col] = struct{}{}
		unmapped = append(unmapped, col)
	}
	return unmapped
}

// copyMapping deep-copies a field mapping; nil stays nil.
func copyMapping(mapping FieldMapping) FieldMapping {
	if mapping == nil {
		return nil
	}
	out := make(FieldMapping, len(mapping))
	for f, cols := range mapping {
		out[f] = append(lexicon.Columns(nil), cols...)
	}
	return out
}
