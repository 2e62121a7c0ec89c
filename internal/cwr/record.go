// =============================================================================
// Encore Royalty Core - CWR Fixed-Width Record Builder
// =============================================================================
//
// CWR records are fixed-width concatenations of positional fields. Each
// record type's layout is declared once as an ordered list of
// (name, width, alignment, pad) specs; the same declaration drives both
// encoding and the width-invariant tests. Values are truncated to their
// field width when overlong, left-aligned text pads with trailing spaces,
// and right-aligned numerics pad with leading zeros.
//
// =============================================================================

package cwr

// Alignment controls which side of a field is padded.
type Alignment int

const (
	// AlignLeft pads on the right. Used for names and free text.
	AlignLeft Alignment = iota

	// AlignRight pads on the left. Used for zero-filled numerics.
	AlignRight
)

// FieldSpec declares a single positional field of a record layout.
type FieldSpec struct {
	Name  string
	Width int
	Align Alignment
	Pad   byte
}

// Layout is the complete positional declaration of one CWR record type.
type Layout struct {
	// Record is the three-letter record type code ("HDR", "NWR", ...).
	Record string

	Fields []FieldSpec
}

// Width returns the total line length produced by this layout.
func (l Layout) Width() int {
	total := 0
	for _, f := range l.Fields {
		total += f.Width
	}
	return total
}

// Render emits one fixed-width line from named values. Missing values
// render as pure padding, which is how filler fields are expressed.
func (l Layout) Render(values map[string]string) string {
	line := make([]byte, 0, l.Width())
	for _, f := range l.Fields {
		line = append(line, fit(values[f.Name], f)...)
	}
	return string(line)
}

// fit truncates or pads a value to its declared width.
func fit(value string, spec FieldSpec) string {
	if len(value) > spec.Width {
		return value[:spec.Width]
	}
	padding := make([]byte, spec.Width-len(value))
	for i := range padding {
		padding[i] = spec.Pad
	}
	if spec.Align == AlignRight {
		return string(padding) + value
	}
	return value + string(padding)
}

// =============================================================================
// RECORD LAYOUTS
// =============================================================================

// Every layout starts with the record type (3) and the running sequence
// number (8, zero-padded). The remaining widths are the wire contract
// consumed by PRO intake systems and must not change.

// LayoutHDR is the transmission header, exactly one, first.
var LayoutHDR = Layout{Record: "HDR", Fields: []FieldSpec{
	{"record_type", 3, AlignLeft, ' '},
	{"sequence", 8, AlignRight, '0'},
	{"version", 5, AlignLeft, ' '},
	{"sender_id", 9, AlignRight, '0'},
	{"sender_type", 2, AlignLeft, ' '},
	{"creation_date", 8, AlignLeft, ' '},
	{"creation_time", 6, AlignLeft, ' '},
	{"sender_name", 45, AlignLeft, ' '},
	{"edi_standard", 45, AlignLeft, ' '},
	{"character_set", 5, AlignLeft, ' '},
	{"character_set_version", 11, AlignLeft, ' '},
	{"filler", 60, AlignLeft, ' '},
}}

// LayoutNWR is the new-work registration record, one per work.
var LayoutNWR = Layout{Record: "NWR", Fields: []FieldSpec{
	{"record_type", 3, AlignLeft, ' '},
	{"sequence", 8, AlignRight, '0'},
	{"work_title", 60, AlignLeft, ' '},
	{"iswc", 11, AlignLeft, ' '},
	{"language_code", 14, AlignLeft, ' '},
	{"submitter_work_number", 14, AlignLeft, ' '},
	{"work_type", 3, AlignLeft, ' '},
	{"distribution_category", 1, AlignLeft, ' '},
	{"recorded_indicator", 1, AlignLeft, ' '},
	{"version_type", 3, AlignLeft, ' '},
	{"excerpt_type", 3, AlignLeft, ' '},
	{"composite_type", 3, AlignLeft, ' '},
	{"composite_component_count", 3, AlignRight, '0'},
	{"date_of_publication", 8, AlignRight, '0'},
	{"exceptional_clause", 1, AlignLeft, ' '},
	{"grand_rights_indicator", 1, AlignLeft, ' '},
	{"catalogue_number", 25, AlignLeft, ' '},
	{"filler", 60, AlignLeft, ' '},
}}

// LayoutSWR is the writer record, one per writer of the preceding work.
var LayoutSWR = Layout{Record: "SWR", Fields: []FieldSpec{
	{"record_type", 3, AlignLeft, ' '},
	{"sequence", 8, AlignRight, '0'},
	{"controlled_indicator", 1, AlignLeft, ' '},
	{"first_name", 30, AlignLeft, ' '},
	{"last_name", 45, AlignLeft, ' '},
	{"ipi", 11, AlignRight, '0'},
	{"writer_unknown", 1, AlignLeft, ' '},
	{"role_code", 2, AlignLeft, ' '},
	{"work_for_hire", 1, AlignLeft, ' '},
	{"share", 5, AlignRight, '0'},
	{"revision_level", 3, AlignLeft, ' '},
	{"first_recording_refusal", 1, AlignLeft, ' '},
	{"filler", 127, AlignLeft, ' '},
}}

// LayoutPWR is the publisher record, one per publisher of the preceding work.
var LayoutPWR = Layout{Record: "PWR", Fields: []FieldSpec{
	{"record_type", 3, AlignLeft, ' '},
	{"sequence", 8, AlignRight, '0'},
	{"publisher_name", 45, AlignLeft, ' '},
	{"ipi", 11, AlignRight, '0'},
	{"publisher_unknown", 1, AlignLeft, ' '},
	{"role_code", 2, AlignLeft, ' '},
	{"tax_id", 60, AlignLeft, ' '},
	{"share", 5, AlignRight, '0'},
	{"agreement_code", 3, AlignLeft, ' '},
	{"agreement_type", 2, AlignLeft, ' '},
	{"agreement_start_date", 8, AlignRight, '0'},
	{"filler", 64, AlignLeft, ' '},
}}

// LayoutTER is the territory record, exactly one per work.
var LayoutTER = Layout{Record: "TER", Fields: []FieldSpec{
	{"record_type", 3, AlignLeft, ' '},
	{"sequence", 8, AlignRight, '0'},
	{"inclusion_flag", 1, AlignLeft, ' '},
	{"territory_code", 4, AlignLeft, ' '},
}}

// LayoutREC is the recording record, one per recording, only when any exist.
var LayoutREC = Layout{Record: "REC", Fields: []FieldSpec{
	{"record_type", 3, AlignLeft, ' '},
	{"sequence", 8, AlignRight, '0'},
	{"isrc", 12, AlignLeft, ' '},
	{"artist_name", 60, AlignLeft, ' '},
	{"duration", 6, AlignRight, '0'},
	{"release_date", 8, AlignRight, '0'},
	{"record_label", 60, AlignLeft, ' '},
	{"catalogue_number", 18, AlignLeft, ' '},
	{"media_format", 1, AlignLeft, ' '},
	{"filler", 96, AlignLeft, ' '},
}}

// LayoutGRT is the group trailer, exactly one, after all works.
var LayoutGRT = Layout{Record: "GRT", Fields: []FieldSpec{
	{"record_type", 3, AlignLeft, ' '},
	{"sequence", 8, AlignRight, '0'},
	{"group_id", 4, AlignLeft, ' '},
	{"transaction_count", 5, AlignRight, '0'},
	{"record_count", 8, AlignRight, '0'},
	{"filler", 60, AlignLeft, ' '},
}}

// LayoutTRL is the transmission trailer, exactly one, last.
var LayoutTRL = Layout{Record: "TRL", Fields: []FieldSpec{
	{"record_type", 3, AlignLeft, ' '},
	{"sequence", 8, AlignRight, '0'},
	{"group_count", 4, AlignLeft, ' '},
	{"transaction_count", 8, AlignRight, '0'},
	{"record_count", 8, AlignRight, '0'},
	{"filler", 57, AlignLeft, ' '},
}}

// Layouts indexes every record layout by its type code.
var Layouts = map[string]Layout{
	"HDR": LayoutHDR,
	"NWR": LayoutNWR,
	"SWR": LayoutSWR,
	"PWR": LayoutPWR,
	"TER": LayoutTER,
	"REC": LayoutREC,
	"GRT": LayoutGRT,
	"TRL": LayoutTRL,
}
