// =============================================================================
// Encore Royalty Core - Media/Field Lexicon
// =============================================================================
//
// This package contains the static lookup tables shared by the field mapper
// and the processing pipeline:
//   - The canonical royalty field set and each field's semantic kind
//   - The known revenue sources (PROs, societies, and digital services)
//   - The default per-source column mappings (see mappings.go)
//   - The media-type synonym table (see mediatypes.go)
//
// There is no logic here beyond table lookups. Gaps are represented by
// explicit "unknown" variants rather than silent fall-through, so a caller
// can always distinguish "no mapping configured" from "mapped to nothing".
//
// =============================================================================

package lexicon

import "strings"

// =============================================================================
// CANONICAL FIELDS
// =============================================================================

// Field is a canonical royalty field name. The set of canonical fields is
// fixed: every revenue source's statement columns are reconciled onto this
// one schema before allocation and payout run.
type Field string

const (
	FieldQuarter        Field = "QUARTER"
	FieldSource         Field = "SOURCE"
	FieldRevenueSource  Field = "REVENUE SOURCE"
	FieldWorkIdentifier Field = "WORK IDENTIFIER"
	FieldWorkTitle      Field = "WORK TITLE"
	FieldWorkWriters    Field = "WORK WRITERS"
	FieldShare          Field = "SHARE"
	FieldMediaType      Field = "MEDIA TYPE"
	FieldMediaSubType   Field = "MEDIA SUB-TYPE"
	FieldCountry        Field = "COUNTRY"
	FieldQuantity       Field = "QUANTITY"
	FieldGross          Field = "GROSS"
	FieldNet            Field = "NET"
	FieldISWC           Field = "ISWC"
	FieldISRC           Field = "ISRC"
)

// StandardFields lists every canonical field in presentation order. The
// mapper resolves fields in this order and the canonical workbook writer
// emits columns in this order.
var StandardFields = []Field{
	FieldQuarter,
	FieldSource,
	FieldRevenueSource,
	FieldWorkIdentifier,
	FieldWorkTitle,
	FieldWorkWriters,
	FieldShare,
	FieldMediaType,
	FieldMediaSubType,
	FieldCountry,
	FieldQuantity,
	FieldGross,
	FieldNet,
	FieldISWC,
	FieldISRC,
}

// RequiredFields are the canonical fields a mapped row must carry to be
// usable downstream. Rows missing any of these are flagged, not dropped.
var RequiredFields = []Field{
	FieldWorkTitle,
	FieldWorkWriters,
	FieldGross,
}

// =============================================================================
// FIELD KINDS
// =============================================================================

// Kind is the semantic type of a canonical field. The mapper selects a
// normalization routine by kind, never by field name.
type Kind int

const (
	// KindText fields are whitespace-normalized free text.
	KindText Kind = iota

	// KindMoney fields are non-negative decimal amounts. Currency symbols
	// and thousands separators are stripped; parse failures default to 0.
	KindMoney

	// KindPercent fields are decimal percentages/counts. A trailing '%' is
	// stripped; parse failures default to 0.
	KindPercent

	// KindDate fields are statement periods normalized to ISO dates where
	// possible (BMI periods get special quarter-start derivation).
	KindDate

	// KindIdentifier fields (work numbers, ISWC, ISRC) are trimmed only;
	// no case or format coercion is applied.
	KindIdentifier

	// KindMedia fields are run through the media-type synonym table.
	KindMedia
)

// KindOf returns the semantic kind for a canonical field.
func KindOf(f Field) Kind {
	switch f {
	case FieldGross, FieldNet:
		return KindMoney
	case FieldShare, FieldQuantity:
		return KindPercent
	case FieldQuarter:
		return KindDate
	case FieldWorkIdentifier, FieldISWC, FieldISRC:
		return KindIdentifier
	case FieldSource, FieldRevenueSource, FieldMediaType:
		return KindMedia
	default:
		// WORK TITLE, WORK WRITERS, MEDIA SUB-TYPE, COUNTRY.
		return KindText
	}
}

// ParseField resolves a canonical field name (as it appears in mapping
// configuration files) to its Field value. The boolean is false for names
// outside the canonical set.
func ParseField(name string) (Field, bool) {
	cleaned := strings.ToUpper(strings.TrimSpace(name))
	for _, f := range StandardFields {
		if string(f) == cleaned {
			return f, true
		}
	}
	return "", false
}

// =============================================================================
// REVENUE SOURCES
// =============================================================================

// Source identifies which revenue source produced a statement batch.
// SourceUnknown is an explicit variant: unknown sources resolve to the
// empty default mapping, they do not error.
type Source string

const (
	SourceBMI                Source = "BMI"
	SourceASCAPDomestic      Source = "ASCAP Domestic"
	SourceASCAPInternational Source = "ASCAP International"
	SourceYouTube            Source = "YouTube"
	SourceSoundExchange      Source = "SoundExchange"
	SourceHFA                Source = "HFA"
	SourceKobalt             Source = "Kobalt"
	SourceMLC                Source = "MLC"
	SourceUnknown            Source = ""
)

// KnownSources lists every revenue source with a built-in default mapping.
var KnownSources = []Source{
	SourceBMI,
	SourceASCAPDomestic,
	SourceASCAPInternational,
	SourceYouTube,
	SourceSoundExchange,
	SourceHFA,
	SourceKobalt,
	SourceMLC,
}

// sourceAliases maps alternate spellings seen on statements and in saved
// configuration to their canonical Source.
var sourceAliases = map[string]Source{
	"ascap":          SourceASCAPDomestic,
	"ascap domestic": SourceASCAPDomestic,
	"ascap intl":     SourceASCAPInternational,
	"sound exchange": SourceSoundExchange,
	"soundexchange":  SourceSoundExchange,
	"harry fox":      SourceHFA,
	"the mlc":        SourceMLC,
	"youtube":        SourceYouTube,
}

// ParseSource resolves a detected-source string to a known Source.
// Matching is exact first, then case-insensitive, then through the alias
// table. Anything else is SourceUnknown.
func ParseSource(name string) Source {
	trimmed := strings.TrimSpace(name)
	for _, s := range KnownSources {
		if string(s) == trimmed {
			return s
		}
	}
	lowered := strings.ToLower(trimmed)
	for _, s := range KnownSources {
		if strings.ToLower(string(s)) == lowered {
			return s
		}
	}
	if s, ok := sourceAliases[lowered]; ok {
		return s
	}
	return SourceUnknown
}
