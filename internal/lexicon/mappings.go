// =============================================================================
// Encore Royalty Core - Default Source Mappings
// =============================================================================
//
// Built-in column mappings for each known revenue source. Per canonical
// field, the value is an ordered list of candidate column names: the mapper
// takes the first candidate present in a row with a non-empty value
// (ordered fallback, not a merge).
//
// These defaults are the lowest layer of the three-layer mapping
// resolution. Saved per-source customizations and per-import user mappings
// override them field by field.
//
// =============================================================================

package lexicon

// Columns is an ordered candidate column-name list for one canonical field.
type Columns []string

// SourceMapping maps canonical fields to candidate statement columns for
// one revenue source.
type SourceMapping map[Field]Columns

// defaultMappings is keyed by Source; SourceUnknown intentionally has no
// entry, so unknown sources resolve to an empty mapping.
var defaultMappings = map[Source]SourceMapping{
	SourceBMI: {
		FieldQuarter:        {"Period", "Royalty Period"},
		FieldRevenueSource:  {"Revenue Class"},
		FieldWorkIdentifier: {"BMI Work #", "Work Number"},
		FieldWorkTitle:      {"Title Name", "Work Title"},
		FieldWorkWriters:    {"Participant Names", "Writer Name"},
		FieldShare:          {"Participation %"},
		FieldMediaSubType:   {"Show Name", "Use Type"},
		FieldCountry:        {"Country of Performance", "Country"},
		FieldQuantity:       {"Performance Count", "Performances"},
		FieldGross:          {"Current Activity Amount", "Royalty Amount"},
		FieldNet:            {"Royalty Amount"},
		FieldISWC:           {"ISWC"},
		// BMI statements carry no MEDIA TYPE column; the mapper forces
		// PERF for this source.
	},
	SourceASCAPDomestic: {
		FieldQuarter:        {"Distribution Date", "Dist Date"},
		FieldSource:         {"Revenue Class"},
		FieldRevenueSource:  {"Revenue Class"},
		FieldWorkIdentifier: {"Work ID", "ASCAP Work ID"},
		FieldWorkTitle:      {"Work Title", "Title"},
		FieldWorkWriters:    {"Writers", "Writer Names"},
		FieldShare:          {"Share %", "Member Share"},
		FieldMediaType:      {"Media", "Medium"},
		FieldMediaSubType:   {"Series or Film Title", "Program"},
		FieldCountry:        {"Country"},
		FieldQuantity:       {"Performances", "Credits"},
		FieldGross:          {"Dollars", "Amount"},
		FieldNet:            {"Net Dollars", "Dollars"},
		FieldISWC:           {"ISWC"},
	},
	SourceASCAPInternational: {
		FieldQuarter:        {"Distribution Date", "Dist Date"},
		FieldSource:         {"Foreign Society"},
		FieldRevenueSource:  {"Revenue Class"},
		FieldWorkIdentifier: {"Work ID", "ASCAP Work ID"},
		FieldWorkTitle:      {"Work Title", "Title"},
		FieldWorkWriters:    {"Writers", "Writer Names"},
		FieldShare:          {"Share %", "Member Share"},
		FieldMediaType:      {"Media", "Medium"},
		FieldMediaSubType:   {"Series or Film Title", "Program"},
		FieldCountry:        {"Country of Performance", "Country"},
		FieldQuantity:       {"Performances", "Credits"},
		FieldGross:          {"Dollars", "Amount"},
		FieldNet:            {"Net Dollars", "Dollars"},
		FieldISWC:           {"ISWC"},
	},
	SourceYouTube: {
		FieldQuarter:        {"Month", "Reporting Period"},
		FieldRevenueSource:  {"Claim Type"},
		FieldWorkIdentifier: {"Asset ID", "Custom ID"},
		FieldWorkTitle:      {"Asset Title", "Video Title"},
		FieldWorkWriters:    {"Composers", "Writers"},
		FieldShare:          {"Ownership %"},
		FieldMediaType:      {"Asset Type"},
		FieldMediaSubType:   {"Policy"},
		FieldCountry:        {"Country Code", "Country"},
		FieldQuantity:       {"Owned Views", "Views"},
		FieldGross:          {"Partner Revenue", "Gross Revenue"},
		FieldNet:            {"Partner Revenue"},
		FieldISRC:           {"ISRC"},
	},
	SourceSoundExchange: {
		FieldQuarter:        {"Statement Date", "Payment Period"},
		FieldRevenueSource:  {"Service Type"},
		FieldWorkIdentifier: {"SoundExchange ID", "Recording ID"},
		FieldWorkTitle:      {"Recording Title", "Track Title"},
		FieldWorkWriters:    {"Featured Artist", "Artist"},
		FieldShare:          {"Payee Share"},
		FieldMediaType:      {"Service Type"},
		FieldMediaSubType:   {"Service Name", "Service"},
		FieldCountry:        {"Territory"},
		FieldQuantity:       {"Plays", "Performance Count"},
		FieldGross:          {"Gross Royalty", "Royalty"},
		FieldNet:            {"Net Royalty", "Royalty"},
		FieldISRC:           {"ISRC"},
	},
	SourceHFA: {
		FieldQuarter:        {"Period End", "Quarter End"},
		FieldRevenueSource:  {"License Type"},
		FieldWorkIdentifier: {"HFA Song Code", "Song Code"},
		FieldWorkTitle:      {"Song Title", "Title"},
		FieldWorkWriters:    {"Writers", "Composer"},
		FieldShare:          {"Claim %", "Share"},
		FieldMediaType:      {"Config", "Configuration"},
		FieldMediaSubType:   {"Licensee", "Distributor"},
		FieldCountry:        {"Territory", "Country"},
		FieldQuantity:       {"Units", "Quantity"},
		FieldGross:          {"Amount Payable", "Royalty Earned"},
		FieldNet:            {"Royalty Earned", "Amount Payable"},
		FieldISWC:           {"ISWC"},
	},
	SourceKobalt: {
		FieldQuarter:        {"Period", "Statement Period"},
		FieldSource:         {"Income Source"},
		FieldRevenueSource:  {"Income Type"},
		FieldWorkIdentifier: {"Kobalt Song ID", "Song ID"},
		FieldWorkTitle:      {"Song Title", "Composition"},
		FieldWorkWriters:    {"Composers", "Writers"},
		FieldShare:          {"Client Share %", "Share"},
		FieldMediaType:      {"Income Type", "Right Type"},
		FieldMediaSubType:   {"Sub Source", "Platform"},
		FieldCountry:        {"Territory", "Country"},
		FieldQuantity:       {"Units", "Quantity"},
		FieldGross:          {"Gross Amount", "Amount Collected"},
		FieldNet:            {"Net Amount", "Amount Payable"},
		FieldISWC:           {"ISWC"},
		FieldISRC:           {"ISRC"},
	},
	SourceMLC: {
		FieldQuarter:        {"Usage Period", "Distribution Period"},
		FieldSource:         {"DSP"},
		FieldRevenueSource:  {"Usage Type"},
		FieldWorkIdentifier: {"MLC Song Code", "Song Code"},
		FieldWorkTitle:      {"Work Title", "Song Title"},
		FieldWorkWriters:    {"Writers", "Writer Names"},
		FieldShare:          {"Share %", "Claimed Share"},
		FieldMediaType:      {"Usage Type"},
		FieldMediaSubType:   {"DSP", "Service"},
		FieldCountry:        {"Country"},
		FieldQuantity:       {"Plays", "Usage Count"},
		FieldGross:          {"Gross Royalty", "Royalties"},
		FieldNet:            {"Net Royalty", "Royalties"},
		FieldISWC:           {"ISWC"},
	},
}

// DefaultMapping returns a copy of the built-in mapping for a source.
// SourceUnknown (and any source without defaults) yields an empty, non-nil
// mapping so callers can layer customizations onto it directly.
func DefaultMapping(src Source) SourceMapping {
	out := make(SourceMapping)
	for f, cols := range defaultMappings[src] {
		out[f] = append(Columns(nil), cols...)
	}
	return out
}
