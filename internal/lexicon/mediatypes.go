// =============================================================================
// Encore Royalty Core - Media Type Standardization
// =============================================================================
//
// Fixed synonym table mapping source-specific media and income labels onto
// the canonical media classes used by allocation:
//
//   PERF  - performance income (radio, TV, streaming performance, live)
//   MECH  - mechanical income (downloads, physical, interactive streams)
//   SYNCH - synchronization income (film, TV, advertising placements)
//   PRINT - printed music income
//   OTHER - anything that does not standardize
//
// Lookup order: case-sensitive exact match, then case-insensitive match,
// then PERF for BMI (a pure performance society), otherwise OTHER.
//
// =============================================================================

package lexicon

import "strings"

// MediaType is a canonical media class.
type MediaType string

const (
	MediaPerf  MediaType = "PERF"
	MediaMech  MediaType = "MECH"
	MediaSynch MediaType = "SYNCH"
	MediaPrint MediaType = "PRINT"
	MediaOther MediaType = "OTHER"
)

// MediaTypes lists the canonical media classes.
var MediaTypes = []MediaType{MediaPerf, MediaMech, MediaSynch, MediaPrint, MediaOther}

// mediaSynonyms is the fixed label table. Keys are labels exactly as they
// appear on statements; the case-insensitive pass is built from this table.
var mediaSynonyms = map[string]MediaType{
	// Performance.
	"Performance":             MediaPerf,
	"Performances":            MediaPerf,
	"Digital Performance":     MediaPerf,
	"Streaming - Performance": MediaPerf,
	"Audio Streaming":         MediaPerf,
	"Webcast":                 MediaPerf,
	"Terrestrial Radio":       MediaPerf,
	"Satellite Radio":         MediaPerf,
	"Internet Radio":          MediaPerf,
	"Radio":                   MediaPerf,
	"Radio Feature":           MediaPerf,
	"TV":                      MediaPerf,
	"Television":              MediaPerf,
	"Cable":                   MediaPerf,
	"Network TV":              MediaPerf,
	"Local TV":                MediaPerf,
	"Live Concert":            MediaPerf,
	"Live Performance":        MediaPerf,
	"General Licensing":       MediaPerf,
	"Background Music":        MediaPerf,
	"YouTube":                 MediaPerf,
	"Sound Recording":         MediaPerf,
	"BMI":                     MediaPerf,
	"ASCAP":                   MediaPerf,
	"SoundExchange":           MediaPerf,
	"SESAC":                   MediaPerf,

	// Mechanical.
	"Mechanical":             MediaMech,
	"Mechanicals":            MediaMech,
	"Streaming - Mechanical": MediaMech,
	"Interactive Stream":     MediaMech,
	"Interactive Streaming":  MediaMech,
	"Limited Download":       MediaMech,
	"Permanent Download":     MediaMech,
	"Download":               MediaMech,
	"Downloads":              MediaMech,
	"Digital Download":       MediaMech,
	"Physical":               MediaMech,
	"CD":                     MediaMech,
	"Vinyl":                  MediaMech,
	"Ringtone":               MediaMech,
	"HFA":                    MediaMech,
	"Harry Fox":              MediaMech,
	"The MLC":                MediaMech,
	"MLC":                    MediaMech,
	"Matched Usage":          MediaMech,

	// Synchronization.
	"Sync":            MediaSynch,
	"Synch":           MediaSynch,
	"Synchronization": MediaSynch,
	"Sync License":    MediaSynch,
	"Film":            MediaSynch,
	"Film/TV":         MediaSynch,
	"Trailer":         MediaSynch,
	"Advertising":     MediaSynch,
	"Commercial":      MediaSynch,
	"Video Game":      MediaSynch,

	// Print.
	"Print":         MediaPrint,
	"Sheet Music":   MediaPrint,
	"Folio":         MediaPrint,
	"Lyric Reprint": MediaPrint,

	// Explicit other.
	"Other":        MediaOther,
	"Misc":         MediaOther,
	"Grand Rights": MediaOther,
	"Karaoke":      MediaOther,
}

// mediaSynonymsFolded is the case-insensitive index, built once at load.
var mediaSynonymsFolded = func() map[string]MediaType {
	folded := make(map[string]MediaType, len(mediaSynonyms))
	for label, mt := range mediaSynonyms {
		folded[strings.ToLower(label)] = mt
	}
	return folded
}()

// StandardizeMediaType maps a statement label onto a canonical media class.
//
// LOOKUP ORDER:
//  1. Case-sensitive exact match in the synonym table.
//  2. Case-insensitive exact match.
//  3. PERF when the source is BMI (its statements are performance-only and
//     carry no usable media labels).
//  4. OTHER.
func StandardizeMediaType(label string, src Source) MediaType {
	if mt, ok := mediaSynonyms[label]; ok {
		return mt
	}
	if mt, ok := mediaSynonymsFolded[strings.ToLower(label)]; ok {
		return mt
	}
	if src == SourceBMI {
		return MediaPerf
	}
	return MediaOther
}
