// =============================================================================
// Encore Royalty Core - Revenue Source Detection
// =============================================================================
//
// Incoming statements rarely announce which society or platform produced
// them, so the source is detected in two passes:
//
//   1. Filename patterns from per-source config files (e.g. "bmi_*" or
//      "*domestic*"), matched case-insensitively against the base name.
//   2. Header fingerprinting: each known source's default column
//      candidates are scored against the statement headers, and the best
//      unambiguous match above a small threshold wins.
//
// Detection returning SourceUnknown is not an error; mapping then falls
// back to user-supplied mappings only.
//
// =============================================================================

package statement

import (
	"path/filepath"
	"strings"

	"github.com/EncoreMusictech/encore-live-sub008/internal/lexicon"
)

// headerScoreThreshold is the minimum number of matching default columns
// before a header fingerprint is trusted.
const headerScoreThreshold = 2

// DetectSource identifies the revenue source of a statement from its
// filename and headers. Filename patterns take priority over header
// fingerprinting.
//
// PARAMETERS:
//   - headers: Statement header row, in file order
//   - filename: Statement file path or base name
//   - patterns: Per-source filename glob patterns from config (may be nil)
//
// RETURNS:
//   - lexicon.Source: Detected source, or SourceUnknown
func DetectSource(headers []string, filename string, patterns map[lexicon.Source][]string) lexicon.Source {
	base := strings.ToLower(filepath.Base(filename))

	for _, source := range lexicon.KnownSources {
		for _, pattern := range patterns[source] {
			matched, err := filepath.Match(strings.ToLower(pattern), base)
			if err == nil && matched {
				return source
			}
		}
	}

	return fingerprintHeaders(headers)
}

// fingerprintHeaders scores each known source's default mapping against
// the statement headers. A source wins only with a strict best score at
// or above the threshold; ties are ambiguous and return SourceUnknown.
func fingerprintHeaders(headers []string) lexicon.Source {
	headerSet := make(map[string]bool, len(headers))
	for _, header := range headers {
		headerSet[strings.ToLower(strings.TrimSpace(header))] = true
	}

	best := lexicon.SourceUnknown
	bestScore := 0
	tied := false

	for _, source := range lexicon.KnownSources {
		score := 0
		for _, columns := range lexicon.DefaultMapping(source) {
			for _, column := range columns {
				if headerSet[strings.ToLower(column)] {
					score++
					break
				}
			}
		}
		if score > bestScore {
			best = source
			bestScore = score
			tied = false
		} else if score == bestScore && score > 0 {
			tied = true
		}
	}

	if bestScore < headerScoreThreshold || tied {
		return lexicon.SourceUnknown
	}
	return best
}
