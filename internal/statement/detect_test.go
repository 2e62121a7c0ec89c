package statement

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/EncoreMusictech/encore-live-sub008/internal/lexicon"
)

func TestDetectSourceByFilenamePattern(t *testing.T) {
	patterns := map[lexicon.Source][]string{
		lexicon.SourceBMI:           {"bmi_*"},
		lexicon.SourceSoundExchange: {"*soundexchange*"},
	}

	assert.Equal(t, lexicon.SourceBMI,
		DetectSource(nil, "/in/BMI_2023_Q1.csv", patterns), "case-insensitive match on the base name")
	assert.Equal(t, lexicon.SourceSoundExchange,
		DetectSource(nil, "2024_soundexchange_stmt.xlsx", patterns))
}

func TestDetectSourceByHeaders(t *testing.T) {
	headers := []string{"Period", "Title Name", "Participant Names", "Current Activity Amount", "Notes"}
	assert.Equal(t, lexicon.SourceBMI, DetectSource(headers, "statement.csv", nil))
}

func TestDetectSourceHeadersBeatNothingButNotPatterns(t *testing.T) {
	headers := []string{"Period", "Title Name", "Participant Names", "Current Activity Amount"}
	patterns := map[lexicon.Source][]string{
		lexicon.SourceKobalt: {"statement.csv"},
	}

	assert.Equal(t, lexicon.SourceKobalt, DetectSource(headers, "statement.csv", patterns),
		"filename patterns take priority over header fingerprinting")
}

func TestDetectSourceAmbiguousHeaders(t *testing.T) {
	// "Work Title" and "Writers" appear in several sources' defaults.
	headers := []string{"Work Title", "Writers"}
	assert.Equal(t, lexicon.SourceUnknown, DetectSource(headers, "statement.csv", nil))
}

func TestDetectSourceBelowThreshold(t *testing.T) {
	assert.Equal(t, lexicon.SourceUnknown, DetectSource([]string{"Period"}, "statement.csv", nil))
	assert.Equal(t, lexicon.SourceUnknown, DetectSource(nil, "statement.csv", nil))
}
