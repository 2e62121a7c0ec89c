package cwr

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLayoutWidths(t *testing.T) {
	expected := map[string]int{
		"HDR": 207,
		"NWR": 222,
		"SWR": 238,
		"PWR": 212,
		"TER": 16,
		"REC": 272,
		"GRT": 88,
		"TRL": 88,
	}

	for record, width := range expected {
		layout, ok := Layouts[record]
		assert.True(t, ok, "layout %s should be registered", record)
		assert.Equal(t, width, layout.Width(), "layout %s width", record)
		assert.Equal(t, record, layout.Record)
	}
}

func TestRenderProducesExactWidth(t *testing.T) {
	for record, layout := range Layouts {
		line := layout.Render(map[string]string{})
		assert.Len(t, line, layout.Width(), "empty render of %s", record)
	}
}

func TestFitPadding(t *testing.T) {
	tests := []struct {
		name     string
		value    string
		spec     FieldSpec
		expected string
	}{
		{
			name:     "left-aligned pads right with spaces",
			value:    "ABC",
			spec:     FieldSpec{Name: "f", Width: 6, Align: AlignLeft, Pad: ' '},
			expected: "ABC   ",
		},
		{
			name:     "right-aligned pads left with zeros",
			value:    "42",
			spec:     FieldSpec{Name: "f", Width: 5, Align: AlignRight, Pad: '0'},
			expected: "00042",
		},
		{
			name:     "overlong value truncates to width",
			value:    "ABCDEFGH",
			spec:     FieldSpec{Name: "f", Width: 4, Align: AlignLeft, Pad: ' '},
			expected: "ABCD",
		},
		{
			name:     "empty value renders as pure padding",
			value:    "",
			spec:     FieldSpec{Name: "f", Width: 3, Align: AlignLeft, Pad: ' '},
			expected: "   ",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, fit(tc.value, tc.spec))
		})
	}
}

func TestRenderFieldPositions(t *testing.T) {
	line := LayoutTER.Render(map[string]string{
		"record_type":    "TER",
		"sequence":       "7",
		"inclusion_flag": "I",
		"territory_code": "2136",
	})

	assert.Equal(t, "TER00000007I2136", line)
}
