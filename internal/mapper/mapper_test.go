package mapper

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/EncoreMusictech/encore-live-sub008/internal/lexicon"
	"github.com/EncoreMusictech/encore-live-sub008/internal/types"
)

func bmiStatement() types.Statement {
	return types.Statement{
		Headers: []string{"Period", "BMI Work #", "Title Name", "Participant Names", "Current Activity Amount", "Notes"},
		Rows: []types.RawRow{
			{
				"Period":                  "20231",
				"BMI Work #":              "12345678",
				"Title Name":              "Midnight  Run",
				"Participant Names":       "Alice Harper",
				"Current Activity Amount": "$1,234.50",
				"Notes":                   "internal memo",
			},
		},
		SourceFile: "bmi_q1.csv",
	}
}

func TestMapDataBMI(t *testing.T) {
	m := New(nil)
	result := m.MapData(bmiStatement(), "BMI", nil)

	require.Len(t, result.MappedData, 1)
	record := result.MappedData[0]

	assert.Equal(t, "2023-01-01", record.Values[lexicon.FieldQuarter])
	assert.Equal(t, "12345678", record.Values[lexicon.FieldWorkIdentifier])
	assert.Equal(t, "Midnight Run", record.Values[lexicon.FieldWorkTitle], "whitespace collapsed")
	assert.Equal(t, "Alice Harper", record.Values[lexicon.FieldWorkWriters])
	assert.Equal(t, 1234.5, record.Values[lexicon.FieldGross])
	assert.Equal(t, lexicon.MediaPerf, record.Values[lexicon.FieldMediaType])
	assert.Equal(t, "BMI", record.StatementSource)
	assert.Equal(t, 0, record.OriginalRowIndex)

	assert.Empty(t, result.ValidationErrors)
	assert.Equal(t, []string{"Notes"}, result.UnmappedFields)
}

func TestBMIMediaTypeCannotBeOverridden(t *testing.T) {
	stmt := bmiStatement()
	stmt.Headers = append(stmt.Headers, "Format")
	stmt.Rows[0]["Format"] = "Mechanical"

	m := New(nil)
	user := FieldMapping{lexicon.FieldMediaType: {"Format"}}
	result := m.MapData(stmt, "BMI", user)

	require.Len(t, result.MappedData, 1)
	assert.Equal(t, lexicon.MediaPerf, result.MappedData[0].Values[lexicon.FieldMediaType],
		"user mapping must not change the forced BMI media type")
}

func TestMediaTypeOverrideWorksForOtherSources(t *testing.T) {
	stmt := types.Statement{
		Headers: []string{"Song Title", "Writers", "Amount Payable", "Format"},
		Rows: []types.RawRow{
			{"Song Title": "Midnight Run", "Writers": "Alice Harper", "Amount Payable": "10.00", "Format": "Download"},
		},
	}

	m := New(nil)
	user := FieldMapping{lexicon.FieldMediaType: {"Format"}}
	result := m.MapData(stmt, "HFA", user)

	require.Len(t, result.MappedData, 1)
	assert.Equal(t, lexicon.MediaMech, result.MappedData[0].Values[lexicon.FieldMediaType])
}

func TestUnparseableBMIPeriodYieldsNil(t *testing.T) {
	stmt := bmiStatement()
	stmt.Rows[0]["Period"] = "garbage"

	m := New(nil)
	result := m.MapData(stmt, "BMI", nil)

	require.Len(t, result.MappedData, 1)
	record := result.MappedData[0]
	assert.True(t, record.Has(lexicon.FieldQuarter), "quarter is assigned even on failure")
	assert.Nil(t, record.Values[lexicon.FieldQuarter])
}

func TestMissingRequiredFieldsAreFlaggedNotDropped(t *testing.T) {
	stmt := bmiStatement()
	delete(stmt.Rows[0], "Title Name")
	delete(stmt.Rows[0], "Current Activity Amount")

	m := New(nil)
	result := m.MapData(stmt, "BMI", nil)

	require.Len(t, result.MappedData, 1, "flagged rows are still emitted")
	assert.Contains(t, result.ValidationErrors, "Row 1: Missing required field 'WORK TITLE'")
	assert.Contains(t, result.ValidationErrors, "Row 1: Missing required field 'GROSS'")
	assert.NotContains(t, result.ValidationErrors, "Row 1: Missing required field 'WORK WRITERS'")
}

func TestZeroGrossIsNotMissing(t *testing.T) {
	stmt := bmiStatement()
	stmt.Rows[0]["Current Activity Amount"] = "N/A"

	m := New(nil)
	result := m.MapData(stmt, "BMI", nil)

	require.Len(t, result.MappedData, 1)
	assert.Equal(t, 0.0, result.MappedData[0].Values[lexicon.FieldGross], "unparseable money defaults to 0")
	assert.Empty(t, result.ValidationErrors, "a defaulted amount still satisfies the requirement")
}

func TestOrderedCandidateFallback(t *testing.T) {
	stmt := types.Statement{
		Headers: []string{"Work Number", "Title Name", "Participant Names", "Royalty Amount"},
		Rows: []types.RawRow{
			{"Work Number": "999", "Title Name": "Song", "Participant Names": "W", "Royalty Amount": "5.00"},
		},
	}

	m := New(nil)
	result := m.MapData(stmt, "BMI", nil)

	require.Len(t, result.MappedData, 1)
	record := result.MappedData[0]
	assert.Equal(t, "999", record.Values[lexicon.FieldWorkIdentifier],
		"second candidate used when the first column is absent")
	assert.Equal(t, 5.0, record.Values[lexicon.FieldGross])
}

func TestEffectiveMappingLayering(t *testing.T) {
	custom := map[lexicon.Source]FieldMapping{
		lexicon.SourceBMI: {
			lexicon.FieldWorkTitle: {"Custom Title"},
		},
	}
	m := New(custom)

	user := FieldMapping{lexicon.FieldWorkWriters: {"Custom Writers"}}
	effective := m.EffectiveMapping("BMI", user)

	assert.Equal(t, lexicon.Columns{"Custom Title"}, effective[lexicon.FieldWorkTitle], "custom beats default")
	assert.Equal(t, lexicon.Columns{"Custom Writers"}, effective[lexicon.FieldWorkWriters], "user beats custom and default")
	assert.Equal(t, lexicon.Columns{"Period", "Royalty Period"}, effective[lexicon.FieldQuarter], "untouched fields keep defaults")
}

func TestSaveMappingMerges(t *testing.T) {
	m := New(nil)

	first := m.SaveMapping("BMI", FieldMapping{lexicon.FieldWorkTitle: {"Col A"}})
	assert.Equal(t, lexicon.Columns{"Col A"}, first[lexicon.FieldWorkTitle])

	second := m.SaveMapping("BMI", FieldMapping{lexicon.FieldGross: {"Col B"}})
	assert.Equal(t, lexicon.Columns{"Col A"}, second[lexicon.FieldWorkTitle], "earlier saves survive")
	assert.Equal(t, lexicon.Columns{"Col B"}, second[lexicon.FieldGross])

	third := m.SaveMapping("BMI", FieldMapping{lexicon.FieldWorkTitle: {"Col C"}})
	assert.Equal(t, lexicon.Columns{"Col C"}, third[lexicon.FieldWorkTitle], "last write wins per field")
}

func TestUnknownSourceUsesUserMappingsOnly(t *testing.T) {
	stmt := types.Statement{
		Headers: []string{"T", "W", "G"},
		Rows: []types.RawRow{
			{"T": "Song", "W": "Writer", "G": "1.00"},
		},
	}

	m := New(nil)
	user := FieldMapping{
		lexicon.FieldWorkTitle:   {"T"},
		lexicon.FieldWorkWriters: {"W"},
		lexicon.FieldGross:       {"G"},
	}
	result := m.MapData(stmt, "Some Unknown PRO", user)

	require.Len(t, result.MappedData, 1)
	record := result.MappedData[0]
	assert.Equal(t, "Song", record.Values[lexicon.FieldWorkTitle])
	assert.Equal(t, 1.0, record.Values[lexicon.FieldGross])
	assert.Empty(t, result.ValidationErrors)
}

func TestUnmappedColumnsPreserveHeaderOrder(t *testing.T) {
	stmt := types.Statement{
		Headers: []string{"Zebra", "Title Name", "Alpha", "Participant Names", "Current Activity Amount", "Alpha"},
		Rows: []types.RawRow{
			{"Zebra": "1", "Title Name": "Song", "Alpha": "2", "Participant Names": "W", "Current Activity Amount": "3"},
		},
	}

	m := New(nil)
	result := m.MapData(stmt, "BMI", nil)

	assert.Equal(t, []string{"Zebra", "Alpha"}, result.UnmappedFields,
		"first-appearance order, duplicates suppressed")
}

func TestInputRowsAreNotMutated(t *testing.T) {
	stmt := bmiStatement()
	original := make(types.RawRow, len(stmt.Rows[0]))
	for k, v := range stmt.Rows[0] {
		original[k] = v
	}

	m := New(nil)
	m.MapData(stmt, "BMI", nil)

	assert.Equal(t, original, stmt.Rows[0])
}
