package statement

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTemp(t *testing.T, name string, data []byte) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, data, 0644))
	return path
}

func TestParseCSV(t *testing.T) {
	path := writeTemp(t, "bmi.csv", []byte(
		"Period,Title Name,Current Activity Amount\n"+
			"20231,Midnight Run,\"1,234.50\"\n"+
			"20231,Second Wind,10.00\n"))

	stmt, err := ParseCSV(path, Settings{})
	require.NoError(t, err)

	assert.Equal(t, []string{"Period", "Title Name", "Current Activity Amount"}, stmt.Headers)
	require.Len(t, stmt.Rows, 2)
	assert.Equal(t, "Midnight Run", stmt.Rows[0]["Title Name"])
	assert.Equal(t, "1,234.50", stmt.Rows[0]["Current Activity Amount"])
	assert.Equal(t, path, stmt.SourceFile)
}

func TestParseCSVPipeDelimited(t *testing.T) {
	path := writeTemp(t, "kobalt.txt", []byte(
		"Song Title|Gross Amount\nMidnight Run|55.10\n"))

	stmt, err := ParseCSV(path, Settings{Delimiter: "|"})
	require.NoError(t, err)

	require.Len(t, stmt.Rows, 1)
	assert.Equal(t, "55.10", stmt.Rows[0]["Gross Amount"])
}

func TestParseCSVMultiRowHeader(t *testing.T) {
	path := writeTemp(t, "ascap.csv", []byte(
		"Work,Net\nTitle,Dollars\nMidnight Run,12.00\n"))

	stmt, err := ParseCSV(path, Settings{HeaderRows: 2})
	require.NoError(t, err)

	assert.Equal(t, []string{"Work Title", "Net Dollars"}, stmt.Headers)
	require.Len(t, stmt.Rows, 1)
	assert.Equal(t, "Midnight Run", stmt.Rows[0]["Work Title"])
}

func TestParseCSVDataStartRowSkipsPreamble(t *testing.T) {
	path := writeTemp(t, "hfa.csv", []byte(
		"Song Title,Amount Payable\n"+
			"Statement for Q1 2024,\n"+
			"Midnight Run,9.99\n"))

	stmt, err := ParseCSV(path, Settings{DataStartRow: 3})
	require.NoError(t, err)

	require.Len(t, stmt.Rows, 1)
	assert.Equal(t, "Midnight Run", stmt.Rows[0]["Song Title"])
}

func TestParseCSVSkipsEmptyRows(t *testing.T) {
	path := writeTemp(t, "s.csv", []byte(
		"A,B\n1,2\n,\n3,4\n"))

	stmt, err := ParseCSV(path, Settings{})
	require.NoError(t, err)
	assert.Len(t, stmt.Rows, 2)
}

func TestParseCSVLatin1(t *testing.T) {
	// "Café" with a Latin-1 encoded é (0xE9).
	data := append([]byte("Title Name\nCaf"), 0xE9, '\n')
	path := writeTemp(t, "latin1.csv", data)

	stmt, err := ParseCSV(path, Settings{Encoding: "ISO-8859-1"})
	require.NoError(t, err)

	require.Len(t, stmt.Rows, 1)
	assert.Equal(t, "Café", stmt.Rows[0]["Title Name"])
}

func TestParseCSVRaggedRows(t *testing.T) {
	path := writeTemp(t, "ragged.csv", []byte(
		"A,B,C\n1,2\n1,2,3,4\n"))

	stmt, err := ParseCSV(path, Settings{})
	require.NoError(t, err)

	require.Len(t, stmt.Rows, 2)
	_, hasC := stmt.Rows[0]["C"]
	assert.False(t, hasC, "short rows leave trailing headers unset")
	assert.Equal(t, "3", stmt.Rows[1]["C"], "extra cells beyond the headers are dropped")
}

func TestParseDispatchesByExtension(t *testing.T) {
	_, err := Parse("statement.pdf", Settings{})
	assert.Error(t, err)
}

func TestSettingsDefaults(t *testing.T) {
	var s Settings
	s.ApplyDefaults()

	assert.Equal(t, ",", s.Delimiter)
	assert.Equal(t, 1, s.HeaderRows)
	assert.Equal(t, 2, s.DataStartRow)
	assert.Equal(t, "UTF-8", s.Encoding)

	two := Settings{HeaderRows: 2}
	two.ApplyDefaults()
	assert.Equal(t, 3, two.DataStartRow)
}
