// =============================================================================
// Encore Royalty Core - CSV Statement Parser
// =============================================================================
//
// This module parses royalty statement files delivered as CSV. Sources
// export with different conventions, so parsing is driven by Settings:
//   - Different delimiters (comma, pipe, tab)
//   - Multi-line headers (some societies split headers over two rows)
//   - Preamble rows before the data starts
//   - Non-UTF-8 encodings (older society exports are Windows-1252)
//
// The parser produces a types.Statement: ordered headers plus one
// header->value map per data row.
//
// =============================================================================

package statement

import (
	"bufio"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/transform"

	"github.com/EncoreMusictech/encore-live-sub008/internal/types"
)

// =============================================================================
// SETTINGS
// =============================================================================

// Settings controls statement file parsing. The zero value is not usable;
// call ApplyDefaults (config loading does this automatically).
type Settings struct {
	// Delimiter separates CSV fields. Default: ","
	Delimiter string `yaml:"delimiter"`

	// HeaderRows is the number of header rows; multi-row headers are
	// merged with a single space. Default: 1
	HeaderRows int `yaml:"header_rows"`

	// DataStartRow is the 1-based row where data begins. Default: one
	// past the header rows.
	DataStartRow int `yaml:"data_start_row"`

	// Encoding is the file's character encoding. Supported: UTF-8,
	// ISO-8859-1, Windows-1252. Default: "UTF-8"
	Encoding string `yaml:"encoding"`
}

// ApplyDefaults fills unset settings.
func (s *Settings) ApplyDefaults() {
	if s.Delimiter == "" {
		s.Delimiter = ","
	}
	if s.HeaderRows <= 0 {
		s.HeaderRows = 1
	}
	if s.DataStartRow <= 0 {
		s.DataStartRow = s.HeaderRows + 1
	}
	if s.Encoding == "" {
		s.Encoding = "UTF-8"
	}
}

// decoderFor returns the decoding transformer for a named encoding, or nil
// for UTF-8.
func decoderFor(name string) *encoding.Decoder {
	switch strings.ToUpper(strings.TrimSpace(name)) {
	case "ISO-8859-1", "LATIN1":
		return charmap.ISO8859_1.NewDecoder()
	case "WINDOWS-1252", "CP1252":
		return charmap.Windows1252.NewDecoder()
	default:
		return nil
	}
}

// =============================================================================
// PARSER
// =============================================================================

// ParseCSV reads a CSV statement file into a Statement batch.
func ParseCSV(path string, settings Settings) (*types.Statement, error) {
	settings.ApplyDefaults()

	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open statement: %w", err)
	}
	defer file.Close()

	var reader io.Reader = bufio.NewReader(file)
	if decoder := decoderFor(settings.Encoding); decoder != nil {
		reader = transform.NewReader(reader, decoder)
	}

	csvReader := csv.NewReader(reader)
	csvReader.Comma = rune(settings.Delimiter[0])
	csvReader.FieldsPerRecord = -1
	csvReader.LazyQuotes = true

	allRows, err := csvReader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to parse CSV: %w", err)
	}
	if len(allRows) < settings.HeaderRows {
		return nil, fmt.Errorf("statement has %d row(s), expected at least %d header row(s)",
			len(allRows), settings.HeaderRows)
	}

	headers := mergeHeaders(allRows[:settings.HeaderRows])

	stmt := &types.Statement{
		Headers:    headers,
		SourceFile: path,
	}

	for i := settings.DataStartRow - 1; i < len(allRows); i++ {
		row := allRows[i]
		if isRowEmpty(row) {
			continue
		}
		stmt.Rows = append(stmt.Rows, rowToMap(headers, row))
	}

	return stmt, nil
}

// mergeHeaders merges one or more header rows into a single header list,
// joining stacked fragments with a space.
func mergeHeaders(headerRows [][]string) []string {
	width := 0
	for _, row := range headerRows {
		if len(row) > width {
			width = len(row)
		}
	}

	headers := make([]string, width)
	for col := 0; col < width; col++ {
		var parts []string
		for _, row := range headerRows {
			if col < len(row) {
				if part := strings.TrimSpace(row[col]); part != "" {
					parts = append(parts, part)
				}
			}
		}
		headers[col] = strings.Join(parts, " ")
	}
	return headers
}

// rowToMap zips a raw row with the headers. Cells beyond the header width
// are dropped; short rows leave trailing headers unset.
func rowToMap(headers []string, row []string) types.RawRow {
	out := make(types.RawRow, len(headers))
	for i, header := range headers {
		if header == "" || i >= len(row) {
			continue
		}
		out[header] = row[i]
	}
	return out
}

// isRowEmpty reports whether a row contains only empty cells.
func isRowEmpty(row []string) bool {
	for _, cell := range row {
		if strings.TrimSpace(cell) != "" {
			return false
		}
	}
	return true
}
