// =============================================================================
// Encore Royalty Core - XLSX Statement Parser
// =============================================================================

package statement

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/EncoreMusictech/encore-live-sub008/internal/types"
)

// ParseXLSX reads the first sheet of an Excel statement into a Statement
// batch. The first row is treated as the header row.
func ParseXLSX(path string) (*types.Statement, error) {
	file, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open workbook: %w", err)
	}
	defer file.Close()

	sheets := file.GetSheetList()
	if len(sheets) == 0 {
		return nil, fmt.Errorf("workbook has no sheets")
	}

	rows, err := file.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("failed to read sheet %q: %w", sheets[0], err)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("sheet %q is empty", sheets[0])
	}

	headers := make([]string, len(rows[0]))
	for i, header := range rows[0] {
		headers[i] = strings.TrimSpace(header)
	}

	stmt := &types.Statement{
		Headers:    headers,
		SourceFile: path,
	}

	for _, row := range rows[1:] {
		if isRowEmpty(row) {
			continue
		}
		stmt.Rows = append(stmt.Rows, rowToMap(headers, row))
	}

	return stmt, nil
}

// Parse dispatches to the CSV or XLSX parser by file extension.
func Parse(path string, settings Settings) (*types.Statement, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".csv", ".txt":
		return ParseCSV(path, settings)
	case ".xlsx", ".xlsm":
		return ParseXLSX(path)
	default:
		return nil, fmt.Errorf("unsupported statement format: %s", filepath.Ext(path))
	}
}
