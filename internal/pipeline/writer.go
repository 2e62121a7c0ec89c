// =============================================================================
// Encore Royalty Core - Canonical Workbook Writer
// =============================================================================
//
// Writes normalized royalty records to an Excel workbook with two sheets:
//
//   Royalties   - one row per mapped record, columns in standard field
//                 order plus provenance (statement source, source row)
//   Diagnostics - unmapped columns and validation errors for review
//
// =============================================================================

package pipeline

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/EncoreMusictech/encore-live-sub008/internal/lexicon"
	"github.com/EncoreMusictech/encore-live-sub008/internal/types"
)

const (
	royaltiesSheet   = "Royalties"
	diagnosticsSheet = "Diagnostics"
)

// WriteCanonicalWorkbook writes a MapResult to an xlsx file at path.
func WriteCanonicalWorkbook(path string, result types.MapResult) error {
	file := excelize.NewFile()
	defer file.Close()

	file.SetSheetName("Sheet1", royaltiesSheet)

	headers := make([]interface{}, 0, len(lexicon.StandardFields)+2)
	for _, field := range lexicon.StandardFields {
		headers = append(headers, string(field))
	}
	headers = append(headers, "Statement Source", "Source Row")

	if err := file.SetSheetRow(royaltiesSheet, "A1", &headers); err != nil {
		return fmt.Errorf("failed to write header row: %w", err)
	}

	for i, record := range result.MappedData {
		row := make([]interface{}, 0, len(headers))
		for _, field := range lexicon.StandardFields {
			value, ok := record.Values[field]
			if !ok || value == nil {
				row = append(row, "")
				continue
			}
			row = append(row, value)
		}
		row = append(row, record.StatementSource, record.OriginalRowIndex+1)

		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return fmt.Errorf("failed to compute cell reference: %w", err)
		}
		if err := file.SetSheetRow(royaltiesSheet, cell, &row); err != nil {
			return fmt.Errorf("failed to write row %d: %w", i+1, err)
		}
	}

	if err := writeDiagnostics(file, result); err != nil {
		return err
	}

	if err := file.SaveAs(path); err != nil {
		return fmt.Errorf("failed to save workbook: %w", err)
	}
	return nil
}

func writeDiagnostics(file *excelize.File, result types.MapResult) error {
	if len(result.UnmappedFields) == 0 && len(result.ValidationErrors) == 0 {
		return nil
	}

	if _, err := file.NewSheet(diagnosticsSheet); err != nil {
		return fmt.Errorf("failed to create diagnostics sheet: %w", err)
	}

	rowNum := 1
	writeRow := func(values ...interface{}) error {
		cell, err := excelize.CoordinatesToCellName(1, rowNum)
		if err != nil {
			return err
		}
		rowNum++
		return file.SetSheetRow(diagnosticsSheet, cell, &values)
	}

	if len(result.UnmappedFields) > 0 {
		if err := writeRow("Unmapped Columns"); err != nil {
			return fmt.Errorf("failed to write diagnostics: %w", err)
		}
		for _, column := range result.UnmappedFields {
			if err := writeRow(column); err != nil {
				return fmt.Errorf("failed to write diagnostics: %w", err)
			}
		}
		rowNum++
	}

	if len(result.ValidationErrors) > 0 {
		if err := writeRow("Validation Errors"); err != nil {
			return fmt.Errorf("failed to write diagnostics: %w", err)
		}
		for _, msg := range result.ValidationErrors {
			if err := writeRow(msg); err != nil {
				return fmt.Errorf("failed to write diagnostics: %w", err)
			}
		}
	}

	return nil
}
