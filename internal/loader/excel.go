// Package loader turns raw source material into RawRecord sequences:
// Excel workbooks, CSV exports with unreliable encodings, ESRI
// feature JSON, and paginated HTML tables.
package loader

import (
	"bytes"
	"errors"
	"fmt"
	"strings"

	"github.com/xuri/excelize/v2"

	"licworker/internal/models"
)

// ErrNoSheets is returned when a workbook contains no sheets.
var ErrNoSheets = errors.New("workbook has no sheets")

// LoadExcel reads the first sheet of a workbook into records keyed by
// the header row. Rows shorter than the header are padded with absent
// values; a workbook with only a header row yields an empty batch.
func LoadExcel(data []byte) ([]models.RawRecord, error) {
	workbook, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("failed to open workbook: %w", err)
	}

	defer func() {
		_ = workbook.Close()
	}()

	sheet := workbook.GetSheetName(0)
	if sheet == "" {
		return nil, ErrNoSheets
	}

	rows, err := workbook.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("failed to read sheet %s: %w", sheet, err)
	}

	if len(rows) == 0 {
		return []models.RawRecord{}, nil
	}

	headers := make([]string, 0, len(rows[0]))
	for _, cell := range rows[0] {
		headers = append(headers, strings.TrimSpace(cell))
	}

	records := make([]models.RawRecord, 0, len(rows)-1)

	for _, row := range rows[1:] {
		record := models.RawRecord{}

		for i, header := range headers {
			if header == "" {
				continue
			}

			if i < len(row) {
				record[header] = row[i]
			}
		}

		records = append(records, record)
	}

	return records, nil
}
