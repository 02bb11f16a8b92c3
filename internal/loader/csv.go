package loader

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/encoding/charmap"

	"licworker/internal/models"
)

// LoadCSV reads a header-keyed CSV export. Registries ship these in
// whatever encoding their backoffice produces, so content that is not
// valid UTF-8 is decoded as Latin-1, then Windows-1252.
func LoadCSV(data []byte) ([]models.RawRecord, error) {
	decoded, err := decodeCSVBytes(data)
	if err != nil {
		return nil, err
	}

	reader := csv.NewReader(bytes.NewReader(decoded))
	// Exports pad or drop trailing columns between rows.
	reader.FieldsPerRecord = -1

	rows, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to parse CSV: %w", err)
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

// decodeCSVBytes returns UTF-8 content, transcoding from the legacy
// single-byte encodings when needed.
func decodeCSVBytes(data []byte) ([]byte, error) {
	if utf8.Valid(data) {
		return data, nil
	}

	for _, cm := range []*charmap.Charmap{charmap.ISO8859_1, charmap.Windows1252} {
		decoded, err := io.ReadAll(cm.NewDecoder().Reader(bytes.NewReader(data)))
		if err == nil {
			return decoded, nil
		}
	}

	return nil, fmt.Errorf("failed to decode CSV content with any known encoding")
}
