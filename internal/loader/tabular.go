package loader

import (
	"path/filepath"
	"strings"

	"licworker/internal/models"
)

// LoadTabular loads a spreadsheet-shaped source by file extension:
// .csv parses as CSV, anything else as an Excel workbook. Some
// registries publish the same listing in both formats.
func LoadTabular(path string, data []byte) ([]models.RawRecord, error) {
	if strings.EqualFold(filepath.Ext(path), ".csv") {
		return LoadCSV(data)
	}

	return LoadExcel(data)
}
