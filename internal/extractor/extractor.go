// Package extractor maps raw jurisdiction records into canonical
// license documents. Each jurisdiction has its own extractor carrying
// the source's column aliases, classification tables, and defaults;
// the shared normalization primitives live in internal/normalize.
package extractor

import (
	"licworker/internal/models"
)

// Extractor transforms one raw source record into one canonical
// document. Transform must tolerate completely absent fields and
// should not return an error for anticipated dirty data; the driver
// isolates anything unexpected per record. Complete is the
// jurisdiction's minimum-field gate for inclusion in the batch.
type Extractor interface {
	Jurisdiction() string
	Transform(raw models.RawRecord) (*models.License, error)
	Complete(doc *models.License) bool
}
