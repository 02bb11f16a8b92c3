package extractor

import (
	"fmt"

	"licworker/internal/models"
)

// Failure reasons reported per skipped record.
const (
	ReasonTransformError = "transform error"
	ReasonMissingData    = "missing essential data"
)

// Failure records why a single raw record was excluded from the
// batch. Index is the record's position in the input sequence.
type Failure struct {
	Index  int
	Reason string
	Err    error
}

// Result is the outcome of driving one batch of raw records through
// an extractor. Processed + Skipped + Errored equals the input length.
type Result struct {
	Documents []*models.License
	Processed int
	Skipped   int
	Errored   int
	Failures  []Failure
}

// Driver runs a batch of raw records through one extractor with
// per-record failure isolation: a record that errors or panics inside
// Transform is logged as a failure and the batch continues. One bad
// row never aborts the run.
type Driver struct {
	extractor Extractor
}

// NewDriver creates a driver for the given extractor.
func NewDriver(e Extractor) *Driver {
	return &Driver{extractor: e}
}

// Run transforms every record in order and returns the collected
// documents with counts. Documents is never nil, so an empty input
// yields an empty batch rather than an error.
func (d *Driver) Run(records []models.RawRecord) *Result {
	result := &Result{
		Documents: []*models.License{},
	}

	for i, raw := range records {
		doc, err := d.transformOne(raw)
		if err != nil {
			result.Errored++
			result.Failures = append(result.Failures, Failure{
				Index:  i,
				Reason: ReasonTransformError,
				Err:    err,
			})

			continue
		}

		if !d.extractor.Complete(doc) {
			result.Skipped++
			result.Failures = append(result.Failures, Failure{
				Index:  i,
				Reason: ReasonMissingData,
			})

			continue
		}

		result.Documents = append(result.Documents, doc)
		result.Processed++
	}

	return result
}

// transformOne invokes the extractor inside a recover boundary so a
// panic on one malformed record is reported as that record's error.
func (d *Driver) transformOne(raw models.RawRecord) (doc *models.License, err error) {
	defer func() {
		if r := recover(); r != nil {
			doc = nil
			err = fmt.Errorf("transform panicked: %v", r)
		}
	}()

	doc, err = d.extractor.Transform(raw)
	if err != nil {
		return nil, fmt.Errorf("transform failed: %w", err)
	}

	if doc == nil {
		return nil, fmt.Errorf("transform returned no document")
	}

	return doc, nil
}
