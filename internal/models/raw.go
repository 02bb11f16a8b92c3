// Package models defines the raw source records and the canonical
// license document the jurisdiction extractors produce.
package models

// RawRecord is one untyped source row or feature before
// normalization: a spreadsheet row, a CSV row, an HTML table row, or
// an ESRI feature. Keys are source-defined column/attribute names and
// values are foreign input that may be absent, empty, or a
// missing-data sentinel string.
type RawRecord map[string]any

// Get returns the first present, non-nil value among the given keys.
// Registries rename columns between exports ("Record Number" vs
// "RecordNumber"), so callers list aliases in preference order.
func (r RawRecord) Get(keys ...string) any {
	for _, k := range keys {
		if v, ok := r[k]; ok && v != nil {
			return v
		}
	}

	return nil
}

// Sub returns a nested record such as the attributes or geometry
// sub-map of an ESRI feature. A missing or mistyped key yields an
// empty record, never nil.
func (r RawRecord) Sub(key string) RawRecord {
	switch v := r[key].(type) {
	case RawRecord:
		return v
	case map[string]any:
		return RawRecord(v)
	}

	return RawRecord{}
}
