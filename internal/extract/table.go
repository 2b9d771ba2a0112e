// Package extract provides the raw table capability consumed by the
// ingestion pipeline: given a document's bytes, produce a sequence of
// tables, each a 2-D grid of text cells in reading order. The pipeline
// does not know or care how the grid was produced.
package extract

import "context"

// Table is a 2-D grid of text cells (rows x columns). Rows may be ragged;
// missing cells read as empty strings.
type Table [][]string

// TableExtractor turns a document's raw bytes into tables.
type TableExtractor interface {
	Tables(ctx context.Context, data []byte) ([]Table, error)
}
