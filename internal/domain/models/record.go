package models

import "time"

// Source kinds recorded on a PriceRecord. The discriminator tells the
// analytics layer whether a record came from a PDF bulletin or from a
// spreadsheet upload.
const (
	SourcePDF   = "pdf"
	SourceExcel = "excel"
)

// PricePoint is a single dated price inside a record's time series.
type PricePoint struct {
	Date  time.Time `bson:"date" json:"date"`
	Price float64   `bson:"price" json:"price" example:"100.50"`
}

// PriceRecord is one persisted ingestion unit: a single
// (product, country, market, source document) with its extracted series.
//
// Invariants:
//   - Prices is ordered as the date columns appeared in the source header
//     row; unparseable cells are skipped, never zero-filled.
//   - Prices is never empty on an emitted record.
//   - Records are immutable after creation; re-uploading the same document
//     creates duplicates (there is no de-duplication key yet).
type PriceRecord struct {
	Product string `bson:"product" json:"product" example:"Coconut Shell Charcoal"`
	Country string `bson:"country" json:"country" example:"India"`
	// Market is the optional sub-label parsed out of the parenthetical part
	// of the country cell, e.g. "FOB" or "Domestic, Tamil Nadu".
	Market string       `bson:"market,omitempty" json:"market,omitempty" example:"FOB"`
	Prices []PricePoint `bson:"prices" json:"prices"`

	// Month and Year are taken from the first price point and denormalized
	// for month-scoped analytics queries.
	Month int `bson:"month" json:"month" example:"1"`
	Year  int `bson:"year" json:"year" example:"2024"`

	SourceDocument string `bson:"source_document" json:"source_document" example:"prices-jan-2024.pdf"`
	SourceKind     string `bson:"source_kind" json:"source_kind" example:"pdf"`

	// BatchID groups every record produced by one ingestion call.
	BatchID    string    `bson:"batch_id" json:"batch_id"`
	UploadedAt time.Time `bson:"uploaded_at" json:"uploaded_at"`
}
