package ingestion

import (
	"time"

	"github.com/sadumina/CarbonXinsight/internal/domain/models"
	"github.com/sadumina/CarbonXinsight/internal/extract"
)

// documentMeta carries the identity stamped onto every record produced
// from one document. UploadedAt is fixed once per ingestion call so a
// batch is attributable to one logical ingestion event.
type documentMeta struct {
	Product    string
	Filename   string
	SourceKind string
	BatchID    string
	UploadedAt time.Time
}

// recordsFromTables runs header location and row extraction over every
// table of one document and stamps the surviving rows with the document's
// metadata. Tables without a date header are skipped silently: most tables
// in a multi-table bulletin do not carry the target product's series.
func recordsFromTables(tables []extract.Table, meta documentMeta) []models.PriceRecord {
	var records []models.PriceRecord

	for _, table := range tables {
		headerIndex, dates, ok := LocateHeader(table)
		if !ok {
			continue
		}
		for _, row := range extractRows(table, headerIndex, dates, meta.Product) {
			first := row.Prices[0].Date
			records = append(records, models.PriceRecord{
				Product:        meta.Product,
				Country:        row.Country,
				Market:         row.Market,
				Prices:         row.Prices,
				Month:          int(first.Month()),
				Year:           first.Year(),
				SourceDocument: meta.Filename,
				SourceKind:     meta.SourceKind,
				BatchID:        meta.BatchID,
				UploadedAt:     meta.UploadedAt,
			})
		}
	}
	return records
}
