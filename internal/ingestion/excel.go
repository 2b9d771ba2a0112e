package ingestion

import (
	"bytes"
	"fmt"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/sadumina/CarbonXinsight/internal/domain/models"
)

// workbookSheet is the sheet the supervisor-provided template uses.
const workbookSheet = "Data"

// workbookHeaders is the required column set, in order.
var workbookHeaders = []string{"Country", "Product", "Date", "Price"}

// workbookDateLayouts are the accepted date formats for the Date column.
// Slash-separated dates resolve day-first like the PDF path.
var workbookDateLayouts = []string{"2006-01-02", "02/01/2006", "2/1/2006", "02/01/06", "2/1/06"}

// parseWorkbook reads the "Data" sheet of an uploaded workbook and emits
// one record per row. The sheet must carry the exact header
// Country|Product|Date|Price; a malformed sheet fails the whole upload
// (unlike the PDF path, spreadsheets are a controlled template).
func parseWorkbook(doc Document, product, batchID string, uploadedAt time.Time) ([]models.PriceRecord, error) {
	f, err := excelize.OpenReader(bytes.NewReader(doc.Data))
	if err != nil {
		return nil, fmt.Errorf("open workbook: %w", err)
	}
	defer func() { _ = f.Close() }()

	rows, err := f.GetRows(workbookSheet)
	if err != nil {
		return nil, fmt.Errorf("sheet %q: %w", workbookSheet, err)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("sheet %q is empty", workbookSheet)
	}

	header := rows[0]
	if len(header) < len(workbookHeaders) {
		return nil, fmt.Errorf("invalid header: expected %v", workbookHeaders)
	}
	for i, want := range workbookHeaders {
		if header[i] != want {
			return nil, fmt.Errorf("invalid header at col %d: expected %q, got %q", i+1, want, header[i])
		}
	}

	var records []models.PriceRecord
	for i, row := range rows[1:] {
		if len(row) == 0 || cellAt(row, 0) == "" {
			continue
		}

		date, err := parseWorkbookDate(cellAt(row, 2))
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", i+2, err)
		}
		price, ok := CleanToFloat(cellAt(row, 3))
		if !ok {
			return nil, fmt.Errorf("row %d: invalid price %q", i+2, cellAt(row, 3))
		}

		country, market := SplitCountryMarket(cellAt(row, 0))
		records = append(records, models.PriceRecord{
			Product:        product,
			Country:        country,
			Market:         market,
			Prices:         []models.PricePoint{{Date: date, Price: price}},
			Month:          int(date.Month()),
			Year:           date.Year(),
			SourceDocument: doc.Filename,
			SourceKind:     models.SourceExcel,
			BatchID:        batchID,
			UploadedAt:     uploadedAt,
		})
	}
	return records, nil
}

func parseWorkbookDate(raw string) (time.Time, error) {
	for _, layout := range workbookDateLayouts {
		if d, err := time.Parse(layout, raw); err == nil {
			return d.UTC(), nil
		}
	}
	return time.Time{}, fmt.Errorf("invalid date %q", raw)
}
