package ingestion

import (
	"strings"
	"time"

	"github.com/sadumina/CarbonXinsight/internal/domain/models"
)

// scanState drives the one-pass row scan below a located header.
type scanState int

const (
	// stateScanning keeps walking rows.
	stateScanning scanState = iota
	// stateStopped halts the table: a footer or empty label was seen and
	// no further rows are examined, even ones that would qualify.
	stateStopped
)

// rowSeries is one extracted data row before document metadata is stamped.
type rowSeries struct {
	Country string
	Market  string
	Prices  []models.PricePoint
}

// stopGuard reports whether the product cell ends the table scan: an empty
// cell or one starting with the word "source" (any case) marks a
// footer/citation line.
func stopGuard(productCell string) bool {
	label := strings.TrimSpace(productCell)
	if label == "" {
		return true
	}
	return strings.HasPrefix(strings.ToLower(label), "source")
}

// productGuard reports whether the row belongs to the target product.
// Rows for other products interleave in the same table and are skipped,
// not stopped on.
func productGuard(productCell, target string) bool {
	return strings.Contains(strings.ToLower(productCell), strings.ToLower(target))
}

// extractRows walks every row strictly below headerIndex, classifies it
// against the target product, and builds its price series positionally
// aligned with the header dates. Price cells live in columns
// [2, 2+len(dates)); cells that fail numeric cleaning are skipped, not
// zero-filled, so a series can be shorter than the header. Rows producing
// an empty series are dropped.
func extractRows(table [][]string, headerIndex int, dates []time.Time, target string) []rowSeries {
	var out []rowSeries
	state := stateScanning

	for _, row := range table[headerIndex+1:] {
		if state == stateStopped {
			break
		}

		productCell := cellAt(row, 0)
		switch {
		case stopGuard(productCell):
			state = stateStopped
		case !productGuard(productCell, target):
			// different product, keep scanning
		default:
			country, market := SplitCountryMarket(cellAt(row, 1))
			prices := make([]models.PricePoint, 0, len(dates))
			for i, d := range dates {
				price, ok := CleanToFloat(cellAt(row, 2+i))
				if !ok {
					continue
				}
				prices = append(prices, models.PricePoint{Date: d, Price: price})
			}
			if len(prices) > 0 {
				out = append(out, rowSeries{Country: country, Market: market, Prices: prices})
			}
		}
	}
	return out
}

// cellAt is bounds-safe column access; extracted tables are ragged.
func cellAt(row []string, i int) string {
	if i < len(row) {
		return row[i]
	}
	return ""
}
