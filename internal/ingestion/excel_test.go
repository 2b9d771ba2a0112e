package ingestion

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/xuri/excelize/v2"
)

// buildWorkbook writes a "Data" sheet with the given rows (header included)
// and returns the serialized file.
func buildWorkbook(t *testing.T, rows [][]interface{}) []byte {
	t.Helper()
	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	if _, err := f.NewSheet(workbookSheet); err != nil {
		t.Fatalf("new sheet: %v", err)
	}
	for i, row := range rows {
		cell := fmt.Sprintf("A%d", i+1)
		if err := f.SetSheetRow(workbookSheet, cell, &row); err != nil {
			t.Fatalf("set row %d: %v", i+1, err)
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		t.Fatalf("write workbook: %v", err)
	}
	return buf.Bytes()
}

func TestParseWorkbook(t *testing.T) {
	data := buildWorkbook(t, [][]interface{}{
		{"Country", "Product", "Date", "Price"},
		{"India (FOB)", "Coconut Shell Charcoal", "2024-01-01", "100.50"},
		{"Sri Lanka", "Coconut Shell Charcoal", "08/01/2024", "95"},
		{"", "", "", ""}, // trailing blank row is ignored
	})

	records, err := parseWorkbook(Document{Filename: "prices.xlsx", Data: data},
		targetProduct, "batch-1", date(2024, 2, 1))
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if len(records) != 2 {
		t.Fatalf("records: want 2 got %d", len(records))
	}

	first := records[0]
	if first.Country != "India" || first.Market != "FOB" {
		t.Fatalf("label: got (%q, %q)", first.Country, first.Market)
	}
	if len(first.Prices) != 1 || !first.Prices[0].Date.Equal(date(2024, 1, 1)) || first.Prices[0].Price != 100.50 {
		t.Fatalf("point: %+v", first.Prices)
	}
	if first.SourceKind != "excel" || first.SourceDocument != "prices.xlsx" {
		t.Fatalf("source: (%q, %q)", first.SourceKind, first.SourceDocument)
	}

	// slash dates resolve day-first
	second := records[1]
	if !second.Prices[0].Date.Equal(date(2024, 1, 8)) {
		t.Fatalf("day-first date: got %v", second.Prices[0].Date)
	}
	if second.Month != 1 || second.Year != 2024 {
		t.Fatalf("month/year: %d/%d", second.Month, second.Year)
	}
}

func TestParseWorkbook_Rejections(t *testing.T) {
	cases := []struct {
		name string
		rows [][]interface{}
	}{
		{
			name: "wrong header",
			rows: [][]interface{}{
				{"Nation", "Product", "Date", "Price"},
			},
		},
		{
			name: "missing columns",
			rows: [][]interface{}{
				{"Country", "Product"},
			},
		},
		{
			name: "bad date",
			rows: [][]interface{}{
				{"Country", "Product", "Date", "Price"},
				{"India", "Coconut Shell Charcoal", "January", "100"},
			},
		},
		{
			name: "bad price",
			rows: [][]interface{}{
				{"Country", "Product", "Date", "Price"},
				{"India", "Coconut Shell Charcoal", "2024-01-01", "n.q."},
			},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			data := buildWorkbook(t, tc.rows)
			if _, err := parseWorkbook(Document{Filename: "x.xlsx", Data: data},
				targetProduct, "b", date(2024, 1, 1)); err == nil {
				t.Fatalf("expected rejection")
			}
		})
	}
}

func TestIngestWorkbook(t *testing.T) {
	data := buildWorkbook(t, [][]interface{}{
		{"Country", "Product", "Date", "Price"},
		{"Indonesia", "Coconut Shell Charcoal", "2024-03-05", "88"},
	})
	repo := &fakeRepo{}
	orch := NewOrchestrator(targetProduct, &fakeExtractor{}, repo)

	report, err := orch.IngestWorkbook(context.Background(), Document{Filename: "prices.xlsx", Data: data})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if report.DocumentsProcessed != 1 || report.RecordsInserted != 1 {
		t.Fatalf("report: %+v", report)
	}
	if len(repo.inserted) != 1 || repo.inserted[0][0].Country != "Indonesia" {
		t.Fatalf("persisted: %+v", repo.inserted)
	}
}

func TestIngestWorkbook_InvalidIsTagged(t *testing.T) {
	orch := NewOrchestrator(targetProduct, &fakeExtractor{}, &fakeRepo{})
	_, err := orch.IngestWorkbook(context.Background(), Document{Filename: "x.xlsx", Data: []byte("not a workbook")})
	if !errors.Is(err, ErrInvalidWorkbook) {
		t.Fatalf("want ErrInvalidWorkbook got %v", err)
	}
}
