package ingestion

import (
	"testing"
	"time"
)

const targetProduct = "Coconut Shell Charcoal"

func TestExtractRows_StopCondition(t *testing.T) {
	dates := []time.Time{date(2024, 1, 1), date(2024, 1, 8)}

	cases := []struct {
		name  string
		table [][]string
		want  int
	}{
		{
			name: "footer stops the scan",
			table: [][]string{
				{"", "", "1/1/24", "8/1/24"},
				{"Coconut Shell Charcoal", "India (FOB)", "100", "110"},
				{"Source: Market Bulletin", "", "", ""},
				{"Coconut Shell Charcoal", "Indonesia", "90", "95"},
			},
			want: 1,
		},
		{
			name: "empty product cell stops the scan",
			table: [][]string{
				{"", "", "1/1/24", "8/1/24"},
				{"Coconut Shell Charcoal", "India", "100", "110"},
				{"", "Indonesia", "90", "95"},
				{"Coconut Shell Charcoal", "Sri Lanka", "80", "85"},
			},
			want: 1,
		},
		{
			name: "stop word is case-insensitive",
			table: [][]string{
				{"", "", "1/1/24", "8/1/24"},
				{"SOURCE notes follow", "", "", ""},
				{"Coconut Shell Charcoal", "India", "100", "110"},
			},
			want: 0,
		},
		{
			name: "short footer row does not panic",
			table: [][]string{
				{"", "", "1/1/24", "8/1/24"},
				{"Coconut Shell Charcoal", "India", "100", "110"},
				{},
			},
			want: 1,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := extractRows(tc.table, 0, dates, targetProduct)
			if len(got) != tc.want {
				t.Fatalf("rows: want %d got %d", tc.want, len(got))
			}
		})
	}
}

func TestExtractRows_ProductFilter(t *testing.T) {
	dates := []time.Time{date(2024, 1, 1)}
	table := [][]string{
		{"", "", "1/1/24", "8/1/24"},
		{"Coconut Oil", "Philippines", "55", "56"},
		{"coconut shell charcoal (granulated)", "India", "100", "110"},
		{"Desiccated Coconut", "Sri Lanka", "70", "71"},
		{"COCONUT SHELL CHARCOAL", "Indonesia", "90", "95"},
	}

	rows := extractRows(table, 0, dates, targetProduct)
	if len(rows) != 2 {
		t.Fatalf("rows: want 2 got %d", len(rows))
	}
	if rows[0].Country != "India" || rows[1].Country != "Indonesia" {
		t.Fatalf("unexpected countries: %+v", rows)
	}
}

func TestExtractRows_PriceAlignment(t *testing.T) {
	dates := []time.Time{date(2024, 1, 1), date(2024, 1, 8), date(2024, 1, 15)}
	table := [][]string{
		{"", "", "1/1/24", "8/1/24", "15/1/24"},
		// middle cell is a placeholder: skipped, not zero-filled
		{"Coconut Shell Charcoal", "India (FOB)", "100.50", "--", "104"},
	}

	rows := extractRows(table, 0, dates, targetProduct)
	if len(rows) != 1 {
		t.Fatalf("rows: want 1 got %d", len(rows))
	}

	prices := rows[0].Prices
	if len(prices) != 2 {
		t.Fatalf("prices: want 2 got %d", len(prices))
	}
	if !prices[0].Date.Equal(dates[0]) || prices[0].Price != 100.50 {
		t.Fatalf("first point: %+v", prices[0])
	}
	if !prices[1].Date.Equal(dates[2]) || prices[1].Price != 104 {
		t.Fatalf("second point: %+v", prices[1])
	}
	if rows[0].Market != "FOB" {
		t.Fatalf("market: want FOB got %q", rows[0].Market)
	}
}

func TestExtractRows_AllPricesUnparseableDropsRow(t *testing.T) {
	dates := []time.Time{date(2024, 1, 1), date(2024, 1, 8)}
	table := [][]string{
		{"", "", "1/1/24", "8/1/24"},
		{"Coconut Shell Charcoal", "India", "n.q.", "--"},
		{"Coconut Shell Charcoal", "Indonesia", "90", "95"},
	}

	rows := extractRows(table, 0, dates, targetProduct)
	if len(rows) != 1 {
		t.Fatalf("rows: want 1 got %d", len(rows))
	}
	if rows[0].Country != "Indonesia" {
		t.Fatalf("country: want Indonesia got %q", rows[0].Country)
	}
}

func TestExtractRows_RaggedRowsAreSafe(t *testing.T) {
	dates := []time.Time{date(2024, 1, 1), date(2024, 1, 8)}
	table := [][]string{
		{"", "", "1/1/24", "8/1/24"},
		// row shorter than 2+len(dates)
		{"Coconut Shell Charcoal", "India", "100"},
	}

	rows := extractRows(table, 0, dates, targetProduct)
	if len(rows) != 1 {
		t.Fatalf("rows: want 1 got %d", len(rows))
	}
	if len(rows[0].Prices) != 1 {
		t.Fatalf("prices: want 1 got %d", len(rows[0].Prices))
	}
}

func TestGuards(t *testing.T) {
	if !stopGuard("") || !stopGuard("  ") || !stopGuard("Source: X") || !stopGuard("SOURCES") {
		t.Fatalf("stopGuard should fire on empty and source labels")
	}
	if stopGuard("Coconut Shell Charcoal") {
		t.Fatalf("stopGuard must not fire on a product label")
	}
	if !productGuard("coconut shell charcoal (granulated)", targetProduct) {
		t.Fatalf("productGuard should match case-insensitive substrings")
	}
	if productGuard("Coconut Oil", targetProduct) {
		t.Fatalf("productGuard must not match other products")
	}
}
