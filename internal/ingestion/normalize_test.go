package ingestion

import "testing"

func TestCleanToFloat_TableDriven(t *testing.T) {
	cases := []struct {
		name   string
		raw    string
		want   float64
		wantOK bool
	}{
		{name: "plain number", raw: "100.50", want: 100.50, wantOK: true},
		{name: "thousands separator", raw: "1,234.56", want: 1234.56, wantOK: true},
		{name: "currency prefix", raw: "$ 310", want: 310, wantOK: true},
		{name: "trailing unit", raw: "120/MT", want: 120, wantOK: true},
		{name: "zero", raw: "0", want: 0, wantOK: true},
		{name: "not quoted", raw: "n.q.", wantOK: false},
		{name: "dashes", raw: "--", wantOK: false},
		{name: "blank", raw: "", wantOK: false},
		{name: "whitespace only", raw: "   ", wantOK: false},
		{name: "lone dot", raw: ".", wantOK: false},
		{name: "no digits", raw: "N/A", wantOK: false},
		// the stripping rule lets multiple dots through; the parse must
		// then fail rather than best-effort
		{name: "two decimal points", raw: "12.34.56", wantOK: false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, ok := CleanToFloat(tc.raw)
			if ok != tc.wantOK {
				t.Fatalf("ok: want %v got %v", tc.wantOK, ok)
			}
			if ok && got != tc.want {
				t.Fatalf("value: want %v got %v", tc.want, got)
			}
		})
	}
}

func TestSplitCountryMarket_TableDriven(t *testing.T) {
	cases := []struct {
		name        string
		raw         string
		wantCountry string
		wantMarket  string
	}{
		{name: "country with market", raw: "India (Domestic, Tamil Nadu)", wantCountry: "India", wantMarket: "Domestic, Tamil Nadu"},
		{name: "fob market", raw: "Sri Lanka (FOB)", wantCountry: "Sri Lanka", wantMarket: "FOB"},
		{name: "no market", raw: "Indonesia", wantCountry: "Indonesia", wantMarket: ""},
		{name: "empty", raw: "", wantCountry: "", wantMarket: ""},
		{name: "whitespace only", raw: "   ", wantCountry: "", wantMarket: ""},
		{name: "double spaces collapsed", raw: "Sri   Lanka  (FOB)", wantCountry: "Sri Lanka", wantMarket: "FOB"},
		{name: "unclosed paren", raw: "India (FOB", wantCountry: "India", wantMarket: "FOB"},
		{name: "market inner whitespace trimmed", raw: "India ( FOB )", wantCountry: "India", wantMarket: "FOB"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			country, market := SplitCountryMarket(tc.raw)
			if country != tc.wantCountry || market != tc.wantMarket {
				t.Fatalf("want (%q, %q) got (%q, %q)", tc.wantCountry, tc.wantMarket, country, market)
			}
		})
	}
}
