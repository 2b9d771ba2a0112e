package ingestion

import (
	"strconv"
	"strings"
)

// CleanToFloat strips every rune that is not a digit or a decimal point
// from the raw cell text and attempts a numeric parse.
//
// Absence of a price is a normal outcome for a cell, not a failure of the
// row: placeholder tokens like "n.q.", "--", or blank cells all report
// ok=false. A cleaned string with more than one decimal point fails the
// parse and also reports ok=false.
func CleanToFloat(raw string) (float64, bool) {
	var b strings.Builder
	for _, r := range raw {
		if (r >= '0' && r <= '9') || r == '.' {
			b.WriteRune(r)
		}
	}
	cleaned := b.String()
	if cleaned == "" || cleaned == "." {
		return 0, false
	}
	v, err := strconv.ParseFloat(cleaned, 64)
	if err != nil {
		return 0, false
	}
	return v, true
}

// SplitCountryMarket splits a raw label such as
// "India (Domestic, Tamil Nadu)" into country "India" and market
// "Domestic, Tamil Nadu".
//
// Everything before the first '(' is the country, trimmed with internal
// whitespace collapsed to single spaces. The first parenthesized group is
// the market, trimmed. Without parentheses the whole label is the country
// and market is empty. Empty input yields two empty strings.
func SplitCountryMarket(raw string) (country, market string) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", ""
	}

	open := strings.Index(raw, "(")
	if open < 0 {
		return collapseSpaces(raw), ""
	}

	country = collapseSpaces(raw[:open])
	rest := raw[open+1:]
	if close := strings.Index(rest, ")"); close >= 0 {
		market = strings.TrimSpace(rest[:close])
	} else {
		market = strings.TrimSpace(rest)
	}
	return country, market
}

func collapseSpaces(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
