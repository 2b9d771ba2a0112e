package models

import "time"

// SeriesPoint is one flattened (country, date, price) observation returned
// by the series endpoint after unwinding record price arrays.
type SeriesPoint struct {
	Country string    `bson:"country" json:"country" example:"India"`
	Date    time.Time `bson:"date" json:"date"`
	Price   float64   `bson:"price" json:"price" example:"100.50"`
}

// CountryKPI summarizes the whole stored series for one country:
// min/max/avg price plus first-to-last percentage change.
//
// swagger:model CountryKPI
type CountryKPI struct {
	Country   string  `bson:"country" json:"country" example:"India"`
	MinPrice  float64 `bson:"min_price" json:"min_price" example:"90.00"`
	MaxPrice  float64 `bson:"max_price" json:"max_price" example:"120.00"`
	AvgPrice  float64 `bson:"avg_price" json:"avg_price" example:"105.25"`
	ChangePct float64 `bson:"change_pct" json:"change_pct" example:"3.75"`
}

// CountryStats holds per-country min/max/avg for one analytics scope
// (a single source document, or a month+year window).
type CountryStats struct {
	Country  string  `bson:"country" json:"country" example:"India"`
	MinPrice float64 `bson:"min_price" json:"min_price" example:"90.00"`
	MaxPrice float64 `bson:"max_price" json:"max_price" example:"120.00"`
	AvgPrice float64 `bson:"avg_price" json:"avg_price" example:"105.25"`
}

// Scope selects one side of a comparison: either a source document or a
// month+year window. Exactly one of the two forms is set.
type Scope struct {
	Source string
	Month  int
	Year   int
}

// BySource reports whether the scope filters by source document.
func (s Scope) BySource() bool { return s.Source != "" }

// Label renders the scope for response payloads and logs.
func (s Scope) Label() string {
	if s.BySource() {
		return s.Source
	}
	return formatMonthYear(s.Month, s.Year)
}

func formatMonthYear(month, year int) string {
	return time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC).Format("2006-01")
}
