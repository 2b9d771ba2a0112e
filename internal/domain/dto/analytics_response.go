package dto

// ScopeStats is one side of a comparison: the per-scope min/max/avg for a
// single country.
type ScopeStats struct {
	MinPrice float64 `json:"min_price" example:"90.00"`
	MaxPrice float64 `json:"max_price" example:"120.00"`
	AvgPrice float64 `json:"avg_price" example:"105.25"`
}

// Delta carries absolute and percentage differences between two scopes.
// Percentages are omitted when the baseline value is zero.
type Delta struct {
	Min    float64  `json:"min"`
	MinPct *float64 `json:"min_pct,omitempty"`
	Avg    float64  `json:"avg"`
	AvgPct *float64 `json:"avg_pct,omitempty"`
	Max    float64  `json:"max"`
	MaxPct *float64 `json:"max_pct,omitempty"`
}

// ComparisonRow is the per-country outcome of comparing two scopes.
// A or B is nil when the country only appears in one scope.
type ComparisonRow struct {
	Country string      `json:"country" example:"India"`
	A       *ScopeStats `json:"a,omitempty"`
	B       *ScopeStats `json:"b,omitempty"`
	Delta   *Delta      `json:"delta,omitempty"`
}

// CompareResponse is the full payload of the compare endpoint.
type CompareResponse struct {
	ScopeA string          `json:"scope_a" example:"prices-jan-2024.pdf"`
	ScopeB string          `json:"scope_b" example:"prices-feb-2024.pdf"`
	Rows   []ComparisonRow `json:"rows"`
}
