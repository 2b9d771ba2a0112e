package ingestion

import (
	"regexp"
	"strconv"
	"time"
)

// dateRx matches slash-separated day/month/year tokens such as
// "12/10/23" or "1/1/2024" anywhere inside a cell.
var dateRx = regexp.MustCompile(`(\d{1,2})/(\d{1,2})/(\d{2,4})`)

// headerThreshold is the minimum number of date cells a row needs to be
// accepted as the table's date header. A single incidental date-like token
// must not false-trigger header detection.
const headerThreshold = 2

// LocateHeader scans the table's rows top to bottom for the one row that
// serves as the column header of dates. The first row with at least two
// cells holding a valid day-first date is accepted; its parsed dates are
// returned in column order. ok is false when no row qualifies, in which
// case the table carries no time series and is skipped by the caller.
func LocateHeader(rows [][]string) (headerIndex int, dates []time.Time, ok bool) {
	for i, row := range rows {
		var hits []time.Time
		for _, cell := range row {
			if d, valid := parseDayFirstDate(cell); valid {
				hits = append(hits, d)
			}
		}
		if len(hits) >= headerThreshold {
			return i, hits, true
		}
	}
	return 0, nil, false
}

// parseDayFirstDate extracts the first date-like token from the cell and
// parses it day-first. The dd/mm vs mm/dd ambiguity is always resolved
// day-first; this is a fixed policy, not locale-sensitive. Tokens that
// match the pattern but are not a real calendar date (month 13, day 32)
// are rejected rather than propagated.
func parseDayFirstDate(cell string) (time.Time, bool) {
	m := dateRx.FindStringSubmatch(cell)
	if m == nil {
		return time.Time{}, false
	}

	day, _ := strconv.Atoi(m[1])
	month, _ := strconv.Atoi(m[2])
	year, _ := strconv.Atoi(m[3])
	if year < 100 {
		year += 2000
	}

	if month < 1 || month > 12 || day < 1 {
		return time.Time{}, false
	}
	d := time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
	// time.Date normalizes overflow (e.g. 32/01 becomes 01/02); reject
	// anything that did not round-trip.
	if d.Day() != day || d.Month() != time.Month(month) || d.Year() != year {
		return time.Time{}, false
	}
	return d, true
}
