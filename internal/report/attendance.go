// Package report implements the attendance, donation, and ranking
// aggregators. Every function is a pure, synchronous transformation over an
// in-memory snapshot: callers fetch data once and pass it in, and missing
// keys at any level degrade to zero-valued output rather than errors.
package report

import (
	"math"
	"sort"

	"github.com/akash6998s/langarsewa-go/internal/calendar"
	"github.com/akash6998s/langarsewa-go/internal/models"
)

// CellState classifies one day slot in a year grid. Slots past the end of a
// month are NotApplicable, which renderers treat differently from Absent.
type CellState int

const (
	CellNotApplicable CellState = iota
	CellAbsent
	CellPresent
)

// String returns the wire name of the cell state.
func (s CellState) String() string {
	switch s {
	case CellPresent:
		return "present"
	case CellAbsent:
		return "absent"
	default:
		return "na"
	}
}

// PresentDaysList returns the de-duplicated, sorted list of valid present
// days for (year, month). Days outside 1..DaysInMonth are dropped, so
// malformed records under-report instead of inflating counts.
func PresentDaysList(att models.AttendanceMap, year int, month string) []int {
	months, ok := att[yearKey(year)]
	if !ok {
		return nil
	}
	days, ok := months[calendar.NormalizeMonth(month)]
	if !ok {
		return nil
	}

	limit := calendar.DaysInMonth(year, month)
	seen := make(map[int]bool, len(days))
	var out []int
	for _, d := range days {
		if d < 1 || d > limit || seen[d] {
			continue
		}
		seen[d] = true
		out = append(out, d)
	}
	sort.Ints(out)
	return out
}

// PresentDays counts the days the member was present in (year, month).
// Missing keys mean zero attendance, not an error.
func PresentDays(att models.AttendanceMap, year int, month string) int {
	return len(PresentDaysList(att, year, month))
}

// AttendancePercentage returns present days over days-in-month as a
// percentage in [0,100], rounded to two decimals. A zero-day month (an
// unknown month name) yields 0.
func AttendancePercentage(att models.AttendanceMap, year int, month string) float64 {
	total := calendar.DaysInMonth(year, month)
	if total == 0 {
		return 0
	}
	pct := float64(PresentDays(att, year, month)) / float64(total) * 100
	return math.Round(pct*100) / 100
}

// YearGrid flattens a year of attendance into a 12x31 grid for table
// rendering. Row i is calendar.Months[i].
func YearGrid(att models.AttendanceMap, year int) [12][31]CellState {
	var grid [12][31]CellState
	for i, month := range calendar.Months {
		limit := calendar.DaysInMonth(year, month)
		for d := 1; d <= limit; d++ {
			grid[i][d-1] = CellAbsent
		}
		for _, d := range PresentDaysList(att, year, month) {
			grid[i][d-1] = CellPresent
		}
	}
	return grid
}
