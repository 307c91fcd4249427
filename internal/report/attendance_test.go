package report

import (
	"testing"

	"github.com/akash6998s/langarsewa-go/internal/models"
)

func TestAttendancePercentage(t *testing.T) {
	att := models.AttendanceMap{
		"2025": {"July": []int{1, 2, 3}},
	}

	if got := AttendancePercentage(att, 2025, "July"); got != 9.68 {
		t.Errorf("AttendancePercentage = %v, want 9.68", got)
	}
	if got := AttendancePercentage(models.AttendanceMap{}, 2025, "July"); got != 0 {
		t.Errorf("empty map percentage = %v, want 0", got)
	}
	if got := AttendancePercentage(att, 2025, "Smarch"); got != 0 {
		t.Errorf("unknown month percentage = %v, want 0", got)
	}
}

func TestPresentDaysDefaults(t *testing.T) {
	att := models.AttendanceMap{
		"2025": {"July": []int{3, 1, 2}},
	}

	cases := []struct {
		year  int
		month string
		want  int
	}{
		{2025, "July", 3},
		{2025, "july", 3},
		{2025, "August", 0},
		{2024, "July", 0},
	}
	for _, tc := range cases {
		if got := PresentDays(att, tc.year, tc.month); got != tc.want {
			t.Errorf("PresentDays(%d, %q) = %d, want %d", tc.year, tc.month, got, tc.want)
		}
	}
}

func TestPresentDaysDeduplicates(t *testing.T) {
	att := models.AttendanceMap{
		"2025": {"July": []int{5, 5, 5}},
	}
	if got := PresentDays(att, 2025, "July"); got != 1 {
		t.Errorf("duplicate days counted %d times, want 1", got)
	}
	// A duplicated full month must not report over 100%.
	full := []int{}
	for d := 1; d <= 31; d++ {
		full = append(full, d, d)
	}
	att["2025"]["July"] = full
	if got := AttendancePercentage(att, 2025, "July"); got != 100 {
		t.Errorf("duplicated full month = %v%%, want 100", got)
	}
}

func TestPresentDaysDropsOutOfRange(t *testing.T) {
	att := models.AttendanceMap{
		"2025": {"February": []int{28, 29, 30, 0, -1}},
	}
	got := PresentDaysList(att, 2025, "February")
	if len(got) != 1 || got[0] != 28 {
		t.Errorf("PresentDaysList = %v, want [28]", got)
	}
}

func TestYearGrid(t *testing.T) {
	att := models.AttendanceMap{
		"2025": {"July": []int{1, 31}},
	}
	grid := YearGrid(att, 2025)

	july := grid[6]
	if july[0] != CellPresent || july[30] != CellPresent {
		t.Error("present days not marked in July row")
	}
	if july[1] != CellAbsent {
		t.Error("July 2 should be absent")
	}

	feb := grid[1]
	if feb[27] != CellAbsent {
		t.Error("February 28 should be absent")
	}
	if feb[28] != CellNotApplicable || feb[30] != CellNotApplicable {
		t.Error("slots past February's end should be not-applicable")
	}
}

func TestCellStateString(t *testing.T) {
	if CellPresent.String() != "present" || CellAbsent.String() != "absent" || CellNotApplicable.String() != "na" {
		t.Error("unexpected cell state names")
	}
}
