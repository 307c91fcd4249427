package calendar

import "testing"

func TestDaysInMonth(t *testing.T) {
	cases := []struct {
		year  int
		month string
		want  int
	}{
		{2024, "February", 29},
		{2025, "February", 28},
		{2000, "February", 29},
		{1900, "February", 28},
		{2025, "July", 31},
		{2025, "april", 30},
		{2025, "DECEMBER", 31},
		{2025, "Smarch", 0},
		{2025, "", 0},
	}
	for _, tc := range cases {
		if got := DaysInMonth(tc.year, tc.month); got != tc.want {
			t.Errorf("DaysInMonth(%d, %q) = %d, want %d", tc.year, tc.month, got, tc.want)
		}
	}
}

func TestNormalizeMonthIdempotent(t *testing.T) {
	once := NormalizeMonth("JULY")
	if once != "July" {
		t.Fatalf("NormalizeMonth(JULY) = %q, want July", once)
	}
	if twice := NormalizeMonth(once); twice != once {
		t.Errorf("NormalizeMonth not idempotent: %q != %q", twice, once)
	}
}

func TestMonthIndex(t *testing.T) {
	if m, ok := MonthIndex("january"); !ok || int(m) != 1 {
		t.Errorf("MonthIndex(january) = %v, %v", m, ok)
	}
	if _, ok := MonthIndex("notamonth"); ok {
		t.Error("MonthIndex accepted an unknown month")
	}
}

func TestIsWeekend(t *testing.T) {
	// 2025-07-05 is a Saturday, 2025-07-06 a Sunday, 2025-07-07 a Monday.
	if !IsWeekend(2025, "July", 5) {
		t.Error("2025-07-05 should be a weekend")
	}
	if !IsWeekend(2025, "July", 6) {
		t.Error("2025-07-06 should be a weekend")
	}
	if IsWeekend(2025, "July", 7) {
		t.Error("2025-07-07 should not be a weekend")
	}
	if IsWeekend(2025, "February", 30) {
		t.Error("invalid date should not be a weekend")
	}
}

func TestNormalizeWeekday(t *testing.T) {
	if day, ok := NormalizeWeekday("monday"); !ok || day != "Monday" {
		t.Errorf("NormalizeWeekday(monday) = %q, %v", day, ok)
	}
	if _, ok := NormalizeWeekday("Funday"); ok {
		t.Error("NormalizeWeekday accepted an unknown day")
	}
}
