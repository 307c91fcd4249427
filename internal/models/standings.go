package models

// Standing represents one member's position in a ranking. Points are used
// for annual standings, Percentage for monthly ones. Ranks follow the
// competition convention: tied members share a rank and the next distinct
// score resumes at its list position, so rank numbers can skip.
type Standing struct {
	Rank        int     `json:"rank"`
	RollNo      int     `json:"roll_no"`
	Name        string  `json:"name"`
	Points      int     `json:"points"`
	DaysPresent int     `json:"days_present"`
	Percentage  float64 `json:"percentage"`
}

// StandingsResponse is the API response for ranking endpoints.
type StandingsResponse struct {
	Year       string     `json:"year"`
	Month      string     `json:"month,omitempty"`
	Standings  []Standing `json:"standings"`
	AllRankOne bool       `json:"all_rank_one"`
	Total      int        `json:"total"`
}

// MonthAttendance is one member's attendance summary for a single month.
type MonthAttendance struct {
	RollNo      int     `json:"roll_no"`
	Name        string  `json:"name"`
	DaysPresent int     `json:"days_present"`
	Percentage  float64 `json:"percentage"`
	Days        []int   `json:"days"`
}

// AttendanceSheetResponse is the per-month sheet across all members.
type AttendanceSheetResponse struct {
	Year        string            `json:"year"`
	Month       string            `json:"month"`
	DaysInMonth int               `json:"days_in_month"`
	Members     []MonthAttendance `json:"members"`
}

// MemberPerformanceResponse is the per-member annual view: the full year
// grid plus attendance and donation totals.
type MemberPerformanceResponse struct {
	RollNo        int         `json:"roll_no"`
	Name          string      `json:"name"`
	Year          string      `json:"year"`
	Grid          [][]string  `json:"grid"`
	MonthSummary  []MonthStat `json:"month_summary"`
	TotalDays     int         `json:"total_days"`
	TotalDonation float64     `json:"total_donation"`
}

// MonthStat is one month's attendance figures inside a performance view.
type MonthStat struct {
	Month       string  `json:"month"`
	DaysPresent int     `json:"days_present"`
	Percentage  float64 `json:"percentage"`
}

// DonationPartitionResponse splits members into paid and unpaid for a period.
type DonationPartitionResponse struct {
	Year   string               `json:"year"`
	Month  string               `json:"month"`
	Filter string               `json:"filter"`
	Paid   []MemberListResponse `json:"paid"`
	Unpaid []MemberListResponse `json:"unpaid"`
}
