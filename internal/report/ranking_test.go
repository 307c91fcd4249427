package report

import (
	"testing"

	"github.com/akash6998s/langarsewa-go/internal/models"
)

func memberWithDays(roll int, days ...int) models.Member {
	return models.Member{
		RollNo: roll,
		Attendance: models.AttendanceMap{
			"2025": {"July": days},
		},
	}
}

func TestAnnualPointsWeekendWeighting(t *testing.T) {
	// 2025-07-05 is a Saturday (4 points), 2025-07-07 a Monday (2 points).
	att := models.AttendanceMap{
		"2025": {"July": []int{5, 7}},
	}
	points, days := AnnualPoints(att, 2025)
	if points != 6 {
		t.Errorf("points = %d, want 6", points)
	}
	if days != 2 {
		t.Errorf("days = %d, want 2", days)
	}
}

func TestAnnualPointsIgnoresInvalidDays(t *testing.T) {
	att := models.AttendanceMap{
		"2025": {"February": []int{28, 29}},
	}
	_, days := AnnualPoints(att, 2025)
	if days != 1 {
		t.Errorf("days = %d, want 1 (Feb 29 invalid in 2025)", days)
	}
}

func TestCompetitionRanking(t *testing.T) {
	// Weekdays only: points are 2 per day, so day counts 5/5/2 score 10/10/4.
	members := []models.Member{
		memberWithDays(1, 7, 8, 9, 10, 11),
		memberWithDays(2, 14, 15, 16, 17, 18),
		memberWithDays(3, 21, 22),
	}

	standings := AnnualStandings(members, 2025)
	wantRanks := []int{1, 1, 3}
	for i, want := range wantRanks {
		if standings[i].Rank != want {
			t.Errorf("standings[%d].Rank = %d, want %d", i, standings[i].Rank, want)
		}
	}
	// Stable sort keeps the tied members in input order.
	if standings[0].RollNo != 1 || standings[1].RollNo != 2 {
		t.Errorf("tied members reordered: %d, %d", standings[0].RollNo, standings[1].RollNo)
	}
}

func TestAllRankOne(t *testing.T) {
	members := []models.Member{
		memberWithDays(1, 7),
		memberWithDays(2, 8),
		memberWithDays(3, 9),
	}
	standings := AnnualStandings(members, 2025)
	if !AllRankOne(standings) {
		t.Error("identical scores should all rank 1")
	}

	if AllRankOne(nil) {
		t.Error("empty standings must not report all-rank-one")
	}

	members = append(members, memberWithDays(4, 5, 6))
	if AllRankOne(AnnualStandings(members, 2025)) {
		t.Error("separated scores should not report all-rank-one")
	}
}

func TestMonthlyStandings(t *testing.T) {
	members := []models.Member{
		memberWithDays(1, 1, 2, 3),
		memberWithDays(2, 1, 2, 3),
		memberWithDays(3, 1),
	}

	standings := MonthlyStandings(members, 2025, "July")
	if standings[0].Percentage != 9.68 {
		t.Errorf("top percentage = %v, want 9.68", standings[0].Percentage)
	}
	wantRanks := []int{1, 1, 3}
	for i, want := range wantRanks {
		if standings[i].Rank != want {
			t.Errorf("standings[%d].Rank = %d, want %d", i, standings[i].Rank, want)
		}
	}
}

func TestMonthlyStandingsEmptyMonth(t *testing.T) {
	members := []models.Member{memberWithDays(1)}
	standings := MonthlyStandings(members, 2025, "August")
	if len(standings) != 1 || standings[0].Percentage != 0 || standings[0].Rank != 1 {
		t.Errorf("unexpected standings for empty month: %+v", standings)
	}
}
