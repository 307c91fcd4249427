package report

import (
	"sort"

	"github.com/akash6998s/langarsewa-go/internal/calendar"
	"github.com/akash6998s/langarsewa-go/internal/models"
)

// Point values per recorded day. Weekend turnout is weighted double.
const (
	weekdayPoints = 2
	weekendPoints = 4
)

// AnnualPoints computes a member's point total and days-present count for a
// year. Every valid recorded day counts toward days present; its point value
// depends on which weekday the reconstructed calendar date falls on.
func AnnualPoints(att models.AttendanceMap, year int) (points, daysPresent int) {
	for _, month := range calendar.Months {
		for _, day := range PresentDaysList(att, year, month) {
			daysPresent++
			if calendar.IsWeekend(year, month, day) {
				points += weekendPoints
			} else {
				points += weekdayPoints
			}
		}
	}
	return points, daysPresent
}

// AnnualStandings ranks members by annual points, descending. The sort is
// stable so tied members keep their input order. Ranks use the competition
// convention: tied members share the rank of the first member in the tie
// group, and the next distinct score resumes numbering at its list position,
// so scores [10,10,5] rank [1,1,3].
func AnnualStandings(members []models.Member, year int) []models.Standing {
	standings := make([]models.Standing, 0, len(members))
	for _, m := range members {
		points, days := AnnualPoints(m.Attendance, year)
		standings = append(standings, models.Standing{
			RollNo:      m.RollNo,
			Name:        m.DisplayName(),
			Points:      points,
			DaysPresent: days,
		})
	}

	sort.SliceStable(standings, func(i, j int) bool {
		return standings[i].Points > standings[j].Points
	})
	for i := range standings {
		if i > 0 && standings[i].Points == standings[i-1].Points {
			standings[i].Rank = standings[i-1].Rank
		} else {
			standings[i].Rank = i + 1
		}
	}
	return standings
}

// MonthlyStandings ranks members by attendance percentage for one month,
// using the same tie-break rule as AnnualStandings.
func MonthlyStandings(members []models.Member, year int, month string) []models.Standing {
	standings := make([]models.Standing, 0, len(members))
	for _, m := range members {
		standings = append(standings, models.Standing{
			RollNo:      m.RollNo,
			Name:        m.DisplayName(),
			DaysPresent: PresentDays(m.Attendance, year, month),
			Percentage:  AttendancePercentage(m.Attendance, year, month),
		})
	}

	sort.SliceStable(standings, func(i, j int) bool {
		return standings[i].Percentage > standings[j].Percentage
	})
	for i := range standings {
		if i > 0 && standings[i].Percentage == standings[i-1].Percentage {
			standings[i].Rank = standings[i-1].Rank
		} else {
			standings[i].Rank = i + 1
		}
	}
	return standings
}

// AllRankOne reports whether every standing holds rank 1, in which case the
// presentation layer suppresses the winner highlight.
func AllRankOne(standings []models.Standing) bool {
	if len(standings) == 0 {
		return false
	}
	for _, s := range standings {
		if s.Rank != 1 {
			return false
		}
	}
	return true
}
