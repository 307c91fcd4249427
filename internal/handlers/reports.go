package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/akash6998s/langarsewa-go/internal/calendar"
	"github.com/akash6998s/langarsewa-go/internal/models"
	"github.com/akash6998s/langarsewa-go/internal/report"
	"github.com/akash6998s/langarsewa-go/internal/repository"
)

// ReportHandler serves the standings and performance views built on the
// report aggregators.
type ReportHandler struct {
	members *repository.Members
}

func NewReportHandler(members *repository.Members) *ReportHandler {
	return &ReportHandler{members: members}
}

// TeamStandings returns the annual points leaderboard. Weekend attendance
// earns 4 points per day, weekday 2; ties share a rank and the next distinct
// score resumes at its list position.
func (h *ReportHandler) TeamStandings(c *gin.Context) {
	year := yearParam(c)

	members, err := h.members.List(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to query members"})
		return
	}

	standings := report.AnnualStandings(members, year)
	c.JSON(http.StatusOK, models.StandingsResponse{
		Year:       yearKey(year),
		Standings:  standings,
		AllRankOne: report.AllRankOne(standings),
		Total:      len(standings),
	})
}

// MonthlyStandings ranks members by attendance percentage for one month,
// with the same tie-break rule as the points leaderboard.
func (h *ReportHandler) MonthlyStandings(c *gin.Context) {
	year := yearParam(c)
	month := calendar.NormalizeMonth(c.Query("month"))
	if _, ok := calendar.MonthIndex(month); !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid month name"})
		return
	}

	members, err := h.members.List(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to query members"})
		return
	}

	standings := report.MonthlyStandings(members, year, month)
	c.JSON(http.StatusOK, models.StandingsResponse{
		Year:       yearKey(year),
		Month:      month,
		Standings:  standings,
		AllRankOne: report.AllRankOne(standings),
		Total:      len(standings),
	})
}

// MemberPerformance returns one member's annual view: the 12x31 day grid,
// per-month attendance figures, and the year's donation total.
func (h *ReportHandler) MemberPerformance(c *gin.Context) {
	rollNo, ok := rollParam(c)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid roll number"})
		return
	}
	year := yearParam(c)

	member, err := h.members.Get(c.Request.Context(), rollNo)
	if err != nil {
		if errors.Is(err, repository.ErrMemberNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Member not found"})
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to query member"})
		}
		return
	}

	grid := report.YearGrid(member.Attendance, year)
	cells := make([][]string, len(grid))
	for i, row := range grid {
		cells[i] = make([]string, len(row))
		for j, cell := range row {
			cells[i][j] = cell.String()
		}
	}

	summary := make([]models.MonthStat, 0, len(calendar.Months))
	totalDays := 0
	for _, month := range calendar.Months {
		days := report.PresentDays(member.Attendance, year, month)
		totalDays += days
		summary = append(summary, models.MonthStat{
			Month:       month,
			DaysPresent: days,
			Percentage:  report.AttendancePercentage(member.Attendance, year, month),
		})
	}

	c.JSON(http.StatusOK, models.MemberPerformanceResponse{
		RollNo:        member.RollNo,
		Name:          member.DisplayName(),
		Year:          yearKey(year),
		Grid:          cells,
		MonthSummary:  summary,
		TotalDays:     totalDays,
		TotalDonation: report.TotalForYear(member.Donation, year),
	})
}
