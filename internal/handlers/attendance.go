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

// AttendanceHandler serves attendance mutations and the per-month sheet.
type AttendanceHandler struct {
	members *repository.Members
}

func NewAttendanceHandler(members *repository.Members) *AttendanceHandler {
	return &AttendanceHandler{members: members}
}

type attendanceRequest struct {
	Year  int    `json:"year" binding:"required"`
	Month string `json:"month" binding:"required"`
	Days  []int  `json:"days" binding:"required"`
}

// Add merges days into a member's attendance for (year, month).
func (h *AttendanceHandler) Add(c *gin.Context) {
	rollNo, ok := rollParam(c)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid roll number"})
		return
	}

	var req attendanceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request", "details": err.Error()})
		return
	}

	att, err := h.members.AddAttendance(c.Request.Context(), rollNo, req.Year, req.Month, req.Days)
	if err != nil {
		h.writeAttendanceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"roll_no": rollNo, "attendance": att})
}

// Remove deletes days from a member's attendance for (year, month).
func (h *AttendanceHandler) Remove(c *gin.Context) {
	rollNo, ok := rollParam(c)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid roll number"})
		return
	}

	var req attendanceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request", "details": err.Error()})
		return
	}

	att, err := h.members.RemoveAttendance(c.Request.Context(), rollNo, req.Year, req.Month, req.Days)
	if err != nil {
		h.writeAttendanceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"roll_no": rollNo, "attendance": att})
}

// Sheet returns every member's present days and percentage for one month.
func (h *AttendanceHandler) Sheet(c *gin.Context) {
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

	sheet := []models.MonthAttendance{}
	for i := range members {
		m := &members[i]
		sheet = append(sheet, models.MonthAttendance{
			RollNo:      m.RollNo,
			Name:        m.DisplayName(),
			DaysPresent: report.PresentDays(m.Attendance, year, month),
			Percentage:  report.AttendancePercentage(m.Attendance, year, month),
			Days:        report.PresentDaysList(m.Attendance, year, month),
		})
	}

	c.JSON(http.StatusOK, models.AttendanceSheetResponse{
		Year:        yearKey(year),
		Month:       month,
		DaysInMonth: calendar.DaysInMonth(year, month),
		Members:     sheet,
	})
}

func (h *AttendanceHandler) writeAttendanceError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, repository.ErrMemberNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Member not found"})
	case isBadInput(err):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update attendance"})
	}
}
