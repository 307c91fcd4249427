package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/akash6998s/langarsewa-go/internal/models"
	"github.com/akash6998s/langarsewa-go/internal/repository"
)

// RosterHandler serves the day-of-week incharge roster.
type RosterHandler struct {
	roster *repository.Roster
}

func NewRosterHandler(roster *repository.Roster) *RosterHandler {
	return &RosterHandler{roster: roster}
}

// rosterResponse adds the starred incharge list next to the raw assignments.
func rosterResponse(r *models.DayRoster) gin.H {
	incharge := r.Incharge()
	if incharge == nil {
		incharge = []models.RosterAssignment{}
	}
	return gin.H{
		"day":         r.Day,
		"assignments": r.Assignments,
		"incharge":    incharge,
	}
}

// Week returns all seven day rosters, Monday first.
func (h *RosterHandler) Week(c *gin.Context) {
	week, err := h.roster.Week(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to query roster"})
		return
	}

	days := make([]gin.H, 0, len(week))
	for i := range week {
		days = append(days, rosterResponse(&week[i]))
	}
	c.JSON(http.StatusOK, gin.H{"week": days})
}

// Day returns the roster for one day of the week.
func (h *RosterHandler) Day(c *gin.Context) {
	roster, err := h.roster.Day(c.Request.Context(), c.Param("day"))
	if err != nil {
		h.writeRosterError(c, err)
		return
	}
	c.JSON(http.StatusOK, rosterResponse(roster))
}

type assignRequest struct {
	RollNo int  `json:"roll_no" binding:"required"`
	Star   bool `json:"star"`
}

// Assign adds a member to the day's team. Star marks them as incharge.
func (h *RosterHandler) Assign(c *gin.Context) {
	var req assignRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request", "details": err.Error()})
		return
	}

	roster, err := h.roster.Assign(c.Request.Context(), c.Param("day"), req.RollNo, req.Star)
	if err != nil {
		h.writeRosterError(c, err)
		return
	}
	c.JSON(http.StatusOK, rosterResponse(roster))
}

// Remove drops a member from the day's team.
func (h *RosterHandler) Remove(c *gin.Context) {
	rollNo, ok := rollParam(c)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid roll number"})
		return
	}

	roster, err := h.roster.Remove(c.Request.Context(), c.Param("day"), rollNo)
	if err != nil {
		h.writeRosterError(c, err)
		return
	}
	c.JSON(http.StatusOK, rosterResponse(roster))
}

func (h *RosterHandler) writeRosterError(c *gin.Context, err error) {
	if isBadInput(err) {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update roster"})
}
