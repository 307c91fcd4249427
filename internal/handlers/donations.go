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

// DonationHandler serves donation mutations, the paid/unpaid partition, and
// the finance summary.
type DonationHandler struct {
	members  *repository.Members
	expenses *repository.Expenses
}

func NewDonationHandler(members *repository.Members, expenses *repository.Expenses) *DonationHandler {
	return &DonationHandler{members: members, expenses: expenses}
}

type donationRequest struct {
	Year   int     `json:"year" binding:"required"`
	Month  string  `json:"month" binding:"required"`
	Amount float64 `json:"amount"`
}

// Set records a member's monthly donation total.
func (h *DonationHandler) Set(c *gin.Context) {
	rollNo, ok := rollParam(c)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid roll number"})
		return
	}

	var req donationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request", "details": err.Error()})
		return
	}
	if req.Amount < 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Amount must not be negative"})
		return
	}

	don, err := h.members.SetDonation(c.Request.Context(), rollNo, req.Year, req.Month, req.Amount)
	if err != nil {
		h.writeDonationError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"roll_no": rollNo, "donation": don})
}

// Remove deletes a member's monthly donation record.
func (h *DonationHandler) Remove(c *gin.Context) {
	rollNo, ok := rollParam(c)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid roll number"})
		return
	}

	var req donationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request", "details": err.Error()})
		return
	}

	don, err := h.members.RemoveDonation(c.Request.Context(), rollNo, req.Year, req.Month)
	if err != nil {
		h.writeDonationError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"roll_no": rollNo, "donation": don})
}

// Partition splits members into paid and unpaid for (year, month). The
// filter query parameter cycles all → paid → unpaid → all; the response
// echoes the applied filter and the next one in the cycle.
func (h *DonationHandler) Partition(c *gin.Context) {
	year := yearParam(c)
	month := calendar.NormalizeMonth(c.Query("month"))
	if _, ok := calendar.MonthIndex(month); !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid month name"})
		return
	}

	filter := report.PaidFilter(c.DefaultQuery("filter", string(report.FilterAll)))
	switch filter {
	case report.FilterAll, report.FilterPaid, report.FilterUnpaid:
	default:
		filter = report.FilterAll
	}

	members, err := h.members.List(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to query members"})
		return
	}

	paid, unpaid := report.PartitionByPaid(members, year, month)

	resp := models.DonationPartitionResponse{
		Year:   yearKey(year),
		Month:  month,
		Filter: string(filter),
		Paid:   []models.MemberListResponse{},
		Unpaid: []models.MemberListResponse{},
	}
	if filter != report.FilterUnpaid {
		for i := range paid {
			resp.Paid = append(resp.Paid, paid[i].ToListResponse())
		}
	}
	if filter != report.FilterPaid {
		for i := range unpaid {
			resp.Unpaid = append(resp.Unpaid, unpaid[i].ToListResponse())
		}
	}

	c.JSON(http.StatusOK, gin.H{
		"partition":   resp,
		"next_filter": report.NextPaidFilter(filter),
	})
}

// FinanceSummary reports total donations against total expenses for a year.
func (h *DonationHandler) FinanceSummary(c *gin.Context) {
	year := yearParam(c)

	members, err := h.members.List(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to query members"})
		return
	}

	var donations float64
	for i := range members {
		donations += report.TotalForYear(members[i].Donation, year)
	}

	ledger, err := h.expenses.Ledger(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to query expenses"})
		return
	}
	spent := ledger.TotalForYear(yearKey(year))

	c.JSON(http.StatusOK, models.FinanceSummary{
		Year:           yearKey(year),
		TotalDonations: donations,
		TotalExpenses:  spent,
		Balance:        donations - spent,
	})
}

func (h *DonationHandler) writeDonationError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, repository.ErrMemberNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Member not found"})
	case isBadInput(err):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update donation"})
	}
}
