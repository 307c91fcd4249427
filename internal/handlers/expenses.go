package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/akash6998s/langarsewa-go/internal/repository"
)

// ExpenseHandler serves the shared expense ledger.
type ExpenseHandler struct {
	expenses *repository.Expenses
}

func NewExpenseHandler(expenses *repository.Expenses) *ExpenseHandler {
	return &ExpenseHandler{expenses: expenses}
}

// Ledger returns the full ledger with the per-year total for the requested
// year.
func (h *ExpenseHandler) Ledger(c *gin.Context) {
	year := yearParam(c)

	ledger, err := h.expenses.Ledger(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to query expenses"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"ledger":     ledger,
		"year":       yearKey(year),
		"year_total": ledger.TotalForYear(yearKey(year)),
	})
}

type expenseRequest struct {
	Year        int     `json:"year" binding:"required"`
	Month       string  `json:"month" binding:"required"`
	Amount      float64 `json:"amount" binding:"required"`
	Description string  `json:"description"`
}

// Add appends an expense entry under (year, month).
func (h *ExpenseHandler) Add(c *gin.Context) {
	var req expenseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request", "details": err.Error()})
		return
	}
	if req.Amount <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Amount must be positive"})
		return
	}

	entry, err := h.expenses.AddEntry(c.Request.Context(), req.Year, req.Month, req.Amount, req.Description)
	if err != nil {
		if isBadInput(err) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to add expense"})
		}
		return
	}

	c.JSON(http.StatusCreated, entry)
}

type expenseDeleteRequest struct {
	Year  int    `json:"year" binding:"required"`
	Month string `json:"month" binding:"required"`
}

// Delete removes an expense entry by id.
func (h *ExpenseHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid expense ID format"})
		return
	}

	var req expenseDeleteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request", "details": err.Error()})
		return
	}

	if err := h.expenses.DeleteEntry(c.Request.Context(), req.Year, req.Month, id); err != nil {
		switch {
		case errors.Is(err, repository.ErrExpenseNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Expense entry not found"})
		case isBadInput(err):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete expense"})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"id": id, "deleted": true})
}
