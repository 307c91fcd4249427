package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/akash6998s/langarsewa-go/internal/calendar"
	"github.com/akash6998s/langarsewa-go/internal/models"
)

var ErrExpenseNotFound = errors.New("expense entry not found")

// Expenses persists the single shared expense ledger document.
type Expenses struct {
	db *pgxpool.Pool
}

// NewExpenses creates the repository.
func NewExpenses(db *pgxpool.Pool) *Expenses {
	return &Expenses{db: db}
}

// Ledger returns the full shared ledger.
func (r *Expenses) Ledger(ctx context.Context) (models.ExpenseLedger, error) {
	var raw []byte
	if err := r.db.QueryRow(ctx, `SELECT ledger FROM expenses WHERE id = 1`).Scan(&raw); err != nil {
		return nil, err
	}
	ledger := models.ExpenseLedger{}
	if err := json.Unmarshal(raw, &ledger); err != nil {
		return nil, fmt.Errorf("failed to decode expense ledger: %w", err)
	}
	return ledger, nil
}

// AddEntry appends an expense line under (year, month) and returns it.
func (r *Expenses) AddEntry(ctx context.Context, year int, month string, amount float64, description string) (*models.ExpenseEntry, error) {
	month = calendar.NormalizeMonth(month)
	if _, ok := calendar.MonthIndex(month); !ok {
		return nil, ErrInvalidMonth
	}

	entry := models.ExpenseEntry{
		ID:          uuid.New(),
		Amount:      amount,
		Description: description,
	}

	err := r.mutate(ctx, func(ledger models.ExpenseLedger) error {
		yearKey := fmt.Sprintf("%d", year)
		if ledger[yearKey] == nil {
			ledger[yearKey] = map[string][]models.ExpenseEntry{}
		}
		ledger[yearKey][month] = append(ledger[yearKey][month], entry)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &entry, nil
}

// DeleteEntry removes an expense line by id.
func (r *Expenses) DeleteEntry(ctx context.Context, year int, month string, id uuid.UUID) error {
	month = calendar.NormalizeMonth(month)
	if _, ok := calendar.MonthIndex(month); !ok {
		return ErrInvalidMonth
	}

	return r.mutate(ctx, func(ledger models.ExpenseLedger) error {
		yearKey := fmt.Sprintf("%d", year)
		entries := ledger[yearKey][month]
		for i, e := range entries {
			if e.ID == id {
				ledger[yearKey][month] = append(entries[:i], entries[i+1:]...)
				if len(ledger[yearKey][month]) == 0 {
					delete(ledger[yearKey], month)
				}
				return nil
			}
		}
		return ErrExpenseNotFound
	})
}

func (r *Expenses) mutate(ctx context.Context, mutate func(models.ExpenseLedger) error) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	var raw []byte
	if err := tx.QueryRow(ctx, `SELECT ledger FROM expenses WHERE id = 1 FOR UPDATE`).Scan(&raw); err != nil {
		return err
	}
	ledger := models.ExpenseLedger{}
	if err := json.Unmarshal(raw, &ledger); err != nil {
		return fmt.Errorf("failed to decode expense ledger: %w", err)
	}

	if err := mutate(ledger); err != nil {
		return err
	}

	updated, err := json.Marshal(ledger)
	if err != nil {
		return err
	}
	if _, err := tx.Exec(ctx, `UPDATE expenses SET ledger = $1 WHERE id = 1`, updated); err != nil {
		return err
	}
	return tx.Commit(ctx)
}
