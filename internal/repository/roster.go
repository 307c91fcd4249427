package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/akash6998s/langarsewa-go/internal/calendar"
	"github.com/akash6998s/langarsewa-go/internal/models"
)

var ErrInvalidWeekday = errors.New("invalid weekday name")

// Roster persists the day-of-week incharge assignments.
type Roster struct {
	db *pgxpool.Pool
}

// NewRoster creates the repository.
func NewRoster(db *pgxpool.Pool) *Roster {
	return &Roster{db: db}
}

// Day returns the roster for one day of the week. A day with no row yet is
// an empty roster, not an error.
func (r *Roster) Day(ctx context.Context, day string) (*models.DayRoster, error) {
	day, ok := calendar.NormalizeWeekday(day)
	if !ok {
		return nil, ErrInvalidWeekday
	}

	var raw []byte
	err := r.db.QueryRow(ctx, `SELECT assignments FROM roster WHERE day = $1`, day).Scan(&raw)
	if errors.Is(err, pgx.ErrNoRows) {
		return &models.DayRoster{Day: day, Assignments: []models.RosterAssignment{}}, nil
	}
	if err != nil {
		return nil, err
	}

	roster := models.DayRoster{Day: day, Assignments: []models.RosterAssignment{}}
	if err := json.Unmarshal(raw, &roster.Assignments); err != nil {
		return nil, fmt.Errorf("failed to decode roster for %s: %w", day, err)
	}
	return &roster, nil
}

// Week returns rosters for all seven days, Monday first.
func (r *Roster) Week(ctx context.Context) ([]models.DayRoster, error) {
	week := make([]models.DayRoster, 0, len(calendar.Weekdays))
	for _, day := range calendar.Weekdays {
		roster, err := r.Day(ctx, day)
		if err != nil {
			return nil, err
		}
		week = append(week, *roster)
	}
	return week, nil
}

// Assign adds or updates a member's assignment for the day. Assigning an
// already-rostered member updates the star flag in place.
func (r *Roster) Assign(ctx context.Context, day string, rollNo int, star bool) (*models.DayRoster, error) {
	return r.mutate(ctx, day, func(assignments []models.RosterAssignment) []models.RosterAssignment {
		for i, a := range assignments {
			if a.RollNo == rollNo {
				assignments[i].Star = star
				return assignments
			}
		}
		return append(assignments, models.RosterAssignment{RollNo: rollNo, Star: star})
	})
}

// Remove drops a member from the day's roster.
func (r *Roster) Remove(ctx context.Context, day string, rollNo int) (*models.DayRoster, error) {
	return r.mutate(ctx, day, func(assignments []models.RosterAssignment) []models.RosterAssignment {
		kept := assignments[:0]
		for _, a := range assignments {
			if a.RollNo != rollNo {
				kept = append(kept, a)
			}
		}
		return kept
	})
}

func (r *Roster) mutate(ctx context.Context, day string, mutate func([]models.RosterAssignment) []models.RosterAssignment) (*models.DayRoster, error) {
	day, ok := calendar.NormalizeWeekday(day)
	if !ok {
		return nil, ErrInvalidWeekday
	}

	roster, err := r.Day(ctx, day)
	if err != nil {
		return nil, err
	}
	roster.Assignments = mutate(roster.Assignments)
	if roster.Assignments == nil {
		roster.Assignments = []models.RosterAssignment{}
	}

	raw, err := json.Marshal(roster.Assignments)
	if err != nil {
		return nil, err
	}
	if _, err := r.db.Exec(ctx, `
		INSERT INTO roster (day, assignments) VALUES ($1, $2)
		ON CONFLICT (day) DO UPDATE SET assignments = EXCLUDED.assignments`,
		day, raw,
	); err != nil {
		return nil, err
	}
	return roster, nil
}
