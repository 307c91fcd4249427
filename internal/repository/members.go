package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sort"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/akash6998s/langarsewa-go/internal/cache"
	"github.com/akash6998s/langarsewa-go/internal/calendar"
	"github.com/akash6998s/langarsewa-go/internal/models"
)

var (
	ErrMemberNotFound = errors.New("member not found")
	ErrInvalidMonth   = errors.New("invalid month name")
	ErrInvalidDay     = errors.New("day outside month range")
)

// Members persists member records. Attendance and donation live as JSONB
// documents on the row; mutations are read-modify-write under a row lock.
type Members struct {
	db    *pgxpool.Pool
	cache *cache.Members
}

// NewMembers creates the repository. The cache may be nil.
func NewMembers(db *pgxpool.Pool, cache *cache.Members) *Members {
	return &Members{db: db, cache: cache}
}

const memberColumns = `roll_no, name, last_name, phone_no, email, address,
	is_admin, is_active, attendance, donation, created_at, updated_at`

func scanMember(row pgx.Row) (*models.Member, error) {
	var m models.Member
	var attendance, donation []byte
	err := row.Scan(
		&m.RollNo, &m.Name, &m.LastName, &m.PhoneNo, &m.Email, &m.Address,
		&m.IsAdmin, &m.IsActive, &attendance, &donation, &m.CreatedAt, &m.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrMemberNotFound
		}
		return nil, err
	}
	if err := json.Unmarshal(attendance, &m.Attendance); err != nil {
		return nil, fmt.Errorf("failed to decode attendance for roll %d: %w", m.RollNo, err)
	}
	if err := json.Unmarshal(donation, &m.Donation); err != nil {
		return nil, fmt.Errorf("failed to decode donation for roll %d: %w", m.RollNo, err)
	}
	return &m, nil
}

// List returns all members ordered by roll number, serving from the snapshot
// cache when it is fresh.
func (r *Members) List(ctx context.Context) ([]models.Member, error) {
	if members, ok := r.cache.Snapshot(ctx); ok {
		return members, nil
	}

	rows, err := r.db.Query(ctx, `SELECT `+memberColumns+` FROM members ORDER BY roll_no`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	members := []models.Member{}
	for rows.Next() {
		m, err := scanMember(rows)
		if err != nil {
			return nil, err
		}
		members = append(members, *m)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	r.cache.SetSnapshot(ctx, members)
	return members, nil
}

// Get returns a single member by roll number.
func (r *Members) Get(ctx context.Context, rollNo int) (*models.Member, error) {
	row := r.db.QueryRow(ctx, `SELECT `+memberColumns+` FROM members WHERE roll_no = $1`, rollNo)
	return scanMember(row)
}

// Create inserts a new member with the next sequential roll number (max+1).
func (r *Members) Create(ctx context.Context, profile models.MemberProfile) (*models.Member, error) {
	row := r.db.QueryRow(ctx, `
		INSERT INTO members (roll_no, name, last_name, phone_no, email, address)
		SELECT COALESCE(MAX(roll_no), 0) + 1, $1, $2, $3, $4, $5 FROM members
		RETURNING `+memberColumns,
		profile.Name, profile.LastName, profile.PhoneNo, profile.Email, profile.Address,
	)
	m, err := scanMember(row)
	if err != nil {
		return nil, err
	}
	r.cache.Invalidate(ctx)
	return m, nil
}

// UpdateProfile replaces the member's profile fields.
func (r *Members) UpdateProfile(ctx context.Context, rollNo int, profile models.MemberProfile) error {
	tag, err := r.db.Exec(ctx, `
		UPDATE members
		SET name = $2, last_name = $3, phone_no = $4, email = $5, address = $6, updated_at = NOW()
		WHERE roll_no = $1`,
		rollNo, profile.Name, profile.LastName, profile.PhoneNo, profile.Email, profile.Address,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrMemberNotFound
	}
	r.cache.Invalidate(ctx)
	return nil
}

// ClearProfile blanks the personal-detail fields and deactivates the member.
// The roll-number row stays behind as a placeholder; members are never
// hard-deleted.
func (r *Members) ClearProfile(ctx context.Context, rollNo int) error {
	tag, err := r.db.Exec(ctx, `
		UPDATE members
		SET name = NULL, last_name = NULL, phone_no = NULL, email = NULL,
		    address = NULL, password_hash = NULL, is_active = false, updated_at = NOW()
		WHERE roll_no = $1`,
		rollNo,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrMemberNotFound
	}
	r.cache.Invalidate(ctx)
	return nil
}

// Credentials returns the stored password hash and admin flag for login.
func (r *Members) Credentials(ctx context.Context, rollNo int) (hash *string, isAdmin bool, err error) {
	err = r.db.QueryRow(ctx, `
		SELECT password_hash, is_admin FROM members
		WHERE roll_no = $1 AND is_active = true`,
		rollNo,
	).Scan(&hash, &isAdmin)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, false, ErrMemberNotFound
	}
	return hash, isAdmin, err
}

// SetPassword stores a new bcrypt hash for the member.
func (r *Members) SetPassword(ctx context.Context, rollNo int, hash string) error {
	tag, err := r.db.Exec(ctx,
		`UPDATE members SET password_hash = $2, updated_at = NOW() WHERE roll_no = $1`,
		rollNo, hash,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrMemberNotFound
	}
	return nil
}

// AddAttendance merges the given days into (year, month) for the member,
// de-duplicated and sorted. Days outside the month's range are rejected.
func (r *Members) AddAttendance(ctx context.Context, rollNo, year int, month string, days []int) (models.AttendanceMap, error) {
	month, err := monthBounds(year, month, days)
	if err != nil {
		return nil, err
	}

	return r.mutateAttendance(ctx, rollNo, func(att models.AttendanceMap) {
		yearKey := fmt.Sprintf("%d", year)
		if att[yearKey] == nil {
			att[yearKey] = map[string][]int{}
		}
		merged := append(att[yearKey][month], days...)
		att[yearKey][month] = dedupeDays(merged)
	})
}

// RemoveAttendance deletes the given days from (year, month). An emptied
// month key is removed entirely.
func (r *Members) RemoveAttendance(ctx context.Context, rollNo, year int, month string, days []int) (models.AttendanceMap, error) {
	month = calendar.NormalizeMonth(month)
	if _, ok := calendar.MonthIndex(month); !ok {
		return nil, ErrInvalidMonth
	}

	drop := make(map[int]bool, len(days))
	for _, d := range days {
		drop[d] = true
	}

	return r.mutateAttendance(ctx, rollNo, func(att models.AttendanceMap) {
		yearKey := fmt.Sprintf("%d", year)
		var kept []int
		for _, d := range att[yearKey][month] {
			if !drop[d] {
				kept = append(kept, d)
			}
		}
		if len(kept) == 0 {
			delete(att[yearKey], month)
		} else {
			att[yearKey][month] = dedupeDays(kept)
		}
	})
}

// SetDonation records the monthly total for (year, month).
func (r *Members) SetDonation(ctx context.Context, rollNo, year int, month string, amount float64) (models.DonationMap, error) {
	month = calendar.NormalizeMonth(month)
	if _, ok := calendar.MonthIndex(month); !ok {
		return nil, ErrInvalidMonth
	}

	return r.mutateDonation(ctx, rollNo, func(don models.DonationMap) {
		yearKey := fmt.Sprintf("%d", year)
		if don[yearKey] == nil {
			don[yearKey] = map[string]models.Amount{}
		}
		don[yearKey][month] = models.NewAmount(amount)
	})
}

// RemoveDonation deletes the monthly record for (year, month).
func (r *Members) RemoveDonation(ctx context.Context, rollNo, year int, month string) (models.DonationMap, error) {
	month = calendar.NormalizeMonth(month)
	if _, ok := calendar.MonthIndex(month); !ok {
		return nil, ErrInvalidMonth
	}

	return r.mutateDonation(ctx, rollNo, func(don models.DonationMap) {
		yearKey := fmt.Sprintf("%d", year)
		delete(don[yearKey], month)
		if len(don[yearKey]) == 0 {
			delete(don, yearKey)
		}
	})
}

func (r *Members) mutateAttendance(ctx context.Context, rollNo int, mutate func(models.AttendanceMap)) (models.AttendanceMap, error) {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback(ctx)

	var raw []byte
	err = tx.QueryRow(ctx, `SELECT attendance FROM members WHERE roll_no = $1 FOR UPDATE`, rollNo).Scan(&raw)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrMemberNotFound
	}
	if err != nil {
		return nil, err
	}

	att := models.AttendanceMap{}
	if err := json.Unmarshal(raw, &att); err != nil {
		return nil, fmt.Errorf("failed to decode attendance for roll %d: %w", rollNo, err)
	}

	mutate(att)

	updated, err := json.Marshal(att)
	if err != nil {
		return nil, err
	}
	if _, err := tx.Exec(ctx,
		`UPDATE members SET attendance = $2, updated_at = NOW() WHERE roll_no = $1`,
		rollNo, updated,
	); err != nil {
		return nil, err
	}
	if err := tx.Commit(ctx); err != nil {
		return nil, err
	}

	r.cache.Invalidate(ctx)
	return att, nil
}

func (r *Members) mutateDonation(ctx context.Context, rollNo int, mutate func(models.DonationMap)) (models.DonationMap, error) {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback(ctx)

	var raw []byte
	err = tx.QueryRow(ctx, `SELECT donation FROM members WHERE roll_no = $1 FOR UPDATE`, rollNo).Scan(&raw)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrMemberNotFound
	}
	if err != nil {
		return nil, err
	}

	don := models.DonationMap{}
	if err := json.Unmarshal(raw, &don); err != nil {
		return nil, fmt.Errorf("failed to decode donation for roll %d: %w", rollNo, err)
	}

	mutate(don)

	updated, err := json.Marshal(don)
	if err != nil {
		return nil, err
	}
	if _, err := tx.Exec(ctx,
		`UPDATE members SET donation = $2, updated_at = NOW() WHERE roll_no = $1`,
		rollNo, updated,
	); err != nil {
		return nil, err
	}
	if err := tx.Commit(ctx); err != nil {
		return nil, err
	}

	r.cache.Invalidate(ctx)
	return don, nil
}

func monthBounds(year int, month string, days []int) (string, error) {
	month = calendar.NormalizeMonth(month)
	if _, ok := calendar.MonthIndex(month); !ok {
		return "", ErrInvalidMonth
	}
	limit := calendar.DaysInMonth(year, month)
	for _, d := range days {
		if d < 1 || d > limit {
			return "", fmt.Errorf("%w: %d not in 1..%d for %s %d", ErrInvalidDay, d, limit, month, year)
		}
	}
	return month, nil
}

func dedupeDays(days []int) []int {
	seen := make(map[int]bool, len(days))
	var out []int
	for _, d := range days {
		if !seen[d] {
			seen[d] = true
			out = append(out, d)
		}
	}
	sort.Ints(out)
	return out
}
