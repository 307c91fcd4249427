package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/akash6998s/langarsewa-go/internal/models"
)

var ErrPostNotFound = errors.New("post not found")

// Posts persists notice-board posts. Likes and comments are JSONB documents
// on the post row.
type Posts struct {
	db *pgxpool.Pool
}

// NewPosts creates the repository.
func NewPosts(db *pgxpool.Pool) *Posts {
	return &Posts{db: db}
}

const postColumns = `id, roll_no, name, last_name, image_link, text_content, upload_time, likes, comments`

func scanPost(row pgx.Row) (*models.Post, error) {
	var p models.Post
	var likes, comments []byte
	err := row.Scan(
		&p.ID, &p.RollNo, &p.Name, &p.LastName, &p.ImageLink,
		&p.TextContent, &p.UploadTime, &likes, &comments,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrPostNotFound
		}
		return nil, err
	}
	if err := json.Unmarshal(likes, &p.Likes); err != nil {
		return nil, fmt.Errorf("failed to decode likes for post %s: %w", p.ID, err)
	}
	if err := json.Unmarshal(comments, &p.Comments); err != nil {
		return nil, fmt.Errorf("failed to decode comments for post %s: %w", p.ID, err)
	}
	return &p, nil
}

// Feed removes posts past their TTL and returns the survivors, newest first.
// Expiry is pull-based: it happens on fetch, not in a background job.
func (r *Posts) Feed(ctx context.Context, now time.Time) ([]models.Post, error) {
	cutoff := now.Add(-models.PostTTL)
	if _, err := r.db.Exec(ctx, `DELETE FROM posts WHERE upload_time < $1`, cutoff); err != nil {
		return nil, err
	}

	rows, err := r.db.Query(ctx, `SELECT `+postColumns+` FROM posts ORDER BY upload_time DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	posts := []models.Post{}
	for rows.Next() {
		p, err := scanPost(rows)
		if err != nil {
			return nil, err
		}
		// The delete and the select are separate statements, so re-check
		// against the same instant the cutoff was computed from.
		if p.Expired(now) {
			continue
		}
		posts = append(posts, *p)
	}
	return posts, rows.Err()
}

// Create inserts a new post for the member.
func (r *Posts) Create(ctx context.Context, m *models.Member, imageLink, textContent *string) (*models.Post, error) {
	row := r.db.QueryRow(ctx, `
		INSERT INTO posts (id, roll_no, name, last_name, image_link, text_content, upload_time)
		VALUES ($1, $2, $3, $4, $5, $6, NOW())
		RETURNING `+postColumns,
		uuid.New(), m.RollNo, m.Name, m.LastName, imageLink, textContent,
	)
	return scanPost(row)
}

// ToggleLike adds the roll number to the like set, or removes it when
// already present, and returns the updated post.
func (r *Posts) ToggleLike(ctx context.Context, id uuid.UUID, rollNo int) (*models.Post, error) {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback(ctx)

	p, err := scanPost(tx.QueryRow(ctx, `SELECT `+postColumns+` FROM posts WHERE id = $1 FOR UPDATE`, id))
	if err != nil {
		return nil, err
	}

	if p.LikedBy(rollNo) {
		kept := p.Likes[:0]
		for _, roll := range p.Likes {
			if roll != rollNo {
				kept = append(kept, roll)
			}
		}
		p.Likes = kept
	} else {
		p.Likes = append(p.Likes, rollNo)
	}

	likes, err := json.Marshal(p.Likes)
	if err != nil {
		return nil, err
	}
	if _, err := tx.Exec(ctx, `UPDATE posts SET likes = $2 WHERE id = $1`, id, likes); err != nil {
		return nil, err
	}
	if err := tx.Commit(ctx); err != nil {
		return nil, err
	}
	return p, nil
}

// AddComment appends a comment to the post and returns the updated post.
func (r *Posts) AddComment(ctx context.Context, id uuid.UUID, comment models.Comment) (*models.Post, error) {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback(ctx)

	p, err := scanPost(tx.QueryRow(ctx, `SELECT `+postColumns+` FROM posts WHERE id = $1 FOR UPDATE`, id))
	if err != nil {
		return nil, err
	}

	p.Comments = append(p.Comments, comment)
	comments, err := json.Marshal(p.Comments)
	if err != nil {
		return nil, err
	}
	if _, err := tx.Exec(ctx, `UPDATE posts SET comments = $2 WHERE id = $1`, id, comments); err != nil {
		return nil, err
	}
	if err := tx.Commit(ctx); err != nil {
		return nil, err
	}
	return p, nil
}

// Delete removes a post.
func (r *Posts) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM posts WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrPostNotFound
	}
	return nil
}
