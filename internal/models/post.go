package models

import (
	"time"

	"github.com/google/uuid"
)

// PostTTL is how long a post stays on the notice board. Expiry is applied
// lazily on the next feed fetch, not by a background job.
const PostTTL = 24 * time.Hour

// Comment is a single comment on a post.
type Comment struct {
	Text      string    `json:"text"`
	RollNo    int       `json:"roll_no"`
	Name      *string   `json:"name,omitempty"`
	LastName  *string   `json:"last_name,omitempty"`
	Timestamp time.Time `json:"timestamp"`
}

// Post is a notice-board entry with likes and comments.
type Post struct {
	ID          uuid.UUID `json:"id"`
	RollNo      int       `json:"roll_no"`
	Name        *string   `json:"name,omitempty"`
	LastName    *string   `json:"last_name,omitempty"`
	ImageLink   *string   `json:"image_link,omitempty"`
	TextContent *string   `json:"text_content,omitempty"`
	UploadTime  time.Time `json:"upload_time"`
	Likes       []int     `json:"likes"`
	Comments    []Comment `json:"comments"`
}

// Expired reports whether the post has passed its TTL at the given instant.
func (p *Post) Expired(now time.Time) bool {
	return now.Sub(p.UploadTime) > PostTTL
}

// LikedBy reports whether the given roll number is in the like set.
func (p *Post) LikedBy(rollNo int) bool {
	for _, r := range p.Likes {
		if r == rollNo {
			return true
		}
	}
	return false
}
