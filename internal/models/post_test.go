package models

import (
	"testing"
	"time"
)

func TestPostExpired(t *testing.T) {
	now := time.Date(2025, time.July, 10, 12, 0, 0, 0, time.UTC)

	fresh := Post{UploadTime: now.Add(-23 * time.Hour)}
	if fresh.Expired(now) {
		t.Error("post inside 24h should not be expired")
	}

	stale := Post{UploadTime: now.Add(-25 * time.Hour)}
	if !stale.Expired(now) {
		t.Error("post past 24h should be expired")
	}

	boundary := Post{UploadTime: now.Add(-PostTTL)}
	if boundary.Expired(now) {
		t.Error("post exactly at the TTL should still be live")
	}
}

func TestPostLikedBy(t *testing.T) {
	p := Post{Likes: []int{3, 7}}
	if !p.LikedBy(7) {
		t.Error("roll 7 should be in the like set")
	}
	if p.LikedBy(5) {
		t.Error("roll 5 should not be in the like set")
	}
}

func TestMemberDisplayName(t *testing.T) {
	name := "Asha"
	last := "Verma"
	m := Member{Name: &name, LastName: &last}
	if got := m.DisplayName(); got != "Asha Verma" {
		t.Errorf("DisplayName = %q", got)
	}

	onlyFirst := Member{Name: &name}
	if got := onlyFirst.DisplayName(); got != "Asha" {
		t.Errorf("DisplayName = %q", got)
	}

	var cleared Member
	if got := cleared.DisplayName(); got != "" {
		t.Errorf("DisplayName of cleared member = %q, want empty", got)
	}
}
