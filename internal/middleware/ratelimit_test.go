package middleware

import "testing"

func TestTokenBucketAllow(t *testing.T) {
	l := NewTokenBucket(3, 60)

	for i := 0; i < 3; i++ {
		if !l.Allow("10.0.0.1") {
			t.Fatalf("request %d should pass", i+1)
		}
	}
	if l.Allow("10.0.0.1") {
		t.Error("request over capacity should be limited")
	}

	// Another key has its own bucket.
	if !l.Allow("10.0.0.2") {
		t.Error("fresh key should pass")
	}
}
