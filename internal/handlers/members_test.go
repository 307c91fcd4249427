package handlers

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
)

func setPasswordRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := NewMemberHandler(nil)
	r := gin.New()
	r.PUT("/members/:roll_no/password", h.SetPassword)
	return r
}

func TestSetPasswordRejectsInvalidRollNumber(t *testing.T) {
	r := setPasswordRouter()

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPut, "/members/abc/password",
		strings.NewReader(`{"password":"long-enough-secret"}`))
	r.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want %d", w.Code, http.StatusBadRequest)
	}
}

func TestSetPasswordRejectsShortPassword(t *testing.T) {
	r := setPasswordRouter()

	cases := []struct {
		name string
		body string
	}{
		{"too short", `{"password":"short"}`},
		{"missing", `{}`},
		{"empty body", ``},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodPut, "/members/5/password",
				strings.NewReader(tc.body))
			r.ServeHTTP(w, req)

			if w.Code != http.StatusBadRequest {
				t.Fatalf("status = %d, want %d", w.Code, http.StatusBadRequest)
			}
		})
	}
}
