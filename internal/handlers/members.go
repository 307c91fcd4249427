package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"

	"github.com/akash6998s/langarsewa-go/internal/models"
	"github.com/akash6998s/langarsewa-go/internal/repository"
)

// MemberHandler serves member CRUD endpoints.
type MemberHandler struct {
	members *repository.Members
}

func NewMemberHandler(members *repository.Members) *MemberHandler {
	return &MemberHandler{members: members}
}

// List returns all members.
func (h *MemberHandler) List(c *gin.Context) {
	members, err := h.members.List(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to query members"})
		return
	}

	list := []models.MemberListResponse{}
	for i := range members {
		list = append(list, members[i].ToListResponse())
	}

	c.JSON(http.StatusOK, gin.H{
		"members": list,
		"count":   len(list),
	})
}

// Get returns a single member with attendance and donation documents.
func (h *MemberHandler) Get(c *gin.Context) {
	rollNo, ok := rollParam(c)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid roll number"})
		return
	}

	member, err := h.members.Get(c.Request.Context(), rollNo)
	if err != nil {
		if errors.Is(err, repository.ErrMemberNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Member not found"})
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to query member"})
		}
		return
	}

	c.JSON(http.StatusOK, member)
}

// Create adds a member with the next sequential roll number.
func (h *MemberHandler) Create(c *gin.Context) {
	var profile models.MemberProfile
	if err := c.ShouldBindJSON(&profile); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request", "details": err.Error()})
		return
	}

	member, err := h.members.Create(c.Request.Context(), profile)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create member"})
		return
	}

	c.JSON(http.StatusCreated, member)
}

// Update replaces a member's profile fields.
func (h *MemberHandler) Update(c *gin.Context) {
	rollNo, ok := rollParam(c)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid roll number"})
		return
	}

	var profile models.MemberProfile
	if err := c.ShouldBindJSON(&profile); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request", "details": err.Error()})
		return
	}

	if err := h.members.UpdateProfile(c.Request.Context(), rollNo, profile); err != nil {
		if errors.Is(err, repository.ErrMemberNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Member not found"})
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update member"})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"roll_no": rollNo, "updated": true})
}

type passwordRequest struct {
	Password string `json:"password" binding:"required,min=8"`
}

// SetPassword stores a new login password for the member. Until a password
// is set, login answers 401 for that roll number.
func (h *MemberHandler) SetPassword(c *gin.Context) {
	rollNo, ok := rollParam(c)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid roll number"})
		return
	}

	var req passwordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Password must be at least 8 characters"})
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to hash password"})
		return
	}

	if err := h.members.SetPassword(c.Request.Context(), rollNo, string(hash)); err != nil {
		if errors.Is(err, repository.ErrMemberNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Member not found"})
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to set password"})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"roll_no": rollNo, "updated": true})
}

// Clear blanks a member's personal details, keeping the roll number row as
// a placeholder.
func (h *MemberHandler) Clear(c *gin.Context) {
	rollNo, ok := rollParam(c)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid roll number"})
		return
	}

	if err := h.members.ClearProfile(c.Request.Context(), rollNo); err != nil {
		if errors.Is(err, repository.ErrMemberNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Member not found"})
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to clear member"})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"roll_no": rollNo, "cleared": true})
}
