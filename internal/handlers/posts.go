package handlers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/akash6998s/langarsewa-go/internal/middleware"
	"github.com/akash6998s/langarsewa-go/internal/models"
	"github.com/akash6998s/langarsewa-go/internal/repository"
)

// PostHandler serves the notice-board feed.
type PostHandler struct {
	posts   *repository.Posts
	members *repository.Members
}

func NewPostHandler(posts *repository.Posts, members *repository.Members) *PostHandler {
	return &PostHandler{posts: posts, members: members}
}

// Feed returns live posts, newest first. Posts older than 24 hours are
// dropped during the fetch.
func (h *PostHandler) Feed(c *gin.Context) {
	posts, err := h.posts.Feed(c.Request.Context(), time.Now())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to query posts"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"posts": posts, "count": len(posts)})
}

type createPostRequest struct {
	ImageLink   *string `json:"image_link"`
	TextContent *string `json:"text_content"`
}

// Create publishes a post for the authenticated member.
func (h *PostHandler) Create(c *gin.Context) {
	rollNo, ok := middleware.GetAuthRollNo(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
		return
	}

	var req createPostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request", "details": err.Error()})
		return
	}
	if (req.ImageLink == nil || *req.ImageLink == "") && (req.TextContent == nil || *req.TextContent == "") {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Post needs text or an image"})
		return
	}

	member, err := h.members.Get(c.Request.Context(), rollNo)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to query member"})
		return
	}

	post, err := h.posts.Create(c.Request.Context(), member, req.ImageLink, req.TextContent)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create post"})
		return
	}

	c.JSON(http.StatusCreated, post)
}

// Like toggles the authenticated member's like on a post.
func (h *PostHandler) Like(c *gin.Context) {
	rollNo, ok := middleware.GetAuthRollNo(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid post ID format"})
		return
	}

	post, err := h.posts.ToggleLike(c.Request.Context(), id, rollNo)
	if err != nil {
		h.writePostError(c, err)
		return
	}

	c.JSON(http.StatusOK, post)
}

type commentRequest struct {
	Text string `json:"text" binding:"required"`
}

// Comment appends a comment by the authenticated member.
func (h *PostHandler) Comment(c *gin.Context) {
	rollNo, ok := middleware.GetAuthRollNo(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid post ID format"})
		return
	}

	var req commentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request", "details": err.Error()})
		return
	}

	member, err := h.members.Get(c.Request.Context(), rollNo)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to query member"})
		return
	}

	post, err := h.posts.AddComment(c.Request.Context(), id, models.Comment{
		Text:      req.Text,
		RollNo:    member.RollNo,
		Name:      member.Name,
		LastName:  member.LastName,
		Timestamp: time.Now(),
	})
	if err != nil {
		h.writePostError(c, err)
		return
	}

	c.JSON(http.StatusOK, post)
}

// Delete removes a post.
func (h *PostHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid post ID format"})
		return
	}

	if err := h.posts.Delete(c.Request.Context(), id); err != nil {
		h.writePostError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"id": id, "deleted": true})
}

func (h *PostHandler) writePostError(c *gin.Context, err error) {
	if errors.Is(err, repository.ErrPostNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Post not found"})
		return
	}
	c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update post"})
}
