package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"

	"github.com/akash6998s/langarsewa-go/internal/auth"
	"github.com/akash6998s/langarsewa-go/internal/repository"
)

type LoginRequest struct {
	RollNo   int    `json:"roll_no" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type LoginResponse struct {
	Token   string `json:"token"`
	RollNo  int    `json:"roll_no"`
	Name    string `json:"name"`
	IsAdmin bool   `json:"is_admin"`
}

// Login authenticates a member by roll number and returns a JWT token.
func Login(jwtService *auth.JWTService, members *repository.Members) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req LoginRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request", "details": err.Error()})
			return
		}

		hash, isAdmin, err := members.Credentials(c.Request.Context(), req.RollNo)
		if err != nil {
			if errors.Is(err, repository.ErrMemberNotFound) {
				c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid roll number or password"})
			} else {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to query member"})
			}
			return
		}

		if hash == nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Login not enabled for this member"})
			return
		}
		if err := bcrypt.CompareHashAndPassword([]byte(*hash), []byte(req.Password)); err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid roll number or password"})
			return
		}

		member, err := members.Get(c.Request.Context(), req.RollNo)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to query member"})
			return
		}

		token, err := jwtService.GenerateToken(member.RollNo, member.DisplayName(), isAdmin)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate token"})
			return
		}

		c.JSON(http.StatusOK, LoginResponse{
			Token:   token,
			RollNo:  member.RollNo,
			Name:    member.DisplayName(),
			IsAdmin: isAdmin,
		})
	}
}
