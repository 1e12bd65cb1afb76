package handlers

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"

	"socialnet/auth"
	"socialnet/middleware"
	"socialnet/models"
	"socialnet/store"
)

type registerRequest struct {
	Email     string `json:"email" binding:"required,email"`
	Username  string `json:"username" binding:"required"`
	Password  string `json:"password" binding:"required,min=8"`
	FirstName string `json:"first_name" binding:"required"`
	LastName  string `json:"last_name" binding:"required"`
}

type loginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// Register creates a new member. Uniqueness conflicts come back from the
// store, so two concurrent registrations with the same email cannot both
// succeed.
func (a *API) Register(c *gin.Context) {
	var req registerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to hash password"})
		return
	}

	member := &models.Member{
		Email:        req.Email,
		Username:     req.Username,
		PasswordHash: string(hashed),
		FirstName:    req.FirstName,
		LastName:     req.LastName,
	}

	if err := a.Members.Create(c.Request.Context(), member); err != nil {
		switch {
		case errors.Is(err, store.ErrEmailTaken):
			c.JSON(http.StatusBadRequest, gin.H{"email": "A member with this email already exists"})
		case errors.Is(err, store.ErrUsernameTaken):
			c.JSON(http.StatusBadRequest, gin.H{"username": "A member with this username already exists"})
		default:
			log.Printf("Register error: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create member"})
		}
		return
	}

	c.JSON(http.StatusCreated, member)
}

// Login verifies credentials and sets the session cookie. An unknown email
// and a wrong password produce the same response on purpose.
func (a *API) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	member, err := a.Members.GetByEmail(c.Request.Context(), req.Email)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid credentials"})
			return
		}
		log.Printf("Login error: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to log in"})
		return
	}

	if bcrypt.CompareHashAndPassword([]byte(member.PasswordHash), []byte(req.Password)) != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid credentials"})
		return
	}

	token, err := a.Sessions.Mint(member.ID)
	if err != nil {
		log.Printf("Login token error: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create session"})
		return
	}

	auth.SetSessionCookie(c, token, a.Sessions.TTL())
	c.JSON(http.StatusOK, member)
}

func (a *API) Logout(c *gin.Context) {
	auth.ClearSessionCookie(c)
	c.JSON(http.StatusOK, gin.H{"message": "Successfully logged out"})
}

func (a *API) Me(c *gin.Context) {
	c.JSON(http.StatusOK, middleware.CurrentMember(c))
}
