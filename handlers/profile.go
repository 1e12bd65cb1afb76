package handlers

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"socialnet/middleware"
	"socialnet/models"
	"socialnet/store"
)

type updateProfileRequest struct {
	FirstName *string `json:"first_name"`
	LastName  *string `json:"last_name"`
	Bio       *string `json:"bio"`
	AvatarURL *string `json:"avatar_url"`
}

// GetProfile returns a member together with all their posts, enriched the
// same way as the feed.
func (a *API) GetProfile(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	viewer := middleware.CurrentMember(c)
	ctx := c.Request.Context()

	member, err := a.Members.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Not found"})
			return
		}
		log.Printf("GetProfile error: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch profile"})
		return
	}

	posts, err := a.Posts.ListByAuthor(ctx, id, viewer.ID)
	if err != nil {
		log.Printf("GetProfile error: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch profile"})
		return
	}

	c.JSON(http.StatusOK, models.Profile{Member: *member, Posts: posts})
}

// UpdateProfile patches the requester's own profile; only the supplied
// fields change.
func (a *API) UpdateProfile(c *gin.Context) {
	var req updateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	requester := middleware.CurrentMember(c)
	member, err := a.Members.UpdateProfile(c.Request.Context(), requester.ID, store.ProfileUpdate{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Bio:       req.Bio,
		AvatarURL: req.AvatarURL,
	})
	if err != nil {
		log.Printf("UpdateProfile error: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update profile"})
		return
	}

	c.JSON(http.StatusOK, member)
}
