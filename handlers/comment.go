package handlers

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"socialnet/middleware"
	"socialnet/store"
)

type createCommentRequest struct {
	Content string `json:"content" binding:"required"`
}

// ListComments returns a post's comments oldest-first.
func (a *API) ListComments(c *gin.Context) {
	postID, ok := pathID(c)
	if !ok {
		return
	}

	viewer := middleware.CurrentMember(c)
	ctx := c.Request.Context()

	if _, err := a.Posts.GetByID(ctx, postID, viewer.ID); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Not found"})
			return
		}
		log.Printf("ListComments error: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch comments"})
		return
	}

	comments, err := a.Comments.ListForPost(ctx, postID)
	if err != nil {
		log.Printf("ListComments error: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch comments"})
		return
	}

	c.JSON(http.StatusOK, comments)
}

func (a *API) CreateComment(c *gin.Context) {
	postID, ok := pathID(c)
	if !ok {
		return
	}

	var req createCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	author := middleware.CurrentMember(c)
	ctx := c.Request.Context()

	if _, err := a.Posts.GetByID(ctx, postID, author.ID); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Not found"})
			return
		}
		log.Printf("CreateComment error: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create comment"})
		return
	}

	comment, err := a.Comments.Create(ctx, postID, author.ID, req.Content)
	if err != nil {
		log.Printf("CreateComment error: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create comment"})
		return
	}

	c.JSON(http.StatusCreated, comment)
}

func (a *API) DeleteComment(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	requester := middleware.CurrentMember(c)
	ctx := c.Request.Context()

	comment, err := a.Comments.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Not found"})
			return
		}
		log.Printf("DeleteComment error: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete comment"})
		return
	}

	if comment.Author.ID != requester.ID {
		c.JSON(http.StatusForbidden, gin.H{"error": "You are not authorized to delete this comment"})
		return
	}

	if err := a.Comments.Delete(ctx, id); err != nil {
		log.Printf("DeleteComment error: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete comment"})
		return
	}

	c.Status(http.StatusNoContent)
}
