package handlers

import (
	"errors"
	"fmt"
	"log"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"socialnet/middleware"
	"socialnet/store"
)

const (
	defaultPageSize = 20
	maxPageSize     = 100
)

type createPostRequest struct {
	Content string `json:"content" binding:"required"`
}

// pathID parses the numeric id segment. A non-numeric id can never name an
// existing resource, so it reads as not found.
func pathID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Not found"})
		return 0, false
	}
	return id, true
}

// ListPosts returns the newest-first feed, paginated the same way the
// clients already expect: count plus relative next/previous links.
func (a *API) ListPosts(c *gin.Context) {
	viewer := middleware.CurrentMember(c)
	ctx := c.Request.Context()

	page, err := strconv.Atoi(c.DefaultQuery("page", "1"))
	if err != nil || page < 1 {
		page = 1
	}
	pageSize, err := strconv.Atoi(c.DefaultQuery("page_size", strconv.Itoa(defaultPageSize)))
	if err != nil || pageSize < 1 {
		pageSize = defaultPageSize
	}
	if pageSize > maxPageSize {
		pageSize = maxPageSize
	}

	count, err := a.Posts.Count(ctx)
	if err != nil {
		log.Printf("ListPosts count error: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch posts"})
		return
	}

	// Out-of-range pages are clamped to the last page rather than erroring.
	totalPages := (count + pageSize - 1) / pageSize
	if totalPages < 1 {
		totalPages = 1
	}
	if page > totalPages {
		page = totalPages
	}

	posts, err := a.Posts.List(ctx, viewer.ID, pageSize, (page-1)*pageSize)
	if err != nil {
		log.Printf("ListPosts error: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch posts"})
		return
	}

	var next, previous *string
	if page < totalPages {
		u := fmt.Sprintf("/posts/?page=%d", page+1)
		next = &u
	}
	if page > 1 {
		u := fmt.Sprintf("/posts/?page=%d", page-1)
		previous = &u
	}

	c.JSON(http.StatusOK, gin.H{
		"count":    count,
		"next":     next,
		"previous": previous,
		"results":  posts,
	})
}

func (a *API) CreatePost(c *gin.Context) {
	var req createPostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	author := middleware.CurrentMember(c)
	post, err := a.Posts.Create(c.Request.Context(), author.ID, req.Content)
	if err != nil {
		log.Printf("CreatePost error: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create post"})
		return
	}

	c.JSON(http.StatusCreated, post)
}

func (a *API) GetPost(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	viewer := middleware.CurrentMember(c)
	post, err := a.Posts.GetByID(c.Request.Context(), id, viewer.ID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Not found"})
			return
		}
		log.Printf("GetPost error: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch post"})
		return
	}

	c.JSON(http.StatusOK, post)
}

// DeletePost removes the requester's own post; likes and comments go with it
// via the cascade.
func (a *API) DeletePost(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	requester := middleware.CurrentMember(c)
	ctx := c.Request.Context()

	post, err := a.Posts.GetByID(ctx, id, requester.ID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Not found"})
			return
		}
		log.Printf("DeletePost error: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete post"})
		return
	}

	if post.Author.ID != requester.ID {
		c.JSON(http.StatusForbidden, gin.H{"error": "You are not authorized to delete this post"})
		return
	}

	if err := a.Posts.Delete(ctx, id); err != nil {
		log.Printf("DeletePost error: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete post"})
		return
	}

	c.Status(http.StatusNoContent)
}

// ToggleLike likes the post if the requester has not liked it yet and
// unlikes it otherwise.
func (a *API) ToggleLike(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	requester := middleware.CurrentMember(c)
	ctx := c.Request.Context()

	if _, err := a.Posts.GetByID(ctx, id, requester.ID); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Not found"})
			return
		}
		log.Printf("ToggleLike error: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to toggle like"})
		return
	}

	liked, likes, err := a.Posts.ToggleLike(ctx, id, requester.ID)
	if err != nil {
		log.Printf("ToggleLike error: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to toggle like"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"is_liked":    liked,
		"likes_count": likes,
	})
}
