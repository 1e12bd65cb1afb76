// Package store is the data-access layer. Handlers talk to these interfaces
// only; the SQLite implementations below are the single place that knows SQL.
package store

import (
	"context"
	"errors"

	"socialnet/models"
)

var (
	ErrNotFound      = errors.New("not found")
	ErrEmailTaken    = errors.New("email already taken")
	ErrUsernameTaken = errors.New("username already taken")
)

// ProfileUpdate carries a partial profile edit; nil fields are left untouched.
type ProfileUpdate struct {
	FirstName *string
	LastName  *string
	Bio       *string
	AvatarURL *string
}

type MemberStore interface {
	// Create fills in ID and CreatedAt. Duplicate email or username is
	// reported as ErrEmailTaken / ErrUsernameTaken off the UNIQUE
	// constraints, so concurrent registrations cannot both win.
	Create(ctx context.Context, m *models.Member) error
	GetByID(ctx context.Context, id int64) (*models.Member, error)
	GetByEmail(ctx context.Context, email string) (*models.Member, error)
	UpdateProfile(ctx context.Context, id int64, upd ProfileUpdate) (*models.Member, error)
}

type PostStore interface {
	Create(ctx context.Context, authorID int64, content string) (*models.Post, error)
	// GetByID enriches the post with likes_count, comments_count and
	// whether viewerID has liked it.
	GetByID(ctx context.Context, id, viewerID int64) (*models.Post, error)
	// List returns posts newest-first.
	List(ctx context.Context, viewerID int64, limit, offset int) ([]models.Post, error)
	Count(ctx context.Context) (int, error)
	ListByAuthor(ctx context.Context, authorID, viewerID int64) ([]models.Post, error)
	// Delete cascades to the post's likes and comments.
	Delete(ctx context.Context, id int64) error
	// ToggleLike creates the like if absent, removes it if present, and
	// returns the new liked state with the updated like count.
	ToggleLike(ctx context.Context, postID, memberID int64) (liked bool, likes int, err error)
}

type CommentStore interface {
	Create(ctx context.Context, postID, authorID int64, content string) (*models.Comment, error)
	GetByID(ctx context.Context, id int64) (*models.Comment, error)
	// ListForPost returns comments oldest-first.
	ListForPost(ctx context.Context, postID int64) ([]models.Comment, error)
	Delete(ctx context.Context, id int64) error
}
