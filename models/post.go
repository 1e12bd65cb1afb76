package models

import "time"

type Post struct {
	ID        int64     `json:"id"`
	Author    Member    `json:"author"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
	// Computed at query time, not persisted
	LikesCount    int  `json:"likes_count"`
	CommentsCount int  `json:"comments_count"`
	IsLiked       bool `json:"is_liked"`
}
