package models

import "time"

type Comment struct {
	ID        int64     `json:"id"`
	Author    Member    `json:"author"`
	Content   string    `json:"content"`
	PostID    int64     `json:"post_id"`
	CreatedAt time.Time `json:"created_at"`
}
