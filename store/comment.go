package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"socialnet/models"
)

type commentStore struct {
	db *sql.DB
}

func NewCommentStore(db *sql.DB) CommentStore {
	return &commentStore{db: db}
}

const commentSelect = `
	SELECT c.id, c.content, c.post_id, c.created_at,
	       m.id, m.email, m.username, m.first_name, m.last_name, m.bio, m.avatar_url, m.created_at
	FROM comments c
	JOIN members m ON m.id = c.author_id`

func scanComment(row interface{ Scan(...any) error }) (*models.Comment, error) {
	var c models.Comment
	err := row.Scan(&c.ID, &c.Content, &c.PostID, &c.CreatedAt,
		&c.Author.ID, &c.Author.Email, &c.Author.Username,
		&c.Author.FirstName, &c.Author.LastName, &c.Author.Bio,
		&c.Author.AvatarURL, &c.Author.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func (s *commentStore) Create(ctx context.Context, postID, authorID int64, content string) (*models.Comment, error) {
	res, err := s.db.ExecContext(ctx,
		"INSERT INTO comments (author_id, post_id, content, created_at) VALUES (?, ?, ?, ?)",
		authorID, postID, content, time.Now().UTC())
	if err != nil {
		return nil, fmt.Errorf("insert comment: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("comment insert id: %w", err)
	}
	return s.GetByID(ctx, id)
}

func (s *commentStore) GetByID(ctx context.Context, id int64) (*models.Comment, error) {
	row := s.db.QueryRowContext(ctx, commentSelect+" WHERE c.id = ?", id)
	c, err := scanComment(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("query comment %d: %w", id, err)
	}
	return c, nil
}

func (s *commentStore) ListForPost(ctx context.Context, postID int64) ([]models.Comment, error) {
	rows, err := s.db.QueryContext(ctx,
		commentSelect+" WHERE c.post_id = ? ORDER BY c.created_at ASC, c.id ASC", postID)
	if err != nil {
		return nil, fmt.Errorf("list comments for post %d: %w", postID, err)
	}
	defer rows.Close()

	comments := make([]models.Comment, 0)
	for rows.Next() {
		c, err := scanComment(rows)
		if err != nil {
			return nil, fmt.Errorf("scan comment: %w", err)
		}
		comments = append(comments, *c)
	}
	return comments, rows.Err()
}

func (s *commentStore) Delete(ctx context.Context, id int64) error {
	res, err := s.db.ExecContext(ctx, "DELETE FROM comments WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("delete comment %d: %w", id, err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrNotFound
	}
	return nil
}
