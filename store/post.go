package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"socialnet/models"
)

type postStore struct {
	db *sql.DB
}

func NewPostStore(db *sql.DB) PostStore {
	return &postStore{db: db}
}

// Every post read goes through this shape: author joined in, counts and the
// viewer's liked flag computed with subqueries.
const postSelect = `
	SELECT p.id, p.content, p.created_at, p.updated_at,
	       m.id, m.email, m.username, m.first_name, m.last_name, m.bio, m.avatar_url, m.created_at,
	       (SELECT COUNT(*) FROM likes l WHERE l.post_id = p.id),
	       (SELECT COUNT(*) FROM comments c WHERE c.post_id = p.id),
	       EXISTS (SELECT 1 FROM likes l WHERE l.post_id = p.id AND l.member_id = ?)
	FROM posts p
	JOIN members m ON m.id = p.author_id`

func scanPost(row interface{ Scan(...any) error }) (*models.Post, error) {
	var p models.Post
	err := row.Scan(&p.ID, &p.Content, &p.CreatedAt, &p.UpdatedAt,
		&p.Author.ID, &p.Author.Email, &p.Author.Username,
		&p.Author.FirstName, &p.Author.LastName, &p.Author.Bio,
		&p.Author.AvatarURL, &p.Author.CreatedAt,
		&p.LikesCount, &p.CommentsCount, &p.IsLiked)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (s *postStore) Create(ctx context.Context, authorID int64, content string) (*models.Post, error) {
	now := time.Now().UTC()
	res, err := s.db.ExecContext(ctx,
		"INSERT INTO posts (author_id, content, created_at, updated_at) VALUES (?, ?, ?, ?)",
		authorID, content, now, now)
	if err != nil {
		return nil, fmt.Errorf("insert post: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("post insert id: %w", err)
	}
	return s.GetByID(ctx, id, authorID)
}

func (s *postStore) GetByID(ctx context.Context, id, viewerID int64) (*models.Post, error) {
	row := s.db.QueryRowContext(ctx, postSelect+" WHERE p.id = ?", viewerID, id)
	p, err := scanPost(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("query post %d: %w", id, err)
	}
	return p, nil
}

func (s *postStore) List(ctx context.Context, viewerID int64, limit, offset int) ([]models.Post, error) {
	rows, err := s.db.QueryContext(ctx,
		postSelect+" ORDER BY p.created_at DESC, p.id DESC LIMIT ? OFFSET ?",
		viewerID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list posts: %w", err)
	}
	defer rows.Close()
	return collectPosts(rows)
}

func (s *postStore) Count(ctx context.Context) (int, error) {
	var n int
	if err := s.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM posts").Scan(&n); err != nil {
		return 0, fmt.Errorf("count posts: %w", err)
	}
	return n, nil
}

func (s *postStore) ListByAuthor(ctx context.Context, authorID, viewerID int64) ([]models.Post, error) {
	rows, err := s.db.QueryContext(ctx,
		postSelect+" WHERE p.author_id = ? ORDER BY p.created_at DESC, p.id DESC",
		viewerID, authorID)
	if err != nil {
		return nil, fmt.Errorf("list posts by author %d: %w", authorID, err)
	}
	defer rows.Close()
	return collectPosts(rows)
}

func collectPosts(rows *sql.Rows) ([]models.Post, error) {
	posts := make([]models.Post, 0)
	for rows.Next() {
		p, err := scanPost(rows)
		if err != nil {
			return nil, fmt.Errorf("scan post: %w", err)
		}
		posts = append(posts, *p)
	}
	return posts, rows.Err()
}

func (s *postStore) Delete(ctx context.Context, id int64) error {
	res, err := s.db.ExecContext(ctx, "DELETE FROM posts WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("delete post %d: %w", id, err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *postStore) ToggleLike(ctx context.Context, postID, memberID int64) (bool, int, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return false, 0, fmt.Errorf("begin toggle like: %w", err)
	}
	defer tx.Rollback()

	// The UNIQUE (member_id, post_id) constraint decides the race: of two
	// concurrent toggles only one insert lands, the other sees the conflict.
	res, err := tx.ExecContext(ctx, `
		INSERT INTO likes (member_id, post_id, created_at) VALUES (?, ?, ?)
		ON CONFLICT (member_id, post_id) DO NOTHING`,
		memberID, postID, time.Now().UTC())
	if err != nil {
		return false, 0, fmt.Errorf("insert like: %w", err)
	}

	inserted, err := res.RowsAffected()
	if err != nil {
		return false, 0, fmt.Errorf("toggle like result: %w", err)
	}

	liked := inserted > 0
	if !liked {
		if _, err := tx.ExecContext(ctx,
			"DELETE FROM likes WHERE member_id = ? AND post_id = ?", memberID, postID); err != nil {
			return false, 0, fmt.Errorf("delete like: %w", err)
		}
	}

	var likes int
	if err := tx.QueryRowContext(ctx,
		"SELECT COUNT(*) FROM likes WHERE post_id = ?", postID).Scan(&likes); err != nil {
		return false, 0, fmt.Errorf("count likes: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return false, 0, fmt.Errorf("commit toggle like: %w", err)
	}
	return liked, likes, nil
}
