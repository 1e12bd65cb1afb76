package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/mattn/go-sqlite3"

	"socialnet/models"
)

type memberStore struct {
	db *sql.DB
}

func NewMemberStore(db *sql.DB) MemberStore {
	return &memberStore{db: db}
}

const memberColumns = "id, email, username, password_hash, first_name, last_name, bio, avatar_url, created_at"

func scanMember(row interface{ Scan(...any) error }) (*models.Member, error) {
	var m models.Member
	err := row.Scan(&m.ID, &m.Email, &m.Username, &m.PasswordHash,
		&m.FirstName, &m.LastName, &m.Bio, &m.AvatarURL, &m.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &m, nil
}

func (s *memberStore) Create(ctx context.Context, m *models.Member) error {
	m.CreatedAt = time.Now().UTC()

	res, err := s.db.ExecContext(ctx, `
		INSERT INTO members (email, username, password_hash, first_name, last_name, bio, avatar_url, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		m.Email, m.Username, m.PasswordHash, m.FirstName, m.LastName, m.Bio, m.AvatarURL, m.CreatedAt)
	if err != nil {
		var sqliteErr sqlite3.Error
		if errors.As(err, &sqliteErr) && sqliteErr.ExtendedCode == sqlite3.ErrConstraintUnique {
			if strings.Contains(err.Error(), "members.email") {
				return ErrEmailTaken
			}
			return ErrUsernameTaken
		}
		return fmt.Errorf("insert member: %w", err)
	}

	m.ID, err = res.LastInsertId()
	if err != nil {
		return fmt.Errorf("member insert id: %w", err)
	}
	return nil
}

func (s *memberStore) GetByID(ctx context.Context, id int64) (*models.Member, error) {
	row := s.db.QueryRowContext(ctx,
		"SELECT "+memberColumns+" FROM members WHERE id = ?", id)
	m, err := scanMember(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("query member %d: %w", id, err)
	}
	return m, nil
}

func (s *memberStore) GetByEmail(ctx context.Context, email string) (*models.Member, error) {
	row := s.db.QueryRowContext(ctx,
		"SELECT "+memberColumns+" FROM members WHERE email = ?", email)
	m, err := scanMember(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("query member by email: %w", err)
	}
	return m, nil
}

func (s *memberStore) UpdateProfile(ctx context.Context, id int64, upd ProfileUpdate) (*models.Member, error) {
	var sets []string
	var args []any
	if upd.FirstName != nil {
		sets = append(sets, "first_name = ?")
		args = append(args, *upd.FirstName)
	}
	if upd.LastName != nil {
		sets = append(sets, "last_name = ?")
		args = append(args, *upd.LastName)
	}
	if upd.Bio != nil {
		sets = append(sets, "bio = ?")
		args = append(args, *upd.Bio)
	}
	if upd.AvatarURL != nil {
		sets = append(sets, "avatar_url = ?")
		args = append(args, *upd.AvatarURL)
	}

	if len(sets) > 0 {
		args = append(args, id)
		res, err := s.db.ExecContext(ctx,
			"UPDATE members SET "+strings.Join(sets, ", ")+" WHERE id = ?", args...)
		if err != nil {
			return nil, fmt.Errorf("update member %d: %w", id, err)
		}
		if n, _ := res.RowsAffected(); n == 0 {
			return nil, ErrNotFound
		}
	}

	return s.GetByID(ctx, id)
}
