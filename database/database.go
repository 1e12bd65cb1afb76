package database

import (
	"database/sql"
	"fmt"
	"log"
	"strings"

	_ "github.com/mattn/go-sqlite3"
)

// Open connects to the SQLite database at path, enables foreign-key
// enforcement and creates the schema if it does not exist yet.
func Open(path string) (*sql.DB, error) {
	dsn := path + "?_foreign_keys=on"
	db, err := sql.Open("sqlite3", dsn)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	// An in-memory database exists per connection; keep a single one so
	// every query sees the same data.
	if strings.Contains(path, ":memory:") {
		db.SetMaxOpenConns(1)
	}

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("connect to database: %w", err)
	}

	if err := createTables(db); err != nil {
		return nil, err
	}

	log.Printf("Connected to SQLite database at %s", path)
	return db, nil
}

// Uniqueness (email, username, member+post like pair) and cascade deletes
// are enforced here by the database, not by application code, so concurrent
// requests cannot race past a check-then-act window.
func createTables(db *sql.DB) error {
	schema := `
	CREATE TABLE IF NOT EXISTS members (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		email TEXT NOT NULL UNIQUE,
		username TEXT NOT NULL UNIQUE,
		password_hash TEXT NOT NULL,
		first_name TEXT NOT NULL,
		last_name TEXT NOT NULL,
		bio TEXT NOT NULL DEFAULT '',
		avatar_url TEXT,
		created_at TIMESTAMP NOT NULL
	);

	CREATE TABLE IF NOT EXISTS posts (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		author_id INTEGER NOT NULL,
		content TEXT NOT NULL,
		created_at TIMESTAMP NOT NULL,
		updated_at TIMESTAMP NOT NULL,
		FOREIGN KEY (author_id) REFERENCES members(id) ON DELETE CASCADE
	);

	CREATE TABLE IF NOT EXISTS likes (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		member_id INTEGER NOT NULL,
		post_id INTEGER NOT NULL,
		created_at TIMESTAMP NOT NULL,
		UNIQUE (member_id, post_id),
		FOREIGN KEY (member_id) REFERENCES members(id) ON DELETE CASCADE,
		FOREIGN KEY (post_id) REFERENCES posts(id) ON DELETE CASCADE
	);

	CREATE TABLE IF NOT EXISTS comments (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		author_id INTEGER NOT NULL,
		post_id INTEGER NOT NULL,
		content TEXT NOT NULL,
		created_at TIMESTAMP NOT NULL,
		FOREIGN KEY (author_id) REFERENCES members(id) ON DELETE CASCADE,
		FOREIGN KEY (post_id) REFERENCES posts(id) ON DELETE CASCADE
	);

	CREATE INDEX IF NOT EXISTS idx_posts_author_created ON posts(author_id, created_at);
	CREATE INDEX IF NOT EXISTS idx_posts_created ON posts(created_at);
	CREATE INDEX IF NOT EXISTS idx_likes_post ON likes(post_id);
	CREATE INDEX IF NOT EXISTS idx_comments_post_created ON comments(post_id, created_at);
	`

	if _, err := db.Exec(schema); err != nil {
		return fmt.Errorf("create tables: %w", err)
	}
	return nil
}
