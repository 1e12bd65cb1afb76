package store

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"socialnet/database"
	"socialnet/models"
)

func openTestDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := database.Open(":memory:")
	if err != nil {
		t.Fatalf("open test db: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	return db
}

func newMember(t *testing.T, s MemberStore, email, username string) *models.Member {
	t.Helper()
	m := &models.Member{
		Email:        email,
		Username:     username,
		PasswordHash: "$2a$10$fakefakefakefakefakefake",
		FirstName:    "Test",
		LastName:     "Member",
	}
	if err := s.Create(context.Background(), m); err != nil {
		t.Fatalf("create member %s: %v", username, err)
	}
	return m
}

func TestMemberUniqueness(t *testing.T) {
	db := openTestDB(t)
	s := NewMemberStore(db)
	ctx := context.Background()

	newMember(t, s, "a@example.com", "alice")

	dupEmail := &models.Member{
		Email: "a@example.com", Username: "other",
		PasswordHash: "x", FirstName: "A", LastName: "B",
	}
	if err := s.Create(ctx, dupEmail); !errors.Is(err, ErrEmailTaken) {
		t.Fatalf("expected ErrEmailTaken, got %v", err)
	}

	dupUsername := &models.Member{
		Email: "other@example.com", Username: "alice",
		PasswordHash: "x", FirstName: "A", LastName: "B",
	}
	if err := s.Create(ctx, dupUsername); !errors.Is(err, ErrUsernameTaken) {
		t.Fatalf("expected ErrUsernameTaken, got %v", err)
	}
}

func TestMemberNotFound(t *testing.T) {
	db := openTestDB(t)
	s := NewMemberStore(db)
	ctx := context.Background()

	if _, err := s.GetByID(ctx, 999); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
	if _, err := s.GetByEmail(ctx, "ghost@example.com"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
	if _, err := s.UpdateProfile(ctx, 999, ProfileUpdate{Bio: ptr("x")}); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func ptr(s string) *string { return &s }

func TestUpdateProfilePartial(t *testing.T) {
	db := openTestDB(t)
	s := NewMemberStore(db)
	ctx := context.Background()

	m := newMember(t, s, "a@example.com", "alice")

	updated, err := s.UpdateProfile(ctx, m.ID, ProfileUpdate{Bio: ptr("hello"), AvatarURL: ptr("https://img.example/a.png")})
	if err != nil {
		t.Fatalf("update profile: %v", err)
	}
	if updated.Bio != "hello" {
		t.Fatalf("bio not updated: %q", updated.Bio)
	}
	if updated.AvatarURL == nil || *updated.AvatarURL != "https://img.example/a.png" {
		t.Fatalf("avatar_url not updated: %v", updated.AvatarURL)
	}
	if updated.FirstName != "Test" || updated.Username != "alice" {
		t.Fatal("untouched fields changed")
	}

	// Empty update is a no-op, not an error
	same, err := s.UpdateProfile(ctx, m.ID, ProfileUpdate{})
	if err != nil {
		t.Fatalf("empty update: %v", err)
	}
	if same.Bio != "hello" {
		t.Fatalf("empty update changed bio: %q", same.Bio)
	}
}

func TestToggleLike(t *testing.T) {
	db := openTestDB(t)
	members := NewMemberStore(db)
	posts := NewPostStore(db)
	ctx := context.Background()

	author := newMember(t, members, "a@example.com", "alice")
	fan := newMember(t, members, "b@example.com", "bob")

	post, err := posts.Create(ctx, author.ID, "hi")
	if err != nil {
		t.Fatalf("create post: %v", err)
	}
	if post.LikesCount != 0 || post.IsLiked {
		t.Fatalf("fresh post has likes: %+v", post)
	}

	liked, likes, err := posts.ToggleLike(ctx, post.ID, fan.ID)
	if err != nil {
		t.Fatalf("toggle like: %v", err)
	}
	if !liked || likes != 1 {
		t.Fatalf("expected liked with count 1, got %v/%d", liked, likes)
	}

	got, err := posts.GetByID(ctx, post.ID, fan.ID)
	if err != nil {
		t.Fatalf("get post: %v", err)
	}
	if !got.IsLiked || got.LikesCount != 1 {
		t.Fatalf("viewer should see their like: %+v", got)
	}

	// The author never liked it
	got, err = posts.GetByID(ctx, post.ID, author.ID)
	if err != nil {
		t.Fatalf("get post: %v", err)
	}
	if got.IsLiked {
		t.Fatal("author should not see the post as liked")
	}

	// Second toggle returns to baseline
	liked, likes, err = posts.ToggleLike(ctx, post.ID, fan.ID)
	if err != nil {
		t.Fatalf("toggle like: %v", err)
	}
	if liked || likes != 0 {
		t.Fatalf("expected unliked with count 0, got %v/%d", liked, likes)
	}
}

func TestDeletePostCascades(t *testing.T) {
	db := openTestDB(t)
	members := NewMemberStore(db)
	posts := NewPostStore(db)
	comments := NewCommentStore(db)
	ctx := context.Background()

	author := newMember(t, members, "a@example.com", "alice")
	fan := newMember(t, members, "b@example.com", "bob")

	post, err := posts.Create(ctx, author.ID, "hi")
	if err != nil {
		t.Fatalf("create post: %v", err)
	}
	if _, _, err := posts.ToggleLike(ctx, post.ID, fan.ID); err != nil {
		t.Fatalf("like: %v", err)
	}
	comment, err := comments.Create(ctx, post.ID, fan.ID, "nice")
	if err != nil {
		t.Fatalf("comment: %v", err)
	}

	if err := posts.Delete(ctx, post.ID); err != nil {
		t.Fatalf("delete post: %v", err)
	}

	if _, err := posts.GetByID(ctx, post.ID, author.ID); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected post gone, got %v", err)
	}
	if _, err := comments.GetByID(ctx, comment.ID); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected comment cascaded, got %v", err)
	}

	var likeRows int
	if err := db.QueryRow("SELECT COUNT(*) FROM likes WHERE post_id = ?", post.ID).Scan(&likeRows); err != nil {
		t.Fatalf("count likes: %v", err)
	}
	if likeRows != 0 {
		t.Fatalf("expected likes cascaded, found %d rows", likeRows)
	}
}

func TestListPostsNewestFirst(t *testing.T) {
	db := openTestDB(t)
	members := NewMemberStore(db)
	posts := NewPostStore(db)
	ctx := context.Background()

	author := newMember(t, members, "a@example.com", "alice")
	for i := 0; i < 5; i++ {
		if _, err := posts.Create(ctx, author.ID, "post"); err != nil {
			t.Fatalf("create post %d: %v", i, err)
		}
	}

	count, err := posts.Count(ctx)
	if err != nil {
		t.Fatalf("count: %v", err)
	}
	if count != 5 {
		t.Fatalf("expected 5 posts, got %d", count)
	}

	page, err := posts.List(ctx, author.ID, 3, 0)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(page) != 3 {
		t.Fatalf("expected 3 posts, got %d", len(page))
	}
	for i := 1; i < len(page); i++ {
		if page[i].ID > page[i-1].ID {
			t.Fatal("posts not newest-first")
		}
	}

	rest, err := posts.List(ctx, author.ID, 3, 3)
	if err != nil {
		t.Fatalf("list offset: %v", err)
	}
	if len(rest) != 2 {
		t.Fatalf("expected 2 posts on second page, got %d", len(rest))
	}
}

func TestCommentsOldestFirst(t *testing.T) {
	db := openTestDB(t)
	members := NewMemberStore(db)
	posts := NewPostStore(db)
	comments := NewCommentStore(db)
	ctx := context.Background()

	author := newMember(t, members, "a@example.com", "alice")
	post, err := posts.Create(ctx, author.ID, "hi")
	if err != nil {
		t.Fatalf("create post: %v", err)
	}

	for _, text := range []string{"first", "second", "third"} {
		if _, err := comments.Create(ctx, post.ID, author.ID, text); err != nil {
			t.Fatalf("create comment: %v", err)
		}
	}

	list, err := comments.ListForPost(ctx, post.ID)
	if err != nil {
		t.Fatalf("list comments: %v", err)
	}
	if len(list) != 3 {
		t.Fatalf("expected 3 comments, got %d", len(list))
	}
	if list[0].Content != "first" || list[2].Content != "third" {
		t.Fatalf("comments not oldest-first: %q, %q, %q", list[0].Content, list[1].Content, list[2].Content)
	}
	if list[0].Author.Username != "alice" {
		t.Fatalf("comment author not joined: %+v", list[0].Author)
	}
	if list[0].PostID != post.ID {
		t.Fatalf("comment post_id wrong: %d", list[0].PostID)
	}
}
