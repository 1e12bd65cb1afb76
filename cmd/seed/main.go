// Command seed fills a local database with a few members, posts, likes and
// comments so the API has something to serve during development.
package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"

	"github.com/joho/godotenv"
	"golang.org/x/crypto/bcrypt"

	"socialnet/database"
	"socialnet/models"
	"socialnet/store"
)

const seedPassword = "password123"

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment as-is")
	}

	path := os.Getenv("DB_PATH")
	if path == "" {
		path = "socialnet.db"
	}

	db, err := database.Open(path)
	if err != nil {
		log.Fatal("Failed to open database: ", err)
	}
	defer db.Close()

	members := store.NewMemberStore(db)
	posts := store.NewPostStore(db)
	comments := store.NewCommentStore(db)
	ctx := context.Background()

	hash, err := bcrypt.GenerateFromPassword([]byte(seedPassword), bcrypt.DefaultCost)
	if err != nil {
		log.Fatal("Failed to hash seed password: ", err)
	}

	names := []struct {
		username, first, last string
	}{
		{"alice", "Alice", "Nguyen"},
		{"bob", "Bob", "Ferreira"},
		{"carol", "Carol", "Okafor"},
	}

	var seeded []*models.Member
	for _, n := range names {
		m := &models.Member{
			Email:        n.username + "@example.com",
			Username:     n.username,
			PasswordHash: string(hash),
			FirstName:    n.first,
			LastName:     n.last,
			Bio:          fmt.Sprintf("Hi, I'm %s.", n.first),
		}
		if err := members.Create(ctx, m); err != nil {
			if errors.Is(err, store.ErrEmailTaken) || errors.Is(err, store.ErrUsernameTaken) {
				log.Printf("Member %s already seeded, skipping", n.username)
				existing, err := members.GetByEmail(ctx, m.Email)
				if err != nil {
					log.Fatal("Failed to load existing member: ", err)
				}
				seeded = append(seeded, existing)
				continue
			}
			log.Fatal("Failed to create member: ", err)
		}
		seeded = append(seeded, m)
	}

	post, err := posts.Create(ctx, seeded[0].ID, "First post on socialnet!")
	if err != nil {
		log.Fatal("Failed to create post: ", err)
	}
	if _, err := posts.Create(ctx, seeded[1].ID, "Hello everyone"); err != nil {
		log.Fatal("Failed to create post: ", err)
	}

	for _, m := range seeded[1:] {
		if _, _, err := posts.ToggleLike(ctx, post.ID, m.ID); err != nil {
			log.Fatal("Failed to like post: ", err)
		}
	}

	if _, err := comments.Create(ctx, post.ID, seeded[2].ID, "Welcome aboard!"); err != nil {
		log.Fatal("Failed to create comment: ", err)
	}

	log.Printf("Seed completed: %d members (password %q)", len(seeded), seedPassword)
}
