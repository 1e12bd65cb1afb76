package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"socialnet/auth"
	"socialnet/config"
	"socialnet/database"
	"socialnet/handlers"
	"socialnet/routes"
	"socialnet/store"
)

func main() {
	log.Println("Starting socialnet API server...")

	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment as-is")
	}

	cfg := config.Load()

	if cfg.ReleaseMode {
		gin.SetMode(gin.ReleaseMode)
	}

	db, err := database.Open(cfg.DBPath)
	if err != nil {
		log.Fatal("Failed to open database: ", err)
	}
	defer db.Close()

	members := store.NewMemberStore(db)
	posts := store.NewPostStore(db)
	comments := store.NewCommentStore(db)
	sessions := auth.NewManager(cfg.SessionSecret, cfg.SessionTTL)

	api := handlers.New(members, posts, comments, sessions)
	router := routes.New(api, sessions, members, cfg)

	server := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Printf("Server running on port %s", cfg.Port)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Server error: ", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Println("Forced shutdown: ", err)
	}

	log.Println("Server stopped")
}
