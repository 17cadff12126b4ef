package main

import (
	"database/sql"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/gorilla/sessions"
	_ "github.com/lib/pq"
	"github.com/pressly/goose/v3"
	"github.com/redis/go-redis/v9"

	"Scribe/internal/api/middleware"
	"Scribe/internal/api/routes"
	"Scribe/internal/cache"
	"Scribe/internal/config"
	"Scribe/internal/core/comments"
	"Scribe/internal/core/feeds"
	"Scribe/internal/core/follows"
	"Scribe/internal/core/images"
	"Scribe/internal/core/posts"
	postgresRepo "Scribe/internal/db/postgres"
)

func main() {
	cfg := config.Load()

	db, err := sql.Open("postgres", cfg.DatabaseURL)
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}
	defer db.Close()

	if err := db.Ping(); err != nil {
		log.Fatal("Failed to ping database:", err)
	}

	log.Println("Connected to database")

	// Run migrations
	if err := goose.SetDialect("postgres"); err != nil {
		log.Fatal("Failed to set goose dialect:", err)
	}

	if err := goose.Up(db, "internal/db/migrations"); err != nil {
		log.Fatal("Failed to run migrations:", err)
	}

	log.Println("Migrations completed successfully")

	// Index feed cache, only when Redis is configured
	var feedCache feeds.Cache
	if cfg.RedisAddr != "" {
		redisClient := redis.NewClient(&redis.Options{Addr: cfg.RedisAddr})
		defer redisClient.Close()
		feedCache = cache.NewRedisCache(redisClient, nil)
		log.Println("Index feed cache enabled:", cfg.RedisAddr)
	}

	imageStore, err := images.NewDiskStore(cfg.ImageDir)
	if err != nil {
		log.Fatal("Failed to prepare image directory:", err)
	}

	sessionStore := sessions.NewCookieStore([]byte(cfg.SessionSecret))
	sessionAuth := middleware.NewSessionAuth(sessionStore)

	// Repositories
	userRepo := postgresRepo.NewUserRepository(db)
	groupRepo := postgresRepo.NewGroupRepository(db)
	postRepo := postgresRepo.NewPostRepository(db)
	commentRepo := postgresRepo.NewCommentRepository(db)
	followRepo := postgresRepo.NewFollowRepository(db)
	feedRepo := postgresRepo.NewFeedRepository(db)

	// Services
	postService := posts.NewPostService(postRepo, groupRepo, imageStore, nil)
	commentService := comments.NewCommentService(commentRepo, postRepo, nil)
	followService := follows.NewFollowService(followRepo, userRepo, nil)
	feedService := feeds.NewFeedService(feedRepo, groupRepo, userRepo, postRepo, followRepo, feedCache, nil)

	r := chi.NewRouter()

	r.Use(chiMiddleware.Logger)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.RequestID)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Content-Type"},
		AllowCredentials: false,
		MaxAge:           300,
	}))

	// Rate limiting: 100 requests per minute per IP
	rateLimiter := middleware.NewRateLimiter(100, 1*time.Minute)
	r.Use(rateLimiter.Middleware)

	routes.RegisterFeedRoutes(r, feedService, sessionAuth)
	routes.RegisterPostRoutes(r, postService, commentService, sessionAuth)
	routes.RegisterCommentRoutes(r, commentService, sessionAuth)
	routes.RegisterFollowRoutes(r, followService, sessionAuth)
	routes.RegisterAuthRoutes(r, userRepo, sessionAuth)

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	fmt.Printf("Scribe starting on port %s\n", cfg.Port)
	log.Fatal(http.ListenAndServe(":"+cfg.Port, r))
}
