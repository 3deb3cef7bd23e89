package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"reelhire-backend/config"
	_ "reelhire-backend/docs" // Important for Swagger
	v1 "reelhire-backend/internal/delivery/http/v1"
	"reelhire-backend/internal/domain"
	"reelhire-backend/internal/repository/memory"
	"reelhire-backend/internal/repository/postgres"
	"reelhire-backend/internal/usecase"
	"reelhire-backend/pkg/auth"
	"reelhire-backend/pkg/blob"
	"reelhire-backend/pkg/database"
	"reelhire-backend/pkg/logger"
	"reelhire-backend/pkg/redis"
)

// repositories bundles every store behind the usecases, regardless of
// which driver backs them.
type repositories struct {
	Users        domain.UserRepository
	Videos       domain.VideoRepository
	Applications domain.ApplicationRepository
	Comments     domain.CommentRepository
	Messages     domain.MessageRepository
	Bookmarks    domain.BookmarkRepository
}

// @title           ReelHire API
// @version         1.0
// @description     Short-video job matching platform API.
// @host            localhost:8080
// @BasePath        /api
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	// 1. Load Config
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// 2. Setup Logger
	logger.Init()
	logger.Log.Info("Starting reelhire backend", "port", cfg.Port, "storage", cfg.StorageDriver)

	// 3. Setup Storage
	repos, cleanup, err := setupRepositories(cfg)
	if err != nil {
		logger.Log.Error("Failed to set up storage", "error", err)
		os.Exit(1)
	}
	defer cleanup()

	// 4. Setup Redis (optional, rate limiting falls back to in-memory)
	if err := redis.Initialize(redis.Config{URL: cfg.RedisURL, Password: cfg.RedisPassword}); err != nil {
		logger.Log.Warn("Redis unavailable, rate limiting uses in-memory fallback", "error", err)
	}
	defer redis.Close()

	// 5. Setup Blob Store (optional, uploads return 503 without it)
	var store blob.Store
	if cfg.S3AccessKeyID != "" {
		s3Store, err := blob.NewS3Store(context.Background(), blob.S3Config{
			AccessKeyID:     cfg.S3AccessKeyID,
			SecretAccessKey: cfg.S3SecretKey,
			Region:          cfg.S3Region,
			Endpoint:        cfg.S3Endpoint,
		})
		if err != nil {
			logger.Log.Error("Failed to set up object storage", "error", err)
			os.Exit(1)
		}
		store = s3Store
	} else {
		logger.Log.Warn("Object storage not configured - media uploads will be unavailable")
	}

	// 6. Setup UseCases
	authUC := usecase.NewAuthUsecase(repos.Users)
	videoUC := usecase.NewVideoUsecase(repos.Videos, repos.Users, repos.Comments)
	applicationUC := usecase.NewApplicationUsecase(repos.Applications, repos.Videos, repos.Users)
	messageUC := usecase.NewMessageUsecase(repos.Messages, repos.Users)
	bookmarkUC := usecase.NewBookmarkUsecase(repos.Bookmarks, repos.Videos)
	uploadUC := usecase.NewUploadUsecase(store, usecase.UploadBuckets{
		Video:     cfg.VideoBucket,
		Thumbnail: cfg.ThumbnailBucket,
		Avatar:    cfg.AvatarBucket,
	})

	// 7. Setup Session Tokens
	tokens := auth.NewTokenManager(cfg.JWTSecret, time.Duration(cfg.TokenTTLHours)*time.Hour)

	// 8. Setup Router
	router := v1.NewRouter(v1.RouterDeps{
		AuthUC:        authUC,
		VideoUC:       videoUC,
		ApplicationUC: applicationUC,
		MessageUC:     messageUC,
		BookmarkUC:    bookmarkUC,
		UploadUC:      uploadUC,
		Tokens:        tokens,
		Config:        cfg,
	})

	// 9. Start Server
	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: router,
	}

	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Log.Error("Listen failed", "error", err)
		}
	}()

	// Graceful Shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Log.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Log.Error("Server forced to shutdown", "error", err)
	}

	logger.Log.Info("Server exiting")
}

// setupRepositories builds the storage layer for the configured driver.
// The memory driver seeds demo data; the postgres driver runs pending
// migrations before serving.
func setupRepositories(cfg *config.Config) (*repositories, func(), error) {
	switch cfg.StorageDriver {
	case "postgres":
		pool, err := database.NewPostgresConnection(cfg.DBUrl)
		if err != nil {
			return nil, nil, err
		}
		if err := database.Migrate(context.Background(), pool); err != nil {
			pool.Close()
			return nil, nil, err
		}
		repos := &repositories{
			Users:        postgres.NewUserRepository(pool),
			Videos:       postgres.NewVideoRepository(pool),
			Applications: postgres.NewApplicationRepository(pool),
			Comments:     postgres.NewCommentRepository(pool),
			Messages:     postgres.NewMessageRepository(pool),
			Bookmarks:    postgres.NewBookmarkRepository(pool),
		}
		return repos, pool.Close, nil

	default:
		stores := memory.NewStores()
		if err := stores.Seed(context.Background()); err != nil {
			return nil, nil, err
		}
		repos := &repositories{
			Users:        stores.Users,
			Videos:       stores.Videos,
			Applications: stores.Applications,
			Comments:     stores.Comments,
			Messages:     stores.Messages,
			Bookmarks:    stores.Bookmarks,
		}
		return repos, func() {}, nil
	}
}
