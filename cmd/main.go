package main

import (
	"context"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"hosteltrack/backend/internal/api/handler"
	"hosteltrack/backend/internal/config"
	"hosteltrack/backend/internal/ledger"
	"hosteltrack/backend/internal/repo"
	"hosteltrack/backend/internal/seed"
	"hosteltrack/backend/internal/session"
	"hosteltrack/backend/internal/store"
	applogger "hosteltrack/backend/pkg/logger"
)

func buildStore(cfg config.Config, zlog *zap.Logger) store.Store {
	switch cfg.StoreDriver {
	case "postgres":
		db, err := gorm.Open(postgres.Open(cfg.PostgresDSN), &gorm.Config{})
		if err != nil {
			log.Fatalf("Failed to connect PostgreSQL: %v", err)
		}
		st, err := store.NewGormStore(db)
		if err != nil {
			log.Fatalf("Failed to run migrations: %v", err)
		}
		zlog.Info("store ready", zap.String("driver", "postgres"))
		return st
	default:
		rdb := redis.NewClient(&redis.Options{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
			DB:       cfg.RedisDB,
		})
		if _, err := rdb.Ping(context.Background()).Result(); err != nil {
			log.Fatalf("Failed to connect Redis: %v", err)
		}
		zlog.Info("store ready", zap.String("driver", "redis"))
		return store.NewRedisStore(rdb)
	}
}

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: Error loading .env file")
	}

	cfg := config.FromEnv()

	zlog, err := applogger.New(cfg.LogLevel, cfg.LogFormat)
	if err != nil {
		log.Fatalf("Failed to build logger: %v", err)
	}
	defer zlog.Sync()

	// Dependencies
	st := buildStore(cfg, zlog)
	repos := repo.New(st, zlog)

	// One-time population of rooms, cleaning schedule and sample complaints.
	seed.Run(repos)

	led := ledger.NewService(repos, zlog)
	sessions := session.NewManager(cfg.JWTSecret)
	h := handler.NewHandler(led, sessions, zlog)

	// Router
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(handler.RequestLogger(zlog))
	r.Use(h.ProfileExtractor())
	h.RegisterRoutes(r)

	server := &http.Server{
		Addr:           cfg.ListenAddr,
		Handler:        r,
		ReadTimeout:    10 * time.Second,
		WriteTimeout:   10 * time.Second,
		MaxHeaderBytes: 1 << 20,
	}

	zlog.Info("listening", zap.String("addr", cfg.ListenAddr))
	log.Fatal(server.ListenAndServe())
}
