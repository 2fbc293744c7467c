package main

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"github.com/joho/godotenv"

	"github.com/BruksfildServices01/fleet-manager/internal/auth"
	"github.com/BruksfildServices01/fleet-manager/internal/config"
	dbpkg "github.com/BruksfildServices01/fleet-manager/internal/db"
	"github.com/BruksfildServices01/fleet-manager/internal/logger"
	"github.com/BruksfildServices01/fleet-manager/internal/middleware"
	"github.com/BruksfildServices01/fleet-manager/internal/routes"
)

func main() {
	// Best-effort: the env file is a development convenience.
	_ = godotenv.Load()

	cfg, err := config.Load()
	log := logger.New("fleet-manager", envOrDefault(cfg))
	if err != nil {
		log.Fatalf("invalid configuration: %v", err)
	}

	tokens, err := auth.NewTokenService(cfg.JWTSecret)
	if err != nil {
		log.Fatalf("token service: %v", err)
	}

	db := dbpkg.NewDB(cfg, log)

	var rdb *redis.Client
	if cfg.RedisAddr != "" {
		rdb = redis.NewClient(&redis.Options{Addr: cfg.RedisAddr})
	}

	if cfg.Env != "development" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestIDMiddleware())
	r.Use(middleware.CORSMiddleware())

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	dispatcher := routes.RegisterRoutes(r, db, tokens, rdb, log)
	defer dispatcher.Close()

	log.Infof("Server running on %s", cfg.Addr())
	if err := r.Run(cfg.Addr()); err != nil {
		log.Fatalf("failed to start server: %v", err)
	}
}

func envOrDefault(cfg *config.Config) string {
	if cfg == nil {
		return "development"
	}
	return cfg.Env
}
