package main

import (
	"context" // context package is needed for the Redis ping
	"log"     // log package is needed for logging

	"github.com/Sbonga74/sg-bank-web-app/internal/api"     // Custom package for HTTP handlers
	"github.com/Sbonga74/sg-bank-web-app/internal/config"  // Custom package for configuration
	"github.com/Sbonga74/sg-bank-web-app/internal/session" // Custom package for session storage

	"github.com/gin-gonic/gin"     // Gin web framework
	"github.com/redis/go-redis/v9" // Redis client
	"github.com/sirupsen/logrus"   // Logrus for structured logging
	"gorm.io/driver/mysql"         // MySQL driver for GORM
	"gorm.io/gorm"                 // GORM ORM library
)

// Main function to set up and run the server
func main() {
	cfg := config.LoadConfig() // Load configuration

	// Setup logger
	logrus.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})

	// Connect to the database
	db, err := gorm.Open(mysql.Open(cfg.DSN()), &gorm.Config{})
	if err != nil {
		logrus.Fatalf("failed to connect to DB: %v", err) // Fatal error if DB connection fails
	}

	// Pick the session backend: Redis in production, in-memory for development
	var sessions session.Store
	switch cfg.SessionBackend {
	case "memory":
		sessions = session.NewMemoryStore(cfg.SessionTTL)
	default:
		redisClient := redis.NewClient(&redis.Options{
			Addr:     cfg.RedisAddr, // Redis server address
			Password: cfg.RedisPass, // Redis password
			DB:       cfg.RedisDB,   // Redis database number
		})
		// Test Redis connection
		if _, err := redisClient.Ping(context.Background()).Result(); err != nil {
			logrus.Fatalf("failed to connect to Redis: %v", err)
		}
		sessions = session.NewRedisStore(redisClient, cfg.SessionTTL)
	}

	// Set Mode to Release if in production
	if cfg.IsProd {
		gin.SetMode(gin.ReleaseMode)
	}

	// Build the router with all routes and templates
	r, err := api.NewRouter(db, sessions, cfg)
	if err != nil {
		logrus.Fatalf("failed to build router: %v", err)
	}

	log.Println("Server running on " + cfg.AppPort) // Log server start
	r.Run(":" + cfg.AppPort)                        // Start the server on port cfg.AppPort
}
