package main

import (
	"context"
	"flag"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"cafe-pos/config"
	"cafe-pos/database"
	"cafe-pos/middlewares"
	"cafe-pos/router"
	"cafe-pos/utils"
)

func main() {
	seed := flag.Bool("seed", false, "seed the database with a default admin, floor and catalog")
	flag.Parse()

	utils.InitLogger()

	if err := godotenv.Load(); err != nil {
		// Fine in production where env comes from the process manager.
		utils.InfoLogger.Println("No .env file found, using process environment")
	}

	if os.Getenv("GIN_MODE") == "release" {
		gin.SetMode(gin.ReleaseMode)
	}

	db, err := config.InitDB()
	if err != nil {
		utils.ErrorLogger.Fatalf("Failed to connect to database: %v", err)
	}

	if err := database.AutoMigrate(db); err != nil {
		utils.ErrorLogger.Fatalf("Failed to migrate: %v", err)
	}
	utils.InfoLogger.Println("AutoMigrate completed")

	if *seed {
		if err := database.Seed(db); err != nil {
			utils.ErrorLogger.Fatalf("Failed to seed: %v", err)
		}
	}

	r := router.SetupRouter(db)

	rateLimiter := middlewares.NewRateLimiter(50, 1)
	r.Use(rateLimiter.RateLimit())

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	srv := &http.Server{
		Addr:    ":" + port,
		Handler: r,
	}

	errCh := make(chan error, 1)
	go func() {
		utils.InfoLogger.Printf("Listening on port %s", port)
		errCh <- srv.ListenAndServe()
	}()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	select {
	case <-ctx.Done():
		utils.InfoLogger.Println("Shutting down...")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			utils.ErrorLogger.Printf("Server shutdown: %v", err)
		}
	case err := <-errCh:
		if err != nil && err != http.ErrServerClosed {
			utils.ErrorLogger.Fatalf("Server error: %v", err)
		}
	}

	if sqlDB, err := db.DB(); err == nil {
		if err := sqlDB.Close(); err != nil {
			utils.ErrorLogger.Printf("Closing database: %v", err)
		}
	}
	utils.InfoLogger.Println("Bye")
}
