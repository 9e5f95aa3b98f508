package main

import (
	"context"
	"log"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"github.com/YT-Kowshick/Women-Safety-Ai/internal/config"
	"github.com/YT-Kowshick/Women-Safety-Ai/internal/controllers"
	"github.com/YT-Kowshick/Women-Safety-Ai/internal/database"
	"github.com/YT-Kowshick/Women-Safety-Ai/internal/services"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	// Connect to the database
	db, err := database.Connect(cfg)
	if err != nil {
		log.Fatalf("failed to connect to database: %v", err)
	}

	// Load the reference dataset once; everything after this point is
	// read-only and served from memory.
	dataset, err := services.LoadDataset(context.Background(), db)
	if err != nil {
		log.Fatalf("failed to load reference dataset: %v", err)
	}
	log.Printf("loaded reference data for %d states", len(dataset.States()))

	// Services
	scoreSvc := services.NewScoreService(dataset)
	trendSvc := services.NewTrendService(dataset)
	leaderboardSvc := services.NewLeaderboardService(dataset)
	sosSvc := services.NewSOSService()

	// Controllers
	healthCtrl := controllers.NewHealthController()
	predictCtrl := controllers.NewPredictController(scoreSvc)
	trendsCtrl := controllers.NewTrendsController(trendSvc)
	leaderboardCtrl := controllers.NewLeaderboardController(leaderboardSvc)
	sosCtrl := controllers.NewSOSController(sosSvc)

	// Echo setup
	e := echo.New()
	e.HideBanner = true
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	e.Use(middleware.CORS())
	e.Validator = controllers.NewValidator()

	// Routes are registered at the root, matching the documented surface.
	api := e.Group("")
	healthCtrl.Register(api)
	predictCtrl.Register(api)
	trendsCtrl.Register(api)
	leaderboardCtrl.Register(api)
	sosCtrl.Register(api)

	e.Logger.Fatal(e.Start(":" + cfg.ServerPort))
}
