package main

import (
	"fmt"
	"log"

	"github.com/GishenCBoraluwa/fisheries-management/configs"
	"github.com/GishenCBoraluwa/fisheries-management/middlewares"
	"github.com/GishenCBoraluwa/fisheries-management/pkg/openmeteo"
	"github.com/GishenCBoraluwa/fisheries-management/pkg/pricemodel"
	"github.com/GishenCBoraluwa/fisheries-management/repository"
	"github.com/GishenCBoraluwa/fisheries-management/routes"
	"github.com/GishenCBoraluwa/fisheries-management/scheduler"
	"github.com/GishenCBoraluwa/fisheries-management/services"
	"github.com/GishenCBoraluwa/fisheries-management/ws"

	"github.com/gin-gonic/gin"
)

func main() {
	cfg := configs.LoadConfig()

	// DB
	configs.ConnectionDB(cfg.DBSource)
	db := configs.DB()

	// migrate
	configs.SetupDatabase()

	if err := configs.SeedAdmin(); err != nil {
		log.Fatalf("seed admin failed: %v", err)
	}
	if err := configs.SeedLookups(); err != nil {
		log.Fatalf("seed lookups failed: %v", err)
	}

	// Background sync jobs
	weatherRepo := repository.NewWeatherRepository(db)
	fishRepo := repository.NewFishRepository(db)
	predictionRepo := repository.NewPredictionRepository(db)

	weatherService := services.NewWeatherService(weatherRepo, openmeteo.NewClient(cfg.WeatherAPIURL))
	predictionService := services.NewPredictionService(predictionRepo, fishRepo, weatherRepo, pricemodel.NewClient(cfg.PredictionAPIURL))

	sched := scheduler.New(weatherService.SyncAll, predictionService.SyncAll)
	sched.Start()

	// Live truck tracking
	hub := ws.NewTruckHub()
	go hub.Run()

	// HTTP
	r := gin.Default()
	r.Use(middlewares.CORSMiddleware())
	routes.RegisterRoutes(r, db, cfg, hub)

	// Start server
	addr := fmt.Sprintf(":%s", cfg.Port)
	log.Println("server running at", addr)
	if err := r.Run(addr); err != nil {
		log.Fatal(err)
	}
}
