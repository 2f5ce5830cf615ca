package main

import (
	"context"
	"fmt"
	"log"
	"time"

	"nunis-api/configs"
	"nunis-api/middlewares"
	"nunis-api/poll"
	"nunis-api/repository"
	"nunis-api/routes"
	"nunis-api/ws"

	"github.com/gin-gonic/gin"
)

func main() {
	cfg := configs.LoadConfig()

	// DB
	configs.ConnectionDB(cfg)
	db := configs.DB()
	configs.SetupDatabase()

	if err := configs.SeedAdmin(); err != nil {
		log.Fatalf("seed admin failed: %v", err)
	}
	if err := configs.SeedLookups(); err != nil {
		log.Fatalf("seed lookups failed: %v", err)
	}

	// Live order notifications
	hub := ws.NewOrderHub()
	go hub.Run()

	transactionRepo := repository.NewTransactionRepository(db)
	watcher := &poll.Watcher{
		Interval: 10 * time.Second,
		Fetch:    transactionRepo.Snapshots,
		OnChange: hub.NotifyOrders,
	}
	go watcher.Run(context.Background())

	// HTTP
	r := gin.Default()
	r.Use(middlewares.CORSMiddleware())

	routes.RegisterRoutes(r, db, cfg, hub)

	addr := fmt.Sprintf(":%s", cfg.Port)
	log.Println("server running at", addr)
	if err := r.Run(addr); err != nil {
		log.Fatal(err)
	}
}
