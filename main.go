package main

import (
	"fmt"
	"log"
	"os"

	"github.com/JackSmith111977/Yisu-Hotel-Booking-Platform-PC/configs"
	"github.com/JackSmith111977/Yisu-Hotel-Booking-Platform-PC/middlewares"
	"github.com/JackSmith111977/Yisu-Hotel-Booking-Platform-PC/pkg/logger"
	"github.com/JackSmith111977/Yisu-Hotel-Booking-Platform-PC/routes"

	"github.com/gin-gonic/gin"
)

func main() {
	cfg := configs.LoadConfig()

	if err := logger.Init(os.Getenv("GIN_MODE") != "release"); err != nil {
		log.Fatalf("init logger failed: %v", err)
	}
	defer logger.Sync()

	// DB
	configs.ConnectionDB(cfg.DBSource)
	db := configs.DB()

	// migrate
	configs.SetupDatabase()

	if err := configs.SeedAdmin(); err != nil {
		log.Fatalf("seed admin failed: %v", err)
	}

	// HTTP
	r := gin.Default()
	r.Use(middlewares.CORSMiddleware())

	routes.RegisterRoutes(r, db, cfg)

	addr := fmt.Sprintf(":%s", cfg.Port)
	log.Println("server running at", addr)
	if err := r.Run(addr); err != nil {
		log.Fatal(err)
	}
}
