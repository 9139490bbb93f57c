package main

import (
	"fmt"
	"log"

	"github.com/gin-gonic/gin"

	"github.com/Nagesh2809/cafe-management/configs"
	"github.com/Nagesh2809/cafe-management/middlewares"
	"github.com/Nagesh2809/cafe-management/routes"
)

func main() {
	cfg := configs.LoadConfig()

	// DB
	if err := configs.Connect(cfg); err != nil {
		log.Fatalf("database connect failed: %v", err)
	}
	defer configs.Close()

	// migrate
	if err := configs.SetupDatabase(); err != nil {
		log.Fatalf("migrate failed: %v", err)
	}

	if err := configs.SeedAdmin(cfg); err != nil {
		log.Fatalf("seed admin failed: %v", err)
	}
	if err := configs.SeedMenu(); err != nil {
		log.Fatalf("seed menu failed: %v", err)
	}

	// HTTP
	r := gin.Default()
	r.Use(middlewares.CORSMiddleware())
	routes.RegisterRoutes(r, configs.DB(), cfg)

	addr := fmt.Sprintf(":%s", cfg.Port)
	log.Println("server running at", addr)
	if err := r.Run(addr); err != nil {
		log.Fatal(err)
	}
}
