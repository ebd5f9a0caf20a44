package main

import (
	"fmt"
	"log"

	"github.com/gin-gonic/gin"
	"github.com/karimovdostonbek1992-commits/KAMRON-city/configs"
	"github.com/karimovdostonbek1992-commits/KAMRON-city/routes"
	"github.com/karimovdostonbek1992-commits/KAMRON-city/ws"
)

func main() {
	cfg := configs.LoadConfig()

	// DB (in-memory by default; everything is reseeded on start)
	configs.ConnectionDB(cfg.DBSource)
	configs.SetupDatabase()

	if err := configs.SeedCatalog(); err != nil {
		log.Fatalf("seed catalog failed: %v", err)
	}
	if err := configs.SeedSales(); err != nil {
		log.Fatalf("seed sales failed: %v", err)
	}
	if err := configs.SeedDevices(); err != nil {
		log.Fatalf("seed devices failed: %v", err)
	}

	hub := ws.NewOrderHub()
	go hub.Run()

	r := gin.Default()
	routes.RegisterRoutes(r, configs.DB(), cfg, hub)

	addr := fmt.Sprintf(":%s", cfg.Port)
	log.Println("listening on", addr)
	if err := r.Run(addr); err != nil {
		log.Fatal(err)
	}
}
