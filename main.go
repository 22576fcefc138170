package main

import (
	"fmt"
	"log"

	"watchpost/internal/config"
	"watchpost/internal/execx"
	"watchpost/internal/routes"
	"watchpost/internal/services"

	"github.com/gin-gonic/gin"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("could not load configuration: %v", err)
	}

	r := gin.Default()

	collector := services.NewCollector(cfg.Probes, execx.NewOSRunner())
	routes.RegisterStatusRoutes(r, cfg.BearerToken, collector)

	log.Printf("Server running on http://localhost:%d", cfg.Port)
	if err := r.Run(fmt.Sprintf("0.0.0.0:%d", cfg.Port)); err != nil {
		log.Fatalf("server exited: %v", err)
	}
}
