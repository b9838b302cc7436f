package main

import (
	"context"
	"log"

	"github.com/Vaujx/BAAC/internal/bootstrap"
	"github.com/Vaujx/BAAC/internal/config"
	"github.com/Vaujx/BAAC/internal/server"
	"github.com/Vaujx/BAAC/internal/tracer"
	"github.com/Vaujx/BAAC/pkg/database"
)

func main() {
	// 0. Initialize tracer (no-op unless OTEL_ENABLED)
	shutdownTracer := tracer.InitTracer()
	defer shutdownTracer(context.Background())

	// 1. Load configuration
	cfg := config.Load()

	// 2. Initialize database
	gormDB, err := database.NewGormDBFromDSN(cfg.Database.Connection)
	if err != nil {
		log.Panicf("Unable to connect to GORM DB: %v", err)
	}

	// 3. Bootstrap dependencies
	container := bootstrap.NewContainer(gormDB, cfg)

	// 4. Start background consumer
	go func() {
		log.Println("Background: Starting Consumer Service...")
		if err := container.ConsumerService.Consume(context.Background()); err != nil {
			log.Printf("Background Consumer Error: %v", err)
		}
	}()

	// 5. Run server
	srv := server.New(cfg, container)
	log.Fatal(srv.Run())
}
