// cmd/seedproducts/main.go — seeds a demo product catalog.
// Usage: go run cmd/seedproducts/main.go
package main

import (
	"context"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"

	"productstore/internal/config"
	"productstore/internal/infra"
	"productstore/internal/model"
	"productstore/internal/repository"
	"productstore/internal/service"
)

func main() {
	// Structured logger — dev: pretty, prod: JSON
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load config")
	}
	if lvl, err := zerolog.ParseLevel(cfg.LogLevel); err == nil {
		zerolog.SetGlobalLevel(lvl)
	}
	if cfg.Env == "production" {
		log.Logger = zerolog.New(os.Stderr).With().Timestamp().Logger()
	}

	db, err := infra.NewDatabase(cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to postgres")
	}

	products := service.NewProductService(repository.NewProductRepository(db), log.Logger)
	ctx := context.Background()

	existing, err := products.All(ctx)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to list products")
	}
	if len(existing) > 0 {
		log.Info().Int("count", len(existing)).Msg("catalog already seeded, nothing to do")
		return
	}

	demo := []model.Product{
		{Name: "Fedora", Description: "A red hat", Price: decimal.RequireFromString("12.50"), Available: true, Category: model.CategoryCloths},
		{Name: "Hat", Description: "A simple straw hat", Price: decimal.RequireFromString("8.00"), Available: true, Category: model.CategoryCloths},
		{Name: "Sheets", Description: "Full bed sheets", Price: decimal.RequireFromString("24.99"), Available: true, Category: model.CategoryHousewares},
		{Name: "Big Mac", Description: "1/4 lb burger", Price: decimal.RequireFromString("5.99"), Available: false, Category: model.CategoryFood},
		{Name: "Wrench", Description: "Adjustable 10 inch wrench", Price: decimal.RequireFromString("17.25"), Available: true, Category: model.CategoryTools},
		{Name: "Wiper Blades", Description: "22 inch frameless wiper blades", Price: decimal.RequireFromString("13.40"), Available: true, Category: model.CategoryAutomotive},
	}

	for i := range demo {
		if err := products.Create(ctx, &demo[i]); err != nil {
			log.Fatal().Err(err).Str("name", demo[i].Name).Msg("failed to seed product")
		}
	}
	log.Info().Int("count", len(demo)).Msg("demo catalog seeded")
}
