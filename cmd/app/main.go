package main

import (
	"context"

	"github.com/rs/zerolog/log"

	"roombook/config"
	"roombook/di"
	"roombook/shared/logger"
)

func main() {
	cfg := config.Get()

	logger.InitLogger()

	logger.SetLogLevel(cfg)

	app := di.InitializeApp()

	if err := app.Seeder.Load(context.Background()); err != nil {
		log.Fatal().Err(err).Msg("Failed to load seed data")
	}

	app.HTTP.Serve()
}
