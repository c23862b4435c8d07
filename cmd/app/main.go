package main

import (
	"airbnc/config"
	"airbnc/di"
	"airbnc/helper"
	"airbnc/shared/logger"
	"airbnc/shared/timezone"

	"github.com/rs/zerolog/log"
)

//	@title			AirBNC API
//	@version		1.0
//	@description	Property rental marketplace: listings, reviews, bookings and users.
//	@BasePath		/

func main() {
	cfg := config.Get()

	logger.InitLogger(cfg)

	logger.SetLogLevel(cfg)

	if err := timezone.Init(cfg.App.Timezone); err != nil {
		log.Warn().Err(err).Msg("Falling back to UTC")
	}

	if cfg.DB.Postgres.AutoMigrate {
		if err := helper.Up(cfg); err != nil {
			log.Fatal().Err(err).Msg("Failed to run database migrations")
		}
	}

	http, cleanup, err := di.InitializeService()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to initialize service")
	}
	defer cleanup()

	http.Serve()
}
