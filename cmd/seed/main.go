package main

import (
	"airbnc/config"
	"airbnc/helper"
	"airbnc/infras/otel"
	"airbnc/infras/postgres"
	"airbnc/infras/redis"
	"airbnc/internal/seed"
	"airbnc/shared/cache"
	"airbnc/shared/logger"
	"airbnc/shared/timezone"
	"fmt"
	"os"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

func main() {
	cfg := config.Get()

	logger.InitLogger(cfg)

	logger.SetLogLevel(cfg)

	var (
		env     string
		migrate bool
	)

	rootCmd := &cobra.Command{
		Use:          "seed",
		Short:        "Reload the database with fixture data",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := timezone.Init(cfg.App.Timezone); err != nil {
				log.Warn().Err(err).Msg("Falling back to UTC")
			}

			if migrate {
				if err := helper.Up(cfg); err != nil {
					return fmt.Errorf("migrate: %w", err)
				}
			}

			fx, err := seed.Load(env)
			if err != nil {
				return fmt.Errorf("load fixtures: %w", err)
			}

			db, cleanup, err := postgres.New(cfg)
			if err != nil {
				return fmt.Errorf("connect: %w", err)
			}
			defer cleanup()

			log.Info().Str("env", env).Str("data", seed.DataSet(env)).Msg("Seeding database")

			otl := otel.New(cfg)

			if err := seed.New(db, otl).Run(cmd.Context(), fx); err != nil {
				return err //nolint:wrapcheck
			}

			client, closeRedis, err := redis.New(cfg)
			if err != nil {
				log.Warn().Err(err).Msg("Seeded, but cached reads were not invalidated")

				return nil
			}
			defer closeRedis()

			seed.InvalidateCaches(cmd.Context(), cache.NewRedisCache(client, otl))

			return nil
		},
	}

	rootCmd.Flags().StringVarP(&env, "env", "e", cfg.Server.Env, "fixture set to load (test, development, production)")
	rootCmd.Flags().BoolVar(&migrate, "migrate", false, "run pending migrations before seeding")

	if err := rootCmd.Execute(); err != nil {
		log.Error().Err(err).Msg("Seeding failed")
		os.Exit(1)
	}
}
