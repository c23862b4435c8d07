package handler

import (
	"airbnc/config"
	"airbnc/di"
	"airbnc/shared/logger"
	"airbnc/shared/timezone"
	"net/http"
	"sync"

	"github.com/rs/zerolog/log"
)

var (
	once    sync.Once
	app     http.Handler
	initErr error
)

// Handler is the serverless entrypoint. The service graph is built once per
// instance and reused across invocations.
func Handler(w http.ResponseWriter, r *http.Request) {
	r.RequestURI = r.URL.String()

	once.Do(func() {
		cfg := config.Get()

		logger.InitLogger(cfg)

		logger.SetLogLevel(cfg)

		if err := timezone.Init(cfg.App.Timezone); err != nil {
			log.Warn().Err(err).Msg("Falling back to UTC")
		}

		app, _, initErr = di.InitializeService()
	})

	if initErr != nil {
		log.Error().Err(initErr).Msg("Failed to initialize service")
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)

		return
	}

	app.ServeHTTP(w, r)
}
