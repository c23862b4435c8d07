package logger

import (
	"airbnc/config"
	"context"
	"io"
	"os"
	"time"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

const (
	defaultServiceName = "airbnc"
	fieldRequestID     = "request_id"
)

// InitLogger installs the global zerolog logger. Production writes JSON lines,
// every other environment gets the human readable console writer.
func InitLogger(cfg *config.Config) {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	zerolog.SetGlobalLevel(zerolog.TraceLevel)

	var output io.Writer = zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: time.RFC3339}
	if cfg != nil && cfg.IsProduction() {
		output = os.Stdout
	}

	log.Logger = log.Output(output).With().Str("service", serviceName(cfg)).Logger()
	log.Trace().Msg("Zerolog initialized.")
}

func serviceName(cfg *config.Config) string {
	if cfg == nil || cfg.App.Name == "" {
		return defaultServiceName
	}

	return cfg.App.Name
}

// WithRequestID stores a child of the global logger that stamps every line
// with the request id.
func WithRequestID(ctx context.Context, requestID string) context.Context {
	l := log.With().Str(fieldRequestID, requestID).Logger()

	return l.WithContext(ctx)
}

// Ctx returns the request logger from ctx, falling back to the global one.
func Ctx(ctx context.Context) *zerolog.Logger {
	if l := zerolog.Ctx(ctx); l.GetLevel() != zerolog.Disabled {
		return l
	}

	return &log.Logger
}

func ErrorWithStack(err error) {
	log.Error().Msgf("%+v", errors.WithStack(err))
}

func SetLogLevel(cfg *config.Config) {
	level, err := zerolog.ParseLevel(cfg.Server.LogLevel)
	if err != nil {
		level = zerolog.TraceLevel
		log.Trace().Str("loglevel", level.String()).Msg("Environment has no log level set up, using default.")
	} else {
		log.Trace().Str("loglevel", level.String()).Msg("Desired log level detected.")
	}

	zerolog.SetGlobalLevel(level)
}
