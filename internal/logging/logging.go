// Package logging builds the zap loggers used by the CLI and server.
package logging

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/seanhalberthal/decomment/internal/filter"
)

// New returns a development-style logger writing to stderr. Verbose
// enables debug output, which includes state transitions.
func New(verbose bool) (*zap.SugaredLogger, error) {
	cfg := zap.NewDevelopmentConfig()
	cfg.OutputPaths = []string{"stderr"}
	cfg.ErrorOutputPaths = []string{"stderr"}
	cfg.DisableStacktrace = true
	cfg.Level = zap.NewAtomicLevelAt(zapcore.InfoLevel)
	if verbose {
		cfg.Level.SetLevel(zapcore.DebugLevel)
	}

	logger, err := cfg.Build()
	if err != nil {
		return nil, err
	}
	return logger.Sugar(), nil
}

// Nop returns a logger that discards everything.
func Nop() *zap.SugaredLogger {
	return zap.NewNop().Sugar()
}

// StateTracer logs each filter state transition at debug level.
func StateTracer(log *zap.SugaredLogger) filter.Tracer {
	return func(from, to filter.State) {
		log.Debugw("state transition", "from", from.String(), "to", to.String())
	}
}
