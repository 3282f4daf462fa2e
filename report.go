package rowan

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Reporter is the process-wide sink for engine errors.
//
// Error receives recoverable conditions that were degraded to a safe result
// (a missing collision path outside a scene transition). Fatal receives
// invariant violations that indicate an engine or content bug; it must not
// return control to the caller.
type Reporter interface {
	Error(msg string, err error)
	Fatal(msg string, err error)
}

// zapReporter is the default Reporter, logging structured JSON to stderr.
// Fatal terminates the process via zap's fatal level.
type zapReporter struct {
	log *zap.Logger
}

func newZapReporter() *zapReporter {
	config := zap.Config{
		Level:            zap.NewAtomicLevelAt(zapcore.ErrorLevel),
		Encoding:         "json",
		EncoderConfig:    zap.NewProductionEncoderConfig(),
		OutputPaths:      []string{"stderr"},
		ErrorOutputPaths: []string{"stderr"},
		DisableCaller:    true,
	}
	log, err := config.Build()
	if err != nil {
		panic(err)
	}
	return &zapReporter{log: log}
}

func (r *zapReporter) Error(msg string, err error) {
	r.log.Error(msg, zap.Error(err))
}

func (r *zapReporter) Fatal(msg string, err error) {
	r.log.Fatal(msg, zap.Error(err))
}

// reporter is the active sink. Single-threaded like the rest of the core;
// swap it before the game loop starts.
var reporter Reporter = newZapReporter()

// SetReporter replaces the active error reporter and returns the previous
// one. Pass a custom Reporter to route engine errors into your own logging,
// or to capture them in tests.
func SetReporter(r Reporter) Reporter {
	if r == nil {
		panic("rowan: reporter must not be nil")
	}
	prev := reporter
	reporter = r
	return prev
}
