// Package logger configures the application's logging, monitoring, and
// observability.
//
// It uses *ZeroLog* for logging and integrates with *New Relic* to
// instrument the codebase, forwarding logs, metrics, and traces for
// debugging
package logger

import (
	"io"
	"os"
	"time"

	"github.com/newrelic/go-agent/v3/integrations/logcontext-v2/zerologWriter"
	"github.com/newrelic/go-agent/v3/newrelic"
	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/pkgerrors"

	"github.com/fleetlink/connectedcar/internal/config"
)

// LoggerService owns the New Relic application instance. When New Relic
// is not configured the service still exists but holds a nil app, and
// everything downstream degrades to plain local logging.
type LoggerService struct {
	nrApp *newrelic.Application
}

// NewLoggerService initializes the New Relic agent from config. An
// empty license key disables the agent without failing startup.
func NewLoggerService(cfg *config.Config) (*LoggerService, error) {
	obs := cfg.Observability
	if obs.NewRelic.LicenseKey == "" {
		return &LoggerService{}, nil
	}

	app, err := newrelic.NewApplication(
		newrelic.ConfigAppName(obs.ServiceName),
		newrelic.ConfigLicense(obs.NewRelic.LicenseKey),
		newrelic.ConfigAppLogForwardingEnabled(obs.NewRelic.AppLogForwardingEnabled),
		newrelic.ConfigDistributedTracerEnabled(obs.NewRelic.DistributedTracingEnabled),
		func(c *newrelic.Config) {
			c.Labels = map[string]string{"env": obs.Environment}
		},
	)
	if err != nil {
		return nil, errors.Wrap(err, "initialize new relic")
	}
	return &LoggerService{nrApp: app}, nil
}

// GetApplication returns the New Relic application, or nil when the
// agent is disabled.
func (ls *LoggerService) GetApplication() *newrelic.Application {
	return ls.nrApp
}

// Shutdown flushes pending telemetry. Safe to call when the agent is
// disabled.
func (ls *LoggerService) Shutdown(timeout time.Duration) {
	if ls.nrApp != nil {
		ls.nrApp.Shutdown(timeout)
	}
}

// New builds the application's root logger from config.
//
// Format "console" gets a human-friendly writer for local development.
// Otherwise logs are JSON, and when log forwarding is enabled they are
// also shipped to New Relic with trace correlation via zerologWriter.
func New(cfg *config.Config, loggerService *LoggerService) *zerolog.Logger {
	// Error stacks are marshaled from github.com/pkg/errors wrapped
	// values wherever the .Stack() event method is used.
	zerolog.ErrorStackMarshaler = pkgerrors.MarshalStack

	level, err := zerolog.ParseLevel(cfg.Observability.GetLogLevel())
	if err != nil {
		level = zerolog.InfoLevel
	}

	var out io.Writer = os.Stdout
	if cfg.Observability.Logging.Format == "console" {
		out = zerolog.ConsoleWriter{Out: os.Stdout}
	} else if loggerService != nil && loggerService.GetApplication() != nil &&
		cfg.Observability.NewRelic.AppLogForwardingEnabled {
		out = zerologWriter.New(os.Stdout, loggerService.GetApplication())
	}

	logger := zerolog.New(out).
		Level(level).
		With().
		Timestamp().
		Str("service", cfg.Observability.ServiceName).
		Str("env", cfg.Observability.Environment).
		Logger()
	return &logger
}

// WithTraceContext returns a child logger carrying the transaction's
// trace and span ids so log lines correlate with distributed traces.
func WithTraceContext(logger zerolog.Logger, txn *newrelic.Transaction) zerolog.Logger {
	if txn == nil {
		return logger
	}
	md := txn.GetTraceMetadata()
	builder := logger.With()
	if md.TraceID != "" {
		builder = builder.Str("trace.id", md.TraceID)
	}
	if md.SpanID != "" {
		builder = builder.Str("span.id", md.SpanID)
	}
	return builder.Logger()
}
