package stix

import (
	"log/slog"
	"time"

	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"

	"github.com/zero-day-ai/stix/objects"
)

// GeneratorOption configures a Generator.
type GeneratorOption func(*generatorConfig)

// generatorConfig holds configuration for a Generator instance.
type generatorConfig struct {
	identity      *objects.Identity
	logger        *slog.Logger
	tracer        trace.Tracer
	meterProvider metric.MeterProvider
}

// WithIdentity sets the identity cited as the creator of every generated
// object. If not provided, a default system identity is created for the
// session.
func WithIdentity(identity *objects.Identity) GeneratorOption {
	return func(c *generatorConfig) {
		c.identity = identity
	}
}

// WithIdentityName creates an organization-class identity with the given
// name and uses it as the session creator.
func WithIdentityName(name string) GeneratorOption {
	return func(c *generatorConfig) {
		c.identity = objects.NewIdentity(name, objects.IdentityClassOrganization, "")
	}
}

// WithLogger sets a custom logger for skip-and-continue diagnostics.
// If not provided, a default logger will be created.
func WithLogger(logger *slog.Logger) GeneratorOption {
	return func(c *generatorConfig) {
		c.logger = logger
	}
}

// WithTracer sets an OpenTelemetry tracer for batch generation spans.
// Without it, tracing is a no-op.
func WithTracer(tracer trace.Tracer) GeneratorOption {
	return func(c *generatorConfig) {
		c.tracer = tracer
	}
}

// WithMeterProvider sets an OpenTelemetry meter provider for the generated
// object and skipped input counters. Without it, metrics are a no-op.
func WithMeterProvider(provider metric.MeterProvider) GeneratorOption {
	return func(c *generatorConfig) {
		c.meterProvider = provider
	}
}

// IndicatorOption configures a single indicator generation call.
type IndicatorOption func(*indicatorConfig)

// indicatorConfig holds the per-call generation options for indicators.
type indicatorConfig struct {
	labels      []string
	patternType objects.PatternType
	validFrom   *time.Time
	validUntil  *time.Time
	confidence  int
	description string
}

func defaultIndicatorConfig() indicatorConfig {
	return indicatorConfig{
		patternType: objects.PatternTypeSTIX,
		confidence:  75,
	}
}

// WithLabels sets the indicator labels. The default is
// {"malicious-activity"}.
func WithLabels(labels ...string) IndicatorOption {
	return func(c *indicatorConfig) {
		c.labels = labels
	}
}

// WithPatternType sets the pattern language tag. The default is stix.
func WithPatternType(patternType objects.PatternType) IndicatorOption {
	return func(c *indicatorConfig) {
		c.patternType = patternType
	}
}

// WithValidFrom opens the indicator validity window at the given time
// instead of the generation time.
func WithValidFrom(t time.Time) IndicatorOption {
	return func(c *indicatorConfig) {
		c.validFrom = &t
	}
}

// WithValidUntil closes the indicator validity window at the given time.
// The window is open-ended by default.
func WithValidUntil(t time.Time) IndicatorOption {
	return func(c *indicatorConfig) {
		c.validUntil = &t
	}
}

// WithConfidence sets the indicator confidence (0-100). The default is 75.
func WithConfidence(confidence int) IndicatorOption {
	return func(c *indicatorConfig) {
		c.confidence = confidence
	}
}

// WithDescription sets a free-text description on the indicator.
func WithDescription(description string) IndicatorOption {
	return func(c *indicatorConfig) {
		c.description = description
	}
}
