package stix

import (
	"bytes"
	"context"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"

	"github.com/zero-day-ai/stix/objects"
)

func TestWithIdentity(t *testing.T) {
	identity := objects.NewIdentity("External Feed", objects.IdentityClassOrganization, "upstream provider")
	gen := newTestGenerator(WithIdentity(identity))

	assert.Same(t, identity, gen.Identity())

	ind, err := gen.GenerateIndicator(context.Background(), "192.0.2.1")
	require.NoError(t, err)
	assert.Equal(t, identity.ID, ind.CreatedByRef)
}

func TestWithLogger_SkipWarnings(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))
	gen := NewGenerator(WithLogger(logger))

	_, err := gen.GenerateIndicators(context.Background(),
		strings.NewReader("192.0.2.1\nnot-an-ioc\n"))
	require.NoError(t, err)

	out := buf.String()
	assert.Contains(t, out, "unrecognized")
	assert.Contains(t, out, "not-an-ioc")
}

func TestWithTracer_RecordsBatchSpan(t *testing.T) {
	recorder := tracetest.NewSpanRecorder()
	provider := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(recorder))
	t.Cleanup(func() { _ = provider.Shutdown(context.Background()) })

	gen := newTestGenerator(WithTracer(provider.Tracer("test")))

	_, err := gen.GenerateIndicators(context.Background(),
		strings.NewReader("192.0.2.1\nevil.example.com\n"))
	require.NoError(t, err)

	spans := recorder.Ended()
	require.Len(t, spans, 1)
	assert.Equal(t, "Generator.GenerateIndicators", spans[0].Name())

	var counted bool
	for _, attr := range spans[0].Attributes() {
		if string(attr.Key) == "stix.indicators.generated" {
			counted = true
			assert.Equal(t, int64(2), attr.Value.AsInt64())
		}
	}
	assert.True(t, counted, "span should carry the generated count")
}

func TestDefaultsAreNoop(t *testing.T) {
	// No tracer, meter provider or logger configured: generation must
	// still work without panicking.
	gen := newTestGenerator()

	_, err := gen.GenerateIndicators(context.Background(),
		strings.NewReader("192.0.2.1\n"))
	require.NoError(t, err)
	assert.Len(t, gen.Objects(), 1)
}
