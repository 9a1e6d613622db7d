package tracing

import (
	"context"
	"testing"

	"go.opencensus.io/trace"

	"github.com/leadpulse/leadpulse/config"
)

func TestInitTracing_Disabled(t *testing.T) {
	cfg := &config.TracingConfig{
		Enabled: false,
	}

	err := InitTracing(cfg)
	if err != nil {
		t.Fatalf("Expected no error when tracing is disabled, got: %v", err)
	}
}

func TestInitTracing_WithInvalidExporter(t *testing.T) {
	cfg := &config.TracingConfig{
		Enabled:       true,
		TraceExporter: "invalid",
	}

	err := InitTracing(cfg)
	if err == nil {
		t.Error("Expected error with invalid exporter, got nil")
	}
}

func TestInitTracing_JaegerWithoutEndpoint(t *testing.T) {
	cfg := &config.TracingConfig{
		Enabled:       true,
		TraceExporter: "jaeger",
	}

	err := InitTracing(cfg)
	if err == nil {
		t.Error("Expected error when Jaeger endpoint is missing, got nil")
	}
}

func TestInitTracing_ZipkinWithoutEndpoint(t *testing.T) {
	cfg := &config.TracingConfig{
		Enabled:       true,
		TraceExporter: "zipkin",
	}

	err := InitTracing(cfg)
	if err == nil {
		t.Error("Expected error when Zipkin endpoint is missing, got nil")
	}
}

func TestInitMetricsExporters_WithInvalidExporter(t *testing.T) {
	cfg := &config.TracingConfig{
		Enabled:         true,
		MetricsExporter: "invalid",
	}

	err := initMetricsExporters(cfg)
	if err == nil {
		t.Error("Expected error with invalid metrics exporter, got nil")
	}
}

func TestInitMetricsExporters_Disabled(t *testing.T) {
	cfg := &config.TracingConfig{
		Enabled:         true,
		MetricsExporter: "none",
	}

	err := initMetricsExporters(cfg)
	if err != nil {
		t.Fatalf("Expected no error when metrics are disabled, got: %v", err)
	}
}

func TestStartSpan(t *testing.T) {
	ctx := context.Background()

	newCtx, span := StartSpan(ctx, "test-span")
	if span == nil {
		t.Fatal("Expected span to be created")
	}
	if newCtx == ctx {
		t.Error("Expected new context to be different from original")
	}

	span.End()
}

func TestStartSpanWithAttributes(t *testing.T) {
	ctx := context.Background()

	attrs := []trace.Attribute{
		trace.StringAttribute("key1", "value1"),
		trace.Int64Attribute("key2", 123),
	}

	newCtx, span := StartSpanWithAttributes(ctx, "test-span", attrs...)
	if span == nil {
		t.Fatal("Expected span to be created")
	}
	if newCtx == ctx {
		t.Error("Expected new context to be different from original")
	}

	span.End()
}
