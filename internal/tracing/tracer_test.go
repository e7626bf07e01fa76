package tracing

import (
	"bufio"
	"context"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
)

func TestNewProvider_Disabled(t *testing.T) {
	provider, err := NewProvider(Config{Enabled: false})
	require.NoError(t, err)
	require.False(t, provider.Enabled())

	ctx, span := provider.Tracer().Start(context.Background(), "noop")
	require.NotNil(t, ctx)
	require.False(t, span.SpanContext().IsValid(), "disabled tracer must not produce real spans")
	span.End()

	require.NoError(t, provider.Shutdown(context.Background()))
}

func TestNewProvider_FileExporterWritesJSONL(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "traces.jsonl")

	provider, err := NewProvider(Config{
		Enabled:    true,
		Exporter:   ExporterFile,
		FilePath:   path,
		SampleRate: 1.0,
	})
	require.NoError(t, err)
	require.True(t, provider.Enabled())

	_, span := StartClientSpan(context.Background(), provider.Tracer(), "list",
		attribute.String(AttrQuery, "species=howler"))
	EndSpan(span, nil)

	require.NoError(t, provider.Shutdown(context.Background()))

	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()

	scanner := bufio.NewScanner(f)
	require.True(t, scanner.Scan(), "expected one span line")

	var rec SpanRecord
	require.NoError(t, json.Unmarshal(scanner.Bytes(), &rec))
	require.Equal(t, "registry.list", rec.Name)
	require.Equal(t, "OK", rec.Status)
	require.Equal(t, "list", rec.Attributes[AttrOperation])
	require.Equal(t, "species=howler", rec.Attributes[AttrQuery])
}

func TestNewProvider_FileExporterNeedsPath(t *testing.T) {
	_, err := NewProvider(Config{Enabled: true, Exporter: ExporterFile})
	require.ErrorContains(t, err, "file_path")
}

func TestNewProvider_UnknownExporter(t *testing.T) {
	_, err := NewProvider(Config{Enabled: true, Exporter: "jaeger"})
	require.ErrorContains(t, err, "unsupported exporter type: jaeger")
}

func TestNewProvider_NoneExporter(t *testing.T) {
	provider, err := NewProvider(Config{Enabled: true, Exporter: ExporterNone})
	require.NoError(t, err)
	require.True(t, provider.Enabled())
	require.NoError(t, provider.Shutdown(context.Background()))
}

func TestEndSpan_RecordsError(t *testing.T) {
	recorder := tracetest.NewSpanRecorder()
	tp := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(recorder))
	tracer := tp.Tracer("test")

	_, span := StartClientSpan(context.Background(), tracer, "delete", attribute.String(AttrMonkeyID, "m-1"))
	EndSpan(span, errors.New("Monkey not found"))

	ended := recorder.Ended()
	require.Len(t, ended, 1)
	require.Equal(t, "registry.delete", ended[0].Name())
	require.Equal(t, codes.Error, ended[0].Status().Code)
	require.Equal(t, "Monkey not found", ended[0].Status().Description)
	require.Len(t, ended[0].Events(), 1, "error should be recorded as an event")
}

func TestStartClientSpan_NilTracer(t *testing.T) {
	ctx := context.Background()
	got, span := StartClientSpan(ctx, nil, "get")
	require.Equal(t, ctx, got)
	require.NotPanics(t, func() { EndSpan(span, nil) })
}

func TestFileExporter_ShutdownTwice(t *testing.T) {
	exp, err := NewFileExporter(filepath.Join(t.TempDir(), "t.jsonl"))
	require.NoError(t, err)
	require.NoError(t, exp.Shutdown(context.Background()))
	require.NoError(t, exp.Shutdown(context.Background()))
	require.Error(t, exp.ExportSpans(context.Background(), nil))
}
