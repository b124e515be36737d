package vbind

import (
	"log/slog"

	"go.opentelemetry.io/otel/trace"

	"github.com/vango-dev/vbind/pkg/bind"
	"github.com/vango-dev/vbind/pkg/reactive"
	"github.com/vango-dev/vbind/pkg/view"
)

// Data is the reactive data record handed to methods.
type Data = reactive.Store

// Method is a click handler resolved by click-action annotations.
// It receives the data record as its explicit context.
type Method = bind.Method

// Config configures an Engine.
type Config struct {
	// Root is the root of the view tree to bind. Required.
	Root view.Node

	// Data is the flat record to make reactive. Values must be scalars:
	// strings, numbers, booleans, or nil. Every field the tree references
	// must be present.
	Data map[string]any

	// Methods is the method table for click-action annotations.
	Methods map[string]Method

	// Logger is the structured logger for the engine.
	// If nil, slog.Default() is used.
	Logger *slog.Logger

	// Metrics records engine activity. If nil, nothing is recorded.
	Metrics *Metrics

	// Tracer creates spans for binding and event dispatch.
	// If nil, the global OpenTelemetry tracer provider is used.
	Tracer trace.Tracer
}
