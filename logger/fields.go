package logger

import (
	"context"

	"go.uber.org/zap"
)

// Standard field names for structured logging across packgen.
// Use these constants instead of raw strings to keep keys consistent.
const (
	// Identity and context
	FieldRunID     = "run_id"
	FieldComponent = "component"

	// Generation
	FieldPack     = "pack"
	FieldName     = "name"
	FieldArity    = "arity"
	FieldKey      = "key"
	FieldMethods  = "methods"
	FieldGroups   = "groups"
	FieldWinner   = "winner"
	FieldShadowed = "shadowed"

	// Files and paths
	FieldFile    = "file"
	FieldLine    = "line"
	FieldPath    = "path"
	FieldSrcDir  = "src_dir"
	FieldDestDir = "dest_dir"

	// Timing and counts
	FieldDuration = "duration"
	FieldCount    = "count"

	// Errors
	FieldError = "error"
)

// Context keys for propagating logging context
type contextKey string

const (
	runIDKey     contextKey = "logger_run_id"
	componentKey contextKey = "logger_component"
)

// WithRunID adds a generation run ID to the context for logging
func WithRunID(ctx context.Context, runID string) context.Context {
	return context.WithValue(ctx, runIDKey, runID)
}

// WithComponent adds a component name to the context for logging
func WithComponent(ctx context.Context, component string) context.Context {
	return context.WithValue(ctx, componentKey, component)
}

// FieldsFromContext extracts logging fields from context.
// Returns key-value pairs suitable for use with Infow/Errorw/etc.
func FieldsFromContext(ctx context.Context) []interface{} {
	var fields []interface{}

	if runID, ok := ctx.Value(runIDKey).(string); ok && runID != "" {
		fields = append(fields, FieldRunID, runID)
	}
	if component, ok := ctx.Value(componentKey).(string); ok && component != "" {
		fields = append(fields, FieldComponent, component)
	}

	return fields
}

// LoggerFromContext returns a logger carrying the run_id and component found in ctx.
func LoggerFromContext(ctx context.Context) *zap.SugaredLogger {
	fields := FieldsFromContext(ctx)
	if len(fields) == 0 {
		return Logger
	}
	return Logger.With(fields...)
}
