package interfaces

import "context"

// TraceSink receives append-only diagnostic lines. Failures are never reported to the caller.
type TraceSink interface {
	Trace(ctx context.Context, message string)
}

// TraceReader returns the retained diagnostic lines of one run.
type TraceReader interface {
	Lines(ctx context.Context, traceID string) ([]string, error)
}
