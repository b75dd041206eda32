package obs

import (
	"context"
	"log/slog"
	"time"
)

type ctxKey string

const RequestIDKey ctxKey = "req_id"

// RequestID returns the request id stored in ctx, or "" outside a request.
func RequestID(ctx context.Context) string {
	id, _ := ctx.Value(RequestIDKey).(string)
	return id
}

// Time logs the duration of an outbound operation.
// Usage: defer obs.Time(ctx, "places.search")(&err)
func Time(ctx context.Context, name string) func(errp *error) {
	start := time.Now()

	reqID := RequestID(ctx)

	return func(errp *error) {
		dur := time.Since(start)

		if errp != nil && *errp != nil {
			slog.WarnContext(ctx, "operation failed",
				"req_id", reqID,
				"op", name,
				"dur_ms", dur.Milliseconds(),
				"err", *errp,
			)
			return
		}
		slog.DebugContext(ctx, "operation done",
			"req_id", reqID,
			"op", name,
			"dur_ms", dur.Milliseconds(),
		)
	}
}
