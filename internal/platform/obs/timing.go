package obs

import (
	"context"
	"log"
	"time"
)

type ctxKey string

// RequestIDKey carries the per-request correlation ID set by the API
// middleware; Time picks it up so lookup and quote timings can be
// joined back to their request log line.
const RequestIDKey ctxKey = "req_id"

// Time logs the duration and outcome of a named operation. Use with a
// named error return:
//
//	defer obs.Time(ctx, "rates.Quote")(&err)
func Time(ctx context.Context, name string) func(errp *error) {
	start := time.Now()

	reqID, _ := ctx.Value(RequestIDKey).(string)

	return func(errp *error) {
		dur := time.Since(start)

		if errp != nil && *errp != nil {
			log.Printf("req_id=%s op=%s dur=%dms err=%v", reqID, name, dur.Milliseconds(), *errp)
			return
		}
		log.Printf("req_id=%s op=%s dur=%dms", reqID, name, dur.Milliseconds())
	}
}
