package middleware

import (
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/VictoriaMetrics/metrics"
	"github.com/danielgtaylor/huma/v2"
)

// Metrics counts requests and records their duration in set, labelled by
// method, path template and status.
func Metrics(set *metrics.Set) func(huma.Context, func(huma.Context)) {
	type meters struct {
		requests *metrics.Counter
		duration *metrics.Histogram
	}

	var (
		refs   sync.Map
		create sync.Mutex
	)

	return func(ctx huma.Context, next func(huma.Context)) {
		op, start := ctx.Operation(), time.Now()
		next(ctx)

		uid := op.OperationID + http.StatusText(ctx.Status())
		val, ok := refs.Load(uid)
		if !ok {
			create.Lock()
			val, ok = refs.Load(uid)
			if !ok {
				labels := `{method="` + op.Method + `",path="` + op.Path + `",status="` + strconv.Itoa(ctx.Status()) + `"}`
				val = meters{
					requests: set.NewCounter("http_requests_total" + labels),
					duration: set.NewHistogram("http_request_duration_seconds" + labels),
				}
				refs.Store(uid, val)
			}
			create.Unlock()
		}
		m := val.(meters)
		m.requests.Inc()
		m.duration.UpdateDuration(start)
	}
}
