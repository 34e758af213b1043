package middleware

import (
	"bytes"
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/VictoriaMetrics/metrics"
	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/humatest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dtroode/contactbook/internal/logger"
	"github.com/dtroode/contactbook/internal/testutil"
)

type echoOutput struct {
	Body struct {
		RequestID string `json:"request_id"`
		Deadline  bool   `json:"deadline"`
	}
}

func newTestAPI(t *testing.T, mws ...func(huma.Context, func(huma.Context))) humatest.TestAPI {
	t.Helper()
	_, api := humatest.New(t, huma.DefaultConfig("Test", "test"))
	api.UseMiddleware(mws...)

	huma.Register(api, huma.Operation{
		OperationID: "echo",
		Method:      http.MethodGet,
		Path:        "/echo",
	}, func(ctx context.Context, _ *struct{}) (*echoOutput, error) {
		out := &echoOutput{}
		out.Body.RequestID, _ = RequestIDFromContext(ctx)
		_, out.Body.Deadline = ctx.Deadline()
		logger.FromContext(ctx, testutil.MakeNoopLogger()).Info("inside handler")
		return out, nil
	})
	huma.Register(api, huma.Operation{
		OperationID: "panic",
		Method:      http.MethodGet,
		Path:        "/panic",
	}, func(context.Context, *struct{}) (*struct{}, error) {
		panic("panic argument")
	})
	return api
}

func TestRequestID(t *testing.T) {
	api := newTestAPI(t, RequestID())

	t.Run("keeps client id", func(t *testing.T) {
		resp := api.Get("/echo", HeaderRequestID+": abc-123")
		require.Equal(t, http.StatusOK, resp.Code)
		assert.Equal(t, "abc-123", resp.Header().Get(HeaderRequestID))
		assert.Contains(t, resp.Body.String(), `"request_id":"abc-123"`)
	})

	t.Run("generates missing id", func(t *testing.T) {
		resp := api.Get("/echo")
		require.Equal(t, http.StatusOK, resp.Code)
		id := resp.Header().Get(HeaderRequestID)
		assert.Len(t, id, 36)
		assert.Contains(t, resp.Body.String(), id)
	})
}

func TestLogging(t *testing.T) {
	var buf bytes.Buffer
	api := newTestAPI(t, RequestID(), Logging(logger.NewWithWriter(&buf, 0)))

	resp := api.Get("/echo", HeaderRequestID+": req-1")
	require.Equal(t, http.StatusOK, resp.Code)

	out := buf.String()
	assert.Contains(t, out, "inside handler")
	assert.Contains(t, out, "operation=echo")
	assert.Contains(t, out, "HTTP request served")
	assert.Contains(t, out, "request_id=req-1")
	assert.Contains(t, out, "status=200")
}

func TestRecover(t *testing.T) {
	var buf bytes.Buffer
	api := newTestAPI(t, Recover(logger.NewWithWriter(&buf, 0)))

	resp := api.Get("/panic")
	assert.Equal(t, http.StatusInternalServerError, resp.Code)
	assert.JSONEq(t, panicBody, resp.Body.String())
	assert.Contains(t, buf.String(), "panic occurred")
}

func TestTimeout(t *testing.T) {
	t.Run("sets a deadline", func(t *testing.T) {
		api := newTestAPI(t, Timeout(time.Second))
		resp := api.Get("/echo")
		assert.Contains(t, resp.Body.String(), `"deadline":true`)
	})

	t.Run("zero disables", func(t *testing.T) {
		api := newTestAPI(t, Timeout(0))
		resp := api.Get("/echo")
		assert.Contains(t, resp.Body.String(), `"deadline":false`)
	})
}

func TestMetrics(t *testing.T) {
	set := metrics.NewSet()
	api := newTestAPI(t, Metrics(set))

	api.Get("/echo")
	api.Get("/echo")

	var buf bytes.Buffer
	set.WritePrometheus(&buf)
	out := buf.String()

	assert.Contains(t, out, `http_requests_total{method="GET",path="/echo",status="200"} 2`)
	assert.Contains(t, out, `http_request_duration_seconds_bucket{method="GET",path="/echo",status="200",vmrange=`)
	assert.Contains(t, out, `http_request_duration_seconds_count{method="GET",path="/echo",status="200"} 2`)
}
