// Package router assembles the REST API: operational endpoints on a plain
// mux and the directory operations as a huma group under /api.
package router

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/VictoriaMetrics/metrics"
	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/adapters/humago"

	"github.com/dtroode/contactbook/internal/api/rest/handler"
	"github.com/dtroode/contactbook/internal/api/rest/middleware"
	"github.com/dtroode/contactbook/internal/logger"
)

// Title is the API title published in the OpenAPI document.
const Title = "Contact Directory"

// ReadinessFunc reports whether the backing store can serve requests.
type ReadinessFunc func(ctx context.Context) error

// Router represents the REST router for the contact directory.
type Router struct {
	contactService  handler.ContactService
	snapshotService handler.SnapshotService
	readiness       ReadinessFunc
	requestTimeout  time.Duration
	version         string
	logger          *logger.Logger
}

// New creates a Router. snapshotService may be nil, in which case the
// snapshot operations are not registered.
func New(
	contactService handler.ContactService,
	snapshotService handler.SnapshotService,
	readiness ReadinessFunc,
	requestTimeout time.Duration,
	version string,
	logger *logger.Logger,
) *Router {
	return &Router{
		contactService:  contactService,
		snapshotService: snapshotService,
		readiness:       readiness,
		requestTimeout:  requestTimeout,
		version:         version,
		logger:          logger,
	}
}

// Config returns the huma configuration shared by the server and tests.
// Response bodies are kept free of $schema links.
func Config(version string) huma.Config {
	cfg := huma.DefaultConfig(Title, version)
	cfg.CreateHooks = nil
	return cfg
}

// Register builds the http.Handler serving every endpoint.
func (r *Router) Register() http.Handler {
	handler.ConfigureErrors()

	set := metrics.NewSet()

	mux := http.NewServeMux()
	mux.HandleFunc("/liveness", func(http.ResponseWriter, *http.Request) {})
	mux.HandleFunc("/readiness", r.handleReadiness)
	mux.HandleFunc("/metrics", func(w http.ResponseWriter, _ *http.Request) {
		set.WritePrometheus(w)
		metrics.WriteProcessMetrics(w)
	})

	root := humago.New(mux, Config(r.version))
	api := huma.NewGroup(root, "/api")
	api.UseMiddleware(
		middleware.RequestID(),
		middleware.Logging(r.logger),
		middleware.Metrics(set),
		middleware.Recover(r.logger),
		middleware.Timeout(r.requestTimeout),
	)

	handler.NewContact(r.contactService, r.logger).Register(api)
	if r.snapshotService != nil {
		handler.NewSnapshot(r.snapshotService, r.logger).Register(api)
	}

	return mux
}

func (r *Router) handleReadiness(w http.ResponseWriter, req *http.Request) {
	if r.readiness == nil {
		return
	}
	ctx, cancel := context.WithTimeout(req.Context(), 2*time.Second)
	defer cancel()

	if err := r.readiness(ctx); err != nil {
		r.logger.Warn("readiness check failed", "error", err.Error())
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusServiceUnavailable)
		_ = json.NewEncoder(w).Encode(handler.ErrorModel{Message: err.Error()})
	}
}
