package router

import (
	"github.com/grpc-ecosystem/go-grpc-middleware/v2/interceptors/logging"
	"github.com/grpc-ecosystem/go-grpc-middleware/v2/interceptors/recovery"
	"github.com/grpc-ecosystem/go-grpc-middleware/v2/interceptors/selector"
	"google.golang.org/grpc"

	"github.com/dtroode/contactbook/internal/api/grpc/handler"
	"github.com/dtroode/contactbook/internal/api/grpc/middleware"
	"github.com/dtroode/contactbook/internal/logger"
	"github.com/dtroode/contactbook/internal/model"
)

// Router represents a gRPC router for the contact directory.
// It manages gRPC service registration and middleware configuration.
type Router struct {
	contactService handler.ContactService
	logger         *logger.Logger
	contextManager model.ContextManager
}

// New creates new gRPC Router instance.
func New(
	contactService handler.ContactService,
	contextManager model.ContextManager,
	logger *logger.Logger,
) *Router {
	return &Router{
		contactService: contactService,
		contextManager: contextManager,
		logger:         logger,
	}
}

// Register registers the directory service and its interceptors.
// Calls pass through panic recovery, request id assignment and request
// logging, in that order.
//
// Returns the configured gRPC server instance.
func (r *Router) Register(opts ...grpc.ServerOption) *grpc.Server {
	requestID := middleware.NewRequestID(r.contextManager, r.logger)
	interceptorLogger := middleware.InterceptorLogger(r.logger)
	recoveryOpt := recovery.WithRecoveryHandlerContext(middleware.RecoveryHandler(r.logger))

	opts = append(opts,
		grpc.ChainUnaryInterceptor(
			recovery.UnaryServerInterceptor(recoveryOpt),
			requestID.HandleGRPC,
			logging.UnaryServerInterceptor(interceptorLogger, middleware.LoggingOptions()...),
		),
		grpc.ChainStreamInterceptor(
			recovery.StreamServerInterceptor(recoveryOpt),
			selector.StreamServerInterceptor(
				logging.StreamServerInterceptor(interceptorLogger, middleware.LoggingOptions()...),
				selector.MatchFunc(middleware.SkipReflection),
			),
		),
	)

	s := grpc.NewServer(opts...)
	r.registerDirectoryRoutes(s)

	return s
}

func (r *Router) registerDirectoryRoutes(server *grpc.Server) {
	directoryHandler := handler.NewDirectory(r.contactService, r.logger)
	handler.RegisterDirectoryServer(server, directoryHandler)
}
