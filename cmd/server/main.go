package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"google.golang.org/grpc/reflection"

	grpcctx "github.com/dtroode/contactbook/internal/api/grpc/context"
	grpcrouter "github.com/dtroode/contactbook/internal/api/grpc/router"
	grpcServer "github.com/dtroode/contactbook/internal/api/grpc/server"
	resthandler "github.com/dtroode/contactbook/internal/api/rest/handler"
	restrouter "github.com/dtroode/contactbook/internal/api/rest/router"
	restServer "github.com/dtroode/contactbook/internal/api/rest/server"
	"github.com/dtroode/contactbook/internal/config"
	"github.com/dtroode/contactbook/internal/logger"
	"github.com/dtroode/contactbook/internal/model"
	"github.com/dtroode/contactbook/internal/repository/memory"
	"github.com/dtroode/contactbook/internal/repository/postgres"
	"github.com/dtroode/contactbook/internal/server"
	"github.com/dtroode/contactbook/internal/service"
	storage "github.com/dtroode/contactbook/internal/storage/minio"
)

var (
	buildVersion = "N/A" // set by ldflags
	buildDate    = "N/A" // set by ldflags
	buildCommit  = "N/A" // set by ldflags
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT, os.Interrupt)
	defer stop()

	cfg, err := config.NewConfig()
	if err != nil {
		log.Fatalf("failed to parse config: %v", err)
	}
	logger := logger.New(cfg.LogLevel)

	contactStore, readiness, closeStore := openStore(ctx, cfg, logger)
	defer closeStore()

	contactService := service.NewContact(contactStore, logger)

	var snapshotService *service.Snapshot
	if cfg.Storage.Enabled {
		objectStore, err := storage.New(ctx, storage.Options{
			Endpoint:  cfg.Storage.Endpoint,
			AccessKey: cfg.Storage.AccessKey,
			SecretKey: cfg.Storage.SecretKey,
			Bucket:    cfg.Storage.Bucket,
			UseSSL:    cfg.Storage.UseSSL,
		})
		if err != nil {
			logger.Fatal("failed to initialize storage client", "error", err)
		}
		snapshotService = service.NewSnapshot(contactStore, objectStore, logger)
	}

	servers := []serverWithSecurity{{
		server: registerHTTPServer(contactService, snapshotService, readiness, cfg, logger),
		sl:     server.NewSecurityLayer(cfg.HTTP.EnableHTTPS, cfg.HTTP.CertFileName, cfg.HTTP.PrivateKeyFileName),
	}}
	if cfg.GRPC.Enabled {
		servers = append(servers, serverWithSecurity{
			server: registerGRPCServer(contactService, grpcctx.NewManager(), logger, fmt.Sprintf(":%s", cfg.GRPC.Port)),
			sl:     server.NewSecurityLayer(cfg.GRPC.EnableHTTPS, cfg.GRPC.CertFileName, cfg.GRPC.PrivateKeyFileName),
		})
	}

	var wg sync.WaitGroup
	for _, s := range servers {
		wg.Add(1)
		go func(s model.Server, sl model.SecurityLayer) {
			defer wg.Done()
			logger.Info("Starting server on", "address", s.Address())
			if err := s.Start(sl); err != nil {
				logger.Error("failed to start server", "error", err, "address", s.Address())
				stop()
			}
		}(s.server, s.sl)
	}

	logAppVersion()

	<-ctx.Done()
	logger.Info("received interruption signal, shutting down")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	for _, s := range servers {
		if err := s.server.Stop(shutdownCtx); err != nil {
			logger.Error("error during server shutdown", "error", err, "address", s.server.Address())
		}
	}

	wg.Wait()
	logger.Info("shutdown complete")
}

type serverWithSecurity struct {
	server model.Server
	sl     model.SecurityLayer
}

func logAppVersion() {
	tmpl := `
Build version: %s
Build date: %s
Build commit: %s
`

	fmt.Printf(tmpl, buildVersion, buildDate, buildCommit)
}

func openStore(ctx context.Context, cfg *config.Config, logger *logger.Logger) (model.ContactStore, restrouter.ReadinessFunc, func()) {
	if cfg.Store.Driver == config.StoreDriverMemory {
		logger.Warn("using in-memory contact store, data is lost on restart")
		return memory.NewContactRepository(), nil, func() {}
	}

	db, err := postgres.NewConection(ctx, cfg.Database.DSN)
	if err != nil {
		logger.Fatal("failed to initialize storage", "error", err)
	}
	closeDB := func() {
		if err := db.Close(); err != nil {
			logger.Error("failed to close database", "error", err)
		}
	}
	return postgres.NewContactRepository(db), db.Ready, closeDB
}

func registerHTTPServer(
	contactService *service.Contact,
	snapshotService *service.Snapshot,
	readiness restrouter.ReadinessFunc,
	cfg *config.Config,
	logger *logger.Logger,
) *restServer.HTTPServer {
	var snapshots resthandler.SnapshotService
	if snapshotService != nil {
		snapshots = snapshotService
	}

	r := restrouter.New(contactService, snapshots, readiness, cfg.HTTP.RequestTimeout, buildVersion, logger)
	return restServer.NewHTTPServer(r.Register(), fmt.Sprintf(":%s", cfg.HTTP.Port), logger)
}

func registerGRPCServer(
	contactService *service.Contact,
	ctxMgr model.ContextManager,
	logger *logger.Logger,
	addr string,
) *grpcServer.GRPCServer {
	r := grpcrouter.New(contactService, ctxMgr, logger)
	s := r.Register()

	reflection.Register(s)

	return grpcServer.NewGRPCServer(s, addr)
}
