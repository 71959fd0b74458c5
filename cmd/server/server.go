package main

import (
	"context"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/KirkDiggler/rpg-toolkit/events"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/health"
	"google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/reflection"
	"google.golang.org/grpc/status"

	grpc_logging "github.com/grpc-ecosystem/go-grpc-middleware/v2/interceptors/logging"
	grpc_recovery "github.com/grpc-ecosystem/go-grpc-middleware/v2/interceptors/recovery"

	"github.com/KirkDiggler/talent-api/internal/config"
	"github.com/KirkDiggler/talent-api/internal/engine"
	"github.com/KirkDiggler/talent-api/internal/handlers/httpapi"
	"github.com/KirkDiggler/talent-api/internal/handlers/talents/v1alpha1"
	"github.com/KirkDiggler/talent-api/internal/loader"
	"github.com/KirkDiggler/talent-api/internal/logging"
	"github.com/KirkDiggler/talent-api/internal/metrics"
	"github.com/KirkDiggler/talent-api/internal/orchestrators/talents"
	"github.com/KirkDiggler/talent-api/internal/pkg/clock"
	"github.com/KirkDiggler/talent-api/internal/pkg/idgen"
	"github.com/KirkDiggler/talent-api/internal/redis"
)

const shutdownTimeout = 30 * time.Second

var (
	grpcPort int
	httpPort int
)

var serverCmd = &cobra.Command{
	Use:   "server",
	Short: "Start the gRPC and HTTP servers",
	Long:  `Load talent trees from the configured source and serve them over gRPC and HTTP.`,
	RunE:  runServer,
}

func init() {
	serverCmd.Flags().IntVar(&grpcPort, "port", 0, "gRPC server port (overrides config)")
	serverCmd.Flags().IntVar(&httpPort, "http-port", 0, "HTTP server port, 0 keeps the configured value")
}

func runServer(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	level, err := logging.ParseLevel(cfg.LogLevel)
	if err != nil {
		return fmt.Errorf("invalid log level: %w", err)
	}
	logger := logging.New(level)
	slog.SetDefault(logger)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	source, cleanup, err := newSource(cfg)
	if err != nil {
		return err
	}
	defer cleanup()

	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	recorder, err := metrics.NewRecorder(registry)
	if err != nil {
		return fmt.Errorf("failed to register metrics: %w", err)
	}

	bus := events.NewBus()
	recorder.Subscribe(bus)

	service, err := talents.NewOrchestrator(&talents.Config{
		Engine:      engine.New(cfg.RowRequirements),
		Source:      source,
		IDGenerator: idgen.NewUUID("talent"),
		Clock:       clock.New(),
		EventBus:    bus,
		Observer:    recorder,
		Logger:      logger,
	})
	if err != nil {
		return fmt.Errorf("failed to create talent orchestrator: %w", err)
	}

	if _, err := service.ReloadTrees(ctx, &talents.ReloadTreesInput{}); err != nil {
		return fmt.Errorf("failed to load talent trees: %w", err)
	}

	grpcHandler, err := v1alpha1.NewHandler(&v1alpha1.HandlerConfig{TalentService: service})
	if err != nil {
		return fmt.Errorf("failed to create talent handler: %w", err)
	}
	httpHandler, err := httpapi.NewHandler(&httpapi.Config{
		TalentService: service,
		Gatherer:      registry,
		Logger:        logger,
	})
	if err != nil {
		return fmt.Errorf("failed to create http handler: %w", err)
	}

	srv := newGRPCServer(logger)
	v1alpha1.RegisterTalentServiceServer(srv, grpcHandler)

	healthServer := health.NewServer()
	grpc_health_v1.RegisterHealthServer(srv, healthServer)
	healthServer.SetServingStatus("", grpc_health_v1.HealthCheckResponse_SERVING)
	healthServer.SetServingStatus(v1alpha1.ServiceName, grpc_health_v1.HealthCheckResponse_SERVING)

	reflection.Register(srv)

	lis, err := net.Listen("tcp", fmt.Sprintf(":%d", cfg.GRPCPort))
	if err != nil {
		return fmt.Errorf("failed to listen: %w", err)
	}

	httpServer := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.HTTPPort),
		Handler:           httpHandler,
		ReadHeaderTimeout: 10 * time.Second,
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		logger.Info("gRPC server starting", "port", cfg.GRPCPort)
		if err := srv.Serve(lis); err != nil {
			return fmt.Errorf("failed to serve grpc: %w", err)
		}
		return nil
	})
	if cfg.HTTPPort > 0 {
		g.Go(func() error {
			logger.Info("HTTP server starting", "port", cfg.HTTPPort)
			if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
				return fmt.Errorf("failed to serve http: %w", err)
			}
			return nil
		})
	}
	g.Go(func() error {
		<-gctx.Done()
		logger.Info("shutting down servers")
		healthServer.Shutdown()
		shutdown(logger, srv, httpServer)
		return nil
	})

	return g.Wait()
}

func loadConfig(cmd *cobra.Command) (config.Server, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return cfg, fmt.Errorf("failed to load config: %w", err)
	}
	if cmd.Flags().Changed("port") {
		cfg.GRPCPort = grpcPort
	}
	if cmd.Flags().Changed("http-port") {
		cfg.HTTPPort = httpPort
	}
	return cfg, cfg.Validate()
}

func newSource(cfg config.Server) (loader.Source, func(), error) {
	switch cfg.Trees.Source {
	case config.SourceRedis:
		client, err := redis.NewClient(cfg.Redis.Addr, nil)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to create redis client: %w", err)
		}
		source, err := loader.NewRedisSource(&loader.RedisConfig{Client: client, Key: cfg.Redis.Key})
		if err != nil {
			_ = client.Close()
			return nil, nil, err
		}
		return source, func() { _ = client.Close() }, nil
	default:
		source, err := loader.NewFileSource(cfg.Trees.Path)
		if err != nil {
			return nil, nil, err
		}
		return source, func() {}, nil
	}
}

func newGRPCServer(logger *slog.Logger) *grpc.Server {
	logFunc := grpc_logging.LoggerFunc(func(ctx context.Context, level grpc_logging.Level, msg string, fields ...any) {
		logger.Log(ctx, slog.Level(level), msg, fields...)
	})
	recoveryOpt := grpc_recovery.WithRecoveryHandlerContext(func(ctx context.Context, p any) error {
		logger.ErrorContext(ctx, "recovered from panic", "panic", p)
		return status.Error(codes.Internal, "internal error")
	})

	return grpc.NewServer(
		grpc.ChainUnaryInterceptor(
			grpc_logging.UnaryServerInterceptor(logFunc),
			grpc_recovery.UnaryServerInterceptor(recoveryOpt),
		),
		grpc.ChainStreamInterceptor(
			grpc_logging.StreamServerInterceptor(logFunc),
			grpc_recovery.StreamServerInterceptor(recoveryOpt),
		),
	)
}

func shutdown(logger *slog.Logger, srv *grpc.Server, httpServer *http.Server) {
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		logger.Warn("HTTP shutdown did not complete", "error", err)
	}

	stopped := make(chan struct{})
	go func() {
		srv.GracefulStop()
		close(stopped)
	}()

	select {
	case <-shutdownCtx.Done():
		logger.Warn("graceful shutdown timeout exceeded, forcing stop")
		srv.Stop()
	case <-stopped:
		logger.Info("server stopped gracefully")
	}
}
