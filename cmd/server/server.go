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

	"github.com/spf13/cobra"
	"go.opentelemetry.io/contrib/instrumentation/google.golang.org/grpc/otelgrpc"
	"golang.org/x/sync/errgroup"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	"google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/reflection"

	grpc_logging "github.com/grpc-ecosystem/go-grpc-middleware/v2/interceptors/logging"
	grpc_recovery "github.com/grpc-ecosystem/go-grpc-middleware/v2/interceptors/recovery"

	"github.com/Ekez007/Labyrinth-Lord-Advanced-Monster-Generator/internal/config"
	"github.com/Ekez007/Labyrinth-Lord-Advanced-Monster-Generator/internal/handlers/api/v1alpha1"
	"github.com/Ekez007/Labyrinth-Lord-Advanced-Monster-Generator/internal/handlers/rest"
	"github.com/Ekez007/Labyrinth-Lord-Advanced-Monster-Generator/internal/redis"
	"github.com/Ekez007/Labyrinth-Lord-Advanced-Monster-Generator/internal/telemetry"
)

// shutdownTimeout bounds graceful shutdown of both servers
const shutdownTimeout = 30 * time.Second

var (
	httpPort int
	grpcPort int
)

var serverCmd = &cobra.Command{
	Use:   "server",
	Short: "Start the HTTP and gRPC servers",
	Long: `Start the JSON HTTP API and the gRPC MonsterService. Configuration is read
from the environment and an optional .env file; flags override it.`,
	RunE: runServer,
}

func init() {
	serverCmd.Flags().IntVar(&httpPort, "http-port", 0, "HTTP server port (overrides HTTP_PORT)")
	serverCmd.Flags().IntVar(&grpcPort, "grpc-port", 0, "gRPC server port (overrides GRPC_PORT)")
}

func runServer(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	if httpPort != 0 {
		cfg.HTTPPort = httpPort
	}
	if grpcPort != 0 {
		cfg.GRPCPort = grpcPort
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	slog.SetDefault(cfg.NewLogger(os.Stderr))

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	shutdownTracing, err := telemetry.Setup(ctx, cfg.ServiceName, cfg.OTELEndpoint)
	if err != nil {
		return err
	}
	defer func() {
		flushCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := shutdownTracing(flushCtx); err != nil {
			slog.Warn("failed to flush traces", "error", err)
		}
	}()

	client, closeRedis, err := connectRedis(cfg.RedisURL)
	if err != nil {
		return err
	}
	defer closeRedis()

	a, err := newApp(cfg, client)
	if err != nil {
		return err
	}
	defer func() {
		if err := a.Close(); err != nil {
			slog.Warn("failed to stop event listeners", "error", err)
		}
	}()

	httpServer := &http.Server{
		Addr: fmt.Sprintf(":%d", cfg.HTTPPort),
		Handler: rest.Chain(a.rest.Routes(),
			rest.Logging(),
			rest.Recovery(),
			rest.CORS(cfg.CORSAllowedOrigins),
			rest.RateLimit(cfg.RateLimit, time.Minute),
		),
		ReadHeaderTimeout: 10 * time.Second,
	}

	grpcServer := newGRPCServer(a.grpc)

	lis, err := net.Listen("tcp", fmt.Sprintf(":%d", cfg.GRPCPort))
	if err != nil {
		return fmt.Errorf("failed to listen: %w", err)
	}

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		slog.Info("http server starting", "port", cfg.HTTPPort)
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		slog.Info("grpc server starting", "port", cfg.GRPCPort)
		if err := grpcServer.Serve(lis); err != nil {
			return fmt.Errorf("grpc server: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		slog.Info("shutting down servers")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()

		stopped := make(chan struct{})
		go func() {
			grpcServer.GracefulStop()
			close(stopped)
		}()

		httpErr := httpServer.Shutdown(shutdownCtx)

		select {
		case <-shutdownCtx.Done():
			slog.Warn("graceful shutdown timeout exceeded, forcing stop")
			grpcServer.Stop()
		case <-stopped:
		}

		return httpErr
	})

	if err := g.Wait(); err != nil {
		return err
	}

	slog.Info("servers stopped")
	return nil
}

// connectRedis dials REDIS_URL, or starts an embedded server when it is empty
func connectRedis(url string) (redis.Client, func(), error) {
	if url == "" {
		slog.Warn("REDIS_URL not set, using an embedded redis; data is lost on exit")
		return redis.NewEmbedded()
	}

	client, err := redis.NewFromURL(url, &redis.Options{MaxRetries: 3})
	if err != nil {
		return nil, nil, err
	}

	pingCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := client.Ping(pingCtx).Err(); err != nil {
		_ = client.Close()
		return nil, nil, fmt.Errorf("failed to reach redis: %w", err)
	}

	return client, func() { _ = client.Close() }, nil
}

func newGRPCServer(handler v1alpha1.MonsterServiceServer) *grpc.Server {
	srv := grpc.NewServer(
		grpc.StatsHandler(otelgrpc.NewServerHandler()),
		grpc.ChainUnaryInterceptor(
			grpc_logging.UnaryServerInterceptor(grpc_logging.LoggerFunc(logFunc)),
			grpc_recovery.UnaryServerInterceptor(),
		),
		grpc.ChainStreamInterceptor(
			grpc_logging.StreamServerInterceptor(grpc_logging.LoggerFunc(logFunc)),
			grpc_recovery.StreamServerInterceptor(),
		),
	)

	v1alpha1.RegisterMonsterServiceServer(srv, handler)

	healthServer := health.NewServer()
	grpc_health_v1.RegisterHealthServer(srv, healthServer)
	healthServer.SetServingStatus("", grpc_health_v1.HealthCheckResponse_SERVING)
	healthServer.SetServingStatus(v1alpha1.MonsterServiceName, grpc_health_v1.HealthCheckResponse_SERVING)

	reflection.Register(srv)

	return srv
}

// logFunc forwards interceptor logs to slog; the levels share values
func logFunc(ctx context.Context, level grpc_logging.Level, msg string, fields ...any) {
	slog.Log(ctx, slog.Level(level), msg, fields...)
}
