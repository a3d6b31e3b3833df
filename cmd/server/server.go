package main

import (
	"context"
	"fmt"
	"log"
	"log/slog"
	"net"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	"google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/reflection"

	grpc_logging "github.com/grpc-ecosystem/go-grpc-middleware/v2/interceptors/logging"
	grpc_recovery "github.com/grpc-ecosystem/go-grpc-middleware/v2/interceptors/recovery"

	"github.com/hearthforge/tavern-api/internal/cache"
	"github.com/hearthforge/tavern-api/internal/engine/brawl"
	"github.com/hearthforge/tavern-api/internal/errors"
	"github.com/hearthforge/tavern-api/internal/orchestrators/game"
	"github.com/hearthforge/tavern-api/internal/pkg/clock"
	"github.com/hearthforge/tavern-api/internal/pkg/idgen"
	"github.com/hearthforge/tavern-api/internal/redis"
	"github.com/hearthforge/tavern-api/internal/repositories/catalog"
	"github.com/hearthforge/tavern-api/internal/repositories/gamesession"
)

var (
	grpcPort  int
	redisAddr string
	cacheSize int
	cacheTTL  time.Duration
	logLevel  string
)

var serverCmd = &cobra.Command{
	Use:   "server",
	Short: "Start the gRPC server",
	Long:  `Start the Tavern API gRPC server with all configured services.`,
	RunE:  runServer,
}

func init() {
	serverCmd.Flags().IntVar(&grpcPort, "port", 50051, "gRPC server port")
	serverCmd.Flags().StringVar(&redisAddr, "redis-addr", "localhost:6379", "Redis address for session storage")
	serverCmd.Flags().IntVar(&cacheSize, "cache-size", cache.DefaultSize, "maximum entries in the session cache")
	serverCmd.Flags().DurationVar(&cacheTTL, "cache-ttl", cache.DefaultTTL, "session cache entry TTL")
	serverCmd.Flags().StringVar(&logLevel, "log-level", "info", "log level: debug, info, warn, or error")
}

// validateFlags rejects bad flag values before any sockets or clients open
func validateFlags() error {
	vb := errors.NewValidationBuilder()
	errors.ValidateRange("port", grpcPort, 1, 65535, vb)
	errors.ValidateRequired("redis-addr", redisAddr, vb)
	errors.ValidateEnum("log-level", logLevel, []string{"debug", "info", "warn", "error"}, vb)
	if cacheSize < 1 {
		vb.InvalidField("cache-size", "must be positive")
	}
	return vb.Build()
}

func configureLogging() {
	var level slog.Level
	switch logLevel {
	case "debug":
		level = slog.LevelDebug
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		level = slog.LevelInfo
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))
}

func runServer(cmd *cobra.Command, args []string) error {
	if err := validateFlags(); err != nil {
		return err
	}
	configureLogging()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	go func() {
		<-sigChan
		log.Println("Received shutdown signal, gracefully stopping...")
		cancel()
	}()

	lis, err := net.Listen("tcp", fmt.Sprintf(":%d", grpcPort))
	if err != nil {
		return fmt.Errorf("failed to listen: %w", err)
	}

	redisClient, err := redis.NewClient(redisAddr, nil)
	if err != nil {
		return fmt.Errorf("failed to connect to redis: %w", err)
	}
	defer func() {
		if closeErr := redisClient.Close(); closeErr != nil {
			log.Printf("Error closing redis client: %v", closeErr)
		}
	}()

	sessionRepo := gamesession.NewRedisRepository(redisClient)

	catalogRepo := catalog.NewInMemory(&catalog.InMemoryConfig{})

	sessionCache := cache.NewLRU(cacheSize, cacheTTL)

	combatEngine, err := brawl.New(&brawl.Config{})
	if err != nil {
		return fmt.Errorf("failed to create combat engine: %w", err)
	}

	gameService, err := game.New(&game.Config{
		SessionRepo: sessionRepo,
		CatalogRepo: catalogRepo,
		Cache:       sessionCache,
		Engine:      combatEngine,
		IDGenerator: idgen.NewUUID("game"),
		Clock:       clock.New(),
	})
	if err != nil {
		return fmt.Errorf("failed to create game service: %w", err)
	}

	// Constructed here so wiring failures surface at startup.
	// TODO: register a GameService handler once the v1 proto surface is published
	_ = gameService

	srv := grpc.NewServer(
		grpc.ChainUnaryInterceptor(
			grpc_logging.UnaryServerInterceptor(grpc_logging.LoggerFunc(logFunc)),
			grpc_recovery.UnaryServerInterceptor(),
		),
		grpc.ChainStreamInterceptor(
			grpc_logging.StreamServerInterceptor(grpc_logging.LoggerFunc(logFunc)),
			grpc_recovery.StreamServerInterceptor(),
		),
	)

	// Register health service
	healthServer := health.NewServer()
	grpc_health_v1.RegisterHealthServer(srv, healthServer)

	healthServer.SetServingStatus("", grpc_health_v1.HealthCheckResponse_SERVING)
	healthServer.SetServingStatus("tavern.api.v1.GameService", grpc_health_v1.HealthCheckResponse_SERVING)

	reflection.Register(srv)

	errChan := make(chan error, 1)
	go func() {
		log.Printf("gRPC server starting on port %d...", grpcPort)
		if err := srv.Serve(lis); err != nil {
			errChan <- fmt.Errorf("failed to serve: %w", err)
		}
	}()

	select {
	case <-ctx.Done():
		log.Println("Shutting down gRPC server...")

		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer shutdownCancel()

		stopped := make(chan struct{})
		go func() {
			srv.GracefulStop()
			close(stopped)
		}()

		select {
		case <-shutdownCtx.Done():
			log.Println("Graceful shutdown timeout exceeded, forcing stop")
			srv.Stop()
		case <-stopped:
			log.Println("Server stopped gracefully")
		}

		return nil
	case err := <-errChan:
		return err
	}
}

func logFunc(ctx context.Context, level grpc_logging.Level, msg string, fields ...any) {
	log.Printf("[%v] %s %v", level, msg, fields)
}
