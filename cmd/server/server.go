package main

import (
	"context"
	"fmt"
	"log/slog"
	"net"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/KirkDiggler/rpg-toolkit/dice"
	"github.com/spf13/cobra"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	"google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/reflection"

	grpc_logging "github.com/grpc-ecosystem/go-grpc-middleware/v2/interceptors/logging"
	grpc_recovery "github.com/grpc-ecosystem/go-grpc-middleware/v2/interceptors/recovery"

	"github.com/KirkDiggler/cardastika-api/internal/clients/account"
	"github.com/KirkDiggler/cardastika-api/internal/config"
	"github.com/KirkDiggler/cardastika-api/internal/engine/bonus"
	"github.com/KirkDiggler/cardastika-api/internal/engine/combat"
	entities "github.com/KirkDiggler/cardastika-api/internal/entities/equipment"
	"github.com/KirkDiggler/cardastika-api/internal/handlers/equipment/v1alpha1"
	"github.com/KirkDiggler/cardastika-api/internal/orchestrators/equipment"
	"github.com/KirkDiggler/cardastika-api/internal/orchestrators/forge"
	"github.com/KirkDiggler/cardastika-api/internal/pkg/clock"
	"github.com/KirkDiggler/cardastika-api/internal/pkg/lockreg"
	redisclient "github.com/KirkDiggler/cardastika-api/internal/redis"
	equipmentrepo "github.com/KirkDiggler/cardastika-api/internal/repositories/equipment"
	goldrepo "github.com/KirkDiggler/cardastika-api/internal/repositories/gold"
	"github.com/KirkDiggler/cardastika-api/internal/services/ledger"
)

var (
	grpcPort int
)

var serverCmd = &cobra.Command{
	Use:   "server",
	Short: "Start the gRPC server",
	Long:  `Start the Cardastika gRPC server backed by Redis.`,
	RunE:  runServer,
}

func init() {
	serverCmd.Flags().IntVar(&grpcPort, "port", 0, "gRPC server port (overrides GRPC_PORT)")
}

func runServer(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	if cmd.Flags().Changed("port") {
		cfg.GRPCPort = grpcPort
	}

	logger, err := newLogger(cfg)
	if err != nil {
		return err
	}
	slog.SetDefault(logger)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	go func() {
		<-sigChan
		slog.Info("received shutdown signal, gracefully stopping")
		cancel()
	}()

	redisClient, err := redisclient.NewClient(cfg.RedisAddr, &redisclient.Options{
		Password: cfg.RedisPassword,
		DB:       cfg.RedisDB,
	})
	if err != nil {
		return fmt.Errorf("failed to create redis client: %w", err)
	}
	defer func() {
		if closeErr := redisClient.Close(); closeErr != nil {
			slog.Warn("failed to close redis client", "error", closeErr)
		}
	}()

	if err := redisclient.Ping(ctx, redisClient, 5*time.Second); err != nil {
		return fmt.Errorf("failed to reach redis at %s: %w", cfg.RedisAddr, err)
	}

	handler, err := buildHandler(cfg, redisClient)
	if err != nil {
		return err
	}

	lis, err := net.Listen("tcp", fmt.Sprintf(":%d", cfg.GRPCPort))
	if err != nil {
		return fmt.Errorf("failed to listen: %w", err)
	}

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

	v1alpha1.RegisterEquipmentServiceServer(srv, handler)

	healthServer := health.NewServer()
	grpc_health_v1.RegisterHealthServer(srv, healthServer)

	healthServer.SetServingStatus("", grpc_health_v1.HealthCheckResponse_SERVING)
	healthServer.SetServingStatus(v1alpha1.ServiceName, grpc_health_v1.HealthCheckResponse_SERVING)

	reflection.Register(srv)

	errChan := make(chan error, 1)
	go func() {
		slog.Info("gRPC server starting", "port", cfg.GRPCPort, "owner_id", cfg.OwnerID)
		if err := srv.Serve(lis); err != nil {
			errChan <- fmt.Errorf("failed to serve: %w", err)
		}
	}()

	select {
	case <-ctx.Done():
		slog.Info("shutting down gRPC server")
		healthServer.Shutdown()

		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer shutdownCancel()

		stopped := make(chan struct{})
		go func() {
			srv.GracefulStop()
			close(stopped)
		}()

		select {
		case <-shutdownCtx.Done():
			slog.Warn("graceful shutdown timeout exceeded, forcing stop")
			srv.Stop()
		case <-stopped:
			slog.Info("server stopped gracefully")
		}

		return nil
	case err := <-errChan:
		return err
	}
}

// buildHandler wires storage, engines and orchestrators behind the gRPC handler
func buildHandler(cfg *config.Config, redisClient redisclient.Client) (*v1alpha1.Handler, error) {
	normalizer := entities.NewNormalizer()

	equipmentRepo, err := equipmentrepo.NewRedis(&equipmentrepo.RedisConfig{
		Client:     redisClient,
		Normalizer: normalizer,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create equipment repository: %w", err)
	}

	goldRepo, err := goldrepo.NewRedis(&goldrepo.RedisConfig{Client: redisClient})
	if err != nil {
		return nil, fmt.Errorf("failed to create gold repository: %w", err)
	}

	accountClient, err := account.NewRedis(&account.Config{Client: redisClient})
	if err != nil {
		return nil, fmt.Errorf("failed to create account client: %w", err)
	}

	stateLedger, err := ledger.New(&ledger.Config{
		EquipmentRepo: equipmentRepo,
		GoldRepo:      goldRepo,
		AccountClient: accountClient,
		Normalizer:    normalizer,
		Clock:         clock.New(),
		Locks:         lockreg.New(),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create ledger: %w", err)
	}

	bonusEngine, err := bonus.NewEngine(&bonus.Config{Balance: cfg.Balance})
	if err != nil {
		return nil, fmt.Errorf("failed to create bonus engine: %w", err)
	}

	combatEngine, err := combat.NewEngine(&combat.Config{Balance: cfg.Balance})
	if err != nil {
		return nil, fmt.Errorf("failed to create combat engine: %w", err)
	}

	equipmentService, err := equipment.NewOrchestrator(&equipment.Config{
		Ledger:         stateLedger,
		Normalizer:     normalizer,
		Balance:        cfg.Balance,
		BonusEngine:    bonusEngine,
		CombatEngine:   combatEngine,
		DefaultOwnerID: cfg.OwnerID,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create equipment orchestrator: %w", err)
	}

	forgeService, err := forge.NewOrchestrator(&forge.Config{
		Ledger:         stateLedger,
		Normalizer:     normalizer,
		Balance:        cfg.Balance,
		Roller:         dice.DefaultRoller,
		DefaultOwnerID: cfg.OwnerID,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create forge orchestrator: %w", err)
	}

	handler, err := v1alpha1.NewHandler(&v1alpha1.HandlerConfig{
		EquipmentService: equipmentService,
		ForgeService:     forgeService,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create equipment handler: %w", err)
	}
	return handler, nil
}

func newLogger(cfg *config.Config) (*slog.Logger, error) {
	level, err := config.ParseLevel(cfg.LogLevel)
	if err != nil {
		return nil, err
	}

	opts := &slog.HandlerOptions{Level: level}
	if cfg.LogFormat == config.LogFormatJSON {
		return slog.New(slog.NewJSONHandler(os.Stderr, opts)), nil
	}
	return slog.New(slog.NewTextHandler(os.Stderr, opts)), nil
}

// logFunc bridges the interceptor logger onto slog; the level values line up
func logFunc(ctx context.Context, level grpc_logging.Level, msg string, fields ...any) {
	slog.Default().Log(ctx, slog.Level(level), msg, fields...)
}
