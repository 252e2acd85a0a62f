package main

import (
	"context"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"golang.org/x/time/rate"

	"github.com/MuscleMap-ME/musclemap-messaging/config"
	"github.com/MuscleMap-ME/musclemap-messaging/internal/database"
	keysrepo "github.com/MuscleMap-ME/musclemap-messaging/internal/keys/repository"
	keysuc "github.com/MuscleMap-ME/musclemap-messaging/internal/keys/usecase"
	"github.com/MuscleMap-ME/musclemap-messaging/internal/maintenance"
	"github.com/MuscleMap-ME/musclemap-messaging/internal/notify"
	relayrepo "github.com/MuscleMap-ME/musclemap-messaging/internal/relay/repository"
	relayuc "github.com/MuscleMap-ME/musclemap-messaging/internal/relay/usecase"
	"github.com/MuscleMap-ME/musclemap-messaging/internal/trust"
	"github.com/MuscleMap-ME/musclemap-messaging/internal/trust/directory"
	trustrepo "github.com/MuscleMap-ME/musclemap-messaging/internal/trust/repository"
	trustuc "github.com/MuscleMap-ME/musclemap-messaging/internal/trust/usecase"
	"github.com/MuscleMap-ME/musclemap-messaging/pkg/logger"
)

func main() {
	v, err := config.LoadConfig("config")
	if err != nil {
		log.Fatalf("load config: %v", err)
	}
	cfg, err := config.ParseConfig(v)
	if err != nil {
		log.Fatalf("parse config: %v", err)
	}

	lg, err := logger.NewLogger(cfg)
	if err != nil {
		log.Fatalf("init logger: %v", err)
	}
	defer lg.Sync()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	db, err := database.NewBunDB(ctx, cfg)
	if err != nil {
		lg.Fatalf("connect database: %v", err)
	}
	defer db.Close()

	redisClient := notify.NewRedisClient(cfg)
	defer redisClient.Close()
	publisher := notify.NewRedisNotifier(redisClient, cfg)

	keyRepo := keysrepo.NewKeyRepository(db, lg)
	relayRepo := relayrepo.NewRelayRepository(db, lg)
	trustRepo := trustrepo.NewTrustRepository(db, lg)
	platformDir := directory.NewPlatformDirectory(db)

	limiter := trust.NewSenderLimiter(rate.Every(time.Second), 5, 10*time.Minute)
	defer limiter.Stop()

	keyDirectory := keysuc.NewKeyDirectoryUsecase(keyRepo, relayRepo, lg, cfg)
	trustGate := trustuc.NewTrustGateUsecase(trustRepo, platformDir, platformDir, relayRepo, limiter, lg)
	messageRelay := relayuc.NewMessageRelayUsecase(relayRepo, keyDirectory, trustGate, publisher, lg, cfg)

	sweeper := maintenance.NewSweeper(cfg, lg, keyDirectory, messageRelay)
	go sweeper.Run(ctx)

	metricsServer := &http.Server{
		Addr:    ":" + cfg.Server.MetricsPort,
		Handler: promhttp.Handler(),
	}
	go func() {
		lg.Info("metrics listener started", "addr", metricsServer.Addr)
		if err := metricsServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			lg.Errorf("metrics listener: %v", err)
		}
	}()

	lg.Info("relayd started", "environment", cfg.Server.Environment)
	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := metricsServer.Shutdown(shutdownCtx); err != nil {
		lg.Errorf("metrics shutdown: %v", err)
	}
	lg.Info("relayd stopped")
}
