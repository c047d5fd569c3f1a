package main

import (
	"context"
	"fmt"
	"io"
	"os"

	bidding "job-marketplace/internal/biddingService"
	"job-marketplace/internal/clock"
	"job-marketplace/internal/config"
	"job-marketplace/internal/locking"
	"job-marketplace/internal/repository"
	"job-marketplace/internal/seed"
	"job-marketplace/internal/server"
	"job-marketplace/utils"

	"github.com/gin-gonic/gin"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Invalid configuration: %v\n", err)
		os.Exit(1)
	}
	if err := utils.SetLevel(cfg.LogLevel); err != nil {
		fmt.Fprintf(os.Stderr, "Invalid configuration: %v\n", err)
		os.Exit(1)
	}
	if err := utils.SetFormat(cfg.LogFormat); err != nil {
		fmt.Fprintf(os.Stderr, "Invalid configuration: %v\n", err)
		os.Exit(1)
	}
	gin.SetMode(cfg.GinMode)

	ctx := context.Background()

	repo, closeRepo, err := openStore(ctx, cfg)
	if err != nil {
		utils.Fatal("failed to open store", map[string]any{"driver": cfg.StoreDriver, "error": err.Error()})
	}
	defer closeRepo()

	opts, err := serviceOptions(cfg)
	if err != nil {
		utils.Fatal("failed to set up project locking", map[string]any{"error": err.Error()})
	}
	biddingSvc := bidding.NewBiddingService(repo, opts...)

	if cfg.SeedFile != "" {
		if err := prepopulate(ctx, biddingSvc, cfg.SeedFile); err != nil {
			utils.Fatal("failed to load seed data", map[string]any{"seed_file": cfg.SeedFile, "error": err.Error()})
		}
	}

	router := server.SetupRouter(biddingSvc)

	utils.Info("starting job marketplace server", map[string]any{
		"addr":   cfg.Addr(),
		"store":  cfg.StoreDriver,
		"locker": lockerName(cfg),
	})
	if err := router.Run(cfg.Addr()); err != nil {
		utils.Error("server stopped", map[string]any{"error": err.Error()})
		closeRepo()
		os.Exit(1)
	}
}

// openStore returns the configured AuctionDB and a function releasing it
func openStore(ctx context.Context, cfg config.Config) (repository.AuctionDB, func(), error) {
	switch cfg.StoreDriver {
	case config.DriverSQLite:
		repo, err := repository.OpenSQLiteRepo(ctx, cfg.SQLitePath)
		if err != nil {
			return nil, nil, err
		}
		return repo, func() { closeQuietly(repo) }, nil
	default:
		return repository.NewMemoryRepo(), func() {}, nil
	}
}

// serviceOptions swaps in the Redis locker when REDIS_URL is set
func serviceOptions(cfg config.Config) ([]bidding.Option, error) {
	if cfg.RedisURL == "" {
		return nil, nil
	}
	client, err := locking.Connect(cfg.RedisURL)
	if err != nil {
		return nil, err
	}
	return []bidding.Option{bidding.WithLocker(locking.NewRedisLocker(client, cfg.LockTTL))}, nil
}

// prepopulate replays the seed file through the service
func prepopulate(ctx context.Context, svc *bidding.BiddingService, path string) error {
	f, err := seed.ReadFile(path)
	if err != nil {
		return err
	}
	_, err = seed.Apply(ctx, svc, f, clock.System{}.Now())
	return err
}

func lockerName(cfg config.Config) string {
	if cfg.RedisURL != "" {
		return "redis"
	}
	return "in-process"
}

func closeQuietly(c io.Closer) {
	if err := c.Close(); err != nil {
		utils.Warn("close failed", map[string]any{"error": err.Error()})
	}
}
