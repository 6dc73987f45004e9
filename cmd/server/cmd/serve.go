package cmd

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"

	"employees/internal/app/server"
	"employees/internal/app/server/api"
	"employees/internal/config"
	"employees/internal/infrastructure/storage"
	"employees/internal/utils/logger"

	"github.com/spf13/cobra"
)

func newServeCmd(f *flags) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runServe(cmd.Context(), f)
		},
	}
}

func runServe(ctx context.Context, f *flags) error {
	cfg, err := config.Load(config.Options{
		EnvFile:    f.envFile,
		ConfigFile: f.configFile,
	})
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	if f.addr != "" {
		cfg.Server.RunAddress = f.addr
	}

	log := logger.New(cfg.Env)
	log.Info("starting employees", "env", cfg.Env, "driver", cfg.DB.Driver)

	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	store, err := storage.Open(ctx, cfg, log)
	if err != nil {
		return err
	}
	defer func() {
		if err := store.Close(); err != nil {
			log.Error("failed to close storage", "error", err)
		}
	}()

	router := api.New(store, log, cfg.Server.RequestTimeout)
	srv := server.New(cfg.Server.RunAddress, router, cfg.Server.ShutdownTimeout, log)

	if err := srv.Run(ctx); err != nil {
		return fmt.Errorf("run server: %w", err)
	}

	log.Info("employees stopped")
	return nil
}
