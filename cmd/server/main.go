package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/iudanet/recordsync/internal/config"
	"github.com/iudanet/recordsync/internal/server"
)

var (
	// Version information set via ldflags during build
	Version   = "dev"
	BuildDate = "unknown"
	GitCommit = "unknown"
)

func main() {
	os.Exit(run())
}

func run() int {
	cfg, err := config.ParseServer(os.Args[1:], config.OSEnv{}, os.Stderr)
	if errors.Is(err, config.ErrHelp) {
		return 0
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 2
	}

	if cfg.ShowVersion {
		printVersion()
		return 0
	}

	level := slog.LevelInfo
	if cfg.Verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: level}))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	srv, err := server.New(ctx, cfg, Version, logger)
	if err != nil {
		logger.Error("failed to initialize server", slog.Any("error", err))
		return 1
	}
	defer func() {
		if err := srv.Close(); err != nil {
			logger.Error("failed to close server", slog.Any("error", err))
		}
	}()

	if err := srv.Run(ctx); err != nil {
		logger.Error("server stopped with error", slog.Any("error", err))
		return 1
	}

	logger.Info("server stopped")
	return 0
}

func printVersion() {
	fmt.Printf("recordd (record server emulator)\n")
	fmt.Printf("Version:    %s\n", Version)
	fmt.Printf("Build Date: %s\n", BuildDate)
	fmt.Printf("Git Commit: %s\n", GitCommit)
}
