package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/alexanderramin/sdlc/internal/cli"
	"github.com/alexanderramin/sdlc/internal/cli/formatter"
	"github.com/alexanderramin/sdlc/internal/config"
	"github.com/alexanderramin/sdlc/internal/repository"
	"github.com/alexanderramin/sdlc/internal/service"
	"github.com/mattn/go-isatty"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: cfg.SlogLevel()}))

	var observer service.UseCaseObserver = service.NoopUseCaseObserver{}
	if cfg.LogCalls {
		observer = service.NewSlogUseCaseObserver(logger)
	}

	// Wire repository and services
	projectRepo := repository.NewJSONProjectRepo(cfg.ExportDir)

	app := &cli.App{
		Projects: service.NewProjectService(projectRepo, cfg.Overwrite, observer),
		Config:   cfg,
		Logger:   logger,
	}

	app.IsInteractive = func() bool {
		return isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
	}

	formatter.SetColorMode(cfg.Color, isatty.IsTerminal(os.Stdout.Fd()) || isatty.IsCygwinTerminal(os.Stdout.Fd()))

	rootCmd := cli.NewRootCmd(app)
	return rootCmd.Execute()
}
