// Package main provides the CLI entry point for the resume builder client.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"

	"github.com/resumeai/client/internal/api"
	"github.com/resumeai/client/internal/app"
	"github.com/resumeai/client/internal/auth"
	"github.com/resumeai/client/internal/config"
	"github.com/resumeai/client/internal/logger"
	"github.com/resumeai/client/internal/preview"
	"github.com/resumeai/client/internal/router"
	"github.com/resumeai/client/internal/service"
	"github.com/resumeai/client/internal/storage"
)

// Version information (populated at build time)
var (
	version   = "dev"
	buildTime = "unknown"
)

// CLI flags
var (
	configPath  string
	baseURL     string
	startPath   string
	showVersion bool
)

func init() {
	flag.StringVar(&configPath, "config", "", "Path to the YAML configuration file")
	flag.StringVar(&configPath, "c", "", "Path to the YAML configuration file (shorthand)")
	flag.StringVar(&baseURL, "api", "", "Override the resume API base URL")
	flag.StringVar(&startPath, "start", "/", "Path to open on startup")
	flag.BoolVar(&showVersion, "version", false, "Show version information")
	flag.Usage = printUsage
}

func printUsage() {
	fmt.Fprintf(os.Stderr, `ResumeAI Client - build and manage resumes from the terminal

USAGE:
    resumeai [options]

OPTIONS:
`)
	flag.PrintDefaults()
	fmt.Fprintf(os.Stderr, `
ENVIRONMENT:
    RESUMEAI_API_BASE_URL    Resume API base URL
    RESUMEAI_LOG_LEVEL       Log level (debug, info, warn, error)
    RESUMEAI_STORAGE_DIR     Local session storage directory
`)
}

func main() {
	flag.Parse()

	if showVersion {
		fmt.Printf("resumeai %s (built %s)\n", version, buildTime)
		return
	}

	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}
	if baseURL != "" {
		cfg.API.BaseURL = baseURL
		if err := cfg.Validate(); err != nil {
			return err
		}
	}

	log := logger.New(cfg.Log)
	defer log.Sync()

	store, err := storage.Open(cfg.Storage.Dir)
	if err != nil {
		return err
	}

	client, err := api.NewClient(cfg.API.BaseURL, cfg.API.Timeout, store, log)
	if err != nil {
		return err
	}

	authSvc := service.NewAuth(client)
	resumes := service.NewResumes(client)

	// The navigator exists only after the app is built, so logout and 401
	// handling navigate through a late-bound pointer.
	var nav *router.Navigator
	navigate := func(path string) { nav.Go(path) }

	mgr := auth.NewManager(authSvc, store, navigate, log)

	renderer, err := preview.New()
	if err != nil {
		return err
	}

	a, navigator := app.New(app.Options{
		Config:   cfg,
		Logger:   log,
		Store:    store,
		Auth:     mgr,
		AuthSvc:  authSvc,
		Resumes:  resumes,
		Renderer: renderer,
		In:       os.Stdin,
		Out:      os.Stdout,
	})
	nav = navigator
	client.SetNavigate(navigate)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	mgr.Bootstrap(ctx)

	log.Info("starting",
		zap.String("version", version),
		zap.String("api", cfg.API.BaseURL),
		zap.String("start", startPath),
	)
	return a.Run(ctx, startPath)
}
