// cmd/api/main.go
package main

import (
	"context"
	"errors"
	"io/fs"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/ps-vitor/apartment-finder/internal/api"
	"github.com/ps-vitor/apartment-finder/internal/api/render"
	"github.com/ps-vitor/apartment-finder/internal/config"
	"github.com/ps-vitor/apartment-finder/internal/repositories"
	"github.com/ps-vitor/apartment-finder/internal/services"
	"github.com/ps-vitor/apartment-finder/pkg/logger"
)

func main() {
	// .env is optional; real environment variables win over it
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		log.Fatalf("load .env: %v", err)
	}

	cfgPath := os.Getenv("APP_CONFIG")
	if cfgPath == "" {
		cfgPath = config.DefaultPath
	}
	cfg, err := config.LoadConfig(cfgPath)
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	lg := logger.New(cfg.App.Name+" ", cfg.App.Debug)
	if cfg.App.Debug {
		lg.Info("debug mode on, templates reload on every request")
	}

	// Setup dependencies
	renderer, err := render.New(cfg.TemplatesDir(), cfg.App.Debug)
	if err != nil {
		lg.Errorf("templates: %v", err)
		os.Exit(1)
	}
	repo := repositories.NewFileListingRepository(cfg.DataPath())
	listingSvc := services.NewListingService(repo, lg)
	lg.Infof("serving listings from %s", repo.Path())

	handler := api.NewRouter(api.RouterConfig{
		StaticDir:      cfg.StaticDir(),
		StaticMaxAge:   cfg.Static.MaxAge,
		ListingsMaxAge: cfg.Listings.MaxAge,
	}, listingSvc, renderer, lg)

	srv := api.NewServer(handler, api.ServerOptions{
		Addr:            cfg.Addr(),
		ShutdownTimeout: cfg.App.ShutdownTimeout,
		Logger:          lg,
	})
	errc, err := srv.Start()
	if err != nil {
		lg.Errorf("listen on %s: %v", cfg.Addr(), err)
		os.Exit(1)
	}

	signals := make(chan os.Signal, 1)
	signal.Notify(signals, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-signals:
		lg.Infof("received signal %v, shutting down", sig)
	case err := <-errc:
		lg.Errorf("server error: %v", err)
		os.Exit(1)
	}

	if err := srv.Stop(context.Background()); err != nil {
		lg.Errorf("graceful shutdown error: %v", err)
	}
	lg.Info("stopped")
}
