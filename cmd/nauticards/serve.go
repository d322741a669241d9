package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	httpadapter "github.com/jordibmorey/nauticards/internal/adapters/http"
	"github.com/jordibmorey/nauticards/internal/adapters/upstream"
	"github.com/jordibmorey/nauticards/internal/config"
	"github.com/jordibmorey/nauticards/internal/i18n"
	"github.com/jordibmorey/nauticards/internal/services/directory"
	"github.com/jordibmorey/nauticards/internal/sitemap"
)

func newServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the directory web server",
		RunE:  runServe,
	}
}

func newLogger(env string) (*zap.Logger, error) {
	zcfg := zap.NewProductionConfig()
	if env == "development" {
		zcfg.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	}
	return zcfg.Build()
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "warning: %v\n", err)
	}

	logger, err := newLogger(cfg.Env)
	if err != nil {
		return err
	}
	defer logger.Sync()

	client, err := upstream.New(cfg.UpstreamURL, logger)
	if err != nil {
		return err
	}
	dict, err := i18n.Load(cfg.DefaultLang)
	if err != nil {
		return err
	}

	dir := directory.New(client, client, cfg.PageSize, logger)
	sm := sitemap.New(cfg.SiteURL, cfg.DefaultLang, client)
	srv := httpadapter.New(dir, client, sm, dict, cfg.DefaultLang, logger)

	r := chi.NewRouter()
	r.Mount("/", srv.Routes())

	httpSrv := &http.Server{Addr: cfg.ListenAddr, Handler: r}
	errCh := make(chan error, 1)
	go func() { errCh <- httpSrv.ListenAndServe() }()
	logger.Info("listening", zap.String("addr", cfg.ListenAddr))

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	select {
	case sig := <-sigCh:
		logger.Info("shutting down", zap.String("signal", sig.String()))
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return httpSrv.Shutdown(ctx)
	case err := <-errCh:
		return fmt.Errorf("server error: %w", err)
	}
}
