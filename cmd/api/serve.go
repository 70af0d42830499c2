package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"adoptme/internal/adapters/auth/revoker"
	imgstore "adoptme/internal/adapters/images"
	"adoptme/internal/adapters/storage"
	"adoptme/internal/config"
	"adoptme/internal/platform/logger"
	"adoptme/internal/platform/metrics"
	"adoptme/internal/ports/auth"
	"adoptme/internal/ports/images"
	"adoptme/internal/router"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
)

const (
	shutdownTimeout = 10 * time.Second

	// El body puede traer una imagen de hasta 10 MiB (POST /api/pets/withimage).
	readHeaderTimeout = 5 * time.Second
	readTimeout       = 60 * time.Second
	writeTimeout      = 60 * time.Second
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Levanta el servidor HTTP",
	Args:  cobra.NoArgs,
	RunE:  runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, _ []string) error {
	cfg, log, err := loadConfig()
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	backend, err := storage.Open(ctx, cfg.Storage)
	if err != nil {
		return fmt.Errorf("open storage: %w", err)
	}
	defer func() {
		closeCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := backend.Close(closeCtx); err != nil {
			log.Error("close storage failed", map[string]any{"err": err.Error()})
		}
	}()

	// en serve el schema se aplica siempre; es idempotente.
	if err := backend.Migrate(ctx); err != nil {
		return fmt.Errorf("migrate storage: %w", err)
	}

	rev, closeRev, err := openRevoker(ctx, cfg.Redis, log)
	if err != nil {
		return err
	}
	defer closeRev()

	imgs, err := openImages(ctx, cfg.Images)
	if err != nil {
		return err
	}

	h, err := router.NewRouter(router.Options{
		Config:  &cfg,
		Logger:  log,
		Backend: backend,
		Revoker: rev,
		Images:  imgs,
		Metrics: metrics.New(),
	})
	if err != nil {
		return err
	}

	srv := newHTTPServer(cfg.Addr(), h)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		log.Info("starting server", map[string]any{"addr": srv.Addr, "storage": backend.Driver})
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("server error: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		log.Info("shutting down", nil)
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})
	return g.Wait()
}

// openRevoker usa Redis si está configurado; si no, memoria (una sola instancia).
func openRevoker(ctx context.Context, cfg config.RedisConfig, log logger.Logger) (auth.Revoker, func(), error) {
	if cfg.Addr == "" {
		return revoker.NewMemory(), func() {}, nil
	}

	r := revoker.NewRedis(cfg.Addr, cfg.Password, cfg.DB)
	pingCtx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()
	if err := r.Ping(pingCtx); err != nil {
		_ = r.Close()
		return nil, nil, fmt.Errorf("ping redis: %w", err)
	}

	return r, func() {
		if err := r.Close(); err != nil {
			log.Warn("close redis failed", map[string]any{"err": err.Error()})
		}
	}, nil
}

func newHTTPServer(addr string, h http.Handler) *http.Server {
	return &http.Server{
		Addr:              addr,
		Handler:           h,
		ReadHeaderTimeout: readHeaderTimeout,
		ReadTimeout:       readTimeout,
		WriteTimeout:      writeTimeout,
	}
}

// openImages crea el store según el driver. Con fs el router sirve /img desde su Dir.
func openImages(ctx context.Context, cfg config.ImagesConfig) (images.Store, error) {
	switch cfg.Driver {
	case config.ImagesMinio:
		s, err := imgstore.NewMinioStore(ctx, imgstore.MinioConfig{
			Endpoint:  cfg.MinioEndpoint,
			AccessKey: cfg.MinioAccessKey,
			SecretKey: cfg.MinioSecretKey,
			Bucket:    cfg.MinioBucket,
			UseSSL:    cfg.MinioUseSSL,
			PublicURL: cfg.MinioPublicURL,
		})
		if err != nil {
			return nil, fmt.Errorf("open minio: %w", err)
		}
		return s, nil
	default:
		s, err := imgstore.NewFSStore(cfg.Dir, "/img")
		if err != nil {
			return nil, err
		}
		return s, nil
	}
}
