package cli

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/linkshield/phishguard/internal/server"
)

const shutdownTimeout = 5 * time.Second

func newServeCmd(opts *rootOptions) *cobra.Command {
	var listenAddr string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP analyzer",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := loadConfig(opts)
			if err != nil {
				return err
			}
			if listenAddr != "" {
				cfg.ListenAddr = listenAddr
			}

			logger, err := zap.NewProduction()
			if err != nil {
				return fmt.Errorf("failed to build logger: %w", err)
			}
			defer func() { _ = logger.Sync() }()

			service, err := buildService(cmd.Context(), cfg, logger)
			if err != nil {
				return err
			}

			srv := &http.Server{
				Addr:              cfg.ListenAddr,
				Handler:           server.New(service, logger).Router(),
				ReadHeaderTimeout: 10 * time.Second,
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			errCh := make(chan error, 1)
			go func() {
				logger.Info("listening", zap.String("addr", cfg.ListenAddr))
				errCh <- srv.ListenAndServe()
			}()

			select {
			case err := <-errCh:
				if errors.Is(err, http.ErrServerClosed) {
					return nil
				}
				return err
			case <-ctx.Done():
			}

			logger.Info("shutting down")
			shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
			defer cancel()
			return srv.Shutdown(shutdownCtx)
		},
	}

	cmd.Flags().StringVar(&listenAddr, "listen", "", "HTTP listen address (default :8080)")
	return cmd
}
