// The serve command runs the REST server.
package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/lmittmann/tint"
	"github.com/spf13/cobra"

	"github.com/sweta-r4/library-api/internal/server"
	"github.com/sweta-r4/library-api/pkg/library"
)

var flagListenAddr string

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the library REST server",
	Long: `Attach the configured storage backend and serve the library REST
API until interrupted.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		store, cfg, err := attachStore()
		if err != nil {
			return err
		}
		defer store.Detach()

		log := slog.New(tint.NewHandler(os.Stderr, &tint.Options{
			TimeFormat: time.Kitchen,
		}))

		addr := cfg.ListenAddr
		if flagListenAddr != "" {
			addr = flagListenAddr
		}
		if addr == "" {
			addr = defaultListenAddr
		}

		srv := &http.Server{
			Addr:    addr,
			Handler: server.New(store, cfg.Backend, library.Version, log).Handler(),
		}

		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		errCh := make(chan error, 1)
		go func() {
			errCh <- srv.ListenAndServe()
		}()
		log.Info("listening", "addr", addr, "backend", cfg.Backend, "data_dir", cfg.DataDir)

		select {
		case err := <-errCh:
			if err != nil && !errors.Is(err, http.ErrServerClosed) {
				return err
			}
		case <-ctx.Done():
			log.Info("shutting down")
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			if err := srv.Shutdown(shutdownCtx); err != nil {
				return err
			}
		}
		return nil
	},
}

func init() {
	serveCmd.Flags().StringVar(&flagListenAddr, "addr", "", "listen address (default from config, \":8000\")")
}
