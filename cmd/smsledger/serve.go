package main

import (
	"fmt"
	"log/slog"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/nimesh4992/Stack-sub000/internal/api"
	"github.com/nimesh4992/Stack-sub000/internal/certs"
	"github.com/nimesh4992/Stack-sub000/internal/config"
	"github.com/nimesh4992/Stack-sub000/internal/service"
)

const shutdownTimeout = 5 * time.Second

func serveCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the parser over HTTP",
		Long: `Start a local HTTP API for parsing and classification.

Endpoints:
  GET  /api/health
  GET  /api/banks
  POST /api/parse         {"text": "...", "save": false}
  POST /api/parse/batch   {"texts": ["...", "..."]}
  POST /api/classify      {"merchant": "..."}
  GET  /api/entries       ?type=&bank=&category=&since=&limit=
  GET  /api/entries/:id
  GET  /api/totals`,
		Args: cobra.NoArgs,
		RunE: runServe,
	}

	cmd.Flags().String("addr", config.DefaultServeAddr, "Listen address")
	cmd.Flags().Bool("no-ledger", false, "Serve parsing only, without opening the ledger")
	cmd.Flags().Bool("tls", false, "Serve HTTPS with a self-signed localhost certificate")

	_ = viper.BindPFlag("serve.addr", cmd.Flags().Lookup("addr"))

	return cmd
}

func runServe(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()

	cfg, err := config.Load()
	if err != nil {
		return err
	}
	p, err := buildParser(cfg)
	if err != nil {
		return err
	}

	var ledger service.Ledger
	if noLedger, _ := cmd.Flags().GetBool("no-ledger"); !noLedger {
		store, storeErr := initStorage(ctx, cfg)
		if storeErr != nil {
			return storeErr
		}
		defer closeStorage(store)
		ledger = store
	}

	app := api.NewApp(api.NewHandler(p, ledger))

	listen := func() error { return app.Listen(cfg.ServeAddr) }
	if useTLS, _ := cmd.Flags().GetBool("tls"); useTLS {
		dir, dirErr := config.Dir()
		if dirErr != nil {
			return fmt.Errorf("failed to get config directory: %w", dirErr)
		}
		cert, certErr := certs.NewStore(filepath.Join(dir, "certs")).Certificate()
		if certErr != nil {
			return fmt.Errorf("failed to load TLS certificate: %w", certErr)
		}
		listen = func() error { return app.ListenTLSWithCertificate(cfg.ServeAddr, cert) }
	}

	errCh := make(chan error, 1)
	go func() {
		slog.Info("Serving HTTP API", "addr", cfg.ServeAddr)
		errCh <- listen()
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("failed to serve: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	slog.Info("Shutting down HTTP API")
	if err := app.ShutdownWithTimeout(shutdownTimeout); err != nil {
		return fmt.Errorf("failed to shut down: %w", err)
	}
	if err := <-errCh; err != nil {
		slog.Debug("Listener stopped", "error", err)
	}
	return nil
}
