package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/ghostpen/ghostpen/internal/audit"
	"github.com/ghostpen/ghostpen/internal/grammar"
	"github.com/ghostpen/ghostpen/internal/provider"
	"github.com/ghostpen/ghostpen/internal/server"
)

func newServeCmd() *cobra.Command {
	var port int

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the local HTTP API for the desktop shell",
		RunE: func(_ *cobra.Command, _ []string) error {
			if port > 0 {
				cfg.Port = port
			}
			return runServe()
		},
	}

	cmd.Flags().IntVar(&port, "port", 0, "override listen port")
	return cmd
}

func runServe() error {
	auditLog := newAuditLogger()
	defer auditLog.Close()

	deps := server.Deps{
		Grammar:  grammar.NewAdapter(buildLinter(), auditLog),
		Pipeline: buildPipeline(auditLog),
		Feedback: &audit.FeedbackStore{Dir: cfg.DataDir},
		Launcher: provider.LaunchLMStudio,
		Audit:    auditLog,
		APIKey:   cfg.APIKey,
	}

	if cfg.APIKey != "" {
		slog.Info("auth: API key required (X-API-Key header)")
	} else {
		slog.Info("auth: disabled (no api_key configured)")
	}

	// Loopback only: this API exists for the shell on the same machine.
	addr := fmt.Sprintf("127.0.0.1:%d", cfg.Port)
	srv := &http.Server{
		Addr:    addr,
		Handler: server.SetupMux(deps),
	}

	done := make(chan os.Signal, 1)
	signal.Notify(done, syscall.SIGINT, syscall.SIGTERM)

	errCh := make(chan error, 1)
	go func() {
		slog.Info("ghostpen api listening", "addr", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("server: %w", err)
	case <-done:
	}
	slog.Info("shutting down")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	slog.Info("server stopped")
	return nil
}
