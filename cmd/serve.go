package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"log/slog"

	"github.com/spf13/cobra"

	"github.com/nextlevelbuilder/westmarch/internal/config"
	"github.com/nextlevelbuilder/westmarch/internal/gateway"
	"github.com/nextlevelbuilder/westmarch/internal/household"
	"github.com/nextlevelbuilder/westmarch/internal/memory"
	"github.com/nextlevelbuilder/westmarch/internal/orchestrator"
	"github.com/nextlevelbuilder/westmarch/internal/providers"
	"github.com/nextlevelbuilder/westmarch/internal/sessions"
)

func serveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start the household gateway (WebSocket + browser UI)",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(cmd)
		},
	}
}

// buildHousehold constructs the persona staff from provider config. Called at
// startup and again on every config reload.
func buildHousehold(cfg *config.Config, ledger *memory.Ledger) *household.Household {
	gemini := providers.NewGeminiProvider(
		cfg.Providers.Gemini.APIKey, cfg.Providers.Gemini.APIBase, cfg.Providers.Gemini.Model)
	openai := providers.NewOpenAIProvider(
		cfg.Providers.OpenAI.APIKey, cfg.Providers.OpenAI.APIBase, cfg.Providers.OpenAI.Model)
	return household.New(gemini, openai, ledger)
}

func runServe(cmd *cobra.Command) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	ledger, err := memory.NewLedger(cfg.Memory.Path)
	if err != nil {
		return fmt.Errorf("open memory ledger: %w", err)
	}

	orch := orchestrator.New(buildHousehold(cfg, ledger))
	srv := gateway.NewServer(cfg, orch, ledger, sessions.NewManager())

	ctx, cancel := context.WithCancel(cmd.Context())
	defer cancel()

	// Hot-reload: a config change rebuilds the providers and swaps the staff
	// in place. Gateway listen address changes require a restart.
	watcher, err := config.NewWatcher(resolveConfigPath())
	if err != nil {
		slog.Warn("serve: config watcher unavailable", "error", err)
	} else {
		watcher.OnChange(func(newCfg *config.Config) {
			orch.SetHousehold(buildHousehold(newCfg, ledger))
			slog.Info("serve: household rebuilt from reloaded config")
		})
		if err := watcher.Start(); err != nil {
			slog.Warn("serve: config watcher not started", "error", err)
		} else {
			defer watcher.Stop()
		}
	}

	errCh := make(chan error, 1)
	go func() { errCh <- srv.Start(ctx) }()

	slog.Info("serve: household is in residence",
		"addr", srv.Addr(), "ledger", cfg.Memory.Path, "debug", cfg.Debug)
	fmt.Fprintf(os.Stderr, "Westmarch gateway listening on http://%s\n", srv.Addr())

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		return err
	case sig := <-sigCh:
		slog.Info("serve: shutting down", "signal", sig.String())
	}

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("gateway shutdown: %w", err)
	}
	return nil
}
