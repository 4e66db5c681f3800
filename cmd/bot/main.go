package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	configloader "github.com/ninfea/babylog/external/config"
	eventlogimpl "github.com/ninfea/babylog/external/eventlog"
	metricsimpl "github.com/ninfea/babylog/external/metrics"
	repositoryimpl "github.com/ninfea/babylog/external/repository"
	telegramimpl "github.com/ninfea/babylog/external/telegram"
	"github.com/ninfea/babylog/internal/config"
	telegrampkg "github.com/ninfea/babylog/internal/telegram"
	"github.com/ninfea/babylog/internal/tracker"
	"github.com/samber/do/v2"
)

const (
	telegramConnectTimeout = 20 * time.Second
	stateRestoreTimeout    = 10 * time.Second
)

func main() {
	slog.Info("startup: loading configuration")
	cfg := mustLoadConfig()
	initLogger(cfg)
	slog.Info("startup: configuration loaded", "env", cfg.Env, "timezone", cfg.Timezone, "authorized_users", len(cfg.AuthorizedIDs))

	slog.Info("startup: building dependency graph")
	injector := setupDI(cfg)

	slog.Info("startup: launching telegram bot")
	runBot(injector)
}

func mustLoadConfig() *config.Config {
	cfg, err := configloader.Load()
	if err != nil {
		slog.Error("config validation failed", "error", err)
		os.Exit(1)
	}
	return cfg
}

func initLogger(cfg *config.Config) {
	logLevel := slog.LevelInfo
	if cfg.IsDevelopment() {
		logLevel = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: logLevel})))
}

func setupDI(cfg *config.Config) do.Injector {
	injector := do.New()

	do.ProvideValue(injector, cfg)
	repositoryimpl.RegisterDI(injector)
	eventlogimpl.RegisterDI(injector)
	metricsimpl.RegisterDI(injector)
	telegramimpl.RegisterDI(injector)
	tracker.RegisterDI(injector)

	return injector
}

func runBot(injector do.Injector) {
	tc, err := do.Invoke[telegrampkg.Client](injector)
	if err != nil {
		slog.Error("failed to resolve telegram client", "error", err)
		os.Exit(1)
	}
	manager, err := do.Invoke[*tracker.Manager](injector)
	if err != nil {
		slog.Error("failed to resolve tracker manager", "error", err)
		os.Exit(1)
	}

	ctx, cancel := context.WithTimeout(context.Background(), telegramConnectTimeout)
	defer cancel()

	slog.Info("startup: connecting to telegram")
	if err := tc.Connect(ctx); err != nil {
		slog.Error("telegram connect failed", "error", err)
		os.Exit(1)
	}
	username, err := tc.BotUsername()
	if err != nil {
		slog.Error("failed to resolve bot identity", "error", err)
		os.Exit(1)
	}
	slog.Info("startup: telegram connected", "username", username)

	tc.SetMainKeyboard(tracker.MainKeyboardRows())

	restoreCtx, restoreCancel := context.WithTimeout(context.Background(), stateRestoreTimeout)
	manager.RestoreState(restoreCtx)
	restoreCancel()

	tc.RegisterMessageHandler(manager.HandleMessage)
	tc.RegisterCallbackHandler(manager.HandleCallback)
	slog.Info("telegram handlers registered")
	defer func() {
		if err := tc.Close(); err != nil {
			slog.Error("telegram close failed", "error", err)
		}
	}()

	done := make(chan struct{})
	go func() {
		slog.Info("startup: entering telegram update loop")
		if err := tc.Run(); err != nil {
			slog.Error("telegram run failed", "error", err)
		}
		close(done)
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	select {
	case <-sigCh:
		slog.Info("shutting down")
	case <-done:
	}
}
