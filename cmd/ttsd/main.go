package main

import (
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"sync/atomic"
	"syscall"
	"time"

	"github.com/pivoice/ttsd/internal/audio"
	"github.com/pivoice/ttsd/internal/config"
	"github.com/pivoice/ttsd/internal/env"
	"github.com/pivoice/ttsd/internal/envvar"
	"github.com/pivoice/ttsd/internal/logger"
	"github.com/pivoice/ttsd/internal/server/http"
	"github.com/pivoice/ttsd/internal/service"
	"github.com/pivoice/ttsd/internal/synth"
	"github.com/pivoice/ttsd/internal/synth/piper"
	"github.com/pivoice/ttsd/internal/xfs"
)

func main() {
	var (
		flagConfigPath = flag.String("config", filepath.Join(config.DefaultConfigPath(), "config.yaml"), "Path to config file")
	)
	flag.Parse()

	environment := env.FromEnv()

	slog.SetDefault(
		logger.New(environment,
			logger.WithLogToFile(environment.IsProduction()),
			logger.WithLogFile("logs/ttsd.log"),
		),
	)

	if err := run(*flagConfigPath); err != nil {
		slog.Error("Fatal", "error", err)
		os.Exit(1)
	}
}

func run(configPath string) error {
	if p := os.Getenv(envvar.TTSDConfig); p != "" {
		configPath = p
	}

	// The service handle is published once wiring completes; reloads
	// that fire before that only update the snapshot.
	var tts atomic.Pointer[service.TTS]

	watcher, err := config.NewWatcher(configPath, func(cfg *config.Config, err error) {
		if err != nil {
			slog.Error("Failed to reload config", "error", err)
			return
		}

		if svc := tts.Load(); svc != nil && cfg.Synthesis.Piper != nil {
			svc.UpdateParams(cfg.Synthesis.Piper.Params)
		}
	})
	if err != nil {
		return fmt.Errorf("failed to load config %s: %w", configPath, err)
	}

	cfg := watcher.Snapshot()
	slog.Info("Config loaded successfully", "config", configPath)

	store, err := audio.NewStore(cfg.Output.Dir)
	if err != nil {
		return fmt.Errorf("failed to prepare output directory %s: %w", cfg.Output.Dir, err)
	}

	registry := synth.NewRegistry()
	defer func() {
		if err := registry.Close(); err != nil {
			slog.Error("Failed to close synthesizers", "error", err)
		}
	}()

	synthesizer, err := newSynthesizer(cfg)
	if err != nil {
		return fmt.Errorf("failed to initialize synthesis backend %s: %w", cfg.Synthesis.Backend, err)
	}

	if err := registry.Register(synthesizer); err != nil {
		return fmt.Errorf("failed to register synthesis backend %s: %w", cfg.Synthesis.Backend, err)
	}

	active, ok := registry.Get(synth.Provider(cfg.Synthesis.Backend))
	if !ok {
		return fmt.Errorf("synthesis backend %s not registered", cfg.Synthesis.Backend)
	}

	var params map[string]any
	if cfg.Synthesis.Piper != nil {
		params = cfg.Synthesis.Piper.Params
	}
	tts.Store(service.NewTTS(active, store, params))

	app := http.New(tts.Load())

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-quit
		slog.Info("Shutting down")
		if err := app.Shutdown(); err != nil {
			slog.Error("Failed to shut down server", "error", err)
		}
	}()

	slog.Info("Listening",
		"addr", cfg.Server.Addr(),
		"backend", cfg.Synthesis.Backend,
		"output_dir", store.Dir(),
	)
	if err := app.Listen(cfg.Server.Addr()); err != nil {
		return fmt.Errorf("server stopped: %w", err)
	}

	return nil
}

// newSynthesizer constructs the configured synthesis backend. The
// model is bound exactly once here, before the listener starts; a
// failure is fatal.
func newSynthesizer(cfg *config.Config) (synth.Synthesizer, error) {
	switch cfg.Synthesis.Backend {
	case config.ProviderPiper:
		pc := cfg.Synthesis.Piper
		if pc == nil {
			return nil, errors.New("piper backend selected but not configured")
		}

		var opts []piper.Option
		if pc.TimeoutSeconds > 0 {
			opts = append(opts, piper.WithTimeout(time.Duration(pc.TimeoutSeconds)*time.Second))
		}

		return piper.New(xfs.ExpandTilde(pc.BinPath), xfs.ExpandTilde(pc.ModelPath), opts...)

	default:
		return nil, fmt.Errorf("unknown synthesis backend %q", cfg.Synthesis.Backend)
	}
}
