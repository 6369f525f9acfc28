package main

import (
	"flag"
	"log"
	"log/slog"
	"math/rand"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jpbranski/clickfluencer/internal/action"
	"github.com/jpbranski/clickfluencer/internal/config"
	"github.com/jpbranski/clickfluencer/internal/game"
	"github.com/jpbranski/clickfluencer/internal/save"
	"github.com/jpbranski/clickfluencer/internal/server"
	"github.com/jpbranski/clickfluencer/internal/telemetry"
)

func main() {
	configPath := flag.String("config", "clickfluencer_config.yml", "path to YAML config")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("load config: %v", err)
	}
	logger := newLogger(cfg.Logging.Level)
	slog.SetDefault(logger)

	store, err := save.NewFileStore(cfg.DataDir)
	if err != nil {
		log.Fatalf("open data dir: %v", err)
	}
	saves := save.NewManager(store, cfg.SaveKey)

	st, notes, err := saves.Load()
	if err != nil {
		log.Fatalf("load save: %v", err)
	}
	for _, note := range notes {
		logger.Info("save migrated", "change", note)
	}

	bal := config.ApplyEnvOverrides(cfg.EffectiveBalance())
	if cfg.Autosave.Debounce > 0 {
		bal.AutosaveDebounce = cfg.Autosave.Debounce
	}
	if st != nil && !cfg.Autosave.Enabled {
		st.Settings.AutoSave = false
	}

	var rng action.RNG
	if cfg.SeededRNG.Enabled {
		rng = rand.New(rand.NewSource(cfg.SeededRNG.Seed))
	}

	events := telemetry.NewMemoryRepository()
	engine := game.New(game.Options{
		Balance:  bal,
		Clock:    game.RealClock{},
		RNG:      rng,
		Saves:    saves,
		State:    st,
		Recorder: telemetry.Recorder{Repo: events},
		Logger:   logger,
	})

	report := engine.Start()
	if report.Applied {
		logger.Info("welcome back",
			"away", report.TimeAway.Round(time.Second),
			"creds_earned", report.CredsEarned)
	}

	handler := server.NewHandler(&server.App{
		Engine:    engine,
		Telemetry: events,
		Hub:       server.NewHub(logger),
		Logger:    logger,
		BootNow:   time.Now(),
	})

	srv := &http.Server{Addr: cfg.Addr, Handler: handler}
	go func() {
		logger.Info("listening", "addr", cfg.Addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("serve: %v", err)
		}
	}()

	// Stop flushes the final save, so a clean shutdown never loses
	// more than the debounce window.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down")
	engine.Stop()
	_ = srv.Close()
}

func newLogger(level string) *slog.Logger {
	var lvl slog.Level
	switch level {
	case "debug":
		lvl = slog.LevelDebug
	case "warn":
		lvl = slog.LevelWarn
	case "error":
		lvl = slog.LevelError
	default:
		lvl = slog.LevelInfo
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: lvl}))
}
