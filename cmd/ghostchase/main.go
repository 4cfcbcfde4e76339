package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gdamore/tcell/v2"
	"golang.org/x/sync/errgroup"

	"github.com/udisondev/ghostchase/internal/ai"
	"github.com/udisondev/ghostchase/internal/config"
	"github.com/udisondev/ghostchase/internal/db"
	"github.com/udisondev/ghostchase/internal/render"
	"github.com/udisondev/ghostchase/internal/world"
)

const ConfigPath = "config/ghostchase.yaml"

// sceneControllerID is the scene's id in the tick manager.
const sceneControllerID = 1

// frameInterval is the viewer redraw rate.
const frameInterval = 33 * time.Millisecond

// historyLimit is how many past runs on the arena are logged at startup.
const historyLimit = 5

func main() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		sig := <-sigCh
		slog.Info("shutting down", "signal", sig)
		cancel()
	}()

	if err := run(ctx); err != nil {
		slog.Error("fatal", "err", err)
		fmt.Fprintln(os.Stderr, "ghostchase:", err)
		os.Exit(1)
	}
}

func run(ctx context.Context) error {
	// Load config FIRST to determine log level and output
	cfgPath := ConfigPath
	if p := os.Getenv("GHOSTCHASE_CONFIG"); p != "" {
		cfgPath = p
	}
	cfg, err := config.Load(cfgPath)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("validating config: %w", err)
	}

	logOut, closeLog, err := logOutput(cfg)
	if err != nil {
		return err
	}
	defer closeLog()

	logLevel := parseLogLevel(cfg.LogLevel)
	slog.SetDefault(slog.New(slog.NewTextHandler(logOut, &slog.HandlerOptions{
		Level: logLevel,
	})))

	// Enable AI debug logging if log level is debug
	ai.EnableDebugLogging(logLevel == slog.LevelDebug)

	slog.Info("ghostchase starting",
		"config", cfgPath,
		"log_level", cfg.LogLevel,
		"tick_rate", cfg.TickRate,
		"headless", cfg.Headless)

	layout, err := world.LoadLayout(cfg.LayoutPath, world.DefaultCellSize)
	if err != nil {
		return fmt.Errorf("loading layout: %w", err)
	}

	var runs *db.RunRepository
	if cfg.Database.Enabled {
		database, err := db.New(ctx, cfg.Database.DSN())
		if err != nil {
			return fmt.Errorf("connecting to database: %w", err)
		}
		defer database.Close()
		slog.Info("database connected")

		if err := db.RunMigrations(ctx, database.Pool()); err != nil {
			return fmt.Errorf("running migrations: %w", err)
		}
		slog.Info("database migrations applied")
		runs = database.Runs()

		if err := logArenaHistory(ctx, runs, layout.Fingerprint); err != nil {
			slog.Warn("reading run history", "err", err)
		}
	}

	var (
		screen tcell.Screen
		keys   *render.Keyboard
		input  world.Input = world.NoInput{}
	)
	if !cfg.Headless {
		screen, err = tcell.NewScreen()
		if err != nil {
			return fmt.Errorf("creating screen: %w", err)
		}
		if err := screen.Init(); err != nil {
			return fmt.Errorf("initializing screen: %w", err)
		}
		defer screen.Fini()

		keys = render.NewKeyboard(render.DefaultHoldWindow)
		input = keys
	}

	scene := world.New(cfg, layout, input)
	for _, err := range scene.MissingReferences() {
		slog.Warn("actor runs without reference", "err", err)
	}

	if screen != nil {
		w, h := screen.Size()
		needW, needH := render.ScreenSize(scene.View())
		if w < needW || h < needH {
			slog.Warn("terminal smaller than arena", "have", fmt.Sprintf("%dx%d", w, h), "need", fmt.Sprintf("%dx%d", needW, needH))
		}
	}

	tickMgr := ai.NewTickManager(cfg.TickInterval())
	tickMgr.Register(sceneControllerID, scene)

	g, gctx := errgroup.WithContext(ctx)
	simCtx, stopSim := context.WithCancel(gctx)
	defer stopSim()

	g.Go(func() error {
		slog.Info("starting tick manager", "interval", cfg.TickInterval())
		if err := tickMgr.Start(simCtx); err != nil && !errors.Is(err, context.Canceled) {
			return fmt.Errorf("tick manager: %w", err)
		}
		return nil
	})

	// Stop ticking once the run has an outcome
	g.Go(func() error {
		select {
		case <-scene.Done():
			tickMgr.Stop()
		case <-simCtx.Done():
		}
		return nil
	})

	if screen != nil {
		g.Go(func() error {
			defer stopSim()
			err := render.NewViewer(screen, scene, keys, frameInterval).Run(gctx)
			if err != nil && !errors.Is(err, render.ErrQuit) {
				return fmt.Errorf("viewer: %w", err)
			}
			return nil
		})
	}

	waitErr := g.Wait()

	// Unregister stops the scene; an unfinished run is recorded as interrupted
	tickMgr.Unregister(sceneControllerID)
	res := scene.Result()

	slog.Info("run summary",
		"outcome", res.Outcome,
		"ticks", res.Stats.Ticks,
		"duration", res.EndedAt.Sub(res.StartedAt),
		"pickups", res.Stats.Pickups,
		"strikes", res.Stats.Strikes,
		"ghost_defeats", res.Stats.GhostDefeats,
		"respawns", res.Stats.Respawns)

	if runs != nil {
		saveCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), 5*time.Second)
		defer cancel()

		id, err := runs.Save(saveCtx, db.NewRunRecord(res))
		if err != nil {
			return errors.Join(waitErr, fmt.Errorf("saving run: %w", err))
		}
		slog.Info("run saved", "id", id)
	}

	if waitErr != nil {
		return fmt.Errorf("simulation error: %w", waitErr)
	}
	return nil
}

// runHistory reads past runs, optionally per arena.
type runHistory interface {
	CountByOutcome(ctx context.Context, layout string) (map[string]int64, error)
	Recent(ctx context.Context, layout string, limit int) ([]db.RunRecord, error)
}

// logArenaHistory logs outcome totals and the latest runs played on layout.
func logArenaHistory(ctx context.Context, runs runHistory, layout string) error {
	counts, err := runs.CountByOutcome(ctx, layout)
	if err != nil {
		return fmt.Errorf("counting runs: %w", err)
	}
	recent, err := runs.Recent(ctx, layout, historyLimit)
	if err != nil {
		return fmt.Errorf("listing recent runs: %w", err)
	}

	var total int64
	for _, n := range counts {
		total += n
	}
	slog.Info("arena history",
		"layout", layout[:min(12, len(layout))],
		"runs", total,
		"wins", counts[world.OutcomeWin.String()],
		"losses", counts[world.OutcomeLose.String()])

	for _, rec := range recent {
		slog.Info("previous run",
			"id", rec.ID,
			"outcome", rec.Outcome,
			"ticks", rec.Ticks,
			"pickups", rec.Pickups,
			"ended_at", rec.EndedAt.Format(time.DateTime))
	}
	return nil
}

// logOutput picks the log destination. The viewer owns the terminal, so
// interactive runs log to a file.
func logOutput(cfg config.Sim) (io.Writer, func(), error) {
	if cfg.Headless || cfg.LogFile == "" {
		return os.Stdout, func() {}, nil
	}

	f, err := os.OpenFile(cfg.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("opening log file %s: %w", cfg.LogFile, err)
	}
	return f, func() { _ = f.Close() }, nil
}

// parseLogLevel converts string log level to slog.Level.
// Defaults to Info if invalid or empty.
func parseLogLevel(level string) slog.Level {
	switch level {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
