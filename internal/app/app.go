// Package app wires configuration, storage, the faction store, the playtime
// tracker, backups and the console together and runs them.
package app

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/dmitrijs2005/factionwatch/internal/backup"
	"github.com/dmitrijs2005/factionwatch/internal/config"
	"github.com/dmitrijs2005/factionwatch/internal/console"
	"github.com/dmitrijs2005/factionwatch/internal/kv"
	"github.com/dmitrijs2005/factionwatch/internal/logging"
	"github.com/dmitrijs2005/factionwatch/internal/playtime"
	"github.com/dmitrijs2005/factionwatch/internal/store"
)

type App struct {
	config    *config.Config
	logger    logging.Logger
	repo      kv.Repository
	store     *store.Store
	tracker   *playtime.Tracker
	scheduler *backup.Scheduler
	console   *console.Console
}

// NewApp builds the application. Logs go to logOut, the console reads from
// in and writes to out.
func NewApp(ctx context.Context, cfg *config.Config, in io.Reader, out, logOut io.Writer) (*App, error) {
	logger := logging.New(logOut, cfg.LogLevel)

	sink, err := newSink(cfg)
	if err != nil {
		return nil, fmt.Errorf("backup init error: %w", err)
	}

	repo, err := openRepository(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("storage init error: %w", err)
	}

	s := store.New(store.WithLogger(logger.With("component", "store")))
	if cfg.SeedFile != "" {
		seed, err := loadSeed(cfg.SeedFile)
		if err != nil {
			_ = repo.Close()
			return nil, err
		}
		s.Init(seed.Factions, seed.Users)
	}

	tracker := playtime.NewTracker(repo, logger.With("component", "playtime"))

	scheduler, err := backup.NewScheduler(cfg.BackupSchedule, tracker, sink, logger.With("component", "backup"), cfg.BackupTimeout)
	if err != nil {
		_ = repo.Close()
		return nil, err
	}

	c := console.New(s, tracker, logger, in, out,
		console.WithBackups(scheduler),
		console.WithStatsDays(cfg.StatsWindowDays),
		console.WithOperator(cfg.OperatorID))

	return &App{
		config:    cfg,
		logger:    logger,
		repo:      repo,
		store:     s,
		tracker:   tracker,
		scheduler: scheduler,
		console:   c,
	}, nil
}

func (app *App) initSignalHandler(cancelFunc context.CancelFunc) {
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	go func() {
		<-sigs
		cancelFunc()
	}()
}

// Run starts the backup scheduler and the console and returns when the
// console exits or a termination signal arrives.
func (app *App) Run(ctx context.Context) {
	ctx, cancelFunc := context.WithCancel(ctx)
	defer cancelFunc()

	app.logger.Info(ctx, "Starting app...", "storage", app.config.StorageDriver)
	app.initSignalHandler(cancelFunc)

	var wg sync.WaitGroup

	wg.Add(1)
	go func() {
		defer wg.Done()
		if err := app.scheduler.Run(ctx); err != nil {
			app.logger.Error(ctx, err.Error())
		}
	}()

	// The console blocks on input reads, so it is not waited for.
	go func() {
		app.console.Run(ctx)
		cancelFunc()
	}()

	<-ctx.Done()
	wg.Wait()

	app.console.Close()
	if err := app.repo.Close(); err != nil {
		app.logger.Error(context.Background(), "error closing storage", "error", err)
	}
	app.logger.Info(context.Background(), "Stopped")
}
