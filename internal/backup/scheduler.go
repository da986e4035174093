package backup

import (
	"context"
	"fmt"
	"time"

	"github.com/dmitrijs2005/factionwatch/internal/logging"
	"github.com/dmitrijs2005/factionwatch/internal/models"
	"github.com/robfig/cron/v3"
)

// Exporter produces the data to back up. *playtime.Tracker implements it.
type Exporter interface {
	Export(ctx context.Context) (models.Backup, error)
}

// Scheduler exports on a cron schedule and hands the result to a Sink.
type Scheduler struct {
	cron     *cron.Cron
	spec     string
	exporter Exporter
	sink     Sink
	logger   logging.Logger
	timeout  time.Duration
	now      func() time.Time
}

// NewScheduler validates spec, a standard five field cron expression or a
// descriptor such as "@daily". An empty spec disables periodic backups;
// RunOnce still works.
func NewScheduler(spec string, exporter Exporter, sink Sink, logger logging.Logger, timeout time.Duration) (*Scheduler, error) {
	if spec != "" {
		if _, err := cron.ParseStandard(spec); err != nil {
			return nil, fmt.Errorf("invalid backup schedule %q: %w", spec, err)
		}
	}
	if logger == nil {
		logger = logging.NewNop()
	}
	return &Scheduler{
		cron:     cron.New(),
		spec:     spec,
		exporter: exporter,
		sink:     sink,
		logger:   logger,
		timeout:  timeout,
		now:      time.Now,
	}, nil
}

// RunOnce takes one backup and returns its location.
func (s *Scheduler) RunOnce(ctx context.Context) (string, error) {
	if s.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.timeout)
		defer cancel()
	}

	b, err := s.exporter.Export(ctx)
	if err != nil {
		return "", fmt.Errorf("error exporting: %w", err)
	}
	data, err := Encode(b)
	if err != nil {
		return "", err
	}
	return s.sink.Put(ctx, ObjectKey(s.now()), data)
}

// Run schedules RunOnce and blocks until ctx is done. A running backup is
// allowed to finish before Run returns. Without a schedule Run returns at
// once.
func (s *Scheduler) Run(ctx context.Context) error {
	if s.spec == "" {
		return nil
	}

	_, err := s.cron.AddFunc(s.spec, func() {
		location, err := s.RunOnce(ctx)
		if err != nil {
			s.logger.Error(ctx, "backup failed", "error", err)
			return
		}
		s.logger.Info(ctx, "backup written", "location", location)
	})
	if err != nil {
		return fmt.Errorf("error scheduling backup: %w", err)
	}

	s.cron.Start()
	s.logger.Info(ctx, "backup scheduler started", "schedule", s.spec)

	<-ctx.Done()
	<-s.cron.Stop().Done()

	s.logger.Info(context.Background(), "backup scheduler stopped")
	return nil
}
