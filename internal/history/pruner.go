package history

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/robfig/cron/v3"
	"github.com/sirupsen/logrus"

	"github.com/pedroganco/sanum/internal/domain"
)

// DefaultPruneSchedule runs retention once a day at 03:00 UTC.
const DefaultPruneSchedule = "0 3 * * *"

// Pruner deletes scan history older than the retention period on a cron
// schedule.
type Pruner struct {
	store     domain.ScanHistory
	retention time.Duration
	cron      *cron.Cron
	logger    *logrus.Logger
	now       func() time.Time
}

// NewPruner schedules store pruning. An empty schedule selects
// DefaultPruneSchedule.
func NewPruner(logger *logrus.Logger, store domain.ScanHistory, retention time.Duration, schedule string) (*Pruner, error) {
	if store == nil {
		return nil, errors.New("history store is required")
	}
	if retention <= 0 {
		return nil, fmt.Errorf("retention must be positive, got %s", retention)
	}
	if schedule == "" {
		schedule = DefaultPruneSchedule
	}

	p := &Pruner{
		store:     store,
		retention: retention,
		cron:      cron.New(cron.WithLocation(time.UTC)),
		logger:    logger,
		now:       time.Now,
	}
	if _, err := p.cron.AddFunc(schedule, p.run); err != nil {
		return nil, fmt.Errorf("invalid prune schedule %q: %w", schedule, err)
	}
	return p, nil
}

// Start begins cron execution.
func (p *Pruner) Start() {
	p.cron.Start()
}

// Stop stops the scheduler and waits for a running prune to finish.
func (p *Pruner) Stop() {
	<-p.cron.Stop().Done()
}

// PruneNow deletes everything older than the retention period.
func (p *Pruner) PruneNow(ctx context.Context) (int64, error) {
	cutoff := p.now().Add(-p.retention)
	deleted, err := p.store.Prune(ctx, cutoff)
	if err != nil {
		return 0, err
	}

	p.logger.WithFields(logrus.Fields{
		"cutoff":  cutoff.UTC().Format(time.RFC3339),
		"deleted": deleted,
	}).Info("Pruned scan history")
	return deleted, nil
}

func (p *Pruner) run() {
	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	if _, err := p.PruneNow(ctx); err != nil {
		p.logger.WithError(err).Error("Scan history pruning failed")
	}
}
