// Package maintenance runs the periodic retention sweeps: expired and
// long-deleted messages, used one-time prekeys, inactive devices.
package maintenance

import (
	"context"
	"time"

	"github.com/MuscleMap-ME/musclemap-messaging/config"
	"github.com/MuscleMap-ME/musclemap-messaging/pkg/logger"
)

type Sweepable interface {
	RunMaintenance(ctx context.Context, now time.Time) error
}

type Sweeper struct {
	targets  []Sweepable
	interval time.Duration
	logger   *logger.Logger
}

func NewSweeper(cfg *config.Config, logger *logger.Logger, targets ...Sweepable) *Sweeper {
	return &Sweeper{
		targets:  targets,
		interval: cfg.Messaging.SweepInterval,
		logger:   logger,
	}
}

// Run blocks until ctx is cancelled. One failing target does not stop the
// loop or the other targets.
func (s *Sweeper) Run(ctx context.Context) {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case now := <-ticker.C:
			for _, target := range s.targets {
				if err := target.RunMaintenance(ctx, now); err != nil {
					s.logger.Error("maintenance sweep failed", "error", err)
				}
			}
		}
	}
}
