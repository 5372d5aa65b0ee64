// Package sweeper lifts time-limited sanctions once their duration has
// elapsed.
package sweeper

import (
	"context"
	stderrors "errors"
	"fmt"
	"time"

	"github.com/WardenLabs/WardenGo/pkg/errors"
	"github.com/WardenLabs/WardenGo/pkg/logger"
	"github.com/WardenLabs/WardenGo/pkg/models"
	"github.com/WardenLabs/WardenGo/pkg/mqtt"
)

// Ledger is the slice of the case store the sweeper needs
type Ledger interface {
	ActiveCases(ctx context.Context) ([]*models.Modlog, error)
	MarkExpired(ctx context.Context, caseID int64) (*models.Modlog, error)
}

// Gateway reverses sanctions on the platform
type Gateway interface {
	Unban(userID string) error
	Unmute(userID string) error
	ChannelUnban(channelID, userID string) error
}

// Interval is how often active cases are checked for expiry
const Interval = time.Minute

// Sweeper periodically scans in-force cases and expires the ones whose
// duration has elapsed
type Sweeper struct {
	ledger   Ledger
	gateway  Gateway
	interval time.Duration
	now      func() time.Time
}

// New creates a sweeper over the given ledger and gateway
func New(ledger Ledger, gateway Gateway) *Sweeper {
	return &Sweeper{
		ledger:   ledger,
		gateway:  gateway,
		interval: Interval,
		now:      time.Now,
	}
}

// Run sweeps on a fixed interval until the context is cancelled. The
// first sweep happens immediately so sanctions that elapsed while the
// bot was down are lifted on startup, not a minute later.
func (s *Sweeper) Run(ctx context.Context) {
	logger.System("Expiry sweeper started", "Sweeper")

	s.Sweep(ctx)

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			logger.System("Expiry sweeper stopped", "Sweeper")
			return
		case <-ticker.C:
			s.Sweep(ctx)
		}
	}
}

// Sweep runs a single pass. A failure on one case never blocks the
// rest; the failed case is retried on the next pass.
func (s *Sweeper) Sweep(ctx context.Context) {
	active, err := s.ledger.ActiveCases(ctx)
	if err != nil {
		logger.Error(fmt.Sprintf("Failed to list active cases: %v", err), "Sweeper")
		return
	}

	now := s.now()
	for _, c := range active {
		if !c.IsExpired(now) {
			continue
		}
		s.expire(ctx, c)
	}
}

// expire lifts the sanction, then marks the case. Lifting comes first so
// a mark failure leaves the case active and retried, never a lifted
// sanction the ledger still shows in force against a re-applied one.
func (s *Sweeper) expire(ctx context.Context, c *models.Modlog) {
	if err := s.lift(c); err != nil {
		logger.Error(fmt.Sprintf("Failed to lift case #%d (%s on %s): %v", c.CaseID, c.Type, c.UserID, err), "Sweeper")
		return
	}

	marked, err := s.ledger.MarkExpired(ctx, c.CaseID)
	if stderrors.Is(err, errors.ErrCaseNotFound) {
		// Another writer already transitioned it
		return
	}
	if err != nil {
		logger.Error(fmt.Sprintf("Failed to mark case #%d expired: %v", c.CaseID, err), "Sweeper")
		return
	}

	logger.Info(fmt.Sprintf("Case #%d expired: %s on %s lifted", c.CaseID, c.Type, c.UserID), "Sweeper")
	mqtt.NotifyCaseExpired(*marked)
}

func (s *Sweeper) lift(c *models.Modlog) error {
	switch c.Type {
	case models.CaseTypeBan:
		return s.gateway.Unban(c.UserID)
	case models.CaseTypeMute:
		return s.gateway.Unmute(c.UserID)
	case models.CaseTypeChannelBan:
		return s.gateway.ChannelUnban(c.ChannelID, c.UserID)
	default:
		return fmt.Errorf("case type %q does not expire", c.Type)
	}
}
