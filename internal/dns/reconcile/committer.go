package reconcile

import (
	"context"
	"errors"
	"time"

	"github.com/bobby/zonesync/internal/dns/domain"
	"github.com/bobby/zonesync/internal/retry"
)

// maxCommitAttempts bounds the retry loop for zone-busy collisions.
const maxCommitAttempts = 10

// IsTransient reports whether a provider error is the zone-busy condition.
// Only this class is retried; everything else is surfaced immediately.
func IsTransient(err error) bool {
	return errors.Is(err, domain.ErrZoneBusy)
}

// Committer submits change batches, waiting out the provider's per-zone
// mutation serialization. Concurrent callers against the same zone
// legitimately collide; the fixed-interval retry is the correctness
// mechanism for that race.
type Committer struct {
	provider domain.Provider
	config   retry.Config
}

// NewCommitter returns a Committer that retries zone-busy errors every
// interval, up to the attempt bound.
func NewCommitter(provider domain.Provider, interval time.Duration) *Committer {
	return &Committer{
		provider: provider,
		config: retry.Config{
			MaxAttempts: maxCommitAttempts,
			Interval:    interval,
		},
	}
}

// Commit submits the batch as one unit. An empty batch is a no-op.
func (c *Committer) Commit(ctx context.Context, zoneID string, changes []domain.Change) error {
	if len(changes) == 0 {
		return nil
	}
	return retry.Do(ctx, c.config, IsTransient, func() error {
		return c.provider.ChangeRecordSets(ctx, zoneID, changes)
	})
}
