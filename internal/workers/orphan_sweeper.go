package workers

import (
	"context"
	"time"

	"github.com/davolkov/inventar/internal/logger"
	"github.com/davolkov/inventar/internal/store"
)

// OrphanSweeper periodically removes photo files no longer referenced by any
// item record. Orphans appear when a record write fails after its photo was
// saved, or when a best-effort delete was skipped; reaping them is an
// enhancement, not a contract — items never depend on the sweeper running.
//
// A file is removed only once it is older than the configured grace window,
// so uploads still in flight between photo save and record persist are never
// touched.
type OrphanSweeper struct {
	items  store.ItemRepository
	photos store.PhotoStore

	interval time.Duration
	minAge   time.Duration

	logger *logger.Logger
}

func NewOrphanSweeper(items store.ItemRepository, photos store.PhotoStore, interval, minAge time.Duration, log *logger.Logger) *OrphanSweeper {
	return &OrphanSweeper{
		items:    items,
		photos:   photos,
		interval: interval,
		minAge:   minAge,
		logger:   log,
	}
}

// Run sweeps on every tick until ctx is cancelled.
func (s *OrphanSweeper) Run(ctx context.Context) {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	s.logger.Info().
		Str("func", "OrphanSweeper.Run").
		Dur("interval", s.interval).
		Dur("min_age", s.minAge).
		Msg("orphan photo sweeper started")

	for {
		select {
		case <-ctx.Done():
			s.logger.Info().Str("func", "OrphanSweeper.Run").Msg("orphan photo sweeper stopped")
			return
		case <-ticker.C:
			if removed, err := s.Sweep(ctx); err != nil {
				s.logger.Err(err).Str("func", "OrphanSweeper.Run").Msg("sweep failed")
			} else if removed > 0 {
				s.logger.Info().Str("func", "OrphanSweeper.Run").Int("removed", removed).Msg("removed orphan photos")
			}
		}
	}
}

// Sweep runs a single reconciliation pass and returns the number of orphan
// files removed.
func (s *OrphanSweeper) Sweep(ctx context.Context) (int, error) {
	snapshot, err := s.photos.Snapshot(ctx)
	if err != nil {
		return 0, err
	}

	items, err := s.items.List(ctx)
	if err != nil {
		return 0, err
	}

	referenced := make(map[string]struct{}, len(items))
	for _, item := range items {
		if item.HasPhoto() {
			referenced[item.PhotoKey] = struct{}{}
		}
	}

	cutoff := time.Now().Add(-s.minAge)
	removed := 0

	for _, info := range snapshot {
		if _, ok := referenced[info.Key]; ok {
			continue
		}
		if info.ModTime.After(cutoff) {
			continue
		}

		if err := s.photos.Delete(ctx, info.Key); err != nil {
			s.logger.Warn().Err(err).
				Str("func", "OrphanSweeper.Sweep").
				Str("key", info.Key).
				Msg("failed to remove orphan photo")
			continue
		}
		removed++
	}

	return removed, nil
}
