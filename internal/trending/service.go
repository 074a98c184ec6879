// Package trending maintains the decayed popularity ranking over recently
// published public content. The ranking is a periodically refreshed derived
// view; staleness up to one refresh interval is accepted.
package trending

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"gocircle/internal/common"
	"gocircle/internal/dbmysql"

	"github.com/sirupsen/logrus"
)

// epsilonHours floors the decay denominator so content published moments ago
// does not divide by zero.
const epsilonHours = 1.0 / 60.0

// Item is one ranked entry of the trending view.
type Item struct {
	ContentID   uint64    `json:"content_id"`
	OwnerID     uint64    `json:"owner_id"`
	Score       float64   `json:"score"`
	PublishedAt time.Time `json:"published_at"`
}

// ContentSource lists the candidate rows for a ranking pass: public,
// not soft-deleted, published since the given instant.
type ContentSource interface {
	ListPublicSince(ctx context.Context, since time.Time) ([]dbmysql.Content, error)
}

// rankScore is the hourly-decayed variant of the engagement formula. It
// favors recent high-velocity content over stale high-volume content; saves
// and unique views carry no weight here.
func rankScore(c *dbmysql.Content, now time.Time) float64 {
	hours := now.Sub(c.PublishedAt).Hours()
	if hours < epsilonHours {
		hours = epsilonHours
	}
	raw := float64(c.Views)*0.4 +
		float64(c.Likes)*1.5 +
		float64(c.Comments)*2.0 +
		float64(c.Shares)*3.0
	return raw / hours
}

// Compute ranks the candidate rows as of now, ties broken by more recent
// publish time, capped at limit entries.
func Compute(rows []dbmysql.Content, now time.Time, limit int) []Item {
	items := make([]Item, 0, len(rows))
	for i := range rows {
		items = append(items, Item{
			ContentID:   rows[i].ContentID,
			OwnerID:     rows[i].OwnerID,
			Score:       rankScore(&rows[i], now),
			PublishedAt: rows[i].PublishedAt,
		})
	}
	sort.SliceStable(items, func(i, j int) bool {
		if items[i].Score != items[j].Score {
			return items[i].Score > items[j].Score
		}
		return items[i].PublishedAt.After(items[j].PublishedAt)
	})
	if limit > 0 && len(items) > limit {
		items = items[:limit]
	}
	return items
}

type Service interface {
	Refresh(ctx context.Context) error
	Current(ctx context.Context) ([]Item, error)
	Run(ctx context.Context)
}

type trendingService struct {
	source   ContentSource
	store    *SnapshotStore
	logger   *logrus.Logger
	lookback time.Duration
	interval time.Duration
	limit    int

	mu         sync.RWMutex
	current    []Item
	computedAt time.Time
	computed   bool
}

func NewService(source ContentSource, store *SnapshotStore, logger *logrus.Logger, lookback, interval time.Duration, limit int) Service {
	if lookback <= 0 {
		lookback = 7 * 24 * time.Hour
	}
	if interval <= 0 {
		interval = 15 * time.Minute
	}
	if limit <= 0 {
		limit = 1000
	}
	return &trendingService{
		source:   source,
		store:    store,
		logger:   logger,
		lookback: lookback,
		interval: interval,
		limit:    limit,
	}
}

// Refresh rebuilds the ranking from the content source. On success the
// result replaces the in-memory view and is persisted as the fallback
// snapshot; on failure the previous ranking stays in place.
func (s *trendingService) Refresh(ctx context.Context) error {
	now := time.Now().UTC()
	rows, err := s.source.ListPublicSince(ctx, now.Add(-s.lookback))
	if err != nil {
		s.logger.WithFields(logrus.Fields{
			"lookback": s.lookback.String(),
		}).WithError(err).Warn("trending refresh failed, keeping previous ranking")
		return fmt.Errorf("listing ranking candidates: %w", err)
	}

	items := Compute(rows, now, s.limit)

	s.mu.Lock()
	s.current = items
	s.computedAt = now
	s.computed = true
	s.mu.Unlock()

	if s.store != nil {
		if err := s.store.Save(Snapshot{ComputedAt: now, Items: items}); err != nil {
			s.logger.WithError(err).Warn("persisting trending snapshot failed")
		}
	}

	s.logger.WithFields(logrus.Fields{
		"candidates": len(rows),
		"ranked":     len(items),
	}).Debug("trending ranking refreshed")
	return nil
}

// Current returns the latest ranking. If no refresh has succeeded in this
// process, the last persisted snapshot is served instead; only when no
// ranking was ever computed does the window count as unavailable.
func (s *trendingService) Current(ctx context.Context) ([]Item, error) {
	s.mu.RLock()
	if s.computed {
		items := make([]Item, len(s.current))
		copy(items, s.current)
		s.mu.RUnlock()
		return items, nil
	}
	s.mu.RUnlock()

	if s.store != nil {
		snap, ok, err := s.store.Load()
		if err != nil {
			return nil, fmt.Errorf("loading trending snapshot: %w", err)
		}
		if ok {
			s.mu.Lock()
			s.current = snap.Items
			s.computedAt = snap.ComputedAt
			s.computed = true
			s.mu.Unlock()
			return snap.Items, nil
		}
	}
	return nil, common.ErrWindowUnavailable
}

// Run refreshes once immediately, then on every tick until the context is
// cancelled.
func (s *trendingService) Run(ctx context.Context) {
	if err := s.Refresh(ctx); err != nil {
		s.logger.WithError(err).Warn("initial trending refresh failed")
	}

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			s.logger.Info("trending refresher stopping")
			return
		case <-ticker.C:
			if err := s.Refresh(ctx); err != nil {
				s.logger.WithError(err).Warn("scheduled trending refresh failed")
			}
		}
	}
}
