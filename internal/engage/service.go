// Package engage turns interaction events into counter updates and
// engagement scores. Events are appended to the time-partitioned log first;
// counters then move atomically and the score is recomputed from the counter
// tuple alone.
package engage

import (
	"context"
	"fmt"
	"time"

	"gocircle/internal/common"
	"gocircle/internal/dbmongo"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// Kind of interaction event. Each kind increments exactly one counter.
type Kind string

const (
	KindView    Kind = "view"
	KindLike    Kind = "like"
	KindComment Kind = "comment"
	KindShare   Kind = "share"
	KindSave    Kind = "save"
)

var kindColumns = map[Kind]string{
	KindView:    "views",
	KindLike:    "likes",
	KindComment: "comments",
	KindShare:   "shares",
	KindSave:    "saves",
}

// Event is an incoming interaction. ActorID 0 marks an anonymous actor,
// admitted for views only; anonymous views never count toward unique views.
type Event struct {
	ContentID  uint64
	ActorID    uint64
	Kind       Kind
	OccurredAt time.Time
	Payload    map[string]interface{}
}

// EventSink is the append-only log the aggregator writes through.
type EventSink interface {
	Append(ctx context.Context, ev dbmongo.InteractionEvent) error
}

type Service interface {
	RecordEvent(ctx context.Context, ev Event) error
}

type engageService struct {
	repo       CounterRepository
	events     EventSink
	logger     *logrus.Logger
	maxRetries int
}

func NewService(repo CounterRepository, events EventSink, logger *logrus.Logger, maxRetries int) Service {
	if maxRetries <= 0 {
		maxRetries = 3
	}
	return &engageService{
		repo:       repo,
		events:     events,
		logger:     logger,
		maxRetries: maxRetries,
	}
}

func (s *engageService) RecordEvent(ctx context.Context, ev Event) error {
	column, ok := kindColumns[ev.Kind]
	if !ok {
		return fmt.Errorf("unknown event kind %q", ev.Kind)
	}

	// Only views may come from an anonymous actor. Everything else moves a
	// counter on someone's behalf and needs an authenticated identity.
	if ev.ActorID == common.AnonymousID && ev.Kind != KindView {
		return fmt.Errorf("event kind %q requires an authenticated actor", ev.Kind)
	}

	// The target must exist and not be soft-deleted.
	if _, err := s.repo.GetContent(ctx, ev.ContentID); err != nil {
		return err
	}

	occurred := ev.OccurredAt
	if occurred.IsZero() {
		occurred = time.Now()
	}
	occurred = occurred.UTC()

	logEvent := dbmongo.InteractionEvent{
		EventID:    uuid.NewString(),
		ContentID:  ev.ContentID,
		ActorID:    ev.ActorID,
		Kind:       string(ev.Kind),
		OccurredAt: occurred,
		Day:        occurred.Format("2006-01-02"),
		Payload:    ev.Payload,
	}
	if err := s.events.Append(ctx, logEvent); err != nil {
		return fmt.Errorf("appending interaction event: %w", err)
	}

	if err := s.repo.IncrementCounter(ctx, ev.ContentID, column); err != nil {
		return err
	}

	if ev.Kind == KindView && ev.ActorID != common.AnonymousID {
		fresh, err := s.repo.MarkUniqueView(ctx, ev.ContentID, ev.ActorID, logEvent.Day)
		if err != nil {
			return err
		}
		if fresh {
			if err := s.repo.IncrementCounter(ctx, ev.ContentID, "unique_views"); err != nil {
				return err
			}
		}
	}

	return s.recomputeScore(ctx, ev.ContentID)
}

// recomputeScore re-reads the counter tuple, applies the pure score formula
// and writes under the version guard. A lost race is a stale write, retried
// with a fresh read up to maxRetries before surfacing as transient.
func (s *engageService) recomputeScore(ctx context.Context, contentID uint64) error {
	for attempt := 1; attempt <= s.maxRetries; attempt++ {
		content, err := s.repo.GetContent(ctx, contentID)
		if err != nil {
			return err
		}

		score := Score(Counters{
			Views:    content.Views,
			Likes:    content.Likes,
			Comments: content.Comments,
			Shares:   content.Shares,
			Saves:    content.Saves,
		})

		ok, err := s.repo.UpdateScoreCAS(ctx, contentID, content.Version, score)
		if err != nil {
			return err
		}
		if ok {
			return nil
		}

		s.logger.WithFields(logrus.Fields{
			"content_id": contentID,
			"attempt":    attempt,
		}).Debug("stale engagement score write, retrying")
	}
	return fmt.Errorf("recomputing engagement score for content %d (%v): %w", contentID, common.ErrStaleWrite, common.ErrTransient)
}
