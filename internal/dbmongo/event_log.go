package dbmongo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// InteractionEvent is an immutable fact appended once and never updated.
// ActorID 0 marks an anonymous viewer. Day is the UTC calendar-day partition
// key; old partitions can be archived without touching current aggregates,
// which are pre-folded into the content counters.
type InteractionEvent struct {
	EventID    string                 `bson:"event_id" json:"event_id"`
	ContentID  uint64                 `bson:"content_id" json:"content_id"`
	ActorID    uint64                 `bson:"actor_id" json:"actor_id"`
	Kind       string                 `bson:"kind" json:"kind"`
	OccurredAt time.Time              `bson:"occurred_at" json:"occurred_at"`
	Day        string                 `bson:"day" json:"day"`
	Payload    map[string]interface{} `bson:"payload,omitempty" json:"payload,omitempty"`
}

// EventLog is the append-only interaction log backing the engagement
// aggregator and the per-content event listings.
type EventLog struct {
	coll *mongo.Collection
}

func NewEventLog(client *MongoClient) *EventLog {
	return &EventLog{coll: client.Database.Collection("interaction_events")}
}

// EnsureIndexes creates the time-range and partition indexes. Called once at
// startup; safe to repeat.
func (l *EventLog) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	_, err := l.coll.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{Keys: bson.D{{Key: "content_id", Value: 1}, {Key: "occurred_at", Value: -1}}},
		{Keys: bson.D{{Key: "day", Value: 1}}},
		{Keys: bson.D{{Key: "event_id", Value: 1}}, Options: options.Index().SetUnique(true)},
	})
	if err != nil {
		return fmt.Errorf("failed to create event log indexes: %w", err)
	}
	return nil
}

func (l *EventLog) Append(ctx context.Context, ev InteractionEvent) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if _, err := l.coll.InsertOne(ctx, ev); err != nil {
		return fmt.Errorf("failed to append interaction event: %w", err)
	}
	return nil
}

// ListByContent returns the events for one content item within [from, to),
// most recent first, capped at limit.
func (l *EventLog) ListByContent(ctx context.Context, contentID uint64, from, to time.Time, limit int64) ([]InteractionEvent, error) {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	filter := bson.M{
		"content_id":  contentID,
		"occurred_at": bson.M{"$gte": from, "$lt": to},
	}
	opts := options.Find().
		SetSort(bson.D{{Key: "occurred_at", Value: -1}}).
		SetLimit(limit)

	cursor, err := l.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to scan event window: %w", err)
	}
	defer cursor.Close(ctx)

	var events []InteractionEvent
	if err := cursor.All(ctx, &events); err != nil {
		return nil, fmt.Errorf("failed to decode event window: %w", err)
	}
	return events, nil
}

// DropPartitionsBefore removes whole day partitions older than the cutoff.
// Aggregates stay correct because counters are folded into the content rows.
func (l *EventLog) DropPartitionsBefore(ctx context.Context, day string) (int64, error) {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	res, err := l.coll.DeleteMany(ctx, bson.M{"day": bson.M{"$lt": day}})
	if err != nil {
		return 0, fmt.Errorf("failed to drop event partitions: %w", err)
	}
	return res.DeletedCount, nil
}
