package events

import (
	"context"
	"log"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/surajmeruva0786/DigiGov10/internal/model"
)

// ComplaintEventPublisher emits complaint lifecycle events (best-effort, must
// not block or fail the API path). Swappable with a mock in tests.
type ComplaintEventPublisher interface {
	PublishComplaintEvent(ctx context.Context, event string, c model.Complaint)
}

// RedisPublisher writes complaint events to a Redis stream. If rdb or stream
// is empty the methods are no-ops.
type RedisPublisher struct {
	rdb    *redis.Client
	stream string
}

func NewRedisPublisher(rdb *redis.Client, stream string) *RedisPublisher {
	return &RedisPublisher{rdb: rdb, stream: stream}
}

// PublishComplaintEvent appends the event to the stream. Errors are logged,
// never returned: events are advisory, the store is the source of truth.
// The event should go out even when the request is cancelled, so publishing
// detaches from the caller with its own timeout.
func (p *RedisPublisher) PublishComplaintEvent(_ context.Context, event string, c model.Complaint) {
	if p == nil || p.rdb == nil || p.stream == "" {
		return
	}
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		err := p.rdb.XAdd(ctx, &redis.XAddArgs{
			Stream: p.stream,
			Values: map[string]interface{}{
				"event":   event,
				"id":      c.ID,
				"subject": c.Subject,
				"sector":  string(c.Sector),
				"status":  string(c.Status),
				"user_id": c.UserID,
			},
		}).Err()
		if err != nil {
			log.Printf("events: publish %s for %s: %v", event, c.ID, err)
		}
	}()
}
