package libs

import (
	"context"

	"github.com/redis/go-redis/v9"
)

// EventStream carries serialized order snapshots over a Redis pub/sub
// channel. Publishing is fire-and-forget; delivery is at-least-once with no
// ordering guarantee across consumers.
type EventStream struct {
	rdb     *redis.Client
	channel string
}

func NewEventStream(rdb *redis.Client, channel string) *EventStream {
	return &EventStream{rdb: rdb, channel: channel}
}

func (s *EventStream) Publish(ctx context.Context, payload []byte) error {
	return s.rdb.Publish(ctx, s.channel, payload).Err()
}

// Subscribe returns a channel of raw snapshot payloads. The channel closes
// when ctx is cancelled or the underlying subscription ends.
func (s *EventStream) Subscribe(ctx context.Context) <-chan []byte {
	sub := s.rdb.Subscribe(ctx, s.channel)
	out := make(chan []byte)

	go func() {
		defer close(out)
		defer sub.Close()

		messages := sub.Channel()
		for {
			select {
			case <-ctx.Done():
				return
			case msg, ok := <-messages:
				if !ok {
					return
				}
				out <- []byte(msg.Payload)
			}
		}
	}()

	return out
}
