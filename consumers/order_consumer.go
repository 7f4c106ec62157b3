package consumers

import (
	"context"
	"fmt"
	"log"

	"order-service/libs"
	"order-service/models"
)

type OrderStore interface {
	Save(ctx context.Context, order *models.Order) error
}

type SnapshotCache interface {
	Get(ctx context.Context, key string) ([]byte, error)
}

// OrderConsumer drains the order event stream and reconciles each message
// against the snapshot cache before persisting, independent of the command
// path that emitted the event.
type OrderConsumer struct {
	orders OrderStore
	cache  SnapshotCache
}

func NewOrderConsumer(orders OrderStore, cache SnapshotCache) *OrderConsumer {
	return &OrderConsumer{
		orders: orders,
		cache:  cache,
	}
}

// Run processes messages until the channel closes. Failed messages are
// logged and dropped; there is no retry.
func (c *OrderConsumer) Run(ctx context.Context, messages <-chan []byte) {
	log.Println("Order consumer started")
	for payload := range messages {
		if err := c.Handle(ctx, payload); err != nil {
			log.Printf("Failed to process order event: %v", err)
		}
	}
	log.Println("Order consumer stopped")
}

// Handle reconciles one event-stream message. The cache entry wins over the
// message when present: delivery order is not guaranteed, and the cache may
// already hold a state at least as fresh as the message.
func (c *OrderConsumer) Handle(ctx context.Context, payload []byte) error {
	incoming, err := models.OrderFromSnapshot(payload)
	if err != nil {
		return fmt.Errorf("decode event payload: %w", err)
	}

	candidate := incoming
	cached, err := c.cache.Get(ctx, libs.OrderKey(incoming.ID))
	if err != nil {
		return fmt.Errorf("cache lookup for order %d: %w", incoming.ID, err)
	}
	if cached != nil {
		candidate, err = models.OrderFromSnapshot(cached)
		if err != nil {
			return fmt.Errorf("decode cached snapshot for order %d: %w", incoming.ID, err)
		}
	}

	// Freshly created orders were already persisted synchronously by the
	// command path; writing the snapshot again would duplicate the row.
	if candidate.Status == models.StatusInitiated {
		log.Printf("Skipping persist for freshly created order %d", candidate.ID)
		return nil
	}

	if err := c.orders.Save(ctx, candidate); err != nil {
		return fmt.Errorf("persist order %d: %w", candidate.ID, err)
	}

	log.Printf("Order %d reconciled to status %s", candidate.ID, candidate.Status)
	return nil
}
