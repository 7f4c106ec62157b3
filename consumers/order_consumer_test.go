package consumers

import (
	"context"
	"testing"

	"order-service/libs"
	"order-service/models"
)

type recordingStore struct {
	saved []*models.Order
}

func (s *recordingStore) Save(ctx context.Context, order *models.Order) error {
	s.saved = append(s.saved, order)
	return nil
}

type mapCache struct {
	data map[string][]byte
}

func (c *mapCache) Get(ctx context.Context, key string) ([]byte, error) {
	return c.data[key], nil
}

func snapshot(t *testing.T, id int, status models.Status) []byte {
	t.Helper()

	order := &models.Order{ID: id, UserID: 1, Status: status}
	payload, err := order.Snapshot()
	if err != nil {
		t.Fatalf("Failed to build snapshot: %v", err)
	}
	return payload
}

func newConsumer() (*OrderConsumer, *recordingStore, *mapCache) {
	store := &recordingStore{}
	cache := &mapCache{data: map[string][]byte{}}
	return NewOrderConsumer(store, cache), store, cache
}

func TestHandleSkipsFreshlyCreatedOrders(t *testing.T) {
	consumer, store, _ := newConsumer()

	payload := snapshot(t, 1, models.StatusInitiated)
	if err := consumer.Handle(context.Background(), payload); err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}

	// replay the same creation event: still no persist
	if err := consumer.Handle(context.Background(), payload); err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}

	if len(store.saved) != 0 {
		t.Errorf("Expected no persist calls for INITIATED snapshots, got %d", len(store.saved))
	}
}

func TestHandlePrefersCacheSnapshot(t *testing.T) {
	consumer, store, cache := newConsumer()

	cache.data[libs.OrderKey(5)] = snapshot(t, 5, models.StatusShipped)
	message := snapshot(t, 5, models.StatusPaymentPending)

	if err := consumer.Handle(context.Background(), message); err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}

	if len(store.saved) != 1 {
		t.Fatalf("Expected 1 persist call, got %d", len(store.saved))
	}
	if store.saved[0].Status != models.StatusShipped {
		t.Errorf("Expected persisted status %s, got %s", models.StatusShipped, store.saved[0].Status)
	}
}

func TestHandleFallsBackToMessage(t *testing.T) {
	consumer, store, _ := newConsumer()

	message := snapshot(t, 9, models.StatusAddressFilled)
	if err := consumer.Handle(context.Background(), message); err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}

	if len(store.saved) != 1 {
		t.Fatalf("Expected 1 persist call, got %d", len(store.saved))
	}
	if store.saved[0].ID != 9 || store.saved[0].Status != models.StatusAddressFilled {
		t.Errorf("Unexpected persisted order: %+v", store.saved[0])
	}
}

func TestHandleSkipsWhenCacheHoldsCreationSnapshot(t *testing.T) {
	consumer, store, cache := newConsumer()

	// the cache entry wins even when the message itself is further along
	cache.data[libs.OrderKey(3)] = snapshot(t, 3, models.StatusInitiated)
	message := snapshot(t, 3, models.StatusAddressFilled)

	if err := consumer.Handle(context.Background(), message); err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}
	if len(store.saved) != 0 {
		t.Errorf("Expected no persist calls, got %d", len(store.saved))
	}
}

func TestHandleMalformedPayload(t *testing.T) {
	consumer, store, _ := newConsumer()

	if err := consumer.Handle(context.Background(), []byte("not json")); err == nil {
		t.Error("Expected error for malformed payload")
	}
	if len(store.saved) != 0 {
		t.Errorf("Expected no persist calls, got %d", len(store.saved))
	}
}

func TestRunDropsFailedMessages(t *testing.T) {
	consumer, store, _ := newConsumer()

	messages := make(chan []byte, 2)
	messages <- []byte("garbage")
	messages <- snapshot(t, 2, models.StatusShipped)
	close(messages)

	consumer.Run(context.Background(), messages)

	if len(store.saved) != 1 {
		t.Fatalf("Expected the valid message to persist, got %d saves", len(store.saved))
	}
	if store.saved[0].ID != 2 {
		t.Errorf("Expected order 2 persisted, got %d", store.saved[0].ID)
	}
}
