package services

import (
	"context"
	"fmt"
	"log"
	"math"

	"order-service/libs"
	"order-service/models"
	"order-service/utils"
)

// OrderStore is the durable store contract. It is authoritative: a command
// only succeeds once its order is persisted here.
type OrderStore interface {
	Save(ctx context.Context, order *models.Order) error
	FindByID(ctx context.Context, id int) (*models.Order, error)
	FindAll(ctx context.Context, page, limit int) ([]models.Order, int, error)
}

type UserStore interface {
	Create(ctx context.Context, user *models.User) error
	FindByEmail(ctx context.Context, email string) (*models.User, error)
	FindByID(ctx context.Context, id int) (*models.User, error)
}

type SnapshotCache interface {
	Set(ctx context.Context, key string, value []byte) error
}

type EventPublisher interface {
	Publish(ctx context.Context, payload []byte) error
}

// OrderService drives the order lifecycle. Every transition persists
// synchronously to the durable store, then mirrors the new state to the
// cache and the event stream on a best-effort basis.
type OrderService struct {
	orders OrderStore
	users  UserStore
	cache  SnapshotCache
	stream EventPublisher
}

func NewOrderService(orders OrderStore, users UserStore, cache SnapshotCache, stream EventPublisher) *OrderService {
	return &OrderService{
		orders: orders,
		users:  users,
		cache:  cache,
		stream: stream,
	}
}

func (s *OrderService) CreateOrder(ctx context.Context, req models.CreateOrderRequest) (*models.Order, error) {
	user, err := s.users.FindByEmail(ctx, req.Email)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, fmt.Errorf("%w: %s", ErrUserNotFound, req.Email)
	}

	order := &models.Order{
		UserID: user.ID,
		Status: models.StatusInitiated,
	}
	for _, item := range req.Items {
		order.Items = append(order.Items, models.OrderItem{
			ProductName: item.ProductName,
			Quantity:    item.Quantity,
			Price:       item.Price,
		})
	}

	if err := s.orders.Save(ctx, order); err != nil {
		return nil, err
	}

	s.fanOut(ctx, order)
	return order, nil
}

func (s *OrderService) UpdateShippingAddress(ctx context.Context, orderID int, address string) (*models.Order, error) {
	return s.transition(ctx, orderID, models.StatusAddressFilled, func(order *models.Order) {
		order.Address = &address
	})
}

func (s *OrderService) ConfirmPayment(ctx context.Context, orderID int) (*models.Order, error) {
	return s.transition(ctx, orderID, models.StatusPaymentPending, nil)
}

// ProcessPayment verifies the supplied PIN against the owning user's stored
// PIN before any mutation. A mismatch leaves the order untouched.
func (s *OrderService) ProcessPayment(ctx context.Context, orderID int, pin string) (*models.Order, error) {
	order, err := s.orders.FindByID(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, fmt.Errorf("%w: %d", ErrOrderNotFound, orderID)
	}

	user, err := s.users.FindByID(ctx, order.UserID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, fmt.Errorf("%w: id %d", ErrUserNotFound, order.UserID)
	}

	ok, err := utils.VerifyPIN(user.PIN, pin)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, ErrInvalidPIN
	}

	return s.transition(ctx, orderID, models.StatusPaymentConfirmed, nil)
}

func (s *OrderService) ShipOrder(ctx context.Context, orderID int) (*models.Order, error) {
	return s.transition(ctx, orderID, models.StatusShipped, nil)
}

func (s *OrderService) CompleteOrder(ctx context.Context, orderID int) (*models.Order, error) {
	return s.transition(ctx, orderID, models.StatusCompleted, nil)
}

func (s *OrderService) GetOrder(ctx context.Context, orderID int) (*models.Order, error) {
	order, err := s.orders.FindByID(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, fmt.Errorf("%w: %d", ErrOrderNotFound, orderID)
	}
	return order, nil
}

func (s *OrderService) ListOrders(ctx context.Context, page, limit int) (*models.PaginationResponse, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 10
	}

	orders, totalItems, err := s.orders.FindAll(ctx, page, limit)
	if err != nil {
		return nil, err
	}

	totalPages := int(math.Ceil(float64(totalItems) / float64(limit)))

	return &models.PaginationResponse{
		Success: true,
		Message: "Orders retrieved successfully",
		Data:    orders,
		Meta: models.MetaData{
			Page:       page,
			Limit:      limit,
			TotalItems: totalItems,
			TotalPages: totalPages,
		},
	}, nil
}

func (s *OrderService) transition(ctx context.Context, orderID int, next models.Status, mutate func(*models.Order)) (*models.Order, error) {
	order, err := s.orders.FindByID(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, fmt.Errorf("%w: %d", ErrOrderNotFound, orderID)
	}

	if !order.Status.CanAdvanceTo(next) {
		return nil, fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, order.Status, next)
	}

	if mutate != nil {
		mutate(order)
	}
	order.Status = next

	if err := s.orders.Save(ctx, order); err != nil {
		return nil, err
	}

	s.fanOut(ctx, order)
	return order, nil
}

// fanOut mirrors the persisted order to the event stream and the cache.
// Failures here are logged and swallowed: the durable store already holds
// the state of record, and a degraded side channel must not fail the command.
func (s *OrderService) fanOut(ctx context.Context, order *models.Order) {
	snapshot, err := order.Snapshot()
	if err != nil {
		log.Printf("Failed to serialize snapshot for order %d: %v", order.ID, err)
		return
	}

	if err := s.stream.Publish(ctx, snapshot); err != nil {
		log.Printf("Failed to publish order %d to event stream: %v", order.ID, err)
	}

	if err := s.cache.Set(ctx, libs.OrderKey(order.ID), snapshot); err != nil {
		log.Printf("Failed to cache snapshot for order %d: %v", order.ID, err)
	}
}
