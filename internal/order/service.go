package order

import (
	"context"
	"time"

	"agriconnect-be/internal/cart"
	"agriconnect-be/internal/logger"
	"agriconnect-be/internal/metrics"
	"agriconnect-be/internal/notification"
	"agriconnect-be/internal/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// PlaceOrderParams carries the checkout form: delivery address plus
// customer contact fields.
type PlaceOrderParams struct {
	Address      string
	Name         string
	Email        string
	Phone        string
	DeliveryTime *string
}

type Service interface {
	PlaceOrder(ctx context.Context, params PlaceOrderParams) (*Order, error)
	GetOrders(ctx context.Context) ([]Order, error)
	GetOrder(ctx context.Context, orderID string) (*Order, error)
	UpdateStatus(ctx context.Context, orderID string, status Status) error
}

type service struct {
	repo     Repository
	carts    cart.Service
	notifier notification.Notifier
}

func NewService(repo Repository, carts cart.Service, notifier notification.Notifier) Service {
	return &service{
		repo:     repo,
		carts:    carts,
		notifier: notifier,
	}
}

// PlaceOrder converts the session cart into a persisted order. The header
// and line items land in one transaction; on any persistence failure the
// cart is left untouched. The confirmation email is best-effort.
func (s *service) PlaceOrder(ctx context.Context, params PlaceOrderParams) (*Order, error) {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "service"),
		zap.String("method", "PlaceOrder"),
	)

	// 1. Require an authenticated user and a session cart
	userID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		return nil, ErrUserNotAuthenticated
	}
	sessionID, _ := utils.GetSessionIDFromContext(ctx)

	lines, total := s.carts.Snapshot(sessionID)
	if len(lines) == 0 {
		return nil, ErrCartEmpty
	}

	// 2. Validate checkout fields
	if params.Address == "" || params.Name == "" || params.Email == "" || params.Phone == "" {
		return nil, ErrMissingCheckoutFields
	}

	// 3. Build the order with line snapshots as of submission time
	o := &Order{
		ID:                    uuid.New().String(),
		CustomerID:            userID,
		OrderNumber:           utils.GenerateOrderNumber(),
		TrackingID:            utils.GenerateTrackingID(),
		TotalAmount:           total,
		Status:                StatusPending,
		DeliveryAddress:       params.Address,
		CustomerName:          params.Name,
		CustomerEmail:         params.Email,
		CustomerPhone:         params.Phone,
		PreferredDeliveryTime: params.DeliveryTime,
		CreatedAt:             time.Now().UTC(),
	}

	for _, l := range lines {
		o.Items = append(o.Items, Item{
			ID:           uuid.New().String(),
			OrderID:      o.ID,
			ProductID:    l.Product.ID,
			ProductName:  l.Product.Name,
			ProductImage: l.Product.Image,
			UnitPrice:    l.Product.Price,
			Quantity:     l.Quantity,
			TotalPrice:   l.Product.Price * float64(l.Quantity),
		})
	}

	log = log.With(
		zap.String("order_number", o.OrderNumber),
		zap.Int("item_count", len(o.Items)),
		zap.Float64("total_amount", o.TotalAmount),
	)

	// 4. Persist header + items in one transaction
	if err := s.repo.CreateOrderTx(ctx, o); err != nil {
		log.Error("failed to create order", zap.Error(err))
		return nil, ErrFailedCreateOrder
	}

	// 5. Best-effort confirmation email; a send failure never fails the order
	mailItems := make([]notification.ConfirmationItem, 0, len(o.Items))
	for _, it := range o.Items {
		mailItems = append(mailItems, notification.ConfirmationItem{
			Name:       it.ProductName,
			Quantity:   it.Quantity,
			UnitPrice:  it.UnitPrice,
			TotalPrice: it.TotalPrice,
		})
	}
	if err := s.notifier.SendOrderConfirmation(ctx, notification.Confirmation{
		CustomerName:  o.CustomerName,
		CustomerEmail: o.CustomerEmail,
		CustomerPhone: o.CustomerPhone,
		OrderNumber:   o.OrderNumber,
		TrackingID:    o.TrackingID,
		Items:         mailItems,
		Total:         o.TotalAmount,
		Address:       o.DeliveryAddress,
		DeliveryTime:  utils.PtrString(o.PreferredDeliveryTime),
	}); err != nil {
		log.Warn("failed to send order confirmation", zap.Error(err))
	}

	// 6. Clear the cart only after the order is durably persisted
	_ = s.carts.Clear(ctx, sessionID)
	metrics.OrdersPlaced.Inc()

	log.Info("order placed successfully")

	return o, nil
}

// GetOrders lists the current user's order history, newest first, each
// enriched with its line items.
func (s *service) GetOrders(ctx context.Context) ([]Order, error) {
	userID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		return nil, ErrUserNotAuthenticated
	}

	orders, err := s.repo.GetOrdersByCustomer(ctx, userID)
	if err != nil {
		logger.FromCtx(ctx).Error("failed to get orders",
			zap.String("customer_id", userID),
			zap.Error(err),
		)
		return nil, ErrFailedGetOrders
	}

	return orders, nil
}

// GetOrder returns one of the current user's orders.
func (s *service) GetOrder(ctx context.Context, orderID string) (*Order, error) {
	userID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		return nil, ErrUserNotAuthenticated
	}

	o, err := s.repo.GetOrderByID(ctx, orderID)
	if err != nil {
		logger.FromCtx(ctx).Error("failed to get order",
			zap.String("order_id", orderID),
			zap.Error(err),
		)
		return nil, ErrFailedGetOrders
	}
	if o == nil || o.CustomerID != userID {
		return nil, ErrOrderNotFound
	}

	return o, nil
}

// UpdateStatus moves an order along the delivery state machine. Status is
// otherwise changed by an external administrative actor, so this validates
// the transition rather than trusting the caller.
func (s *service) UpdateStatus(ctx context.Context, orderID string, status Status) error {
	if !KnownStatus(status) {
		return ErrInvalidStatus
	}

	o, err := s.repo.GetOrderByID(ctx, orderID)
	if err != nil {
		return err
	}
	if o == nil {
		return ErrOrderNotFound
	}

	if !CanTransition(o.Status, status) {
		return ErrInvalidTransition
	}

	return s.repo.UpdateOrderStatus(ctx, orderID, status)
}
