package cart

import (
	"context"
	"fmt"

	"agriconnect-be/internal/logger"
	"agriconnect-be/internal/product"

	"go.uber.org/zap"
)

// View is the cart as returned to the client.
type View struct {
	Lines      []Line  `json:"items"`
	TotalPrice float64 `json:"total_price"`
	TotalItems int     `json:"total_items"`
}

// Service defines the business logic for session carts.
type Service interface {
	AddItem(ctx context.Context, sessionID, productID string) (string, error)
	RemoveItem(ctx context.Context, sessionID, productID string) error
	SetQuantity(ctx context.Context, sessionID, productID string, quantity int) error
	Clear(ctx context.Context, sessionID string) error
	Get(ctx context.Context, sessionID string) (*View, error)
	Snapshot(sessionID string) ([]Line, float64)
}

type service struct {
	store       *Store
	productRepo product.Repository
}

// NewService creates a new cart service
func NewService(store *Store, productRepo product.Repository) Service {
	return &service{store: store, productRepo: productRepo}
}

// AddItem snapshots the product into the session cart and returns the
// user-visible acknowledgment.
func (s *service) AddItem(ctx context.Context, sessionID, productID string) (string, error) {
	p, err := s.productRepo.GetByID(ctx, productID)
	if err != nil {
		logger.FromCtx(ctx).Error("failed to look up product for cart",
			zap.String("product_id", productID),
			zap.Error(err),
		)
		return "", err
	}
	if p == nil {
		return "", ErrProductNotFound
	}
	if p.StockQuantity <= 0 {
		return "", ErrOutOfStock
	}

	s.store.AddItem(sessionID, *p)

	return fmt.Sprintf("%s added to your cart", p.Name), nil
}

func (s *service) RemoveItem(ctx context.Context, sessionID, productID string) error {
	s.store.RemoveItem(sessionID, productID)
	return nil
}

func (s *service) SetQuantity(ctx context.Context, sessionID, productID string, quantity int) error {
	s.store.SetQuantity(sessionID, productID, quantity)
	return nil
}

func (s *service) Clear(ctx context.Context, sessionID string) error {
	s.store.Clear(sessionID)
	return nil
}

func (s *service) Get(ctx context.Context, sessionID string) (*View, error) {
	lines, total, count := s.store.Snapshot(sessionID)
	if lines == nil {
		lines = []Line{}
	}
	return &View{Lines: lines, TotalPrice: total, TotalItems: count}, nil
}

func (s *service) Snapshot(sessionID string) ([]Line, float64) {
	lines, total, _ := s.store.Snapshot(sessionID)
	return lines, total
}
