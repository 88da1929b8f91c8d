package product

import (
	"context"

	"agriconnect-be/internal/logger"

	"go.uber.org/zap"
)

// Service defines the read-only catalog operations.
type Service interface {
	List(ctx context.Context) ([]Product, error)
	Get(ctx context.Context, id string) (*Product, error)
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) List(ctx context.Context) ([]Product, error) {
	products, err := s.repo.GetAll(ctx)
	if err != nil {
		logger.FromCtx(ctx).Error("failed to list products", zap.Error(err))
		return nil, ErrFailedListProducts
	}
	return products, nil
}

func (s *service) Get(ctx context.Context, id string) (*Product, error) {
	p, err := s.repo.GetByID(ctx, id)
	if err != nil {
		logger.FromCtx(ctx).Error("failed to get product",
			zap.String("product_id", id),
			zap.Error(err),
		)
		return nil, ErrFailedGetProduct
	}
	if p == nil {
		return nil, ErrProductNotFound
	}
	return p, nil
}
