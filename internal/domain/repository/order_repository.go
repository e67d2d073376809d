package repository

import (
	"context"

	"replyrush/internal/domain/entity"
)

// OrderRepository is an append/query/update ledger. List returns orders
// newest first.
type OrderRepository interface {
	Create(ctx context.Context, order *entity.Order) error
	GetByID(ctx context.Context, id string) (*entity.Order, error)
	List(ctx context.Context, limit, offset int) ([]*entity.Order, int64, error)
	UpdateStatus(ctx context.Context, id string, status entity.OrderStatus) error
}
