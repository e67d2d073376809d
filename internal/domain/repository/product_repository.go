package repository

import (
	"context"

	"replyrush/internal/domain/entity"
)

// ProductRepository lists products in stable catalog order (oldest first);
// the order reconciler relies on this for deterministic matching.
type ProductRepository interface {
	List(ctx context.Context) ([]*entity.Product, error)
	GetByID(ctx context.Context, id string) (*entity.Product, error)
	Upsert(ctx context.Context, product *entity.Product) error
	Delete(ctx context.Context, id string) error
}
