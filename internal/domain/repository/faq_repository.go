package repository

import (
	"context"

	"replyrush/internal/domain/entity"
)

type FAQRepository interface {
	List(ctx context.Context) ([]*entity.FAQ, error)
	Upsert(ctx context.Context, faq *entity.FAQ) error
	Delete(ctx context.Context, id string) error
}
