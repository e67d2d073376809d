package repository

import (
	"context"

	"replyrush/internal/domain/entity"
)

// BusinessRepository manages the singleton business profile.
type BusinessRepository interface {
	Get(ctx context.Context) (*entity.Business, error)
	Save(ctx context.Context, business *entity.Business) error
}
