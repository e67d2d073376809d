package repository

import (
	"context"

	"cloud.google.com/go/firestore"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"replyrush/internal/domain/entity"
	"replyrush/internal/domain/repository"
	"replyrush/pkg/errors"
)

// The business profile is a singleton document.
const businessDocID = "profile"

type firestoreBusinessRepository struct {
	client *firestore.Client
}

func NewFirestoreBusinessRepository(client *firestore.Client) repository.BusinessRepository {
	return &firestoreBusinessRepository{
		client: client,
	}
}

func (r *firestoreBusinessRepository) Get(ctx context.Context) (*entity.Business, error) {
	doc, err := r.client.Collection("business").Doc(businessDocID).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, errors.NotFound("Business profile", err)
		}
		return nil, errors.Internal("Failed to get business profile", err)
	}

	var business entity.Business
	if err := doc.DataTo(&business); err != nil {
		return nil, errors.Internal("Failed to parse business profile", err)
	}

	return &business, nil
}

func (r *firestoreBusinessRepository) Save(ctx context.Context, business *entity.Business) error {
	if business.ID == "" {
		business.ID = businessDocID
	}

	_, err := r.client.Collection("business").Doc(businessDocID).Set(ctx, business)
	if err != nil {
		return errors.Internal("Failed to save business profile", err)
	}

	return nil
}
