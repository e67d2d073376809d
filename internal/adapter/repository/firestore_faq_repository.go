package repository

import (
	"context"
	"time"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"

	"replyrush/internal/domain/entity"
	"replyrush/internal/domain/repository"
	"replyrush/pkg/errors"
)

type firestoreFAQRepository struct {
	client *firestore.Client
}

func NewFirestoreFAQRepository(client *firestore.Client) repository.FAQRepository {
	return &firestoreFAQRepository{
		client: client,
	}
}

func (r *firestoreFAQRepository) List(ctx context.Context) ([]*entity.FAQ, error) {
	iter := r.client.Collection("faqs").OrderBy("createdAt", firestore.Asc).Documents(ctx)

	var faqs []*entity.FAQ
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, errors.Internal("Failed to list FAQs", err)
		}

		var faq entity.FAQ
		if err := doc.DataTo(&faq); err != nil {
			return nil, errors.Internal("Failed to parse FAQ data", err)
		}
		faqs = append(faqs, &faq)
	}

	return faqs, nil
}

func (r *firestoreFAQRepository) Upsert(ctx context.Context, faq *entity.FAQ) error {
	now := time.Now()
	if faq.ID == "" {
		doc := r.client.Collection("faqs").NewDoc()
		faq.ID = doc.ID
	}
	if faq.CreatedAt.IsZero() {
		faq.CreatedAt = now
	}
	faq.UpdatedAt = now

	_, err := r.client.Collection("faqs").Doc(faq.ID).Set(ctx, faq)
	if err != nil {
		return errors.Internal("Failed to save FAQ", err)
	}

	return nil
}

func (r *firestoreFAQRepository) Delete(ctx context.Context, id string) error {
	_, err := r.client.Collection("faqs").Doc(id).Delete(ctx)
	if err != nil {
		return errors.Internal("Failed to delete FAQ", err)
	}

	return nil
}
