package repository

import (
	"context"

	"replyrush/internal/domain/entity"
)

// ConversationRepository keys conversations by the customer's whatsapp
// number (one conversation per customer). Upsert creates the record on
// first contact and replaces it on every later turn.
type ConversationRepository interface {
	List(ctx context.Context, limit, offset int) ([]*entity.Conversation, int64, error)
	GetByID(ctx context.Context, id string) (*entity.Conversation, error)
	GetByCustomerWhatsapp(ctx context.Context, whatsapp string) (*entity.Conversation, error)
	Upsert(ctx context.Context, conversation *entity.Conversation) error
}
