package usecase

import (
	"context"
	"fmt"
	"sync"

	"github.com/cloudwego/eino/components/model"
	"github.com/cloudwego/eino/schema"

	"replyrush/internal/domain/entity"
	"replyrush/pkg/errors"
)

type memoryProductRepo struct {
	mu       sync.Mutex
	products []*entity.Product
}

func (r *memoryProductRepo) List(ctx context.Context) ([]*entity.Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]*entity.Product(nil), r.products...), nil
}

func (r *memoryProductRepo) GetByID(ctx context.Context, id string) (*entity.Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, p := range r.products {
		if p.ID == id {
			return p, nil
		}
	}
	return nil, errors.NotFound("Product", nil)
}

func (r *memoryProductRepo) Upsert(ctx context.Context, product *entity.Product) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if product.ID == "" {
		product.ID = fmt.Sprintf("p%d", len(r.products)+1)
	}
	for i, p := range r.products {
		if p.ID == product.ID {
			r.products[i] = product
			return nil
		}
	}
	r.products = append(r.products, product)
	return nil
}

func (r *memoryProductRepo) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i, p := range r.products {
		if p.ID == id {
			r.products = append(r.products[:i], r.products[i+1:]...)
			return nil
		}
	}
	return nil
}

type memoryFAQRepo struct {
	mu   sync.Mutex
	faqs []*entity.FAQ
}

func (r *memoryFAQRepo) List(ctx context.Context) ([]*entity.FAQ, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]*entity.FAQ(nil), r.faqs...), nil
}

func (r *memoryFAQRepo) Upsert(ctx context.Context, faq *entity.FAQ) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if faq.ID == "" {
		faq.ID = fmt.Sprintf("f%d", len(r.faqs)+1)
	}
	for i, f := range r.faqs {
		if f.ID == faq.ID {
			r.faqs[i] = faq
			return nil
		}
	}
	r.faqs = append(r.faqs, faq)
	return nil
}

func (r *memoryFAQRepo) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i, f := range r.faqs {
		if f.ID == id {
			r.faqs = append(r.faqs[:i], r.faqs[i+1:]...)
			return nil
		}
	}
	return nil
}

type memoryBusinessRepo struct {
	mu       sync.Mutex
	business *entity.Business
}

func (r *memoryBusinessRepo) Get(ctx context.Context) (*entity.Business, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.business == nil {
		return nil, errors.NotFound("Business profile", nil)
	}
	return r.business, nil
}

func (r *memoryBusinessRepo) Save(ctx context.Context, business *entity.Business) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.business = business
	return nil
}

type memoryOrderRepo struct {
	mu     sync.Mutex
	orders []*entity.Order
}

func (r *memoryOrderRepo) Create(ctx context.Context, order *entity.Order) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	// Newest first, like the ledger query
	r.orders = append([]*entity.Order{order}, r.orders...)
	return nil
}

func (r *memoryOrderRepo) GetByID(ctx context.Context, id string) (*entity.Order, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, o := range r.orders {
		if o.ID == id {
			return o, nil
		}
	}
	return nil, errors.NotFound("Order", nil)
}

func (r *memoryOrderRepo) List(ctx context.Context, limit, offset int) ([]*entity.Order, int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	orders := append([]*entity.Order(nil), r.orders...)
	total := int64(len(orders))
	if offset > 0 {
		if offset >= len(orders) {
			return nil, total, nil
		}
		orders = orders[offset:]
	}
	if limit > 0 && limit < len(orders) {
		orders = orders[:limit]
	}
	return orders, total, nil
}

func (r *memoryOrderRepo) UpdateStatus(ctx context.Context, id string, status entity.OrderStatus) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, o := range r.orders {
		if o.ID == id {
			o.Status = status
			return nil
		}
	}
	return errors.NotFound("Order", nil)
}

type memoryConversationRepo struct {
	mu            sync.Mutex
	conversations []*entity.Conversation
}

func (r *memoryConversationRepo) List(ctx context.Context, limit, offset int) ([]*entity.Conversation, int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]*entity.Conversation(nil), r.conversations...), int64(len(r.conversations)), nil
}

func (r *memoryConversationRepo) GetByID(ctx context.Context, id string) (*entity.Conversation, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, conv := range r.conversations {
		if conv.ID == id {
			return cloneConversation(conv), nil
		}
	}
	return nil, errors.NotFound("Conversation", nil)
}

func (r *memoryConversationRepo) GetByCustomerWhatsapp(ctx context.Context, whatsapp string) (*entity.Conversation, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, conv := range r.conversations {
		if conv.CustomerWhatsapp == whatsapp {
			return cloneConversation(conv), nil
		}
	}
	return nil, errors.NotFound("Conversation", nil)
}

func (r *memoryConversationRepo) Upsert(ctx context.Context, conversation *entity.Conversation) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if conversation.ID == "" {
		conversation.ID = fmt.Sprintf("c%d", len(r.conversations)+1)
	}
	stored := cloneConversation(conversation)
	for i, conv := range r.conversations {
		if conv.CustomerWhatsapp == conversation.CustomerWhatsapp {
			r.conversations[i] = stored
			return nil
		}
	}
	r.conversations = append(r.conversations, stored)
	return nil
}

func cloneConversation(conv *entity.Conversation) *entity.Conversation {
	clone := *conv
	clone.Messages = append([]entity.Message(nil), conv.Messages...)
	return &clone
}

// fakeChatModel scripts the generation backend: each call pops the next
// response (or error) and records how often it was invoked.
type fakeChatModel struct {
	mu        sync.Mutex
	responses []string
	err       error
	calls     int
}

func (m *fakeChatModel) Generate(ctx context.Context, input []*schema.Message, opts ...model.Option) (*schema.Message, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.calls++
	if m.err != nil {
		return nil, m.err
	}
	if len(m.responses) == 0 {
		return nil, fmt.Errorf("fake model has no scripted response")
	}
	content := m.responses[0]
	if len(m.responses) > 1 {
		m.responses = m.responses[1:]
	}
	return schema.AssistantMessage(content, nil), nil
}

func (m *fakeChatModel) Stream(ctx context.Context, input []*schema.Message, opts ...model.Option) (*schema.StreamReader[*schema.Message], error) {
	return nil, fmt.Errorf("streaming not supported")
}

func (m *fakeChatModel) callCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.calls
}
