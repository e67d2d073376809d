package usecase

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"replyrush/internal/domain/entity"
	"replyrush/internal/domain/repository"
	"replyrush/internal/infrastructure/notify"
	"replyrush/internal/infrastructure/turnlock"
	"replyrush/pkg/errors"
	"replyrush/pkg/logger"
)

// ConversationUseCase wires a customer turn together: append the incoming
// message, assemble grounding, invoke the assistant, reconcile an order when
// intent is signaled, append the reply, and persist the transcript.
type ConversationUseCase struct {
	conversationRepo repository.ConversationRepository
	productRepo      repository.ProductRepository
	faqRepo          repository.FAQRepository
	businessRepo     repository.BusinessRepository
	assistant        *AssistantUseCase
	orders           *OrderUseCase
	hub              *notify.Hub
	locks            *turnlock.Registry
}

func NewConversationUseCase(
	conversationRepo repository.ConversationRepository,
	productRepo repository.ProductRepository,
	faqRepo repository.FAQRepository,
	businessRepo repository.BusinessRepository,
	assistant *AssistantUseCase,
	orders *OrderUseCase,
	hub *notify.Hub,
) *ConversationUseCase {
	locks := turnlock.NewRegistry()
	locks.StartCleanupRoutine()

	return &ConversationUseCase{
		conversationRepo: conversationRepo,
		productRepo:      productRepo,
		faqRepo:          faqRepo,
		businessRepo:     businessRepo,
		assistant:        assistant,
		orders:           orders,
		hub:              hub,
		locks:            locks,
	}
}

type HandleMessageInput struct {
	CustomerWhatsapp string
	CustomerName     string
	Content          string
}

// TurnResult reports what one customer turn produced. Reply is nil while the
// conversation is human-handled; Order is non-nil only when a complete order
// was committed this turn.
type TurnResult struct {
	Conversation *entity.Conversation `json:"conversation"`
	Reply        *entity.Message      `json:"reply,omitempty"`
	Order        *entity.Order        `json:"order,omitempty"`
}

func (uc *ConversationUseCase) HandleCustomerMessage(ctx context.Context, input HandleMessageInput) (*TurnResult, error) {
	content := strings.TrimSpace(input.Content)
	if content == "" {
		return nil, errors.BadRequest("Message content is required", nil)
	}
	if input.CustomerWhatsapp == "" {
		return nil, errors.BadRequest("Customer whatsapp is required", nil)
	}

	// One turn per conversation at a time; turns for other customers run
	// concurrently.
	uc.locks.Lock(input.CustomerWhatsapp)
	defer uc.locks.Unlock(input.CustomerWhatsapp)

	conversation, err := uc.conversationRepo.GetByCustomerWhatsapp(ctx, input.CustomerWhatsapp)
	if err != nil {
		if !errors.Is(err, "NOT_FOUND") {
			return nil, err
		}
		customerName := input.CustomerName
		if customerName == "" {
			customerName = input.CustomerWhatsapp
		}
		conversation = &entity.Conversation{
			CustomerName:     customerName,
			CustomerWhatsapp: input.CustomerWhatsapp,
			HandledBy:        entity.HandledByAI,
		}
	}

	customerMessage := newMessage(entity.SenderCustomer, content)
	history := append([]entity.Message(nil), conversation.Messages...)
	conversation.Messages = append(conversation.Messages, customerMessage)
	conversation.LastMessage = customerMessage.Content
	conversation.LastSeen = customerMessage.Timestamp

	if conversation.HandledBy == entity.HandledByHuman {
		// The assistant stays out of human-handled conversations; the
		// message is recorded and the merchant replies manually.
		if err := uc.conversationRepo.Upsert(ctx, conversation); err != nil {
			return nil, err
		}
		uc.hub.Publish(notify.EventConversationUpdated, conversation)
		return &TurnResult{Conversation: conversation}, nil
	}

	grounding, err := uc.assembleGrounding(ctx)
	if err != nil {
		return nil, err
	}

	decision := uc.assistant.Respond(ctx, content, history, grounding)

	var order *entity.Order
	if decision.OrderIntent && decision.ExtractedOrder != nil {
		order, err = uc.orders.CreateFromExtracted(ctx, input.CustomerWhatsapp, decision.ExtractedOrder)
		if err != nil {
			logger.LogTurnError(input.CustomerWhatsapp, "reconcile", err)
			return nil, err
		}
	}

	reply := newMessage(entity.SenderAI, decision.ReplyMessage)
	conversation.Messages = append(conversation.Messages, reply)
	conversation.LastMessage = reply.Content
	conversation.LastSeen = reply.Timestamp

	if err := uc.conversationRepo.Upsert(ctx, conversation); err != nil {
		return nil, err
	}
	uc.hub.Publish(notify.EventConversationUpdated, conversation)

	return &TurnResult{
		Conversation: conversation,
		Reply:        &reply,
		Order:        order,
	}, nil
}

// SendMerchantReply appends a merchant-authored message (sender = human).
func (uc *ConversationUseCase) SendMerchantReply(ctx context.Context, conversationID, content string) (*entity.Conversation, error) {
	content = strings.TrimSpace(content)
	if content == "" {
		return nil, errors.BadRequest("Message content is required", nil)
	}

	conversation, err := uc.lockConversation(ctx, conversationID)
	if err != nil {
		return nil, err
	}
	defer uc.locks.Unlock(conversation.CustomerWhatsapp)

	message := newMessage(entity.SenderHuman, content)
	conversation.Messages = append(conversation.Messages, message)
	conversation.LastMessage = message.Content
	conversation.LastSeen = message.Timestamp

	if err := uc.conversationRepo.Upsert(ctx, conversation); err != nil {
		return nil, err
	}
	uc.hub.Publish(notify.EventConversationUpdated, conversation)

	return conversation, nil
}

// SetHandledBy toggles a conversation between AI and human handling. The
// toggle is always merchant-triggered; assistant escalation language never
// flips it on its own.
func (uc *ConversationUseCase) SetHandledBy(ctx context.Context, conversationID string, mode entity.HandlerMode) (*entity.Conversation, error) {
	if mode != entity.HandledByAI && mode != entity.HandledByHuman {
		return nil, errors.BadRequest("handled_by must be \"ai\" or \"human\"", nil)
	}

	conversation, err := uc.lockConversation(ctx, conversationID)
	if err != nil {
		return nil, err
	}
	defer uc.locks.Unlock(conversation.CustomerWhatsapp)

	conversation.HandledBy = mode
	if err := uc.conversationRepo.Upsert(ctx, conversation); err != nil {
		return nil, err
	}
	uc.hub.Publish(notify.EventConversationUpdated, conversation)

	return conversation, nil
}

func (uc *ConversationUseCase) ListConversations(ctx context.Context, limit, offset int) ([]*entity.Conversation, int64, error) {
	return uc.conversationRepo.List(ctx, limit, offset)
}

func (uc *ConversationUseCase) GetConversation(ctx context.Context, id string) (*entity.Conversation, error) {
	return uc.conversationRepo.GetByID(ctx, id)
}

// lockConversation resolves the conversation's natural key, takes its turn
// lock, and re-reads the record under the lock so appends never race a
// concurrent turn. The caller must unlock with the returned conversation's
// CustomerWhatsapp.
func (uc *ConversationUseCase) lockConversation(ctx context.Context, conversationID string) (*entity.Conversation, error) {
	conversation, err := uc.conversationRepo.GetByID(ctx, conversationID)
	if err != nil {
		return nil, err
	}

	key := conversation.CustomerWhatsapp
	uc.locks.Lock(key)

	conversation, err = uc.conversationRepo.GetByID(ctx, conversationID)
	if err != nil {
		uc.locks.Unlock(key)
		return nil, err
	}

	return conversation, nil
}

func (uc *ConversationUseCase) assembleGrounding(ctx context.Context) (GroundingContext, error) {
	products, err := uc.productRepo.List(ctx)
	if err != nil {
		return GroundingContext{}, err
	}

	faqs, err := uc.faqRepo.List(ctx)
	if err != nil {
		return GroundingContext{}, err
	}

	business, err := uc.businessRepo.Get(ctx)
	if err != nil {
		if !errors.Is(err, "NOT_FOUND") {
			return GroundingContext{}, err
		}
		business = &entity.Business{}
	}

	return GroundingContext{
		Business: business,
		Products: products,
		FAQs:     faqs,
	}, nil
}

func newMessage(sender entity.MessageSender, content string) entity.Message {
	return entity.Message{
		ID:        uuid.NewString(),
		Sender:    sender,
		Content:   content,
		Timestamp: time.Now(),
	}
}
