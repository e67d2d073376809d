package usecase

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"replyrush/internal/domain/entity"
)

func TestRespondParsesWellFormedDecision(t *testing.T) {
	chatModel := &fakeChatModel{responses: []string{
		`{"reply_message": "The iPhone 15 Pro Max is ₦1,850,000. Shall I place the order?", "order_intent": false}`,
	}}
	uc := NewAssistantUseCase(chatModel)

	decision := uc.Respond(context.Background(), "How much is the iPhone?", nil, testGrounding())

	require.NotNil(t, decision)
	assert.Equal(t, "The iPhone 15 Pro Max is ₦1,850,000. Shall I place the order?", decision.ReplyMessage)
	assert.False(t, decision.OrderIntent)
	assert.Nil(t, decision.ExtractedOrder)
}

func TestRespondParsesExtractedOrderFields(t *testing.T) {
	chatModel := &fakeChatModel{responses: []string{
		`{"reply_message": "Order noted!", "order_intent": true, "extracted_order_fields": {"customerName": "Tunde Afolabi", "deliveryAddress": "Lekki Phase 1, Lagos", "items": [{"name": "iphone 15 pro max", "quantity": 1}]}}`,
	}}
	uc := NewAssistantUseCase(chatModel)

	decision := uc.Respond(context.Background(), "I want to order", nil, testGrounding())

	assert.True(t, decision.OrderIntent)
	require.NotNil(t, decision.ExtractedOrder)
	assert.Equal(t, "Tunde Afolabi", decision.ExtractedOrder.CustomerName)
	assert.Equal(t, "Lekki Phase 1, Lagos", decision.ExtractedOrder.DeliveryAddress)
	require.Len(t, decision.ExtractedOrder.Items, 1)
	assert.Equal(t, "iphone 15 pro max", decision.ExtractedOrder.Items[0].Name)
	assert.Equal(t, 1, decision.ExtractedOrder.Items[0].Quantity)
}

func TestRespondToleratesMarkdownFences(t *testing.T) {
	chatModel := &fakeChatModel{responses: []string{
		"```json\n{\"reply_message\": \"Good day boss!\", \"order_intent\": false}\n```",
	}}
	uc := NewAssistantUseCase(chatModel)

	decision := uc.Respond(context.Background(), "Hello", nil, testGrounding())

	assert.Equal(t, "Good day boss!", decision.ReplyMessage)
	assert.False(t, decision.OrderIntent)
}

func TestRespondFallsBackOnBackendError(t *testing.T) {
	chatModel := &fakeChatModel{err: fmt.Errorf("connection reset")}
	uc := NewAssistantUseCase(chatModel)

	decision := uc.Respond(context.Background(), "Hello", nil, testGrounding())

	assert.Equal(t, FallbackReply, decision.ReplyMessage)
	assert.False(t, decision.OrderIntent)
	assert.Nil(t, decision.ExtractedOrder)
}

func TestRespondFallsBackOnUnparsableOutput(t *testing.T) {
	chatModel := &fakeChatModel{responses: []string{"I'd be happy to help with that!"}}
	uc := NewAssistantUseCase(chatModel)

	decision := uc.Respond(context.Background(), "Hello", nil, testGrounding())

	assert.Equal(t, FallbackReply, decision.ReplyMessage)
	assert.False(t, decision.OrderIntent)
}

func TestRespondFallsBackOnEmptyReplyMessage(t *testing.T) {
	chatModel := &fakeChatModel{responses: []string{
		`{"reply_message": "  ", "order_intent": true}`,
	}}
	uc := NewAssistantUseCase(chatModel)

	decision := uc.Respond(context.Background(), "Hello", nil, testGrounding())

	assert.Equal(t, FallbackReply, decision.ReplyMessage)
	assert.False(t, decision.OrderIntent)
}

func TestRespondFallsBackWithoutModel(t *testing.T) {
	uc := NewAssistantUseCase(nil)

	decision := uc.Respond(context.Background(), "Hello", nil, testGrounding())

	assert.Equal(t, FallbackReply, decision.ReplyMessage)
	assert.False(t, decision.OrderIntent)
}

func TestRespondDropsExtractedFieldsWithoutIntent(t *testing.T) {
	chatModel := &fakeChatModel{responses: []string{
		`{"reply_message": "Still browsing? No wahala.", "order_intent": false, "extracted_order_fields": {"customerName": "Tunde"}}`,
	}}
	uc := NewAssistantUseCase(chatModel)

	decision := uc.Respond(context.Background(), "Just looking", nil, testGrounding())

	assert.False(t, decision.OrderIntent)
	assert.Nil(t, decision.ExtractedOrder)
}

func TestRespondSendsHistoryAndGrounding(t *testing.T) {
	chatModel := &fakeChatModel{responses: []string{
		`{"reply_message": "ok", "order_intent": false}`,
	}}
	uc := NewAssistantUseCase(chatModel)

	history := []entity.Message{
		{Sender: entity.SenderCustomer, Content: "Hello"},
		{Sender: entity.SenderAI, Content: "Good day!"},
	}

	decision := uc.Respond(context.Background(), "How much is delivery?", history, testGrounding())

	assert.Equal(t, "ok", decision.ReplyMessage)
	assert.Equal(t, 1, chatModel.callCount())
}
