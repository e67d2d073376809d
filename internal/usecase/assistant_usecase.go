package usecase

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/cloudwego/eino/components/model"
	"github.com/cloudwego/eino/schema"

	"replyrush/internal/domain/entity"
	"replyrush/pkg/logger"
)

// FallbackReply is surfaced whenever the generation backend fails or its
// output does not conform to the schema. The customer always gets a reply.
const FallbackReply = "Eyah, boss. Network is slow on my end. Abeg, try again."

type ExtractedOrderItem struct {
	Name     string `json:"name"`
	Quantity int    `json:"quantity"`
}

type ExtractedOrder struct {
	CustomerName    string               `json:"customerName"`
	DeliveryAddress string               `json:"deliveryAddress"`
	Items           []ExtractedOrderItem `json:"items"`
}

// AgentDecision is the engine's fixed output contract. ReplyMessage is
// always non-empty; ExtractedOrder is only present when OrderIntent is true.
type AgentDecision struct {
	ReplyMessage   string          `json:"reply_message"`
	OrderIntent    bool            `json:"order_intent"`
	ExtractedOrder *ExtractedOrder `json:"extracted_order_fields,omitempty"`
}

// AssistantUseCase turns a customer utterance plus the prior transcript and
// a grounding snapshot into a structured decision. It is stateless and never
// returns an error: every backend, parse, or schema failure collapses into
// the fallback decision so the orchestrator can always append a reply.
type AssistantUseCase struct {
	chatModel model.BaseChatModel
}

func NewAssistantUseCase(chatModel model.BaseChatModel) *AssistantUseCase {
	return &AssistantUseCase{
		chatModel: chatModel,
	}
}

func (uc *AssistantUseCase) Respond(ctx context.Context, message string, history []entity.Message, grounding GroundingContext) *AgentDecision {
	if uc.chatModel == nil {
		logger.Warn("Assistant invoked without a chat model, returning fallback")
		return fallbackDecision()
	}

	messages := make([]*schema.Message, 0, len(history)+2)
	messages = append(messages, schema.SystemMessage(buildSystemPrompt(grounding)))
	for _, m := range history {
		if m.Sender == entity.SenderCustomer {
			messages = append(messages, schema.UserMessage(m.Content))
		} else {
			messages = append(messages, schema.AssistantMessage(m.Content, nil))
		}
	}
	messages = append(messages, schema.UserMessage(message))

	out, err := uc.chatModel.Generate(ctx, messages)
	if err != nil {
		logger.Error("Generation backend call failed: %v", err)
		return fallbackDecision()
	}
	if out == nil || strings.TrimSpace(out.Content) == "" {
		logger.Error("Generation backend returned an empty message")
		return fallbackDecision()
	}

	decision, err := parseDecision(out.Content)
	if err != nil {
		logger.Error("Backend output failed schema validation: %v", err)
		return fallbackDecision()
	}

	return decision
}

func parseDecision(content string) (*AgentDecision, error) {
	clean := trimJSONBlock(strings.TrimSpace(content))

	var decision AgentDecision
	if err := json.Unmarshal([]byte(clean), &decision); err != nil {
		return nil, fmt.Errorf("unmarshal decision: %w", err)
	}

	if strings.TrimSpace(decision.ReplyMessage) == "" {
		return nil, fmt.Errorf("reply_message is empty")
	}

	// Extracted fields are only meaningful alongside a signaled intent.
	if !decision.OrderIntent {
		decision.ExtractedOrder = nil
	}

	return &decision, nil
}

// trimJSONBlock cuts the outermost JSON object out of the model output,
// tolerating markdown fences and stray prose around it.
func trimJSONBlock(content string) string {
	start := strings.Index(content, "{")
	end := strings.LastIndex(content, "}")
	if start == -1 || end == -1 || start > end {
		return content
	}
	return content[start : end+1]
}

func fallbackDecision() *AgentDecision {
	return &AgentDecision{
		ReplyMessage: FallbackReply,
		OrderIntent:  false,
	}
}

func buildSystemPrompt(grounding GroundingContext) string {
	var b strings.Builder

	fmt.Fprintf(&b, "You are a professional, helpful, and polite AI Sales Assistant for %q.\n", grounding.Business.Name)
	fmt.Fprintf(&b, "Your tone should be %q.\n\n", grounding.Business.Tone)

	b.WriteString(grounding.Render())

	b.WriteString(`
Rules:
1. The business info, catalog, and FAQs above are your only source of truth. Never state a price or product that is not listed there.
2. Order Extraction: when the customer has finalized an order (not merely browsing), set "order_intent" to true and extract customerName, deliveryAddress, and items. If any of those are still missing, keep "order_intent" false and ask the customer for the missing piece.
3. If the customer is frustrated, or the request is ambiguous, contradictory, or beyond what you can resolve, offer to hand the conversation over to a human agent.
4. Respond with a single JSON object and nothing else, in exactly this shape:
{
  "reply_message": "the text to send to the customer",
  "order_intent": true or false,
  "extracted_order_fields": {
    "customerName": "...",
    "deliveryAddress": "...",
    "items": [{"name": "...", "quantity": 1}]
  }
}
"reply_message" and "order_intent" are required. Include "extracted_order_fields" only when "order_intent" is true.`)

	return b.String()
}
