package handler

import (
	"github.com/labstack/echo/v4"

	"replyrush/internal/domain/entity"
	"replyrush/internal/usecase"
	"replyrush/pkg/response"
	"replyrush/pkg/utils"
)

type ConversationHandler struct {
	conversationUseCase *usecase.ConversationUseCase
	simulatorWhatsapp   string
}

func NewConversationHandler(conversationUseCase *usecase.ConversationUseCase, simulatorWhatsapp string) *ConversationHandler {
	return &ConversationHandler{
		conversationUseCase: conversationUseCase,
		simulatorWhatsapp:   simulatorWhatsapp,
	}
}

type inboundMessageRequest struct {
	CustomerWhatsapp string `json:"customer_whatsapp" validate:"required"`
	CustomerName     string `json:"customer_name"`
	Content          string `json:"content" validate:"required"`
}

type simulatorMessageRequest struct {
	Content string `json:"content" validate:"required"`
}

type merchantReplyRequest struct {
	Content string `json:"content" validate:"required"`
}

type setHandledByRequest struct {
	HandledBy string `json:"handled_by" validate:"required,oneof=ai human"`
}

// HandleInboundMessage runs one customer turn. This is the boundary a real
// message channel would call.
func (h *ConversationHandler) HandleInboundMessage(c echo.Context) error {
	var req inboundMessageRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}
	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	result, err := h.conversationUseCase.HandleCustomerMessage(c.Request().Context(), usecase.HandleMessageInput{
		CustomerWhatsapp: req.CustomerWhatsapp,
		CustomerName:     req.CustomerName,
		Content:          req.Content,
	})
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, result)
}

// HandleSimulatorMessage runs a turn against the reserved simulator
// conversation so the merchant can test the assistant before going live.
func (h *ConversationHandler) HandleSimulatorMessage(c echo.Context) error {
	var req simulatorMessageRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}
	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	result, err := h.conversationUseCase.HandleCustomerMessage(c.Request().Context(), usecase.HandleMessageInput{
		CustomerWhatsapp: h.simulatorWhatsapp,
		CustomerName:     "Test Simulator",
		Content:          req.Content,
	})
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, result)
}

func (h *ConversationHandler) ListConversations(c echo.Context) error {
	pagination := utils.GetPaginationParams(c)

	conversations, total, err := h.conversationUseCase.ListConversations(c.Request().Context(), pagination.PageSize, pagination.Offset)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Paginated(c, conversations, total, pagination.Page, pagination.PageSize)
}

func (h *ConversationHandler) GetConversation(c echo.Context) error {
	conversation, err := h.conversationUseCase.GetConversation(c.Request().Context(), c.Param("id"))
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, conversation)
}

func (h *ConversationHandler) SendMerchantReply(c echo.Context) error {
	var req merchantReplyRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}
	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	conversation, err := h.conversationUseCase.SendMerchantReply(c.Request().Context(), c.Param("id"), req.Content)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, conversation)
}

func (h *ConversationHandler) SetHandledBy(c echo.Context) error {
	var req setHandledByRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}
	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	conversation, err := h.conversationUseCase.SetHandledBy(c.Request().Context(), c.Param("id"), entity.HandlerMode(req.HandledBy))
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, conversation)
}
