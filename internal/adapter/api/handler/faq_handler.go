package handler

import (
	"github.com/labstack/echo/v4"

	"replyrush/internal/usecase"
	"replyrush/pkg/response"
)

type FAQHandler struct {
	catalogUseCase *usecase.CatalogUseCase
}

func NewFAQHandler(catalogUseCase *usecase.CatalogUseCase) *FAQHandler {
	return &FAQHandler{
		catalogUseCase: catalogUseCase,
	}
}

type upsertFAQRequest struct {
	ID       string `json:"id"`
	Question string `json:"question" validate:"required"`
	Answer   string `json:"answer" validate:"required"`
}

func (h *FAQHandler) ListFAQs(c echo.Context) error {
	faqs, err := h.catalogUseCase.ListFAQs(c.Request().Context())
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, faqs)
}

func (h *FAQHandler) UpsertFAQ(c echo.Context) error {
	var req upsertFAQRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}
	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	faq, err := h.catalogUseCase.UpsertFAQ(c.Request().Context(), usecase.UpsertFAQInput{
		ID:       req.ID,
		Question: req.Question,
		Answer:   req.Answer,
	})
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, faq)
}

func (h *FAQHandler) DeleteFAQ(c echo.Context) error {
	if err := h.catalogUseCase.DeleteFAQ(c.Request().Context(), c.Param("id")); err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, map[string]string{"id": c.Param("id")})
}
