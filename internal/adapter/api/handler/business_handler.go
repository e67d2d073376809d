package handler

import (
	"github.com/labstack/echo/v4"

	"replyrush/internal/usecase"
	"replyrush/pkg/response"
)

type BusinessHandler struct {
	businessUseCase *usecase.BusinessUseCase
}

func NewBusinessHandler(businessUseCase *usecase.BusinessUseCase) *BusinessHandler {
	return &BusinessHandler{
		businessUseCase: businessUseCase,
	}
}

type updateBusinessRequest struct {
	Name         string `json:"name" validate:"required"`
	Whatsapp     string `json:"whatsapp"`
	Address      string `json:"address"`
	WorkingHours string `json:"working_hours"`
	DeliveryFee  int64  `json:"delivery_fee" validate:"gte=0"`
	BankDetails  string `json:"bank_details"`
	Tone         string `json:"tone"`
}

func (h *BusinessHandler) GetBusiness(c echo.Context) error {
	business, err := h.businessUseCase.Get(c.Request().Context())
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, business)
}

func (h *BusinessHandler) UpdateBusiness(c echo.Context) error {
	var req updateBusinessRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}
	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	business, err := h.businessUseCase.Update(c.Request().Context(), usecase.UpdateBusinessInput{
		Name:         req.Name,
		Whatsapp:     req.Whatsapp,
		Address:      req.Address,
		WorkingHours: req.WorkingHours,
		DeliveryFee:  req.DeliveryFee,
		BankDetails:  req.BankDetails,
		Tone:         req.Tone,
	})
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, business)
}
