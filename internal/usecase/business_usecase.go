package usecase

import (
	"context"
	"strings"

	"replyrush/internal/domain/entity"
	"replyrush/internal/domain/repository"
	"replyrush/pkg/errors"
)

type BusinessUseCase struct {
	businessRepo repository.BusinessRepository
}

func NewBusinessUseCase(businessRepo repository.BusinessRepository) *BusinessUseCase {
	return &BusinessUseCase{
		businessRepo: businessRepo,
	}
}

type UpdateBusinessInput struct {
	Name         string
	Whatsapp     string
	Address      string
	WorkingHours string
	DeliveryFee  int64
	BankDetails  string
	Tone         string
}

func (uc *BusinessUseCase) Get(ctx context.Context) (*entity.Business, error) {
	return uc.businessRepo.Get(ctx)
}

func (uc *BusinessUseCase) Update(ctx context.Context, input UpdateBusinessInput) (*entity.Business, error) {
	if strings.TrimSpace(input.Name) == "" {
		return nil, errors.BadRequest("Business name is required", nil)
	}
	if input.DeliveryFee < 0 {
		return nil, errors.BadRequest("Delivery fee cannot be negative", nil)
	}

	business := &entity.Business{
		Name:         input.Name,
		Whatsapp:     input.Whatsapp,
		Address:      input.Address,
		WorkingHours: input.WorkingHours,
		DeliveryFee:  input.DeliveryFee,
		BankDetails:  input.BankDetails,
		Tone:         input.Tone,
	}

	if existing, err := uc.businessRepo.Get(ctx); err == nil {
		business.ID = existing.ID
	} else if !errors.Is(err, "NOT_FOUND") {
		return nil, err
	}

	if err := uc.businessRepo.Save(ctx, business); err != nil {
		return nil, err
	}

	return business, nil
}
