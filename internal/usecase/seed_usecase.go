package usecase

import (
	"context"

	"replyrush/internal/domain/entity"
	"replyrush/internal/domain/repository"
	"replyrush/pkg/errors"
	"replyrush/pkg/logger"
)

// SeedUseCase installs the demo storefront on first run so the simulator
// works against a populated catalog.
type SeedUseCase struct {
	businessRepo repository.BusinessRepository
	productRepo  repository.ProductRepository
	faqRepo      repository.FAQRepository
}

func NewSeedUseCase(
	businessRepo repository.BusinessRepository,
	productRepo repository.ProductRepository,
	faqRepo repository.FAQRepository,
) *SeedUseCase {
	return &SeedUseCase{
		businessRepo: businessRepo,
		productRepo:  productRepo,
		faqRepo:      faqRepo,
	}
}

// EnsureDefaults seeds the business profile, catalog, and FAQs when no
// business profile exists yet. A configured store is never touched.
func (uc *SeedUseCase) EnsureDefaults(ctx context.Context) error {
	_, err := uc.businessRepo.Get(ctx)
	if err == nil {
		return nil
	}
	if !errors.Is(err, "NOT_FOUND") {
		return err
	}

	logger.Info("Empty store detected, installing demo storefront")

	business := &entity.Business{
		Name:         "Obinna Electronics",
		Whatsapp:     "+2348012345678",
		Address:      "Computer Village, Ikeja, Lagos",
		WorkingHours: "9 AM - 6 PM, Mon-Sat",
		DeliveryFee:  2500,
		BankDetails:  "Zenith Bank, 1234567890, Obinna Tech LTD",
		Tone:         "Professional and polite Nigerian tone",
	}
	if err := uc.businessRepo.Save(ctx, business); err != nil {
		return err
	}

	products := []*entity.Product{
		{Name: "iPhone 15 Pro Max", Description: "256GB, Titanium Blue", Price: 1850000, InStock: true, Category: "Phones"},
		{Name: "Samsung S24 Ultra", Description: "512GB, Gray", Price: 1650000, InStock: true, Category: "Phones"},
		{Name: "MacBook Air M3", Description: "8GB RAM, 256GB SSD", Price: 1400000, InStock: true, Category: "Laptops"},
		{Name: "AirPods Pro 2", Description: "MagSafe Charging Case", Price: 320000, InStock: true, Category: "Audio"},
		{Name: "Dell XPS 13", Description: "i7 12th Gen, 16GB RAM", Price: 950000, InStock: false, Category: "Laptops"},
	}
	for _, product := range products {
		if err := uc.productRepo.Upsert(ctx, product); err != nil {
			return err
		}
	}

	faqs := []*entity.FAQ{
		{Question: "Do you deliver outside Lagos?", Answer: "Yes, we deliver nationwide via GIGM and Red Star Express. Delivery to other states takes 3-5 working days."},
		{Question: "Do you offer pay on delivery?", Answer: "Currently, we only accept payment before dispatch for all items."},
		{Question: "Where is your shop located?", Answer: "We are located at Suite 45, Trinity Plaza, Computer Village, Ikeja, Lagos."},
	}
	for _, faq := range faqs {
		if err := uc.faqRepo.Upsert(ctx, faq); err != nil {
			return err
		}
	}

	return nil
}
