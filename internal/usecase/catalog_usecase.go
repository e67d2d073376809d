package usecase

import (
	"context"
	"strings"

	"replyrush/internal/domain/entity"
	"replyrush/internal/domain/repository"
	"replyrush/pkg/errors"
)

type CatalogUseCase struct {
	productRepo repository.ProductRepository
	faqRepo     repository.FAQRepository
}

func NewCatalogUseCase(productRepo repository.ProductRepository, faqRepo repository.FAQRepository) *CatalogUseCase {
	return &CatalogUseCase{
		productRepo: productRepo,
		faqRepo:     faqRepo,
	}
}

type UpsertProductInput struct {
	ID          string
	Name        string
	Description string
	Price       int64
	InStock     bool
	Category    string
	ImageURL    string
}

func (uc *CatalogUseCase) ListProducts(ctx context.Context) ([]*entity.Product, error) {
	return uc.productRepo.List(ctx)
}

func (uc *CatalogUseCase) UpsertProduct(ctx context.Context, input UpsertProductInput) (*entity.Product, error) {
	if strings.TrimSpace(input.Name) == "" {
		return nil, errors.BadRequest("Product name is required", nil)
	}
	if input.Price < 0 {
		return nil, errors.BadRequest("Product price cannot be negative", nil)
	}

	product := &entity.Product{
		ID:          input.ID,
		Name:        input.Name,
		Description: input.Description,
		Price:       input.Price,
		InStock:     input.InStock,
		Category:    input.Category,
		ImageURL:    input.ImageURL,
	}

	if input.ID != "" {
		// Preserve createdAt so catalog ordering stays stable across edits.
		existing, err := uc.productRepo.GetByID(ctx, input.ID)
		if err == nil {
			product.CreatedAt = existing.CreatedAt
		} else if !errors.Is(err, "NOT_FOUND") {
			return nil, err
		}
	}

	if err := uc.productRepo.Upsert(ctx, product); err != nil {
		return nil, err
	}

	return product, nil
}

func (uc *CatalogUseCase) DeleteProduct(ctx context.Context, id string) error {
	return uc.productRepo.Delete(ctx, id)
}

type UpsertFAQInput struct {
	ID       string
	Question string
	Answer   string
}

func (uc *CatalogUseCase) ListFAQs(ctx context.Context) ([]*entity.FAQ, error) {
	return uc.faqRepo.List(ctx)
}

func (uc *CatalogUseCase) UpsertFAQ(ctx context.Context, input UpsertFAQInput) (*entity.FAQ, error) {
	if strings.TrimSpace(input.Question) == "" || strings.TrimSpace(input.Answer) == "" {
		return nil, errors.BadRequest("Question and answer are required", nil)
	}

	faq := &entity.FAQ{
		ID:       input.ID,
		Question: input.Question,
		Answer:   input.Answer,
	}

	if err := uc.faqRepo.Upsert(ctx, faq); err != nil {
		return nil, err
	}

	return faq, nil
}

func (uc *CatalogUseCase) DeleteFAQ(ctx context.Context, id string) error {
	return uc.faqRepo.Delete(ctx, id)
}
