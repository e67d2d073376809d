package usecase

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"replyrush/internal/domain/entity"
	"replyrush/internal/domain/repository"
	"replyrush/internal/infrastructure/notify"
	"replyrush/pkg/errors"
	"replyrush/pkg/logger"
)

type OrderUseCase struct {
	orderRepo    repository.OrderRepository
	productRepo  repository.ProductRepository
	businessRepo repository.BusinessRepository
	hub          *notify.Hub
}

func NewOrderUseCase(
	orderRepo repository.OrderRepository,
	productRepo repository.ProductRepository,
	businessRepo repository.BusinessRepository,
	hub *notify.Hub,
) *OrderUseCase {
	return &OrderUseCase{
		orderRepo:    orderRepo,
		productRepo:  productRepo,
		businessRepo: businessRepo,
		hub:          hub,
	}
}

// CreateFromExtracted reconciles the assistant's extracted order fields
// against the live catalog and commits a priced order. It returns (nil, nil)
// when the extraction is incomplete: partial orders are never committed and
// the assistant keeps asking for the missing field on later turns.
func (uc *OrderUseCase) CreateFromExtracted(ctx context.Context, customerWhatsapp string, extracted *ExtractedOrder) (*entity.Order, error) {
	if extracted == nil {
		return nil, nil
	}

	customerName := strings.TrimSpace(extracted.CustomerName)
	deliveryAddress := strings.TrimSpace(extracted.DeliveryAddress)
	if customerName == "" || deliveryAddress == "" || len(extracted.Items) == 0 {
		logger.Debug("Extracted order incomplete for %s, skipping commit", customerWhatsapp)
		return nil, nil
	}

	products, err := uc.productRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	business, err := uc.businessRepo.Get(ctx)
	if err != nil {
		if !errors.Is(err, "NOT_FOUND") {
			return nil, err
		}
		business = &entity.Business{}
	}

	items := make([]entity.OrderItem, 0, len(extracted.Items))
	needsReview := false
	var subtotal int64

	for _, extractedItem := range extracted.Items {
		quantity := extractedItem.Quantity
		if quantity <= 0 {
			quantity = 1
		}

		item := entity.OrderItem{
			ProductID: entity.UnknownProductID,
			Name:      extractedItem.Name,
			Quantity:  quantity,
			Price:     0,
		}

		if product := matchProduct(products, extractedItem.Name); product != nil {
			item.ProductID = product.ID
			item.Name = product.Name
			item.Price = product.Price
		} else {
			// Unmatched items are kept verbatim at zero price; the order is
			// still created but flagged so the merchant re-prices it.
			needsReview = true
			logger.Warn("No catalog match for extracted item %q, pricing at zero", extractedItem.Name)
		}

		subtotal += item.Price * int64(item.Quantity)
		items = append(items, item)
	}

	order := &entity.Order{
		ID:               uuid.NewString(),
		CustomerName:     customerName,
		CustomerWhatsapp: customerWhatsapp,
		Items:            items,
		TotalAmount:      subtotal + business.DeliveryFee,
		DeliveryAddress:  deliveryAddress,
		Status:           entity.OrderStatusPending,
		NeedsReview:      needsReview,
		CreatedAt:        time.Now(),
	}

	if err := uc.orderRepo.Create(ctx, order); err != nil {
		return nil, err
	}

	logger.Info("Order %s committed for %s, total %d", order.ID, customerWhatsapp, order.TotalAmount)
	uc.hub.Publish(notify.EventOrderCreated, order)

	return order, nil
}

// matchProduct finds the first catalog product whose name contains the
// extracted name, ignoring case. Ties break on catalog order.
func matchProduct(products []*entity.Product, name string) *entity.Product {
	needle := strings.ToLower(strings.TrimSpace(name))
	if needle == "" {
		return nil
	}

	for _, p := range products {
		if strings.Contains(strings.ToLower(p.Name), needle) {
			return p
		}
	}

	return nil
}

func (uc *OrderUseCase) ListOrders(ctx context.Context, limit, offset int) ([]*entity.Order, int64, error) {
	return uc.orderRepo.List(ctx, limit, offset)
}

func (uc *OrderUseCase) GetOrder(ctx context.Context, id string) (*entity.Order, error) {
	return uc.orderRepo.GetByID(ctx, id)
}

// UpdateStatus sets an order's status. Transitions are merchant-driven and
// unconstrained beyond membership in the known statuses.
func (uc *OrderUseCase) UpdateStatus(ctx context.Context, id string, status entity.OrderStatus) (*entity.Order, error) {
	if !status.Valid() {
		return nil, errors.BadRequest("Invalid order status", nil)
	}

	if err := uc.orderRepo.UpdateStatus(ctx, id, status); err != nil {
		return nil, err
	}

	order, err := uc.orderRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	uc.hub.Publish(notify.EventOrderUpdated, order)

	return order, nil
}
