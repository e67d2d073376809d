package usecase

import (
	"context"

	"replyrush/internal/domain/entity"
	"replyrush/internal/domain/repository"
)

type DashboardUseCase struct {
	orderRepo        repository.OrderRepository
	conversationRepo repository.ConversationRepository
	productRepo      repository.ProductRepository
}

func NewDashboardUseCase(
	orderRepo repository.OrderRepository,
	conversationRepo repository.ConversationRepository,
	productRepo repository.ProductRepository,
) *DashboardUseCase {
	return &DashboardUseCase{
		orderRepo:        orderRepo,
		conversationRepo: conversationRepo,
		productRepo:      productRepo,
	}
}

type DashboardSummary struct {
	TotalOrders         int64                  `json:"total_orders"`
	PendingOrders       int64                  `json:"pending_orders"`
	Revenue             int64                  `json:"revenue"`
	TotalProducts       int                    `json:"total_products"`
	TotalConversations  int64                  `json:"total_conversations"`
	RecentOrders        []*entity.Order        `json:"recent_orders"`
	RecentConversations []*entity.Conversation `json:"recent_conversations"`
}

// Summary aggregates the dashboard counters. Revenue counts every order that
// was not cancelled.
func (uc *DashboardUseCase) Summary(ctx context.Context) (*DashboardSummary, error) {
	orders, totalOrders, err := uc.orderRepo.List(ctx, 0, 0)
	if err != nil {
		return nil, err
	}

	conversations, totalConversations, err := uc.conversationRepo.List(ctx, 5, 0)
	if err != nil {
		return nil, err
	}

	products, err := uc.productRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	summary := &DashboardSummary{
		TotalOrders:         totalOrders,
		TotalProducts:       len(products),
		TotalConversations:  totalConversations,
		RecentConversations: conversations,
	}

	for _, order := range orders {
		if order.Status == entity.OrderStatusPending {
			summary.PendingOrders++
		}
		if order.Status != entity.OrderStatusCancelled {
			summary.Revenue += order.TotalAmount
		}
	}

	if len(orders) > 5 {
		orders = orders[:5]
	}
	summary.RecentOrders = orders

	return summary, nil
}
