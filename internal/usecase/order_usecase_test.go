package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"replyrush/internal/domain/entity"
)

func newOrderFixture() (*OrderUseCase, *memoryOrderRepo) {
	orderRepo := &memoryOrderRepo{}
	productRepo := &memoryProductRepo{products: []*entity.Product{
		{ID: "p1", Name: "iPhone 15 Pro Max", Price: 1850000, InStock: true},
		{ID: "p2", Name: "AirPods Pro 2", Price: 320000, InStock: true},
	}}
	businessRepo := &memoryBusinessRepo{business: &entity.Business{DeliveryFee: 2500}}

	return NewOrderUseCase(orderRepo, productRepo, businessRepo, nil), orderRepo
}

func TestCreateFromExtractedComputesTotal(t *testing.T) {
	uc, orderRepo := newOrderFixture()

	order, err := uc.CreateFromExtracted(context.Background(), "+2347031122334", &ExtractedOrder{
		CustomerName:    "Tunde Afolabi",
		DeliveryAddress: "Lekki Phase 1, Lagos",
		Items:           []ExtractedOrderItem{{Name: "iphone 15 pro max", Quantity: 1}},
	})

	require.NoError(t, err)
	require.NotNil(t, order)
	assert.Equal(t, int64(1852500), order.TotalAmount)
	assert.Equal(t, entity.OrderStatusPending, order.Status)
	assert.Equal(t, "+2347031122334", order.CustomerWhatsapp)
	assert.False(t, order.NeedsReview)

	stored, _, err := orderRepo.List(context.Background(), 0, 0)
	require.NoError(t, err)
	assert.Len(t, stored, 1)
}

func TestCreateFromExtractedBindsFirstCaseInsensitiveMatch(t *testing.T) {
	uc, _ := newOrderFixture()

	order, err := uc.CreateFromExtracted(context.Background(), "+2347031122334", &ExtractedOrder{
		CustomerName:    "Tunde",
		DeliveryAddress: "Ikeja",
		Items:           []ExtractedOrderItem{{Name: "iphone 15 pro max", Quantity: 2}},
	})

	require.NoError(t, err)
	require.NotNil(t, order)
	require.Len(t, order.Items, 1)
	assert.Equal(t, "p1", order.Items[0].ProductID)
	assert.Equal(t, "iPhone 15 Pro Max", order.Items[0].Name)
	assert.Equal(t, int64(1850000), order.Items[0].Price)
	assert.Equal(t, 2, order.Items[0].Quantity)
}

func TestCreateFromExtractedKeepsUnmatchedItemAtZeroPrice(t *testing.T) {
	uc, orderRepo := newOrderFixture()

	order, err := uc.CreateFromExtracted(context.Background(), "+2347031122334", &ExtractedOrder{
		CustomerName:    "Tunde",
		DeliveryAddress: "Ikeja",
		Items:           []ExtractedOrderItem{{Name: "Nonexistent Gadget", Quantity: 1}},
	})

	require.NoError(t, err)
	require.NotNil(t, order)
	require.Len(t, order.Items, 1)
	assert.Equal(t, entity.UnknownProductID, order.Items[0].ProductID)
	assert.Equal(t, "Nonexistent Gadget", order.Items[0].Name)
	assert.Equal(t, int64(0), order.Items[0].Price)
	assert.True(t, order.NeedsReview)
	// Delivery fee still applies
	assert.Equal(t, int64(2500), order.TotalAmount)

	stored, _, err := orderRepo.List(context.Background(), 0, 0)
	require.NoError(t, err)
	assert.Len(t, stored, 1)
}

func TestCreateFromExtractedDefaultsQuantityToOne(t *testing.T) {
	uc, _ := newOrderFixture()

	order, err := uc.CreateFromExtracted(context.Background(), "+2347031122334", &ExtractedOrder{
		CustomerName:    "Tunde",
		DeliveryAddress: "Ikeja",
		Items:           []ExtractedOrderItem{{Name: "AirPods Pro 2", Quantity: 0}},
	})

	require.NoError(t, err)
	require.NotNil(t, order)
	assert.Equal(t, 1, order.Items[0].Quantity)
	assert.Equal(t, int64(320000+2500), order.TotalAmount)
}

func TestCreateFromExtractedSkipsIncompleteFields(t *testing.T) {
	uc, orderRepo := newOrderFixture()

	cases := []*ExtractedOrder{
		nil,
		{DeliveryAddress: "Ikeja", Items: []ExtractedOrderItem{{Name: "AirPods Pro 2"}}},
		{CustomerName: "Tunde", Items: []ExtractedOrderItem{{Name: "AirPods Pro 2"}}},
		{CustomerName: "Tunde", DeliveryAddress: "Ikeja"},
		{CustomerName: "  ", DeliveryAddress: "Ikeja", Items: []ExtractedOrderItem{{Name: "AirPods Pro 2"}}},
	}

	for _, extracted := range cases {
		order, err := uc.CreateFromExtracted(context.Background(), "+2347031122334", extracted)
		assert.NoError(t, err)
		assert.Nil(t, order)
	}

	stored, total, err := orderRepo.List(context.Background(), 0, 0)
	require.NoError(t, err)
	assert.Empty(t, stored)
	assert.Zero(t, total)
}

func TestOrderLedgerIsNewestFirst(t *testing.T) {
	uc, _ := newOrderFixture()

	first, err := uc.CreateFromExtracted(context.Background(), "+234", &ExtractedOrder{
		CustomerName:    "A",
		DeliveryAddress: "Lagos",
		Items:           []ExtractedOrderItem{{Name: "AirPods Pro 2", Quantity: 1}},
	})
	require.NoError(t, err)

	second, err := uc.CreateFromExtracted(context.Background(), "+234", &ExtractedOrder{
		CustomerName:    "B",
		DeliveryAddress: "Lagos",
		Items:           []ExtractedOrderItem{{Name: "iPhone 15 Pro Max", Quantity: 1}},
	})
	require.NoError(t, err)

	orders, total, err := uc.ListOrders(context.Background(), 0, 0)
	require.NoError(t, err)
	assert.Equal(t, int64(2), total)
	require.Len(t, orders, 2)
	assert.Equal(t, second.ID, orders[0].ID)
	assert.Equal(t, first.ID, orders[1].ID)
}

func TestUpdateStatusRejectsUnknownStatus(t *testing.T) {
	uc, _ := newOrderFixture()

	_, err := uc.UpdateStatus(context.Background(), "o1", entity.OrderStatus("shipped"))

	assert.Error(t, err)
}

func TestUpdateStatusAllowsAnyKnownTransition(t *testing.T) {
	uc, _ := newOrderFixture()

	order, err := uc.CreateFromExtracted(context.Background(), "+234", &ExtractedOrder{
		CustomerName:    "Tunde",
		DeliveryAddress: "Ikeja",
		Items:           []ExtractedOrderItem{{Name: "AirPods Pro 2", Quantity: 1}},
	})
	require.NoError(t, err)

	// Transitions are unconstrained; delivered back to pending is allowed.
	for _, status := range []entity.OrderStatus{
		entity.OrderStatusDelivered,
		entity.OrderStatusPending,
		entity.OrderStatusCancelled,
	} {
		updated, err := uc.UpdateStatus(context.Background(), order.ID, status)
		require.NoError(t, err)
		assert.Equal(t, status, updated.Status)
	}
}
