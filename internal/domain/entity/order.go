package entity

import "time"

type OrderStatus string

const (
	OrderStatusPending   OrderStatus = "pending"
	OrderStatusConfirmed OrderStatus = "confirmed"
	OrderStatusDelivered OrderStatus = "delivered"
	OrderStatusCancelled OrderStatus = "cancelled"
)

func (s OrderStatus) Valid() bool {
	switch s {
	case OrderStatusPending, OrderStatusConfirmed, OrderStatusDelivered, OrderStatusCancelled:
		return true
	}
	return false
}

// UnknownProductID marks an order line whose extracted name matched nothing
// in the catalog. Such lines are priced at zero and flag the order for review.
const UnknownProductID = "unknown"

// OrderItem snapshots the catalog name and price at creation time. Catalog
// edits after placement never alter historical orders.
type OrderItem struct {
	ProductID string `json:"product_id" firestore:"productId"`
	Name      string `json:"name" firestore:"name"`
	Quantity  int    `json:"quantity" firestore:"quantity"`
	Price     int64  `json:"price" firestore:"price"`
}

type Order struct {
	ID               string      `json:"id" firestore:"id"`
	CustomerName     string      `json:"customer_name" firestore:"customerName"`
	CustomerWhatsapp string      `json:"customer_whatsapp" firestore:"customerWhatsapp"`
	Items            []OrderItem `json:"items" firestore:"items"`
	TotalAmount      int64       `json:"total_amount" firestore:"totalAmount"`
	DeliveryAddress  string      `json:"delivery_address" firestore:"deliveryAddress"`
	Status           OrderStatus `json:"status" firestore:"status"`
	NeedsReview      bool        `json:"needs_review" firestore:"needsReview"`
	CreatedAt        time.Time   `json:"created_at" firestore:"createdAt"`
	UpdatedAt        time.Time   `json:"updated_at" firestore:"updatedAt"`
}
