package entity

import "time"

type Product struct {
	ID          string    `json:"id" firestore:"id"`
	Name        string    `json:"name" firestore:"name"`
	Description string    `json:"description" firestore:"description"`
	Price       int64     `json:"price" firestore:"price"`
	InStock     bool      `json:"in_stock" firestore:"inStock"`
	Category    string    `json:"category" firestore:"category"`
	ImageURL    string    `json:"image_url,omitempty" firestore:"imageUrl,omitempty"`
	CreatedAt   time.Time `json:"created_at" firestore:"createdAt"`
	UpdatedAt   time.Time `json:"updated_at" firestore:"updatedAt"`
}
