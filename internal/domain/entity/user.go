package entity

import "time"

// User is a merchant account. Authentication itself is delegated to
// Firebase; this record only carries the profile the dashboard needs.
type User struct {
	ID         string    `json:"id" firestore:"id"`
	Email      string    `json:"email" firestore:"email"`
	BusinessID string    `json:"business_id" firestore:"businessId"`
	CreatedAt  time.Time `json:"created_at" firestore:"createdAt"`
	UpdatedAt  time.Time `json:"updated_at" firestore:"updatedAt"`
}
