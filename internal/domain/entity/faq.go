package entity

import "time"

type FAQ struct {
	ID        string    `json:"id" firestore:"id"`
	Question  string    `json:"question" firestore:"question"`
	Answer    string    `json:"answer" firestore:"answer"`
	CreatedAt time.Time `json:"created_at" firestore:"createdAt"`
	UpdatedAt time.Time `json:"updated_at" firestore:"updatedAt"`
}
