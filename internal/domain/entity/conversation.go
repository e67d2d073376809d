package entity

import "time"

type MessageSender string

const (
	SenderCustomer MessageSender = "customer"
	SenderAI       MessageSender = "ai"
	SenderHuman    MessageSender = "human"
)

type HandlerMode string

const (
	HandledByAI    HandlerMode = "ai"
	HandledByHuman HandlerMode = "human"
)

// Message is immutable once created.
type Message struct {
	ID        string        `json:"id" firestore:"id"`
	Sender    MessageSender `json:"sender" firestore:"sender"`
	Content   string        `json:"content" firestore:"content"`
	Timestamp time.Time     `json:"timestamp" firestore:"timestamp"`
}

// Conversation holds the full transcript for one customer, keyed by the
// customer's whatsapp number. Messages are append-only and chronological.
type Conversation struct {
	ID               string      `json:"id" firestore:"id"`
	CustomerName     string      `json:"customer_name" firestore:"customerName"`
	CustomerWhatsapp string      `json:"customer_whatsapp" firestore:"customerWhatsapp"`
	LastMessage      string      `json:"last_message" firestore:"lastMessage"`
	LastSeen         time.Time   `json:"last_seen" firestore:"lastSeen"`
	HandledBy        HandlerMode `json:"handled_by" firestore:"handledBy"`
	Messages         []Message   `json:"messages" firestore:"messages"`
}
