package models

import "time"

// NotificationType tags a feed entry so the client can pick an icon
type NotificationType string

const (
	NotificationTypeOrder        NotificationType = "order"
	NotificationTypePricing      NotificationType = "pricing"
	NotificationTypeRegistration NotificationType = "registration"
	NotificationTypeChat         NotificationType = "chat"
	NotificationTypeSystem       NotificationType = "system"
)

// AppNotification is a per-user feed entry. The feed is append-only; only the
// read flag is ever mutated.
type AppNotification struct {
	ID        string           `json:"id"`
	UserID    string           `json:"userId"`
	Title     string           `json:"title"`
	Message   string           `json:"message"`
	Type      NotificationType `json:"type"`
	Link      string           `json:"link,omitempty"`
	IsRead    bool             `json:"isRead"`
	CreatedAt time.Time        `json:"createdAt"`
}

// ChatMessage is a sender/receiver/text triple. Append-only, no delivery or
// receipt semantics.
type ChatMessage struct {
	ID         string    `json:"id"`
	SenderID   string    `json:"senderId"`
	ReceiverID string    `json:"receiverId"`
	Text       string    `json:"text"`
	CreatedAt  time.Time `json:"createdAt"`
}
