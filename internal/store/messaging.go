package store

import (
	"time"

	"agrilink-backend/internal/models"
)

// GetAppNotifications returns a user's feed, newest first.
func (s *Store) GetAppNotifications(userID string) []models.AppNotification {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []models.AppNotification
	for i := len(s.notifications) - 1; i >= 0; i-- {
		if s.notifications[i].UserID == userID {
			out = append(out, s.notifications[i])
		}
	}
	return out
}

// AddNotification appends an entry to a user's feed.
func (s *Store) AddNotification(userID, title, message string, typ models.NotificationType, link string) models.AppNotification {
	s.mu.Lock()
	defer s.mu.Unlock()
	n := models.AppNotification{
		ID:        s.nextID("ntf"),
		UserID:    userID,
		Title:     title,
		Message:   message,
		Type:      typ,
		Link:      link,
		CreatedAt: time.Now(),
	}
	s.notifications = append(s.notifications, n)
	return n
}

// MarkNotificationRead flags one feed entry as read.
func (s *Store) MarkNotificationRead(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.notifications {
		if s.notifications[i].ID == id {
			s.notifications[i].IsRead = true
			return nil
		}
	}
	return ErrNotFound
}

// MarkAllNotificationsRead flags a user's whole feed as read.
func (s *Store) MarkAllNotificationsRead(userID string) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	count := 0
	for i := range s.notifications {
		if s.notifications[i].UserID == userID && !s.notifications[i].IsRead {
			s.notifications[i].IsRead = true
			count++
		}
	}
	return count
}

// GetChatMessages returns the conversation between two users in send order.
func (s *Store) GetChatMessages(userA, userB string) []models.ChatMessage {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []models.ChatMessage
	for _, m := range s.chatMessages {
		if (m.SenderID == userA && m.ReceiverID == userB) || (m.SenderID == userB && m.ReceiverID == userA) {
			out = append(out, m)
		}
	}
	return out
}

// AddChatMessage appends a message. There are no delivery or receipt
// semantics; the message simply exists once appended.
func (s *Store) AddChatMessage(senderID, receiverID, text string) models.ChatMessage {
	s.mu.Lock()
	defer s.mu.Unlock()
	m := models.ChatMessage{
		ID:         s.nextID("msg"),
		SenderID:   senderID,
		ReceiverID: receiverID,
		Text:       text,
		CreatedAt:  time.Now(),
	}
	s.chatMessages = append(s.chatMessages, m)
	return m
}
