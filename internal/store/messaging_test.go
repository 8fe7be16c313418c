package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNotificationFeed(t *testing.T) {
	s := New()

	n := s.AddNotification("u2", "Stock low", "Spinach lot is below 20 kg", "system", "/inventory/lot-2")

	feed := s.GetAppNotifications("u2")
	require.NotEmpty(t, feed)
	// Newest first.
	assert.Equal(t, n.ID, feed[0].ID)
	assert.False(t, feed[0].IsRead)

	require.NoError(t, s.MarkNotificationRead(n.ID))
	feed = s.GetAppNotifications("u2")
	assert.True(t, feed[0].IsRead)

	assert.ErrorIs(t, s.MarkNotificationRead("ntf-999"), ErrNotFound)
}

func TestMarkAllNotificationsRead(t *testing.T) {
	s := New()

	marked := s.MarkAllNotificationsRead("u2")
	assert.Equal(t, 2, marked)
	for _, n := range s.GetAppNotifications("u2") {
		assert.True(t, n.IsRead)
	}

	// Second pass has nothing left to mark.
	assert.Equal(t, 0, s.MarkAllNotificationsRead("u2"))
}

func TestChatConversationIsSymmetric(t *testing.T) {
	s := New()

	s.AddChatMessage("c1", "u2", "Can you deliver Friday?")

	ab := s.GetChatMessages("c1", "u2")
	ba := s.GetChatMessages("u2", "c1")
	require.Len(t, ab, 3)
	require.Equal(t, len(ab), len(ba))
	for i := range ab {
		assert.Equal(t, ab[i].ID, ba[i].ID)
	}

	assert.Empty(t, s.GetChatMessages("c1", "u3"))
}

