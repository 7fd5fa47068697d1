package services

import (
	"testing"

	"github.com/codeLord61/Exchangify/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSendMessageNotifiesReceiver(t *testing.T) {
	db := newTestDB(t)
	svc := NewChatService(db)

	sender := createUser(t, db, "sender@test.com", models.RoleUser)
	receiver := createUser(t, db, "receiver@test.com", models.RoleUser)

	message, err := svc.SendMessage(sender.ID, models.SendMessageRequest{
		ReceiverID: receiver.ID,
		Message:    "Is this still available?",
	})
	require.NoError(t, err)
	assert.Equal(t, models.MessageTypeText, message.MessageType)
	assert.False(t, message.IsRead)

	notifications := notificationsFor(t, db, receiver.ID)
	require.Len(t, notifications, 1)
	assert.Equal(t, "New Message", notifications[0].Title)
	assert.Contains(t, notifications[0].Message, sender.FullName())
	assert.Equal(t, models.KindChat, notifications[0].NotificationType)
}

func TestSendMessageValidation(t *testing.T) {
	db := newTestDB(t)
	svc := NewChatService(db)

	sender := createUser(t, db, "sender@test.com", models.RoleUser)
	receiver := createUser(t, db, "receiver@test.com", models.RoleUser)

	var verr *ValidationError

	_, err := svc.SendMessage(sender.ID, models.SendMessageRequest{
		ReceiverID: sender.ID,
		Message:    "hello me",
	})
	require.ErrorAs(t, err, &verr)

	_, err = svc.SendMessage(sender.ID, models.SendMessageRequest{
		ReceiverID: receiver.ID,
		Message:    "",
	})
	require.ErrorAs(t, err, &verr)

	_, err = svc.SendMessage(sender.ID, models.SendMessageRequest{
		ReceiverID: receiver.ID,
		Type:       models.MessageTypeImage,
	})
	require.ErrorAs(t, err, &verr)

	_, err = svc.SendMessage(sender.ID, models.SendMessageRequest{
		ReceiverID: 999,
		Message:    "anyone there?",
	})
	require.ErrorAs(t, err, &verr)
}

func TestSendImageMessageCarriesMediaURL(t *testing.T) {
	db := newTestDB(t)
	svc := NewChatService(db)

	sender := createUser(t, db, "sender@test.com", models.RoleUser)
	receiver := createUser(t, db, "receiver@test.com", models.RoleUser)

	message, err := svc.SendMessage(sender.ID, models.SendMessageRequest{
		ReceiverID: receiver.ID,
		Type:       models.MessageTypeImage,
		MediaURL:   "/static/uploads/chat/photo.png",
	})
	require.NoError(t, err)

	resp := message.ToResponse()
	assert.Equal(t, models.MessageTypeImage, resp.Type)
	assert.Equal(t, "/static/uploads/chat/photo.png", resp.MediaURL)
}
