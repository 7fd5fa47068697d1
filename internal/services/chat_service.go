package services

import (
	"errors"
	"fmt"

	"github.com/codeLord61/Exchangify/internal/models"
	"gorm.io/gorm"
)

// ChatService persists direct messages together with the receiver's unread
// notification.
type ChatService struct {
	db *gorm.DB
}

func NewChatService(db *gorm.DB) *ChatService {
	return &ChatService{db: db}
}

// SendMessage stores the message and notifies the receiver in one
// transaction. Empty text messages are rejected; image messages carry their
// media URL instead.
func (s *ChatService) SendMessage(senderID uint, req models.SendMessageRequest) (*models.ChatMessage, error) {
	if senderID == req.ReceiverID {
		return nil, validationErr("you cannot message yourself")
	}

	var sender models.User
	if err := s.db.First(&sender, senderID).Error; err != nil {
		return nil, err
	}
	var receiver models.User
	if err := s.db.First(&receiver, req.ReceiverID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, validationErr("recipient does not exist")
		}
		return nil, err
	}

	messageType := req.Type
	if messageType == "" {
		messageType = models.MessageTypeText
	}
	if messageType == models.MessageTypeImage {
		if req.MediaURL == "" {
			return nil, validationErr("image messages require a media url")
		}
	} else if req.Message == "" {
		return nil, validationErr("message cannot be empty")
	}

	message := models.ChatMessage{
		SenderID:    senderID,
		ReceiverID:  req.ReceiverID,
		Message:     req.Message,
		MessageType: messageType,
		MediaURL:    req.MediaURL,
	}

	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&message).Error; err != nil {
			return err
		}
		return Notify(tx, req.ReceiverID, "New Message",
			fmt.Sprintf("You have a new message from %s.", sender.FullName()),
			models.NotificationRef{Kind: models.KindChat, ID: message.ID})
	})
	if err != nil {
		return nil, err
	}
	return &message, nil
}
