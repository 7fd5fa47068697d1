package models

import "time"

const (
	MessageTypeText  = "text"
	MessageTypeImage = "image"
	MessageTypeEmoji = "emoji"
)

type ChatMessage struct {
	ID          uint      `json:"id" gorm:"primaryKey"`
	SenderID    uint      `json:"sender_id" gorm:"not null;index"`
	ReceiverID  uint      `json:"receiver_id" gorm:"not null;index"`
	Message     string    `json:"message" gorm:"not null"`
	MessageType string    `json:"message_type" gorm:"size:20;default:text"`
	MediaURL    string    `json:"media_url" gorm:"size:255"`
	IsRead      bool      `json:"is_read" gorm:"default:false"`
	Timestamp   time.Time `json:"timestamp" gorm:"autoCreateTime"`
}

type SendMessageRequest struct {
	ReceiverID uint   `json:"receiverId" validate:"required"`
	Message    string `json:"message"`
	Type       string `json:"type" validate:"omitempty,oneof=text image emoji"`
	MediaURL   string `json:"mediaUrl"`
}

// MessageResponse is the wire shape the chat frontend consumes.
type MessageResponse struct {
	ID        uint   `json:"id"`
	SenderID  uint   `json:"senderId"`
	Text      string `json:"text"`
	Type      string `json:"type"`
	MediaURL  string `json:"mediaUrl,omitempty"`
	IsRead    bool   `json:"isRead"`
	Timestamp string `json:"timestamp"`
}

func (m *ChatMessage) ToResponse() MessageResponse {
	resp := MessageResponse{
		ID:        m.ID,
		SenderID:  m.SenderID,
		Text:      m.Message,
		Type:      m.MessageType,
		IsRead:    m.IsRead,
		Timestamp: m.Timestamp.Format(time.RFC3339),
	}
	if m.MessageType == MessageTypeImage {
		resp.MediaURL = m.MediaURL
	}
	return resp
}
