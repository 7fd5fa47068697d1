package repositories

import (
	"github.com/codeLord61/Exchangify/internal/models"
	"gorm.io/gorm"
)

type ChatRepository interface {
	Create(message *models.ChatMessage) error
	GetByID(id uint) (*models.ChatMessage, error)
	Conversation(userA, userB uint) ([]models.ChatMessage, error)
	MarkConversationRead(receiverID, senderID uint) error
	Delete(id uint) error
	RecentPartnerIDs(userID uint, limit int) ([]uint, error)
}

type PostgresChatRepository struct {
	db *gorm.DB
}

func NewPostgresChatRepository(db *gorm.DB) *PostgresChatRepository {
	return &PostgresChatRepository{db: db}
}

func (r *PostgresChatRepository) Create(message *models.ChatMessage) error {
	return r.db.Create(message).Error
}

func (r *PostgresChatRepository) GetByID(id uint) (*models.ChatMessage, error) {
	var message models.ChatMessage
	if err := r.db.First(&message, id).Error; err != nil {
		return nil, err
	}
	return &message, nil
}

// Conversation returns the full two-way message history, oldest first.
func (r *PostgresChatRepository) Conversation(userA, userB uint) ([]models.ChatMessage, error) {
	var messages []models.ChatMessage
	err := r.db.
		Where("(sender_id = ? AND receiver_id = ?) OR (sender_id = ? AND receiver_id = ?)",
			userA, userB, userB, userA).
		Order("timestamp").Find(&messages).Error
	return messages, err
}

func (r *PostgresChatRepository) MarkConversationRead(receiverID, senderID uint) error {
	return r.db.Model(&models.ChatMessage{}).
		Where("receiver_id = ? AND sender_id = ? AND is_read = ?", receiverID, senderID, false).
		Update("is_read", true).Error
}

func (r *PostgresChatRepository) Delete(id uint) error {
	return r.db.Delete(&models.ChatMessage{}, id).Error
}

// RecentPartnerIDs returns the other ends of the user's most recent
// conversations, newest first.
func (r *PostgresChatRepository) RecentPartnerIDs(userID uint, limit int) ([]uint, error) {
	var messages []models.ChatMessage
	err := r.db.
		Where("sender_id = ? OR receiver_id = ?", userID, userID).
		Order("timestamp DESC").Limit(200).Find(&messages).Error
	if err != nil {
		return nil, err
	}

	seen := map[uint]bool{}
	var partners []uint
	for _, m := range messages {
		partner := m.SenderID
		if partner == userID {
			partner = m.ReceiverID
		}
		if partner == userID || seen[partner] {
			continue
		}
		seen[partner] = true
		partners = append(partners, partner)
		if len(partners) == limit {
			break
		}
	}
	return partners, nil
}
