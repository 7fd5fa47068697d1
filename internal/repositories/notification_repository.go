package repositories

import (
	"github.com/codeLord61/Exchangify/internal/models"
	"gorm.io/gorm"
)

// NotificationRepository defines the interface for notification operations
type NotificationRepository interface {
	ListByUser(userID uint) ([]models.Notification, error)
	GetByID(id uint) (*models.Notification, error)
	MarkRead(id uint) error
	MarkKindRead(userID uint, kind models.NotificationKind) error
	UnreadCount(userID uint) (int64, error)
	Recent(userID uint, limit int) ([]models.Notification, error)
}

type PostgresNotificationRepository struct {
	db *gorm.DB
}

func NewPostgresNotificationRepository(db *gorm.DB) *PostgresNotificationRepository {
	return &PostgresNotificationRepository{db: db}
}

func (r *PostgresNotificationRepository) ListByUser(userID uint) ([]models.Notification, error) {
	var notifications []models.Notification
	err := r.db.Where("user_id = ?", userID).Order("created_at DESC").Find(&notifications).Error
	return notifications, err
}

func (r *PostgresNotificationRepository) GetByID(id uint) (*models.Notification, error) {
	var notification models.Notification
	if err := r.db.First(&notification, id).Error; err != nil {
		return nil, err
	}
	return &notification, nil
}

func (r *PostgresNotificationRepository) MarkRead(id uint) error {
	return r.db.Model(&models.Notification{}).Where("id = ?", id).Update("is_read", true).Error
}

func (r *PostgresNotificationRepository) MarkKindRead(userID uint, kind models.NotificationKind) error {
	return r.db.Model(&models.Notification{}).
		Where("user_id = ? AND notification_type = ? AND is_read = ?", userID, kind, false).
		Update("is_read", true).Error
}

func (r *PostgresNotificationRepository) UnreadCount(userID uint) (int64, error) {
	var count int64
	err := r.db.Model(&models.Notification{}).
		Where("user_id = ? AND is_read = ?", userID, false).Count(&count).Error
	return count, err
}

func (r *PostgresNotificationRepository) Recent(userID uint, limit int) ([]models.Notification, error) {
	var notifications []models.Notification
	err := r.db.Where("user_id = ?", userID).
		Order("created_at DESC").Limit(limit).Find(&notifications).Error
	return notifications, err
}
