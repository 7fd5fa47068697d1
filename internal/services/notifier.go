package services

import (
	"github.com/codeLord61/Exchangify/internal/models"
	"gorm.io/gorm"
)

// Notify persists one unread notification row on the given connection. Pass
// the transaction of the triggering state change so the notification lives
// and dies with it.
func Notify(db *gorm.DB, userID uint, title, message string, ref models.NotificationRef) error {
	notification := models.Notification{
		UserID:           userID,
		Title:            title,
		Message:          message,
		NotificationType: ref.Kind,
		RelatedID:        ref.ID,
	}
	return db.Create(&notification).Error
}

// NotifyAdmins fans one notification out to every admin account.
func NotifyAdmins(db *gorm.DB, title, message string, ref models.NotificationRef) error {
	var admins []models.User
	if err := db.Where("role = ?", models.RoleAdmin).Find(&admins).Error; err != nil {
		return err
	}
	for _, admin := range admins {
		if err := Notify(db, admin.ID, title, message, ref); err != nil {
			return err
		}
	}
	return nil
}
