package models

import "time"

// NotificationKind is the closed set of events a notification can reference.
// The kind tags RelatedID so consumers never guess which table it points at.
type NotificationKind string

const (
	KindChat        NotificationKind = "chat"
	KindTrade       NotificationKind = "trade"
	KindListing     NotificationKind = "listing"
	KindDonation    NotificationKind = "donation"
	KindInstallment NotificationKind = "installment"
	KindReview      NotificationKind = "review"
)

// NotificationRef pairs a kind with the id of the entity it refers to.
type NotificationRef struct {
	Kind NotificationKind
	ID   uint
}

type Notification struct {
	ID               uint             `json:"id" gorm:"primaryKey"`
	UserID           uint             `json:"user_id" gorm:"not null;index"`
	Title            string           `json:"title" gorm:"size:100;not null"`
	Message          string           `json:"message" gorm:"not null"`
	NotificationType NotificationKind `json:"notification_type" gorm:"size:50;not null"`
	RelatedID        uint             `json:"related_id"`
	IsRead           bool             `json:"is_read" gorm:"default:false;index"`
	CreatedAt        time.Time        `json:"created_at"`
}
