package models

import "time"

const (
	DonationStatusPending   = "pending"
	DonationStatusAccepted  = "accepted"
	DonationStatusDeclined  = "declined"
	DonationStatusCompleted = "completed"
)

// Donation is an offered item. RecipientID is nil for donations directed at
// the organization pool, where any admin may act (IsAdminDonation set).
type Donation struct {
	ID              uint      `json:"id" gorm:"primaryKey"`
	DonorID         uint      `json:"donor_id" gorm:"not null;index"`
	RecipientID     *uint     `json:"recipient_id" gorm:"index"`
	ItemName        string    `json:"item_name" gorm:"size:100;not null"`
	Description     string    `json:"description" gorm:"not null"`
	Condition       string    `json:"condition" gorm:"size:50;not null"`
	ImageFilename   string    `json:"image_filename" gorm:"size:255"`
	Status          string    `json:"status" gorm:"size:20;default:pending"`
	IsAdminDonation bool      `json:"is_admin_donation" gorm:"default:false"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

type CreateDonationRequest struct {
	RecipientType string `json:"recipient_type" form:"recipient_type" validate:"required,oneof=user admin"`
	RecipientID   *uint  `json:"recipient_id" form:"recipient_id"`
	ItemName      string `json:"item_name" form:"item_name" validate:"required,max=100"`
	Description   string `json:"description" form:"description" validate:"required"`
	Condition     string `json:"condition" form:"condition" validate:"required"`
}

type UpdateDonationStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=accepted declined completed"`
}
