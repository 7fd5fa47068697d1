package models

import "time"

const (
	InstallmentStatusPending  = "pending"
	InstallmentStatusApproved = "approved"
	InstallmentStatusRejected = "rejected"
)

// Installment is a micro-financing application reviewed by admins.
// Approved and rejected are both terminal.
type Installment struct {
	ID               uint      `json:"id" gorm:"primaryKey"`
	UserID           uint      `json:"user_id" gorm:"not null;index"`
	Amount           float64   `json:"amount" gorm:"not null"`
	Purpose          string    `json:"purpose" gorm:"size:200;not null"`
	Duration         int       `json:"duration" gorm:"not null"` // months
	Income           float64   `json:"income" gorm:"not null"`
	EmploymentStatus string    `json:"employment_status" gorm:"size:50;not null"`
	Employer         string    `json:"employer" gorm:"size:100"`
	Status           string    `json:"status" gorm:"size:20;default:pending;index"`
	AdminNotes       string    `json:"admin_notes"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}

type ApplyInstallmentRequest struct {
	Amount           float64 `json:"amount" validate:"required,gt=0"`
	Purpose          string  `json:"purpose" validate:"required,max=200"`
	Duration         int     `json:"duration" validate:"required,gt=0"`
	Income           float64 `json:"income" validate:"required,gt=0"`
	EmploymentStatus string  `json:"employment_status" validate:"required"`
	Employer         string  `json:"employer"`
}

type UpdateInstallmentStatusRequest struct {
	Status     string `json:"status" validate:"required,oneof=approved rejected"`
	AdminNotes string `json:"admin_notes"`
}

// InstallmentFilter narrows the admin installment listing.
type InstallmentFilter struct {
	Query  string // applicant name/email substring, or a numeric id
	Status string
}
