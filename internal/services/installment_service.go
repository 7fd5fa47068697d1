package services

import (
	"errors"
	"fmt"
	"time"

	"github.com/codeLord61/Exchangify/internal/models"
	"gorm.io/gorm"
)

// InstallmentService runs the financing-application lifecycle. Applications
// are admin-reviewed; approved and rejected are both terminal.
type InstallmentService struct {
	db *gorm.DB
}

func NewInstallmentService(db *gorm.DB) *InstallmentService {
	return &InstallmentService{db: db}
}

// Apply files a pending application and notifies every admin.
func (s *InstallmentService) Apply(userID uint, req models.ApplyInstallmentRequest) (*models.Installment, error) {
	installment := models.Installment{
		UserID:           userID,
		Amount:           req.Amount,
		Purpose:          req.Purpose,
		Duration:         req.Duration,
		Income:           req.Income,
		EmploymentStatus: req.EmploymentStatus,
		Employer:         req.Employer,
		Status:           models.InstallmentStatusPending,
	}

	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&installment).Error; err != nil {
			return err
		}
		return NotifyAdmins(tx, "New Installment Application",
			fmt.Sprintf("A new installment application for $%.2f has been submitted.", installment.Amount),
			models.NotificationRef{Kind: models.KindInstallment, ID: installment.ID})
	})
	if err != nil {
		return nil, err
	}
	return &installment, nil
}

// UpdateStatus resolves a pending application. Only the router's admin gate
// reaches here; the transition itself is compare-and-set from pending.
func (s *InstallmentService) UpdateStatus(installmentID uint, newStatus, adminNotes string) (*models.Installment, error) {
	var installment models.Installment
	if err := s.db.First(&installment, installmentID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	if newStatus != models.InstallmentStatusApproved && newStatus != models.InstallmentStatusRejected {
		return nil, validationErr("invalid status")
	}

	err := s.db.Transaction(func(tx *gorm.DB) error {
		result := tx.Model(&models.Installment{}).
			Where("id = ? AND status = ?", installment.ID, models.InstallmentStatusPending).
			Updates(map[string]interface{}{
				"status":      newStatus,
				"admin_notes": adminNotes,
				"updated_at":  time.Now().UTC(),
			})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return conflictErr("installment application has already been resolved")
		}

		return Notify(tx, installment.UserID,
			fmt.Sprintf("Installment Application %s", capitalize(newStatus)),
			fmt.Sprintf("Your installment application for $%.2f has been %s.", installment.Amount, newStatus),
			models.NotificationRef{Kind: models.KindInstallment, ID: installment.ID})
	})
	if err != nil {
		return nil, err
	}

	installment.Status = newStatus
	installment.AdminNotes = adminNotes
	return &installment, nil
}
