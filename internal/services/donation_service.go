package services

import (
	"errors"
	"fmt"
	"time"

	"github.com/codeLord61/Exchangify/internal/models"
	"gorm.io/gorm"
)

// DonationService runs the donation lifecycle. Donations target either a
// specific recipient or the organization pool, where any admin may act.
type DonationService struct {
	db *gorm.DB
}

func NewDonationService(db *gorm.DB) *DonationService {
	return &DonationService{db: db}
}

// Create opens a pending donation and notifies the recipient, or every
// admin for a pool donation.
func (s *DonationService) Create(donorID uint, req models.CreateDonationRequest, imageFilename string) (*models.Donation, error) {
	donation := models.Donation{
		DonorID:       donorID,
		ItemName:      req.ItemName,
		Description:   req.Description,
		Condition:     req.Condition,
		ImageFilename: imageFilename,
		Status:        models.DonationStatusPending,
	}

	switch req.RecipientType {
	case "user":
		if req.RecipientID == nil {
			return nil, validationErr("please select a recipient")
		}
		var recipient models.User
		if err := s.db.First(&recipient, *req.RecipientID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, validationErr("recipient does not exist")
			}
			return nil, err
		}
		donation.RecipientID = req.RecipientID
	case "admin":
		donation.IsAdminDonation = true
	}

	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&donation).Error; err != nil {
			return err
		}
		ref := models.NotificationRef{Kind: models.KindDonation, ID: donation.ID}
		if donation.RecipientID != nil {
			return Notify(tx, *donation.RecipientID, "New Donation Offer",
				fmt.Sprintf("You have received a donation offer for: %s", donation.ItemName), ref)
		}
		return NotifyAdmins(tx, "New Donation to Organization",
			fmt.Sprintf("A new donation has been offered: %s", donation.ItemName), ref)
	})
	if err != nil {
		return nil, err
	}
	return &donation, nil
}

// CanView reports whether the actor may see the donation: donor, recipient,
// or any admin for a pool donation.
func CanViewDonation(donation *models.Donation, actorID uint, actorRole string) bool {
	if donation.DonorID == actorID {
		return true
	}
	if donation.RecipientID != nil && *donation.RecipientID == actorID {
		return true
	}
	return donation.IsAdminDonation && actorRole == models.RoleAdmin
}

// UpdateStatus applies a recipient-driven transition: accepted/declined from
// pending, completed from accepted. The donor is notified on every
// transition.
func (s *DonationService) UpdateStatus(actorID uint, actorRole string, donationID uint, newStatus string) (*models.Donation, error) {
	var donation models.Donation
	if err := s.db.First(&donation, donationID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	isRecipient := donation.RecipientID != nil && *donation.RecipientID == actorID
	isPoolAdmin := donation.IsAdminDonation && actorRole == models.RoleAdmin
	if !isRecipient && !isPoolAdmin {
		return nil, ErrForbidden
	}

	var allowedFrom []string
	switch newStatus {
	case models.DonationStatusAccepted, models.DonationStatusDeclined:
		allowedFrom = []string{models.DonationStatusPending}
	case models.DonationStatusCompleted:
		allowedFrom = []string{models.DonationStatusAccepted}
	default:
		return nil, validationErr("invalid status")
	}

	err := s.db.Transaction(func(tx *gorm.DB) error {
		result := tx.Model(&models.Donation{}).
			Where("id = ? AND status IN ?", donation.ID, allowedFrom).
			Updates(map[string]interface{}{"status": newStatus, "updated_at": time.Now().UTC()})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return conflictErr("donation cannot change to " + newStatus + " from its current status")
		}

		statusMessage := newStatus
		if newStatus == models.DonationStatusCompleted {
			statusMessage = "marked as received"
		}
		return Notify(tx, donation.DonorID,
			fmt.Sprintf("Donation %s", capitalize(statusMessage)),
			fmt.Sprintf("Your donation of %s has been %s.", donation.ItemName, statusMessage),
			models.NotificationRef{Kind: models.KindDonation, ID: donation.ID})
	})
	if err != nil {
		return nil, err
	}

	donation.Status = newStatus
	return &donation, nil
}
