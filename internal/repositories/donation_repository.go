package repositories

import (
	"github.com/codeLord61/Exchangify/internal/models"
	"gorm.io/gorm"
)

type DonationRepository interface {
	Create(donation *models.Donation) error
	GetByID(id uint) (*models.Donation, error)
	ListByDonor(userID uint, limit int) ([]models.Donation, error)
	ListByRecipient(userID uint, limit int) ([]models.Donation, error)
	ListAdminPool() ([]models.Donation, error)
	CountByStatus(status string) (int64, error)
}

type PostgresDonationRepository struct {
	db *gorm.DB
}

func NewPostgresDonationRepository(db *gorm.DB) *PostgresDonationRepository {
	return &PostgresDonationRepository{db: db}
}

func (r *PostgresDonationRepository) Create(donation *models.Donation) error {
	return r.db.Create(donation).Error
}

func (r *PostgresDonationRepository) GetByID(id uint) (*models.Donation, error) {
	var donation models.Donation
	if err := r.db.First(&donation, id).Error; err != nil {
		return nil, err
	}
	return &donation, nil
}

func (r *PostgresDonationRepository) ListByDonor(userID uint, limit int) ([]models.Donation, error) {
	var donations []models.Donation
	query := r.db.Where("donor_id = ?", userID).Order("created_at DESC")
	if limit > 0 {
		query = query.Limit(limit)
	}
	err := query.Find(&donations).Error
	return donations, err
}

func (r *PostgresDonationRepository) ListByRecipient(userID uint, limit int) ([]models.Donation, error) {
	var donations []models.Donation
	query := r.db.Where("recipient_id = ?", userID).Order("created_at DESC")
	if limit > 0 {
		query = query.Limit(limit)
	}
	err := query.Find(&donations).Error
	return donations, err
}

func (r *PostgresDonationRepository) ListAdminPool() ([]models.Donation, error) {
	var donations []models.Donation
	err := r.db.Where("is_admin_donation = ?", true).Order("created_at DESC").Find(&donations).Error
	return donations, err
}

func (r *PostgresDonationRepository) CountByStatus(status string) (int64, error) {
	var count int64
	err := r.db.Model(&models.Donation{}).Where("status = ?", status).Count(&count).Error
	return count, err
}
