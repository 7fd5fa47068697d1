package repositories

import (
	"strconv"

	"github.com/codeLord61/Exchangify/internal/models"
	"gorm.io/gorm"
)

type InstallmentRepository interface {
	Create(installment *models.Installment) error
	GetByID(id uint) (*models.Installment, error)
	ListByUser(userID uint, limit int) ([]models.Installment, error)
	ListFiltered(filter models.InstallmentFilter) ([]models.Installment, error)
	CountByStatus(status string) (int64, error)
}

type PostgresInstallmentRepository struct {
	db *gorm.DB
}

func NewPostgresInstallmentRepository(db *gorm.DB) *PostgresInstallmentRepository {
	return &PostgresInstallmentRepository{db: db}
}

func (r *PostgresInstallmentRepository) Create(installment *models.Installment) error {
	return r.db.Create(installment).Error
}

func (r *PostgresInstallmentRepository) GetByID(id uint) (*models.Installment, error) {
	var installment models.Installment
	if err := r.db.First(&installment, id).Error; err != nil {
		return nil, err
	}
	return &installment, nil
}

func (r *PostgresInstallmentRepository) ListByUser(userID uint, limit int) ([]models.Installment, error) {
	var installments []models.Installment
	query := r.db.Where("user_id = ?", userID).Order("created_at DESC")
	if limit > 0 {
		query = query.Limit(limit)
	}
	err := query.Find(&installments).Error
	return installments, err
}

// ListFiltered serves the admin review screen. A numeric query matches the
// application or applicant id; anything else matches the applicant's name or
// email.
func (r *PostgresInstallmentRepository) ListFiltered(filter models.InstallmentFilter) ([]models.Installment, error) {
	query := r.db.Model(&models.Installment{}).
		Joins("JOIN users ON users.id = installments.user_id")

	if filter.Query != "" {
		if id, err := strconv.Atoi(filter.Query); err == nil {
			query = query.Where("installments.id = ? OR users.id = ?", id, id)
		} else {
			pattern := "%" + filter.Query + "%"
			query = query.Where(
				"users.first_name LIKE ? OR users.last_name LIKE ? OR users.email LIKE ?",
				pattern, pattern, pattern)
		}
	}
	if filter.Status != "" {
		query = query.Where("installments.status = ?", filter.Status)
	}

	var installments []models.Installment
	err := query.Order("installments.created_at DESC").Find(&installments).Error
	return installments, err
}

func (r *PostgresInstallmentRepository) CountByStatus(status string) (int64, error) {
	var count int64
	err := r.db.Model(&models.Installment{}).Where("status = ?", status).Count(&count).Error
	return count, err
}
