package repositories

import (
	"github.com/codeLord61/Exchangify/internal/models"
	"gorm.io/gorm"
)

type TradeRepository interface {
	Create(trade *models.Trade) error
	GetByID(id uint) (*models.Trade, error)
	ListByInitiator(userID uint) ([]models.Trade, error)
	ListByReceiver(userID uint) ([]models.Trade, error)
	ListInvolving(userID uint, limit int) ([]models.Trade, error)
	ListFiltered(filter models.TradeFilter) ([]models.Trade, error)
	CountByStatus(status string) (int64, error)
	CountByType(tradeType string) (int64, error)
	RecentByType(tradeType string, limit int) ([]models.Trade, error)
}

type PostgresTradeRepository struct {
	db *gorm.DB
}

func NewPostgresTradeRepository(db *gorm.DB) *PostgresTradeRepository {
	return &PostgresTradeRepository{db: db}
}

func (r *PostgresTradeRepository) Create(trade *models.Trade) error {
	return r.db.Create(trade).Error
}

func (r *PostgresTradeRepository) GetByID(id uint) (*models.Trade, error) {
	var trade models.Trade
	if err := r.db.First(&trade, id).Error; err != nil {
		return nil, err
	}
	return &trade, nil
}

func (r *PostgresTradeRepository) ListByInitiator(userID uint) ([]models.Trade, error) {
	var trades []models.Trade
	err := r.db.Where("initiator_id = ?", userID).Order("created_at DESC").Find(&trades).Error
	return trades, err
}

func (r *PostgresTradeRepository) ListByReceiver(userID uint) ([]models.Trade, error) {
	var trades []models.Trade
	err := r.db.Where("receiver_id = ?", userID).Order("created_at DESC").Find(&trades).Error
	return trades, err
}

func (r *PostgresTradeRepository) ListInvolving(userID uint, limit int) ([]models.Trade, error) {
	var trades []models.Trade
	query := r.db.Where("initiator_id = ? OR receiver_id = ?", userID, userID).
		Order("created_at DESC")
	if limit > 0 {
		query = query.Limit(limit)
	}
	err := query.Find(&trades).Error
	return trades, err
}

// ListFiltered serves the admin trade screen; the text query matches the
// initiator's name or email.
func (r *PostgresTradeRepository) ListFiltered(filter models.TradeFilter) ([]models.Trade, error) {
	query := r.db.Model(&models.Trade{})

	if filter.TradeType != "" {
		query = query.Where("trades.trade_type = ?", filter.TradeType)
	}
	if filter.Status != "" {
		query = query.Where("trades.status = ?", filter.Status)
	}
	if filter.Query != "" {
		pattern := "%" + filter.Query + "%"
		query = query.
			Joins("JOIN users ON users.id = trades.initiator_id").
			Where("users.first_name LIKE ? OR users.last_name LIKE ? OR users.email LIKE ?",
				pattern, pattern, pattern)
	}

	var trades []models.Trade
	err := query.Order("trades.created_at DESC").Find(&trades).Error
	return trades, err
}

func (r *PostgresTradeRepository) CountByStatus(status string) (int64, error) {
	var count int64
	err := r.db.Model(&models.Trade{}).Where("status = ?", status).Count(&count).Error
	return count, err
}

func (r *PostgresTradeRepository) CountByType(tradeType string) (int64, error) {
	var count int64
	err := r.db.Model(&models.Trade{}).Where("trade_type = ?", tradeType).Count(&count).Error
	return count, err
}

func (r *PostgresTradeRepository) RecentByType(tradeType string, limit int) ([]models.Trade, error) {
	var trades []models.Trade
	err := r.db.Where("trade_type = ?", tradeType).
		Order("created_at DESC").Limit(limit).Find(&trades).Error
	return trades, err
}
