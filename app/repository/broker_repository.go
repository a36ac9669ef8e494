package repository

import (
	"github.com/policymanagementplatform/insurance-core/app/models"
	"gorm.io/gorm"
)

// brokerRepository implements the BrokerRepository interface
type brokerRepository struct {
	db *gorm.DB
}

// NewBrokerRepository creates a new broker repository instance
func NewBrokerRepository(db *gorm.DB) BrokerRepository {
	return &brokerRepository{db: db}
}

// Create stores a new broker
func (r *brokerRepository) Create(broker *models.Broker) error {
	return r.db.Create(broker).Error
}

// GetByID retrieves a broker by its ID
func (r *brokerRepository) GetByID(id uint) (*models.Broker, error) {
	var broker models.Broker
	if err := r.db.First(&broker, id).Error; err != nil {
		return nil, err
	}
	return &broker, nil
}

// GetByCode retrieves a broker by its business code, case-insensitively
func (r *brokerRepository) GetByCode(code string) (*models.Broker, error) {
	var broker models.Broker
	if err := r.db.Where("LOWER(broker_code) = LOWER(?)", code).First(&broker).Error; err != nil {
		return nil, err
	}
	return &broker, nil
}

// List retrieves brokers with pagination
func (r *brokerRepository) List(offset, limit int) ([]models.Broker, int64, error) {
	var brokers []models.Broker
	var total int64
	if err := r.db.Model(&models.Broker{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}
	err := r.db.Order("id").Offset(offset).Limit(limit).Find(&brokers).Error
	return brokers, total, err
}

// Update persists changes to an existing broker
func (r *brokerRepository) Update(broker *models.Broker) error {
	return r.db.Save(broker).Error
}
