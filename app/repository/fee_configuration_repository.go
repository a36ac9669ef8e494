package repository

import (
	"time"

	"github.com/policymanagementplatform/insurance-core/app/models"
	"gorm.io/gorm"
)

// feeConfigurationRepository implements the FeeConfigurationRepository interface
type feeConfigurationRepository struct {
	db *gorm.DB
}

// NewFeeConfigurationRepository creates a new fee configuration repository instance
func NewFeeConfigurationRepository(db *gorm.DB) FeeConfigurationRepository {
	return &feeConfigurationRepository{db: db}
}

// Create stores a new fee configuration
func (r *feeConfigurationRepository) Create(fee *models.FeeConfiguration) error {
	return r.db.Create(fee).Error
}

// GetByID retrieves a fee configuration by its ID
func (r *feeConfigurationRepository) GetByID(id uint) (*models.FeeConfiguration, error) {
	var fee models.FeeConfiguration
	if err := r.db.First(&fee, id).Error; err != nil {
		return nil, err
	}
	return &fee, nil
}

// List retrieves all fee configurations
func (r *feeConfigurationRepository) List() ([]models.FeeConfiguration, error) {
	var fees []models.FeeConfiguration
	err := r.db.Order("id").Find(&fees).Error
	return fees, err
}

// Update persists changes to an existing fee configuration
func (r *feeConfigurationRepository) Update(fee *models.FeeConfiguration) error {
	return r.db.Save(fee).Error
}

// FindEffective retrieves fee configurations effective on the given date.
// Both range bounds are inclusive; a null effective_to is open-ended.
func (r *feeConfigurationRepository) FindEffective(date time.Time) ([]models.FeeConfiguration, error) {
	var fees []models.FeeConfiguration
	err := r.db.
		Where("active = ?", true).
		Where("effective_from <= ?", date).
		Where("effective_to IS NULL OR effective_to >= ?", date).
		Order("id").
		Find(&fees).Error
	return fees, err
}
