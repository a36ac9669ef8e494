package repository

import (
	"github.com/policymanagementplatform/insurance-core/app/models"
	"gorm.io/gorm"
)

// riskFactorRepository implements the RiskFactorRepository interface
type riskFactorRepository struct {
	db *gorm.DB
}

// NewRiskFactorRepository creates a new risk factor repository instance
func NewRiskFactorRepository(db *gorm.DB) RiskFactorRepository {
	return &riskFactorRepository{db: db}
}

// Create stores a new risk factor configuration
func (r *riskFactorRepository) Create(rf *models.RiskFactorConfiguration) error {
	return r.db.Create(rf).Error
}

// GetByID retrieves a risk factor configuration by its ID
func (r *riskFactorRepository) GetByID(id uint) (*models.RiskFactorConfiguration, error) {
	var rf models.RiskFactorConfiguration
	if err := r.db.First(&rf, id).Error; err != nil {
		return nil, err
	}
	return &rf, nil
}

// List retrieves all risk factor configurations
func (r *riskFactorRepository) List() ([]models.RiskFactorConfiguration, error) {
	var rfs []models.RiskFactorConfiguration
	err := r.db.Order("id").Find(&rfs).Error
	return rfs, err
}

// Update persists changes to an existing risk factor configuration
func (r *riskFactorRepository) Update(rf *models.RiskFactorConfiguration) error {
	return r.db.Save(rf).Error
}

// FindActive retrieves the active configurations matching (level, referenceID)
func (r *riskFactorRepository) FindActive(level string, referenceID uint) ([]models.RiskFactorConfiguration, error) {
	var rfs []models.RiskFactorConfiguration
	err := r.db.
		Where("level = ? AND reference_id = ? AND active = ?", level, referenceID, true).
		Find(&rfs).Error
	return rfs, err
}
