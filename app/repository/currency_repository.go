package repository

import (
	"github.com/policymanagementplatform/insurance-core/app/models"
	"gorm.io/gorm"
)

// currencyRepository implements the CurrencyRepository interface
type currencyRepository struct {
	db *gorm.DB
}

// NewCurrencyRepository creates a new currency repository instance
func NewCurrencyRepository(db *gorm.DB) CurrencyRepository {
	return &currencyRepository{db: db}
}

// Create stores a new currency
func (r *currencyRepository) Create(currency *models.Currency) error {
	return r.db.Create(currency).Error
}

// GetByID retrieves a currency by its ID
func (r *currencyRepository) GetByID(id uint) (*models.Currency, error) {
	var currency models.Currency
	if err := r.db.First(&currency, id).Error; err != nil {
		return nil, err
	}
	return &currency, nil
}

// GetByCode retrieves a currency by its code, case-insensitively
func (r *currencyRepository) GetByCode(code string) (*models.Currency, error) {
	var currency models.Currency
	if err := r.db.Where("LOWER(code) = LOWER(?)", code).First(&currency).Error; err != nil {
		return nil, err
	}
	return &currency, nil
}

// List retrieves all currencies
func (r *currencyRepository) List() ([]models.Currency, error) {
	var currencies []models.Currency
	err := r.db.Order("id").Find(&currencies).Error
	return currencies, err
}

// Update persists changes to an existing currency
func (r *currencyRepository) Update(currency *models.Currency) error {
	return r.db.Save(currency).Error
}
