package repository

import (
	"time"

	"github.com/policymanagementplatform/insurance-core/app/models"
	"gorm.io/gorm"
)

// policyRepository implements the PolicyRepository interface
type policyRepository struct {
	db *gorm.DB
}

// NewPolicyRepository creates a new policy repository instance
func NewPolicyRepository(db *gorm.DB) PolicyRepository {
	return &policyRepository{db: db}
}

// Create stores a new policy
func (r *policyRepository) Create(policy *models.Policy) error {
	return r.db.Create(policy).Error
}

// GetByID retrieves a policy with its referenced entities preloaded
func (r *policyRepository) GetByID(id uint) (*models.Policy, error) {
	var policy models.Policy
	err := r.db.
		Preload("Client").
		Preload("Building").
		Preload("Broker").
		Preload("Currency").
		First(&policy, id).Error
	if err != nil {
		return nil, err
	}
	return &policy, nil
}

// GetByNumber retrieves a policy by its unique policy number
func (r *policyRepository) GetByNumber(policyNumber string) (*models.Policy, error) {
	var policy models.Policy
	if err := r.db.Where("policy_number = ?", policyNumber).First(&policy).Error; err != nil {
		return nil, err
	}
	return &policy, nil
}

// Update persists changes to an existing policy
func (r *policyRepository) Update(policy *models.Policy) error {
	return r.db.Save(policy).Error
}

// Search retrieves policies matching the composed filter, paginated
func (r *policyRepository) Search(filter PolicyFilter, offset, limit int) ([]models.Policy, int64, error) {
	var policies []models.Policy
	var total int64
	q := r.db.Model(&models.Policy{}).Scopes(filter.Scope())
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}
	err := q.Order("id").Offset(offset).Limit(limit).Find(&policies).Error
	return policies, total, err
}

// ExpireActive expires every active policy past its end date in one statement
func (r *policyRepository) ExpireActive(referenceDate time.Time) (int64, error) {
	res := r.db.Model(&models.Policy{}).
		Where("status = ? AND end_date < ?", models.PolicyStatusActive, referenceDate).
		Update("status", models.PolicyStatusExpired)
	return res.RowsAffected, res.Error
}

// ExistsByCurrencyAndStatus reports whether any policy references the
// currency while in the given status
func (r *policyRepository) ExistsByCurrencyAndStatus(currencyID uint, status string) (bool, error) {
	var count int64
	err := r.db.Model(&models.Policy{}).
		Where("currency_id = ? AND status = ?", currencyID, status).
		Count(&count).Error
	return count > 0, err
}
