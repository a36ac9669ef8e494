package currencies

import (
	"errors"

	"gorm.io/gorm"

	"github.com/policymanagementplatform/insurance-core/app/models"
	"github.com/policymanagementplatform/insurance-core/app/repository"
	"github.com/policymanagementplatform/insurance-core/internal/pkg/apperr"
)

// Service manages currency administration. A currency in use by active
// policies cannot be deactivated.
type Service struct {
	currencies repository.CurrencyRepository
	policies   repository.PolicyRepository
}

// NewService creates a currency admin service.
func NewService(currencies repository.CurrencyRepository, policies repository.PolicyRepository) *Service {
	return &Service{currencies: currencies, policies: policies}
}

// List returns all currencies.
func (s *Service) List() ([]models.Currency, error) {
	return s.currencies.List()
}

// Get returns a currency by id.
func (s *Service) Get(id uint) (*models.Currency, error) {
	currency, err := s.currencies.GetByID(id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperr.NotFound("currency not found")
	}
	return currency, err
}

// Create stores a new currency after checking code uniqueness.
func (s *Service) Create(code, name string, exchangeRateToBase float64, active bool) (*models.Currency, error) {
	existing, err := s.currencies.GetByCode(code)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}
	if existing != nil {
		return nil, apperr.Conflict("currency code already exists")
	}

	currency := &models.Currency{Code: code, Name: name, ExchangeRateToBase: exchangeRateToBase, Active: active}
	if err := s.currencies.Create(currency); err != nil {
		return nil, err
	}
	return currency, nil
}

// Update mutates the editable currency fields. Deactivation is rejected
// while any active policy references the currency.
func (s *Service) Update(id uint, name string, exchangeRateToBase float64, active bool) (*models.Currency, error) {
	currency, err := s.Get(id)
	if err != nil {
		return nil, err
	}

	if !active {
		inUse, err := s.policies.ExistsByCurrencyAndStatus(id, models.PolicyStatusActive)
		if err != nil {
			return nil, err
		}
		if inUse {
			return nil, apperr.Conflict("cannot deactivate currency used by active policies")
		}
	}

	currency.Update(name, exchangeRateToBase, active)
	if err := s.currencies.Update(currency); err != nil {
		return nil, err
	}
	return currency, nil
}
