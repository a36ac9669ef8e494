package fees

import (
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/policymanagementplatform/insurance-core/app/models"
	"github.com/policymanagementplatform/insurance-core/app/repository"
	"github.com/policymanagementplatform/insurance-core/internal/pkg/apperr"
)

// Service manages fee configuration administration.
type Service struct {
	fees repository.FeeConfigurationRepository
}

// NewService creates a fee configuration admin service.
func NewService(fees repository.FeeConfigurationRepository) *Service {
	return &Service{fees: fees}
}

// List returns all fee configurations.
func (s *Service) List() ([]models.FeeConfiguration, error) {
	return s.fees.List()
}

// Get returns a fee configuration by id.
func (s *Service) Get(id uint) (*models.FeeConfiguration, error) {
	fee, err := s.fees.GetByID(id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperr.NotFound("fee configuration not found")
	}
	return fee, err
}

// Create stores a new fee configuration.
func (s *Service) Create(name, feeType string, percentage float64, effectiveFrom time.Time, effectiveTo *time.Time, active bool) (*models.FeeConfiguration, error) {
	if effectiveTo != nil && effectiveTo.Before(effectiveFrom) {
		return nil, apperr.InvalidArgument("effective range end must be on or after its start")
	}
	fee := &models.FeeConfiguration{
		Name:          name,
		Type:          feeType,
		Percentage:    percentage,
		EffectiveFrom: effectiveFrom,
		EffectiveTo:   effectiveTo,
		Active:        active,
	}
	if err := s.fees.Create(fee); err != nil {
		return nil, err
	}
	return fee, nil
}

// Update mutates the adjustable fields of an existing fee configuration.
func (s *Service) Update(id uint, percentage float64, effectiveFrom time.Time, effectiveTo *time.Time, active bool) (*models.FeeConfiguration, error) {
	if effectiveTo != nil && effectiveTo.Before(effectiveFrom) {
		return nil, apperr.InvalidArgument("effective range end must be on or after its start")
	}
	fee, err := s.Get(id)
	if err != nil {
		return nil, err
	}
	fee.Update(percentage, effectiveFrom, effectiveTo, active)
	if err := s.fees.Update(fee); err != nil {
		return nil, err
	}
	return fee, nil
}
