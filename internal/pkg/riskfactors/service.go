package riskfactors

import (
	"errors"

	"gorm.io/gorm"

	"github.com/policymanagementplatform/insurance-core/app/models"
	"github.com/policymanagementplatform/insurance-core/app/repository"
	"github.com/policymanagementplatform/insurance-core/internal/pkg/apperr"
)

// Service manages risk factor configuration administration.
type Service struct {
	riskFactors repository.RiskFactorRepository
}

// NewService creates a risk factor admin service.
func NewService(riskFactors repository.RiskFactorRepository) *Service {
	return &Service{riskFactors: riskFactors}
}

// List returns all risk factor configurations.
func (s *Service) List() ([]models.RiskFactorConfiguration, error) {
	return s.riskFactors.List()
}

// Get returns a risk factor configuration by id.
func (s *Service) Get(id uint) (*models.RiskFactorConfiguration, error) {
	rf, err := s.riskFactors.GetByID(id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperr.NotFound("risk factor not found")
	}
	return rf, err
}

// Create stores a new risk factor configuration.
func (s *Service) Create(level string, referenceID uint, adjustmentPercentage float64, active bool) (*models.RiskFactorConfiguration, error) {
	rf := &models.RiskFactorConfiguration{
		Level:                level,
		ReferenceID:          referenceID,
		AdjustmentPercentage: adjustmentPercentage,
		Active:               active,
	}
	if err := s.riskFactors.Create(rf); err != nil {
		return nil, err
	}
	return rf, nil
}

// Update mutates the adjustable fields of an existing configuration.
func (s *Service) Update(id uint, adjustmentPercentage float64, active bool) (*models.RiskFactorConfiguration, error) {
	rf, err := s.Get(id)
	if err != nil {
		return nil, err
	}
	rf.Update(adjustmentPercentage, active)
	if err := s.riskFactors.Update(rf); err != nil {
		return nil, err
	}
	return rf, nil
}
