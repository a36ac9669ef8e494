package brokers

import (
	"errors"

	"gorm.io/gorm"

	"github.com/policymanagementplatform/insurance-core/app/models"
	"github.com/policymanagementplatform/insurance-core/app/repository"
	"github.com/policymanagementplatform/insurance-core/internal/pkg/apperr"
)

// Service manages broker administration. Broker status gates policy
// creation but never touches existing policies.
type Service struct {
	brokers repository.BrokerRepository
}

// NewService creates a broker admin service.
func NewService(brokers repository.BrokerRepository) *Service {
	return &Service{brokers: brokers}
}

// List returns brokers with pagination.
func (s *Service) List(offset, limit int) ([]models.Broker, int64, error) {
	return s.brokers.List(offset, limit)
}

// Get returns a broker by id.
func (s *Service) Get(id uint) (*models.Broker, error) {
	broker, err := s.brokers.GetByID(id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperr.NotFound("broker not found")
	}
	return broker, err
}

// Create stores a new broker after checking broker-code uniqueness.
func (s *Service) Create(brokerCode, name, email, phone string, commissionPercentage float64, status string) (*models.Broker, error) {
	existing, err := s.brokers.GetByCode(brokerCode)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}
	if existing != nil {
		return nil, apperr.Conflict("broker code already exists")
	}

	broker := &models.Broker{
		BrokerCode:           brokerCode,
		Name:                 name,
		Email:                email,
		Phone:                phone,
		Status:               status,
		CommissionPercentage: commissionPercentage,
	}
	if err := s.brokers.Create(broker); err != nil {
		return nil, err
	}
	return broker, nil
}

// Update mutates the editable broker fields.
func (s *Service) Update(id uint, name, email, phone string, commissionPercentage float64) (*models.Broker, error) {
	broker, err := s.Get(id)
	if err != nil {
		return nil, err
	}
	broker.UpdateDetails(name, email, phone, commissionPercentage)
	if err := s.brokers.Update(broker); err != nil {
		return nil, err
	}
	return broker, nil
}

// ChangeStatus activates or deactivates the broker.
func (s *Service) ChangeStatus(id uint, status string) (*models.Broker, error) {
	broker, err := s.Get(id)
	if err != nil {
		return nil, err
	}
	if status == models.BrokerStatusActive {
		broker.Activate()
	} else {
		broker.Deactivate()
	}
	if err := s.brokers.Update(broker); err != nil {
		return nil, err
	}
	return broker, nil
}
