package clients

import (
	"errors"
	"log"

	"gorm.io/gorm"

	"github.com/policymanagementplatform/insurance-core/app/models"
	"github.com/policymanagementplatform/insurance-core/app/repository"
	"github.com/policymanagementplatform/insurance-core/internal/pkg/apperr"
)

// Service manages clients and their identifier change audit trail.
type Service struct {
	clients repository.ClientRepository
}

// NewService creates a client service.
func NewService(clients repository.ClientRepository) *Service {
	return &Service{clients: clients}
}

// Create stores a new client after checking identifier uniqueness.
func (s *Service) Create(clientType, name, identificationNumber, email, phone, primaryAddress string) (*models.Client, error) {
	existing, err := s.clients.GetByIdentifier(identificationNumber)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}
	if existing != nil {
		return nil, apperr.Conflict("identification number already exists")
	}

	client := &models.Client{
		Type:                 clientType,
		Name:                 name,
		IdentificationNumber: identificationNumber,
		Email:                email,
		Phone:                phone,
		PrimaryAddress:       primaryAddress,
	}
	if err := s.clients.Create(client); err != nil {
		return nil, err
	}

	log.Printf("client created id=%d identifier=%s", client.ID, client.IdentificationNumber)
	return client, nil
}

// Get returns a client by id.
func (s *Service) Get(id uint) (*models.Client, error) {
	client, err := s.clients.GetByID(id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperr.NotFound("client not found")
	}
	return client, err
}

// Update mutates the editable contact fields.
func (s *Service) Update(id uint, name, email, phone, primaryAddress string) (*models.Client, error) {
	client, err := s.Get(id)
	if err != nil {
		return nil, err
	}
	client.UpdateDetails(name, email, phone, primaryAddress)
	if err := s.clients.Update(client); err != nil {
		return nil, err
	}
	return client, nil
}

// ChangeIdentifier replaces the business identifier and records an audit row.
func (s *Service) ChangeIdentifier(id uint, newIdentifier, changedBy string) (*models.Client, error) {
	client, err := s.Get(id)
	if err != nil {
		return nil, err
	}

	byNew, err := s.clients.GetByIdentifier(newIdentifier)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}
	if byNew != nil && byNew.ID != id {
		return nil, apperr.Conflict("identification number already exists")
	}

	old := client.IdentificationNumber
	client.ChangeIdentificationNumber(newIdentifier)
	if err := s.clients.Update(client); err != nil {
		return nil, err
	}

	change := &models.ClientIdentifierChange{
		ClientID:      client.ID,
		OldIdentifier: old,
		NewIdentifier: newIdentifier,
		ChangedBy:     changedBy,
	}
	if err := s.clients.SaveIdentifierChange(change); err != nil {
		return nil, err
	}

	log.Printf("client identifier changed clientId=%d old=%s new=%s", id, old, newIdentifier)
	return client, nil
}

// Search returns clients by exact identifier, by name fragment, or all of
// them when neither filter is given.
func (s *Service) Search(name, identifier string, offset, limit int) ([]models.Client, int64, error) {
	if identifier != "" {
		client, err := s.clients.GetByIdentifier(identifier)
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return []models.Client{}, 0, nil
		}
		if err != nil {
			return nil, 0, err
		}
		return []models.Client{*client}, 1, nil
	}
	if name != "" {
		return s.clients.SearchByName(name, offset, limit)
	}
	return s.clients.List(offset, limit)
}
