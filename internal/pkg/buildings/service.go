package buildings

import (
	"errors"
	"log"

	"gorm.io/gorm"

	"github.com/policymanagementplatform/insurance-core/app/models"
	"github.com/policymanagementplatform/insurance-core/app/repository"
	"github.com/policymanagementplatform/insurance-core/internal/pkg/apperr"
	"github.com/policymanagementplatform/insurance-core/internal/pkg/geography"
)

// Service manages buildings. A building's owner is set at creation and
// never changes afterwards.
type Service struct {
	buildings repository.BuildingRepository
	clients   repository.ClientRepository
	geo       *geography.Service
}

// NewService creates a building service.
func NewService(buildings repository.BuildingRepository, clients repository.ClientRepository, geo *geography.Service) *Service {
	return &Service{buildings: buildings, clients: clients, geo: geo}
}

// Attributes carries the mutable attributes of a building.
type Attributes struct {
	CityID             uint
	Street             string
	Number             string
	ConstructionYear   int
	Type               string
	Floors             int
	SurfaceArea        float64
	InsuredValue       float64
	EarthquakeRiskZone bool
	FloodRiskZone      bool
}

// CreateForClient stores a new building owned by the given client.
func (s *Service) CreateForClient(clientID uint, attrs Attributes) (*models.Building, error) {
	owner, err := s.clients.GetByID(clientID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperr.NotFound("client not found")
	}
	if err != nil {
		return nil, err
	}

	if _, err := s.geo.GetCity(attrs.CityID); err != nil {
		return nil, err
	}

	building := &models.Building{
		OwnerClientID:      owner.ID,
		CityID:             attrs.CityID,
		Street:             attrs.Street,
		Number:             attrs.Number,
		ConstructionYear:   attrs.ConstructionYear,
		Type:               attrs.Type,
		Floors:             attrs.Floors,
		SurfaceArea:        attrs.SurfaceArea,
		InsuredValue:       attrs.InsuredValue,
		EarthquakeRiskZone: attrs.EarthquakeRiskZone,
		FloodRiskZone:      attrs.FloodRiskZone,
	}
	if err := s.buildings.Create(building); err != nil {
		return nil, err
	}

	log.Printf("building created id=%d ownerClientId=%d", building.ID, owner.ID)
	return building, nil
}

// Update replaces the mutable attributes of an existing building.
func (s *Service) Update(buildingID uint, attrs Attributes) (*models.Building, error) {
	building, err := s.Get(buildingID)
	if err != nil {
		return nil, err
	}

	if _, err := s.geo.GetCity(attrs.CityID); err != nil {
		return nil, err
	}

	building.UpdateDetails(attrs.CityID, attrs.Street, attrs.Number, attrs.ConstructionYear, attrs.Type,
		attrs.Floors, attrs.SurfaceArea, attrs.InsuredValue, attrs.EarthquakeRiskZone, attrs.FloodRiskZone)
	if err := s.buildings.Update(building); err != nil {
		return nil, err
	}
	return building, nil
}

// ListByClient returns the buildings of an existing client.
func (s *Service) ListByClient(clientID uint, offset, limit int) ([]models.Building, int64, error) {
	if _, err := s.clients.GetByID(clientID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, 0, apperr.NotFound("client not found")
		}
		return nil, 0, err
	}
	return s.buildings.ListByOwner(clientID, offset, limit)
}

// Get returns a building by id.
func (s *Service) Get(id uint) (*models.Building, error) {
	building, err := s.buildings.GetByID(id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperr.NotFound("building not found")
	}
	return building, err
}
