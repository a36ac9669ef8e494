package geography

import (
	"errors"

	"gorm.io/gorm"

	"github.com/policymanagementplatform/insurance-core/app/models"
	"github.com/policymanagementplatform/insurance-core/app/repository"
	"github.com/policymanagementplatform/insurance-core/internal/pkg/apperr"
)

// Service serves the country/county/city hierarchy: broker reads and admin
// creation with per-parent uniqueness.
type Service struct {
	geo repository.GeographyRepository
}

// NewService creates a geography service.
func NewService(geo repository.GeographyRepository) *Service {
	return &Service{geo: geo}
}

// ListCountries returns countries with pagination.
func (s *Service) ListCountries(offset, limit int) ([]models.Country, int64, error) {
	return s.geo.ListCountries(offset, limit)
}

// ListCounties returns the counties of an existing country.
func (s *Service) ListCounties(countryID uint, offset, limit int) ([]models.County, int64, error) {
	if _, err := s.geo.GetCountry(countryID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, 0, apperr.NotFound("country not found")
		}
		return nil, 0, err
	}
	return s.geo.ListCounties(countryID, offset, limit)
}

// ListCities returns the cities of an existing county.
func (s *Service) ListCities(countyID uint, offset, limit int) ([]models.City, int64, error) {
	if _, err := s.geo.GetCounty(countyID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, 0, apperr.NotFound("county not found")
		}
		return nil, 0, err
	}
	return s.geo.ListCities(countyID, offset, limit)
}

// GetCity returns a city with its county and country chain.
func (s *Service) GetCity(id uint) (*models.City, error) {
	city, err := s.geo.GetCity(id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperr.NotFound("city not found")
	}
	return city, err
}

// CreateCountry stores a new country with a unique name.
func (s *Service) CreateCountry(name string) (*models.Country, error) {
	existing, err := s.geo.FindCountryByName(name)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, apperr.Conflict("country name already exists")
	}
	country := &models.Country{Name: name}
	if err := s.geo.CreateCountry(country); err != nil {
		return nil, err
	}
	return country, nil
}

// CreateCounty stores a new county under an existing country; the name is
// unique within the country.
func (s *Service) CreateCounty(countryID uint, name string) (*models.County, error) {
	if _, err := s.geo.GetCountry(countryID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("country not found")
		}
		return nil, err
	}
	existing, err := s.geo.FindCountyByName(countryID, name)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, apperr.Conflict("county name already exists for this country")
	}
	county := &models.County{CountryID: countryID, Name: name}
	if err := s.geo.CreateCounty(county); err != nil {
		return nil, err
	}
	return county, nil
}

// CreateCity stores a new city under an existing county; the code is unique
// within the county.
func (s *Service) CreateCity(countyID uint, name, code string) (*models.City, error) {
	if _, err := s.geo.GetCounty(countyID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("county not found")
		}
		return nil, err
	}
	existing, err := s.geo.FindCityByCode(countyID, code)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, apperr.Conflict("city code already exists for this county")
	}
	city := &models.City{CountyID: countyID, Name: name, Code: code}
	if err := s.geo.CreateCity(city); err != nil {
		return nil, err
	}
	return city, nil
}
