package repository

import (
	"errors"

	"github.com/policymanagementplatform/insurance-core/app/models"
	"gorm.io/gorm"
)

// geographyRepository implements the GeographyRepository interface
type geographyRepository struct {
	db *gorm.DB
}

// NewGeographyRepository creates a new geography repository instance
func NewGeographyRepository(db *gorm.DB) GeographyRepository {
	return &geographyRepository{db: db}
}

// ListCountries retrieves countries with pagination
func (r *geographyRepository) ListCountries(offset, limit int) ([]models.Country, int64, error) {
	var countries []models.Country
	var total int64
	if err := r.db.Model(&models.Country{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}
	err := r.db.Order("id").Offset(offset).Limit(limit).Find(&countries).Error
	return countries, total, err
}

// ListCounties retrieves the counties of a country with pagination
func (r *geographyRepository) ListCounties(countryID uint, offset, limit int) ([]models.County, int64, error) {
	var counties []models.County
	var total int64
	q := r.db.Model(&models.County{}).Where("country_id = ?", countryID)
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}
	err := q.Order("id").Offset(offset).Limit(limit).Find(&counties).Error
	return counties, total, err
}

// ListCities retrieves the cities of a county with pagination
func (r *geographyRepository) ListCities(countyID uint, offset, limit int) ([]models.City, int64, error) {
	var cities []models.City
	var total int64
	q := r.db.Model(&models.City{}).Where("county_id = ?", countyID)
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}
	err := q.Order("id").Offset(offset).Limit(limit).Find(&cities).Error
	return cities, total, err
}

// GetCountry retrieves a country by its ID
func (r *geographyRepository) GetCountry(id uint) (*models.Country, error) {
	var country models.Country
	if err := r.db.First(&country, id).Error; err != nil {
		return nil, err
	}
	return &country, nil
}

// GetCounty retrieves a county by its ID
func (r *geographyRepository) GetCounty(id uint) (*models.County, error) {
	var county models.County
	if err := r.db.First(&county, id).Error; err != nil {
		return nil, err
	}
	return &county, nil
}

// GetCity retrieves a city with county and country preloaded
func (r *geographyRepository) GetCity(id uint) (*models.City, error) {
	var city models.City
	if err := r.db.Preload("County.Country").First(&city, id).Error; err != nil {
		return nil, err
	}
	return &city, nil
}

// FindCountryByName retrieves a country by name, case-insensitively.
// Returns nil without error when no row matches.
func (r *geographyRepository) FindCountryByName(name string) (*models.Country, error) {
	var country models.Country
	err := r.db.Where("LOWER(name) = LOWER(?)", name).First(&country).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &country, nil
}

// FindCountyByName retrieves a county by country and name, case-insensitively.
// Returns nil without error when no row matches.
func (r *geographyRepository) FindCountyByName(countryID uint, name string) (*models.County, error) {
	var county models.County
	err := r.db.Where("country_id = ? AND LOWER(name) = LOWER(?)", countryID, name).First(&county).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &county, nil
}

// FindCityByCode retrieves a city by county and code, case-insensitively.
// Returns nil without error when no row matches.
func (r *geographyRepository) FindCityByCode(countyID uint, code string) (*models.City, error) {
	var city models.City
	err := r.db.Where("county_id = ? AND LOWER(code) = LOWER(?)", countyID, code).First(&city).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &city, nil
}

// CreateCountry stores a new country
func (r *geographyRepository) CreateCountry(country *models.Country) error {
	return r.db.Create(country).Error
}

// CreateCounty stores a new county
func (r *geographyRepository) CreateCounty(county *models.County) error {
	return r.db.Create(county).Error
}

// CreateCity stores a new city
func (r *geographyRepository) CreateCity(city *models.City) error {
	return r.db.Create(city).Error
}
