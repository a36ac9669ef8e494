package repository

import (
	"time"

	"github.com/policymanagementplatform/insurance-core/app/models"
	"gorm.io/gorm"
)

// ClientRepository defines the interface for client-related database operations
type ClientRepository interface {
	Create(client *models.Client) error
	GetByID(id uint) (*models.Client, error)
	GetByIdentifier(identifier string) (*models.Client, error)
	SearchByName(name string, offset, limit int) ([]models.Client, int64, error)
	List(offset, limit int) ([]models.Client, int64, error)
	Update(client *models.Client) error
	SaveIdentifierChange(change *models.ClientIdentifierChange) error
}

// BrokerRepository defines the interface for broker-related database operations
type BrokerRepository interface {
	Create(broker *models.Broker) error
	GetByID(id uint) (*models.Broker, error)
	GetByCode(code string) (*models.Broker, error)
	List(offset, limit int) ([]models.Broker, int64, error)
	Update(broker *models.Broker) error
}

// BuildingRepository defines the interface for building-related database operations
type BuildingRepository interface {
	Create(building *models.Building) error
	// GetByID loads the building with its full city/county/country chain,
	// which the premium calculation needs.
	GetByID(id uint) (*models.Building, error)
	ListByOwner(clientID uint, offset, limit int) ([]models.Building, int64, error)
	Update(building *models.Building) error
}

// GeographyRepository defines the interface for the country/county/city hierarchy
type GeographyRepository interface {
	ListCountries(offset, limit int) ([]models.Country, int64, error)
	ListCounties(countryID uint, offset, limit int) ([]models.County, int64, error)
	ListCities(countyID uint, offset, limit int) ([]models.City, int64, error)
	GetCountry(id uint) (*models.Country, error)
	GetCounty(id uint) (*models.County, error)
	// GetCity loads the city with its county and country preloaded.
	GetCity(id uint) (*models.City, error)
	FindCountryByName(name string) (*models.Country, error)
	FindCountyByName(countryID uint, name string) (*models.County, error)
	FindCityByCode(countyID uint, code string) (*models.City, error)
	CreateCountry(country *models.Country) error
	CreateCounty(county *models.County) error
	CreateCity(city *models.City) error
}

// CurrencyRepository defines the interface for currency-related database operations
type CurrencyRepository interface {
	Create(currency *models.Currency) error
	GetByID(id uint) (*models.Currency, error)
	GetByCode(code string) (*models.Currency, error)
	List() ([]models.Currency, error)
	Update(currency *models.Currency) error
}

// FeeConfigurationRepository defines the interface for fee configuration operations
type FeeConfigurationRepository interface {
	Create(fee *models.FeeConfiguration) error
	GetByID(id uint) (*models.FeeConfiguration, error)
	List() ([]models.FeeConfiguration, error)
	Update(fee *models.FeeConfiguration) error
	// FindEffective returns only configurations that are active and whose
	// inclusive [from, to] range contains date.
	FindEffective(date time.Time) ([]models.FeeConfiguration, error)
}

// RiskFactorRepository defines the interface for risk factor configuration operations
type RiskFactorRepository interface {
	Create(rf *models.RiskFactorConfiguration) error
	GetByID(id uint) (*models.RiskFactorConfiguration, error)
	List() ([]models.RiskFactorConfiguration, error)
	Update(rf *models.RiskFactorConfiguration) error
	// FindActive returns only active rows matching (level, referenceID) exactly.
	FindActive(level string, referenceID uint) ([]models.RiskFactorConfiguration, error)
}

// PolicyRepository defines the interface for policy-related database operations
type PolicyRepository interface {
	Create(policy *models.Policy) error
	GetByID(id uint) (*models.Policy, error)
	GetByNumber(policyNumber string) (*models.Policy, error)
	Update(policy *models.Policy) error
	Search(filter PolicyFilter, offset, limit int) ([]models.Policy, int64, error)
	// ExpireActive flips every active policy whose end date lies strictly
	// before the reference date to expired and reports the affected count.
	ExpireActive(referenceDate time.Time) (int64, error)
	ExistsByCurrencyAndStatus(currencyID uint, status string) (bool, error)
}

// Repositories struct holds all repository instances
type Repositories struct {
	Client     ClientRepository
	Broker     BrokerRepository
	Building   BuildingRepository
	Geography  GeographyRepository
	Currency   CurrencyRepository
	Fee        FeeConfigurationRepository
	RiskFactor RiskFactorRepository
	Policy     PolicyRepository
}

// NewRepositories creates a new instance of all repositories
func NewRepositories(db *gorm.DB) *Repositories {
	return &Repositories{
		Client:     NewClientRepository(db),
		Broker:     NewBrokerRepository(db),
		Building:   NewBuildingRepository(db),
		Geography:  NewGeographyRepository(db),
		Currency:   NewCurrencyRepository(db),
		Fee:        NewFeeConfigurationRepository(db),
		RiskFactor: NewRiskFactorRepository(db),
		Policy:     NewPolicyRepository(db),
	}
}
