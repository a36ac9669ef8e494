package repository

import (
	"sync"

	"gorm.io/gorm"
)

// Factory manages repository instances and ensures they are singletons
type Factory struct {
	db    *gorm.DB
	repos *Repositories
	tx    TxManager
	once  sync.Once
}

// NewFactory creates a new repository factory
func NewFactory(db *gorm.DB) *Factory {
	return &Factory{
		db: db,
	}
}

// GetRepositories returns a singleton instance of all repositories
func (f *Factory) GetRepositories() *Repositories {
	f.once.Do(func() {
		f.repos = NewRepositories(f.db)
		f.tx = NewTxManager(f.db)
	})
	return f.repos
}

// GetTxManager returns the transaction manager bound to the factory database
func (f *Factory) GetTxManager() TxManager {
	f.GetRepositories()
	return f.tx
}

// GetClientRepository returns the client repository instance
func (f *Factory) GetClientRepository() ClientRepository {
	return f.GetRepositories().Client
}

// GetBrokerRepository returns the broker repository instance
func (f *Factory) GetBrokerRepository() BrokerRepository {
	return f.GetRepositories().Broker
}

// GetBuildingRepository returns the building repository instance
func (f *Factory) GetBuildingRepository() BuildingRepository {
	return f.GetRepositories().Building
}

// GetGeographyRepository returns the geography repository instance
func (f *Factory) GetGeographyRepository() GeographyRepository {
	return f.GetRepositories().Geography
}

// GetCurrencyRepository returns the currency repository instance
func (f *Factory) GetCurrencyRepository() CurrencyRepository {
	return f.GetRepositories().Currency
}

// GetFeeConfigurationRepository returns the fee configuration repository instance
func (f *Factory) GetFeeConfigurationRepository() FeeConfigurationRepository {
	return f.GetRepositories().Fee
}

// GetRiskFactorRepository returns the risk factor repository instance
func (f *Factory) GetRiskFactorRepository() RiskFactorRepository {
	return f.GetRepositories().RiskFactor
}

// GetPolicyRepository returns the policy repository instance
func (f *Factory) GetPolicyRepository() PolicyRepository {
	return f.GetRepositories().Policy
}

// Global factory instance
var globalFactory *Factory
var factoryOnce sync.Once

// InitializeFactory initializes the global repository factory
func InitializeFactory(db *gorm.DB) {
	factoryOnce.Do(func() {
		globalFactory = NewFactory(db)
	})
}

// GetGlobalFactory returns the initialized global factory
func GetGlobalFactory() *Factory {
	return globalFactory
}
