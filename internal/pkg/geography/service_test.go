package geography_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/policymanagementplatform/insurance-core/app/models"
	"github.com/policymanagementplatform/insurance-core/internal/pkg/apperr"
	"github.com/policymanagementplatform/insurance-core/internal/pkg/geography"
)

type fakeGeoRepo struct {
	countries map[uint]*models.Country
	counties  map[uint]*models.County
	cities    map[uint]*models.City
	nextID    uint
}

func newFakeGeoRepo() *fakeGeoRepo {
	return &fakeGeoRepo{
		countries: make(map[uint]*models.Country),
		counties:  make(map[uint]*models.County),
		cities:    make(map[uint]*models.City),
		nextID:    1,
	}
}

func (r *fakeGeoRepo) ListCountries(offset, limit int) ([]models.Country, int64, error) {
	out := make([]models.Country, 0, len(r.countries))
	for id := uint(1); id < r.nextID; id++ {
		if c, ok := r.countries[id]; ok {
			out = append(out, *c)
		}
	}
	return out, int64(len(out)), nil
}

func (r *fakeGeoRepo) ListCounties(countryID uint, offset, limit int) ([]models.County, int64, error) {
	out := make([]models.County, 0)
	for id := uint(1); id < r.nextID; id++ {
		if c, ok := r.counties[id]; ok && c.CountryID == countryID {
			out = append(out, *c)
		}
	}
	return out, int64(len(out)), nil
}

func (r *fakeGeoRepo) ListCities(countyID uint, offset, limit int) ([]models.City, int64, error) {
	out := make([]models.City, 0)
	for id := uint(1); id < r.nextID; id++ {
		if c, ok := r.cities[id]; ok && c.CountyID == countyID {
			out = append(out, *c)
		}
	}
	return out, int64(len(out)), nil
}

func (r *fakeGeoRepo) GetCountry(id uint) (*models.Country, error) {
	if c, ok := r.countries[id]; ok {
		return c, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *fakeGeoRepo) GetCounty(id uint) (*models.County, error) {
	if c, ok := r.counties[id]; ok {
		return c, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *fakeGeoRepo) GetCity(id uint) (*models.City, error) {
	if c, ok := r.cities[id]; ok {
		return c, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *fakeGeoRepo) FindCountryByName(name string) (*models.Country, error) {
	for _, c := range r.countries {
		if c.Name == name {
			return c, nil
		}
	}
	return nil, nil
}

func (r *fakeGeoRepo) FindCountyByName(countryID uint, name string) (*models.County, error) {
	for _, c := range r.counties {
		if c.CountryID == countryID && c.Name == name {
			return c, nil
		}
	}
	return nil, nil
}

func (r *fakeGeoRepo) FindCityByCode(countyID uint, code string) (*models.City, error) {
	for _, c := range r.cities {
		if c.CountyID == countyID && c.Code == code {
			return c, nil
		}
	}
	return nil, nil
}

func (r *fakeGeoRepo) CreateCountry(c *models.Country) error {
	c.ID = r.nextID
	r.nextID++
	r.countries[c.ID] = c
	return nil
}

func (r *fakeGeoRepo) CreateCounty(c *models.County) error {
	c.ID = r.nextID
	r.nextID++
	r.counties[c.ID] = c
	return nil
}

func (r *fakeGeoRepo) CreateCity(c *models.City) error {
	c.ID = r.nextID
	r.nextID++
	r.cities[c.ID] = c
	return nil
}

func TestCreateCountryRejectsDuplicateName(t *testing.T) {
	service := geography.NewService(newFakeGeoRepo())

	_, err := service.CreateCountry("Romania")
	require.NoError(t, err)

	_, err = service.CreateCountry("Romania")
	assert.True(t, apperr.IsConflict(err))
}

func TestCreateCountyScopedUniqueness(t *testing.T) {
	service := geography.NewService(newFakeGeoRepo())

	ro, err := service.CreateCountry("Romania")
	require.NoError(t, err)
	de, err := service.CreateCountry("Germany")
	require.NoError(t, err)

	_, err = service.CreateCounty(ro.ID, "Cluj")
	require.NoError(t, err)

	// same name is rejected within a country but allowed across countries
	_, err = service.CreateCounty(ro.ID, "Cluj")
	assert.True(t, apperr.IsConflict(err))

	_, err = service.CreateCounty(de.ID, "Cluj")
	assert.NoError(t, err)
}

func TestCreateCountyRequiresExistingCountry(t *testing.T) {
	service := geography.NewService(newFakeGeoRepo())

	_, err := service.CreateCounty(42, "Cluj")
	assert.True(t, apperr.IsNotFound(err))
}

func TestCreateCityCodeUniqueWithinCounty(t *testing.T) {
	service := geography.NewService(newFakeGeoRepo())

	ro, err := service.CreateCountry("Romania")
	require.NoError(t, err)
	cluj, err := service.CreateCounty(ro.ID, "Cluj")
	require.NoError(t, err)
	bihor, err := service.CreateCounty(ro.ID, "Bihor")
	require.NoError(t, err)

	_, err = service.CreateCity(cluj.ID, "Cluj-Napoca", "CJ-01")
	require.NoError(t, err)

	_, err = service.CreateCity(cluj.ID, "Dej", "CJ-01")
	assert.True(t, apperr.IsConflict(err))

	_, err = service.CreateCity(bihor.ID, "Oradea", "CJ-01")
	assert.NoError(t, err)
}

func TestListCountiesRequiresExistingCountry(t *testing.T) {
	service := geography.NewService(newFakeGeoRepo())

	_, _, err := service.ListCounties(42, 0, 20)
	assert.True(t, apperr.IsNotFound(err))
}

func TestGetCityNotFound(t *testing.T) {
	service := geography.NewService(newFakeGeoRepo())

	_, err := service.GetCity(42)
	assert.True(t, apperr.IsNotFound(err))
}
