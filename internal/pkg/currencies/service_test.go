package currencies_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/policymanagementplatform/insurance-core/app/models"
	"github.com/policymanagementplatform/insurance-core/app/repository"
	"github.com/policymanagementplatform/insurance-core/internal/pkg/apperr"
	"github.com/policymanagementplatform/insurance-core/internal/pkg/currencies"
)

type fakeCurrencyRepo struct {
	byID   map[uint]*models.Currency
	nextID uint
}

func newFakeCurrencyRepo() *fakeCurrencyRepo {
	return &fakeCurrencyRepo{byID: make(map[uint]*models.Currency), nextID: 1}
}

func (r *fakeCurrencyRepo) Create(c *models.Currency) error {
	c.ID = r.nextID
	r.nextID++
	r.byID[c.ID] = c
	return nil
}

func (r *fakeCurrencyRepo) GetByID(id uint) (*models.Currency, error) {
	if c, ok := r.byID[id]; ok {
		copied := *c
		return &copied, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *fakeCurrencyRepo) GetByCode(code string) (*models.Currency, error) {
	for _, c := range r.byID {
		if c.Code == code {
			copied := *c
			return &copied, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *fakeCurrencyRepo) List() ([]models.Currency, error) {
	out := make([]models.Currency, 0, len(r.byID))
	for _, c := range r.byID {
		out = append(out, *c)
	}
	return out, nil
}

func (r *fakeCurrencyRepo) Update(c *models.Currency) error {
	copied := *c
	r.byID[c.ID] = &copied
	return nil
}

// activePolicyStub answers the currency-in-use check; every other policy
// operation is out of scope here.
type activePolicyStub struct {
	activeCurrencyIDs map[uint]bool
}

func (s *activePolicyStub) Create(*models.Policy) error            { return nil }
func (s *activePolicyStub) GetByID(uint) (*models.Policy, error)   { return nil, gorm.ErrRecordNotFound }
func (s *activePolicyStub) GetByNumber(string) (*models.Policy, error) {
	return nil, gorm.ErrRecordNotFound
}
func (s *activePolicyStub) Update(*models.Policy) error { return nil }
func (s *activePolicyStub) Search(repository.PolicyFilter, int, int) ([]models.Policy, int64, error) {
	return nil, 0, nil
}
func (s *activePolicyStub) ExpireActive(time.Time) (int64, error) { return 0, nil }
func (s *activePolicyStub) ExistsByCurrencyAndStatus(currencyID uint, status string) (bool, error) {
	return status == models.PolicyStatusActive && s.activeCurrencyIDs[currencyID], nil
}

func newService(active map[uint]bool) (*currencies.Service, *fakeCurrencyRepo) {
	repo := newFakeCurrencyRepo()
	return currencies.NewService(repo, &activePolicyStub{activeCurrencyIDs: active}), repo
}

func TestCreateRejectsDuplicateCode(t *testing.T) {
	service, _ := newService(nil)

	_, err := service.Create("EUR", "Euro", 1, true)
	require.NoError(t, err)

	_, err = service.Create("EUR", "Euro again", 1, true)
	assert.True(t, apperr.IsConflict(err))
}

func TestUpdateEditsFields(t *testing.T) {
	service, repo := newService(nil)

	created, err := service.Create("RON", "Romanian Leu", 0.2, true)
	require.NoError(t, err)

	updated, err := service.Update(created.ID, "Leu", 0.21, true)

	require.NoError(t, err)
	assert.Equal(t, "Leu", updated.Name)
	assert.InDelta(t, 0.21, updated.ExchangeRateToBase, 1e-9)
	assert.Equal(t, "Leu", repo.byID[created.ID].Name)
}

func TestDeactivationBlockedWhileInUse(t *testing.T) {
	service, repo := newService(map[uint]bool{1: true})

	created, err := service.Create("EUR", "Euro", 1, true)
	require.NoError(t, err)

	_, err = service.Update(created.ID, "Euro", 1, false)

	assert.True(t, apperr.IsConflict(err))
	assert.True(t, repo.byID[created.ID].Active)
}

func TestDeactivationAllowedWhenUnused(t *testing.T) {
	service, _ := newService(nil)

	created, err := service.Create("EUR", "Euro", 1, true)
	require.NoError(t, err)

	updated, err := service.Update(created.ID, "Euro", 1, false)

	require.NoError(t, err)
	assert.False(t, updated.Active)
}

func TestGetUnknownCurrency(t *testing.T) {
	service, _ := newService(nil)

	_, err := service.Get(42)
	assert.True(t, apperr.IsNotFound(err))
}
