package clients_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/policymanagementplatform/insurance-core/app/models"
	"github.com/policymanagementplatform/insurance-core/internal/pkg/apperr"
	"github.com/policymanagementplatform/insurance-core/internal/pkg/clients"
)

type fakeClientRepo struct {
	byID    map[uint]*models.Client
	changes []models.ClientIdentifierChange
	nextID  uint
}

func newFakeClientRepo() *fakeClientRepo {
	return &fakeClientRepo{byID: make(map[uint]*models.Client), nextID: 1}
}

func (r *fakeClientRepo) Create(c *models.Client) error {
	c.ID = r.nextID
	r.nextID++
	r.byID[c.ID] = c
	return nil
}

func (r *fakeClientRepo) GetByID(id uint) (*models.Client, error) {
	if c, ok := r.byID[id]; ok {
		copied := *c
		return &copied, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *fakeClientRepo) GetByIdentifier(identifier string) (*models.Client, error) {
	for _, c := range r.byID {
		if c.IdentificationNumber == identifier {
			copied := *c
			return &copied, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *fakeClientRepo) SearchByName(name string, offset, limit int) ([]models.Client, int64, error) {
	matched := make([]models.Client, 0)
	for id := uint(1); id < r.nextID; id++ {
		c, ok := r.byID[id]
		if ok && strings.Contains(strings.ToLower(c.Name), strings.ToLower(name)) {
			matched = append(matched, *c)
		}
	}
	return matched, int64(len(matched)), nil
}

func (r *fakeClientRepo) List(offset, limit int) ([]models.Client, int64, error) {
	all := make([]models.Client, 0, len(r.byID))
	for id := uint(1); id < r.nextID; id++ {
		if c, ok := r.byID[id]; ok {
			all = append(all, *c)
		}
	}
	return all, int64(len(all)), nil
}

func (r *fakeClientRepo) Update(c *models.Client) error {
	if _, ok := r.byID[c.ID]; !ok {
		return gorm.ErrRecordNotFound
	}
	copied := *c
	r.byID[c.ID] = &copied
	return nil
}

func (r *fakeClientRepo) SaveIdentifierChange(change *models.ClientIdentifierChange) error {
	r.changes = append(r.changes, *change)
	return nil
}

func TestCreateRejectsDuplicateIdentifier(t *testing.T) {
	repo := newFakeClientRepo()
	service := clients.NewService(repo)

	_, err := service.Create(models.ClientTypeIndividual, "Ana Pop", "1900101223344", "", "", "")
	require.NoError(t, err)

	_, err = service.Create(models.ClientTypeCompany, "Pop SRL", "1900101223344", "", "", "")
	assert.True(t, apperr.IsConflict(err))
}

func TestChangeIdentifierRecordsAuditRow(t *testing.T) {
	repo := newFakeClientRepo()
	service := clients.NewService(repo)

	created, err := service.Create(models.ClientTypeIndividual, "Ana Pop", "1900101223344", "", "", "")
	require.NoError(t, err)

	updated, err := service.ChangeIdentifier(created.ID, "2950505334455", "back-office")

	require.NoError(t, err)
	assert.Equal(t, "2950505334455", updated.IdentificationNumber)
	require.Len(t, repo.changes, 1)
	assert.Equal(t, created.ID, repo.changes[0].ClientID)
	assert.Equal(t, "1900101223344", repo.changes[0].OldIdentifier)
	assert.Equal(t, "2950505334455", repo.changes[0].NewIdentifier)
	assert.Equal(t, "back-office", repo.changes[0].ChangedBy)
}

func TestChangeIdentifierRejectsTakenIdentifier(t *testing.T) {
	repo := newFakeClientRepo()
	service := clients.NewService(repo)

	first, err := service.Create(models.ClientTypeIndividual, "Ana Pop", "1900101223344", "", "", "")
	require.NoError(t, err)
	_, err = service.Create(models.ClientTypeIndividual, "Ion Ionescu", "2950505334455", "", "", "")
	require.NoError(t, err)

	_, err = service.ChangeIdentifier(first.ID, "2950505334455", "back-office")

	assert.True(t, apperr.IsConflict(err))
	assert.Empty(t, repo.changes)
	assert.Equal(t, "1900101223344", repo.byID[first.ID].IdentificationNumber)
}

func TestChangeIdentifierToSameValueIsAllowed(t *testing.T) {
	repo := newFakeClientRepo()
	service := clients.NewService(repo)

	created, err := service.Create(models.ClientTypeIndividual, "Ana Pop", "1900101223344", "", "", "")
	require.NoError(t, err)

	updated, err := service.ChangeIdentifier(created.ID, "1900101223344", "back-office")

	require.NoError(t, err)
	assert.Equal(t, "1900101223344", updated.IdentificationNumber)
}

func TestSearchPrefersIdentifierOverName(t *testing.T) {
	repo := newFakeClientRepo()
	service := clients.NewService(repo)

	_, err := service.Create(models.ClientTypeIndividual, "Ana Pop", "1900101223344", "", "", "")
	require.NoError(t, err)
	_, err = service.Create(models.ClientTypeIndividual, "Ana Maria", "2950505334455", "", "", "")
	require.NoError(t, err)

	results, total, err := service.Search("Ana", "2950505334455", 0, 20)

	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
	require.Len(t, results, 1)
	assert.Equal(t, "Ana Maria", results[0].Name)
}

func TestSearchByNameFragment(t *testing.T) {
	repo := newFakeClientRepo()
	service := clients.NewService(repo)

	_, err := service.Create(models.ClientTypeIndividual, "Ana Pop", "1900101223344", "", "", "")
	require.NoError(t, err)
	_, err = service.Create(models.ClientTypeCompany, "Popescu SRL", "RO1234567", "", "", "")
	require.NoError(t, err)
	_, err = service.Create(models.ClientTypeIndividual, "Ion Ionescu", "2950505334455", "", "", "")
	require.NoError(t, err)

	results, total, err := service.Search("pop", "", 0, 20)

	require.NoError(t, err)
	assert.Equal(t, int64(2), total)
	assert.Len(t, results, 2)
}

func TestSearchUnknownIdentifierReturnsEmptyPage(t *testing.T) {
	repo := newFakeClientRepo()
	service := clients.NewService(repo)

	results, total, err := service.Search("", "0000000000000", 0, 20)

	require.NoError(t, err)
	assert.Equal(t, int64(0), total)
	assert.Empty(t, results)
}
