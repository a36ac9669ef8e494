package repository

import (
	"github.com/policymanagementplatform/insurance-core/app/models"
	"gorm.io/gorm"
)

// clientRepository implements the ClientRepository interface
type clientRepository struct {
	db *gorm.DB
}

// NewClientRepository creates a new client repository instance
func NewClientRepository(db *gorm.DB) ClientRepository {
	return &clientRepository{db: db}
}

// Create stores a new client
func (r *clientRepository) Create(client *models.Client) error {
	return r.db.Create(client).Error
}

// GetByID retrieves a client by its ID
func (r *clientRepository) GetByID(id uint) (*models.Client, error) {
	var client models.Client
	if err := r.db.First(&client, id).Error; err != nil {
		return nil, err
	}
	return &client, nil
}

// GetByIdentifier retrieves a client by its identification number
func (r *clientRepository) GetByIdentifier(identifier string) (*models.Client, error) {
	var client models.Client
	if err := r.db.Where("identification_number = ?", identifier).First(&client).Error; err != nil {
		return nil, err
	}
	return &client, nil
}

// SearchByName retrieves clients whose name contains the query, paginated
func (r *clientRepository) SearchByName(name string, offset, limit int) ([]models.Client, int64, error) {
	var clients []models.Client
	var total int64
	q := r.db.Model(&models.Client{}).Where("name LIKE ?", "%"+name+"%")
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}
	err := q.Order("id").Offset(offset).Limit(limit).Find(&clients).Error
	return clients, total, err
}

// List retrieves clients with pagination
func (r *clientRepository) List(offset, limit int) ([]models.Client, int64, error) {
	var clients []models.Client
	var total int64
	if err := r.db.Model(&models.Client{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}
	err := r.db.Order("id").Offset(offset).Limit(limit).Find(&clients).Error
	return clients, total, err
}

// Update persists changes to an existing client
func (r *clientRepository) Update(client *models.Client) error {
	return r.db.Save(client).Error
}

// SaveIdentifierChange stores an identifier change audit row
func (r *clientRepository) SaveIdentifierChange(change *models.ClientIdentifierChange) error {
	return r.db.Create(change).Error
}
