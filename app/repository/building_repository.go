package repository

import (
	"github.com/policymanagementplatform/insurance-core/app/models"
	"gorm.io/gorm"
)

// buildingRepository implements the BuildingRepository interface
type buildingRepository struct {
	db *gorm.DB
}

// NewBuildingRepository creates a new building repository instance
func NewBuildingRepository(db *gorm.DB) BuildingRepository {
	return &buildingRepository{db: db}
}

// Create stores a new building
func (r *buildingRepository) Create(building *models.Building) error {
	return r.db.Create(building).Error
}

// GetByID retrieves a building with its geography chain preloaded
func (r *buildingRepository) GetByID(id uint) (*models.Building, error) {
	var building models.Building
	err := r.db.Preload("City.County.Country").First(&building, id).Error
	if err != nil {
		return nil, err
	}
	return &building, nil
}

// ListByOwner retrieves the buildings owned by a client, paginated
func (r *buildingRepository) ListByOwner(clientID uint, offset, limit int) ([]models.Building, int64, error) {
	var buildings []models.Building
	var total int64
	q := r.db.Model(&models.Building{}).Where("owner_client_id = ?", clientID)
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}
	err := q.Preload("City").Order("id").Offset(offset).Limit(limit).Find(&buildings).Error
	return buildings, total, err
}

// Update persists changes to an existing building
func (r *buildingRepository) Update(building *models.Building) error {
	return r.db.Save(building).Error
}
