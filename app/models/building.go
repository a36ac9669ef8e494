package models

import "time"

// Building types. The risk-factor configuration references a building type
// by its numeric id (see BuildingTypeID), not by name.
const (
	BuildingTypeResidential = "RESIDENTIAL"
	BuildingTypeCommercial  = "COMMERCIAL"
	BuildingTypeIndustrial  = "INDUSTRIAL"
)

var buildingTypeIDs = map[string]uint{
	BuildingTypeResidential: 0,
	BuildingTypeCommercial:  1,
	BuildingTypeIndustrial:  2,
}

// BuildingTypeID returns the stable numeric id used as the reference id for
// building-type risk factors.
func BuildingTypeID(buildingType string) (uint, bool) {
	id, ok := buildingTypeIDs[buildingType]
	return id, ok
}

// Building is an insured property. The owner is fixed at creation; updates
// may change every other attribute including the city.
type Building struct {
	ID                 uint      `gorm:"primaryKey" json:"id"`
	OwnerClientID      uint      `gorm:"not null;index" json:"owner_client_id"`
	Owner              *Client   `gorm:"foreignKey:OwnerClientID" json:"owner,omitempty"`
	CityID             uint      `gorm:"not null;index" json:"city_id"`
	City               *City     `gorm:"foreignKey:CityID" json:"city,omitempty"`
	Street             string    `gorm:"type:varchar(200);not null" json:"street" validate:"required,max=200"`
	Number             string    `gorm:"type:varchar(50);not null" json:"number" validate:"required,max=50"`
	ConstructionYear   int       `gorm:"not null" json:"construction_year" validate:"gte=1000"`
	Type               string    `gorm:"type:varchar(30);not null" json:"type" validate:"oneof=RESIDENTIAL COMMERCIAL INDUSTRIAL"`
	Floors             int       `gorm:"not null" json:"floors" validate:"gte=1"`
	SurfaceArea        float64   `gorm:"not null" json:"surface_area" validate:"gt=0"`
	InsuredValue       float64   `gorm:"not null" json:"insured_value" validate:"gt=0"`
	EarthquakeRiskZone bool      `gorm:"not null" json:"earthquake_risk_zone"`
	FloodRiskZone      bool      `gorm:"not null" json:"flood_risk_zone"`
	CreatedAt          time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt          time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

// UpdateDetails replaces all mutable attributes. The owner never changes.
func (b *Building) UpdateDetails(cityID uint, street, number string, constructionYear int, buildingType string, floors int, surfaceArea, insuredValue float64, earthquakeRiskZone, floodRiskZone bool) {
	b.CityID = cityID
	b.City = nil
	b.Street = street
	b.Number = number
	b.ConstructionYear = constructionYear
	b.Type = buildingType
	b.Floors = floors
	b.SurfaceArea = surfaceArea
	b.InsuredValue = insuredValue
	b.EarthquakeRiskZone = earthquakeRiskZone
	b.FloodRiskZone = floodRiskZone
}
