package models

import "time"

// Risk factor levels. The reference id points to the entity of the level:
// a country, county or city id, or a building-type id (see BuildingTypeID).
const (
	RiskLevelCountry      = "COUNTRY"
	RiskLevelCounty       = "COUNTY"
	RiskLevelCity         = "CITY"
	RiskLevelBuildingType = "BUILDING_TYPE"
)

// RiskFactorConfiguration is a percentage adjustment keyed by (level,
// reference id). Multiple active rows per key are allowed and all are summed.
type RiskFactorConfiguration struct {
	ID                   uint      `gorm:"primaryKey" json:"id"`
	Level                string    `gorm:"type:varchar(30);not null;index:idx_risk_level_ref" json:"level" validate:"oneof=COUNTRY COUNTY CITY BUILDING_TYPE"`
	ReferenceID          uint      `gorm:"not null;index:idx_risk_level_ref" json:"reference_id"`
	AdjustmentPercentage float64   `gorm:"not null" json:"adjustment_percentage"`
	Active               bool      `gorm:"not null" json:"active"`
	CreatedAt            time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt            time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

// Update mutates the adjustable fields. Level and reference are fixed.
func (r *RiskFactorConfiguration) Update(adjustmentPercentage float64, active bool) {
	r.AdjustmentPercentage = adjustmentPercentage
	r.Active = active
}
