package models

// Country is the top of the geography hierarchy.
type Country struct {
	ID   uint   `gorm:"primaryKey" json:"id"`
	Name string `gorm:"type:varchar(100);not null;uniqueIndex:uk_country_name" json:"name" validate:"required,max=100"`
}

// County belongs to exactly one country.
type County struct {
	ID        uint     `gorm:"primaryKey" json:"id"`
	CountryID uint     `gorm:"not null;index" json:"country_id"`
	Country   *Country `gorm:"foreignKey:CountryID" json:"country,omitempty"`
	Name      string   `gorm:"type:varchar(100);not null" json:"name" validate:"required,max=100"`
}

// City belongs to exactly one county. The code is unique within the county.
type City struct {
	ID       uint    `gorm:"primaryKey" json:"id"`
	CountyID uint    `gorm:"not null;index" json:"county_id"`
	County   *County `gorm:"foreignKey:CountyID" json:"county,omitempty"`
	Name     string  `gorm:"type:varchar(100);not null" json:"name" validate:"required,max=100"`
	Code     string  `gorm:"type:varchar(20);not null" json:"code" validate:"required,max=20"`
}
