package models

import "time"

// Currency is a payable policy currency. Deactivation is blocked while any
// active policy references the currency.
type Currency struct {
	ID                 uint      `gorm:"primaryKey" json:"id"`
	Code               string    `gorm:"type:varchar(10);not null;uniqueIndex:uk_currency_code" json:"code" validate:"required,max=10"`
	Name               string    `gorm:"type:varchar(100);not null" json:"name" validate:"required,max=100"`
	ExchangeRateToBase float64   `gorm:"not null" json:"exchange_rate_to_base" validate:"gt=0"`
	Active             bool      `gorm:"not null" json:"active"`
	CreatedAt          time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt          time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

// Update mutates the editable fields. The code is immutable.
func (c *Currency) Update(name string, exchangeRateToBase float64, active bool) {
	c.Name = name
	c.ExchangeRateToBase = exchangeRateToBase
	c.Active = active
}
