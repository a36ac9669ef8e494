package models

import "time"

// Client types.
const (
	ClientTypeIndividual = "INDIVIDUAL"
	ClientTypeCompany    = "COMPANY"
)

// Client is a policy holder. The identification number is the unique
// business identifier; the DB id is internal.
type Client struct {
	ID                   uint      `gorm:"primaryKey" json:"id"`
	Type                 string    `gorm:"type:varchar(20);not null" json:"type" validate:"oneof=INDIVIDUAL COMPANY"`
	Name                 string    `gorm:"type:varchar(200);not null" json:"name" validate:"required,max=200"`
	IdentificationNumber string    `gorm:"type:varchar(32);not null;uniqueIndex:uk_client_identifier" json:"identification_number" validate:"required,max=32"`
	Email                string    `gorm:"type:varchar(200)" json:"email,omitempty" validate:"omitempty,email,max=200"`
	Phone                string    `gorm:"type:varchar(50)" json:"phone,omitempty" validate:"max=50"`
	PrimaryAddress       string    `gorm:"type:varchar(300)" json:"primary_address,omitempty" validate:"max=300"`
	CreatedAt            time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt            time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

// UpdateDetails mutates the editable contact fields. The identification
// number only changes through ChangeIdentificationNumber.
func (c *Client) UpdateDetails(name, email, phone, primaryAddress string) {
	c.Name = name
	c.Email = email
	c.Phone = phone
	c.PrimaryAddress = primaryAddress
}

// ChangeIdentificationNumber swaps the business identifier. The caller is
// responsible for recording a ClientIdentifierChange audit row.
func (c *Client) ChangeIdentificationNumber(newIdentifier string) {
	c.IdentificationNumber = newIdentifier
}
