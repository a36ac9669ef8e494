package models

import "time"

// ClientIdentifierChange is an audit row written whenever a client's
// identification number is replaced.
type ClientIdentifierChange struct {
	ID            uint      `gorm:"primaryKey" json:"id"`
	ClientID      uint      `gorm:"not null;index" json:"client_id"`
	Client        *Client   `gorm:"foreignKey:ClientID" json:"-"`
	OldIdentifier string    `gorm:"type:varchar(32);not null" json:"old_identifier"`
	NewIdentifier string    `gorm:"type:varchar(32);not null" json:"new_identifier"`
	ChangedBy     string    `gorm:"type:varchar(100)" json:"changed_by"`
	CreatedAt     time.Time `gorm:"autoCreateTime" json:"created_at"`
}
