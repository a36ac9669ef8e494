package models

import "time"

// Broker statuses. Inactive brokers block new policy drafts but leave
// existing policies untouched.
const (
	BrokerStatusActive   = "ACTIVE"
	BrokerStatusInactive = "INACTIVE"
)

// Broker sells policies. The commission percentage is always applied to a
// policy's premium on top of any configured fees.
type Broker struct {
	ID                   uint      `gorm:"primaryKey" json:"id"`
	BrokerCode           string    `gorm:"type:varchar(50);not null;uniqueIndex:uk_broker_code" json:"broker_code" validate:"required,max=50"`
	Name                 string    `gorm:"type:varchar(200);not null" json:"name" validate:"required,max=200"`
	Email                string    `gorm:"type:varchar(200)" json:"email,omitempty" validate:"omitempty,email,max=200"`
	Phone                string    `gorm:"type:varchar(50)" json:"phone,omitempty" validate:"max=50"`
	Status               string    `gorm:"type:varchar(20);not null" json:"status" validate:"oneof=ACTIVE INACTIVE"`
	CommissionPercentage float64   `gorm:"not null" json:"commission_percentage" validate:"gte=0"`
	CreatedAt            time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt            time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

// UpdateDetails mutates the editable fields. The broker code is immutable.
func (b *Broker) UpdateDetails(name, email, phone string, commissionPercentage float64) {
	b.Name = name
	b.Email = email
	b.Phone = phone
	b.CommissionPercentage = commissionPercentage
}

// Activate sets the broker active.
func (b *Broker) Activate() { b.Status = BrokerStatusActive }

// Deactivate blocks the broker from creating new policies.
func (b *Broker) Deactivate() { b.Status = BrokerStatusInactive }

// IsActive reports whether the broker may create policies.
func (b *Broker) IsActive() bool { return b.Status == BrokerStatusActive }
