package models

import "time"

// Fee configuration types. Risk adjustment fees for earthquake and flood
// only apply to buildings flagged for the matching risk zone.
const (
	FeeTypeBrokerCommission         = "BROKER_COMMISSION"
	FeeTypeAdminFee                 = "ADMIN_FEE"
	FeeTypeRiskAdjustmentEarthquake = "RISK_ADJUSTMENT_EARTHQUAKE"
	FeeTypeRiskAdjustmentFlood      = "RISK_ADJUSTMENT_FLOOD"
	FeeTypeRiskAdjustmentGeneric    = "RISK_ADJUSTMENT_GENERIC"
)

// FeeConfiguration is a globally configured percentage with an inclusive
// effective date range. EffectiveTo may be nil for an open-ended range.
type FeeConfiguration struct {
	ID            uint       `gorm:"primaryKey" json:"id"`
	Name          string     `gorm:"type:varchar(200);not null" json:"name" validate:"required,max=200"`
	Type          string     `gorm:"type:varchar(40);not null" json:"type" validate:"oneof=BROKER_COMMISSION ADMIN_FEE RISK_ADJUSTMENT_EARTHQUAKE RISK_ADJUSTMENT_FLOOD RISK_ADJUSTMENT_GENERIC"`
	Percentage    float64    `gorm:"not null" json:"percentage"`
	EffectiveFrom time.Time  `gorm:"type:date;not null" json:"effective_from"`
	EffectiveTo   *time.Time `gorm:"type:date" json:"effective_to,omitempty"`
	Active        bool       `gorm:"not null" json:"active"`
	CreatedAt     time.Time  `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt     time.Time  `gorm:"autoUpdateTime" json:"updated_at"`
}

// Update mutates the adjustable fields. Name and type are fixed at creation.
func (f *FeeConfiguration) Update(percentage float64, effectiveFrom time.Time, effectiveTo *time.Time, active bool) {
	f.Percentage = percentage
	f.EffectiveFrom = effectiveFrom
	f.EffectiveTo = effectiveTo
	f.Active = active
}

// EffectiveOn reports whether the fee applies on the given date. Both range
// bounds are inclusive.
func (f *FeeConfiguration) EffectiveOn(date time.Time) bool {
	if !f.Active {
		return false
	}
	if date.Before(f.EffectiveFrom) {
		return false
	}
	return f.EffectiveTo == nil || !date.After(*f.EffectiveTo)
}
