package models

import (
	"strings"
	"time"

	"github.com/policymanagementplatform/insurance-core/internal/pkg/apperr"
)

// Policy lifecycle states. Draft policies may be activated; active policies
// expire automatically past their end date or are cancelled explicitly.
const (
	PolicyStatusDraft     = "DRAFT"
	PolicyStatusActive    = "ACTIVE"
	PolicyStatusExpired   = "EXPIRED"
	PolicyStatusCancelled = "CANCELLED"
)

// Policy is the insurance contract. The final premium is a point-in-time
// snapshot computed at draft creation; later fee or risk configuration edits
// never change it.
type Policy struct {
	ID                 uint       `gorm:"primaryKey" json:"id"`
	PolicyNumber       string     `gorm:"type:varchar(50);not null;uniqueIndex:uk_policy_number" json:"policy_number"`
	ClientID           uint       `gorm:"not null;index" json:"client_id"`
	Client             *Client    `gorm:"foreignKey:ClientID" json:"client,omitempty"`
	BuildingID         uint       `gorm:"not null;index" json:"building_id"`
	Building           *Building  `gorm:"foreignKey:BuildingID" json:"building,omitempty"`
	BrokerID           uint       `gorm:"not null;index" json:"broker_id"`
	Broker             *Broker    `gorm:"foreignKey:BrokerID" json:"broker,omitempty"`
	CurrencyID         uint       `gorm:"not null;index" json:"currency_id"`
	Currency           *Currency  `gorm:"foreignKey:CurrencyID" json:"currency,omitempty"`
	Status             string     `gorm:"type:varchar(20);not null;index" json:"status"`
	StartDate          time.Time  `gorm:"type:date;not null" json:"start_date"`
	EndDate            time.Time  `gorm:"type:date;not null;index" json:"end_date"`
	BasePremium        float64    `gorm:"not null" json:"base_premium"`
	FinalPremium       float64    `gorm:"not null" json:"final_premium"`
	CancellationReason string     `gorm:"type:varchar(500)" json:"cancellation_reason,omitempty"`
	CancellationDate   *time.Time `gorm:"type:date" json:"cancellation_date,omitempty"`
	CreatedAt          time.Time  `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt          time.Time  `gorm:"autoUpdateTime" json:"updated_at"`
}

// NewPolicy builds a draft policy carrying the computed premium snapshot.
func NewPolicy(policyNumber string, clientID, buildingID, brokerID, currencyID uint, startDate, endDate time.Time, basePremium, finalPremium float64) *Policy {
	return &Policy{
		PolicyNumber: policyNumber,
		ClientID:     clientID,
		BuildingID:   buildingID,
		BrokerID:     brokerID,
		CurrencyID:   currencyID,
		Status:       PolicyStatusDraft,
		StartDate:    startDate,
		EndDate:      endDate,
		BasePremium:  basePremium,
		FinalPremium: finalPremium,
	}
}

// Activate moves a draft policy to active. Any other source state is an
// illegal transition.
func (p *Policy) Activate() error {
	if p.Status != PolicyStatusDraft {
		return apperr.Conflict("only draft policies can be activated")
	}
	p.Status = PolicyStatusActive
	return nil
}

// Cancel moves an active policy to cancelled, recording the reason and the
// effective cancellation date. This is the single validation point for
// cancellation inputs.
func (p *Policy) Cancel(reason string, cancellationDate time.Time) error {
	if p.Status != PolicyStatusActive {
		return apperr.Conflict("only active policies can be cancelled")
	}
	if strings.TrimSpace(reason) == "" {
		return apperr.InvalidArgument("cancellation reason is required")
	}
	if cancellationDate.IsZero() {
		return apperr.InvalidArgument("cancellation date is required")
	}
	p.Status = PolicyStatusCancelled
	p.CancellationReason = reason
	p.CancellationDate = &cancellationDate
	return nil
}
