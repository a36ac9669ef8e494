package repository

import (
	"time"

	"github.com/policymanagementplatform/insurance-core/app/models"
	"gorm.io/gorm"
)

// PolicyFilter composes independent, optional predicates over policies.
// A nil field matches everything; the set fields combine with logical AND.
type PolicyFilter struct {
	ClientID  *uint
	BrokerID  *uint
	Status    *string
	StartFrom *time.Time
	EndTo     *time.Time
}

// Scope translates the filter into a GORM query scope.
func (f PolicyFilter) Scope() func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		if f.ClientID != nil {
			db = db.Where("client_id = ?", *f.ClientID)
		}
		if f.BrokerID != nil {
			db = db.Where("broker_id = ?", *f.BrokerID)
		}
		if f.Status != nil {
			db = db.Where("status = ?", *f.Status)
		}
		if f.StartFrom != nil {
			db = db.Where("start_date >= ?", *f.StartFrom)
		}
		if f.EndTo != nil {
			db = db.Where("end_date <= ?", *f.EndTo)
		}
		return db
	}
}

// Matches evaluates the filter in memory with the same semantics as Scope.
func (f PolicyFilter) Matches(p *models.Policy) bool {
	if f.ClientID != nil && p.ClientID != *f.ClientID {
		return false
	}
	if f.BrokerID != nil && p.BrokerID != *f.BrokerID {
		return false
	}
	if f.Status != nil && p.Status != *f.Status {
		return false
	}
	if f.StartFrom != nil && p.StartDate.Before(*f.StartFrom) {
		return false
	}
	if f.EndTo != nil && p.EndDate.After(*f.EndTo) {
		return false
	}
	return true
}
