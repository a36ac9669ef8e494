package policies

import (
	"errors"
	"log"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/policymanagementplatform/insurance-core/app/models"
	"github.com/policymanagementplatform/insurance-core/app/repository"
	"github.com/policymanagementplatform/insurance-core/internal/pkg/apperr"
	"github.com/policymanagementplatform/insurance-core/internal/pkg/premium"
)

// Service owns the policy lifecycle: draft creation with the premium
// snapshot, activation, cancellation, lookup and search. Every read or
// mutation runs inside one transaction that starts with the auto-expiry
// sweep, so callers never observe a stale active policy.
type Service struct {
	tx repository.TxManager
}

// NewService creates a policy lifecycle service.
func NewService(tx repository.TxManager) *Service {
	return &Service{tx: tx}
}

// CreateDraftInput carries the attributes of a new draft policy. The
// premium snapshot is evaluated against StartDate, not the current date.
type CreateDraftInput struct {
	ClientID    uint
	BuildingID  uint
	BrokerID    uint
	CurrencyID  uint
	BasePremium float64
	StartDate   time.Time
	EndDate     time.Time
}

// CreateDraft validates the referenced entities, computes the premium
// snapshot and persists the policy in draft state.
func (s *Service) CreateDraft(in CreateDraftInput) (*models.Policy, error) {
	var policy *models.Policy
	err := s.tx.Run(func(r *repository.Repositories) error {
		if _, err := r.Client.GetByID(in.ClientID); err != nil {
			return asNotFound(err, "client not found")
		}

		building, err := r.Building.GetByID(in.BuildingID)
		if err != nil {
			return asNotFound(err, "building not found")
		}
		if building.OwnerClientID != in.ClientID {
			return apperr.Conflict("building does not belong to client")
		}

		broker, err := r.Broker.GetByID(in.BrokerID)
		if err != nil {
			return asNotFound(err, "broker not found")
		}
		if !broker.IsActive() {
			return apperr.Conflict("broker is not active")
		}

		currency, err := r.Currency.GetByID(in.CurrencyID)
		if err != nil {
			return asNotFound(err, "currency not found")
		}
		if !currency.Active {
			return apperr.Conflict("currency is not active")
		}

		if in.BasePremium <= 0 {
			return apperr.Conflict("base premium must be positive")
		}
		if in.EndDate.Before(in.StartDate) {
			return apperr.Conflict("end date must be on or after start date")
		}

		calc := premium.NewCalculator(r.Fee, r.RiskFactor)
		finalPremium, err := calc.FinalPremium(in.BasePremium, broker, building, in.StartDate)
		if err != nil {
			return err
		}

		policy = models.NewPolicy(uuid.NewString(), in.ClientID, in.BuildingID, in.BrokerID, in.CurrencyID,
			in.StartDate, in.EndDate, in.BasePremium, finalPremium)
		if err := r.Policy.Create(policy); err != nil {
			return err
		}

		log.Printf("policy created id=%d policyNumber=%s brokerId=%d clientId=%d", policy.ID, policy.PolicyNumber, in.BrokerID, in.ClientID)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return policy, nil
}

// Activate moves a draft policy to active. A policy whose coverage period
// already started cannot be activated retroactively.
func (s *Service) Activate(policyID uint, today time.Time) (*models.Policy, error) {
	var policy *models.Policy
	err := s.tx.Run(func(r *repository.Repositories) error {
		if err := expireOverdue(r, today); err != nil {
			return err
		}

		var err error
		policy, err = r.Policy.GetByID(policyID)
		if err != nil {
			return asNotFound(err, "policy not found")
		}

		if policy.StartDate.Before(today) {
			return apperr.Conflict("start date is in the past; cannot activate policy")
		}
		if err := policy.Activate(); err != nil {
			return err
		}
		if err := r.Policy.Update(policy); err != nil {
			return err
		}

		log.Printf("policy activated id=%d policyNumber=%s", policy.ID, policy.PolicyNumber)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return policy, nil
}

// Cancel moves an active policy to cancelled. The sweep runs against the
// cancellation date so a policy already past its end date expires instead.
func (s *Service) Cancel(policyID uint, reason string, cancellationDate time.Time) (*models.Policy, error) {
	var policy *models.Policy
	err := s.tx.Run(func(r *repository.Repositories) error {
		if err := expireOverdue(r, cancellationDate); err != nil {
			return err
		}

		var err error
		policy, err = r.Policy.GetByID(policyID)
		if err != nil {
			return asNotFound(err, "policy not found")
		}

		if err := policy.Cancel(reason, cancellationDate); err != nil {
			return err
		}
		if err := r.Policy.Update(policy); err != nil {
			return err
		}

		log.Printf("policy cancelled id=%d policyNumber=%s reason=%s", policy.ID, policy.PolicyNumber, reason)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return policy, nil
}

// Get retrieves a policy after sweeping overdue actives against today.
func (s *Service) Get(policyID uint, today time.Time) (*models.Policy, error) {
	var policy *models.Policy
	err := s.tx.Run(func(r *repository.Repositories) error {
		if err := expireOverdue(r, today); err != nil {
			return err
		}
		var err error
		policy, err = r.Policy.GetByID(policyID)
		if err != nil {
			return asNotFound(err, "policy not found")
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return policy, nil
}

// Search retrieves policies matching the filter after sweeping overdue
// actives, so status filtering reflects the current expiry state.
func (s *Service) Search(filter repository.PolicyFilter, today time.Time, offset, limit int) ([]models.Policy, int64, error) {
	var policies []models.Policy
	var total int64
	err := s.tx.Run(func(r *repository.Repositories) error {
		if err := expireOverdue(r, today); err != nil {
			return err
		}
		var err error
		policies, total, err = r.Policy.Search(filter, offset, limit)
		return err
	})
	if err != nil {
		return nil, 0, err
	}
	return policies, total, nil
}

// expireOverdue runs the idempotent bulk expiry sweep. A sweep failure
// aborts the surrounding operation rather than serving stale status.
func expireOverdue(r *repository.Repositories, referenceDate time.Time) error {
	expired, err := r.Policy.ExpireActive(referenceDate)
	if err != nil {
		return err
	}
	if expired > 0 {
		log.Printf("policies auto-expired count=%d date=%s", expired, referenceDate.Format("2006-01-02"))
	}
	return nil
}

func asNotFound(err error, message string) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return apperr.NotFound("%s", message)
	}
	return err
}
