package repository

import "gorm.io/gorm"

// TxManager runs a unit of work against a transaction-scoped repository set.
// The expiry sweep and the operation that follows it share one transaction,
// so a policy can never expire between the sweep and the decision.
type TxManager interface {
	Run(fn func(r *Repositories) error) error
}

type gormTxManager struct {
	db *gorm.DB
}

// NewTxManager creates a TxManager backed by GORM transactions.
func NewTxManager(db *gorm.DB) TxManager {
	return &gormTxManager{db: db}
}

func (m *gormTxManager) Run(fn func(r *Repositories) error) error {
	return m.db.Transaction(func(tx *gorm.DB) error {
		return fn(NewRepositories(tx))
	})
}
