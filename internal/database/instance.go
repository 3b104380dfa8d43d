package database

import (
	"context"
	"fmt"

	"github.com/diegoclair/duty-roster/internal/domain/contract"
)

// instance implements DataManager interface
type instance struct {
	db               *DB
	poolRepo         contract.PoolRepo
	professionalRepo contract.ProfessionalRepo
	dutyRepo         contract.DutyRepo
}

// NewInstance creates a new database instance with all repositories
func NewInstance(db *DB) contract.DataManager {
	instance := &instance{
		db: db,
	}
	instance.repoInstances()
	return instance
}

// repoInstances initializes all repositories
func (i *instance) repoInstances() {
	i.poolRepo = newPoolRepo(i.db.conn)
	i.professionalRepo = newProfessionalRepo(i.db.conn)
	i.dutyRepo = newDutyRepo(i.db.conn)
}

// repoInstancesWithConn creates repository instances with custom dbConn
func repoInstancesWithConn(db dbConn) *instance {
	return &instance{
		poolRepo:         newPoolRepo(db),
		professionalRepo: newProfessionalRepo(db),
		dutyRepo:         newDutyRepo(db),
	}
}

// Pool returns the pool repository
func (i *instance) Pool() contract.PoolRepo {
	return i.poolRepo
}

// Professional returns the professional repository
func (i *instance) Professional() contract.ProfessionalRepo {
	return i.professionalRepo
}

// Duty returns the duty repository
func (i *instance) Duty() contract.DutyRepo {
	return i.dutyRepo
}

// WithTransaction executes a function within a database transaction
func (i *instance) WithTransaction(ctx context.Context, fn func(dm contract.DataManager) error) error {
	if i.db == nil {
		// already inside a transaction
		return fn(i)
	}

	tx, err := i.db.conn.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}

	txInstance := repoInstancesWithConn(tx)
	err = fn(txInstance)
	if err != nil {
		rbErr := tx.Rollback()
		if rbErr != nil {
			return fmt.Errorf("error rolling back transaction: %v, original error: %w", rbErr, err)
		}
		return err
	}

	return tx.Commit()
}
