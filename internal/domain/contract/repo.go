package contract

import (
	"context"
	"time"

	"github.com/diegoclair/duty-roster/internal/domain/entity"
)

// DataManager aggregates all repository interfaces
type DataManager interface {
	WithTransaction(ctx context.Context, fn func(dm DataManager) error) error
	Pool() PoolRepo
	Professional() ProfessionalRepo
	Duty() DutyRepo
}

// PoolRepo defines the contract for pool repository
type PoolRepo interface {
	Create(pool *entity.Pool) error
	GetBySlackID(slackChannelID string) (*entity.Pool, error)
	GetByID(id int64) (*entity.Pool, error)
	Update(pool *entity.Pool) error
	GetEnabled() ([]*entity.Pool, error)
	SetEnabled(poolID int64, enabled bool) error
}

// ProfessionalRepo defines the contract for professional repository
type ProfessionalRepo interface {
	Create(professional *entity.Professional) error
	GetByPoolAndName(poolID int64, name string) (*entity.Professional, error)
	GetBySlackUserID(poolID int64, slackUserID string) (*entity.Professional, error)
	ListByPool(poolID int64) ([]*entity.Professional, error)
	Delete(professionalID int64) error
}

// DutyRepo defines the contract for duty repository. Ranges are [start, end).
type DutyRepo interface {
	ReplaceRange(poolID int64, start, end time.Time, duties []*entity.Duty) error
	ListRange(poolID int64, start, end time.Time) ([]*entity.Duty, error)
	ListByDate(poolID int64, date time.Time) ([]*entity.Duty, error)
}
