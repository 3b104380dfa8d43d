package contract

import (
	"context"
	"time"

	"github.com/diegoclair/duty-roster/internal/domain/entity"
	"github.com/diegoclair/duty-roster/internal/domain/roster"
)

type RosterService interface {
	SetupPool(slackChannelID, name, teamID string) (*entity.Pool, bool, error)
	AddProfessional(poolID int64, slackUserID string) error
	AddProfessionalByName(poolID int64, name string) error
	RemoveProfessional(poolID int64, member string) error
	ListProfessionals(poolID int64) ([]*entity.Professional, error)
	Preview(professionals []string, start, end time.Time) (*roster.Result, error)
	GenerateSchedule(ctx context.Context, poolID int64, start, end time.Time) (*roster.Result, error)
	GetDuties(poolID int64, date time.Time) ([]*entity.Duty, error)
	GetMonthlyTally(poolID int64, start, end time.Time) (roster.MonthlyTally, error)
	UpdatePoolConfig(poolID int64, configType, value string) error
	PauseNotifications(poolID int64) error
	ResumeNotifications(poolID int64) error
}
