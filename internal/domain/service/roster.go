package service

import (
	"context"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/diegoclair/duty-roster/internal/domain"
	"github.com/diegoclair/duty-roster/internal/domain/contract"
	"github.com/diegoclair/duty-roster/internal/domain/entity"
	"github.com/diegoclair/duty-roster/internal/domain/roster"
)

// HolidayConfig is the fixed holiday list applied to every generated schedule
type HolidayConfig struct {
	Holidays  []string
	Durations map[string]float64
}

type rosterService struct {
	dm          contract.DataManager
	slackClient contract.SlackClient
	holidays    HolidayConfig
	notifier    *notifier
}

func newRoster(dm contract.DataManager, slackClient contract.SlackClient, holidays HolidayConfig) *rosterService {
	return &rosterService{
		dm:          dm,
		slackClient: slackClient,
		holidays:    holidays,
		notifier:    nil, // Will be set later to avoid circular dependency
	}
}

func (s *rosterService) SetNotifier(notifier *notifier) {
	s.notifier = notifier
}

func (s *rosterService) SetupPool(slackChannelID, name, teamID string) (*entity.Pool, bool, error) {
	pool, err := s.dm.Pool().GetBySlackID(slackChannelID)
	if err != nil {
		return nil, false, fmt.Errorf("failed to check pool: %w", err)
	}

	if pool != nil {
		return pool, false, nil
	}

	pool = &entity.Pool{
		Name:             name,
		SlackChannelID:   slackChannelID,
		SlackTeamID:      teamID,
		NotificationTime: domain.DefaultNotificationTime,
		IsEnabled:        true,
	}

	if err := s.dm.Pool().Create(pool); err != nil {
		return nil, false, fmt.Errorf("failed to create pool: %w", err)
	}

	s.notifyConfigChange()

	return pool, true, nil
}

func (s *rosterService) AddProfessional(poolID int64, slackUserID string) error {
	userInfo, err := s.slackClient.GetUserInfo(slackUserID)
	if err != nil {
		log.Printf("ERROR getting user info from Slack API for %s: %v", slackUserID, err)
		return fmt.Errorf("failed to get user info from Slack: %w", err)
	}

	existing, err := s.dm.Professional().GetBySlackUserID(poolID, slackUserID)
	if err != nil {
		return fmt.Errorf("failed to check existing professional: %w", err)
	}
	if existing != nil {
		return fmt.Errorf("user is already in the rotation")
	}

	name := userInfo.Profile.RealName
	if name == "" {
		name = userInfo.Profile.DisplayName
	}
	if name == "" {
		name = userInfo.Name
	}

	return s.addProfessional(&entity.Professional{
		PoolID:      poolID,
		Name:        name,
		SlackUserID: slackUserID,
	})
}

func (s *rosterService) AddProfessionalByName(poolID int64, name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return fmt.Errorf("name cannot be empty")
	}

	return s.addProfessional(&entity.Professional{
		PoolID: poolID,
		Name:   name,
	})
}

// addProfessional enforces unique names because the name is the rotation identifier
func (s *rosterService) addProfessional(professional *entity.Professional) error {
	sameName, err := s.dm.Professional().GetByPoolAndName(professional.PoolID, professional.Name)
	if err != nil {
		return fmt.Errorf("failed to check existing professional: %w", err)
	}
	if sameName != nil {
		return fmt.Errorf("%s is already in the rotation", professional.Name)
	}

	if err := s.dm.Professional().Create(professional); err != nil {
		return fmt.Errorf("failed to add professional: %w", err)
	}

	return nil
}

// RemoveProfessional accepts either a Slack user ID or a professional name
func (s *rosterService) RemoveProfessional(poolID int64, member string) error {
	professional, err := s.dm.Professional().GetBySlackUserID(poolID, member)
	if err != nil {
		return fmt.Errorf("failed to find professional: %w", err)
	}

	if professional == nil {
		professional, err = s.dm.Professional().GetByPoolAndName(poolID, member)
		if err != nil {
			return fmt.Errorf("failed to find professional: %w", err)
		}
	}

	if professional == nil {
		return fmt.Errorf("professional not found in rotation")
	}

	return s.dm.Professional().Delete(professional.ID)
}

func (s *rosterService) ListProfessionals(poolID int64) ([]*entity.Professional, error) {
	return s.dm.Professional().ListByPool(poolID)
}

// Preview runs the rotation for an ad-hoc list without touching storage
func (s *rosterService) Preview(professionals []string, start, end time.Time) (*roster.Result, error) {
	return roster.Generate(s.request(professionals, start, end))
}

// GenerateSchedule runs the rotation for a stored pool and replaces its duties in [start, end).
// It fails with ErrRestGapConflict when a stored duty next to the range would break the rest gap.
func (s *rosterService) GenerateSchedule(ctx context.Context, poolID int64, start, end time.Time) (*roster.Result, error) {
	pool, err := s.dm.Pool().GetByID(poolID)
	if err != nil {
		return nil, fmt.Errorf("failed to get pool: %w", err)
	}
	if pool == nil {
		return nil, fmt.Errorf("pool not found")
	}

	professionals, err := s.dm.Professional().ListByPool(poolID)
	if err != nil {
		return nil, fmt.Errorf("failed to get professionals: %w", err)
	}

	names := make([]string, 0, len(professionals))
	for _, p := range professionals {
		names = append(names, p.Name)
	}

	result, err := roster.Generate(s.request(names, start, end))
	if err != nil {
		return nil, err
	}

	duties := dutiesFromSchedule(poolID, result.Schedule)

	err = s.dm.WithTransaction(ctx, func(tx contract.DataManager) error {
		if err := checkRestGap(tx, poolID, roster.Day(start), roster.Day(end), result.Events); err != nil {
			return err
		}
		if err := tx.Duty().ReplaceRange(poolID, roster.Day(start), roster.Day(end), duties); err != nil {
			return fmt.Errorf("failed to store duties: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	log.Printf("Generated %d working days for pool %d (%s to %s)", len(result.Schedule), poolID,
		start.Format(domain.DateLayout), end.Format(domain.DateLayout))

	return result, nil
}

func (s *rosterService) GetDuties(poolID int64, date time.Time) ([]*entity.Duty, error) {
	return s.dm.Duty().ListByDate(poolID, roster.Day(date))
}

// GetMonthlyTally rebuilds the tally of [start, end) from stored duties
func (s *rosterService) GetMonthlyTally(poolID int64, start, end time.Time) (roster.MonthlyTally, error) {
	start, end = roster.Day(start), roster.Day(end)
	if !end.After(start) {
		return nil, fmt.Errorf("%w: end must be after start", roster.ErrInvalidDateRange)
	}

	duties, err := s.dm.Duty().ListRange(poolID, start, end)
	if err != nil {
		return nil, fmt.Errorf("failed to get duties: %w", err)
	}

	var events []roster.DutyEvent
	for _, d := range duties {
		if !d.Assigned() {
			continue
		}
		events = append(events, roster.DutyEvent{
			Professional: d.ProfessionalName,
			Date:         d.DutyDate,
			Role:         d.Role,
		})
	}

	return roster.NewMonthlyTally(events), nil
}

func (s *rosterService) UpdatePoolConfig(poolID int64, configType, value string) error {
	pool, err := s.dm.Pool().GetByID(poolID)
	if err != nil {
		return fmt.Errorf("failed to get pool: %w", err)
	}
	if pool == nil {
		return fmt.Errorf("pool not found")
	}

	switch configType {
	case "time":
		if _, err := time.Parse("15:04", value); err != nil {
			return fmt.Errorf("invalid time format. Use HH:MM (24-hour format). Example: 09:30")
		}
		pool.NotificationTime = value
	case "name":
		name := strings.Trim(strings.TrimSpace(value), `"'`)
		if name == "" {
			return fmt.Errorf("name cannot be empty")
		}
		pool.Name = name
	default:
		return fmt.Errorf("invalid configuration type. Use 'time' or 'name'")
	}

	if err := s.dm.Pool().Update(pool); err != nil {
		return err
	}

	s.notifyConfigChange()

	return nil
}

func (s *rosterService) PauseNotifications(poolID int64) error {
	if err := s.dm.Pool().SetEnabled(poolID, false); err != nil {
		return fmt.Errorf("failed to pause notifications: %w", err)
	}

	s.notifyConfigChange()

	return nil
}

func (s *rosterService) ResumeNotifications(poolID int64) error {
	if err := s.dm.Pool().SetEnabled(poolID, true); err != nil {
		return fmt.Errorf("failed to resume notifications: %w", err)
	}

	s.notifyConfigChange()

	return nil
}

func (s *rosterService) request(professionals []string, start, end time.Time) roster.Request {
	return roster.Request{
		Professionals:    professionals,
		Start:            start,
		End:              end,
		Holidays:         s.holidays.Holidays,
		HolidayDurations: s.holidays.Durations,
	}
}

func (s *rosterService) notifyConfigChange() {
	if s.notifier != nil {
		s.notifier.NotifyConfigChange()
	}
}

// dutiesFromSchedule emits one row per role per working day, unfilled roles included
func dutiesFromSchedule(poolID int64, schedule roster.Schedule) []*entity.Duty {
	duties := make([]*entity.Duty, 0, len(schedule)*len(domain.DutyRoles))
	for _, a := range schedule {
		for _, role := range domain.DutyRoles {
			name, _ := a.Get(role)
			duties = append(duties, &entity.Duty{
				PoolID:           poolID,
				DutyDate:         a.Date,
				Role:             role,
				ProfessionalName: name,
			})
		}
	}
	return duties
}

// checkRestGap compares the new events with the stored duties that surround [start, end). Those rows
// survive ReplaceRange but the run starts from a fresh state, so they are checked here.
func checkRestGap(dm contract.DataManager, poolID int64, start, end time.Time, events []roster.DutyEvent) error {
	gap := domain.MinRestDays - 1

	before, err := dm.Duty().ListRange(poolID, start.AddDate(0, 0, -gap), start)
	if err != nil {
		return fmt.Errorf("failed to get stored duties: %w", err)
	}
	after, err := dm.Duty().ListRange(poolID, end, end.AddDate(0, 0, gap))
	if err != nil {
		return fmt.Errorf("failed to get stored duties: %w", err)
	}

	for _, stored := range append(before, after...) {
		if !stored.Assigned() {
			continue
		}
		for _, e := range events {
			if e.Professional != stored.ProfessionalName {
				continue
			}
			days := int(e.Date.Sub(stored.DutyDate).Hours() / 24)
			if days < 0 {
				days = -days
			}
			if days < domain.MinRestDays {
				return fmt.Errorf("%w: %s is stored on %s and would be assigned on %s; include %s in the range",
					ErrRestGapConflict, e.Professional, stored.DutyDate.Format(domain.DateLayout),
					e.Date.Format(domain.DateLayout), stored.DutyDate.Format(domain.DateLayout))
			}
		}
	}

	return nil
}
