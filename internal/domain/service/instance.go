package service

import (
	"github.com/diegoclair/duty-roster/internal/domain/contract"
)

type Instance struct {
	Roster   *rosterService
	Notifier *notifier
}

func NewInstance(dm contract.DataManager, slackClient contract.SlackClient, holidays HolidayConfig) *Instance {
	rosterService := newRoster(dm, slackClient, holidays)
	notifier := newNotifier(dm, slackClient)
	rosterService.SetNotifier(notifier)

	return &Instance{
		Roster:   rosterService,
		Notifier: notifier,
	}
}
