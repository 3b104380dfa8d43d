package roster

import (
	"sort"
	"time"

	"github.com/diegoclair/duty-roster/internal/domain"
)

// Assignment holds who covers each role on one working day. A nil slot means nobody was eligible.
type Assignment struct {
	Date     time.Time `json:"date"`
	Internal *string   `json:"internal"`
	External *string   `json:"external"`
}

// Get returns the professional holding role, if any
func (a Assignment) Get(role domain.DutyRole) (string, bool) {
	slot := a.slot(role)
	if slot == nil || *slot == nil {
		return "", false
	}
	return **slot, true
}

func (a *Assignment) set(role domain.DutyRole, professional string) {
	p := professional
	*a.slot(role) = &p
}

func (a *Assignment) slot(role domain.DutyRole) **string {
	switch role {
	case domain.Internal:
		return &a.Internal
	case domain.External:
		return &a.External
	default:
		return nil
	}
}

// Schedule has one Assignment per working day in ascending date order
type Schedule []Assignment

// Lookup finds the assignment for the calendar day of date
func (s Schedule) Lookup(date time.Time) (Assignment, bool) {
	date = Day(date)
	i := sort.Search(len(s), func(i int) bool { return !s[i].Date.Before(date) })
	if i < len(s) && s[i].Date.Equal(date) {
		return s[i], true
	}
	return Assignment{}, false
}

// DutyEvent is a single filled slot, the unit counted by MonthlyTally
type DutyEvent struct {
	Professional string
	Date         time.Time
	Role         domain.DutyRole
}

// MonthKey is the unpadded month/year of the event date
func (e DutyEvent) MonthKey() string {
	return MonthKey(e.Date)
}

// DutyAssigner walks the working days once, in order, and greedily fills both roles of each day
// with the eligible professional who has the fewest duties so far.
type DutyAssigner struct {
	professionals []string
	counts        map[string]int
	lastDuty      map[string]time.Time
	schedule      Schedule
	events        []DutyEvent
}

// NewDutyAssigner prepares a fresh pass. Every professional starts with a last duty MinRestDays before
// start so that all of them are eligible on the first day. Duplicate identifiers share one record.
func NewDutyAssigner(professionals []string, start time.Time) *DutyAssigner {
	a := &DutyAssigner{
		professionals: professionals,
		counts:        make(map[string]int, len(professionals)),
		lastDuty:      make(map[string]time.Time, len(professionals)),
	}

	initial := Day(start).AddDate(0, 0, -domain.MinRestDays)
	for _, p := range professionals {
		a.counts[p] = 0
		a.lastDuty[p] = initial
	}

	return a
}

// Run processes every day and returns the completed schedule
func (a *DutyAssigner) Run(days []time.Time) Schedule {
	for _, d := range days {
		a.process(d)
	}
	return a.schedule
}

func (a *DutyAssigner) process(day time.Time) {
	day = Day(day)
	assignment := Assignment{Date: day}

	// Internal first; External then excludes whoever just took Internal.
	if p, ok := a.pick(day, nil); ok {
		a.record(&assignment, domain.Internal, p)
	}

	if p, ok := a.pick(day, assignment.Internal); ok {
		a.record(&assignment, domain.External, p)
	}

	a.schedule = append(a.schedule, assignment)
}

// pick returns the rested professional with the lowest count. Ties keep input order.
func (a *DutyAssigner) pick(day time.Time, exclude *string) (string, bool) {
	var eligible []string
	for _, p := range a.professionals {
		if exclude != nil && p == *exclude {
			continue
		}
		if a.rested(p, day) {
			eligible = append(eligible, p)
		}
	}

	if len(eligible) == 0 {
		return "", false
	}

	sort.SliceStable(eligible, func(i, j int) bool {
		return a.counts[eligible[i]] < a.counts[eligible[j]]
	})

	return eligible[0], true
}

// rested reports whether day is strictly later than last duty + (MinRestDays-1) days
func (a *DutyAssigner) rested(p string, day time.Time) bool {
	return day.After(a.lastDuty[p].AddDate(0, 0, domain.MinRestDays-1))
}

func (a *DutyAssigner) record(assignment *Assignment, role domain.DutyRole, p string) {
	assignment.set(role, p)
	a.lastDuty[p] = assignment.Date
	a.counts[p]++
	a.events = append(a.events, DutyEvent{
		Professional: p,
		Date:         assignment.Date,
		Role:         role,
	})
}

// Counts returns a copy of the running duty counters
func (a *DutyAssigner) Counts() map[string]int {
	out := make(map[string]int, len(a.counts))
	for p, n := range a.counts {
		out[p] = n
	}
	return out
}

// LastDuty returns the last duty date of p, or the initial date if p never served
func (a *DutyAssigner) LastDuty(p string) time.Time {
	return a.lastDuty[p]
}

// Events returns the duty events in the order they were recorded
func (a *DutyAssigner) Events() []DutyEvent {
	return append([]DutyEvent(nil), a.events...)
}
