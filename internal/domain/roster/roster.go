// Package roster assigns the two daily duty roles across a horizon of working days.
//
// The pipeline is HolidayCalendar -> WorkingDays -> DutyAssigner -> MonthlyTally. A run is a pure
// function of its Request: nothing is shared between runs, so independent pools may be generated
// concurrently, but a single run is a strictly ordered pass over the days.
package roster

import (
	"time"
)

// Request describes one rotation over one pool of professionals
type Request struct {
	// Professionals in tie-break order
	Professionals []string
	// Start is inclusive, End exclusive
	Start time.Time
	End   time.Time
	// Holidays are "day/month" strings; HolidayDurations maps some of them to extra days
	Holidays         []string
	HolidayDurations map[string]float64
}

// Result is the output of Generate
type Result struct {
	Schedule Schedule
	Tally    MonthlyTally
	Counts   map[string]int
	Events   []DutyEvent
}

// Generate validates the request and runs the assignment. Holidays are expanded for the year of
// Start only; a horizon that crosses into the next year does not get that year's holidays.
func Generate(req Request) (*Result, error) {
	if !Day(req.End).After(Day(req.Start)) {
		// checked before the holidays so that a bad range is reported first
		_, err := WorkingDays(req.Start, req.End, nil)
		return nil, err
	}

	excluded, err := NewHolidayCalendar(req.Holidays, req.HolidayDurations).Expand(req.Start.Year())
	if err != nil {
		return nil, err
	}

	days, err := WorkingDays(req.Start, req.End, excluded)
	if err != nil {
		return nil, err
	}

	assigner := NewDutyAssigner(req.Professionals, req.Start)
	schedule := assigner.Run(days)
	events := assigner.Events()

	return &Result{
		Schedule: schedule,
		Tally:    NewMonthlyTally(events),
		Counts:   assigner.Counts(),
		Events:   events,
	}, nil
}
