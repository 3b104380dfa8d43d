package roster

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/rickar/cal/v2"
)

// DateSet is a set of calendar days normalized with Day
type DateSet map[time.Time]struct{}

// Add inserts the calendar day of t
func (s DateSet) Add(t time.Time) {
	s[Day(t)] = struct{}{}
}

// Contains reports whether the calendar day of t is in the set
func (s DateSet) Contains(t time.Time) bool {
	_, ok := s[Day(t)]
	return ok
}

// Day truncates t to midnight UTC of its calendar day
func Day(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// HolidayCalendar expands fixed day/month holidays, some of which span extra days, into excluded dates.
type HolidayCalendar struct {
	holidays  []string
	durations map[string]float64
}

func NewHolidayCalendar(holidays []string, durations map[string]float64) *HolidayCalendar {
	return &HolidayCalendar{
		holidays:  holidays,
		durations: durations,
	}
}

// Expand returns the excluded dates for the given year only. A holiday with a duration d also
// excludes the floor(d) days that follow it.
func (c *HolidayCalendar) Expand(year int) (DateSet, error) {
	excluded := make(DateSet)

	for _, spec := range c.holidays {
		h, err := parseHoliday(spec, year)
		if err != nil {
			return nil, err
		}

		actual, _ := h.Calc(year)
		base := Day(actual)
		excluded.Add(base)

		extra := int(math.Floor(c.durations[spec]))
		for i := 1; i <= extra; i++ {
			excluded.Add(base.AddDate(0, 0, i))
		}
	}

	return excluded, nil
}

// parseHoliday turns a "day/month" string into a fixed-date holiday, rejecting days that do not
// exist in the given year (e.g. 29/2 outside leap years).
func parseHoliday(spec string, year int) (*cal.Holiday, error) {
	dayPart, monthPart, ok := strings.Cut(strings.TrimSpace(spec), "/")
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrInvalidHolidaySpec, spec)
	}

	day, err := strconv.Atoi(dayPart)
	if err != nil {
		return nil, fmt.Errorf("%w: %q", ErrInvalidHolidaySpec, spec)
	}
	month, err := strconv.Atoi(monthPart)
	if err != nil || month < 1 || month > 12 {
		return nil, fmt.Errorf("%w: %q", ErrInvalidHolidaySpec, spec)
	}

	// time.Date normalizes overflow, so an out of range day comes back as a different date
	date := time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
	if day < 1 || date.Day() != day || date.Month() != time.Month(month) {
		return nil, fmt.Errorf("%w: %q does not exist in %d", ErrInvalidHolidaySpec, spec, year)
	}

	return &cal.Holiday{
		Name:  spec,
		Type:  cal.ObservancePublic,
		Month: time.Month(month),
		Day:   day,
		Func:  cal.CalcDayOfMonth,
	}, nil
}
