package roster

import (
	"fmt"
	"time"

	"github.com/diegoclair/duty-roster/internal/domain"
)

// WorkingDays lists every calendar day in [start, end) that is not excluded, in ascending order.
// Weekends are working days; only explicit holidays are removed.
func WorkingDays(start, end time.Time, excluded DateSet) ([]time.Time, error) {
	start, end = Day(start), Day(end)
	if !end.After(start) {
		return nil, fmt.Errorf("%w: end %s is not after start %s", ErrInvalidDateRange,
			end.Format(domain.DateLayout), start.Format(domain.DateLayout))
	}

	var days []time.Time
	for d := start; d.Before(end); d = d.AddDate(0, 0, 1) {
		if excluded.Contains(d) {
			continue
		}
		days = append(days, d)
	}

	return days, nil
}
