package roster

import "errors"

var (
	// ErrInvalidDateRange is returned when the horizon end is not after its start
	ErrInvalidDateRange = errors.New("invalid date range")
	// ErrInvalidHolidaySpec is returned when a holiday is not a valid day/month for the year
	ErrInvalidHolidaySpec = errors.New("invalid holiday spec")
)
