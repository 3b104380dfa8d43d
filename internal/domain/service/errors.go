package service

import "errors"

// ErrRestGapConflict is returned when a generated range would put someone on duty too soon after, or
// before, a duty already stored just outside the range
var ErrRestGapConflict = errors.New("schedule conflicts with stored duties")
