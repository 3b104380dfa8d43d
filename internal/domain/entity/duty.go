package entity

import (
	"time"

	"github.com/diegoclair/duty-roster/internal/domain"
)

// Duty is one role slot of one working day. ProfessionalName is empty when nobody was eligible.
type Duty struct {
	ID               int64
	PoolID           int64
	DutyDate         time.Time
	Role             domain.DutyRole
	ProfessionalName string
	CreatedAt        time.Time
}

// Assigned reports whether the slot was filled
func (d *Duty) Assigned() bool {
	return d.ProfessionalName != ""
}
