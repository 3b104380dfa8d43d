package domain

import "fmt"

// DutyRole identifies one of the two daily duty slots
type DutyRole int

const (
	Internal DutyRole = iota
	External
)

// DutyRoles lists the roles in the order they are filled each day
var DutyRoles = []DutyRole{Internal, External}

func (r DutyRole) String() string {
	switch r {
	case Internal:
		return "internal"
	case External:
		return "external"
	default:
		return fmt.Sprintf("DutyRole(%d)", int(r))
	}
}

// Label is the display name used in tables and chat messages
func (r DutyRole) Label() string {
	switch r {
	case Internal:
		return "Internal"
	case External:
		return "External"
	default:
		return r.String()
	}
}

// ParseDutyRole is the inverse of DutyRole.String
func ParseDutyRole(s string) (DutyRole, error) {
	switch s {
	case "internal":
		return Internal, nil
	case "external":
		return External, nil
	default:
		return 0, fmt.Errorf("unknown duty role: %q", s)
	}
}

// Date layouts
const (
	DateLayout        = "2006-01-02"
	DisplayDateLayout = "2006/01/02"
)

// MinRestDays is the minimum number of calendar days between two duties of the same professional
const MinRestDays = 3

// DefaultNotificationTime is used for newly created pools
const DefaultNotificationTime = "09:00"
