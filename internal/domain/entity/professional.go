package entity

import "time"

// Professional is a member of a pool. Name is the identifier used by the rotation and Position
// is the tie-break order.
type Professional struct {
	ID          int64
	PoolID      int64
	Name        string
	SlackUserID string
	Position    int
	JoinedAt    time.Time
}
