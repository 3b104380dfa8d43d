package entity

import "time"

// Pool is one independent rotation, usually bound to a Slack channel
type Pool struct {
	ID               int64
	Name             string
	SlackChannelID   string
	SlackTeamID      string
	NotificationTime string // HH:MM, UTC
	IsEnabled        bool
	CreatedAt        time.Time
	UpdatedAt        time.Time
}
