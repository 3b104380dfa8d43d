package service

import (
	"fmt"
	"log"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/diegoclair/duty-roster/internal/domain"
	"github.com/diegoclair/duty-roster/internal/domain/contract"
	"github.com/diegoclair/duty-roster/internal/domain/entity"
	"github.com/slack-go/slack"
)

// notifier posts the duties of the day to every enabled pool at its notification time
type notifier struct {
	dm            contract.DataManager
	slackClient   contract.SlackClient
	configChanged chan struct{}

	mu       sync.Mutex
	stopChan chan struct{}
	done     chan struct{}
	running  bool
}

func newNotifier(dm contract.DataManager, slackClient contract.SlackClient) *notifier {
	return &notifier{
		dm:            dm,
		slackClient:   slackClient,
		configChanged: make(chan struct{}, 1),
	}
}

func (n *notifier) Start() {
	n.mu.Lock()
	defer n.mu.Unlock()

	if n.running {
		return
	}
	n.running = true
	n.stopChan = make(chan struct{})
	n.done = make(chan struct{})

	log.Println("Notifier starting...")
	go n.mainLoop(n.stopChan, n.done)
}

// Stop returns once the main loop has exited
func (n *notifier) Stop() {
	n.mu.Lock()
	if !n.running {
		n.mu.Unlock()
		return
	}
	log.Println("Notifier stopping...")
	close(n.stopChan)
	done := n.done
	n.running = false
	n.mu.Unlock()

	<-done
}

func (n *notifier) isRunning() bool {
	n.mu.Lock()
	defer n.mu.Unlock()
	return n.running
}

func (n *notifier) NotifyConfigChange() {
	// Non-blocking send to config change channel
	select {
	case n.configChanged <- struct{}{}:
	default:
		// Channel is full, notifier will recalculate eventually
	}
}

func (n *notifier) mainLoop(stop <-chan struct{}, done chan<- struct{}) {
	defer close(done)

	for {
		nextTime, poolIDs := n.findNextNotification(time.Now().UTC())

		if len(poolIDs) == 0 {
			log.Println("No enabled pools found, waiting 1 hour...")
			timer := time.NewTimer(1 * time.Hour)
			select {
			case <-timer.C:
				continue
			case <-n.configChanged:
				timer.Stop()
				continue
			case <-stop:
				timer.Stop()
				return
			}
		}

		log.Printf("Next notification at %s for %d pools", nextTime.Format("2006-01-02 15:04:05 UTC"), len(poolIDs))

		timer := time.NewTimer(time.Until(nextTime))

		select {
		case <-timer.C:
			n.sendNotifications(poolIDs, nextTime)
			// Wait 1 minute to prevent re-processing the same time
			log.Println("Sent notifications, waiting 1 minute to prevent re-processing...")
			select {
			case <-time.After(1 * time.Minute):
			case <-stop:
				return
			}

		case <-n.configChanged:
			timer.Stop()
			log.Println("Configuration changed, recalculating schedule...")
			continue

		case <-stop:
			timer.Stop()
			return
		}
	}
}

func (n *notifier) findNextNotification(now time.Time) (time.Time, []int64) {
	pools, err := n.dm.Pool().GetEnabled()
	if err != nil {
		log.Printf("Error getting enabled pools: %v", err)
		return time.Time{}, nil
	}

	type poolNext struct {
		poolID   int64
		nextTime time.Time
	}

	var allNext []poolNext
	for _, pool := range pools {
		if pool.SlackChannelID == "" {
			continue
		}
		nextTime := calculateNextForPool(pool, now)
		if !nextTime.IsZero() {
			allNext = append(allNext, poolNext{poolID: pool.ID, nextTime: nextTime})
		}
	}

	if len(allNext) == 0 {
		return time.Time{}, nil
	}

	sort.Slice(allNext, func(i, j int) bool {
		return allNext[i].nextTime.Before(allNext[j].nextTime)
	})

	earliestTime := allNext[0].nextTime

	var poolIDs []int64
	for _, pn := range allNext {
		if !pn.nextTime.Equal(earliestTime) {
			break
		}
		poolIDs = append(poolIDs, pn.poolID)
	}

	return earliestTime, poolIDs
}

// calculateNextForPool returns the next occurrence of the pool notification time after now.
// Every day is a duty day, so there is no weekday filtering.
func calculateNextForPool(pool *entity.Pool, now time.Time) time.Time {
	at, err := time.Parse("15:04", pool.NotificationTime)
	if err != nil {
		log.Printf("Invalid notification time for pool %d: %s", pool.ID, pool.NotificationTime)
		return time.Time{}
	}

	today := time.Date(now.Year(), now.Month(), now.Day(), at.Hour(), at.Minute(), 0, 0, time.UTC)
	if today.After(now) {
		return today
	}
	return today.AddDate(0, 0, 1)
}

func (n *notifier) sendNotifications(poolIDs []int64, date time.Time) {
	log.Printf("Sending notifications to %d pools", len(poolIDs))

	for _, poolID := range poolIDs {
		go func(id int64) {
			if err := n.sendNotificationToPool(id, date); err != nil {
				log.Printf("Failed to send notification to pool %d: %v", id, err)
			}
		}(poolID)
	}
}

func (n *notifier) sendNotificationToPool(poolID int64, date time.Time) error {
	pool, err := n.dm.Pool().GetByID(poolID)
	if err != nil {
		return fmt.Errorf("failed to get pool: %w", err)
	}
	if pool == nil {
		return fmt.Errorf("pool not found")
	}

	duties, err := n.dm.Duty().ListByDate(poolID, date)
	if err != nil {
		return fmt.Errorf("failed to get duties: %w", err)
	}

	professionals, err := n.dm.Professional().ListByPool(poolID)
	if err != nil {
		return fmt.Errorf("failed to get professionals: %w", err)
	}

	message := formatDutyMessage(date, duties, professionals)

	_, _, err = n.slackClient.PostMessage(
		pool.SlackChannelID,
		slack.MsgOptionText(message, false),
		slack.MsgOptionAsUser(false),
	)
	if err != nil {
		return fmt.Errorf("failed to send Slack message: %w", err)
	}

	log.Printf("Notification sent to channel %s for %s", pool.SlackChannelID, date.Format(domain.DateLayout))
	return nil
}

// formatDutyMessage mentions Slack members and falls back to plain names for everyone else
func formatDutyMessage(date time.Time, duties []*entity.Duty, professionals []*entity.Professional) string {
	day := date.Format(domain.DisplayDateLayout)
	if len(duties) == 0 {
		return fmt.Sprintf("📋 *Duty Roster* - %s\n\nNo duties for today. It is either a holiday or the schedule was not generated yet (`/duty generate START END`).", day)
	}

	slackIDs := make(map[string]string, len(professionals))
	for _, p := range professionals {
		if p.SlackUserID != "" {
			slackIDs[p.Name] = p.SlackUserID
		}
	}

	var b strings.Builder
	fmt.Fprintf(&b, "📋 *Duty Roster* - %s\n\n", day)
	for _, d := range duties {
		fmt.Fprintf(&b, "*%s:* %s\n", d.Role.Label(), mention(d, slackIDs))
	}

	return strings.TrimSuffix(b.String(), "\n")
}

func mention(d *entity.Duty, slackIDs map[string]string) string {
	if !d.Assigned() {
		return "_unassigned_"
	}
	if id, ok := slackIDs[d.ProfessionalName]; ok {
		return fmt.Sprintf("<@%s>", id)
	}
	return d.ProfessionalName
}
