package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/diegoclair/duty-roster/internal/domain"
	"github.com/diegoclair/duty-roster/internal/domain/contract"
	"github.com/diegoclair/duty-roster/internal/domain/roster"
	slackcmd "github.com/diegoclair/duty-roster/internal/domain/slack"
	"github.com/slack-go/slack"
)

// Horizon is the default [Start, End) used when a command does not name a range
type Horizon struct {
	Start time.Time
	End   time.Time
}

type SlackHandler struct {
	slackClient   contract.SlackClient
	rosterService contract.RosterService
	signingSecret string
	horizon       Horizon
	now           func() time.Time
}

func New(slackClient contract.SlackClient, rosterService contract.RosterService, signingSecret string, horizon Horizon) *SlackHandler {
	return &SlackHandler{
		slackClient:   slackClient,
		rosterService: rosterService,
		signingSecret: signingSecret,
		horizon:       horizon,
		now:           time.Now,
	}
}

func (h *SlackHandler) HandleSlashCommand(w http.ResponseWriter, r *http.Request) {
	// Verify request from Slack
	body, err := io.ReadAll(r.Body)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}
	r.Body = io.NopCloser(bytes.NewBuffer(body))

	verifier, err := slack.NewSecretsVerifier(r.Header, h.signingSecret)
	if err != nil {
		w.WriteHeader(http.StatusUnauthorized)
		return
	}

	if _, err := verifier.Write(body); err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	if err := verifier.Ensure(); err != nil {
		w.WriteHeader(http.StatusUnauthorized)
		return
	}

	s, err := slack.SlashCommandParse(r)
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	cmd, err := slackcmd.ParseCommand(s.Text)
	if err != nil {
		h.respond(w, h.createErrorResponse(err.Error()))
		return
	}

	h.respond(w, h.handleCommand(r.Context(), cmd, &s))
}

func (h *SlackHandler) handleCommand(ctx context.Context, cmd *slackcmd.Command, slashCmd *slack.SlashCommand) *slack.Msg {
	if cmd.Type == slackcmd.CmdHelp {
		return h.handleHelp()
	}

	pool, _, err := h.rosterService.SetupPool(slashCmd.ChannelID, slashCmd.ChannelName, slashCmd.TeamID)
	if err != nil {
		log.Printf("Error setting up pool for channel %s: %v", slashCmd.ChannelID, err)
		return h.createErrorResponse("Error checking channel")
	}

	switch cmd.Type {
	case slackcmd.CmdAdd:
		return h.handleAdd(pool.ID, cmd)
	case slackcmd.CmdRemove:
		return h.handleRemove(pool.ID, cmd)
	case slackcmd.CmdList:
		return h.handleList(pool.ID)
	case slackcmd.CmdGenerate:
		return h.handleGenerate(ctx, pool.ID, cmd)
	case slackcmd.CmdToday:
		return h.handleToday(pool.ID, cmd)
	case slackcmd.CmdTally:
		return h.handleTally(pool.ID, cmd)
	case slackcmd.CmdConfig:
		return h.handleConfig(pool.ID, cmd)
	case slackcmd.CmdPause:
		return h.handlePause(pool.ID)
	case slackcmd.CmdResume:
		return h.handleResume(pool.ID)
	default:
		return h.createErrorResponse("Unknown command")
	}
}

func (h *SlackHandler) handleAdd(poolID int64, cmd *slackcmd.Command) *slack.Msg {
	if len(cmd.Args) == 0 {
		return h.createErrorResponse("Please mention at least one user: `/duty add @user1 @user2` or `/duty add NAME`")
	}

	if _, ok := slackcmd.ParseUserMention(cmd.Args[0]); !ok {
		name := strings.Join(cmd.Args, " ")
		if err := h.rosterService.AddProfessionalByName(poolID, name); err != nil {
			return h.createErrorResponse(fmt.Sprintf("Failed to add %s: %v", name, err))
		}
		return &slack.Msg{
			ResponseType: slack.ResponseTypeInChannel,
			Text:         fmt.Sprintf("✅ %s has been added to the rotation!", name),
		}
	}

	var added, failed []string
	for _, arg := range cmd.Args {
		userID, ok := slackcmd.ParseUserMention(arg)
		if !ok {
			failed = append(failed, fmt.Sprintf("%s (not a mention)", arg))
			continue
		}

		if err := h.rosterService.AddProfessional(poolID, userID); err != nil {
			failed = append(failed, fmt.Sprintf("<@%s> (%v)", userID, err))
			continue
		}
		added = append(added, fmt.Sprintf("<@%s>", userID))
	}

	if len(added) == 0 {
		return h.createErrorResponse(fmt.Sprintf("Failed to add: %s", strings.Join(failed, ", ")))
	}

	var text string
	if len(added) == 1 {
		text = fmt.Sprintf("✅ %s has been added to the rotation!", added[0])
	} else {
		text = fmt.Sprintf("✅ %d users added to the rotation: %s", len(added), strings.Join(added, ", "))
	}
	if len(failed) > 0 {
		text += fmt.Sprintf("\n❌ Failed to add: %s", strings.Join(failed, ", "))
	}

	return &slack.Msg{
		ResponseType: slack.ResponseTypeInChannel,
		Text:         text,
	}
}

func (h *SlackHandler) handleRemove(poolID int64, cmd *slackcmd.Command) *slack.Msg {
	if len(cmd.Args) == 0 {
		return h.createErrorResponse("Please mention the user: `/duty remove @user` or `/duty remove NAME`")
	}

	member := strings.Join(cmd.Args, " ")
	display := member
	if userID, ok := slackcmd.ParseUserMention(cmd.Args[0]); ok {
		member = userID
		display = fmt.Sprintf("<@%s>", userID)
	}

	if err := h.rosterService.RemoveProfessional(poolID, member); err != nil {
		return h.createErrorResponse(fmt.Sprintf("Failed to remove %s: %v", display, err))
	}

	return &slack.Msg{
		ResponseType: slack.ResponseTypeInChannel,
		Text:         fmt.Sprintf("✅ %s has been removed from the rotation.", display),
	}
}

func (h *SlackHandler) handleList(poolID int64) *slack.Msg {
	professionals, err := h.rosterService.ListProfessionals(poolID)
	if err != nil {
		return h.createErrorResponse("Error listing members")
	}

	if len(professionals) == 0 {
		return &slack.Msg{
			ResponseType: slack.ResponseTypeEphemeral,
			Text:         "No members in the rotation. Use `/duty add @user` to add.",
		}
	}

	var b strings.Builder
	b.WriteString("*Members in rotation:*\n")
	for i, p := range professionals {
		if p.SlackUserID != "" {
			fmt.Fprintf(&b, "%d. %s (<@%s>)\n", i+1, p.Name, p.SlackUserID)
			continue
		}
		fmt.Fprintf(&b, "%d. %s\n", i+1, p.Name)
	}

	return &slack.Msg{
		ResponseType: slack.ResponseTypeEphemeral,
		Text:         b.String(),
	}
}

func (h *SlackHandler) handleGenerate(ctx context.Context, poolID int64, cmd *slackcmd.Command) *slack.Msg {
	start, end, err := h.parseRange(cmd.Args)
	if err != nil {
		return h.createErrorResponse(err.Error())
	}

	result, err := h.rosterService.GenerateSchedule(ctx, poolID, start, end)
	if err != nil {
		return h.createErrorResponse(fmt.Sprintf("Failed to generate schedule: %v", err))
	}

	unassigned := 0
	for _, a := range result.Schedule {
		for _, role := range domain.DutyRoles {
			if _, ok := a.Get(role); !ok {
				unassigned++
			}
		}
	}

	text := fmt.Sprintf("🗓️ Duties generated for %d working days (%s to %s)",
		len(result.Schedule), start.Format(domain.DisplayDateLayout), end.Format(domain.DisplayDateLayout))
	if unassigned > 0 {
		text += fmt.Sprintf("\n⚠️ %d slots left unassigned", unassigned)
	}
	if len(result.Tally) > 0 {
		text += "\n" + formatTally(result.Tally)
	}

	return &slack.Msg{
		ResponseType: slack.ResponseTypeInChannel,
		Text:         text,
	}
}

func (h *SlackHandler) handleToday(poolID int64, cmd *slackcmd.Command) *slack.Msg {
	date := roster.Day(h.now().UTC())
	if len(cmd.Args) > 0 {
		parsed, err := time.Parse(domain.DateLayout, cmd.Args[0])
		if err != nil {
			return h.createErrorResponse("Invalid date. Use YYYY-MM-DD")
		}
		date = parsed
	}

	duties, err := h.rosterService.GetDuties(poolID, date)
	if err != nil {
		return h.createErrorResponse("Error getting duties")
	}

	day := date.Format(domain.DisplayDateLayout)
	if len(duties) == 0 {
		return &slack.Msg{
			ResponseType: slack.ResponseTypeEphemeral,
			Text:         fmt.Sprintf("No duties on %s.", day),
		}
	}

	var b strings.Builder
	fmt.Fprintf(&b, "*Duties for %s:*\n", day)
	for _, d := range duties {
		name := "_unassigned_"
		if d.Assigned() {
			name = d.ProfessionalName
		}
		fmt.Fprintf(&b, "*%s:* %s\n", d.Role.Label(), name)
	}

	return &slack.Msg{
		ResponseType: slack.ResponseTypeEphemeral,
		Text:         b.String(),
	}
}

func (h *SlackHandler) handleTally(poolID int64, cmd *slackcmd.Command) *slack.Msg {
	start, end, err := h.parseRange(cmd.Args)
	if err != nil {
		return h.createErrorResponse(err.Error())
	}

	tally, err := h.rosterService.GetMonthlyTally(poolID, start, end)
	if err != nil {
		return h.createErrorResponse(fmt.Sprintf("Failed to get tally: %v", err))
	}

	if len(tally) == 0 {
		return &slack.Msg{
			ResponseType: slack.ResponseTypeEphemeral,
			Text:         "No duties in this range.",
		}
	}

	return &slack.Msg{
		ResponseType: slack.ResponseTypeEphemeral,
		Text:         fmt.Sprintf("*Duties per month:*\n%s", formatTally(tally)),
	}
}

func (h *SlackHandler) handleConfig(poolID int64, cmd *slackcmd.Command) *slack.Msg {
	if len(cmd.Args) < 2 {
		return h.createErrorResponse("Invalid format. Use: `/duty config time HH:MM` or `/duty config name NAME`")
	}

	configType := cmd.Args[0]
	configValue := strings.Join(cmd.Args[1:], " ")

	if err := h.rosterService.UpdatePoolConfig(poolID, configType, configValue); err != nil {
		return h.createErrorResponse(fmt.Sprintf("Error updating configuration: %v", err))
	}

	return &slack.Msg{
		ResponseType: slack.ResponseTypeEphemeral,
		Text:         fmt.Sprintf("✅ Configuration updated: %s = %s", configType, configValue),
	}
}

func (h *SlackHandler) handlePause(poolID int64) *slack.Msg {
	if err := h.rosterService.PauseNotifications(poolID); err != nil {
		return h.createErrorResponse("Error pausing notifications")
	}

	return &slack.Msg{
		ResponseType: slack.ResponseTypeEphemeral,
		Text:         "⏸️ Duty notifications have been paused for this channel.",
	}
}

func (h *SlackHandler) handleResume(poolID int64) *slack.Msg {
	if err := h.rosterService.ResumeNotifications(poolID); err != nil {
		return h.createErrorResponse("Error resuming notifications")
	}

	return &slack.Msg{
		ResponseType: slack.ResponseTypeEphemeral,
		Text:         "▶️ Duty notifications have been resumed for this channel.",
	}
}

func (h *SlackHandler) handleHelp() *slack.Msg {
	return &slack.Msg{
		ResponseType: slack.ResponseTypeEphemeral,
		Text:         slackcmd.GetHelpText(),
	}
}

// parseRange reads "START END" or falls back to the configured horizon
func (h *SlackHandler) parseRange(args []string) (time.Time, time.Time, error) {
	switch len(args) {
	case 0:
		return h.horizon.Start, h.horizon.End, nil
	case 2:
		start, err := time.Parse(domain.DateLayout, args[0])
		if err != nil {
			return time.Time{}, time.Time{}, fmt.Errorf("invalid start date %q. Use YYYY-MM-DD", args[0])
		}
		end, err := time.Parse(domain.DateLayout, args[1])
		if err != nil {
			return time.Time{}, time.Time{}, fmt.Errorf("invalid end date %q. Use YYYY-MM-DD", args[1])
		}
		return start, end, nil
	default:
		return time.Time{}, time.Time{}, fmt.Errorf("use START END as YYYY-MM-DD, or no dates for the default range")
	}
}

// formatTally renders a monospace table, one row per professional and one column per month
func formatTally(tally roster.MonthlyTally) string {
	months := tally.Months()

	var b strings.Builder
	tw := tabwriter.NewWriter(&b, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "Person\t%s\n", strings.Join(months, "\t"))
	for _, p := range tally.Professionals() {
		cells := make([]string, 0, len(months))
		for _, m := range months {
			cells = append(cells, fmt.Sprint(tally.Get(p, m)))
		}
		fmt.Fprintf(tw, "%s\t%s\n", p, strings.Join(cells, "\t"))
	}
	tw.Flush()

	return "```\n" + b.String() + "```"
}

func (h *SlackHandler) createErrorResponse(message string) *slack.Msg {
	return &slack.Msg{
		ResponseType: slack.ResponseTypeEphemeral,
		Text:         fmt.Sprintf("❌ %s", message),
	}
}

func (h *SlackHandler) respond(w http.ResponseWriter, msg *slack.Msg) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(msg); err != nil {
		log.Printf("Error encoding Slack response: %v", err)
	}
}
