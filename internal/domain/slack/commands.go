package slack

import (
	"fmt"
	"strings"
)

type CommandType string

const (
	CmdAdd      CommandType = "add"
	CmdRemove   CommandType = "remove"
	CmdList     CommandType = "list"
	CmdGenerate CommandType = "generate"
	CmdToday    CommandType = "today"
	CmdTally    CommandType = "tally"
	CmdConfig   CommandType = "config"
	CmdPause    CommandType = "pause"
	CmdResume   CommandType = "resume"
	CmdHelp     CommandType = "help"
)

type Command struct {
	Type CommandType
	Args []string
	Raw  string
}

func ParseCommand(text string) (*Command, error) {
	parts := strings.Fields(strings.TrimSpace(text))
	if len(parts) == 0 {
		return &Command{Type: CmdHelp}, nil
	}

	cmd := &Command{
		Raw: text,
	}

	switch strings.ToLower(parts[0]) {
	case "add":
		cmd.Type = CmdAdd
	case "remove", "rm":
		cmd.Type = CmdRemove
	case "list", "ls":
		cmd.Type = CmdList
	case "generate", "gen":
		cmd.Type = CmdGenerate
	case "today":
		cmd.Type = CmdToday
	case "tally":
		cmd.Type = CmdTally
	case "config":
		cmd.Type = CmdConfig
	case "pause":
		cmd.Type = CmdPause
	case "resume":
		cmd.Type = CmdResume
	case "help":
		cmd.Type = CmdHelp
	default:
		return nil, fmt.Errorf("unknown command: %s", parts[0])
	}

	if len(parts) > 1 {
		cmd.Args = parts[1:]
	}

	return cmd, nil
}

// ParseUserMention extracts the user ID from <@U123> or <@U123|name>
func ParseUserMention(arg string) (string, bool) {
	arg = strings.TrimSpace(arg)
	if !strings.HasPrefix(arg, "<@") || !strings.HasSuffix(arg, ">") {
		return "", false
	}

	userID := strings.TrimSuffix(strings.TrimPrefix(arg, "<@"), ">")
	if i := strings.Index(userID, "|"); i >= 0 {
		userID = userID[:i]
	}

	return userID, userID != ""
}

func GetHelpText() string {
	return `*📋 Duty Roster - Commands*

*👥 Member Management:*
• ` + "`/duty add @user1 @user2`" + ` - Add Slack members to the pool
• ` + "`/duty add NAME`" + ` - Add a member by name
• ` + "`/duty remove @user`" + ` - Remove a member (mention or name)
• ` + "`/duty list`" + ` - List members in tie-break order

*🗓️ Schedule:*
• ` + "`/duty generate [START END]`" + ` - Generate duties for [START, END), dates as YYYY-MM-DD
• ` + "`/duty today [DATE]`" + ` - Show the duties of a day
• ` + "`/duty tally [START END]`" + ` - Show duties per member per month

*⚙️ Configuration:*
• ` + "`/duty config time HH:MM`" + ` - Set notification time (ex: 09:30)
• ` + "`/duty config name NAME`" + ` - Rename the pool

*⏸️ Notification Control:*
• ` + "`/duty pause`" + ` - Pause daily notifications
• ` + "`/duty resume`" + ` - Resume daily notifications`
}
