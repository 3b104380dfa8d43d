package slack

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseCommand(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		wantType CommandType
		wantArgs []string
		wantErr  bool
	}{
		{name: "Should default to help", text: "   ", wantType: CmdHelp},
		{name: "Should parse add with mentions", text: "add <@U1|ayse> <@U2>", wantType: CmdAdd, wantArgs: []string{"<@U1|ayse>", "<@U2>"}},
		{name: "Should parse rm alias", text: "rm Mehmet", wantType: CmdRemove, wantArgs: []string{"Mehmet"}},
		{name: "Should parse ls alias", text: "ls", wantType: CmdList},
		{name: "Should parse generate range", text: "generate 2024-02-01 2025-02-01", wantType: CmdGenerate, wantArgs: []string{"2024-02-01", "2025-02-01"}},
		{name: "Should parse generate without range", text: "gen", wantType: CmdGenerate},
		{name: "Should parse today", text: "today", wantType: CmdToday},
		{name: "Should parse tally", text: "TALLY 2024-02-01 2024-05-01", wantType: CmdTally, wantArgs: []string{"2024-02-01", "2024-05-01"}},
		{name: "Should parse config", text: "config time 08:30", wantType: CmdConfig, wantArgs: []string{"time", "08:30"}},
		{name: "Should parse pause", text: "pause", wantType: CmdPause},
		{name: "Should parse resume", text: "resume", wantType: CmdResume},
		{name: "Should reject unknown command", text: "next", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cmd, err := ParseCommand(tt.text)
			if tt.wantErr {
				assert.Error(t, err)
				assert.Nil(t, cmd)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.wantType, cmd.Type)
			assert.Equal(t, tt.wantArgs, cmd.Args)
		})
	}
}

func TestParseUserMention(t *testing.T) {
	tests := []struct {
		arg    string
		wantID string
		wantOK bool
	}{
		{arg: "<@U123>", wantID: "U123", wantOK: true},
		{arg: "<@U123|ayse>", wantID: "U123", wantOK: true},
		{arg: "Mehmet", wantOK: false},
		{arg: "<@>", wantOK: false},
	}

	for _, tt := range tests {
		t.Run(tt.arg, func(t *testing.T) {
			id, ok := ParseUserMention(tt.arg)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.wantID, id)
		})
	}
}

func TestGetHelpText(t *testing.T) {
	help := GetHelpText()
	for _, cmd := range []string{"add", "remove", "list", "generate", "today", "tally", "config", "pause", "resume"} {
		assert.Contains(t, help, "/duty "+cmd)
	}
}
