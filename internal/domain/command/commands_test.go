package command

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
		wantErr  bool
	}{
		{name: "Should run on empty text", text: "", wantType: CmdRun},
		{name: "Should run on blank text", text: "   ", wantType: CmdRun},
		{name: "Should parse run", text: "run", wantType: CmdRun},
		{name: "Should parse now as run", text: "NOW", wantType: CmdRun},
		{name: "Should parse preview", text: "preview", wantType: CmdPreview},
		{name: "Should parse dry-run as preview", text: "dry-run", wantType: CmdPreview},
		{name: "Should reject arguments after run", text: "run extra", wantErr: true},
		{name: "Should reject arguments after preview", text: "preview now", wantErr: true},
		{name: "Should parse help", text: " help ", wantType: CmdHelp},
		{name: "Should reject unknown commands", text: "delete", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cmd, err := ParseCommand(tt.text)
			if tt.wantErr {
				require.Error(t, err)
				assert.Nil(t, cmd)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantType, cmd.Type)
		})
	}
}

func TestGetHelpText(t *testing.T) {
	help := GetHelpText("!scrum")

	assert.Contains(t, help, "`!scrum`")
	assert.Contains(t, help, "`!scrum preview`")
	assert.Contains(t, help, "`!scrum help`")
}
