package command

import (
	"fmt"
	"strings"
)

type CommandType string

const (
	CmdRun     CommandType = "run"
	CmdPreview CommandType = "preview"
	CmdHelp    CommandType = "help"
)

type Command struct {
	Type CommandType
}

// ParseCommand parses the text following the command name, e.g. the "preview"
// in "/scrum preview" or "!scrum preview". An empty text runs the job. None
// of the commands take arguments.
func ParseCommand(text string) (*Command, error) {
	parts := strings.Fields(text)
	if len(parts) == 0 {
		return &Command{Type: CmdRun}, nil
	}

	cmd := &Command{}

	switch strings.ToLower(parts[0]) {
	case "run", "now":
		cmd.Type = CmdRun
	case "preview", "dry-run":
		cmd.Type = CmdPreview
	case "help":
		cmd.Type = CmdHelp
	default:
		return nil, fmt.Errorf("unknown command: %s", parts[0])
	}

	if len(parts) > 1 {
		return nil, fmt.Errorf("unexpected arguments for %s: %s", parts[0], strings.Join(parts[1:], " "))
	}

	return cmd, nil
}

// GetHelpText renders the usage of the manual trigger for the given invocation
// prefix, e.g. "/scrum" or "!scrum".
func GetHelpText(invocation string) string {
	return `*Available Commands:*

• ` + "`" + invocation + "`" + ` - Create today's scrum thread now (administrators only)
• ` + "`" + invocation + " preview`" + ` - Show today's title and who missed yesterday's scrum, without posting
• ` + "`" + invocation + " help`" + ` - Show this message`
}
