package handlers

import (
	"fmt"
	"strings"

	"github.com/diegoclair/daily-scrum-bot/internal/domain/entity"
)

const notAdminText = "This command is restricted to administrators."

func runReply(result *entity.RunResult) string {
	text := fmt.Sprintf("✅ Scrum thread created: %s", result.Thread.Title)
	if len(result.MissingMembers) > 0 {
		text += fmt.Sprintf(" (%d missed yesterday)", len(result.MissingMembers))
	}
	return text
}

func previewReply(result *entity.RunResult) string {
	var b strings.Builder
	b.WriteString("*Scrum preview*\n")
	fmt.Fprintf(&b, "Title: %s\n", result.Title)

	switch {
	case result.PriorThreadID == "":
		b.WriteString("No scrum thread found for yesterday.")
	case len(result.MissingMembers) == 0:
		b.WriteString("Everyone posted in yesterday's thread.")
	default:
		names := make([]string, 0, len(result.MissingMembers))
		for _, m := range result.MissingMembers {
			names = append(names, m.DisplayName)
		}
		fmt.Fprintf(&b, "Missed yesterday: %s", strings.Join(names, ", "))
	}
	return b.String()
}

func errorReply(message string) string {
	return fmt.Sprintf("❌ %s", message)
}
