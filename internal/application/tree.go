package application

import (
	"IFLYVideosBot/internal/model"
	"fmt"
	"strings"
)

const treeRule = "━━━━━━━━━━━━━━━━"

// GenerateTreeText renders the library as a MarkdownV2 tree. When dayIndex
// is >= 0 that day is shown bold and open with its sessions listed.
func GenerateTreeText(library model.Library, dayIndex int) string {
	lines := []string{treeRule, "📦 *Library*"}

	for dayIdx, day := range library.Days {
		branch := "├── "
		if dayIdx+1 == len(library.Days) {
			branch = "└── "
		}

		date := EscapeMarkdown(FormatDate(day.Date))
		if dayIdx == dayIndex {
			lines = append(lines, branch+"📂 *"+date+"*")
		} else {
			lines = append(lines, branch+"📁 "+date)
		}

		if dayIdx != dayIndex {
			continue
		}

		for sessIdx, session := range day.Sessions {
			connector := "│   "
			if dayIdx+1 == len(library.Days) {
				connector = "    "
			}
			sessionBranch := "├── "
			if sessIdx+1 == len(day.Sessions) {
				sessionBranch = "└── "
			}

			flights := len(session.Flights)
			plural := "s"
			if flights == 1 {
				plural = ""
			}
			lines = append(lines, fmt.Sprintf("%s%s🕐 %s \\(%d flight%s\\)",
				connector, sessionBranch, EscapeMarkdown(session.TimeSlot), flights, plural))
		}
	}

	lines = append(lines, treeRule)
	return strings.Join(lines, "\n")
}
