package application

import (
	"fmt"
	"math"
	"strings"
	"time"
)

var markdownReplacer = strings.NewReplacer(
	"_", "\\_", "*", "\\*", "[", "\\[", "]", "\\]", "(", "\\(", ")", "\\)",
	"~", "\\~", "`", "\\`", ">", "\\>", "#", "\\#", "+", "\\+", "-", "\\-",
	"=", "\\=", "|", "\\|", "{", "\\{", "}", "\\}", ".", "\\.", "!", "\\!",
)

// EscapeMarkdown escapes the characters Telegram MarkdownV2 treats as
// markup.
func EscapeMarkdown(text string) string {
	return markdownReplacer.Replace(text)
}

func FormatDate(timestamp int64) string {
	return time.Unix(timestamp, 0).UTC().Format("02.01.2006")
}

// FormatFlightTime renders a duration in seconds the way the stats view
// shows it: "1h 5m", "3:20 min" or "45s".
func FormatFlightTime(seconds int) string {
	hours := seconds / 3600
	minutes := (seconds % 3600) / 60
	secs := seconds % 60

	if hours > 0 {
		return fmt.Sprintf("%dh %dm", hours, minutes)
	}
	if minutes > 0 {
		return fmt.Sprintf("%d:%02d min", minutes, secs)
	}
	return fmt.Sprintf("%ds", secs)
}

func FormatDaysCount(days float64) string {
	total := int(math.Round(days))
	years := total / 365
	months := (total % 365) / 30
	rest := (total % 365) % 30

	switch {
	case years > 1:
		return fmt.Sprintf("%d years", years)
	case years == 1:
		return "1 year"
	case months > 1:
		return fmt.Sprintf("%d months", months)
	case months == 1:
		return "1 month"
	case rest == 1:
		return "1 day"
	default:
		return fmt.Sprintf("%d days", rest)
	}
}

// RoundDuration rounds a raw video duration to the nearest 5 seconds.
func RoundDuration(seconds int) int {
	return int(math.Round(float64(seconds)/5)) * 5
}
