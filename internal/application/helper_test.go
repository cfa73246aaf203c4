package application_test

import (
	"IFLYVideosBot/internal/application"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestEscapeMarkdown(t *testing.T) {
	require.Equal(t, "a\\_b\\*c\\.", application.EscapeMarkdown("a_b*c."))
	require.Equal(t, "F001 \\- Door", application.EscapeMarkdown("F001 - Door"))
	require.Equal(t, "plain text", application.EscapeMarkdown("plain text"))
	require.Equal(t, "\\(14:30\\)\\!", application.EscapeMarkdown("(14:30)!"))
}

func TestFormatDate(t *testing.T) {
	ts := time.Date(2025, time.August, 21, 0, 0, 0, 0, time.UTC).Unix()
	require.Equal(t, "21.08.2025", application.FormatDate(ts))
}

func TestFormatFlightTime(t *testing.T) {
	tests := []struct {
		seconds int
		want    string
	}{
		{3661, "1h 1m"},
		{7200, "2h 0m"},
		{200, "3:20 min"},
		{60, "1:00 min"},
		{45, "45s"},
		{0, "0s"},
	}

	for _, tc := range tests {
		require.Equal(t, tc.want, application.FormatFlightTime(tc.seconds))
	}
}

func TestFormatDaysCount(t *testing.T) {
	tests := []struct {
		days float64
		want string
	}{
		{800, "2 years"},
		{400, "1 year"},
		{65, "2 months"},
		{45, "1 month"},
		{15, "15 days"},
		{1, "1 day"},
		{0, "0 days"},
	}

	for _, tc := range tests {
		require.Equal(t, tc.want, application.FormatDaysCount(tc.days))
	}
}

func TestRoundDuration(t *testing.T) {
	tests := []struct {
		seconds, want int
	}{
		{0, 0},
		{2, 0},
		{3, 5},
		{7, 5},
		{8, 10},
		{60, 60},
		{63, 65},
	}

	for _, tc := range tests {
		require.Equal(t, tc.want, application.RoundDuration(tc.seconds))
	}
}
