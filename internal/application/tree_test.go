package application_test

import (
	"IFLYVideosBot/internal/application"
	"IFLYVideosBot/internal/model"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestGenerateTreeText(t *testing.T) {
	aug21 := time.Date(2025, time.August, 21, 0, 0, 0, 0, time.UTC).Unix()
	aug22 := time.Date(2025, time.August, 22, 0, 0, 0, 0, time.UTC).Unix()

	library := model.Library{Days: []model.Day{
		{Date: aug21, Sessions: []model.DaySession{
			{TimeSlot: "14:00", Flights: []model.Flight{{FlightNumber: "F001"}}},
			{TimeSlot: "14:30", Flights: []model.Flight{{FlightNumber: "F002"}, {FlightNumber: "F003"}}},
		}},
		{Date: aug22, Sessions: []model.DaySession{
			{TimeSlot: "10:00", Flights: []model.Flight{{FlightNumber: "F001"}}},
		}},
	}}

	t.Run("closed library lists days only", func(t *testing.T) {
		text := application.GenerateTreeText(library, -1)
		require.Contains(t, text, "📦 *Library*")
		require.Contains(t, text, "├── 📁 21\\.08\\.2025")
		require.Contains(t, text, "└── 📁 22\\.08\\.2025")
		require.NotContains(t, text, "🕐")
	})

	t.Run("open day shows its sessions", func(t *testing.T) {
		text := application.GenerateTreeText(library, 0)
		require.Contains(t, text, "├── 📂 *21\\.08\\.2025*")
		require.Contains(t, text, "│   ├── 🕐 14:00 \\(1 flight\\)")
		require.Contains(t, text, "│   └── 🕐 14:30 \\(2 flights\\)")
		// The other day stays closed.
		require.NotContains(t, text, "10:00")
	})

	t.Run("last open day uses blank connector", func(t *testing.T) {
		text := application.GenerateTreeText(library, 1)
		require.Contains(t, text, "└── 📂 *22\\.08\\.2025*")
		require.Contains(t, text, "    └── 🕐 10:00 \\(1 flight\\)")
	})

	t.Run("framed by rules", func(t *testing.T) {
		text := application.GenerateTreeText(library, -1)
		lines := strings.Split(text, "\n")
		require.Equal(t, "━━━━━━━━━━━━━━━━", lines[0])
		require.Equal(t, "━━━━━━━━━━━━━━━━", lines[len(lines)-1])
	})
}
