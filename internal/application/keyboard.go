package application

import (
	"IFLYVideosBot/internal/model"
	"fmt"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

// AddInlineButton appends a button to the last row of the keyboard, opening
// a new row once the current one holds two buttons.
func AddInlineButton(rows [][]tgbotapi.InlineKeyboardButton, button tgbotapi.InlineKeyboardButton) [][]tgbotapi.InlineKeyboardButton {
	maxButtonsPerRow := 2
	if len(rows) == 0 {
		return append(rows, tgbotapi.NewInlineKeyboardRow(button))
	}

	lastRowIndex := len(rows) - 1
	if len(rows[lastRowIndex]) < maxButtonsPerRow {
		rows[lastRowIndex] = append(rows[lastRowIndex], button)
	} else {
		rows = append(rows, tgbotapi.NewInlineKeyboardRow(button))
	}

	return rows
}

func StartMenuKeyboard() tgbotapi.InlineKeyboardMarkup {
	return tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("🎥 Browse Videos", "nav:library"),
			tgbotapi.NewInlineKeyboardButtonData("📊 My Stats", "stats"),
		),
	)
}

func BackHomeKeyboard() tgbotapi.InlineKeyboardMarkup {
	return tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("← Back", "home"),
		),
	)
}

func CloseKeyboard(chatID int64, messageID int) tgbotapi.InlineKeyboardMarkup {
	return tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("Close", fmt.Sprintf("delete:%d:%d", chatID, messageID)),
		),
	)
}

// NavigationKeyboard builds the library view keyboard: day buttons when no
// day is open, session buttons for the open day otherwise.
func NavigationKeyboard(library model.Library, dayIndex int) tgbotapi.InlineKeyboardMarkup {
	var rows [][]tgbotapi.InlineKeyboardButton

	if dayIndex < 0 {
		for dayIdx, day := range library.Days {
			text := fmt.Sprintf("📁 %s (%d sessions)", FormatDate(day.Date), len(day.Sessions))
			rows = append(rows, tgbotapi.NewInlineKeyboardRow(
				tgbotapi.NewInlineKeyboardButtonData(text, fmt.Sprintf("nav:day:%d", dayIdx)),
			))
		}
		rows = append(rows, tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("← Back", "home"),
		))
		return tgbotapi.NewInlineKeyboardMarkup(rows...)
	}

	day := library.Days[dayIndex]
	for sessIdx, session := range day.Sessions {
		text := fmt.Sprintf("%s (%d)", session.TimeSlot, len(session.Flights))
		rows = AddInlineButton(rows,
			tgbotapi.NewInlineKeyboardButtonData(text, fmt.Sprintf("nav:session:%d:%d", dayIndex, sessIdx)))
	}
	rows = append(rows, tgbotapi.NewInlineKeyboardRow(
		tgbotapi.NewInlineKeyboardButtonData("← Back", "nav:library"),
		tgbotapi.NewInlineKeyboardButtonData("🏠 Home", "home"),
	))
	return tgbotapi.NewInlineKeyboardMarkup(rows...)
}

func SessionViewKeyboard(library model.Library, dayIndex, sessionIndex int) tgbotapi.InlineKeyboardMarkup {
	var rows [][]tgbotapi.InlineKeyboardButton

	session := library.Days[dayIndex].Sessions[sessionIndex]
	for flightIdx, flight := range session.Flights {
		text := fmt.Sprintf("Flight %s (%d videos)", flight.FlightNumber, len(flight.Videos))
		rows = append(rows, tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData(text,
				fmt.Sprintf("nav:flight:%d:%d:%d", dayIndex, sessionIndex, flightIdx)),
		))
	}

	rows = append(rows, tgbotapi.NewInlineKeyboardRow(
		tgbotapi.NewInlineKeyboardButtonData("← Back", fmt.Sprintf("nav:day:%d", dayIndex)),
		tgbotapi.NewInlineKeyboardButtonData("🏠 Home", "home"),
	))
	return tgbotapi.NewInlineKeyboardMarkup(rows...)
}

// FlightViewKeyboard lists the camera angles of a flight, marks the one
// currently shown and offers the two-step delete for it.
func FlightViewKeyboard(library model.Library, dayIndex, sessionIndex, flightIndex, videoIndex int) tgbotapi.InlineKeyboardMarkup {
	var rows [][]tgbotapi.InlineKeyboardButton

	flight := library.Days[dayIndex].Sessions[sessionIndex].Flights[flightIndex]
	for videoIdx, video := range flight.Videos {
		text := video.CameraName
		if videoIdx == videoIndex {
			text = "● " + text
		}
		rows = AddInlineButton(rows,
			tgbotapi.NewInlineKeyboardButtonData(text,
				fmt.Sprintf("video:%d:%d:%d:%d", dayIndex, sessionIndex, flightIndex, videoIdx)))
	}

	rows = append(rows, tgbotapi.NewInlineKeyboardRow(
		tgbotapi.NewInlineKeyboardButtonData("← Back", fmt.Sprintf("nav:session:%d:%d", dayIndex, sessionIndex)),
		tgbotapi.NewInlineKeyboardButtonData("🏠 Home", "home"),
	))

	if videoIndex >= 0 && videoIndex < len(flight.Videos) {
		rows = append(rows, tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("🗑️ Delete",
				fmt.Sprintf("del:ask:%d:%d:%d:%d:%d", dayIndex, sessionIndex, flightIndex, videoIndex, flight.Videos[videoIndex].Id)),
		))
	}

	return tgbotapi.NewInlineKeyboardMarkup(rows...)
}

// DeleteConfirmKeyboard confirms a single-video delete. Yes returns to the
// session view since flight indices shift after the removal; No goes back
// to the untouched flight view.
func DeleteConfirmKeyboard(dayIndex, sessionIndex, flightIndex, videoIndex int, videoID int64) tgbotapi.InlineKeyboardMarkup {
	return tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("✅ Yes, delete",
				fmt.Sprintf("del:yes:%d:%d:%d", dayIndex, sessionIndex, videoID)),
			tgbotapi.NewInlineKeyboardButtonData("❌ No",
				fmt.Sprintf("del:no:%d:%d:%d:%d", dayIndex, sessionIndex, flightIndex, videoIndex)),
		),
	)
}

func ClearConfirmKeyboard() tgbotapi.InlineKeyboardMarkup {
	return tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("✅ Yes, delete everything", "clear:yes"),
			tgbotapi.NewInlineKeyboardButtonData("❌ Cancel", "clear:cancel"),
		),
	)
}

func AuthConfirmKeyboard(targetChatID int64, username string) tgbotapi.InlineKeyboardMarkup {
	return tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("✅ Yes", fmt.Sprintf("auth:start:%d:%s", targetChatID, username)),
			tgbotapi.NewInlineKeyboardButtonData("❌ No", "auth:cancel"),
		),
	)
}

func EndSessionKeyboard() tgbotapi.InlineKeyboardMarkup {
	return tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("🛑 End Session", "auth:end"),
		),
	)
}
