package application

import (
	"IFLYVideosBot/internal/application/media"
	"IFLYVideosBot/internal/model"
	"IFLYVideosBot/internal/storage"
	"context"
	"fmt"
	"log"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/jmoiron/sqlx"
)

const (
	startMenuText    = "🏠 Welcome to the *iFLY Video Storage Bot*\\!\nUse buttons to navigate\\."
	emptyLibraryText = "📦 *Library*\n\nNo videos uploaded yet\\. Send your videos here to get started\\!"
)

func SendStartMenu(bot *tgbotapi.BotAPI, chatID int64) {
	msg := tgbotapi.NewMessage(chatID, startMenuText)
	msg.ParseMode = tgbotapi.ModeMarkdownV2
	msg.ReplyMarkup = StartMenuKeyboard()
	if _, err := bot.Send(msg); err != nil {
		log.Printf("Error sending start menu: %v", err)
	}
}

func ShowStartMenu(bot *tgbotapi.BotAPI, query *tgbotapi.CallbackQuery) {
	editOrReplace(bot, query, startMenuText, StartMenuKeyboard())
}

func ShowStatistics(ctx context.Context, db *sqlx.DB, bot *tgbotapi.BotAPI, query *tgbotapi.CallbackQuery) {
	chatID := query.Message.Chat.ID
	stats, err := storage.GetUserStats(ctx, db, chatID)
	if err != nil {
		log.Printf("Error getting stats for %d: %v", chatID, err)
		return
	}

	text := fmt.Sprintf("📊 *Here are some fun stats*:\n"+
		"`  `*•*` `🛫 You started flying *%s ago*\n"+
		"`  `*•*` `⏱️ Total tunnel time: *%s*",
		EscapeMarkdown(FormatDaysCount(stats.DaysSinceFirstFlight)),
		EscapeMarkdown(FormatFlightTime(stats.TotalFlightSeconds)))

	editOrReplace(bot, query, text, BackHomeKeyboard())
}

// NavigateLibrary renders the library tree; dayIndex < 0 means no day is
// open yet.
func NavigateLibrary(ctx context.Context, db *sqlx.DB, bot *tgbotapi.BotAPI,
	query *tgbotapi.CallbackQuery, dayIndex int) {
	chatID := query.Message.Chat.ID
	library, ok := loadLibrary(ctx, db, chatID)
	if !ok {
		return
	}

	if len(library.Days) == 0 {
		editOrReplace(bot, query, emptyLibraryText, BackHomeKeyboard())
		return
	}
	if dayIndex >= len(library.Days) {
		dayIndex = -1
	}

	editOrReplace(bot, query, GenerateTreeText(library, dayIndex), NavigationKeyboard(library, dayIndex))
}

func ShowSession(ctx context.Context, db *sqlx.DB, bot *tgbotapi.BotAPI,
	query *tgbotapi.CallbackQuery, dayIndex, sessionIndex int) {
	chatID := query.Message.Chat.ID
	library, ok := loadLibrary(ctx, db, chatID)
	if !ok {
		return
	}
	if !sessionExists(library, dayIndex, sessionIndex) {
		NavigateLibrary(ctx, db, bot, query, -1)
		return
	}

	day := library.Days[dayIndex]
	session := day.Sessions[sessionIndex]
	text := fmt.Sprintf("🕐 *Session %s*\n📅 %s\n\nSelect a flight:",
		EscapeMarkdown(session.TimeSlot), EscapeMarkdown(FormatDate(day.Date)))

	editOrReplace(bot, query, text, SessionViewKeyboard(library, dayIndex, sessionIndex))
}

// ShowFlight replaces the current view with the selected camera's video
// message, captioned with the flight number and angle.
func ShowFlight(ctx context.Context, db *sqlx.DB, bot *tgbotapi.BotAPI,
	query *tgbotapi.CallbackQuery, dayIndex, sessionIndex, flightIndex, videoIndex int) {
	chatID := query.Message.Chat.ID
	library, ok := loadLibrary(ctx, db, chatID)
	if !ok {
		return
	}
	if !flightExists(library, dayIndex, sessionIndex, flightIndex) {
		NavigateLibrary(ctx, db, bot, query, -1)
		return
	}

	flight := library.Days[dayIndex].Sessions[sessionIndex].Flights[flightIndex]
	if len(flight.Videos) == 0 {
		text := "No videos found for this flight\\."
		markup := tgbotapi.NewInlineKeyboardMarkup(tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("← Back",
				fmt.Sprintf("nav:session:%d:%d", dayIndex, sessionIndex))))
		editOrReplace(bot, query, text, markup)
		return
	}
	if videoIndex < 0 || videoIndex >= len(flight.Videos) {
		videoIndex = 0
	}
	video := flight.Videos[videoIndex]

	DeleteMessage(bot, chatID, query.Message.MessageID)

	msg := tgbotapi.NewVideo(chatID, tgbotapi.FileID(video.FileId))
	msg.Caption = fmt.Sprintf("🎬 *Flight %s* \\- %s",
		EscapeMarkdown(flight.FlightNumber), EscapeMarkdown(video.CameraName))
	msg.ParseMode = tgbotapi.ModeMarkdownV2
	msg.ReplyMarkup = FlightViewKeyboard(library, dayIndex, sessionIndex, flightIndex, videoIndex)
	if _, err := bot.Send(msg); err != nil {
		log.Printf("Error sending flight video: %v", err)
	}
}

// AskDeleteVideo swaps the flight view keyboard for the delete
// confirmation; the video message itself stays in place.
func AskDeleteVideo(bot *tgbotapi.BotAPI, query *tgbotapi.CallbackQuery,
	dayIndex, sessionIndex, flightIndex, videoIndex int, videoID int64) {
	edit := tgbotapi.NewEditMessageReplyMarkup(query.Message.Chat.ID, query.Message.MessageID,
		DeleteConfirmKeyboard(dayIndex, sessionIndex, flightIndex, videoIndex, videoID))
	if _, err := bot.Send(edit); err != nil {
		log.Printf("Error showing delete confirmation: %v", err)
	}
}

func CancelDeleteVideo(ctx context.Context, db *sqlx.DB, bot *tgbotapi.BotAPI,
	query *tgbotapi.CallbackQuery, dayIndex, sessionIndex, flightIndex, videoIndex int) {
	chatID := query.Message.Chat.ID
	library, ok := loadLibrary(ctx, db, chatID)
	if !ok || !flightExists(library, dayIndex, sessionIndex, flightIndex) {
		NavigateLibrary(ctx, db, bot, query, -1)
		return
	}

	edit := tgbotapi.NewEditMessageReplyMarkup(chatID, query.Message.MessageID,
		FlightViewKeyboard(library, dayIndex, sessionIndex, flightIndex, videoIndex))
	if _, err := bot.Send(edit); err != nil {
		log.Printf("Error restoring flight keyboard: %v", err)
	}
}

func DeleteVideo(ctx context.Context, db *sqlx.DB, bot *tgbotapi.BotAPI,
	query *tgbotapi.CallbackQuery, dayIndex, sessionIndex int, videoID int64) {
	chatID := query.Message.Chat.ID
	if _, err := storage.DeleteVideoByID(ctx, db, chatID, videoID); err != nil {
		log.Printf("Error deleting video %d: %v", videoID, err)
	}

	// The flight view is a video message; go back to the session via a
	// fresh text message.
	library, ok := loadLibrary(ctx, db, chatID)
	if !ok {
		return
	}
	DeleteMessage(bot, chatID, query.Message.MessageID)

	if !sessionExists(library, dayIndex, sessionIndex) {
		if len(library.Days) == 0 {
			msg := tgbotapi.NewMessage(chatID, emptyLibraryText)
			msg.ParseMode = tgbotapi.ModeMarkdownV2
			msg.ReplyMarkup = BackHomeKeyboard()
			if _, err := bot.Send(msg); err != nil {
				log.Printf("Error sending empty library view: %v", err)
			}
			return
		}
		msg := tgbotapi.NewMessage(chatID, GenerateTreeText(library, -1))
		msg.ParseMode = tgbotapi.ModeMarkdownV2
		msg.ReplyMarkup = NavigationKeyboard(library, -1)
		if _, err := bot.Send(msg); err != nil {
			log.Printf("Error sending library view: %v", err)
		}
		return
	}

	day := library.Days[dayIndex]
	session := day.Sessions[sessionIndex]
	text := fmt.Sprintf("🕐 *Session %s*\n📅 %s\n\nSelect a flight:",
		EscapeMarkdown(session.TimeSlot), EscapeMarkdown(FormatDate(day.Date)))
	msg := tgbotapi.NewMessage(chatID, text)
	msg.ParseMode = tgbotapi.ModeMarkdownV2
	msg.ReplyMarkup = SessionViewKeyboard(library, dayIndex, sessionIndex)
	if _, err := bot.Send(msg); err != nil {
		log.Printf("Error sending session view: %v", err)
	}
}

func ClearData(ctx context.Context, db *sqlx.DB, bot *tgbotapi.BotAPI, query *tgbotapi.CallbackQuery) {
	chatID := query.Message.Chat.ID
	if err := storage.ClearUserData(ctx, db, chatID); err != nil {
		log.Printf("Error clearing data for %d: %v", chatID, err)
		editOrReplace(bot, query, "❌ Failed to delete your videos\\. Please try again\\.", BackHomeKeyboard())
		return
	}
	editOrReplace(bot, query, "🗑️ All your videos were deleted\\.", BackHomeKeyboard())
}

func loadLibrary(ctx context.Context, db *sqlx.DB, chatID int64) (model.Library, bool) {
	videos, err := storage.GetVideosByUser(ctx, db, chatID)
	if err != nil {
		log.Printf("Error loading videos for %d: %v", chatID, err)
		return model.Library{}, false
	}
	return Organize(videos), true
}

func sessionExists(library model.Library, dayIndex, sessionIndex int) bool {
	return dayIndex >= 0 && dayIndex < len(library.Days) &&
		sessionIndex >= 0 && sessionIndex < len(library.Days[dayIndex].Sessions)
}

func flightExists(library model.Library, dayIndex, sessionIndex, flightIndex int) bool {
	return sessionExists(library, dayIndex, sessionIndex) &&
		flightIndex >= 0 && flightIndex < len(library.Days[dayIndex].Sessions[sessionIndex].Flights)
}

// editOrReplace edits the callback's message in place. Video messages have
// no editable text, so those get deleted and replaced with a fresh text
// message instead.
func editOrReplace(bot *tgbotapi.BotAPI, query *tgbotapi.CallbackQuery,
	text string, markup tgbotapi.InlineKeyboardMarkup) {
	chatID := query.Message.Chat.ID

	if media.Exist(query.Message) {
		DeleteMessage(bot, chatID, query.Message.MessageID)
		msg := tgbotapi.NewMessage(chatID, text)
		msg.ParseMode = tgbotapi.ModeMarkdownV2
		msg.ReplyMarkup = markup
		if _, err := bot.Send(msg); err != nil {
			log.Printf("Error replacing media message: %v", err)
		}
		return
	}

	edit := tgbotapi.NewEditMessageTextAndMarkup(chatID, query.Message.MessageID, text, markup)
	edit.ParseMode = tgbotapi.ModeMarkdownV2
	if _, err := bot.Send(edit); err != nil {
		log.Printf("Error editing message: %v", err)
	}
}
