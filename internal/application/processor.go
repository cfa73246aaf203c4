package application

import (
	"IFLYVideosBot/internal/config"
	"context"
	"log"
	"strconv"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/jmoiron/sqlx"
)

// ProcessUpdate routes one incoming update. Every update is handled
// independently; handler errors are logged and never abort the loop.
func ProcessUpdate(ctx context.Context, cfg config.Config, db *sqlx.DB,
	bot *tgbotapi.BotAPI, update tgbotapi.Update) {
	if update.CallbackQuery != nil {
		ProcessCallback(ctx, cfg, db, bot, update)
		return
	}

	message := update.Message
	if message == nil {
		return
	}

	switch {
	case message.IsCommand():
		CommandHandler(ctx, cfg, db, bot, update)
	case message.Video != nil:
		Upload(ctx, cfg, db, bot, update)
	case message.Chat.ID == cfg.IFLYChatID && message.Text != "":
		CheckUsername(ctx, cfg, db, bot, update)
	}
}

// ProcessCallback routes callback-query data of the form
// "action:arg1:arg2:...". Shared-chat callbacks only carry the auth flow;
// everything else belongs to private chats.
func ProcessCallback(ctx context.Context, cfg config.Config, db *sqlx.DB,
	bot *tgbotapi.BotAPI, update tgbotapi.Update) {
	query := update.CallbackQuery
	if _, err := bot.Request(tgbotapi.NewCallback(query.ID, "")); err != nil {
		log.Printf("Error answering callback: %v", err)
	}
	if query.Message == nil {
		return
	}

	parts := strings.Split(query.Data, ":")

	if query.Message.Chat.ID == cfg.IFLYChatID {
		if parts[0] == "auth" && len(parts) >= 2 {
			HandleAuthCallback(ctx, cfg, db, bot, parts[1], strings.Join(parts[2:], ":"))
		}
		return
	}

	switch parts[0] {
	case "home":
		ShowStartMenu(bot, query)

	case "stats":
		ShowStatistics(ctx, db, bot, query)

	case "nav":
		if len(parts) < 2 {
			return
		}
		switch parts[1] {
		case "library":
			NavigateLibrary(ctx, db, bot, query, -1)
		case "day":
			if indices, ok := parseIndices(parts[2:], 1); ok {
				NavigateLibrary(ctx, db, bot, query, indices[0])
			}
		case "session":
			if indices, ok := parseIndices(parts[2:], 2); ok {
				ShowSession(ctx, db, bot, query, indices[0], indices[1])
			}
		case "flight":
			if indices, ok := parseIndices(parts[2:], 3); ok {
				ShowFlight(ctx, db, bot, query, indices[0], indices[1], indices[2], 0)
			}
		}

	case "video":
		if indices, ok := parseIndices(parts[1:], 4); ok {
			ShowFlight(ctx, db, bot, query, indices[0], indices[1], indices[2], indices[3])
		}

	case "delete":
		if indices, ok := parseIndices(parts[1:], 2); ok {
			DeleteMessage(bot, int64(indices[0]), indices[1])
		}

	case "del":
		if len(parts) < 2 {
			return
		}
		switch parts[1] {
		case "ask":
			if indices, ok := parseIndices(parts[2:], 5); ok {
				AskDeleteVideo(bot, query, indices[0], indices[1], indices[2], indices[3], int64(indices[4]))
			}
		case "yes":
			if indices, ok := parseIndices(parts[2:], 3); ok {
				DeleteVideo(ctx, db, bot, query, indices[0], indices[1], int64(indices[2]))
			}
		case "no":
			if indices, ok := parseIndices(parts[2:], 4); ok {
				CancelDeleteVideo(ctx, db, bot, query, indices[0], indices[1], indices[2], indices[3])
			}
		}

	case "clear":
		if len(parts) < 2 {
			return
		}
		switch parts[1] {
		case "yes":
			ClearData(ctx, db, bot, query)
		case "cancel":
			DeleteMessage(bot, query.Message.Chat.ID, query.Message.MessageID)
		}
	}
}

func parseIndices(parts []string, count int) ([]int, bool) {
	if len(parts) < count {
		return nil, false
	}
	indices := make([]int, count)
	for i := 0; i < count; i++ {
		n, err := strconv.Atoi(parts[i])
		if err != nil {
			log.Printf("Malformed callback index %q: %v", parts[i], err)
			return nil, false
		}
		indices[i] = n
	}
	return indices, true
}
