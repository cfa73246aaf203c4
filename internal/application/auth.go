package application

import (
	"IFLYVideosBot/internal/config"
	"IFLYVideosBot/internal/storage"
	"context"
	"fmt"
	"log"
	"strconv"
	"strings"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/jmoiron/sqlx"
)

const askUsernameText = "To upload videos - please send your username"

// AskForUsername resets the shared-chat menu message to the username
// prompt, creating the message if it does not exist yet. The message id is
// remembered in system_data so the menu is always edited in place.
func AskForUsername(ctx context.Context, cfg config.Config, db *sqlx.DB, bot *tgbotapi.BotAPI) {
	menuID, err := storage.GetSystemValue(ctx, db, storage.MenuMessageKey)
	if err != nil {
		log.Printf("Error reading menu message id: %v", err)
		return
	}

	if menuID != "" {
		messageID, err := strconv.Atoi(menuID)
		if err == nil {
			edit := tgbotapi.NewEditMessageText(cfg.IFLYChatID, messageID, askUsernameText)
			if _, err := bot.Send(edit); err == nil {
				return
			}
		}
		// Edit failed (message gone or never parsed); fall through and
		// create a fresh menu message.
	}

	sent, err := bot.Send(tgbotapi.NewMessage(cfg.IFLYChatID, askUsernameText))
	if err != nil {
		log.Printf("Error sending menu message: %v", err)
		return
	}
	if err := storage.SetSystemValue(ctx, db, storage.MenuMessageKey, strconv.Itoa(sent.MessageID)); err != nil {
		log.Printf("Error storing menu message id: %v", err)
	}
}

// CheckUsername handles a username typed into the shared chat: looks the
// user up and offers the session-start confirmation on the menu message.
func CheckUsername(ctx context.Context, cfg config.Config, db *sqlx.DB,
	bot *tgbotapi.BotAPI, update tgbotapi.Update) {
	DeleteMessage(bot, update.Message.Chat.ID, update.Message.MessageID)

	session, err := storage.GetActiveSession(ctx, db)
	if err != nil {
		log.Printf("Error reading session: %v", err)
		return
	}
	if session != nil {
		return
	}

	username := strings.TrimPrefix(strings.TrimSpace(update.Message.Text), "@")
	user, err := storage.GetUserByUsername(ctx, db, username)
	if err != nil {
		log.Printf("Error looking up user %q: %v", username, err)
		return
	}

	if user == nil {
		text := fmt.Sprintf("User @%s not found\\. Please try again or ask them to start the bot first\\.",
			EscapeMarkdown(username))
		editMenuMessage(ctx, cfg, db, bot, text, nil)
		return
	}

	text := fmt.Sprintf("Found user @%s\\. Start session?", EscapeMarkdown(username))
	markup := AuthConfirmKeyboard(user.ChatId, username)
	editMenuMessage(ctx, cfg, db, bot, text, &markup)
}

// HandleAuthCallback processes the auth:* callbacks of the shared chat.
func HandleAuthCallback(ctx context.Context, cfg config.Config, db *sqlx.DB,
	bot *tgbotapi.BotAPI, action, data string) {
	switch action {
	case "start":
		parts := strings.SplitN(data, ":", 2)
		if len(parts) != 2 {
			log.Printf("Malformed auth callback data %q", data)
			return
		}
		targetChatID, err := strconv.ParseInt(parts[0], 10, 64)
		if err != nil {
			log.Printf("Malformed auth chat id %q: %v", parts[0], err)
			return
		}
		username := parts[1]

		if err := storage.CreateSession(ctx, db, targetChatID, username, cfg.SessionLength); err != nil {
			log.Printf("Error creating session: %v", err)
			editMenuMessage(ctx, cfg, db, bot, "❌ Failed to start session\\. Please try again\\.", nil)
			return
		}

		expires := time.Now().Add(cfg.SessionLength)
		text := fmt.Sprintf("✅ *Session started for @%s*\n\nYou can now send videos\\. Session expires at %s\\.",
			EscapeMarkdown(username), EscapeMarkdown(expires.Format("15:04")))
		markup := EndSessionKeyboard()
		editMenuMessage(ctx, cfg, db, bot, text, &markup)

	case "cancel":
		AskForUsername(ctx, cfg, db, bot)

	case "end":
		if err := storage.EndSession(ctx, db); err != nil {
			log.Printf("Error ending session: %v", err)
		}
		AskForUsername(ctx, cfg, db, bot)
	}
}

// WatchSessionExpiry periodically clears sessions past their expiry and
// resets the shared-chat menu. Attribution does not depend on this; the
// session read path already checks expiry.
func WatchSessionExpiry(ctx context.Context, cfg config.Config, db *sqlx.DB,
	bot *tgbotapi.BotAPI, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			deleted, err := storage.DeleteExpiredSessions(ctx, db)
			if err != nil {
				log.Printf("Error sweeping expired sessions: %v", err)
				continue
			}
			if deleted {
				log.Print("Session expired, resetting menu")
				AskForUsername(ctx, cfg, db, bot)
			}
		}
	}
}

func editMenuMessage(ctx context.Context, cfg config.Config, db *sqlx.DB,
	bot *tgbotapi.BotAPI, text string, markup *tgbotapi.InlineKeyboardMarkup) {
	menuID, err := storage.GetSystemValue(ctx, db, storage.MenuMessageKey)
	if err != nil {
		log.Printf("Error reading menu message id: %v", err)
		return
	}
	if menuID == "" {
		return
	}
	messageID, err := strconv.Atoi(menuID)
	if err != nil {
		log.Printf("Malformed menu message id %q: %v", menuID, err)
		return
	}

	var edit tgbotapi.EditMessageTextConfig
	if markup != nil {
		edit = tgbotapi.NewEditMessageTextAndMarkup(cfg.IFLYChatID, messageID, text, *markup)
	} else {
		edit = tgbotapi.NewEditMessageText(cfg.IFLYChatID, messageID, text)
	}
	edit.ParseMode = tgbotapi.ModeMarkdownV2
	if _, err := bot.Send(edit); err != nil {
		log.Printf("Error editing menu message: %v", err)
	}
}
