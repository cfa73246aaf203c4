package application

import (
	"IFLYVideosBot/internal/config"
	"IFLYVideosBot/internal/storage"
	"context"
	"log"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/jmoiron/sqlx"
)

const (
	HelpPrivate = `Available commands:
/start \- Shows menu
/help \- Shows this message
/clear\_data \- Careful\! Deletes all saved videos\!

To upload videos \- just drop them here\. Bot will automatically find their correct flight\.`

	HelpIFLYChat = `You can send your videos to your bot after completing authentication\.`

	ClearDataPrompt = `⚠️ This deletes *all* your saved videos\. Are you sure?`
)

func CommandHandler(ctx context.Context, cfg config.Config, db *sqlx.DB,
	bot *tgbotapi.BotAPI, update tgbotapi.Update) {
	chatID := update.Message.Chat.ID
	DeleteMessage(bot, chatID, update.Message.MessageID)

	switch update.Message.Command() {
	case "start":
		if chatID == cfg.IFLYChatID {
			AskForUsername(ctx, cfg, db, bot)
			return
		}
		if err := storage.AddUser(ctx, db, chatID, update.Message.From.UserName); err != nil {
			log.Printf("Error adding user: %v", err)
		}
		SendStartMenu(bot, chatID)

	case "help":
		text := HelpPrivate
		if chatID == cfg.IFLYChatID {
			text = HelpIFLYChat
		}
		SendClosableMessage(bot, chatID, text)

	case "clear_data":
		if chatID == cfg.IFLYChatID {
			return
		}
		msg := tgbotapi.NewMessage(chatID, ClearDataPrompt)
		msg.ParseMode = tgbotapi.ModeMarkdownV2
		msg.ReplyMarkup = ClearConfirmKeyboard()
		if _, err := bot.Send(msg); err != nil {
			log.Printf("Error sending clear_data prompt: %v", err)
		}
	}
}

func DeleteMessage(bot *tgbotapi.BotAPI, chatID int64, messageID int) {
	if _, err := bot.Request(tgbotapi.NewDeleteMessage(chatID, messageID)); err != nil {
		log.Printf("Error deleting message %d in chat %d: %v", messageID, chatID, err)
	}
}

// SendClosableMessage sends a MarkdownV2 message and attaches a Close
// button pointing at the message's own id.
func SendClosableMessage(bot *tgbotapi.BotAPI, chatID int64, text string) {
	msg := tgbotapi.NewMessage(chatID, text)
	msg.ParseMode = tgbotapi.ModeMarkdownV2
	sent, err := bot.Send(msg)
	if err != nil {
		log.Printf("Error sending closable message: %v", err)
		return
	}

	edit := tgbotapi.NewEditMessageReplyMarkup(chatID, sent.MessageID, CloseKeyboard(chatID, sent.MessageID))
	if _, err := bot.Send(edit); err != nil {
		log.Printf("Error attaching close button: %v", err)
	}
}
