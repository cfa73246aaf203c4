package application

import (
	"IFLYVideosBot/internal/application/media"
	"IFLYVideosBot/internal/config"
	"IFLYVideosBot/internal/model"
	"IFLYVideosBot/internal/storage"
	"context"
	"log"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/jmoiron/sqlx"
)

// Upload stores an incoming video. In the shared iFLY chat the video is
// attributed to the active session's target user; without a session the
// message is dropped. Malformed filenames are rejected silently either way.
func Upload(ctx context.Context, cfg config.Config, db *sqlx.DB,
	bot *tgbotapi.BotAPI, update tgbotapi.Update) {
	message := update.Message
	chatID := message.Chat.ID

	var targetChatID int64
	if chatID == cfg.IFLYChatID {
		session, err := storage.GetActiveSession(ctx, db)
		if err != nil {
			log.Printf("Error reading session: %v", err)
			return
		}
		if session == nil {
			DeleteMessage(bot, chatID, message.MessageID)
			return
		}
		targetChatID = session.TargetChatId
	} else {
		if err := storage.AddUser(ctx, db, chatID, message.From.UserName); err != nil {
			log.Printf("Error adding user: %v", err)
		}
		targetChatID = chatID
	}

	video := message.Video
	parsed, err := media.ParseFilename(video.FileName)
	if err != nil {
		log.Printf("Rejecting upload: %v", err)
		DeleteMessage(bot, chatID, message.MessageID)
		return
	}

	inserted, err := storage.AddVideo(ctx, db, model.Video{
		UserChatId:   targetChatID,
		FileId:       video.FileID,
		FileName:     video.FileName,
		Duration:     RoundDuration(video.Duration),
		FlightDate:   parsed.FlightDate,
		TimeSlot:     parsed.TimeSlot,
		FlightNumber: parsed.FlightNumber,
		CameraName:   parsed.CameraName,
	})
	if err != nil {
		log.Printf("Error adding video %s: %v", video.FileName, err)
	} else if inserted {
		log.Printf("Video %s added for user %d", video.FileName, targetChatID)
	} else {
		log.Printf("Video %s already exists for user %d", video.FileName, targetChatID)
	}

	DeleteMessage(bot, chatID, message.MessageID)
}
