package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

const (
	defaultDatabasePath   = "./data/videos.db"
	defaultSessionMinutes = 30
)

type Config struct {
	BotToken      string
	IFLYChatID    int64
	DatabasePath  string
	SessionLength time.Duration
	Debug         bool
}

// Load reads the bot configuration from the environment, with an optional
// .env file next to the binary.
func Load() (Config, error) {
	_ = godotenv.Load()

	token := os.Getenv("TELEGRAM_BOT_TOKEN")
	if token == "" {
		return Config{}, fmt.Errorf("missing required environment variable TELEGRAM_BOT_TOKEN")
	}

	chatIDStr := os.Getenv("TELEGRAM_IFLY_CHAT_ID")
	if chatIDStr == "" {
		return Config{}, fmt.Errorf("missing required environment variable TELEGRAM_IFLY_CHAT_ID")
	}
	chatID, err := strconv.ParseInt(chatIDStr, 10, 64)
	if err != nil {
		return Config{}, fmt.Errorf("TELEGRAM_IFLY_CHAT_ID must be an integer: %w", err)
	}

	dbPath := os.Getenv("DATABASE_PATH")
	if dbPath == "" {
		dbPath = defaultDatabasePath
	}

	sessionMinutes := defaultSessionMinutes
	if v := os.Getenv("SESSION_LENGTH_MINUTES"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			sessionMinutes = n
		}
	}

	debug, _ := strconv.ParseBool(os.Getenv("BOT_DEBUG"))

	return Config{
		BotToken:      token,
		IFLYChatID:    chatID,
		DatabasePath:  dbPath,
		SessionLength: time.Duration(sessionMinutes) * time.Minute,
		Debug:         debug,
	}, nil
}
