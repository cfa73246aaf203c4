package config_test

import (
	"IFLYVideosBot/internal/config"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	t.Setenv("TELEGRAM_BOT_TOKEN", "test-token")
	t.Setenv("TELEGRAM_IFLY_CHAT_ID", "-100123456789")
	t.Setenv("DATABASE_PATH", "./data/test.db")
	t.Setenv("SESSION_LENGTH_MINUTES", "45")
	t.Setenv("BOT_DEBUG", "true")

	cfg, err := config.Load()
	require.NoError(t, err)
	require.Equal(t, "test-token", cfg.BotToken)
	require.Equal(t, int64(-100123456789), cfg.IFLYChatID)
	require.Equal(t, "./data/test.db", cfg.DatabasePath)
	require.Equal(t, 45*time.Minute, cfg.SessionLength)
	require.True(t, cfg.Debug)
}

func TestLoadDefaults(t *testing.T) {
	t.Setenv("TELEGRAM_BOT_TOKEN", "test-token")
	t.Setenv("TELEGRAM_IFLY_CHAT_ID", "123")
	t.Setenv("DATABASE_PATH", "")
	t.Setenv("SESSION_LENGTH_MINUTES", "")
	t.Setenv("BOT_DEBUG", "")

	cfg, err := config.Load()
	require.NoError(t, err)
	require.Equal(t, "./data/videos.db", cfg.DatabasePath)
	require.Equal(t, 30*time.Minute, cfg.SessionLength)
	require.False(t, cfg.Debug)
}

func TestLoadMissingRequired(t *testing.T) {
	t.Setenv("TELEGRAM_BOT_TOKEN", "")
	t.Setenv("TELEGRAM_IFLY_CHAT_ID", "123")

	_, err := config.Load()
	require.Error(t, err)

	t.Setenv("TELEGRAM_BOT_TOKEN", "test-token")
	t.Setenv("TELEGRAM_IFLY_CHAT_ID", "")

	_, err = config.Load()
	require.Error(t, err)
}

func TestLoadBadChatID(t *testing.T) {
	t.Setenv("TELEGRAM_BOT_TOKEN", "test-token")
	t.Setenv("TELEGRAM_IFLY_CHAT_ID", "not-a-number")

	_, err := config.Load()
	require.Error(t, err)
}

func TestLoadBadSessionLength(t *testing.T) {
	t.Setenv("TELEGRAM_BOT_TOKEN", "test-token")
	t.Setenv("TELEGRAM_IFLY_CHAT_ID", "123")
	t.Setenv("SESSION_LENGTH_MINUTES", "soon")

	cfg, err := config.Load()
	require.NoError(t, err)
	require.Equal(t, 30*time.Minute, cfg.SessionLength)
}
