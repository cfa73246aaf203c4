package storage

import (
	"IFLYVideosBot/internal/model"
	"context"
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"
)

// AddUser inserts or refreshes the user row for a private chat. Every
// private-chat interaction goes through here.
func AddUser(ctx context.Context, db *sqlx.DB, chatID int64, username string) error {
	query := `INSERT OR REPLACE INTO users (chat_id, username) VALUES (?, ?)`

	_, err := db.ExecContext(ctx, query, chatID, username)
	return err
}

func GetUserByUsername(ctx context.Context, db *sqlx.DB, username string) (*model.User, error) {
	var user model.User
	query := `SELECT id, chat_id, username FROM users WHERE LOWER(username) = LOWER(?)`

	err := db.GetContext(ctx, &user, query, username)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func GetUserByChatID(ctx context.Context, db *sqlx.DB, chatID int64) (*model.User, error) {
	var user model.User
	query := `SELECT id, chat_id, username FROM users WHERE chat_id = ?`

	err := db.GetContext(ctx, &user, query, chatID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}
