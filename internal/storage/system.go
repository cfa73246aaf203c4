package storage

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"
)

// The system_data table is a generic key-value store; today it only
// remembers the shared-chat menu message id for editing in place.
const MenuMessageKey = "ifly_menu_message_id"

func SetSystemValue(ctx context.Context, db *sqlx.DB, key, value string) error {
	query := `INSERT OR REPLACE INTO system_data (key, value, updated_at) VALUES (?, ?, CURRENT_TIMESTAMP)`

	_, err := db.ExecContext(ctx, query, key, value)
	return err
}

func GetSystemValue(ctx context.Context, db *sqlx.DB, key string) (string, error) {
	var value string
	err := db.GetContext(ctx, &value, `SELECT value FROM system_data WHERE key = ?`, key)
	if errors.Is(err, sql.ErrNoRows) {
		return "", nil
	}
	if err != nil {
		return "", err
	}
	return value, nil
}
