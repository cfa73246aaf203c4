package storage

import (
	"IFLYVideosBot/internal/model"
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/jmoiron/sqlx"
)

// CreateSession opens the upload authorization window for one user. Only a
// single session may exist, so the table is cleared before the insert; a
// new grant replaces whatever was there.
func CreateSession(ctx context.Context, db *sqlx.DB, targetChatID int64, username string, length time.Duration) error {
	expiresAt := time.Now().Add(length).Unix()

	tx, err := db.BeginTxx(ctx, nil)
	if err != nil {
		return err
	}
	if _, err = tx.ExecContext(ctx, `DELETE FROM sessions`); err != nil {
		_ = tx.Rollback()
		return err
	}
	if _, err = tx.ExecContext(ctx,
		`INSERT INTO sessions (target_chat_id, username, expires_at) VALUES (?, ?, ?)`,
		targetChatID, username, expiresAt); err != nil {
		_ = tx.Rollback()
		return err
	}
	return tx.Commit()
}

// GetActiveSession returns the session when one exists and has not expired.
// Expiry is enforced here on the read path; there is no background sweep
// the attribution logic depends on.
func GetActiveSession(ctx context.Context, db *sqlx.DB) (*model.Session, error) {
	var session model.Session
	query := `SELECT id, target_chat_id, username, expires_at
		FROM sessions
		WHERE expires_at > ?
		ORDER BY expires_at DESC
		LIMIT 1`

	err := db.GetContext(ctx, &session, query, time.Now().Unix())
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &session, nil
}

func EndSession(ctx context.Context, db *sqlx.DB) error {
	_, err := db.ExecContext(ctx, `DELETE FROM sessions`)
	return err
}

// DeleteExpiredSessions removes rows already past expiry and reports
// whether anything was removed. Cosmetic cleanup only; GetActiveSession is
// correct without it.
func DeleteExpiredSessions(ctx context.Context, db *sqlx.DB) (bool, error) {
	res, err := db.ExecContext(ctx, `DELETE FROM sessions WHERE expires_at <= ?`, time.Now().Unix())
	if err != nil {
		return false, err
	}
	deleted, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return deleted > 0, nil
}
