package storage

import (
	"IFLYVideosBot/internal/model"
	"context"
	"database/sql"
	"time"

	"github.com/jmoiron/sqlx"
	"go.uber.org/multierr"
)

// AddVideo stores an uploaded video. The (file_id, user_chat_id) pair is
// unique; re-uploads are ignored and reported via the returned bool.
func AddVideo(ctx context.Context, db *sqlx.DB, video model.Video) (bool, error) {
	query := `INSERT OR IGNORE INTO videos
		(user_chat_id, file_id, file_name, duration, flight_date, time_slot, flight_number, camera_name)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`

	res, err := db.ExecContext(ctx, query,
		video.UserChatId, video.FileId, video.FileName, video.Duration,
		video.FlightDate, video.TimeSlot, video.FlightNumber, video.CameraName)
	if err != nil {
		return false, err
	}
	inserted, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return inserted > 0, nil
}

func DeleteVideoByID(ctx context.Context, db *sqlx.DB, userChatID int64, videoID int64) (bool, error) {
	query := `DELETE FROM videos WHERE user_chat_id = ? AND id = ?`

	res, err := db.ExecContext(ctx, query, userChatID, videoID)
	if err != nil {
		return false, err
	}
	deleted, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return deleted > 0, nil
}

// GetVideosByUser returns all videos for a user ordered by date, time slot
// and flight number, with cameras in fixed priority order inside a flight.
// The organizer relies on this ordering.
func GetVideosByUser(ctx context.Context, db *sqlx.DB, chatID int64) ([]model.Video, error) {
	query := `SELECT id, user_chat_id, file_id, file_name, duration, flight_date, time_slot, flight_number, camera_name
		FROM videos
		WHERE user_chat_id = ?
		ORDER BY flight_date, time_slot, flight_number,
			CASE camera_name
				WHEN 'Door' THEN 1
				WHEN 'Centerline' THEN 2
				WHEN 'Firsttimer' THEN 3
				WHEN 'Sideline' THEN 4
				ELSE 5
			END`

	var videos []model.Video
	err := db.SelectContext(ctx, &videos, query, chatID)
	if err != nil {
		return nil, err
	}
	return videos, nil
}

func GetUserStats(ctx context.Context, db *sqlx.DB, chatID int64) (model.UserStats, error) {
	var stats model.UserStats

	var totalSeconds sql.NullInt64
	err := db.GetContext(ctx, &totalSeconds, `SELECT SUM(duration) FROM videos WHERE user_chat_id = ?`, chatID)
	if err != nil {
		return stats, err
	}
	stats.TotalFlightSeconds = int(totalSeconds.Int64)

	var firstFlight sql.NullInt64
	err = db.GetContext(ctx, &firstFlight, `SELECT MIN(flight_date) FROM videos WHERE user_chat_id = ?`, chatID)
	if err != nil {
		return stats, err
	}
	if firstFlight.Valid {
		stats.DaysSinceFirstFlight = time.Since(time.Unix(firstFlight.Int64, 0)).Hours() / 24
	}

	return stats, nil
}

// ClearUserData wipes every video the user owns along with any pending
// upload session targeting them.
func ClearUserData(ctx context.Context, db *sqlx.DB, chatID int64) error {
	var errs error

	_, err := db.ExecContext(ctx, `DELETE FROM videos WHERE user_chat_id = ?`, chatID)
	errs = multierr.Append(errs, err)

	_, err = db.ExecContext(ctx, `DELETE FROM sessions WHERE target_chat_id = ?`, chatID)
	errs = multierr.Append(errs, err)

	return errs
}
