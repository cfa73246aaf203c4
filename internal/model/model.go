package model

type User struct {
	Id       int    `db:"id"`
	ChatId   int64  `db:"chat_id"`
	Username string `db:"username"`
}

type Video struct {
	Id           int64  `db:"id"`
	UserChatId   int64  `db:"user_chat_id"`
	FileId       string `db:"file_id"`
	FileName     string `db:"file_name"`
	Duration     int    `db:"duration"`
	FlightDate   int64  `db:"flight_date"`
	TimeSlot     string `db:"time_slot"`
	FlightNumber string `db:"flight_number"`
	CameraName   string `db:"camera_name"`
}

// Session is the single pending authorization window for the shared iFLY
// chat: uploads there are attributed to TargetChatId until ExpiresAt.
type Session struct {
	Id           int    `db:"id"`
	TargetChatId int64  `db:"target_chat_id"`
	Username     string `db:"username"`
	ExpiresAt    int64  `db:"expires_at"`
}

type UserStats struct {
	TotalFlightSeconds   int
	DaysSinceFirstFlight float64
}

// Library is the organized day -> session -> flight -> video tree used by
// the navigation views.
type Library struct {
	Days []Day
}

type Day struct {
	Date     int64
	Sessions []DaySession
}

type DaySession struct {
	TimeSlot string
	Flights  []Flight
}

type Flight struct {
	FlightNumber string
	Length       int
	Videos       []FlightVideo
}

type FlightVideo struct {
	Id         int64
	CameraName string
	FileId     string
	FileName   string
}
