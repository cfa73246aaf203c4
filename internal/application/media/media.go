package media

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

// Camera names the tunnel uploads with, in display priority order.
var KnownCameras = []string{"Door", "Centerline", "Firsttimer", "Sideline"}

var yearPattern = regexp.MustCompile(`^20\d{2}$`)

// ParsedFilename is what the upload path needs from a staff filename:
// the flight day (midnight UTC, unix seconds), the 30-minute slot, the
// flight number and the camera angle.
type ParsedFilename struct {
	FlightDate   int64
	TimeSlot     string
	FlightNumber string
	CameraName   string
}

// ParseFilename extracts flight metadata from an uploaded video filename.
// Separators are normalized and three layouts are tried in order:
//
//	(a) exactly 9 tokens, year at index 4:
//	    ifly_Door_F001_2025_08_21_14_30_001.mp4
//	(b) 10 or more tokens, year at index 4, camera at index 2 and a numeric
//	    flight number at index 3:
//	    ifly_video_Centerline_17_2025_08_21_15_00_raw_0001.mp4
//	(c) generic fallback anchored on the first 20xx token, with camera and
//	    flight number inferred heuristically.
//
// The fallback is ambiguous by construction and may mis-assign camera or
// flight for unseen naming conventions.
func ParseFilename(filename string) (ParsedFilename, error) {
	parts := strings.Split(strings.ReplaceAll(filename, "-", "_"), "_")

	var camera, flight string
	var date []string

	switch {
	case len(parts) == 9 && yearPattern.MatchString(parts[4]):
		camera = parts[1]
		flight = parts[2]
		if !strings.HasPrefix(flight, "F") {
			flight = parts[3]
		}
		date = parts[4:9]

	case len(parts) >= 10 && yearPattern.MatchString(parts[4]):
		camera = parts[2]
		flight = padFlightNumber(parts[3])
		date = parts[4:9]

	default:
		yearIndex := -1
		for i, p := range parts {
			if yearPattern.MatchString(p) {
				yearIndex = i
				break
			}
		}
		if yearIndex == -1 || yearIndex+4 >= len(parts) {
			return ParsedFilename{}, fmt.Errorf("could not locate date components in filename %q", filename)
		}
		camera = inferCamera(parts)
		flight = inferFlightNumber(parts, yearIndex)
		date = parts[yearIndex : yearIndex+5]
	}

	year, errY := strconv.Atoi(date[0])
	month, errM := strconv.Atoi(date[1])
	day, errD := strconv.Atoi(date[2])
	hour, errH := strconv.Atoi(date[3])
	minute, errMin := strconv.Atoi(date[4])
	for _, err := range []error{errY, errM, errD, errH, errMin} {
		if err != nil {
			return ParsedFilename{}, fmt.Errorf("invalid date component in filename %q: %w", filename, err)
		}
	}

	return ParsedFilename{
		FlightDate:   time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC).Unix(),
		TimeSlot:     TimeSlot(hour, minute),
		FlightNumber: flight,
		CameraName:   camera,
	}, nil
}

// TimeSlot buckets a time into one of the two 30-minute slots of its hour.
// 23:45 buckets to "23:30"; the hour never rolls over.
func TimeSlot(hour, minute int) string {
	if minute < 30 {
		minute = 0
	} else {
		minute = 30
	}
	return fmt.Sprintf("%02d:%02d", hour, minute)
}

func inferCamera(parts []string) string {
	for _, p := range parts {
		for _, known := range KnownCameras {
			if strings.EqualFold(p, known) {
				return known
			}
		}
	}
	if len(parts) > 1 {
		return parts[1]
	}
	return ""
}

func inferFlightNumber(parts []string, yearIndex int) string {
	for i, p := range parts {
		if i == 0 {
			continue
		}
		if len(p) > 1 && strings.HasPrefix(p, "F") && isNumeric(p[1:]) {
			return p
		}
	}
	if yearIndex > 0 {
		return padFlightNumber(parts[yearIndex-1])
	}
	return ""
}

func padFlightNumber(token string) string {
	if n, err := strconv.Atoi(token); err == nil {
		return fmt.Sprintf("F%03d", n)
	}
	return token
}

func isNumeric(s string) bool {
	_, err := strconv.Atoi(s)
	return err == nil
}

// Exist reports whether the message carries any media attachment.
func Exist(originMessage *tgbotapi.Message) bool {
	if originMessage == nil {
		return false
	}
	return originMessage.Document != nil ||
		len(originMessage.Photo) > 0 ||
		originMessage.Audio != nil ||
		originMessage.Video != nil
}
