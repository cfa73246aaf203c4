package media_test

import (
	"IFLYVideosBot/internal/application/media"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func dayUTC(year int, month time.Month, day int) int64 {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC).Unix()
}

func TestParseFilename(t *testing.T) {
	tests := []struct {
		name     string
		filename string
		want     media.ParsedFilename
	}{
		{
			name:     "canonical staff upload",
			filename: "ifly_Door_F001_2025_08_21_14_30_001.mp4",
			want: media.ParsedFilename{
				FlightDate:   dayUTC(2025, time.August, 21),
				TimeSlot:     "14:30",
				FlightNumber: "F001",
				CameraName:   "Door",
			},
		},
		{
			name:     "legacy nine token layout",
			filename: "clip_Door_F007_x01_2025_08_21_14_47",
			want: media.ParsedFilename{
				FlightDate:   dayUTC(2025, time.August, 21),
				TimeSlot:     "14:30",
				FlightNumber: "F007",
				CameraName:   "Door",
			},
		},
		{
			name:     "legacy layout with flight in fourth token",
			filename: "clip_Door_raw_F010_2025_08_21_09_05",
			want: media.ParsedFilename{
				FlightDate:   dayUTC(2025, time.August, 21),
				TimeSlot:     "09:00",
				FlightNumber: "F010",
				CameraName:   "Door",
			},
		},
		{
			name:     "verbose layout pads numeric flight number",
			filename: "ifly_video_Centerline_17_2025_08_21_15_00_raw_0001.mp4",
			want: media.ParsedFilename{
				FlightDate:   dayUTC(2025, time.August, 21),
				TimeSlot:     "15:00",
				FlightNumber: "F017",
				CameraName:   "Centerline",
			},
		},
		{
			name:     "hyphen separators and case insensitive camera",
			filename: "GoPro-sideline-F023-2025-12-01-10-42-x-y-z",
			want: media.ParsedFilename{
				FlightDate:   dayUTC(2025, time.December, 1),
				TimeSlot:     "10:30",
				FlightNumber: "F023",
				CameraName:   "Sideline",
			},
		},
		{
			name:     "fallback camera and flight inference",
			filename: "raw_TopCam_88_2025_01_05_08_15_extra_pad",
			want: media.ParsedFilename{
				FlightDate:   dayUTC(2025, time.January, 5),
				TimeSlot:     "08:00",
				FlightNumber: "F088",
				CameraName:   "TopCam",
			},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := media.ParseFilename(tc.filename)
			require.NoError(t, err)
			require.Equal(t, tc.want, got)
		})
	}
}

func TestParseFilenameErrors(t *testing.T) {
	tests := []struct {
		name     string
		filename string
	}{
		{"no date at all", "myvideo.mp4"},
		{"year without time components", "ifly_Door_F001_2025_08"},
		{"minute token glued to extension", "clip_Door_F001_2025_08_21_14_30.mp4"},
		{"empty filename", ""},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := media.ParseFilename(tc.filename)
			require.Error(t, err)
		})
	}
}

func TestTimeSlot(t *testing.T) {
	tests := []struct {
		hour, minute int
		want         string
	}{
		{14, 0, "14:00"},
		{14, 7, "14:00"},
		{14, 29, "14:00"},
		{14, 30, "14:30"},
		{14, 47, "14:30"},
		{14, 59, "14:30"},
		{23, 45, "23:30"},
		{9, 5, "09:00"},
		{0, 30, "00:30"},
	}

	for _, tc := range tests {
		require.Equal(t, tc.want, media.TimeSlot(tc.hour, tc.minute))
	}
}
