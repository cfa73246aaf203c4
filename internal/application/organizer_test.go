package application_test

import (
	"IFLYVideosBot/internal/application"
	"IFLYVideosBot/internal/model"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func day(t *testing.T, value string) int64 {
	t.Helper()
	parsed, err := time.Parse("2006-01-02", value)
	require.NoError(t, err)
	return parsed.Unix()
}

func TestOrganizeSortsEveryLevel(t *testing.T) {
	aug21 := day(t, "2025-08-21")
	aug22 := day(t, "2025-08-22")

	// Deliberately unsorted input; camera order inside a flight comes from
	// the input order.
	videos := []model.Video{
		{Id: 1, FlightDate: aug22, TimeSlot: "10:00", FlightNumber: "F002", CameraName: "Door", Duration: 60},
		{Id: 2, FlightDate: aug21, TimeSlot: "14:30", FlightNumber: "F005", CameraName: "Door", Duration: 60},
		{Id: 3, FlightDate: aug21, TimeSlot: "14:00", FlightNumber: "F003", CameraName: "Centerline", Duration: 55},
		{Id: 4, FlightDate: aug21, TimeSlot: "14:30", FlightNumber: "F001", CameraName: "Door", Duration: 60},
		{Id: 5, FlightDate: aug21, TimeSlot: "14:30", FlightNumber: "F001", CameraName: "Sideline", Duration: 60},
	}

	library := application.Organize(videos)

	require.Len(t, library.Days, 2)
	require.Equal(t, aug21, library.Days[0].Date)
	require.Equal(t, aug22, library.Days[1].Date)

	sessions := library.Days[0].Sessions
	require.Len(t, sessions, 2)
	require.Equal(t, "14:00", sessions[0].TimeSlot)
	require.Equal(t, "14:30", sessions[1].TimeSlot)

	flights := sessions[1].Flights
	require.Len(t, flights, 2)
	require.Equal(t, "F001", flights[0].FlightNumber)
	require.Equal(t, "F005", flights[1].FlightNumber)

	// Two cameras share flight F001; both videos stay, input order kept.
	require.Len(t, flights[0].Videos, 2)
	require.Equal(t, "Door", flights[0].Videos[0].CameraName)
	require.Equal(t, "Sideline", flights[0].Videos[1].CameraName)
}

func TestOrganizeKeepsDuplicateTuples(t *testing.T) {
	aug21 := day(t, "2025-08-21")

	videos := []model.Video{
		{Id: 1, FlightDate: aug21, TimeSlot: "14:30", FlightNumber: "F001", CameraName: "Door"},
		{Id: 2, FlightDate: aug21, TimeSlot: "14:30", FlightNumber: "F001", CameraName: "Door"},
	}

	library := application.Organize(videos)
	require.Len(t, library.Days, 1)
	require.Len(t, library.Days[0].Sessions, 1)
	require.Len(t, library.Days[0].Sessions[0].Flights, 1)
	require.Len(t, library.Days[0].Sessions[0].Flights[0].Videos, 2)
}

func TestOrganizeIsPure(t *testing.T) {
	aug21 := day(t, "2025-08-21")

	videos := []model.Video{
		{Id: 1, FlightDate: aug21, TimeSlot: "14:00", FlightNumber: "F001", CameraName: "Door", Duration: 45},
		{Id: 2, FlightDate: aug21, TimeSlot: "14:00", FlightNumber: "F002", CameraName: "Centerline", Duration: 50},
	}

	first := application.Organize(videos)
	second := application.Organize(videos)
	require.Equal(t, first, second)
}

func TestOrganizeEmptyInput(t *testing.T) {
	library := application.Organize(nil)
	require.Empty(t, library.Days)
}

func TestOrganizeFlightLength(t *testing.T) {
	aug21 := day(t, "2025-08-21")

	videos := []model.Video{
		{Id: 1, FlightDate: aug21, TimeSlot: "14:00", FlightNumber: "F001", CameraName: "Door", Duration: 55},
		{Id: 2, FlightDate: aug21, TimeSlot: "14:00", FlightNumber: "F001", CameraName: "Sideline", Duration: 60},
	}

	library := application.Organize(videos)
	// Flight length comes from the first video seen for the flight.
	require.Equal(t, 55, library.Days[0].Sessions[0].Flights[0].Length)
}
