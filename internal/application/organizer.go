package application

import (
	"IFLYVideosBot/internal/model"
	"sort"
)

// Organize groups a flat video list into the day -> session -> flight ->
// video tree the navigation views render. Each level is sorted ascending by
// its natural key; video order inside a flight follows the input list, which
// carries the camera priority applied by the query. Multiple cameras share a
// flight, so (day, slot, flight, camera) tuples are not deduplicated.
// Pure function: the same input always yields the same tree.
func Organize(videos []model.Video) model.Library {
	daysByDate := make(map[int64]*model.Day)
	var dates []int64

	for _, video := range videos {
		day, ok := daysByDate[video.FlightDate]
		if !ok {
			day = &model.Day{Date: video.FlightDate}
			daysByDate[video.FlightDate] = day
			dates = append(dates, video.FlightDate)
		}

		var session *model.DaySession
		for i := range day.Sessions {
			if day.Sessions[i].TimeSlot == video.TimeSlot {
				session = &day.Sessions[i]
				break
			}
		}
		if session == nil {
			day.Sessions = append(day.Sessions, model.DaySession{TimeSlot: video.TimeSlot})
			session = &day.Sessions[len(day.Sessions)-1]
		}

		var flight *model.Flight
		for i := range session.Flights {
			if session.Flights[i].FlightNumber == video.FlightNumber {
				flight = &session.Flights[i]
				break
			}
		}
		if flight == nil {
			session.Flights = append(session.Flights, model.Flight{
				FlightNumber: video.FlightNumber,
				Length:       video.Duration,
			})
			flight = &session.Flights[len(session.Flights)-1]
		}

		flight.Videos = append(flight.Videos, model.FlightVideo{
			Id:         video.Id,
			CameraName: video.CameraName,
			FileId:     video.FileId,
			FileName:   video.FileName,
		})
	}

	sort.Slice(dates, func(i, j int) bool { return dates[i] < dates[j] })

	library := model.Library{Days: make([]model.Day, 0, len(dates))}
	for _, date := range dates {
		day := daysByDate[date]
		sort.Slice(day.Sessions, func(i, j int) bool {
			return day.Sessions[i].TimeSlot < day.Sessions[j].TimeSlot
		})
		for i := range day.Sessions {
			flights := day.Sessions[i].Flights
			sort.Slice(flights, func(a, b int) bool {
				return flights[a].FlightNumber < flights[b].FlightNumber
			})
		}
		library.Days = append(library.Days, *day)
	}

	return library
}
