package service

import (
	"context"
	"log"
	"strings"

	"github.com/navikt/lecturerooms/internal/models"
	"github.com/navikt/lecturerooms/internal/occupancy"
	"github.com/navikt/lecturerooms/internal/utils"
)

// RoomStatusData represents a room and its occupant for the web UI
type RoomStatusData struct {
	Room     models.Room
	Occupant *models.Lecturer
}

// GetRoomStatusData returns every room together with the lecturer checked into it
func (s *OccupancyService) GetRoomStatusData() []RoomStatusData {
	st := s.State()

	occupants := make(map[string]models.Lecturer, len(st.Lecturers))
	for _, l := range st.Lecturers {
		occupants[l.RoomNumber] = l
	}

	result := make([]RoomStatusData, 0, len(st.Rooms))
	for _, room := range st.Rooms {
		data := RoomStatusData{Room: room}
		if l, ok := occupants[room.Number]; ok {
			data.Occupant = &l
		}
		result = append(result, data)
	}
	return result
}

// AddRoom registers a new, free room
func (s *OccupancyService) AddRoom(ctx context.Context, form models.RoomForm) Result {
	form.Number = strings.TrimSpace(form.Number)
	if res, ok := s.checkInput(form); !ok {
		return res
	}

	res := s.apply(ctx, func(st occupancy.State) (occupancy.State, occupancy.Outcome) {
		return occupancy.AddRoom(st, form.Number)
	})
	if res.OK() {
		log.Printf("Added room %s", utils.SanitizeLogString(form.Number))
	}
	return res
}

// EditRoom renames a room, moving any lecturer checked into it
func (s *OccupancyService) EditRoom(ctx context.Context, oldNumber string, form models.RoomForm) Result {
	form.Number = strings.TrimSpace(form.Number)
	if res, ok := s.checkInput(form); !ok {
		return res
	}

	res := s.apply(ctx, func(st occupancy.State) (occupancy.State, occupancy.Outcome) {
		return occupancy.EditRoom(st, oldNumber, form.Number)
	})
	if res.OK() {
		log.Printf("Renamed room %s to %s", utils.SanitizeLogString(oldNumber), utils.SanitizeLogString(form.Number))
	}
	return res
}

// DeleteRoom removes a room nobody is checked into
func (s *OccupancyService) DeleteRoom(ctx context.Context, number string) Result {
	res := s.apply(ctx, func(st occupancy.State) (occupancy.State, occupancy.Outcome) {
		return occupancy.DeleteRoom(st, number)
	})
	if res.OK() {
		log.Printf("Deleted room %s", utils.SanitizeLogString(number))
	}
	return res
}
