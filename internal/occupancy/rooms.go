package occupancy

import (
	"strings"

	"github.com/navikt/lecturerooms/internal/models"
)

// AddRoom appends a free room unless the number is already taken
func AddRoom(s State, number string) (State, Outcome) {
	if strings.TrimSpace(number) == "" {
		return s, rejected(ErrRoomNumberRequired)
	}
	if _, exists := s.FindRoom(number); exists {
		return s, rejected(ErrRoomExists)
	}

	rooms := make([]models.Room, 0, len(s.Rooms)+1)
	rooms = append(rooms, s.Rooms...)
	rooms = append(rooms, models.Room{Number: number})

	return State{Lecturers: s.Lecturers, Rooms: rooms}, succeeded("Room added successfully")
}

// EditRoom renames a room and moves every lecturer referencing the old number.
// The new number must not exist yet, which also rejects renaming a room to itself.
func EditRoom(s State, oldNumber, newNumber string) (State, Outcome) {
	if strings.TrimSpace(newNumber) == "" {
		return s, rejected(ErrRoomNumberRequired)
	}
	if _, exists := s.FindRoom(newNumber); exists {
		return s, rejected(ErrRoomNumberExists)
	}
	if _, exists := s.FindRoom(oldNumber); !exists {
		return s, rejected(ErrRoomNotFound)
	}

	rooms := make([]models.Room, len(s.Rooms))
	for i, r := range s.Rooms {
		if r.Number == oldNumber {
			r.Number = newNumber
		}
		rooms[i] = r
	}

	lecturers := make([]models.Lecturer, len(s.Lecturers))
	for i, l := range s.Lecturers {
		if l.RoomNumber == oldNumber {
			l.RoomNumber = newNumber
		}
		lecturers[i] = l
	}

	return State{Lecturers: lecturers, Rooms: rooms}, succeeded("Room updated successfully")
}

// DeleteRoom removes an unoccupied room
func DeleteRoom(s State, number string) (State, Outcome) {
	room, exists := s.FindRoom(number)
	if !exists {
		return s, rejected(ErrRoomNotFound)
	}
	if room.IsOccupied {
		return s, rejected(ErrRoomOccupied)
	}

	rooms := make([]models.Room, 0, len(s.Rooms)-1)
	for _, r := range s.Rooms {
		if r.Number != number {
			rooms = append(rooms, r)
		}
	}

	return State{Lecturers: s.Lecturers, Rooms: rooms}, succeeded("Room deleted successfully")
}
