// Package occupancy implements the check-in, check-out and room registry rules.
//
// Every operation is a pure function taking the current State and returning the
// next State together with an Outcome. Input slices are never modified: a
// successful operation returns freshly allocated slices and a rejected one
// returns the input state as is.
package occupancy

import (
	"errors"
	"time"

	"github.com/navikt/lecturerooms/internal/models"
)

// Rejection reasons. The error text is the message shown to the user.
var (
	ErrRoomExists         = errors.New("Room already exists")
	ErrRoomNumberExists   = errors.New("Room number already exists")
	ErrRoomNumberRequired = errors.New("Room number is required")
	ErrRoomNotFound       = errors.New("Room not found")
	ErrRoomOccupied       = errors.New("Cannot delete occupied room")
	ErrAlreadyCheckedIn   = errors.New("Lecturer is already checked in")
	ErrInvalidRoom        = errors.New("Invalid room number")
	ErrRoomTaken          = errors.New("Room is already occupied")
	ErrLecturerNotFound   = errors.New("Lecturer not found")
)

// State is the complete application state
type State struct {
	Lecturers []models.Lecturer `json:"lecturers"`
	Rooms     []models.Room     `json:"rooms"`
}

// Outcome describes the result of applying an operation
type Outcome struct {
	Message string
	Err     error
}

// OK returns true if the operation was applied
func (o Outcome) OK() bool {
	return o.Err == nil
}

// Notice converts the outcome into a user-facing notice created at now
func (o Outcome) Notice(now time.Time) models.Notice {
	if o.Err != nil {
		return models.Notice{Message: o.Err.Error(), Kind: models.NoticeError, CreatedAt: now}
	}
	return models.Notice{Message: o.Message, Kind: models.NoticeSuccess, CreatedAt: now}
}

func succeeded(message string) Outcome {
	return Outcome{Message: message}
}

func rejected(err error) Outcome {
	return Outcome{Err: err}
}

// FindRoom returns the room with the given number
func (s State) FindRoom(number string) (models.Room, bool) {
	for _, r := range s.Rooms {
		if r.Number == number {
			return r, true
		}
	}
	return models.Room{}, false
}

// FindLecturer returns the lecturer with the given identifier
func (s State) FindLecturer(id string) (models.Lecturer, bool) {
	for _, l := range s.Lecturers {
		if l.ID == id {
			return l, true
		}
	}
	return models.Lecturer{}, false
}

// FindLecturerByName returns the checked-in lecturer whose name matches, ignoring case
func (s State) FindLecturerByName(name string) (models.Lecturer, bool) {
	for _, l := range s.Lecturers {
		if l.HasName(name) {
			return l, true
		}
	}
	return models.Lecturer{}, false
}

// FreeRooms returns the rooms nobody is checked into
func (s State) FreeRooms() []models.Room {
	free := make([]models.Room, 0, len(s.Rooms))
	for _, r := range s.Rooms {
		if r.IsAvailable() {
			free = append(free, r)
		}
	}
	return free
}

// Clone returns a deep copy of the state
func (s State) Clone() State {
	return State{
		Lecturers: append([]models.Lecturer(nil), s.Lecturers...),
		Rooms:     append([]models.Room(nil), s.Rooms...),
	}
}

// withOccupancy returns a copy of rooms with the occupancy flag of the named rooms set.
// Numbers that match no room are ignored.
func withOccupancy(rooms []models.Room, flags map[string]bool) []models.Room {
	out := make([]models.Room, len(rooms))
	for i, r := range rooms {
		if occupied, ok := flags[r.Number]; ok {
			r.IsOccupied = occupied
		}
		out[i] = r
	}
	return out
}
