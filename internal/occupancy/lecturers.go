package occupancy

import (
	"time"

	"github.com/navikt/lecturerooms/internal/models"
)

// CheckIn assigns a lecturer to a free room.
// Checks run in order: duplicate name, unknown room, occupied room.
func CheckIn(s State, form models.CheckInForm, id string, now time.Time) (State, Outcome) {
	if _, exists := s.FindLecturerByName(form.Name); exists {
		return s, rejected(ErrAlreadyCheckedIn)
	}
	room, exists := s.FindRoom(form.RoomNumber)
	if !exists {
		return s, rejected(ErrInvalidRoom)
	}
	if room.IsOccupied {
		return s, rejected(ErrRoomTaken)
	}

	lecturer := models.Lecturer{
		ID:          id,
		Name:        form.Name,
		RoomNumber:  form.RoomNumber,
		CheckInDate: now,
		Department:  form.Department,
		Email:       form.Email,
		Phone:       form.Phone,
	}

	lecturers := make([]models.Lecturer, 0, len(s.Lecturers)+1)
	lecturers = append(lecturers, s.Lecturers...)
	lecturers = append(lecturers, lecturer)

	return State{
		Lecturers: lecturers,
		Rooms:     withOccupancy(s.Rooms, map[string]bool{room.Number: true}),
	}, succeeded("Lecturer successfully checked in")
}

// CheckOut removes the lecturer whose name matches, ignoring case
func CheckOut(s State, name string) (State, Outcome) {
	lecturer, exists := s.FindLecturerByName(name)
	if !exists {
		return s, rejected(ErrLecturerNotFound)
	}
	return checkOut(s, lecturer), succeeded("Lecturer successfully checked out")
}

// CheckOutByID removes the lecturer with the given identifier
func CheckOutByID(s State, id string) (State, Outcome) {
	lecturer, exists := s.FindLecturer(id)
	if !exists {
		return s, rejected(ErrLecturerNotFound)
	}
	return checkOut(s, lecturer), succeeded("Lecturer successfully checked out")
}

func checkOut(s State, lecturer models.Lecturer) State {
	lecturers := make([]models.Lecturer, 0, len(s.Lecturers))
	for _, l := range s.Lecturers {
		if l.ID != lecturer.ID {
			lecturers = append(lecturers, l)
		}
	}

	// The room may have been deleted or renamed away; then nothing is freed
	return State{
		Lecturers: lecturers,
		Rooms:     withOccupancy(s.Rooms, map[string]bool{lecturer.RoomNumber: false}),
	}
}

// EditLecturer replaces a lecturer's details, moving them to another room if the
// room number changes. The identifier and check-in time are kept.
func EditLecturer(s State, id string, update models.LecturerUpdate) (State, Outcome) {
	current, exists := s.FindLecturer(id)
	if !exists {
		return s, rejected(ErrLecturerNotFound)
	}
	if other, clash := s.FindLecturerByName(update.Name); clash && other.ID != id {
		return s, rejected(ErrAlreadyCheckedIn)
	}

	rooms := s.Rooms
	if update.RoomNumber != current.RoomNumber {
		target, found := s.FindRoom(update.RoomNumber)
		if !found {
			return s, rejected(ErrInvalidRoom)
		}
		if target.IsOccupied {
			return s, rejected(ErrRoomTaken)
		}
		rooms = withOccupancy(s.Rooms, map[string]bool{
			current.RoomNumber: false,
			target.Number:      true,
		})
	}

	lecturers := make([]models.Lecturer, len(s.Lecturers))
	for i, l := range s.Lecturers {
		if l.ID == id {
			l.Name = update.Name
			l.RoomNumber = update.RoomNumber
			l.Department = update.Department
			l.Email = update.Email
			l.Phone = update.Phone
		}
		lecturers[i] = l
	}

	return State{Lecturers: lecturers, Rooms: rooms}, succeeded("Lecturer details updated successfully")
}
