package models

// Keys under which the two persisted lists are stored. Stores may add a prefix.
const (
	LecturersKey = "lecturers"
	RoomsKey     = "rooms"
)
