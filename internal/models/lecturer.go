package models

import (
	"strings"
	"time"
)

// Lecturer represents a lecturer currently checked into a room
type Lecturer struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	RoomNumber  string    `json:"roomNumber"`
	CheckInDate time.Time `json:"checkInDate"`
	Department  string    `json:"department,omitempty"`
	Email       string    `json:"email,omitempty"`
	Phone       string    `json:"phone,omitempty"`
}

// HasName reports whether the lecturer's name matches, ignoring case
func (l Lecturer) HasName(name string) bool {
	return strings.EqualFold(l.Name, name)
}

// CheckInForm is the candidate lecturer record submitted at check-in.
// The identifier and check-in time are assigned by the occupancy core.
type CheckInForm struct {
	Name       string `json:"name" validate:"required"`
	RoomNumber string `json:"roomNumber" validate:"required"`
	Department string `json:"department,omitempty"`
	Email      string `json:"email,omitempty" validate:"omitempty,email"`
	Phone      string `json:"phone,omitempty"`
}

// LecturerUpdate is the full replacement record used when editing a lecturer
type LecturerUpdate struct {
	Name       string `json:"name" validate:"required"`
	RoomNumber string `json:"roomNumber" validate:"required"`
	Department string `json:"department,omitempty"`
	Email      string `json:"email,omitempty" validate:"omitempty,email"`
	Phone      string `json:"phone,omitempty"`
}

// CheckOutForm identifies a lecturer to check out by name
type CheckOutForm struct {
	Name string `json:"name" validate:"required"`
}
