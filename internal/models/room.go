// Package models holds the data types shared by the occupancy core, storage and handlers
package models

// Room represents a physical room a lecturer can occupy
type Room struct {
	Number     string `json:"number"`
	IsOccupied bool   `json:"isOccupied"`
}

// IsAvailable returns true if no lecturer is checked into the room
func (r Room) IsAvailable() bool {
	return !r.IsOccupied
}

// DefaultRooms returns the starter set used when no rooms have been stored yet
func DefaultRooms() []Room {
	return []Room{
		{Number: "A101"},
		{Number: "A102"},
		{Number: "B201"},
		{Number: "B202"},
	}
}

// RoomForm is the input for adding a room or renaming one
type RoomForm struct {
	Number string `json:"number" validate:"required"`
}
