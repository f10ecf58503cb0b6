// Package repository defines interfaces for persisting the application state
package repository

import (
	"context"

	"github.com/navikt/lecturerooms/internal/occupancy"
)

// Repository defines the interface for loading and saving the lecturer and room lists.
//
// Load substitutes defaults for missing values: no lecturers, and the starter
// rooms from models.DefaultRooms. Save writes both lists as one unit.
type Repository interface {
	Load(ctx context.Context) (occupancy.State, error)
	Save(ctx context.Context, state occupancy.State) error
	Ping(ctx context.Context) error
}
