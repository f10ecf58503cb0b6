package api

import (
	"context"

	"github.com/navikt/lecturerooms/internal/models"
	"github.com/navikt/lecturerooms/internal/occupancy"
	"github.com/navikt/lecturerooms/internal/service"
)

// OccupancyServicer defines the service operations needed by API handlers
type OccupancyServicer interface {
	State() occupancy.State
	Ping(ctx context.Context) error

	// Room registry
	AddRoom(ctx context.Context, form models.RoomForm) service.Result
	EditRoom(ctx context.Context, oldNumber string, form models.RoomForm) service.Result
	DeleteRoom(ctx context.Context, number string) service.Result

	// Occupancy
	CheckIn(ctx context.Context, form models.CheckInForm) service.Result
	CheckOut(ctx context.Context, form models.CheckOutForm) service.Result
	CheckOutByID(ctx context.Context, id string) service.Result
	EditLecturer(ctx context.Context, id string, update models.LecturerUpdate) service.Result
}
