package web

import (
	"context"

	"github.com/navikt/lecturerooms/internal/models"
	"github.com/navikt/lecturerooms/internal/occupancy"
	"github.com/navikt/lecturerooms/internal/service"
)

// OccupancyServicer defines the contract for the occupancy service used by web handlers
type OccupancyServicer interface {
	State() occupancy.State
	GetRoomStatusData() []service.RoomStatusData
	Notice() (models.Notice, bool)
	DismissNotice()

	AddRoom(ctx context.Context, form models.RoomForm) service.Result
	EditRoom(ctx context.Context, oldNumber string, form models.RoomForm) service.Result
	DeleteRoom(ctx context.Context, number string) service.Result

	CheckIn(ctx context.Context, form models.CheckInForm) service.Result
	CheckOut(ctx context.Context, form models.CheckOutForm) service.Result
	CheckOutByID(ctx context.Context, id string) service.Result
	EditLecturer(ctx context.Context, id string, update models.LecturerUpdate) service.Result
}
