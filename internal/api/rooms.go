package api

import (
	"net/http"
	"net/url"
	"strings"

	"github.com/navikt/lecturerooms/internal/models"
)

// RoomHandler handles HTTP requests for room administration
type RoomHandler struct {
	svc OccupancyServicer
}

// NewRoomHandler creates a new room handler
func NewRoomHandler(svc OccupancyServicer) *RoomHandler {
	return &RoomHandler{
		svc: svc,
	}
}

// ServeHTTP routes /api/rooms and /api/rooms/{number}
func (h *RoomHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	number, err := url.PathUnescape(strings.TrimPrefix(strings.TrimPrefix(r.URL.EscapedPath(), "/api/rooms"), "/"))
	if err != nil {
		http.Error(w, "Invalid room number", http.StatusBadRequest)
		return
	}

	switch {
	case r.Method == http.MethodGet && number == "":
		h.listRooms(w, r)
	case r.Method == http.MethodPost && number == "":
		h.addRoom(w, r)
	case r.Method == http.MethodPut && number != "":
		h.editRoom(w, r, number)
	case r.Method == http.MethodDelete && number != "":
		h.deleteRoom(w, r, number)
	default:
		http.NotFound(w, r)
	}
}

// listRooms handles GET /api/rooms
func (h *RoomHandler) listRooms(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.svc.State().Rooms)
}

// addRoom handles POST /api/rooms
func (h *RoomHandler) addRoom(w http.ResponseWriter, r *http.Request) {
	var form models.RoomForm
	if !decodeBody(w, r, &form) {
		return
	}
	writeResult(w, h.svc, h.svc.AddRoom(r.Context(), form), http.StatusCreated)
}

// editRoom handles PUT /api/rooms/{number} with the new number in the body
func (h *RoomHandler) editRoom(w http.ResponseWriter, r *http.Request, number string) {
	var form models.RoomForm
	if !decodeBody(w, r, &form) {
		return
	}
	writeResult(w, h.svc, h.svc.EditRoom(r.Context(), number, form), http.StatusOK)
}

// deleteRoom handles DELETE /api/rooms/{number}
func (h *RoomHandler) deleteRoom(w http.ResponseWriter, r *http.Request, number string) {
	writeResult(w, h.svc, h.svc.DeleteRoom(r.Context(), number), http.StatusOK)
}
