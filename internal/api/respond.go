package api

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"github.com/navikt/lecturerooms/internal/models"
	"github.com/navikt/lecturerooms/internal/occupancy"
	"github.com/navikt/lecturerooms/internal/service"
)

// OperationResponse is returned by every mutating endpoint
type OperationResponse struct {
	Notice models.Notice   `json:"notice"`
	State  occupancy.State `json:"state"`
}

// statusFor maps a rejection reason to an HTTP status code
func statusFor(err error) int {
	switch {
	case errors.Is(err, service.ErrInvalidInput),
		errors.Is(err, occupancy.ErrRoomNumberRequired),
		errors.Is(err, occupancy.ErrInvalidRoom):
		return http.StatusBadRequest
	case errors.Is(err, occupancy.ErrRoomNotFound),
		errors.Is(err, occupancy.ErrLecturerNotFound):
		return http.StatusNotFound
	case errors.Is(err, occupancy.ErrRoomExists),
		errors.Is(err, occupancy.ErrRoomNumberExists),
		errors.Is(err, occupancy.ErrRoomOccupied),
		errors.Is(err, occupancy.ErrAlreadyCheckedIn),
		errors.Is(err, occupancy.ErrRoomTaken):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

// writeResult encodes the outcome of an operation with the current state.
// successStatus is used when the operation was applied.
func writeResult(w http.ResponseWriter, svc OccupancyServicer, res service.Result, successStatus int) {
	status := successStatus
	if !res.OK() {
		status = statusFor(res.Err)
	}

	writeJSON(w, status, OperationResponse{
		Notice: res.Notice,
		State:  svc.State(),
	})
}

func writeJSON(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		log.Printf("Error encoding response: %v", err)
	}
}

// decodeBody decodes a JSON request body, answering 400 on failure
func decodeBody(w http.ResponseWriter, r *http.Request, dst interface{}) bool {
	defer r.Body.Close()

	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		log.Printf("Error decoding request body: %v", err)
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return false
	}
	return true
}
