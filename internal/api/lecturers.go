package api

import (
	"net/http"
	"strings"

	"github.com/navikt/lecturerooms/internal/models"
)

// LecturerHandler handles HTTP requests for check-in, check-out and lecturer edits
type LecturerHandler struct {
	svc OccupancyServicer
}

// NewLecturerHandler creates a new lecturer handler
func NewLecturerHandler(svc OccupancyServicer) *LecturerHandler {
	return &LecturerHandler{
		svc: svc,
	}
}

// ServeHTTP routes /api/lecturers and /api/lecturers/{id}
func (h *LecturerHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	// Path format: /api/lecturers/{id}
	pathParts := strings.Split(strings.Trim(r.URL.Path, "/"), "/")
	var id string
	if len(pathParts) == 3 {
		id = pathParts[2]
	} else if len(pathParts) > 3 {
		http.NotFound(w, r)
		return
	}

	switch {
	case r.Method == http.MethodGet && id == "":
		h.listLecturers(w, r)
	case r.Method == http.MethodPost && id == "":
		h.checkIn(w, r)
	case r.Method == http.MethodPut && id != "":
		h.editLecturer(w, r, id)
	case r.Method == http.MethodDelete && id != "":
		h.checkOutByID(w, r, id)
	default:
		http.NotFound(w, r)
	}
}

// listLecturers handles GET /api/lecturers
func (h *LecturerHandler) listLecturers(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.svc.State().Lecturers)
}

// checkIn handles POST /api/lecturers
func (h *LecturerHandler) checkIn(w http.ResponseWriter, r *http.Request) {
	var form models.CheckInForm
	if !decodeBody(w, r, &form) {
		return
	}
	writeResult(w, h.svc, h.svc.CheckIn(r.Context(), form), http.StatusCreated)
}

// editLecturer handles PUT /api/lecturers/{id}
func (h *LecturerHandler) editLecturer(w http.ResponseWriter, r *http.Request, id string) {
	var update models.LecturerUpdate
	if !decodeBody(w, r, &update) {
		return
	}
	writeResult(w, h.svc, h.svc.EditLecturer(r.Context(), id, update), http.StatusOK)
}

// checkOutByID handles DELETE /api/lecturers/{id}
func (h *LecturerHandler) checkOutByID(w http.ResponseWriter, r *http.Request, id string) {
	writeResult(w, h.svc, h.svc.CheckOutByID(r.Context(), id), http.StatusOK)
}

// checkOutByName handles POST /api/checkout with a name in the body
func (h *LecturerHandler) checkOutByName(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var form models.CheckOutForm
	if !decodeBody(w, r, &form) {
		return
	}
	writeResult(w, h.svc, h.svc.CheckOut(r.Context(), form), http.StatusOK)
}
