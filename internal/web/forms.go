package web

import (
	"net/http"
	"net/url"
	"strings"

	"github.com/navikt/lecturerooms/internal/models"
)

// redirectToTab sends the browser back to the page, keeping the tab it submitted from
func redirectToTab(w http.ResponseWriter, r *http.Request) {
	tab := models.ParseTab(r.PostFormValue("tab"))
	http.Redirect(w, r, "/?tab="+url.QueryEscape(string(tab)), http.StatusSeeOther)
}

// parseForm reads the submitted form, answering 400 if it cannot be parsed
func parseForm(w http.ResponseWriter, r *http.Request) bool {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "Invalid form", http.StatusBadRequest)
		return false
	}
	return true
}

// handleCheckIn handles the check-in tab form
func (h *Handler) handleCheckIn(w http.ResponseWriter, r *http.Request) {
	if !parseForm(w, r) {
		return
	}

	h.svc.CheckIn(r.Context(), models.CheckInForm{
		Name:       r.PostFormValue("name"),
		RoomNumber: r.PostFormValue("roomNumber"),
		Department: strings.TrimSpace(r.PostFormValue("department")),
		Email:      r.PostFormValue("email"),
		Phone:      strings.TrimSpace(r.PostFormValue("phone")),
	})
	redirectToTab(w, r)
}

// handleCheckOut handles the check-out tab form, matching by name
func (h *Handler) handleCheckOut(w http.ResponseWriter, r *http.Request) {
	if !parseForm(w, r) {
		return
	}

	h.svc.CheckOut(r.Context(), models.CheckOutForm{Name: r.PostFormValue("name")})
	redirectToTab(w, r)
}

// handleCheckOutByID handles the check-out button in the occupant table
func (h *Handler) handleCheckOutByID(w http.ResponseWriter, r *http.Request) {
	if !parseForm(w, r) {
		return
	}

	h.svc.CheckOutByID(r.Context(), r.PathValue("id"))
	redirectToTab(w, r)
}

// handleEditLecturer handles the edit form in the occupant table
func (h *Handler) handleEditLecturer(w http.ResponseWriter, r *http.Request) {
	if !parseForm(w, r) {
		return
	}

	h.svc.EditLecturer(r.Context(), r.PathValue("id"), models.LecturerUpdate{
		Name:       r.PostFormValue("name"),
		RoomNumber: r.PostFormValue("roomNumber"),
		Department: strings.TrimSpace(r.PostFormValue("department")),
		Email:      r.PostFormValue("email"),
		Phone:      strings.TrimSpace(r.PostFormValue("phone")),
	})
	redirectToTab(w, r)
}

// handleAddRoom handles the add form of the room panel
func (h *Handler) handleAddRoom(w http.ResponseWriter, r *http.Request) {
	if !parseForm(w, r) {
		return
	}

	h.svc.AddRoom(r.Context(), models.RoomForm{Number: r.PostFormValue("number")})
	redirectToTab(w, r)
}

// handleEditRoom handles the rename form of the room panel
func (h *Handler) handleEditRoom(w http.ResponseWriter, r *http.Request) {
	if !parseForm(w, r) {
		return
	}

	h.svc.EditRoom(r.Context(), r.PostFormValue("oldNumber"), models.RoomForm{Number: r.PostFormValue("number")})
	redirectToTab(w, r)
}

// handleDeleteRoom handles the delete button of the room panel
func (h *Handler) handleDeleteRoom(w http.ResponseWriter, r *http.Request) {
	if !parseForm(w, r) {
		return
	}

	h.svc.DeleteRoom(r.Context(), r.PostFormValue("number"))
	redirectToTab(w, r)
}

// handleDismissNotice clears the notice when the user closes it
func (h *Handler) handleDismissNotice(w http.ResponseWriter, r *http.Request) {
	if !parseForm(w, r) {
		return
	}

	h.svc.DismissNotice()
	redirectToTab(w, r)
}
