// Package web renders the check-in, check-out and current occupant views
package web

import (
	"embed"
	"fmt"
	"html/template"
	"log"
	"net/http"
	"time"

	"github.com/navikt/lecturerooms/internal/models"
	"github.com/navikt/lecturerooms/internal/service"
)

//go:embed templates/*.html
var templateFS embed.FS

// Handler manages web UI requests
type Handler struct {
	svc        OccupancyServicer
	templates  *template.Template
	sseManager *SSEManager
}

// NewHandler creates a new web UI handler
func NewHandler(svc OccupancyServicer) (*Handler, error) {
	tmpl, err := template.New("").Funcs(template.FuncMap{
		"formatTime":     formatTime,
		"formatDateTime": formatDateTime,
		"noticeClass":    noticeClass,
	}).ParseFS(templateFS, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("failed to parse templates: %w", err)
	}

	return &Handler{
		svc:        svc,
		templates:  tmpl,
		sseManager: NewSSEManager(),
	}, nil
}

// pageData is the view model shared by the page and its partials
type pageData struct {
	Tab         models.Tab
	Tabs        []models.Tab
	Rooms       []service.RoomStatusData
	FreeRooms   []models.Room
	AllRooms    []models.Room
	Lecturers   []models.Lecturer
	Notice      *models.Notice
	LastUpdated string
	CurrentYear int
}

// SetupRoutes registers web UI routes on the given mux
func (h *Handler) SetupRoutes(mux *http.ServeMux) {
	mux.Handle("/events", h.sseManager)

	mux.HandleFunc("/", h.handleIndex)
	mux.HandleFunc("/partial/content", h.handlePartialContent)

	mux.HandleFunc("POST /checkin", h.handleCheckIn)
	mux.HandleFunc("POST /checkout", h.handleCheckOut)
	mux.HandleFunc("POST /lecturers/{id}/checkout", h.handleCheckOutByID)
	mux.HandleFunc("POST /lecturers/{id}/edit", h.handleEditLecturer)
	mux.HandleFunc("POST /rooms", h.handleAddRoom)
	mux.HandleFunc("POST /rooms/edit", h.handleEditRoom)
	mux.HandleFunc("POST /rooms/delete", h.handleDeleteRoom)
	mux.HandleFunc("POST /notice/dismiss", h.handleDismissNotice)
}

// buildPageData collects the current state for rendering
func (h *Handler) buildPageData(tab models.Tab) pageData {
	st := h.svc.State()
	data := pageData{
		Tab:         tab,
		Tabs:        models.Tabs(),
		Rooms:       h.svc.GetRoomStatusData(),
		FreeRooms:   st.FreeRooms(),
		AllRooms:    st.Rooms,
		Lecturers:   st.Lecturers,
		LastUpdated: time.Now().Format("2006-01-02 15:04:05"),
		CurrentYear: time.Now().Year(),
	}
	if notice, ok := h.svc.Notice(); ok {
		data.Notice = &notice
	}
	return data
}

// handleIndex renders the main page with the selected tab
func (h *Handler) handleIndex(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}

	data := h.buildPageData(models.ParseTab(r.URL.Query().Get("tab")))
	h.render(w, "layout.html", data)
}

// handlePartialContent renders the room panel and tab content for live refreshes
func (h *Handler) handlePartialContent(w http.ResponseWriter, r *http.Request) {
	data := h.buildPageData(models.ParseTab(r.URL.Query().Get("tab")))
	h.render(w, "content", data)
}

func (h *Handler) render(w http.ResponseWriter, name string, data pageData) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := h.templates.ExecuteTemplate(w, name, data); err != nil {
		log.Printf("Error rendering template %s: %v", name, err)
		http.Error(w, "Failed to render page", http.StatusInternalServerError)
	}
}

// NotifyUpdate tells connected browsers that the state or notice changed.
// It is registered as an update callback on the occupancy service.
func (h *Handler) NotifyUpdate(notice models.Notice) {
	h.sseManager.NotifyUpdate(notice)
}

// Shutdown gracefully shuts down the web handler and its SSE manager
func (h *Handler) Shutdown() {
	h.sseManager.Shutdown()
}

// formatTime is a template helper function to format time
func formatTime(t time.Time) string {
	if t.IsZero() {
		return "-"
	}
	return t.Local().Format("15:04")
}

// formatDateTime formats a check-in date for the occupant table
func formatDateTime(t time.Time) string {
	if t.IsZero() {
		return "-"
	}
	return t.Local().Format("2006-01-02 15:04")
}

// noticeClass returns the CSS class for a notice
func noticeClass(kind models.NoticeKind) string {
	return "notice-" + kind.String()
}
