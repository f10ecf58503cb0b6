package api

import (
	"net/http"
)

// SetupRoutes configures the HTTP routes for the API
func SetupRoutes(svc OccupancyServicer) *http.ServeMux {
	mux := http.NewServeMux()

	// Health check endpoints for Kubernetes
	mux.HandleFunc("/health/live", HealthLiveHandler)
	mux.HandleFunc("/health/ready", HealthReadyHandler(svc))

	// Room registry endpoints
	roomHandler := NewRoomHandler(svc)
	mux.Handle("/api/rooms", roomHandler)
	mux.Handle("/api/rooms/", roomHandler)

	// Occupancy endpoints
	lecturerHandler := NewLecturerHandler(svc)
	mux.Handle("/api/lecturers", lecturerHandler)
	mux.Handle("/api/lecturers/", lecturerHandler)
	mux.HandleFunc("/api/checkout", lecturerHandler.checkOutByName)

	return mux
}
