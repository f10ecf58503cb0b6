package web

import (
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/navikt/lecturerooms/internal/models"
	"github.com/r3labs/sse/v2"
)

// UpdatesStream is the SSE stream browsers subscribe to for state changes
const UpdatesStream = "updates"

// updateEvent is the payload of an "update" event
type updateEvent struct {
	Message string `json:"message"`
	Kind    string `json:"kind"`
}

// SSEManager pushes update events to connected browsers
type SSEManager struct {
	server *sse.Server
}

// NewSSEManager creates a new server-sent events manager with the updates stream
func NewSSEManager() *SSEManager {
	server := sse.New()
	// Late subscribers render the current page anyway, so old events are not replayed
	server.AutoReplay = false
	server.AutoStream = false
	server.Headers = map[string]string{
		"X-Accel-Buffering": "no", // Disable nginx proxy buffering
		"Cache-Control":     "no-cache, no-transform",
	}
	server.CreateStream(UpdatesStream)

	return &SSEManager{
		server: server,
	}
}

// ServeHTTP implements the http.Handler interface for SSE connections
func (sm *SSEManager) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Access-Control-Allow-Origin", "*")
	w.Header().Set("Access-Control-Allow-Headers", "Content-Type")
	w.Header().Set("Access-Control-Allow-Methods", "GET, OPTIONS")

	if r.Method == http.MethodOptions {
		w.WriteHeader(http.StatusOK)
		return
	}
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	// Default to the updates stream so a bare /events works
	if r.URL.Query().Get("stream") == "" {
		q := r.URL.Query()
		q.Set("stream", UpdatesStream)
		r.URL.RawQuery = q.Encode()
	}

	log.Printf("SSE client connected from %s (%s)", r.RemoteAddr, r.Proto)
	sm.server.ServeHTTP(w, r)
}

// NotifyUpdate publishes an update event carrying the latest notice
func (sm *SSEManager) NotifyUpdate(notice models.Notice) {
	data, err := json.Marshal(updateEvent{Message: notice.Message, Kind: notice.Kind.String()})
	if err != nil {
		log.Printf("Error encoding SSE update: %v", err)
		return
	}

	sm.server.Publish(UpdatesStream, &sse.Event{
		ID:    []byte(fmt.Sprintf("%d", time.Now().UnixNano())),
		Event: []byte("update"),
		Data:  data,
	})
}

// Shutdown closes all client connections
func (sm *SSEManager) Shutdown() {
	log.Println("Closing SSE streams")
	sm.server.Close()
}
