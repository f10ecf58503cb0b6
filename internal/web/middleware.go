package web

import (
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/navikt/lecturerooms/internal/utils"
)

// statusRecorder captures the status code written by the wrapped handler
type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (s *statusRecorder) WriteHeader(code int) {
	s.status = code
	s.ResponseWriter.WriteHeader(code)
}

// Flush keeps SSE streaming working through the wrapper
func (s *statusRecorder) Flush() {
	if f, ok := s.ResponseWriter.(http.Flusher); ok {
		f.Flush()
	}
}

// RequestLogMiddleware logs every request except health probes and sets
// headers that keep SSE connections on HTTP/1.1 behind proxies
func RequestLogMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// Disable HTTP/3 QUIC protocol advertising globally
		w.Header().Set("Alt-Svc", "clear")

		if strings.HasPrefix(r.URL.Path, "/events") {
			w.Header().Set("Connection", "keep-alive")
			// SSE connections stay open, log when they start instead of when they end
			next.ServeHTTP(w, r)
			return
		}

		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		start := time.Now()
		next.ServeHTTP(rec, r)

		if !strings.HasPrefix(r.URL.Path, "/health/") {
			log.Printf("%s %s %d %s", r.Method, utils.SanitizeLogString(r.URL.Path), rec.status, time.Since(start).Round(time.Millisecond))
		}
	})
}

// WrapMuxWithMiddleware wraps an HTTP mux with the request middleware
func WrapMuxWithMiddleware(mux *http.ServeMux) http.Handler {
	return RequestLogMiddleware(mux)
}
