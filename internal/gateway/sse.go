package gateway

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"time"
)

// sseEvent is the discovery event emitted when a client opens the stream.
type sseEvent struct {
	Type     string   `json:"type"`
	Metadata Metadata `json:"metadata"`
}

// handleSSE opens the long-lived discovery stream: one metadata event
// immediately, then keep-alive comments to defeat idle-timeout proxies.
// The ticker is stopped when the client disconnects.
func (s *Server) handleSSE(w http.ResponseWriter, r *http.Request) {
	flusher, ok := w.(http.Flusher)
	if !ok {
		http.Error(w, "streaming not supported", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")
	w.Header().Set("X-Accel-Buffering", "no")
	w.WriteHeader(http.StatusOK)

	data, err := json.Marshal(sseEvent{Type: "metadata", Metadata: s.metadata()})
	if err != nil {
		s.logger.Error("marshal sse metadata", slog.Any("err", err))
		return
	}
	fmt.Fprintf(w, "data: %s\n\n", data)
	flusher.Flush()

	ticker := time.NewTicker(s.keepAlive)
	defer ticker.Stop()

	for {
		select {
		case <-r.Context().Done():
			s.logger.Debug("sse client disconnected")
			return
		case <-ticker.C:
			if _, err := fmt.Fprint(w, ": keep-alive\n\n"); err != nil {
				return
			}
			flusher.Flush()
		}
	}
}
