// Package web serves the x11tap dashboard: a static single-page UI plus an
// SSE feed of decoded wire records, fed by the broker.
package web

import (
	"context"
	"embed"
	"encoding/json"
	"fmt"
	"io/fs"
	"net"
	"net/http"
	"time"

	"github.com/x11tap/x11tap/broker"
)

//go:embed static
var staticFS embed.FS

// Server serves the x11tap web UI and API endpoints.
type Server struct {
	httpServer *http.Server
	broker     *broker.Broker
}

// New creates a new web Server backed by the given Broker.
func New(b *broker.Broker) *Server {
	s := &Server{broker: b}

	mux := http.NewServeMux()

	sub, _ := fs.Sub(staticFS, "static")
	mux.Handle("GET /", http.FileServer(http.FS(sub)))
	mux.HandleFunc("GET /api/records", s.handleSSE)

	s.httpServer = &http.Server{
		Handler:           mux,
		ReadHeaderTimeout: 10 * time.Second,
	}
	return s
}

// Serve starts the HTTP server on the given listener.
func (s *Server) Serve(lis net.Listener) error {
	if err := s.httpServer.Serve(lis); err != nil && err != http.ErrServerClosed {
		return fmt.Errorf("web: serve: %w", err)
	}
	return nil
}

// Shutdown gracefully stops the HTTP server.
func (s *Server) Shutdown(ctx context.Context) error {
	if err := s.httpServer.Shutdown(ctx); err != nil {
		return fmt.Errorf("web: shutdown: %w", err)
	}
	return nil
}

// Handler returns the HTTP handler for testing.
func (s *Server) Handler() http.Handler {
	return s.httpServer.Handler
}

type recordJSON struct {
	ConnID    uint32 `json:"conn_id"`
	Bytes     int    `json:"bytes"`
	Direction string `json:"direction"`
	Kind      string `json:"kind"`
	Name      string `json:"name"`
	Code      uint8  `json:"code"`
	Seq       uint16 `json:"seq,omitempty"`
	HasSeq    bool   `json:"has_seq"`
	Body      string `json:"body"`
	Line      string `json:"line"`
}

func recordToJSON(rec broker.Record) recordJSON {
	return recordJSON{
		ConnID:    rec.ConnID,
		Bytes:     rec.Bytes,
		Direction: rec.Direction,
		Kind:      rec.Kind,
		Name:      rec.Name,
		Code:      rec.Code,
		Seq:       rec.Seq,
		HasSeq:    rec.HasSeq,
		Body:      rec.Body,
		Line:      rec.Line,
	}
}

func (s *Server) handleSSE(w http.ResponseWriter, r *http.Request) {
	flusher, ok := w.(http.Flusher)
	if !ok {
		http.Error(w, "streaming not supported", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")
	w.Header().Set("Access-Control-Allow-Origin", "*")
	flusher.Flush() // send headers immediately

	ch, unsub := s.broker.Subscribe()
	defer unsub()

	ctx := r.Context()
	for {
		select {
		case <-ctx.Done():
			return
		case rec, ok := <-ch:
			if !ok {
				return
			}
			data, err := json.Marshal(recordToJSON(rec))
			if err != nil {
				continue
			}
			fmt.Fprintf(w, "data: %s\n\n", data)
			flusher.Flush()
		}
	}
}
