// Package api serves the remote mutation gateway: a small unauthenticated
// JSON API plus an embedded editor page, meant for a phone on the device's
// own access point. Handlers run on server goroutines and touch the shared
// list only through the device entry points.
package api

import (
	"embed"
	"encoding/json"
	"errors"
	"io/fs"
	"net/http"

	"github.com/lithammer/fuzzysearch/fuzzy"

	"grindpad.dev/grindpad/internal/device"
	"grindpad.dev/grindpad/internal/logging/events"
	"grindpad.dev/grindpad/internal/store"
)

//go:embed web/index.html
var webFS embed.FS

// Server exposes the settings list over HTTP.
type Server struct {
	dev *device.Device
	mux *http.ServeMux
}

// New wires the route table onto a fresh mux.
func New(dev *device.Device) *Server {
	s := &Server{dev: dev, mux: http.NewServeMux()}
	s.mux.HandleFunc("/", s.handleRoot)
	s.mux.HandleFunc("/api/data", s.handleData)
	s.mux.HandleFunc("/api/add", s.handleAdd)
	s.mux.HandleFunc("/api/update", s.handleUpdate)
	s.mux.HandleFunc("/api/delete", s.handleDelete)
	s.mux.HandleFunc("/api/sync", s.handleSync)
	return s
}

// Handler returns the root handler for ListenAndServe and tests.
func (s *Server) Handler() http.Handler { return s.mux }

// ListenAndServe blocks serving the API on addr.
func (s *Server) ListenAndServe(addr string) error {
	return http.ListenAndServe(addr, s.mux)
}

type addRequest struct {
	Name  string `json:"name"`
	Value int    `json:"value"`
}

type updateRequest struct {
	Index int `json:"index"`
	Value int `json:"value"`
}

type deleteRequest struct {
	Index int `json:"index"`
}

// syncEntry carries the client's own index label, which is ignored: the
// posted order is authoritative.
type syncEntry struct {
	Index int    `json:"index"`
	Name  string `json:"name"`
	Value int    `json:"value"`
}

type syncRequest struct {
	Entries []syncEntry `json:"entries"`
}

type ack struct {
	Status string `json:"status"`
	Msg    string `json:"msg,omitempty"`
}

func parseRequest(r *http.Request, into any) error {
	defer r.Body.Close()
	dec := json.NewDecoder(r.Body)
	return dec.Decode(into)
}

func writeOK(w http.ResponseWriter) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(ack{Status: "ok"})
}

func writeError(w http.ResponseWriter, r *http.Request, msg string) {
	events.API.Rejected(r.URL.Path, msg)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusBadRequest)
	json.NewEncoder(w).Encode(ack{Status: "error", Msg: msg})
}

// errorMessage flattens device errors into the wire vocabulary.
func errorMessage(err error) string {
	switch {
	case errors.Is(err, store.ErrCapacity):
		return "list is full"
	case errors.Is(err, store.ErrOutOfRange):
		return "index out of range"
	case errors.Is(err, store.ErrInvalidValue):
		return "value out of range"
	case errors.Is(err, device.ErrEmptyName):
		return "name must not be empty"
	default:
		return err.Error()
	}
}

func (s *Server) handleRoot(w http.ResponseWriter, r *http.Request) {
	enableCors(w)
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}
	page, err := fs.ReadFile(webFS, "web/index.html")
	if err != nil {
		http.Error(w, "page unavailable", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Write(page)
}

// handleData lists the entries in store order. A q parameter narrows the
// list to fuzzy name matches for the editor page's filter box.
func (s *Server) handleData(w http.ResponseWriter, r *http.Request) {
	enableCors(w)
	if r.Method == http.MethodOptions {
		w.WriteHeader(http.StatusOK)
		return
	}
	if r.Method != http.MethodGet {
		http.Error(w, "Method Not Allowed", http.StatusMethodNotAllowed)
		return
	}
	events.API.Request(r.Method, r.URL.Path)
	entries := s.dev.Snapshot().Entries
	if q := r.URL.Query().Get("q"); q != "" {
		var filtered []store.Entry
		for _, e := range entries {
			if fuzzy.MatchFold(q, e.Name) {
				filtered = append(filtered, e)
			}
		}
		entries = filtered
	}
	if entries == nil {
		entries = []store.Entry{}
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(entries)
}

func (s *Server) handleAdd(w http.ResponseWriter, r *http.Request) {
	enableCors(w)
	if r.Method == http.MethodOptions {
		w.WriteHeader(http.StatusOK)
		return
	}
	if r.Method != http.MethodPost {
		http.Error(w, "Method Not Allowed", http.StatusMethodNotAllowed)
		return
	}
	events.API.Request(r.Method, r.URL.Path)
	var req addRequest
	if err := parseRequest(r, &req); err != nil {
		writeError(w, r, "malformed request")
		return
	}
	if err := s.dev.RemoteAdd(req.Name, req.Value); err != nil {
		writeError(w, r, errorMessage(err))
		return
	}
	writeOK(w)
}

func (s *Server) handleUpdate(w http.ResponseWriter, r *http.Request) {
	enableCors(w)
	if r.Method == http.MethodOptions {
		w.WriteHeader(http.StatusOK)
		return
	}
	if r.Method != http.MethodPost {
		http.Error(w, "Method Not Allowed", http.StatusMethodNotAllowed)
		return
	}
	events.API.Request(r.Method, r.URL.Path)
	var req updateRequest
	if err := parseRequest(r, &req); err != nil {
		writeError(w, r, "malformed request")
		return
	}
	if err := s.dev.RemoteUpdate(req.Index, req.Value); err != nil {
		writeError(w, r, errorMessage(err))
		return
	}
	writeOK(w)
}

func (s *Server) handleDelete(w http.ResponseWriter, r *http.Request) {
	enableCors(w)
	if r.Method == http.MethodOptions {
		w.WriteHeader(http.StatusOK)
		return
	}
	if r.Method != http.MethodPost {
		http.Error(w, "Method Not Allowed", http.StatusMethodNotAllowed)
		return
	}
	events.API.Request(r.Method, r.URL.Path)
	var req deleteRequest
	if err := parseRequest(r, &req); err != nil {
		writeError(w, r, "malformed request")
		return
	}
	if err := s.dev.RemoteDelete(req.Index); err != nil {
		writeError(w, r, errorMessage(err))
		return
	}
	writeOK(w)
}

func (s *Server) handleSync(w http.ResponseWriter, r *http.Request) {
	enableCors(w)
	if r.Method == http.MethodOptions {
		w.WriteHeader(http.StatusOK)
		return
	}
	if r.Method != http.MethodPost {
		http.Error(w, "Method Not Allowed", http.StatusMethodNotAllowed)
		return
	}
	events.API.Request(r.Method, r.URL.Path)
	var req syncRequest
	if err := parseRequest(r, &req); err != nil {
		writeError(w, r, "malformed request")
		return
	}
	entries := make([]store.Entry, 0, len(req.Entries))
	for _, e := range req.Entries {
		entries = append(entries, store.Entry{Name: e.Name, Value: e.Value})
	}
	if err := s.dev.RemoteSync(entries); err != nil {
		writeError(w, r, errorMessage(err))
		return
	}
	writeOK(w)
}

func enableCors(w http.ResponseWriter) {
	w.Header().Set("Access-Control-Allow-Origin", "*")
	w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
	w.Header().Set("Access-Control-Allow-Headers", "Content-Type")
}
