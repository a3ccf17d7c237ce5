// Package httpadapter is the thin transport shell over the journal
// service: JSON in, JSON out, no decision logic.
package httpadapter

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"

	"github.com/stillpage/stillpage/internal/app/journal"
	"github.com/stillpage/stillpage/internal/domain"
	"github.com/stillpage/stillpage/internal/observability"
)

type Server struct {
	svc *journal.Service
}

func NewServer(svc *journal.Service) http.Handler {
	s := &Server{svc: svc}

	r := chi.NewRouter()
	r.Use(chimw.RequestID, chimw.RealIP, chimw.Recoverer)
	r.Use(withRequestLogging, withCORS)

	r.Get("/healthz", s.handleHealthz)
	r.Post("/entries", s.handleCreateEntry)
	r.Method(http.MethodGet, "/metrics", observability.MetricsHandler())

	return r
}

// ─────────────────────────────────────────────
// DTOs (request/response)
// ─────────────────────────────────────────────

type createEntryRequest struct {
	SessionID string `json:"session_id,omitempty"`
	Text      string `json:"text"`
}

// createEntryResponse carries the composed reply. Optional fields are
// omitted when absent. There is deliberately no sentiment score and no
// emotion label anywhere in this shape.
type createEntryResponse struct {
	EntryID           int64  `json:"entry_id"`
	SessionID         string `json:"session_id"`
	Reflection        string `json:"reflection"`
	EngagementNote    string `json:"engagement_note,omitempty"`
	ReflectionSummary string `json:"reflection_summary,omitempty"`
	Prompt            string `json:"prompt,omitempty"`
}

// ─────────────────────────────────────────────
// Handlers
// ─────────────────────────────────────────────

func (s *Server) handleHealthz(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{
		"status": "ok",
		"app":    "stillpage",
	})
}

func (s *Server) handleCreateEntry(w http.ResponseWriter, r *http.Request) {
	var req createEntryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		badRequest(w, "invalid JSON body")
		return
	}

	// Empty or whitespace-only text is accepted: the pipeline treats it
	// as a neutral entry, never a validation error.
	sessionID := req.SessionID
	if sessionID == "" {
		sessionID = uuid.NewString()
	}

	out, err := s.svc.SubmitEntry(r.Context(), journal.SubmitEntryInput{
		SessionID: domain.SessionID(sessionID),
		Text:      req.Text,
	})
	if err != nil {
		if errors.Is(err, domain.ErrStoreUnavailable) {
			serviceUnavailable(w)
			return
		}
		internalError(w)
		return
	}

	writeJSON(w, http.StatusCreated, createEntryResponse{
		EntryID:           out.EntrySeq,
		SessionID:         string(out.SessionID),
		Reflection:        out.Reflection,
		EngagementNote:    out.EngagementNote,
		ReflectionSummary: out.ReflectionSummary,
		Prompt:            out.Prompt,
	})
}

// ─────────────────────────────────────────────
// HTTP helpers
// ─────────────────────────────────────────────

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func badRequest(w http.ResponseWriter, msg string) {
	writeJSON(w, http.StatusBadRequest, map[string]string{
		"error": msg,
	})
}

func serviceUnavailable(w http.ResponseWriter) {
	writeJSON(w, http.StatusServiceUnavailable, map[string]string{
		"error": "entry store unavailable",
	})
}

func internalError(w http.ResponseWriter) {
	writeJSON(w, http.StatusInternalServerError, map[string]string{
		"error": "internal server error",
	})
}
