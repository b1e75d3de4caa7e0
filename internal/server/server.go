package server

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/rs/zerolog"

	"guardian/internal/usecase"
)

const appName = "Context Switch Guardian"

// Server is the HTTP transport for the guardian core. It extracts
// transcripts from inbound webhook payloads and exposes the status and
// report queries.
type Server struct {
	tracker *usecase.Tracker
	log     zerolog.Logger
	now     func() time.Time
}

func New(tracker *usecase.Tracker, log zerolog.Logger) *Server {
	return &Server{
		tracker: tracker,
		log:     log,
		now:     time.Now,
	}
}

// Handler builds the route table with panic recovery wrapping every handler.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/", s.handleHealth)
	mux.HandleFunc("/webhook/omi", s.handleWebhook)
	mux.HandleFunc("/report/daily", s.handleDailyReport)
	return s.recovered(mux)
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}

	status := s.tracker.Status()
	s.writeJSON(w, http.StatusOK, map[string]any{
		"status":              "running",
		"app":                 appName,
		"timestamp":           s.now().Format(time.RFC3339),
		"interruptions_today": status.InterruptionsToday,
		"focus_mode_active":   status.FocusModeActive,
	})
}

func (s *Server) handleWebhook(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var payload webhookPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		s.log.Warn().Err(err).Msg("rejected malformed webhook payload")
		s.writeJSON(w, http.StatusBadRequest, map[string]any{
			"success": false,
			"error":   "invalid JSON payload",
		})
		return
	}

	transcript := payload.extractTranscript()
	timestamp := payload.extractTimestamp(s.now)

	s.log.Debug().Str("transcript", transcript).Msg("webhook received")
	result := s.tracker.Process(transcript, timestamp)

	s.writeJSON(w, http.StatusOK, map[string]any{
		"success":   true,
		"processed": result,
	})
}

// handleDailyReport returns the report and, through the tracker, triggers
// the Slack send as a side effect of the query.
func (s *Server) handleDailyReport(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	report := s.tracker.DailyReport()
	s.log.Info().Int("total", report.TotalInterruptions).Msg("daily report generated")
	s.writeJSON(w, http.StatusOK, report)
}

// recovered isolates a panicking request: the failure is reported for that
// event only and already-stored records stay intact.
func (s *Server) recovered(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if rec := recover(); rec != nil {
				s.log.Error().
					Interface("panic", rec).
					Str("path", r.URL.Path).
					Msg("request processing failed")
				s.writeJSON(w, http.StatusInternalServerError, map[string]any{
					"success": false,
					"error":   fmt.Sprintf("%v", rec),
				})
			}
		}()
		next.ServeHTTP(w, r)
	})
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		s.log.Error().Err(err).Msg("failed to encode response")
	}
}
