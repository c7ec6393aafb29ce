package api

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/vegirise/vegirise/internal/app/engine"
	"github.com/vegirise/vegirise/internal/domain"
)

// ─── Recording ──────────────────────────────────────────────────────────────

type addVegetableRequest struct {
	Grams int64  `json:"grams"`
	Date  string `json:"date,omitempty"` // defaults to today
}

type recordResponse struct {
	Record  interface{}    `json:"record"`
	Outcome engine.Outcome `json:"outcome"`
}

func (s *Server) handleAddVegetable(w http.ResponseWriter, r *http.Request) {
	var req addVegetableRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.Date == "" {
		req.Date = domain.Today()
	}

	rec, out, err := s.tracker.AddVegetableAt(req.Grams, req.Date)
	if err != nil {
		writeError(w, statusFor(err), err.Error())
		return
	}
	writeJSON(w, http.StatusCreated, recordResponse{Record: rec, Outcome: out})
}

type recordWakeupRequest struct {
	Time      string `json:"time"` // "HH:MM"
	GetUpTime string `json:"get_up_time,omitempty"`
	Date      string `json:"date,omitempty"` // defaults to today
}

func (s *Server) handleRecordWakeup(w http.ResponseWriter, r *http.Request) {
	var req recordWakeupRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.Date == "" {
		req.Date = domain.Today()
	}

	rec, out, err := s.tracker.RecordWakeupAt(req.Time, req.GetUpTime, req.Date)
	if err != nil {
		writeError(w, statusFor(err), err.Error())
		return
	}
	writeJSON(w, http.StatusCreated, recordResponse{Record: rec, Outcome: out})
}

func (s *Server) handleDeleteVegetable(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if err := s.tracker.DeleteVegetable(id); err != nil {
		writeError(w, statusFor(err), err.Error())
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "deleted"})
}

// ─── Queries ────────────────────────────────────────────────────────────────

func (s *Server) handleState(w http.ResponseWriter, r *http.Request) {
	view, err := s.tracker.State()
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, view)
}

func (s *Server) handleDay(w http.ResponseWriter, r *http.Request) {
	date := chi.URLParam(r, "date")
	summary, err := s.tracker.Day(date)
	if err != nil {
		writeError(w, statusFor(err), err.Error())
		return
	}
	writeJSON(w, http.StatusOK, summary)
}

func (s *Server) handleAchievements(w http.ResponseWriter, r *http.Request) {
	views, err := s.tracker.Achievements()
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"achievements": views,
	})
}

// ─── Settings ───────────────────────────────────────────────────────────────

func (s *Server) handleGetSettings(w http.ResponseWriter, r *http.Request) {
	settings, err := s.tracker.Settings()
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, settings)
}

func (s *Server) handleUpdateSettings(w http.ResponseWriter, r *http.Request) {
	var settings domain.Settings
	if err := json.NewDecoder(r.Body).Decode(&settings); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := s.tracker.UpdateSettings(settings); err != nil {
		writeError(w, statusFor(err), err.Error())
		return
	}
	writeJSON(w, http.StatusOK, settings)
}

func (s *Server) handleReset(w http.ResponseWriter, r *http.Request) {
	if err := s.tracker.Reset(); err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "reset"})
}

// statusFor maps domain errors to HTTP status codes.
func statusFor(err error) int {
	switch {
	case errors.Is(err, domain.ErrRecordNotFound):
		return http.StatusNotFound
	case errors.Is(err, domain.ErrInvalidGrams),
		errors.Is(err, domain.ErrInvalidTimeFormat),
		errors.Is(err, domain.ErrInvalidGoalOrder),
		errors.Is(err, domain.ErrInvalidDate):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
