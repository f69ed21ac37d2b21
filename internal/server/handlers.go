package server

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/claude/wodsmith/internal/analytics"
	"github.com/claude/wodsmith/internal/models"
	"github.com/claude/wodsmith/internal/parser"
	"github.com/claude/wodsmith/internal/storage"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func (s *Server) handleCreateProgram(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Name string `json:"name"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid JSON: " + err.Error()})
		return
	}
	if req.Name == "" {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "name is required"})
		return
	}

	program, err := s.db.CreateProgram(r.Context(), req.Name)
	if err != nil {
		s.log.Error("create program", "error", err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}
	writeJSON(w, http.StatusCreated, program)
}

func (s *Server) handleListPrograms(w http.ResponseWriter, r *http.Request) {
	programs, err := s.db.ListPrograms(r.Context())
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}
	writeJSON(w, http.StatusOK, programs)
}

// ingestWorkoutRequest is a workout's raw text plus its program position and
// the caller-supplied duration for time-domain bucketing.
type ingestWorkoutRequest struct {
	Week        int      `json:"week"`
	Day         int      `json:"day"`
	Text        string   `json:"text"`
	DurationMin *float64 `json:"duration_min,omitempty"`
}

func (s *Server) handleIngestWorkout(w http.ResponseWriter, r *http.Request) {
	programID, err := uuid.Parse(chi.URLParam(r, "programID"))
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid program ID"})
		return
	}

	var req ingestWorkoutRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid JSON: " + err.Error()})
		return
	}
	if req.Week < 1 || req.Day < 1 {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "week and day must be positive"})
		return
	}
	userID := userIDFromContext(r)

	workout := &models.ParsedWorkout{
		ID:          uuid.New(),
		ProgramID:   programID,
		Week:        req.Week,
		Day:         req.Day,
		RawText:     req.Text,
		DurationMin: req.DurationMin,
		Blocks:      parser.ParseWorkout(r.Context(), req.Text, s.catalog, s.db, userID),
	}

	if err := s.db.SaveWorkout(r.Context(), workout); err != nil {
		s.log.Error("save workout", "error", err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}
	writeJSON(w, http.StatusOK, workout)
}

func (s *Server) handleGetWorkout(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid workout ID"})
		return
	}

	workout, err := s.db.GetWorkout(r.Context(), id)
	if errors.Is(err, storage.ErrNotFound) {
		writeJSON(w, http.StatusNotFound, map[string]string{"error": "workout not found"})
		return
	}
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}
	writeJSON(w, http.StatusOK, workout)
}

func (s *Server) handleListProgramWorkouts(w http.ResponseWriter, r *http.Request) {
	programID, err := uuid.Parse(chi.URLParam(r, "programID"))
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid program ID"})
		return
	}

	workouts, err := s.db.ListProgramWorkouts(r.Context(), programID)
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}
	writeJSON(w, http.StatusOK, workouts)
}

func (s *Server) handleProgramAnalytics(w http.ResponseWriter, r *http.Request) {
	programID, err := uuid.Parse(chi.URLParam(r, "programID"))
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid program ID"})
		return
	}

	if _, err := s.db.GetProgram(r.Context(), programID); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			writeJSON(w, http.StatusNotFound, map[string]string{"error": "program not found"})
			return
		}
		s.log.Error("get program", "error", err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}

	days, err := s.db.LoadProgramDays(r.Context(), programID)
	if err != nil {
		s.log.Error("load program days", "error", err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}

	writeJSON(w, http.StatusOK, analytics.Analyze(days, s.catalog.Vocabulary()))
}

func (s *Server) handleListMovements(w http.ResponseWriter, r *http.Request) {
	defs := s.catalog.Definitions()
	catalog := make([]models.CanonicalMovement, 0, len(defs))
	for _, d := range defs {
		catalog = append(catalog, models.CanonicalMovement{
			CanonicalID: d.CanonicalID,
			DisplayName: s.catalog.DisplayName(d.CanonicalID),
			Modality:    d.Modality,
			Aliases:     d.Aliases,
		})
	}
	writeJSON(w, http.StatusOK, catalog)
}

func (s *Server) handleResolveMovement(w http.ResponseWriter, r *http.Request) {
	name := r.URL.Query().Get("name")
	if name == "" {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "name parameter required"})
		return
	}
	writeJSON(w, http.StatusOK, s.catalog.Resolve(name))
}

func (s *Server) handleSuggestedLoad(w http.ResponseWriter, r *http.Request) {
	userID, err := strconv.Atoi(chi.URLParam(r, "userID"))
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid user ID"})
		return
	}
	canonicalID := chi.URLParam(r, "canonicalID")

	weight, err := s.db.SuggestedLoad(r.Context(), userID, canonicalID)
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"canonical_id":        canonicalID,
		"suggested_weight_kg": weight,
	})
}

func (s *Server) handleUpsertRecord(w http.ResponseWriter, r *http.Request) {
	userID, err := strconv.Atoi(chi.URLParam(r, "userID"))
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid user ID"})
		return
	}
	canonicalID := chi.URLParam(r, "canonicalID")

	var req struct {
		WeightKg float64 `json:"weight_kg"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid JSON: " + err.Error()})
		return
	}
	if req.WeightKg <= 0 {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "weight_kg must be positive"})
		return
	}

	if err := s.db.UpsertPersonalRecord(r.Context(), userID, canonicalID, req.WeightKg); err != nil {
		s.log.Error("upsert record", "error", err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
