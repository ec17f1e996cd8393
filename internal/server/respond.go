package server

import (
	"encoding/json"
	"errors"
	"net/http"

	"boardgame-tracker/internal/service"
)

// errorResponse mirrors the {"detail": ...} error bodies the mobile
// client already consumes.
type errorResponse struct {
	Detail string `json:"detail"`
}

func (s *TrackerServer) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.logger.Error().Err(err).Msg("failed to encode response")
	}
}

func (s *TrackerServer) writeDetail(w http.ResponseWriter, status int, detail string) {
	s.writeJSON(w, status, errorResponse{Detail: detail})
}

func (s *TrackerServer) writeError(w http.ResponseWriter, r *http.Request, err error) {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, service.ErrGroupNotFound),
		errors.Is(err, service.ErrSessionNotFound),
		errors.Is(err, service.ErrPlayerNotFound):
		status = http.StatusNotFound
	case errors.Is(err, service.ErrDuplicatePlayerName),
		errors.Is(err, service.ErrDuplicateTeamName),
		errors.Is(err, service.ErrEmptySession),
		errors.Is(err, service.ErrEmptyTeamScore),
		errors.Is(err, service.ErrMonthWithoutYear),
		errors.Is(err, service.ErrInvalidMonth):
		status = http.StatusBadRequest
	}

	if status == http.StatusInternalServerError {
		s.logger.Error().Err(err).Str("path", r.URL.Path).Msg("request failed")
		s.writeDetail(w, status, "internal server error")
		return
	}
	s.writeDetail(w, status, err.Error())
}
