package server

import (
	"encoding/json"
	"net/http"
	"strconv"

	"boardgame-tracker/internal/domain"
	"boardgame-tracker/internal/service"

	"github.com/rs/zerolog"
)

// TrackerServer exposes the JSON API. Handlers stay thin: decode,
// delegate to a service, encode.
type TrackerServer struct {
	groups     *service.GroupService
	roster     *service.RosterService
	sessions   *service.SessionService
	scoreboard *service.ScoreboardService
	export     *service.ExportService
	logger     zerolog.Logger
}

func NewTrackerServer(
	groups *service.GroupService,
	roster *service.RosterService,
	sessions *service.SessionService,
	scoreboard *service.ScoreboardService,
	export *service.ExportService,
	logger zerolog.Logger,
) *TrackerServer {
	return &TrackerServer{
		groups:     groups,
		roster:     roster,
		sessions:   sessions,
		scoreboard: scoreboard,
		export:     export,
		logger:     logger,
	}
}

func (s *TrackerServer) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("GET /api/{$}", s.handleRoot)

	mux.HandleFunc("POST /api/groups", s.handleCreateGroup)
	mux.HandleFunc("POST /api/groups/join", s.handleJoinGroup)
	mux.HandleFunc("GET /api/groups/{id}", s.handleGetGroup)

	mux.HandleFunc("POST /api/players", s.handleCreatePlayer)
	mux.HandleFunc("GET /api/groups/{id}/players", s.handleGroupPlayers)

	mux.HandleFunc("POST /api/teams", s.handleCreateTeam)
	mux.HandleFunc("GET /api/groups/{id}/teams", s.handleGroupTeams)

	mux.HandleFunc("POST /api/game-sessions", s.handleRecordSession)
	mux.HandleFunc("GET /api/groups/{id}/game-sessions", s.handleGroupSessions)
	mux.HandleFunc("DELETE /api/game-sessions/{id}", s.handleDeleteSession)

	mux.HandleFunc("GET /api/groups/{id}/leaderboard/players", s.handlePlayerLeaderboard)
	mux.HandleFunc("GET /api/groups/{id}/leaderboard/teams", s.handleTeamLeaderboard)
	mux.HandleFunc("GET /api/groups/{id}/stats", s.handleGroupStats)

	mux.HandleFunc("GET /api/groups/{id}/export", s.handleExport)
	mux.HandleFunc("POST /api/groups/{id}/import", s.handleImport)
}

func (s *TrackerServer) handleRoot(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, map[string]string{"message": "Board Game Score Tracker API"})
}

type createGroupRequest struct {
	GroupName string `json:"group_name"`
}

func (s *TrackerServer) handleCreateGroup(w http.ResponseWriter, r *http.Request) {
	var req createGroupRequest
	if !s.decode(w, r, &req) {
		return
	}
	group, err := s.groups.Create(r.Context(), req.GroupName)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	s.writeJSON(w, http.StatusOK, group)
}

type joinGroupRequest struct {
	GroupCode string `json:"group_code"`
}

func (s *TrackerServer) handleJoinGroup(w http.ResponseWriter, r *http.Request) {
	var req joinGroupRequest
	if !s.decode(w, r, &req) {
		return
	}
	group, err := s.groups.Join(r.Context(), req.GroupCode)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	s.writeJSON(w, http.StatusOK, group)
}

func (s *TrackerServer) handleGetGroup(w http.ResponseWriter, r *http.Request) {
	group, err := s.groups.Get(r.Context(), r.PathValue("id"))
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	s.writeJSON(w, http.StatusOK, group)
}

func (s *TrackerServer) handleCreatePlayer(w http.ResponseWriter, r *http.Request) {
	var req service.CreatePlayerInput
	if !s.decode(w, r, &req) {
		return
	}
	player, err := s.roster.CreatePlayer(r.Context(), req)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	s.writeJSON(w, http.StatusOK, player)
}

func (s *TrackerServer) handleGroupPlayers(w http.ResponseWriter, r *http.Request) {
	players, err := s.scoreboard.PlayerOverviews(r.Context(), r.PathValue("id"))
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	if players == nil {
		players = []domain.PlayerOverview{}
	}
	s.writeJSON(w, http.StatusOK, players)
}

func (s *TrackerServer) handleCreateTeam(w http.ResponseWriter, r *http.Request) {
	var req service.CreateTeamInput
	if !s.decode(w, r, &req) {
		return
	}
	team, err := s.roster.CreateTeam(r.Context(), req)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	s.writeJSON(w, http.StatusOK, team)
}

func (s *TrackerServer) handleGroupTeams(w http.ResponseWriter, r *http.Request) {
	teams, err := s.scoreboard.TeamOverviews(r.Context(), r.PathValue("id"))
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	if teams == nil {
		teams = []domain.TeamOverview{}
	}
	s.writeJSON(w, http.StatusOK, teams)
}

func (s *TrackerServer) handleRecordSession(w http.ResponseWriter, r *http.Request) {
	var req service.RecordSessionInput
	if !s.decode(w, r, &req) {
		return
	}
	session, err := s.sessions.Record(r.Context(), req)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	s.writeJSON(w, http.StatusOK, session)
}

func (s *TrackerServer) handleGroupSessions(w http.ResponseWriter, r *http.Request) {
	sessions, err := s.sessions.List(r.Context(), r.PathValue("id"))
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	if sessions == nil {
		sessions = []domain.GameSession{}
	}
	s.writeJSON(w, http.StatusOK, sessions)
}

func (s *TrackerServer) handleDeleteSession(w http.ResponseWriter, r *http.Request) {
	if err := s.sessions.Delete(r.Context(), r.PathValue("id")); err != nil {
		s.writeError(w, r, err)
		return
	}
	s.writeJSON(w, http.StatusOK, map[string]string{"status": "deleted"})
}

func (s *TrackerServer) handlePlayerLeaderboard(w http.ResponseWriter, r *http.Request) {
	filter, ok := s.parseFilter(w, r)
	if !ok {
		return
	}
	entries, err := s.scoreboard.PlayerLeaderboard(r.Context(), r.PathValue("id"), filter)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	if entries == nil {
		entries = []domain.LeaderboardEntry{}
	}
	s.writeJSON(w, http.StatusOK, entries)
}

func (s *TrackerServer) handleTeamLeaderboard(w http.ResponseWriter, r *http.Request) {
	filter, ok := s.parseFilter(w, r)
	if !ok {
		return
	}
	entries, err := s.scoreboard.TeamLeaderboard(r.Context(), r.PathValue("id"), filter)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	if entries == nil {
		entries = []domain.LeaderboardEntry{}
	}
	s.writeJSON(w, http.StatusOK, entries)
}

func (s *TrackerServer) handleGroupStats(w http.ResponseWriter, r *http.Request) {
	stats, err := s.scoreboard.GroupStats(r.Context(), r.PathValue("id"))
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	s.writeJSON(w, http.StatusOK, stats)
}

func (s *TrackerServer) handleExport(w http.ResponseWriter, r *http.Request) {
	snapshot, err := s.export.Export(r.Context(), r.PathValue("id"))
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	s.writeJSON(w, http.StatusOK, snapshot)
}

func (s *TrackerServer) handleImport(w http.ResponseWriter, r *http.Request) {
	var snapshot domain.ExportSnapshot
	if !s.decode(w, r, &snapshot) {
		return
	}
	if err := s.export.Import(r.Context(), r.PathValue("id"), &snapshot); err != nil {
		s.writeError(w, r, err)
		return
	}
	s.writeJSON(w, http.StatusOK, map[string]string{"status": "imported"})
}

// parseFilter reads game_name/year/month query params; month requires
// year and must be 1-12.
func (s *TrackerServer) parseFilter(w http.ResponseWriter, r *http.Request) (domain.LeaderboardFilter, bool) {
	q := r.URL.Query()
	filter := domain.LeaderboardFilter{GameName: q.Get("game_name")}

	if v := q.Get("year"); v != "" {
		year, err := strconv.Atoi(v)
		if err != nil {
			s.writeDetail(w, http.StatusBadRequest, "year must be an integer")
			return filter, false
		}
		filter.Year = year
	}
	if v := q.Get("month"); v != "" {
		month, err := strconv.Atoi(v)
		if err != nil {
			s.writeDetail(w, http.StatusBadRequest, "month must be an integer")
			return filter, false
		}
		filter.Month = month
	}
	return filter, true
}

func (s *TrackerServer) decode(w http.ResponseWriter, r *http.Request, dst any) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		s.writeDetail(w, http.StatusBadRequest, "invalid request body: "+err.Error())
		return false
	}
	return true
}
