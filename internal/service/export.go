package service

import (
	"context"
	"fmt"

	"boardgame-tracker/internal/constants"
	"boardgame-tracker/internal/domain"
	"boardgame-tracker/internal/repository"
	"boardgame-tracker/internal/scoring"

	"github.com/rs/zerolog"
)

// ExportService renders backup snapshots and restores them. A snapshot
// carries raw entities and sessions plus the computed stats; import only
// stores the raw data, so recomputing after a restore reproduces the
// exported numbers.
type ExportService struct {
	scoreboard *ScoreboardService
	players    *repository.PlayerRepository
	teams      *repository.TeamRepository
	sessions   *repository.SessionRepository
	groups     *GroupService
	logger     zerolog.Logger
}

func NewExportService(
	scoreboard *ScoreboardService,
	players *repository.PlayerRepository,
	teams *repository.TeamRepository,
	sessions *repository.SessionRepository,
	groups *GroupService,
	logger zerolog.Logger,
) *ExportService {
	return &ExportService{
		scoreboard: scoreboard,
		players:    players,
		teams:      teams,
		sessions:   sessions,
		groups:     groups,
		logger:     logger,
	}
}

func (s *ExportService) Export(ctx context.Context, groupID string) (*domain.ExportSnapshot, error) {
	snap, err := s.scoreboard.Snapshot(ctx, groupID)
	if err != nil {
		return nil, err
	}

	out := scoring.Export(snap)
	s.logger.Info().
		Str("group_id", groupID).
		Int("players", len(out.Players)).
		Int("teams", len(out.Teams)).
		Int("sessions", len(out.Sessions)).
		Msg("export snapshot rendered")
	return &out, nil
}

// Import restores a snapshot into the group. Entities and sessions are
// upserted so re-importing a snapshot is idempotent; the stats columns
// in the snapshot are ignored and recomputed on the next read.
func (s *ExportService) Import(ctx context.Context, groupID string, snapshot *domain.ExportSnapshot) error {
	ctx, cancel := context.WithTimeout(ctx, constants.RequestTimeout)
	defer cancel()

	if err := s.groups.mustExist(ctx, groupID); err != nil {
		return err
	}

	players := make([]domain.Player, len(snapshot.Players))
	for i, p := range snapshot.Players {
		p.GroupID = groupID
		players[i] = p.Player
	}
	teams := make([]domain.Team, len(snapshot.Teams))
	for i, t := range snapshot.Teams {
		t.GroupID = groupID
		teams[i] = t.Team
	}
	sessions := make([]domain.GameSession, len(snapshot.Sessions))
	for i, sess := range snapshot.Sessions {
		sess.GroupID = groupID
		sessions[i] = sess.GameSession
	}

	if err := s.players.UpsertBatch(ctx, players); err != nil {
		return fmt.Errorf("failed to import players: %w", err)
	}
	if err := s.teams.UpsertBatch(ctx, teams); err != nil {
		return fmt.Errorf("failed to import teams: %w", err)
	}
	if err := s.sessions.UpsertBatch(ctx, sessions); err != nil {
		return fmt.Errorf("failed to import sessions: %w", err)
	}

	s.logger.Info().
		Str("group_id", groupID).
		Int("players", len(players)).
		Int("teams", len(teams)).
		Int("sessions", len(sessions)).
		Msg("snapshot imported")
	return nil
}
