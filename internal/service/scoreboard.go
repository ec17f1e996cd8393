package service

import (
	"context"

	"boardgame-tracker/internal/constants"
	"boardgame-tracker/internal/domain"
	"boardgame-tracker/internal/repository"
	"boardgame-tracker/internal/scoring"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"
)

// ScoreboardService feeds the scoring engine: it bulk-fetches a group's
// entities and sessions, runs the pure computation, and exposes the
// derived views. Every call recomputes from scratch; concurrent requests
// share nothing.
type ScoreboardService struct {
	players  *repository.PlayerRepository
	teams    *repository.TeamRepository
	sessions *repository.SessionRepository
	groups   *GroupService
	logger   zerolog.Logger
}

func NewScoreboardService(
	players *repository.PlayerRepository,
	teams *repository.TeamRepository,
	sessions *repository.SessionRepository,
	groups *GroupService,
	logger zerolog.Logger,
) *ScoreboardService {
	return &ScoreboardService{
		players:  players,
		teams:    teams,
		sessions: sessions,
		groups:   groups,
		logger:   logger,
	}
}

// Snapshot fetches everything one computation needs in parallel.
func (s *ScoreboardService) Snapshot(ctx context.Context, groupID string) (scoring.Snapshot, error) {
	ctx, cancel := context.WithTimeout(ctx, constants.DatabaseTimeout)
	defer cancel()

	if err := s.groups.mustExist(ctx, groupID); err != nil {
		return scoring.Snapshot{}, err
	}

	var snap scoring.Snapshot
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		snap.Players, err = s.players.ListByGroup(gctx, groupID)
		return err
	})
	g.Go(func() error {
		var err error
		snap.Teams, err = s.teams.ListByGroup(gctx, groupID)
		return err
	})
	g.Go(func() error {
		var err error
		snap.Sessions, err = s.sessions.ListByGroup(gctx, groupID)
		return err
	})
	if err := g.Wait(); err != nil {
		s.logger.Error().Err(err).Str("group_id", groupID).Msg("failed to load scoreboard snapshot")
		return scoring.Snapshot{}, err
	}
	return snap, nil
}

// PlayerOverviews pairs every player with its live aggregate, including
// players that have never appeared in a session.
func (s *ScoreboardService) PlayerOverviews(ctx context.Context, groupID string) ([]domain.PlayerOverview, error) {
	snap, err := s.Snapshot(ctx, groupID)
	if err != nil {
		return nil, err
	}

	stats, orphans := scoring.PlayerStats(snap)
	s.logOrphans(groupID, "player", orphans)

	out := make([]domain.PlayerOverview, len(snap.Players))
	for i, p := range snap.Players {
		out[i] = domain.PlayerOverview{Player: p, Stats: stats[i]}
	}
	return out, nil
}

// TeamOverviews pairs every team with its live aggregate.
func (s *ScoreboardService) TeamOverviews(ctx context.Context, groupID string) ([]domain.TeamOverview, error) {
	snap, err := s.Snapshot(ctx, groupID)
	if err != nil {
		return nil, err
	}

	stats, orphans := scoring.TeamStats(snap)
	s.logOrphans(groupID, "team", orphans)

	out := make([]domain.TeamOverview, len(snap.Teams))
	for i, t := range snap.Teams {
		out[i] = domain.TeamOverview{Team: t, Stats: stats[i]}
	}
	return out, nil
}

func (s *ScoreboardService) PlayerLeaderboard(ctx context.Context, groupID string, f domain.LeaderboardFilter) ([]domain.LeaderboardEntry, error) {
	if err := validateFilter(f); err != nil {
		return nil, err
	}
	snap, err := s.Snapshot(ctx, groupID)
	if err != nil {
		return nil, err
	}

	entries, orphans := scoring.PlayerLeaderboard(snap, f)
	s.logOrphans(groupID, "player", orphans)
	return entries, nil
}

func (s *ScoreboardService) TeamLeaderboard(ctx context.Context, groupID string, f domain.LeaderboardFilter) ([]domain.LeaderboardEntry, error) {
	if err := validateFilter(f); err != nil {
		return nil, err
	}
	snap, err := s.Snapshot(ctx, groupID)
	if err != nil {
		return nil, err
	}

	entries, orphans := scoring.TeamLeaderboard(snap, f)
	s.logOrphans(groupID, "team", orphans)
	return entries, nil
}

func (s *ScoreboardService) GroupStats(ctx context.Context, groupID string) (*domain.GroupStats, error) {
	snap, err := s.Snapshot(ctx, groupID)
	if err != nil {
		return nil, err
	}

	stats := scoring.GroupStats(snap)
	return &stats, nil
}

func validateFilter(f domain.LeaderboardFilter) error {
	if f.Month != 0 && f.Year == 0 {
		return ErrMonthWithoutYear
	}
	if f.Month < 0 || f.Month > 12 {
		return ErrInvalidMonth
	}
	return nil
}

// logOrphans surfaces sessions referencing entities that no longer
// exist. A data-integrity inconsistency, not a fatal error: the
// contributions are skipped and everything else computes normally.
func (s *ScoreboardService) logOrphans(groupID, kind string, orphans []string) {
	if len(orphans) == 0 {
		return
	}
	s.logger.Warn().
		Str("group_id", groupID).
		Str("entity_kind", kind).
		Strs("entity_ids", orphans).
		Msg("sessions reference entities missing from the group")
}
