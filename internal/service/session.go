package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"boardgame-tracker/internal/constants"
	"boardgame-tracker/internal/domain"
	"boardgame-tracker/internal/repository"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

type SessionService struct {
	repo   *repository.SessionRepository
	groups *GroupService
	logger zerolog.Logger
}

func NewSessionService(repo *repository.SessionRepository, groups *GroupService, logger zerolog.Logger) *SessionService {
	return &SessionService{repo: repo, groups: groups, logger: logger}
}

type RecordSessionInput struct {
	GroupID      string               `json:"group_id"`
	GameName     string               `json:"game_name"`
	GameDate     time.Time            `json:"game_date"`
	PlayerScores []domain.PlayerScore `json:"player_scores"`
	TeamScores   []domain.TeamScore   `json:"team_scores"`
}

// Record stores a new game session. Scores are kept exactly as entered;
// all derived statistics recompute from the stored history on read.
func (s *SessionService) Record(ctx context.Context, in RecordSessionInput) (*domain.GameSession, error) {
	ctx, cancel := context.WithTimeout(ctx, constants.DatabaseTimeout)
	defer cancel()

	if err := s.groups.mustExist(ctx, in.GroupID); err != nil {
		return nil, err
	}
	if len(in.PlayerScores) == 0 && len(in.TeamScores) == 0 {
		return nil, ErrEmptySession
	}
	for _, ts := range in.TeamScores {
		if len(ts.PlayerIDs) == 0 {
			return nil, fmt.Errorf("%w: team %s", ErrEmptyTeamScore, ts.TeamID)
		}
	}

	session := &domain.GameSession{
		ID:           uuid.New().String(),
		GroupID:      in.GroupID,
		GameName:     in.GameName,
		GameDate:     in.GameDate,
		PlayerScores: in.PlayerScores,
		TeamScores:   in.TeamScores,
		CreatedDate:  time.Now().UTC(),
	}
	if err := s.repo.Insert(ctx, session); err != nil {
		s.logger.Error().Err(err).Str("group_id", in.GroupID).Str("game_name", in.GameName).
			Msg("failed to record game session")
		return nil, fmt.Errorf("failed to record game session: %w", err)
	}

	s.logger.Info().
		Str("session_id", session.ID).
		Str("group_id", session.GroupID).
		Str("game_name", session.GameName).
		Int("player_scores", len(session.PlayerScores)).
		Int("team_scores", len(session.TeamScores)).
		Msg("game session recorded")
	return session, nil
}

// List returns a group's sessions newest first.
func (s *SessionService) List(ctx context.Context, groupID string) ([]domain.GameSession, error) {
	ctx, cancel := context.WithTimeout(ctx, constants.DatabaseTimeout)
	defer cancel()

	if err := s.groups.mustExist(ctx, groupID); err != nil {
		return nil, err
	}
	return s.repo.ListByGroup(ctx, groupID)
}

// Delete removes a session. Nothing derived is cached, so the next read
// reflects the deletion with no further work.
func (s *SessionService) Delete(ctx context.Context, id string) error {
	ctx, cancel := context.WithTimeout(ctx, constants.DatabaseTimeout)
	defer cancel()

	err := s.repo.Delete(ctx, id)
	if errors.Is(err, sql.ErrNoRows) {
		return ErrSessionNotFound
	}
	if err != nil {
		s.logger.Error().Err(err).Str("session_id", id).Msg("failed to delete game session")
		return err
	}

	s.logger.Info().Str("session_id", id).Msg("game session deleted")
	return nil
}
