package service

import (
	"context"
	"fmt"
	"time"

	"boardgame-tracker/internal/constants"
	"boardgame-tracker/internal/domain"
	"boardgame-tracker/internal/repository"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// RosterService manages the entities scores are recorded against:
// players and the teams they form.
type RosterService struct {
	players *repository.PlayerRepository
	teams   *repository.TeamRepository
	groups  *GroupService
	logger  zerolog.Logger
}

func NewRosterService(
	players *repository.PlayerRepository,
	teams *repository.TeamRepository,
	groups *GroupService,
	logger zerolog.Logger,
) *RosterService {
	return &RosterService{players: players, teams: teams, groups: groups, logger: logger}
}

type CreatePlayerInput struct {
	GroupID    string `json:"group_id"`
	PlayerName string `json:"player_name"`
	Emoji      string `json:"emoji"`
}

func (s *RosterService) CreatePlayer(ctx context.Context, in CreatePlayerInput) (*domain.Player, error) {
	ctx, cancel := context.WithTimeout(ctx, constants.DatabaseTimeout)
	defer cancel()

	if err := s.groups.mustExist(ctx, in.GroupID); err != nil {
		return nil, err
	}

	taken, err := s.players.NameExists(ctx, in.GroupID, in.PlayerName)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, ErrDuplicatePlayerName
	}

	if in.Emoji == "" {
		in.Emoji = constants.DefaultPlayerEmoji
	}

	player := &domain.Player{
		ID:          uuid.New().String(),
		GroupID:     in.GroupID,
		PlayerName:  in.PlayerName,
		Emoji:       in.Emoji,
		CreatedDate: time.Now().UTC(),
	}
	if err := s.players.Insert(ctx, player); err != nil {
		s.logger.Error().Err(err).Str("group_id", in.GroupID).Str("player_name", in.PlayerName).
			Msg("failed to create player")
		return nil, fmt.Errorf("failed to create player: %w", err)
	}

	s.logger.Info().Str("player_id", player.ID).Str("group_id", player.GroupID).Msg("player created")
	return player, nil
}

type CreateTeamInput struct {
	GroupID   string   `json:"group_id"`
	TeamName  string   `json:"team_name"`
	PlayerIDs []string `json:"player_ids"`
}

func (s *RosterService) CreateTeam(ctx context.Context, in CreateTeamInput) (*domain.Team, error) {
	ctx, cancel := context.WithTimeout(ctx, constants.DatabaseTimeout)
	defer cancel()

	if err := s.groups.mustExist(ctx, in.GroupID); err != nil {
		return nil, err
	}

	for _, playerID := range in.PlayerIDs {
		exists, err := s.players.ExistsInGroup(ctx, in.GroupID, playerID)
		if err != nil {
			return nil, err
		}
		if !exists {
			s.logger.Debug().Str("player_id", playerID).Str("group_id", in.GroupID).
				Msg("team references unknown player")
			return nil, fmt.Errorf("%w: %s", ErrPlayerNotFound, playerID)
		}
	}

	taken, err := s.teams.NameExists(ctx, in.GroupID, in.TeamName)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, ErrDuplicateTeamName
	}

	team := &domain.Team{
		ID:          uuid.New().String(),
		GroupID:     in.GroupID,
		TeamName:    in.TeamName,
		PlayerIDs:   in.PlayerIDs,
		CreatedDate: time.Now().UTC(),
	}
	if err := s.teams.Insert(ctx, team); err != nil {
		s.logger.Error().Err(err).Str("group_id", in.GroupID).Str("team_name", in.TeamName).
			Msg("failed to create team")
		return nil, fmt.Errorf("failed to create team: %w", err)
	}

	s.logger.Info().Str("team_id", team.ID).Str("group_id", team.GroupID).Msg("team created")
	return team, nil
}
