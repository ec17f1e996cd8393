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
	gonanoid "github.com/matoous/go-nanoid/v2"
	"github.com/rs/zerolog"
)

type GroupService struct {
	repo   *repository.GroupRepository
	logger zerolog.Logger
}

func NewGroupService(repo *repository.GroupRepository, logger zerolog.Logger) *GroupService {
	return &GroupService{repo: repo, logger: logger}
}

// Create makes a new group with a unique 6-character join code,
// regenerating on the (rare) collision.
func (s *GroupService) Create(ctx context.Context, name string) (*domain.Group, error) {
	ctx, cancel := context.WithTimeout(ctx, constants.DatabaseTimeout)
	defer cancel()

	var code string
	for attempt := 0; attempt < constants.GroupCodeMaxRetry; attempt++ {
		candidate, err := gonanoid.Generate(constants.GroupCodeAlphabet, constants.GroupCodeLength)
		if err != nil {
			return nil, fmt.Errorf("failed to generate group code: %w", err)
		}
		exists, err := s.repo.CodeExists(ctx, candidate)
		if err != nil {
			return nil, err
		}
		if !exists {
			code = candidate
			break
		}
		s.logger.Debug().Str("code", candidate).Msg("group code collision, regenerating")
	}
	if code == "" {
		return nil, fmt.Errorf("failed to find a free group code after %d attempts", constants.GroupCodeMaxRetry)
	}

	group := &domain.Group{
		ID:          uuid.New().String(),
		GroupCode:   code,
		GroupName:   name,
		CreatedDate: time.Now().UTC(),
	}
	if err := s.repo.Insert(ctx, group); err != nil {
		s.logger.Error().Err(err).Str("group_name", name).Msg("failed to create group")
		return nil, fmt.Errorf("failed to create group: %w", err)
	}

	s.logger.Info().Str("group_id", group.ID).Str("code", group.GroupCode).Msg("group created")
	return group, nil
}

// Join resolves a join code to its group.
func (s *GroupService) Join(ctx context.Context, code string) (*domain.Group, error) {
	ctx, cancel := context.WithTimeout(ctx, constants.DatabaseTimeout)
	defer cancel()

	group, err := s.repo.GetByCode(ctx, code)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrGroupNotFound
	}
	if err != nil {
		return nil, err
	}
	return group, nil
}

func (s *GroupService) Get(ctx context.Context, id string) (*domain.Group, error) {
	ctx, cancel := context.WithTimeout(ctx, constants.DatabaseTimeout)
	defer cancel()

	group, err := s.repo.GetByID(ctx, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrGroupNotFound
	}
	if err != nil {
		return nil, err
	}
	return group, nil
}

func (s *GroupService) mustExist(ctx context.Context, id string) error {
	_, err := s.Get(ctx, id)
	return err
}
