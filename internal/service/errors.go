package service

import "errors"

var (
	ErrGroupNotFound   = errors.New("group not found")
	ErrSessionNotFound = errors.New("game session not found")
	ErrPlayerNotFound  = errors.New("player not found in group")

	ErrDuplicatePlayerName = errors.New("player name already exists in this group")
	ErrDuplicateTeamName   = errors.New("team name already exists in this group")

	ErrEmptySession   = errors.New("game session must contain at least one score")
	ErrEmptyTeamScore = errors.New("team score must list at least one player")

	ErrMonthWithoutYear = errors.New("month filter requires year")
	ErrInvalidMonth     = errors.New("month must be between 1 and 12")
)
