package domain

import (
	"time"
)

type Group struct {
	ID          string    `json:"id"`
	GroupCode   string    `json:"group_code"`
	GroupName   string    `json:"group_name"`
	CreatedDate time.Time `json:"created_date"`
}

type Player struct {
	ID          string    `json:"id"`
	GroupID     string    `json:"group_id"`
	PlayerName  string    `json:"player_name"`
	Emoji       string    `json:"emoji"`
	CreatedDate time.Time `json:"created_date"`
}

type Team struct {
	ID          string    `json:"id"`
	GroupID     string    `json:"group_id"`
	TeamName    string    `json:"team_name"`
	PlayerIDs   []string  `json:"player_ids"`
	CreatedDate time.Time `json:"created_date"`
}

type PlayerScore struct {
	PlayerID   string  `json:"player_id"`
	PlayerName string  `json:"player_name"`
	Score      float64 `json:"score"`
}

type TeamScore struct {
	TeamID    string   `json:"team_id"`
	TeamName  string   `json:"team_name"`
	Score     float64  `json:"score"`
	PlayerIDs []string `json:"player_ids"`
}

// GameSession is immutable once recorded; the only mutation is deletion,
// after which every derived view recomputes from the remaining sessions.
type GameSession struct {
	ID           string        `json:"id"`
	GroupID      string        `json:"group_id"`
	GameName     string        `json:"game_name"`
	GameDate     time.Time     `json:"game_date"`
	PlayerScores []PlayerScore `json:"player_scores"`
	TeamScores   []TeamScore   `json:"team_scores"`
	CreatedDate  time.Time     `json:"created_date"`
}
