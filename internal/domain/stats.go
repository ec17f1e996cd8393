package domain

// AggregatedStat is rebuilt from the full session history on every query.
// Raw and normalized totals are carried side by side so every view reports
// the same numbers.
type AggregatedStat struct {
	EntityID          string  `json:"entity_id"`
	Name              string  `json:"name"`
	RawTotal          float64 `json:"raw_total"`
	RawAverage        float64 `json:"raw_average"`
	NormalizedTotal   float64 `json:"normalized_total"`
	NormalizedAverage float64 `json:"normalized_average"`
	GamesPlayed       int     `json:"games_played"`
}

type LeaderboardEntry struct {
	Rank int `json:"rank"`
	AggregatedStat
}

// LeaderboardFilter narrows the session set a leaderboard is computed
// over. Zero values mean "no constraint"; Month requires Year.
type LeaderboardFilter struct {
	GameName string `json:"game_name,omitempty"`
	Year     int    `json:"year,omitempty"`
	Month    int    `json:"month,omitempty"`
}

func (f LeaderboardFilter) IsZero() bool {
	return f.GameName == "" && f.Year == 0 && f.Month == 0
}

type GroupStats struct {
	TotalPlayers   int               `json:"total_players"`
	TotalTeams     int               `json:"total_teams"`
	TotalGames     int               `json:"total_games"`
	MostPlayedGame string            `json:"most_played_game,omitempty"`
	TopPlayer      *LeaderboardEntry `json:"top_player,omitempty"`
}

type PlayerOverview struct {
	Player
	Stats AggregatedStat `json:"stats"`
}

type TeamOverview struct {
	Team
	Stats AggregatedStat `json:"stats"`
}

// ExportScoreEntry is one participant's score in one session, with the
// normalized value computed against the same bounds as the live views.
type ExportScoreEntry struct {
	EntityID        string  `json:"entity_id"`
	Name            string  `json:"name"`
	RawScore        float64 `json:"raw_score"`
	NormalizedScore float64 `json:"normalized_score"`
}

type ExportSession struct {
	GameSession
	PlayerEntries []ExportScoreEntry `json:"player_entries"`
	TeamEntries   []ExportScoreEntry `json:"team_entries"`
}

// ExportSnapshot carries enough to restore a group's entities and
// sessions; the stats columns are a rendering of the live aggregates,
// not an input to import.
type ExportSnapshot struct {
	Players  []PlayerOverview `json:"players"`
	Teams    []TeamOverview   `json:"teams"`
	Sessions []ExportSession  `json:"sessions"`
}
