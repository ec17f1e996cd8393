package scoring

import (
	"testing"

	"boardgame-tracker/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGroupStatsTopPlayerMatchesLeaderboard(t *testing.T) {
	snap := Snapshot{
		Players: []domain.Player{player("a", "A"), player("b", "B")},
		Teams:   []domain.Team{{ID: "t1", GroupID: "g1", TeamName: "T1"}},
		Sessions: []domain.GameSession{
			soloSession("s1", "Dice", day(1), map[string]float64{"a": 10, "b": 20}),
			soloSession("s2", "Fishbowl", day(2), map[string]float64{"a": 900, "b": 300}),
		},
	}

	stats := GroupStats(snap)
	assert.Equal(t, 2, stats.TotalPlayers)
	assert.Equal(t, 1, stats.TotalTeams)
	assert.Equal(t, 2, stats.TotalGames)

	leaderboard, _ := PlayerLeaderboard(snap, domain.LeaderboardFilter{})
	require.NotEmpty(t, leaderboard)
	require.NotNil(t, stats.TopPlayer)
	// One computation, two views: the values must be identical, not
	// merely close.
	assert.Equal(t, leaderboard[0], *stats.TopPlayer)
}

func TestMostPlayedGameModeAndTieBreak(t *testing.T) {
	sessions := []domain.GameSession{
		{ID: "s1", GameName: "Cards", GameDate: day(1)},
		{ID: "s2", GameName: "Dice", GameDate: day(2)},
		{ID: "s3", GameName: "Dice", GameDate: day(3)},
		{ID: "s4", GameName: "Cards", GameDate: day(4)},
	}
	// Cards and Dice both have two sessions; Cards was encountered
	// first.
	assert.Equal(t, "Cards", mostPlayedGame(sessions))

	assert.Equal(t, "Dice", mostPlayedGame(sessions[1:]))
	assert.Empty(t, mostPlayedGame(nil))
}

func TestTopPlayerNeverComputedFromRawScores(t *testing.T) {
	// B's raw total dwarfs A's, but each won one game: normalized they
	// tie at 1.0 and A wins on creation order. A raw-score ranking would
	// have picked B.
	snap := Snapshot{
		Players: []domain.Player{player("a", "A"), player("b", "B")},
		Sessions: []domain.GameSession{
			soloSession("s1", "Word Puzzle", day(1), map[string]float64{"a": 10, "b": 3}),
			soloSession("s2", "Fishbowl", day(2), map[string]float64{"a": 300, "b": 1000}),
		},
	}

	stats := GroupStats(snap)
	require.NotNil(t, stats.TopPlayer)
	assert.Equal(t, "a", stats.TopPlayer.EntityID)
	assert.Equal(t, 1.0, stats.TopPlayer.NormalizedTotal)
}
