package scoring

import (
	"testing"
	"time"

	"boardgame-tracker/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func day(d int) time.Time {
	return time.Date(2025, time.March, d, 19, 0, 0, 0, time.UTC)
}

func player(id, name string) domain.Player {
	return domain.Player{ID: id, GroupID: "g1", PlayerName: name, CreatedDate: day(1)}
}

func soloSession(id, game string, date time.Time, scores map[string]float64) domain.GameSession {
	s := domain.GameSession{ID: id, GroupID: "g1", GameName: game, GameDate: date}
	for playerID, score := range scores {
		s.PlayerScores = append(s.PlayerScores, domain.PlayerScore{
			PlayerID: playerID, PlayerName: playerID, Score: score,
		})
	}
	return s
}

func TestNormalizeMinMaxBounds(t *testing.T) {
	contribs := []contribution{
		{entityID: "a", sessionID: "s1", gameName: "Fishbowl", raw: 300},
		{entityID: "b", sessionID: "s2", gameName: "Fishbowl", raw: 650},
		{entityID: "c", sessionID: "s3", gameName: "Fishbowl", raw: 1000},
	}
	normalize(contribs)

	assert.Equal(t, 0.0, contribs[0].normalized, "minimum raw score normalizes to 0")
	assert.Equal(t, 0.5, contribs[1].normalized)
	assert.Equal(t, 1.0, contribs[2].normalized, "maximum raw score normalizes to 1")
	for _, c := range contribs {
		assert.GreaterOrEqual(t, c.normalized, 0.0)
		assert.LessOrEqual(t, c.normalized, 1.0)
	}
}

func TestNormalizeSingleDistinctValue(t *testing.T) {
	// A game where every raw score is identical has no ranking
	// information; everyone gets the neutral value.
	contribs := []contribution{
		{entityID: "a", sessionID: "s1", gameName: "Word Puzzle", raw: 7},
		{entityID: "b", sessionID: "s2", gameName: "Word Puzzle", raw: 7},
	}
	normalize(contribs)
	assert.Equal(t, NeutralScore, contribs[0].normalized)
	assert.Equal(t, NeutralScore, contribs[1].normalized)

	single := []contribution{{entityID: "a", sessionID: "s1", gameName: "Solo", raw: 42}}
	normalize(single)
	assert.Equal(t, NeutralScore, single[0].normalized)
}

func TestNormalizationIsScopedPerGame(t *testing.T) {
	// Game names are case-sensitive keys: each distinct string is its
	// own normalization space.
	contribs := []contribution{
		{entityID: "a", sessionID: "s1", gameName: "dice", raw: 10},
		{entityID: "b", sessionID: "s2", gameName: "dice", raw: 20},
		{entityID: "a", sessionID: "s3", gameName: "Dice", raw: 10},
	}
	normalize(contribs)

	assert.Equal(t, 0.0, contribs[0].normalized)
	assert.Equal(t, 1.0, contribs[1].normalized)
	assert.Equal(t, NeutralScore, contribs[2].normalized, "different casing is a different game")
}

func TestHighScoringGameDoesNotDominate(t *testing.T) {
	// Alice wins only the low-range game, Bob wins only the high-range
	// game; after normalization both winners total 1.0.
	snap := Snapshot{
		Players: []domain.Player{player("alice", "Alice"), player("bob", "Bob"), player("carol", "Carol")},
		Sessions: []domain.GameSession{
			soloSession("s1", "Word Puzzle", day(1), map[string]float64{"alice": 10, "carol": 3}),
			soloSession("s2", "Fishbowl", day(2), map[string]float64{"bob": 1000, "carol": 300}),
		},
	}

	stats, orphans := PlayerStats(snap)
	require.Empty(t, orphans)
	require.Len(t, stats, 3)

	byID := make(map[string]domain.AggregatedStat)
	for _, s := range stats {
		byID[s.EntityID] = s
	}
	assert.Equal(t, 1.0, byID["alice"].NormalizedTotal)
	assert.Equal(t, 1.0, byID["bob"].NormalizedTotal)
	assert.Equal(t, 0.0, byID["carol"].NormalizedTotal, "lost both games")
	assert.Equal(t, 1010.0, byID["bob"].RawTotal+byID["alice"].RawTotal, "raw totals keep their magnitudes")
}

func TestTwoSoloSessionsShareOnePopulation(t *testing.T) {
	// Two single-player sessions of the same game normalize against each
	// other, not in isolation.
	snap := Snapshot{
		Players: []domain.Player{player("a", "A"), player("b", "B")},
		Sessions: []domain.GameSession{
			soloSession("s1", "Dice", day(1), map[string]float64{"a": 10}),
			soloSession("s2", "Dice", day(2), map[string]float64{"b": 20}),
		},
	}

	stats, _ := PlayerStats(snap)
	require.Len(t, stats, 2)
	assert.Equal(t, 0.0, stats[0].NormalizedTotal)
	assert.Equal(t, 1.0, stats[1].NormalizedTotal)
	assert.Equal(t, 1, stats[0].GamesPlayed)
	assert.Equal(t, 1, stats[1].GamesPlayed)

	entries, _ := PlayerLeaderboard(snap, domain.LeaderboardFilter{})
	require.Len(t, entries, 2)
	assert.Equal(t, "b", entries[0].EntityID)
	assert.Equal(t, 1, entries[0].Rank)
	assert.Equal(t, "a", entries[1].EntityID)
	assert.Equal(t, 2, entries[1].Rank)
}
