package scoring

import (
	"testing"

	"boardgame-tracker/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestZeroHistoryEntitiesAppear(t *testing.T) {
	snap := Snapshot{
		Players: []domain.Player{player("vet", "Veteran"), player("new", "Newcomer")},
		Sessions: []domain.GameSession{
			soloSession("s1", "Dice", day(1), map[string]float64{"vet": 12}),
		},
	}

	stats, orphans := PlayerStats(snap)
	require.Empty(t, orphans)
	require.Len(t, stats, 2, "every known player appears, played or not")

	assert.Equal(t, "new", stats[1].EntityID)
	assert.Zero(t, stats[1].RawTotal)
	assert.Zero(t, stats[1].NormalizedTotal)
	assert.Zero(t, stats[1].NormalizedAverage)
	assert.Zero(t, stats[1].GamesPlayed)
}

func TestFullCreditTeamDistribution(t *testing.T) {
	// Team T (P1, P2) scores 20 raw: each member individually records a
	// 20-point contribution, and the team separately records 20.
	teamGame := domain.GameSession{
		ID: "s1", GroupID: "g1", GameName: "Charades", GameDate: day(3),
		TeamScores: []domain.TeamScore{
			{TeamID: "t1", TeamName: "Tigers", Score: 20, PlayerIDs: []string{"p1", "p2"}},
			{TeamID: "t2", TeamName: "Bears", Score: 10, PlayerIDs: []string{"p3"}},
		},
	}
	snap := Snapshot{
		Players: []domain.Player{player("p1", "P1"), player("p2", "P2"), player("p3", "P3")},
		Teams: []domain.Team{
			{ID: "t1", GroupID: "g1", TeamName: "Tigers", PlayerIDs: []string{"p1", "p2"}},
			{ID: "t2", GroupID: "g1", TeamName: "Bears", PlayerIDs: []string{"p3"}},
		},
		Sessions: []domain.GameSession{teamGame},
	}

	playerStats, _ := PlayerStats(snap)
	require.Len(t, playerStats, 3)
	assert.Equal(t, 20.0, playerStats[0].RawTotal, "full team score, not a split")
	assert.Equal(t, 20.0, playerStats[1].RawTotal)
	assert.Equal(t, 10.0, playerStats[2].RawTotal)
	assert.Equal(t, 1, playerStats[0].GamesPlayed, "team game counts for every member")
	assert.Equal(t, 1, playerStats[1].GamesPlayed)

	teamStats, _ := TeamStats(snap)
	require.Len(t, teamStats, 2)
	assert.Equal(t, 20.0, teamStats[0].RawTotal)
	assert.Equal(t, 1, teamStats[0].GamesPlayed)
	// Teams normalize against teams: 20 vs 10 → 1.0 vs 0.0.
	assert.Equal(t, 1.0, teamStats[0].NormalizedTotal)
	assert.Equal(t, 0.0, teamStats[1].NormalizedTotal)
}

func TestGamesPlayedCountsDistinctSessions(t *testing.T) {
	// A player scoring individually and through a team in the same
	// session is credited one game, not two.
	session := domain.GameSession{
		ID: "s1", GroupID: "g1", GameName: "Trivia", GameDate: day(4),
		PlayerScores: []domain.PlayerScore{{PlayerID: "p1", PlayerName: "P1", Score: 5}},
		TeamScores: []domain.TeamScore{
			{TeamID: "t1", TeamName: "Tigers", Score: 8, PlayerIDs: []string{"p1", "p2"}},
		},
	}
	snap := Snapshot{
		Players:  []domain.Player{player("p1", "P1"), player("p2", "P2")},
		Sessions: []domain.GameSession{session},
	}

	stats, _ := PlayerStats(snap)
	assert.Equal(t, 1, stats[0].GamesPlayed)
	assert.Equal(t, 13.0, stats[0].RawTotal, "both contributions still sum")
}

func TestOrphanedContributionsAreSkipped(t *testing.T) {
	snap := Snapshot{
		Players: []domain.Player{player("alive", "Alive")},
		Sessions: []domain.GameSession{
			soloSession("s1", "Dice", day(1), map[string]float64{"alive": 10, "deleted": 20}),
			soloSession("s2", "Dice", day(2), map[string]float64{"deleted": 30}),
		},
	}

	stats, orphans := PlayerStats(snap)
	require.Len(t, stats, 1)
	assert.Equal(t, []string{"deleted"}, orphans, "reported once, not per contribution")
	assert.Equal(t, 10.0, stats[0].RawTotal)
	// The orphan's scores still participate in the bounds: 10 is the
	// minimum of {10, 20, 30}.
	assert.Equal(t, 0.0, stats[0].NormalizedTotal)
}

func TestAveragesShortCircuitOnZeroGames(t *testing.T) {
	snap := Snapshot{Players: []domain.Player{player("p1", "P1")}}

	stats, _ := PlayerStats(snap)
	require.Len(t, stats, 1)
	assert.Zero(t, stats[0].RawAverage)
	assert.Zero(t, stats[0].NormalizedAverage)
}

func TestAveragesDivideByGamesPlayed(t *testing.T) {
	snap := Snapshot{
		Players: []domain.Player{player("a", "A"), player("b", "B")},
		Sessions: []domain.GameSession{
			soloSession("s1", "Dice", day(1), map[string]float64{"a": 10, "b": 20}),
			soloSession("s2", "Dice", day(2), map[string]float64{"a": 20, "b": 10}),
		},
	}

	stats, _ := PlayerStats(snap)
	assert.Equal(t, 15.0, stats[0].RawAverage)
	assert.Equal(t, 0.5, stats[0].NormalizedAverage)
	assert.Equal(t, 2, stats[0].GamesPlayed)
}
