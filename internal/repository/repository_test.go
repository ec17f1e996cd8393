package repository

import (
	"context"
	"database/sql"
	"path/filepath"
	"testing"
	"time"

	"boardgame-tracker/internal/database"
	"boardgame-tracker/internal/domain"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTestDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := database.Open(filepath.Join(t.TempDir(), "test.db"), zerolog.Nop())
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return db
}

func seedGroup(t *testing.T, db *sql.DB) *domain.Group {
	t.Helper()
	repo := NewGroupRepository(db, zerolog.Nop())
	group := &domain.Group{
		ID:          "g1",
		GroupCode:   "ABC123",
		GroupName:   "Game Night",
		CreatedDate: time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC),
	}
	require.NoError(t, repo.Insert(context.Background(), group))
	return group
}

func TestGroupInsertAndLookup(t *testing.T) {
	db := openTestDB(t)
	repo := NewGroupRepository(db, zerolog.Nop())
	ctx := context.Background()

	group := seedGroup(t, db)

	byID, err := repo.GetByID(ctx, group.ID)
	require.NoError(t, err)
	assert.Equal(t, group.GroupName, byID.GroupName)

	byCode, err := repo.GetByCode(ctx, "ABC123")
	require.NoError(t, err)
	assert.Equal(t, group.ID, byCode.ID)

	_, err = repo.GetByID(ctx, "missing")
	assert.ErrorIs(t, err, sql.ErrNoRows)

	exists, err := repo.CodeExists(ctx, "ABC123")
	require.NoError(t, err)
	assert.True(t, exists)
	exists, err = repo.CodeExists(ctx, "ZZZZZZ")
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestPlayerListKeepsCreationOrder(t *testing.T) {
	db := openTestDB(t)
	group := seedGroup(t, db)
	repo := NewPlayerRepository(db, zerolog.Nop())
	ctx := context.Background()

	base := time.Date(2025, 2, 1, 0, 0, 0, 0, time.UTC)
	for i, name := range []string{"Alice", "Bob", "Carol"} {
		require.NoError(t, repo.Insert(ctx, &domain.Player{
			ID:          name,
			GroupID:     group.ID,
			PlayerName:  name,
			Emoji:       "🎲",
			CreatedDate: base.Add(time.Duration(i) * time.Minute),
		}))
	}

	players, err := repo.ListByGroup(ctx, group.ID)
	require.NoError(t, err)
	require.Len(t, players, 3)
	assert.Equal(t, "Alice", players[0].PlayerName)
	assert.Equal(t, "Bob", players[1].PlayerName)
	assert.Equal(t, "Carol", players[2].PlayerName)

	taken, err := repo.NameExists(ctx, group.ID, "Bob")
	require.NoError(t, err)
	assert.True(t, taken)

	inGroup, err := repo.ExistsInGroup(ctx, group.ID, "Carol")
	require.NoError(t, err)
	assert.True(t, inGroup)
	inGroup, err = repo.ExistsInGroup(ctx, "other-group", "Carol")
	require.NoError(t, err)
	assert.False(t, inGroup)
}

func TestTeamMemberIDsRoundTrip(t *testing.T) {
	db := openTestDB(t)
	group := seedGroup(t, db)
	repo := NewTeamRepository(db, zerolog.Nop())
	ctx := context.Background()

	team := &domain.Team{
		ID:          "t1",
		GroupID:     group.ID,
		TeamName:    "Tigers",
		PlayerIDs:   []string{"p1", "p2"},
		CreatedDate: time.Date(2025, 2, 1, 0, 0, 0, 0, time.UTC),
	}
	require.NoError(t, repo.Insert(ctx, team))

	teams, err := repo.ListByGroup(ctx, group.ID)
	require.NoError(t, err)
	require.Len(t, teams, 1)
	assert.Equal(t, []string{"p1", "p2"}, teams[0].PlayerIDs)
}

func TestSessionScoresRoundTripAndDelete(t *testing.T) {
	db := openTestDB(t)
	group := seedGroup(t, db)
	repo := NewSessionRepository(db, zerolog.Nop())
	ctx := context.Background()

	older := &domain.GameSession{
		ID: "s1", GroupID: group.ID, GameName: "Dice",
		GameDate:     time.Date(2025, 3, 1, 19, 0, 0, 0, time.UTC),
		PlayerScores: []domain.PlayerScore{{PlayerID: "p1", PlayerName: "Alice", Score: 12.5}},
		CreatedDate:  time.Now().UTC(),
	}
	newer := &domain.GameSession{
		ID: "s2", GroupID: group.ID, GameName: "Charades",
		GameDate: time.Date(2025, 3, 8, 19, 0, 0, 0, time.UTC),
		TeamScores: []domain.TeamScore{
			{TeamID: "t1", TeamName: "Tigers", Score: 20, PlayerIDs: []string{"p1", "p2"}},
		},
		CreatedDate: time.Now().UTC(),
	}
	require.NoError(t, repo.Insert(ctx, older))
	require.NoError(t, repo.Insert(ctx, newer))

	sessions, err := repo.ListByGroup(ctx, group.ID)
	require.NoError(t, err)
	require.Len(t, sessions, 2)
	assert.Equal(t, "s2", sessions[0].ID, "newest first")
	assert.Equal(t, 12.5, sessions[1].PlayerScores[0].Score)
	assert.Equal(t, []string{"p1", "p2"}, sessions[0].TeamScores[0].PlayerIDs)
	assert.Empty(t, sessions[0].PlayerScores)

	require.NoError(t, repo.Delete(ctx, "s1"))
	assert.ErrorIs(t, repo.Delete(ctx, "s1"), sql.ErrNoRows)

	sessions, err = repo.ListByGroup(ctx, group.ID)
	require.NoError(t, err)
	assert.Len(t, sessions, 1)
}

func TestSessionUpsertBatchIsIdempotent(t *testing.T) {
	db := openTestDB(t)
	group := seedGroup(t, db)
	repo := NewSessionRepository(db, zerolog.Nop())
	ctx := context.Background()

	sessions := []domain.GameSession{
		{ID: "s1", GroupID: group.ID, GameName: "Dice",
			GameDate:     time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC),
			PlayerScores: []domain.PlayerScore{{PlayerID: "p1", PlayerName: "Alice", Score: 3}},
			CreatedDate:  time.Now().UTC()},
		{ID: "s2", GroupID: group.ID, GameName: "Dice",
			GameDate:    time.Date(2025, 3, 2, 0, 0, 0, 0, time.UTC),
			CreatedDate: time.Now().UTC()},
	}
	require.NoError(t, repo.UpsertBatch(ctx, sessions))
	require.NoError(t, repo.UpsertBatch(ctx, sessions))

	stored, err := repo.ListByGroup(ctx, group.ID)
	require.NoError(t, err)
	assert.Len(t, stored, 2)
}
