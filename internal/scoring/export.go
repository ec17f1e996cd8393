package scoring

import (
	"boardgame-tracker/internal/domain"
)

// Export renders the aggregates and every session's raw/normalized score
// pairs into a flat snapshot. Normalized values are computed from the
// same unfiltered bounds as the live views, so a snapshot never
// disagrees with the leaderboard it was taken alongside.
func Export(snap Snapshot) domain.ExportSnapshot {
	playerStats, _ := PlayerStats(snap)
	teamStats, _ := TeamStats(snap)

	playerBounds := boundsByGame(playerContributions(snap.Sessions))
	teamBounds := boundsByGame(teamContributions(snap.Sessions))

	out := domain.ExportSnapshot{
		Players:  make([]domain.PlayerOverview, len(snap.Players)),
		Teams:    make([]domain.TeamOverview, len(snap.Teams)),
		Sessions: make([]domain.ExportSession, len(snap.Sessions)),
	}
	for i, p := range snap.Players {
		out.Players[i] = domain.PlayerOverview{Player: p, Stats: playerStats[i]}
	}
	for i, t := range snap.Teams {
		out.Teams[i] = domain.TeamOverview{Team: t, Stats: teamStats[i]}
	}
	for i, s := range snap.Sessions {
		es := domain.ExportSession{GameSession: s}
		for _, ps := range s.PlayerScores {
			es.PlayerEntries = append(es.PlayerEntries, domain.ExportScoreEntry{
				EntityID:        ps.PlayerID,
				Name:            ps.PlayerName,
				RawScore:        ps.Score,
				NormalizedScore: playerBounds.value(s.GameName, ps.Score),
			})
		}
		for _, ts := range s.TeamScores {
			es.TeamEntries = append(es.TeamEntries, domain.ExportScoreEntry{
				EntityID:        ts.TeamID,
				Name:            ts.TeamName,
				RawScore:        ts.Score,
				NormalizedScore: teamBounds.value(s.GameName, ts.Score),
			})
		}
		out.Sessions[i] = es
	}
	return out
}
