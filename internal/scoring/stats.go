package scoring

import (
	"boardgame-tracker/internal/domain"
)

// GroupStats derives group-level highlights from the same computation
// that backs the leaderboard. TopPlayer is taken from the unfiltered
// normalized player leaderboard, never recomputed from raw scores, so
// the two views always agree.
func GroupStats(snap Snapshot) domain.GroupStats {
	stats := domain.GroupStats{
		TotalPlayers:   len(snap.Players),
		TotalTeams:     len(snap.Teams),
		TotalGames:     len(snap.Sessions),
		MostPlayedGame: mostPlayedGame(snap.Sessions),
	}

	leaderboard, _ := PlayerLeaderboard(snap, domain.LeaderboardFilter{})
	if len(leaderboard) > 0 {
		top := leaderboard[0]
		stats.TopPlayer = &top
	}
	return stats
}

// mostPlayedGame returns the modal game name; on a tie the name first
// encountered in session order wins.
func mostPlayedGame(sessions []domain.GameSession) string {
	if len(sessions) == 0 {
		return ""
	}
	counts := make(map[string]int)
	best := 0
	for _, s := range sessions {
		counts[s.GameName]++
		if counts[s.GameName] > best {
			best = counts[s.GameName]
		}
	}
	for _, s := range sessions {
		if counts[s.GameName] == best {
			return s.GameName
		}
	}
	return ""
}
