package scoring

import (
	"sort"
	"time"

	"boardgame-tracker/internal/domain"
)

// filterSessions keeps sessions matching the filter. Normalization
// bounds are derived from the filtered set, not the full history:
// filtering changes the comparison population.
func filterSessions(sessions []domain.GameSession, f domain.LeaderboardFilter) []domain.GameSession {
	if f.IsZero() {
		return sessions
	}
	var out []domain.GameSession
	for _, s := range sessions {
		if f.GameName != "" && s.GameName != f.GameName {
			continue
		}
		if f.Year != 0 && s.GameDate.Year() != f.Year {
			continue
		}
		if f.Month != 0 && s.GameDate.Month() != time.Month(f.Month) {
			continue
		}
		out = append(out, s)
	}
	return out
}

// rank sorts aggregates descending by normalized total and assigns dense
// 1-based ranks. The sort is stable, so ties keep entity creation order
// and the first-created entity wins the lower rank.
func rank(stats []domain.AggregatedStat) []domain.LeaderboardEntry {
	entries := make([]domain.LeaderboardEntry, len(stats))
	for i, s := range stats {
		entries[i] = domain.LeaderboardEntry{AggregatedStat: s}
	}
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].NormalizedTotal > entries[j].NormalizedTotal
	})
	for i := range entries {
		entries[i].Rank = i + 1
	}
	return entries
}

// PlayerLeaderboard ranks player aggregates, optionally recomputed over
// a filtered session set.
func PlayerLeaderboard(snap Snapshot, f domain.LeaderboardFilter) ([]domain.LeaderboardEntry, []string) {
	snap.Sessions = filterSessions(snap.Sessions, f)
	stats, orphans := PlayerStats(snap)
	return rank(stats), orphans
}

// TeamLeaderboard ranks team aggregates, optionally recomputed over a
// filtered session set.
func TeamLeaderboard(snap Snapshot, f domain.LeaderboardFilter) ([]domain.LeaderboardEntry, []string) {
	snap.Sessions = filterSessions(snap.Sessions, f)
	stats, orphans := TeamStats(snap)
	return rank(stats), orphans
}
