package scoring

import (
	"boardgame-tracker/internal/domain"
)

type entityRef struct {
	id   string
	name string
}

func playerRefs(players []domain.Player) []entityRef {
	refs := make([]entityRef, len(players))
	for i, p := range players {
		refs[i] = entityRef{id: p.ID, name: p.PlayerName}
	}
	return refs
}

func teamRefs(teams []domain.Team) []entityRef {
	refs := make([]entityRef, len(teams))
	for i, t := range teams {
		refs[i] = entityRef{id: t.ID, name: t.TeamName}
	}
	return refs
}

// aggregate left-joins the known entity list with normalized
// contributions. Every known entity appears in the result in creation
// order, zero-valued when it has no sessions. games_played counts
// distinct sessions, so a player scoring both individually and through a
// team in one session is credited one game. Contributions whose entity
// is no longer known are dropped and their IDs returned for the caller
// to log.
func aggregate(entities []entityRef, contribs []contribution) ([]domain.AggregatedStat, []string) {
	index := make(map[string]int, len(entities))
	for i, e := range entities {
		index[e.id] = i
	}

	type accumulator struct {
		raw        float64
		normalized float64
		sessions   map[string]struct{}
	}
	accs := make([]accumulator, len(entities))

	var orphans []string
	seenOrphan := make(map[string]struct{})
	for _, c := range contribs {
		i, ok := index[c.entityID]
		if !ok {
			if _, dup := seenOrphan[c.entityID]; !dup {
				seenOrphan[c.entityID] = struct{}{}
				orphans = append(orphans, c.entityID)
			}
			continue
		}
		if accs[i].sessions == nil {
			accs[i].sessions = make(map[string]struct{})
		}
		accs[i].raw += c.raw
		accs[i].normalized += c.normalized
		accs[i].sessions[c.sessionID] = struct{}{}
	}

	stats := make([]domain.AggregatedStat, len(entities))
	for i, e := range entities {
		stat := domain.AggregatedStat{
			EntityID:        e.id,
			Name:            e.name,
			RawTotal:        accs[i].raw,
			NormalizedTotal: accs[i].normalized,
			GamesPlayed:     len(accs[i].sessions),
		}
		if stat.GamesPlayed > 0 {
			stat.RawAverage = stat.RawTotal / float64(stat.GamesPlayed)
			stat.NormalizedAverage = stat.NormalizedTotal / float64(stat.GamesPlayed)
		}
		stats[i] = stat
	}
	return stats, orphans
}

// PlayerStats aggregates every known player over the snapshot's
// sessions. The second return lists IDs referenced by sessions but
// absent from the player list.
func PlayerStats(snap Snapshot) ([]domain.AggregatedStat, []string) {
	contribs := playerContributions(snap.Sessions)
	normalize(contribs)
	return aggregate(playerRefs(snap.Players), contribs)
}

// TeamStats aggregates every known team over the snapshot's sessions.
func TeamStats(snap Snapshot) ([]domain.AggregatedStat, []string) {
	contribs := teamContributions(snap.Sessions)
	normalize(contribs)
	return aggregate(teamRefs(snap.Teams), contribs)
}
