// Package scoring converts a group's raw game sessions into comparable
// per-player and per-team statistics. Scores are min–max normalized per
// game name so games with different natural ranges weigh equally, then
// summed into aggregates that back the leaderboard, group stats, and
// export views. Everything here is a pure projection over a Snapshot;
// nothing is cached between calls.
package scoring

import (
	"boardgame-tracker/internal/domain"
)

// NeutralScore is the normalized value assigned when a game's minimum
// equals its maximum: a single distinct raw value carries no ranking
// information, so neither 0 nor 1 would be justified.
const NeutralScore = 0.5

// Snapshot is the full input for one computation: every known entity in
// the group plus every recorded session. Entities must be in creation
// order; that order is the leaderboard tie-break.
type Snapshot struct {
	Players  []domain.Player
	Teams    []domain.Team
	Sessions []domain.GameSession
}

// contribution is one raw score credited to one entity for one session.
// It exists only while a computation is in flight.
type contribution struct {
	entityID   string
	sessionID  string
	gameName   string
	raw        float64
	normalized float64
}

// playerContributions flattens a session list into per-player
// contributions. Individual scores contribute as recorded; team scores
// use full-credit distribution: every listed member records the team's
// whole raw score, not an equal share.
func playerContributions(sessions []domain.GameSession) []contribution {
	var out []contribution
	for _, s := range sessions {
		for _, ps := range s.PlayerScores {
			out = append(out, contribution{
				entityID:  ps.PlayerID,
				sessionID: s.ID,
				gameName:  s.GameName,
				raw:       ps.Score,
			})
		}
		for _, ts := range s.TeamScores {
			out = append(out, distributeTeamScore(s, ts)...)
		}
	}
	return out
}

// distributeTeamScore expands one team score into one contribution per
// member, each carrying the original team score.
func distributeTeamScore(s domain.GameSession, ts domain.TeamScore) []contribution {
	out := make([]contribution, 0, len(ts.PlayerIDs))
	for _, playerID := range ts.PlayerIDs {
		out = append(out, contribution{
			entityID:  playerID,
			sessionID: s.ID,
			gameName:  s.GameName,
			raw:       ts.Score,
		})
	}
	return out
}

// teamContributions credits each team its own raw score per session.
// Teams normalize against other teams only, never against players.
func teamContributions(sessions []domain.GameSession) []contribution {
	var out []contribution
	for _, s := range sessions {
		for _, ts := range s.TeamScores {
			out = append(out, contribution{
				entityID:  ts.TeamID,
				sessionID: s.ID,
				gameName:  s.GameName,
				raw:       ts.Score,
			})
		}
	}
	return out
}
