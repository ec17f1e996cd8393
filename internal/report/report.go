// Package report renders engine output as terminal tables for the
// operator CLI. It prints the same aggregates the API serves; nothing is
// recomputed here.
package report

import (
	"fmt"
	"io"
	"strconv"

	"boardgame-tracker/internal/domain"

	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"
)

func newTable(w io.Writer) *tablewriter.Table {
	return tablewriter.NewTable(w, tablewriter.WithConfig(tablewriter.Config{
		Row: tw.CellConfig{
			Alignment: tw.CellAlignment{Global: tw.AlignRight},
		},
		Header: tw.CellConfig{
			Alignment: tw.CellAlignment{Global: tw.AlignCenter},
		},
	}))
}

// PrintLeaderboard prints ranked entries, normalized and raw columns
// side by side.
func PrintLeaderboard(w io.Writer, entries []domain.LeaderboardEntry) {
	table := newTable(w)
	table.Header("RANK", "NAME", "NORM_TOTAL", "NORM_AVG", "RAW_TOTAL", "RAW_AVG", "GAMES")
	for _, e := range entries {
		table.Append(
			strconv.Itoa(e.Rank),
			e.Name,
			fmt.Sprintf("%.3f", e.NormalizedTotal),
			fmt.Sprintf("%.3f", e.NormalizedAverage),
			fmt.Sprintf("%.1f", e.RawTotal),
			fmt.Sprintf("%.1f", e.RawAverage),
			strconv.Itoa(e.GamesPlayed),
		)
	}
	table.Render()
}

// PrintGroupStats prints a one-line group summary.
func PrintGroupStats(w io.Writer, group *domain.Group, stats *domain.GroupStats) {
	fmt.Fprintf(w, "\nGroup: %s  |  Code: %s  |  Players: %d  |  Teams: %d  |  Games: %d\n",
		group.GroupName, group.GroupCode, stats.TotalPlayers, stats.TotalTeams, stats.TotalGames)
	if stats.MostPlayedGame != "" {
		fmt.Fprintf(w, "Most played: %s\n", stats.MostPlayedGame)
	}
	if stats.TopPlayer != nil {
		fmt.Fprintf(w, "Top player: %s (normalized total %.3f over %d games)\n",
			stats.TopPlayer.Name, stats.TopPlayer.NormalizedTotal, stats.TopPlayer.GamesPlayed)
	}
	fmt.Fprintln(w)
}

// PrintExport prints every session entry of a snapshot with its raw and
// normalized score pair.
func PrintExport(w io.Writer, snapshot *domain.ExportSnapshot) {
	table := newTable(w)
	table.Header("DATE", "GAME", "KIND", "NAME", "RAW", "NORMALIZED")
	for _, s := range snapshot.Sessions {
		for _, e := range s.PlayerEntries {
			table.Append(s.GameDate.Format("2006-01-02"), s.GameName, "player", e.Name,
				fmt.Sprintf("%.1f", e.RawScore), fmt.Sprintf("%.3f", e.NormalizedScore))
		}
		for _, e := range s.TeamEntries {
			table.Append(s.GameDate.Format("2006-01-02"), s.GameName, "team", e.Name,
				fmt.Sprintf("%.1f", e.RawScore), fmt.Sprintf("%.3f", e.NormalizedScore))
		}
	}
	table.Render()
}
