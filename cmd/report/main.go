// Command report is an operator tool that reads the tracker's SQLite
// file directly and prints leaderboards, group stats, and export rows as
// terminal tables.
package main

import (
	"database/sql"
	"fmt"
	"os"

	"boardgame-tracker/internal/database"
	"boardgame-tracker/internal/domain"
	"boardgame-tracker/internal/logger"
	"boardgame-tracker/internal/report"
	"boardgame-tracker/internal/repository"
	"boardgame-tracker/internal/service"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

var (
	dbPath     string
	teamsFlag  bool
	gameFilter string
	yearFilter int
	monthFlag  int
)

var rootCmd = &cobra.Command{
	Use:   "report",
	Short: "Board-game tracker reporting tool",
	Long:  "Read the tracker database and print leaderboards, group stats, and export snapshots.",
}

var leaderboardCmd = &cobra.Command{
	Use:   "leaderboard <group-id>",
	Short: "Print the normalized leaderboard for a group",
	Args:  cobra.ExactArgs(1),
	RunE:  runLeaderboard,
}

var statsCmd = &cobra.Command{
	Use:   "stats <group-id>",
	Short: "Print group statistics",
	Args:  cobra.ExactArgs(1),
	RunE:  runStats,
}

var exportCmd = &cobra.Command{
	Use:   "export <group-id>",
	Short: "Print the export snapshot rows",
	Args:  cobra.ExactArgs(1),
	RunE:  runExport,
}

func main() {
	rootCmd.PersistentFlags().StringVar(&dbPath, "db", "boardgames.db", "path to SQLite database")
	leaderboardCmd.Flags().BoolVar(&teamsFlag, "teams", false, "rank teams instead of players")
	leaderboardCmd.Flags().StringVar(&gameFilter, "game", "", "restrict to one game name")
	leaderboardCmd.Flags().IntVar(&yearFilter, "year", 0, "restrict to one year")
	leaderboardCmd.Flags().IntVar(&monthFlag, "month", 0, "restrict to one month (requires --year)")

	rootCmd.AddCommand(leaderboardCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(exportCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// services wires the same repositories and services the server runs,
// minus the HTTP layer.
type services struct {
	db         *sql.DB
	groups     *service.GroupService
	scoreboard *service.ScoreboardService
	export     *service.ExportService
}

func (s *services) Close() error { return s.db.Close() }

func openServices() (*services, error) {
	log := logger.SetLevel(zerolog.ErrorLevel)

	db, err := database.Open(dbPath, log)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	groupRepo := repository.NewGroupRepository(db, log)
	playerRepo := repository.NewPlayerRepository(db, log)
	teamRepo := repository.NewTeamRepository(db, log)
	sessionRepo := repository.NewSessionRepository(db, log)

	groups := service.NewGroupService(groupRepo, log)
	scoreboard := service.NewScoreboardService(playerRepo, teamRepo, sessionRepo, groups, log)
	export := service.NewExportService(scoreboard, playerRepo, teamRepo, sessionRepo, groups, log)

	return &services{db: db, groups: groups, scoreboard: scoreboard, export: export}, nil
}

func runLeaderboard(cmd *cobra.Command, args []string) error {
	svcs, err := openServices()
	if err != nil {
		return err
	}
	defer svcs.Close()

	filter := domain.LeaderboardFilter{GameName: gameFilter, Year: yearFilter, Month: monthFlag}
	var entries []domain.LeaderboardEntry
	if teamsFlag {
		entries, err = svcs.scoreboard.TeamLeaderboard(cmd.Context(), args[0], filter)
	} else {
		entries, err = svcs.scoreboard.PlayerLeaderboard(cmd.Context(), args[0], filter)
	}
	if err != nil {
		return err
	}
	if len(entries) == 0 {
		fmt.Fprintln(os.Stdout, "No entities in this group yet.")
		return nil
	}

	report.PrintLeaderboard(os.Stdout, entries)
	return nil
}

func runStats(cmd *cobra.Command, args []string) error {
	svcs, err := openServices()
	if err != nil {
		return err
	}
	defer svcs.Close()

	group, err := svcs.groups.Get(cmd.Context(), args[0])
	if err != nil {
		return err
	}
	stats, err := svcs.scoreboard.GroupStats(cmd.Context(), args[0])
	if err != nil {
		return err
	}

	report.PrintGroupStats(os.Stdout, group, stats)
	return nil
}

func runExport(cmd *cobra.Command, args []string) error {
	svcs, err := openServices()
	if err != nil {
		return err
	}
	defer svcs.Close()

	snapshot, err := svcs.export.Export(cmd.Context(), args[0])
	if err != nil {
		return err
	}
	if len(snapshot.Sessions) == 0 {
		fmt.Fprintln(os.Stdout, "No game sessions recorded yet.")
		return nil
	}

	report.PrintExport(os.Stdout, snapshot)
	return nil
}
