package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"boardgame-tracker/internal/constants"
	"boardgame-tracker/internal/domain"

	"github.com/rs/zerolog"
)

type TeamRepository struct {
	db     *sql.DB
	logger zerolog.Logger
}

func NewTeamRepository(sqlDB *sql.DB, logger zerolog.Logger) *TeamRepository {
	return &TeamRepository{db: sqlDB, logger: logger}
}

func (r *TeamRepository) Insert(ctx context.Context, team *domain.Team) error {
	memberIDs, err := json.Marshal(team.PlayerIDs)
	if err != nil {
		return fmt.Errorf("failed to marshal player ids: %w", err)
	}

	_, err = r.db.ExecContext(ctx,
		`INSERT INTO teams (id, group_id, team_name, player_ids, created_date) VALUES (?, ?, ?, ?, ?)`,
		team.ID, team.GroupID, team.TeamName, string(memberIDs), team.CreatedDate,
	)
	return err
}

// ListByGroup returns teams in creation order; downstream ranking relies
// on that order for tie-breaks.
func (r *TeamRepository) ListByGroup(ctx context.Context, groupID string) ([]domain.Team, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, group_id, team_name, player_ids, created_date
		 FROM teams WHERE group_id = ? ORDER BY created_date, rowid`, groupID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var teams []domain.Team
	for rows.Next() {
		var t domain.Team
		var memberIDs string
		if err := rows.Scan(&t.ID, &t.GroupID, &t.TeamName, &memberIDs, &t.CreatedDate); err != nil {
			return nil, err
		}
		if err := json.Unmarshal([]byte(memberIDs), &t.PlayerIDs); err != nil {
			return nil, fmt.Errorf("failed to unmarshal player ids for team %s: %w", t.ID, err)
		}
		teams = append(teams, t)
	}
	return teams, rows.Err()
}

func (r *TeamRepository) NameExists(ctx context.Context, groupID, name string) (bool, error) {
	var n int
	err := r.db.QueryRowContext(ctx,
		`SELECT COUNT(1) FROM teams WHERE group_id = ? AND team_name = ?`, groupID, name).Scan(&n)
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

// UpsertBatch restores exported teams inside one transaction.
func (r *TeamRepository) UpsertBatch(ctx context.Context, teams []domain.Team) error {
	if len(teams) == 0 {
		return nil
	}

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	for i := 0; i < len(teams); i += constants.DBBatchSize {
		end := min(i+constants.DBBatchSize, len(teams))
		for _, t := range teams[i:end] {
			memberIDs, err := json.Marshal(t.PlayerIDs)
			if err != nil {
				return fmt.Errorf("failed to marshal player ids: %w", err)
			}
			_, err = tx.ExecContext(ctx,
				`INSERT OR REPLACE INTO teams (id, group_id, team_name, player_ids, created_date)
				 VALUES (?, ?, ?, ?, ?)`,
				t.ID, t.GroupID, t.TeamName, string(memberIDs), t.CreatedDate,
			)
			if err != nil {
				return fmt.Errorf("failed to upsert team %s: %w", t.ID, err)
			}
		}
	}

	return tx.Commit()
}
