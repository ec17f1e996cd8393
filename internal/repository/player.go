package repository

import (
	"context"
	"database/sql"
	"fmt"

	"boardgame-tracker/internal/constants"
	"boardgame-tracker/internal/domain"

	"github.com/rs/zerolog"
)

type PlayerRepository struct {
	db     *sql.DB
	logger zerolog.Logger
}

func NewPlayerRepository(sqlDB *sql.DB, logger zerolog.Logger) *PlayerRepository {
	return &PlayerRepository{db: sqlDB, logger: logger}
}

func (r *PlayerRepository) Insert(ctx context.Context, player *domain.Player) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO players (id, group_id, player_name, emoji, created_date) VALUES (?, ?, ?, ?, ?)`,
		player.ID, player.GroupID, player.PlayerName, player.Emoji, player.CreatedDate,
	)
	return err
}

// ListByGroup returns players in creation order; downstream ranking
// relies on that order for tie-breaks.
func (r *PlayerRepository) ListByGroup(ctx context.Context, groupID string) ([]domain.Player, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, group_id, player_name, emoji, created_date
		 FROM players WHERE group_id = ? ORDER BY created_date, rowid`, groupID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var players []domain.Player
	for rows.Next() {
		var p domain.Player
		if err := rows.Scan(&p.ID, &p.GroupID, &p.PlayerName, &p.Emoji, &p.CreatedDate); err != nil {
			return nil, err
		}
		players = append(players, p)
	}
	return players, rows.Err()
}

func (r *PlayerRepository) NameExists(ctx context.Context, groupID, name string) (bool, error) {
	var n int
	err := r.db.QueryRowContext(ctx,
		`SELECT COUNT(1) FROM players WHERE group_id = ? AND player_name = ?`, groupID, name).Scan(&n)
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

func (r *PlayerRepository) ExistsInGroup(ctx context.Context, groupID, playerID string) (bool, error) {
	var n int
	err := r.db.QueryRowContext(ctx,
		`SELECT COUNT(1) FROM players WHERE group_id = ? AND id = ?`, groupID, playerID).Scan(&n)
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

// UpsertBatch restores exported players inside one transaction.
func (r *PlayerRepository) UpsertBatch(ctx context.Context, players []domain.Player) error {
	if len(players) == 0 {
		return nil
	}

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	for i := 0; i < len(players); i += constants.DBBatchSize {
		end := min(i+constants.DBBatchSize, len(players))
		for _, p := range players[i:end] {
			_, err := tx.ExecContext(ctx,
				`INSERT OR REPLACE INTO players (id, group_id, player_name, emoji, created_date)
				 VALUES (?, ?, ?, ?, ?)`,
				p.ID, p.GroupID, p.PlayerName, p.Emoji, p.CreatedDate,
			)
			if err != nil {
				return fmt.Errorf("failed to upsert player %s: %w", p.ID, err)
			}
		}
	}

	return tx.Commit()
}
