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

type SessionRepository struct {
	db     *sql.DB
	logger zerolog.Logger
}

func NewSessionRepository(sqlDB *sql.DB, logger zerolog.Logger) *SessionRepository {
	return &SessionRepository{db: sqlDB, logger: logger}
}

func (r *SessionRepository) Insert(ctx context.Context, session *domain.GameSession) error {
	playerScores, teamScores, err := marshalScores(session)
	if err != nil {
		return err
	}

	_, err = r.db.ExecContext(ctx,
		`INSERT INTO game_sessions (id, group_id, game_name, game_date, player_scores, team_scores, created_date)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		session.ID, session.GroupID, session.GameName, session.GameDate,
		playerScores, teamScores, session.CreatedDate,
	)
	return err
}

// ListByGroup returns a group's sessions newest first.
func (r *SessionRepository) ListByGroup(ctx context.Context, groupID string) ([]domain.GameSession, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, group_id, game_name, game_date, player_scores, team_scores, created_date
		 FROM game_sessions WHERE group_id = ? ORDER BY game_date DESC, rowid DESC`, groupID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var sessions []domain.GameSession
	for rows.Next() {
		var s domain.GameSession
		var playerScores, teamScores string
		if err := rows.Scan(&s.ID, &s.GroupID, &s.GameName, &s.GameDate,
			&playerScores, &teamScores, &s.CreatedDate); err != nil {
			return nil, err
		}
		if err := json.Unmarshal([]byte(playerScores), &s.PlayerScores); err != nil {
			return nil, fmt.Errorf("failed to unmarshal player scores for session %s: %w", s.ID, err)
		}
		if err := json.Unmarshal([]byte(teamScores), &s.TeamScores); err != nil {
			return nil, fmt.Errorf("failed to unmarshal team scores for session %s: %w", s.ID, err)
		}
		sessions = append(sessions, s)
	}
	return sessions, rows.Err()
}

// Delete removes a session; derived views recompute on the next read, so
// no further invalidation is needed. Returns sql.ErrNoRows when the
// session does not exist.
func (r *SessionRepository) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM game_sessions WHERE id = ?`, id)
	if err != nil {
		return err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return sql.ErrNoRows
	}
	return nil
}

// UpsertBatch restores exported sessions inside one transaction.
func (r *SessionRepository) UpsertBatch(ctx context.Context, sessions []domain.GameSession) error {
	if len(sessions) == 0 {
		return nil
	}

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	for i := 0; i < len(sessions); i += constants.DBBatchSize {
		end := min(i+constants.DBBatchSize, len(sessions))
		for _, s := range sessions[i:end] {
			playerScores, teamScores, err := marshalScores(&s)
			if err != nil {
				return err
			}
			_, err = tx.ExecContext(ctx,
				`INSERT OR REPLACE INTO game_sessions (id, group_id, game_name, game_date, player_scores, team_scores, created_date)
				 VALUES (?, ?, ?, ?, ?, ?, ?)`,
				s.ID, s.GroupID, s.GameName, s.GameDate, playerScores, teamScores, s.CreatedDate,
			)
			if err != nil {
				return fmt.Errorf("failed to upsert session %s: %w", s.ID, err)
			}
		}
	}

	return tx.Commit()
}

func marshalScores(session *domain.GameSession) (string, string, error) {
	playerScores := session.PlayerScores
	if playerScores == nil {
		playerScores = []domain.PlayerScore{}
	}
	teamScores := session.TeamScores
	if teamScores == nil {
		teamScores = []domain.TeamScore{}
	}

	ps, err := json.Marshal(playerScores)
	if err != nil {
		return "", "", fmt.Errorf("failed to marshal player scores: %w", err)
	}
	ts, err := json.Marshal(teamScores)
	if err != nil {
		return "", "", fmt.Errorf("failed to marshal team scores: %w", err)
	}
	return string(ps), string(ts), nil
}
