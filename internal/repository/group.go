package repository

import (
	"context"
	"database/sql"

	"boardgame-tracker/internal/domain"

	"github.com/rs/zerolog"
)

type GroupRepository struct {
	db     *sql.DB
	logger zerolog.Logger
}

func NewGroupRepository(sqlDB *sql.DB, logger zerolog.Logger) *GroupRepository {
	return &GroupRepository{db: sqlDB, logger: logger}
}

func (r *GroupRepository) Insert(ctx context.Context, group *domain.Group) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO groups (id, group_code, group_name, created_date) VALUES (?, ?, ?, ?)`,
		group.ID, group.GroupCode, group.GroupName, group.CreatedDate,
	)
	return err
}

func (r *GroupRepository) GetByID(ctx context.Context, id string) (*domain.Group, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT id, group_code, group_name, created_date FROM groups WHERE id = ?`, id)
	return scanGroup(row)
}

func (r *GroupRepository) GetByCode(ctx context.Context, code string) (*domain.Group, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT id, group_code, group_name, created_date FROM groups WHERE group_code = ?`, code)
	return scanGroup(row)
}

func (r *GroupRepository) CodeExists(ctx context.Context, code string) (bool, error) {
	var n int
	err := r.db.QueryRowContext(ctx,
		`SELECT COUNT(1) FROM groups WHERE group_code = ?`, code).Scan(&n)
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

func scanGroup(row *sql.Row) (*domain.Group, error) {
	var g domain.Group
	if err := row.Scan(&g.ID, &g.GroupCode, &g.GroupName, &g.CreatedDate); err != nil {
		return nil, err
	}
	return &g, nil
}
