package inspectorrepo

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"github.com/GlebRadaev/marketplace/internal/domain"
	"github.com/GlebRadaev/marketplace/internal/pg"
)

type Repository struct {
	db pg.Database
}

func New(db pg.Database) *Repository {
	return &Repository{
		db: db,
	}
}

func (r *Repository) GetByUserID(ctx context.Context, userID string) (*domain.Inspector, error) {
	query := `
        SELECT id, user_id, appointed_at, appointed_by
        FROM inspectors
        WHERE user_id = $1
    `
	var ins domain.Inspector
	err := r.db.QueryRow(ctx, query, userID).Scan(&ins.ID, &ins.UserID, &ins.AppointedAt, &ins.AppointedBy)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		zap.L().Error("failed to get inspector", zap.Error(err))
		return nil, err
	}
	return &ins, nil
}

// Create returns nil without error when the user is already an inspector.
func (r *Repository) Create(ctx context.Context, inspector *domain.Inspector) (*domain.Inspector, error) {
	query := `
        INSERT INTO inspectors (user_id, appointed_at, appointed_by)
        VALUES ($1, $2, $3)
        ON CONFLICT (user_id) DO NOTHING
        RETURNING id, user_id, appointed_at, appointed_by
    `
	var ins domain.Inspector
	err := r.db.QueryRow(ctx, query, inspector.UserID, inspector.AppointedAt, inspector.AppointedBy).
		Scan(&ins.ID, &ins.UserID, &ins.AppointedAt, &ins.AppointedBy)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		zap.L().Error("failed to create inspector", zap.Error(err))
		return nil, err
	}
	return &ins, nil
}
