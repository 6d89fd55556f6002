package experiencelogrepo

import (
	"context"

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

func (r *Repository) Create(ctx context.Context, log *domain.ExperienceLog) (*domain.ExperienceLog, error) {
	query := `
        INSERT INTO experience_logs (user_id, action_type, experience_change, points_change, created_at)
        VALUES ($1, $2, $3, $4, $5)
        RETURNING id, user_id, action_type, experience_change, points_change, created_at
    `
	var created domain.ExperienceLog
	err := r.db.QueryRow(ctx, query, log.UserID, log.ActionType, log.ExperienceChange, log.PointsChange, log.CreatedAt).
		Scan(&created.ID, &created.UserID, &created.ActionType, &created.ExperienceChange, &created.PointsChange, &created.CreatedAt)
	if err != nil {
		zap.L().Error("failed to create experience log", zap.Error(err))
		return nil, err
	}
	return &created, nil
}

func (r *Repository) ListByUserID(ctx context.Context, userID string, limit int) ([]domain.ExperienceLog, error) {
	query := `
        SELECT id, user_id, action_type, experience_change, points_change, created_at
        FROM experience_logs
        WHERE user_id = $1
        ORDER BY created_at DESC, id DESC
        LIMIT $2
    `
	rows, err := r.db.Query(ctx, query, userID, limit)
	if err != nil {
		zap.L().Error("failed to get experience logs", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	logs := make([]domain.ExperienceLog, 0)
	for rows.Next() {
		var l domain.ExperienceLog
		if err := rows.Scan(&l.ID, &l.UserID, &l.ActionType, &l.ExperienceChange, &l.PointsChange, &l.CreatedAt); err != nil {
			zap.L().Error("failed to scan experience log", zap.Error(err))
			return nil, err
		}
		logs = append(logs, l)
	}
	if err := rows.Err(); err != nil {
		zap.L().Error("failed to iterate experience logs", zap.Error(err))
		return nil, err
	}
	return logs, nil
}
