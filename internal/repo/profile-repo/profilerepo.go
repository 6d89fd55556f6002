package profilerepo

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

func (r *Repository) GetByUserID(ctx context.Context, userID string) (*domain.UserProfile, error) {
	query := `
        SELECT id, user_id, username, avatar_url, experience, level, points, created_at
        FROM users_extended
        WHERE user_id = $1
    `
	return r.scanOne(ctx, "failed to get user profile", query, userID)
}

// GetForUpdate locks the profile row until the surrounding transaction ends.
func (r *Repository) GetForUpdate(ctx context.Context, userID string) (*domain.UserProfile, error) {
	query := `
        SELECT id, user_id, username, avatar_url, experience, level, points, created_at
        FROM users_extended
        WHERE user_id = $1
        FOR UPDATE
    `
	return r.scanOne(ctx, "failed to lock user profile", query, userID)
}

// CreateIfAbsent inserts the profile unless one already exists for the user.
func (r *Repository) CreateIfAbsent(ctx context.Context, profile *domain.UserProfile) error {
	query := `
        INSERT INTO users_extended (user_id, username, avatar_url, experience, level, points, created_at)
        VALUES ($1, $2, $3, $4, $5, $6, $7)
        ON CONFLICT (user_id) DO NOTHING
    `
	_, err := r.db.Exec(ctx, query,
		profile.UserID, profile.Username, profile.AvatarURL,
		profile.Experience, profile.Level, profile.Points, profile.CreatedAt,
	)
	if err != nil {
		zap.L().Error("failed to create user profile", zap.Error(err))
		return err
	}
	return nil
}

func (r *Repository) UpdateProgress(ctx context.Context, userID string, experience, level, points int) error {
	query := `
        UPDATE users_extended
        SET experience = $1, level = $2, points = $3
        WHERE user_id = $4
    `
	_, err := r.db.Exec(ctx, query, experience, level, points, userID)
	if err != nil {
		zap.L().Error("failed to update user progress", zap.Error(err))
		return err
	}
	return nil
}

func (r *Repository) UpdateUsername(ctx context.Context, userID, username string) (*domain.UserProfile, error) {
	query := `
        UPDATE users_extended
        SET username = $1
        WHERE user_id = $2
        RETURNING id, user_id, username, avatar_url, experience, level, points, created_at
    `
	return r.scanOne(ctx, "failed to update username", query, username, userID)
}

func (r *Repository) UpdateAvatar(ctx context.Context, userID, avatarURL string) (*domain.UserProfile, error) {
	query := `
        UPDATE users_extended
        SET avatar_url = $1
        WHERE user_id = $2
        RETURNING id, user_id, username, avatar_url, experience, level, points, created_at
    `
	return r.scanOne(ctx, "failed to update avatar", query, avatarURL, userID)
}

func (r *Repository) scanOne(ctx context.Context, msg, query string, args ...any) (*domain.UserProfile, error) {
	var p domain.UserProfile
	err := r.db.QueryRow(ctx, query, args...).Scan(
		&p.ID, &p.UserID, &p.Username, &p.AvatarURL, &p.Experience, &p.Level, &p.Points, &p.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		zap.L().Error(msg, zap.Error(err))
		return nil, err
	}
	return &p, nil
}
