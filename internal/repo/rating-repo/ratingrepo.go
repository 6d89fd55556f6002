package ratingrepo

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"github.com/GlebRadaev/marketplace/internal/domain"
	"github.com/GlebRadaev/marketplace/internal/pg"
)

type table struct {
	name   string
	target string
}

var tables = map[domain.RatingKind]table{
	domain.RatingProduct: {name: "product_ratings", target: "product_id"},
	domain.RatingShop:    {name: "shop_ratings", target: "shop_id"},
}

func tableFor(kind domain.RatingKind) (table, error) {
	t, ok := tables[kind]
	if !ok {
		return table{}, fmt.Errorf("unknown rating kind %q", kind)
	}
	return t, nil
}

type Repository struct {
	db pg.Database
}

func New(db pg.Database) *Repository {
	return &Repository{
		db: db,
	}
}

func (r *Repository) Exists(ctx context.Context, kind domain.RatingKind, userID string, targetID int) (bool, error) {
	t, err := tableFor(kind)
	if err != nil {
		return false, err
	}
	query := fmt.Sprintf(`SELECT EXISTS (SELECT 1 FROM %s WHERE user_id = $1 AND %s = $2)`, t.name, t.target)

	var ok bool
	if err := r.db.QueryRow(ctx, query, userID, targetID).Scan(&ok); err != nil {
		zap.L().Error("failed to check rating", zap.String("table", t.name), zap.Error(err))
		return false, err
	}
	return ok, nil
}

// Create returns nil without error when the user already rated the target.
func (r *Repository) Create(ctx context.Context, kind domain.RatingKind, rating *domain.Rating) (*domain.Rating, error) {
	t, err := tableFor(kind)
	if err != nil {
		return nil, err
	}
	query := fmt.Sprintf(`
        INSERT INTO %[1]s (%[2]s, user_id, rating, comment, created_at)
        VALUES ($1, $2, $3, $4, $5)
        ON CONFLICT (user_id, %[2]s) DO NOTHING
        RETURNING id, %[2]s, user_id, rating, comment, created_at
    `, t.name, t.target)

	var created domain.Rating
	err = r.db.QueryRow(ctx, query, rating.TargetID, rating.UserID, rating.Rating, rating.Comment, rating.CreatedAt).
		Scan(&created.ID, &created.TargetID, &created.UserID, &created.Rating, &created.Comment, &created.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		zap.L().Error("failed to create rating", zap.String("table", t.name), zap.Error(err))
		return nil, err
	}
	return &created, nil
}

// ListByTarget returns the ratings of a target, newest first.
func (r *Repository) ListByTarget(ctx context.Context, kind domain.RatingKind, targetID int) ([]domain.Rating, error) {
	t, err := tableFor(kind)
	if err != nil {
		return nil, err
	}
	query := fmt.Sprintf(`
        SELECT id, %[2]s, user_id, rating, comment, created_at
        FROM %[1]s
        WHERE %[2]s = $1
        ORDER BY created_at DESC, id DESC
    `, t.name, t.target)

	rows, err := r.db.Query(ctx, query, targetID)
	if err != nil {
		zap.L().Error("failed to list ratings", zap.String("table", t.name), zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	ratings := make([]domain.Rating, 0)
	for rows.Next() {
		var rt domain.Rating
		if err := rows.Scan(&rt.ID, &rt.TargetID, &rt.UserID, &rt.Rating, &rt.Comment, &rt.CreatedAt); err != nil {
			zap.L().Error("failed to scan rating", zap.Error(err))
			return nil, err
		}
		ratings = append(ratings, rt)
	}
	if err := rows.Err(); err != nil {
		zap.L().Error("failed to iterate ratings", zap.Error(err))
		return nil, err
	}
	return ratings, nil
}
