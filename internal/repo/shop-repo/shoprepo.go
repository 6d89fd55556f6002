package shoprepo

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"github.com/GlebRadaev/marketplace/internal/domain"
	"github.com/GlebRadaev/marketplace/internal/pg"
)

const shopColumns = `id, user_id, shop_name, description, logo_url, status, average_rating, created_at`

type Repository struct {
	db pg.Database
}

func New(db pg.Database) *Repository {
	return &Repository{
		db: db,
	}
}

func (r *Repository) GetByID(ctx context.Context, id int) (*domain.Shop, error) {
	query := `SELECT ` + shopColumns + ` FROM shops WHERE id = $1`

	var s domain.Shop
	err := scanShop(r.db.QueryRow(ctx, query, id), &s)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		zap.L().Error("failed to get shop", zap.Error(err))
		return nil, err
	}
	return &s, nil
}

func (r *Repository) ListByStatus(ctx context.Context, status string) ([]domain.Shop, error) {
	query := `SELECT ` + shopColumns + ` FROM shops WHERE status = $1 ORDER BY created_at ASC, id ASC`

	rows, err := r.db.Query(ctx, query, status)
	if err != nil {
		zap.L().Error("failed to list shops", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	shops := make([]domain.Shop, 0)
	for rows.Next() {
		var s domain.Shop
		if err := scanShop(rows, &s); err != nil {
			zap.L().Error("failed to scan shop", zap.Error(err))
			return nil, err
		}
		shops = append(shops, s)
	}
	if err := rows.Err(); err != nil {
		zap.L().Error("failed to iterate shops", zap.Error(err))
		return nil, err
	}
	return shops, nil
}

// CompareAndSetStatus moves the shop from one status to another and reports
// whether this call performed the transition.
func (r *Repository) CompareAndSetStatus(ctx context.Context, id int, from, to string) (bool, error) {
	query := `UPDATE shops SET status = $1 WHERE id = $2 AND status = $3`

	tag, err := r.db.Exec(ctx, query, to, id, from)
	if err != nil {
		zap.L().Error("failed to update shop status", zap.Error(err))
		return false, err
	}
	return tag.RowsAffected() == 1, nil
}

// RefreshAverageRating recomputes the shop average from its ratings.
func (r *Repository) RefreshAverageRating(ctx context.Context, id int) (float64, error) {
	query := `
        UPDATE shops
        SET average_rating = COALESCE(
            (SELECT ROUND(AVG(rating)::numeric, 1)::float8 FROM shop_ratings WHERE shop_id = $1), 0)
        WHERE id = $1
        RETURNING average_rating
    `
	var avg float64
	if err := r.db.QueryRow(ctx, query, id).Scan(&avg); err != nil {
		zap.L().Error("failed to refresh shop rating", zap.Error(err))
		return 0, err
	}
	return avg, nil
}

func scanShop(row pgx.Row, s *domain.Shop) error {
	return row.Scan(&s.ID, &s.UserID, &s.ShopName, &s.Description, &s.LogoURL, &s.Status, &s.AverageRating, &s.CreatedAt)
}
