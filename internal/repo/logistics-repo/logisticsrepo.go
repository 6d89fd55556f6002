package logisticsrepo

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"github.com/GlebRadaev/marketplace/internal/domain"
	"github.com/GlebRadaev/marketplace/internal/pg"
)

const logisticsColumns = `id, order_id, tracking_number, carrier, status, current_location, updated_at`

type Repository struct {
	db pg.Database
}

func New(db pg.Database) *Repository {
	return &Repository{
		db: db,
	}
}

func (r *Repository) GetByID(ctx context.Context, id int) (*domain.OrderLogistics, error) {
	query := `SELECT ` + logisticsColumns + ` FROM order_logistics WHERE id = $1`
	return r.scanOne(ctx, "failed to get logistics", query, id)
}

func (r *Repository) GetByOrderID(ctx context.Context, orderID int) (*domain.OrderLogistics, error) {
	query := `SELECT ` + logisticsColumns + ` FROM order_logistics WHERE order_id = $1`
	return r.scanOne(ctx, "failed to get logistics by order", query, orderID)
}

// Create returns nil without error when the order already has logistics.
func (r *Repository) Create(ctx context.Context, l *domain.OrderLogistics) (*domain.OrderLogistics, error) {
	query := `
        INSERT INTO order_logistics (order_id, tracking_number, carrier, status, current_location, updated_at)
        VALUES ($1, $2, $3, $4, $5, $6)
        ON CONFLICT (order_id) DO NOTHING
        RETURNING ` + logisticsColumns
	return r.scanOne(ctx, "failed to create logistics", query,
		l.OrderID, l.TrackingNumber, l.Carrier, l.Status, l.CurrentLocation, l.UpdatedAt,
	)
}

func (r *Repository) Update(ctx context.Context, l *domain.OrderLogistics) (*domain.OrderLogistics, error) {
	query := `
        UPDATE order_logistics
        SET status = $1, current_location = $2, updated_at = $3
        WHERE id = $4 AND status <> 'delivered'
        RETURNING ` + logisticsColumns
	return r.scanOne(ctx, "failed to update logistics", query, l.Status, l.CurrentLocation, l.UpdatedAt, l.ID)
}

func (r *Repository) scanOne(ctx context.Context, msg, query string, args ...any) (*domain.OrderLogistics, error) {
	var l domain.OrderLogistics
	err := r.db.QueryRow(ctx, query, args...).Scan(
		&l.ID, &l.OrderID, &l.TrackingNumber, &l.Carrier, &l.Status, &l.CurrentLocation, &l.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		zap.L().Error(msg, zap.Error(err))
		return nil, err
	}
	return &l, nil
}
